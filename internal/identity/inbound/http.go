package inbound

import (
	"context"
	"time"

	"github.com/medivision/medivision/internal/identity/usecase"
	"github.com/medivision/medivision/internal/pkg/router"
)

type uc interface {
	SendOTP(ctx context.Context, in usecase.SendOTPInput) error
	SendSignupOTP(ctx context.Context, in usecase.SendSignupOTPInput) error
	VerifyOTP(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)
	VerifySignupOTP(ctx context.Context, in usecase.VerifySignupOTPInput) (*usecase.VerifySignupOTPOutput, error)

	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
}

// CookieConfig describes the session cookie written on successful
// authentication.
type CookieConfig struct {
	// Name is the cookie name.
	Name string
	// MaxAge bounds the cookie lifetime.
	MaxAge time.Duration
	// Secure restricts the cookie to HTTPS.
	Secure bool
}

func RegisterHTTPEndpoint(r *router.Router, uc uc, cookie CookieConfig) {
	end := &HTTPEndpoint{uc: uc, cookie: cookie}

	// OTP flows
	r.POST("/api/v1/auth/send-otp", end.SendOTP)
	r.POST("/api/v1/auth/send-otp-for-signup", end.SendSignupOTP)
	r.POST("/api/v1/auth/verify-otp", end.VerifyOTP)
	r.POST("/api/v1/auth/verify-otp-for-signup", end.VerifySignupOTP)

	// Password login & session
	r.POST("/api/v1/auth/login", end.Login)
	r.POST("/api/v1/auth/logout", end.Logout)

	// Profile (need authenticated)
	r.GET("/api/v1/auth/profile", end.Profile)
}
