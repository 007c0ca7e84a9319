package inbound

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/identity/usecase"
	"github.com/medivision/medivision/internal/pkg/router"
)

type fakeUC struct {
	verifyOTP func(in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)
}

func (fakeUC) SendOTP(context.Context, usecase.SendOTPInput) error             { return nil }
func (fakeUC) SendSignupOTP(context.Context, usecase.SendSignupOTPInput) error { return nil }

func (f fakeUC) VerifyOTP(_ context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error) {
	return f.verifyOTP(in)
}

func (fakeUC) VerifySignupOTP(context.Context, usecase.VerifySignupOTPInput) (*usecase.VerifySignupOTPOutput, error) {
	return nil, nil
}

func (fakeUC) Login(context.Context, usecase.LoginInput) (*usecase.LoginOutput, error) {
	return nil, nil
}

func (fakeUC) Profile(context.Context) (*usecase.ProfileOutput, error) { return nil, nil }

func newTestEndpoint(uc uc) *HTTPEndpoint {
	return &HTTPEndpoint{
		uc: uc,
		cookie: CookieConfig{
			Name:   "access_token",
			MaxAge: 7 * 24 * time.Hour,
			Secure: false,
		},
	}
}

func TestVerifyOTPSetsSessionCookie(t *testing.T) {
	// Arrange
	end := newTestEndpoint(fakeUC{
		verifyOTP: func(in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error) {
			return &usecase.VerifyOTPOutput{
				AccessToken: "token-abc",
				User:        &entity.User{ID: "user-id-1", Name: "Jane Doe", Email: in.Email},
			}, nil
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/verify-otp",
		strings.NewReader(`{"email":"jane@example.com","otp":"1234"}`))

	// Act
	resp, err := end.VerifyOTP(&router.Request{Request: req})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	auth, ok := resp.(AuthResponse)
	if !ok {
		t.Fatalf("expected AuthResponse, got %T", resp)
	}
	if auth.AccessToken != "token-abc" {
		t.Fatalf("unexpected token %q", auth.AccessToken)
	}

	cookies := auth.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "access_token" || c.Value != "token-abc" {
		t.Fatalf("unexpected cookie %+v", c)
	}
	if !c.HttpOnly || c.SameSite != http.SameSiteLaxMode || c.Path != "/" {
		t.Fatalf("unexpected cookie attributes %+v", c)
	}
	if c.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
		t.Fatalf("unexpected cookie max age %d", c.MaxAge)
	}
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	// Arrange
	end := newTestEndpoint(fakeUC{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)

	// Act
	resp, err := end.Logout(&router.Request{Request: req})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out, ok := resp.(LogoutResponse)
	if !ok {
		t.Fatalf("expected LogoutResponse, got %T", resp)
	}
	if out.Message() != "Logged out successfully" {
		t.Fatalf("unexpected message %q", out.Message())
	}

	cookies := out.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	if cookies[0].Value != "" || cookies[0].MaxAge != -1 {
		t.Fatalf("expected cleared cookie, got %+v", cookies[0])
	}
}

func TestSendSignupOTPRejectsBadDate(t *testing.T) {
	// Arrange
	end := newTestEndpoint(fakeUC{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/send-otp-for-signup",
		strings.NewReader(`{"name":"Jane Doe","email":"jane@example.com","password":"s3cretpass","date_of_birth":"15-06-1990"}`))

	// Act
	_, err := end.SendSignupOTP(&router.Request{Request: req})

	// Assert
	if err == nil {
		t.Fatalf("expected error for malformed date_of_birth")
	}
}
