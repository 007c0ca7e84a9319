package inbound

import (
	"net/http"
	"time"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/identity/usecase"
	"github.com/medivision/medivision/internal/pkg/goerror"
	"github.com/medivision/medivision/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for OTP, login, and profile workflows.
type HTTPEndpoint struct {
	uc     uc
	cookie CookieConfig
}

func (h *HTTPEndpoint) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *HTTPEndpoint) clearedCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// SendOTP emails a login code to an existing account.
func (h *HTTPEndpoint) SendOTP(r *router.Request) (any, error) {
	var req SendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.SendOTP(r.Context(), usecase.SendOTPInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return SendOTPResponse{}, nil
}

// SendSignupOTP emails a signup code and parks the registration payload.
func (h *HTTPEndpoint) SendSignupOTP(r *router.Request) (any, error) {
	var req SendSignupOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	gender := entity.GenderFromString(req.Gender)
	if req.Gender != "" && gender == entity.GenderUnknown {
		return nil, goerror.NewInvalidFormat("Invalid gender")
	}

	var dateOfBirth *time.Time
	if req.DateOfBirth != "" {
		dob, err := time.Parse(dateOfBirthFormat, req.DateOfBirth)
		if err != nil {
			return nil, goerror.NewInvalidFormat("Invalid date_of_birth")
		}
		dateOfBirth = &dob
	}

	if err := h.uc.SendSignupOTP(r.Context(), usecase.SendSignupOTPInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Phone:       req.Phone,
		Gender:      gender,
		DateOfBirth: dateOfBirth,
		Location:    req.Location,
		Bio:         req.Bio,
	}); err != nil {
		return nil, err
	}

	return SendSignupOTPResponse{}, nil
}

// VerifyOTP redeems a login code and starts a session.
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyOTP(r.Context(), usecase.VerifyOTPInput{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return AuthResponse{
		AccessToken: resp.AccessToken,
		User:        newUserResponse(resp.User),
		cookies:     []*http.Cookie{h.sessionCookie(resp.AccessToken)},
	}, nil
}

// VerifySignupOTP redeems a signup code, creates the account, and starts a
// session.
func (h *HTTPEndpoint) VerifySignupOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifySignupOTP(r.Context(), usecase.VerifySignupOTPInput{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return AuthResponse{
		AccessToken: resp.AccessToken,
		User:        newUserResponse(resp.User),
		cookies:     []*http.Cookie{h.sessionCookie(resp.AccessToken)},
	}, nil
}

// Login authenticates with email and password and starts a session.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return AuthResponse{
		AccessToken: resp.AccessToken,
		User:        newUserResponse(resp.User),
		cookies:     []*http.Cookie{h.sessionCookie(resp.AccessToken)},
	}, nil
}

// Logout clears the session cookie. Sessions are stateless so there is
// nothing to revoke server side.
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	return LogoutResponse{
		cookies: []*http.Cookie{h.clearedCookie()},
	}, nil
}

// Profile returns the authenticated account.
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{UserResponse: newUserResponse(resp.User)}, nil
}
