package inbound

import (
	"net/http"
	"time"

	"github.com/medivision/medivision/internal/identity/entity"
)

const dateOfBirthFormat = "2006-01-02"

type SendOTPRequest struct {
	Email string `json:"email"`
}

type SendOTPResponse struct{}

func (SendOTPResponse) Message() string {
	return "OTP sent successfully"
}

type SendSignupOTPResponse struct{}

func (SendSignupOTPResponse) Message() string {
	return "OTP sent successfully"
}

type SendSignupOTPRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Location    string `json:"location,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Role        string    `json:"role"`
	Location    string    `json:"location,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newUserResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Gender:    user.Gender.String(),
		Role:      user.Role.String(),
		Location:  user.Location,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.DateOfBirth != nil {
		resp.DateOfBirth = user.DateOfBirth.Format(dateOfBirthFormat)
	}
	return resp
}

// AuthResponse is the session payload returned by login and verification
// endpoints. The token rides both in the body and in the session cookie.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`

	cookies []*http.Cookie
}

func (r AuthResponse) Cookies() []*http.Cookie {
	return r.cookies
}

type LogoutResponse struct {
	cookies []*http.Cookie
}

func (LogoutResponse) Message() string {
	return "Logged out successfully"
}

func (r LogoutResponse) Cookies() []*http.Cookie {
	return r.cookies
}

type ProfileResponse struct {
	UserResponse
}
