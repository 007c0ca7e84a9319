package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/pkg/goerror"
)

type SendSignupOTPInput struct {
	Name        string `validate:"required,min=2"`
	Email       string `validate:"required,email"`
	Password    string `validate:"required,password"`
	Phone       string `validate:"omitempty,numeric,min=10,max=20"`
	Gender      entity.Gender
	DateOfBirth *time.Time
	Location    string `validate:"omitempty,min=2"`
	Bio         string
}

// SendSignupOTP issues a signup code and parks the registration payload with
// it until the code is verified. No account row exists yet at this point.
func (s *Usecase) SendSignupOTP(ctx context.Context, in SendSignupOTPInput) error {
	ctx, span := s.startSpan(ctx, "SendSignupOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	email := strings.TrimSpace(in.Email)
	_, err := s.repoDB.GetUserByEmail(ctx, email)
	if err == nil {
		slog.WarnContext(ctx, "signup attempt for existing account", "email", email)
		return goerror.NewBusiness("User already exists", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return goerror.NewServer(err)
	}

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate signup code", "error", err)
		return goerror.NewServer(err)
	}

	ttl := s.otpTTL()
	if err := s.challenges.Put(ctx, email, entity.Challenge{
		Code:      code,
		Flow:      entity.ChallengeFlowSignup,
		ExpiresAt: s.clock.Now().Add(ttl),
		Registration: &entity.Registration{
			Name:        strings.TrimSpace(in.Name),
			Email:       email,
			Password:    in.Password,
			Phone:       in.Phone,
			Gender:      in.Gender,
			DateOfBirth: in.DateOfBirth,
			Location:    in.Location,
			Bio:         in.Bio,
		},
	}); err != nil {
		slog.ErrorContext(ctx, "failed to store signup challenge", "email", email, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.mailer.SendOTP(ctx, email, code, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to send signup code", "email", email, "error", err)
		return goerror.NewBusiness("Failed to send OTP. Please try again.", goerror.CodeInternal)
	}

	slog.InfoContext(ctx, "signup code sent", "email", email)
	return nil
}
