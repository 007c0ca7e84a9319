package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/pkg/goerror"
)

type SendOTPInput struct {
	Email string `validate:"required,email"`
}

// SendOTP issues a login code to an existing account. The challenge is stored
// before delivery is attempted; a failed delivery keeps the challenge so a
// retry simply replaces it.
func (s *Usecase) SendOTP(ctx context.Context, in SendOTPInput) error {
	ctx, span := s.startSpan(ctx, "SendOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	email := strings.TrimSpace(in.Email)
	if _, err := s.repoDB.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			slog.WarnContext(ctx, "login code requested for unknown account", "email", email)
			return goerror.NewBusiness("User not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return goerror.NewServer(err)
	}

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate login code", "error", err)
		return goerror.NewServer(err)
	}

	ttl := s.otpTTL()
	if err := s.challenges.Put(ctx, email, entity.Challenge{
		Code:      code,
		Flow:      entity.ChallengeFlowLogin,
		ExpiresAt: s.clock.Now().Add(ttl),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to store login challenge", "email", email, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.mailer.SendOTP(ctx, email, code, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to send login code", "email", email, "error", err)
		return goerror.NewBusiness("Failed to send OTP. Please try again.", goerror.CodeInternal)
	}

	slog.InfoContext(ctx, "login code sent", "email", email)
	return nil
}
