package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/pkg/goerror"
)

type VerifyOTPInput struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required,len=4,numeric"`
}

type VerifyOTPOutput struct {
	AccessToken string
	User        *entity.User
}

// checkChallenge loads the pending challenge for email and validates it
// against the submitted code and expected flow. An expired challenge is
// removed; a wrong code or wrong flow leaves it in place so the user can
// retry with the code they were sent.
func (s *Usecase) checkChallenge(ctx context.Context, email, code string, flow entity.ChallengeFlow) (*entity.Challenge, error) {
	ch, err := s.challenges.Get(ctx, email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "challenge verification failed, no pending code", "email", email)
		return nil, goerror.NewBusiness("OTP not found or expired", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to load challenge", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if s.clock.Now().After(ch.ExpiresAt) {
		if err := s.challenges.Delete(ctx, email); err != nil {
			slog.ErrorContext(ctx, "failed to delete expired challenge", "email", email, "error", err)
		}
		slog.WarnContext(ctx, "challenge verification failed, code expired", "email", email)
		return nil, goerror.NewBusiness("OTP has expired", goerror.CodeUnauthorized)
	}

	if ch.Code != code {
		slog.WarnContext(ctx, "challenge verification failed, code mismatch", "email", email)
		return nil, goerror.NewBusiness("Invalid OTP", goerror.CodeUnauthorized)
	}

	if ch.Flow != flow {
		slog.WarnContext(ctx, "challenge verification failed, wrong flow", "email", email, "flow", ch.Flow.String())
		return nil, goerror.NewBusiness("Invalid OTP flow", goerror.CodeUnauthorized)
	}

	return ch, nil
}

// VerifyOTP redeems a login code and issues a session token. The code is
// consumed on success and cannot be redeemed again.
func (s *Usecase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	email := strings.TrimSpace(in.Email)
	unlock := s.verifyMu.lock(email)
	defer unlock()

	if _, err := s.checkChallenge(ctx, email, in.OTP, entity.ChallengeFlowLogin); err != nil {
		return nil, err
	}

	if err := s.challenges.Delete(ctx, email); err != nil {
		slog.ErrorContext(ctx, "failed to consume challenge", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "verified code for missing account", "email", email)
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "login code verified", "user_id", user.ID)
	return &VerifyOTPOutput{
		AccessToken: token,
		User:        user,
	}, nil
}
