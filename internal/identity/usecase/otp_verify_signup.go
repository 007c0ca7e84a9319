package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/pkg/goerror"
)

type VerifySignupOTPInput struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required,len=4,numeric"`
}

type VerifySignupOTPOutput struct {
	AccessToken string
	User        *entity.User
}

// VerifySignupOTP redeems a signup code, creates the account from the parked
// registration payload, and issues a session token. The challenge is consumed
// only after the account exists; a failed creation keeps it so the signup can
// be retried with the same code.
func (s *Usecase) VerifySignupOTP(ctx context.Context, in VerifySignupOTPInput) (*VerifySignupOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifySignupOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	email := strings.TrimSpace(in.Email)
	unlock := s.verifyMu.lock(email)
	defer unlock()

	ch, err := s.checkChallenge(ctx, email, in.OTP, entity.ChallengeFlowSignup)
	if err != nil {
		return nil, err
	}

	reg := ch.Registration
	if reg == nil {
		slog.WarnContext(ctx, "signup challenge has no registration payload", "email", email)
		return nil, goerror.NewBusiness("Invalid OTP flow", goerror.CodeUnauthorized)
	}

	passwordHash, err := s.bcrypt.Hash(reg.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	user, err := s.repoDB.CreateUser(ctx, entity.NewUser{
		ID:           s.uuid.Generate(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(passwordHash),
		Phone:        reg.Phone,
		Gender:       reg.Gender,
		DateOfBirth:  reg.DateOfBirth,
		Role:         entity.RoleUser,
		Location:     reg.Location,
		Bio:          reg.Bio,
	})
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "account already exists", "email", email)
		return nil, goerror.NewBusiness("User already exists", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "email", email, "error", err)
		return nil, goerror.NewBusiness("Failed to create user", goerror.CodeInternal)
	}

	if err := s.challenges.Delete(ctx, email); err != nil {
		slog.ErrorContext(ctx, "failed to consume challenge", "email", email, "error", err)
	}

	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishUserRegistered(ctx, UserRegisteredEvent{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish user registered event", "user_id", user.ID, "error", err)
			return err
		}
		return nil
	})

	token, err := s.jwt.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "account created from signup code", "user_id", user.ID)
	return &VerifySignupOTPOutput{
		AccessToken: token,
		User:        user,
	}, nil
}
