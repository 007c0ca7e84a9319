package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/pkg/goerror"
)

func TestSendOTP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.db.getUserByEmail = func(email string) (*entity.User, error) {
			return &entity.User{ID: "user-id-1", Email: email}, nil
		}

		// Act
		err := uc.SendOTP(context.Background(), SendOTPInput{Email: "jane@example.com"})

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		ch, ok := deps.store.items["jane@example.com"]
		if !ok {
			t.Fatalf("expected challenge to be stored")
		}
		if ch.Code != "1234" || ch.Flow != entity.ChallengeFlowLogin {
			t.Fatalf("unexpected challenge %+v", ch)
		}
		if !ch.ExpiresAt.Equal(testNow.Add(10 * time.Minute)) {
			t.Fatalf("unexpected expiry %v", ch.ExpiresAt)
		}
		if len(deps.mailer.sent) != 1 || deps.mailer.sent[0] != "jane@example.com" {
			t.Fatalf("expected code delivered to jane@example.com, got %v", deps.mailer.sent)
		}
	})

	t.Run("UserNotFound", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)

		// Act
		err := uc.SendOTP(context.Background(), SendOTPInput{Email: "ghost@example.com"})

		// Assert
		assertBusinessError(t, err, "User not found", goerror.CodeNotFound)
		if len(deps.store.items) != 0 {
			t.Fatalf("expected no challenge stored")
		}
	})

	t.Run("DeliveryFailureKeepsChallenge", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.db.getUserByEmail = func(email string) (*entity.User, error) {
			return &entity.User{ID: "user-id-1", Email: email}, nil
		}
		deps.mailer.err = errors.New("smtp down")

		// Act
		err := uc.SendOTP(context.Background(), SendOTPInput{Email: "jane@example.com"})

		// Assert
		assertBusinessError(t, err, "Failed to send OTP. Please try again.", goerror.CodeInternal)
		if _, ok := deps.store.items["jane@example.com"]; !ok {
			t.Fatalf("expected challenge kept after failed delivery")
		}
	})
}

func TestSendSignupOTP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)

		// Act
		err := uc.SendSignupOTP(context.Background(), SendSignupOTPInput{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: "s3cretpass",
		})

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		ch, ok := deps.store.items["jane@example.com"]
		if !ok {
			t.Fatalf("expected challenge to be stored")
		}
		if ch.Flow != entity.ChallengeFlowSignup {
			t.Fatalf("expected signup flow, got %v", ch.Flow)
		}
		if ch.Registration == nil || ch.Registration.Name != "Jane Doe" || ch.Registration.Password != "s3cretpass" {
			t.Fatalf("unexpected registration payload %+v", ch.Registration)
		}
		if len(deps.mailer.sent) != 1 {
			t.Fatalf("expected one delivery, got %d", len(deps.mailer.sent))
		}
	})

	t.Run("ExistingAccount", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.db.getUserByEmail = func(email string) (*entity.User, error) {
			return &entity.User{ID: "user-id-1", Email: email}, nil
		}

		// Act
		err := uc.SendSignupOTP(context.Background(), SendSignupOTPInput{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: "s3cretpass",
		})

		// Assert
		assertBusinessError(t, err, "User already exists", goerror.CodeConflict)
		if len(deps.store.items) != 0 {
			t.Fatalf("expected no challenge stored")
		}
	})

	t.Run("DeliveryFailure", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.mailer.err = errors.New("smtp down")

		// Act
		err := uc.SendSignupOTP(context.Background(), SendSignupOTPInput{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: "s3cretpass",
		})

		// Assert
		assertBusinessError(t, err, "Failed to send OTP. Please try again.", goerror.CodeInternal)
	})
}
