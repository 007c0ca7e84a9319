package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/pkg/goerror"
)

func loginChallenge() entity.Challenge {
	return entity.Challenge{
		Code:      "1234",
		Flow:      entity.ChallengeFlowLogin,
		ExpiresAt: testNow.Add(10 * time.Minute),
	}
}

func signupChallenge() entity.Challenge {
	return entity.Challenge{
		Code:      "1234",
		Flow:      entity.ChallengeFlowSignup,
		ExpiresAt: testNow.Add(10 * time.Minute),
		Registration: &entity.Registration{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: "s3cretpass",
		},
	}
}

func TestVerifyOTP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.store.items["jane@example.com"] = loginChallenge()
		deps.db.getUserByEmail = func(email string) (*entity.User, error) {
			return &entity.User{ID: "user-id-1", Email: email, Name: "Jane Doe"}, nil
		}

		// Act
		out, err := uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Email: "jane@example.com",
			OTP:   "1234",
		})

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.AccessToken != "token-user-id-1" {
			t.Fatalf("unexpected token %q", out.AccessToken)
		}
		if _, ok := deps.store.items["jane@example.com"]; ok {
			t.Fatalf("expected challenge consumed")
		}
	})

	t.Run("NoPendingChallenge", func(t *testing.T) {
		// Arrange
		uc, _ := newTestUsecase(t)

		// Act
		_, err := uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Email: "jane@example.com",
			OTP:   "1234",
		})

		// Assert
		assertBusinessError(t, err, "OTP not found or expired", goerror.CodeUnauthorized)
	})

	t.Run("ExpiredChallengeDeleted", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		ch := loginChallenge()
		ch.ExpiresAt = testNow.Add(-time.Minute)
		deps.store.items["jane@example.com"] = ch

		// Act
		_, err := uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Email: "jane@example.com",
			OTP:   "1234",
		})

		// Assert
		assertBusinessError(t, err, "OTP has expired", goerror.CodeUnauthorized)
		if _, ok := deps.store.items["jane@example.com"]; ok {
			t.Fatalf("expected expired challenge deleted")
		}
	})

	t.Run("WrongCodeKeepsChallenge", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.store.items["jane@example.com"] = loginChallenge()

		// Act
		_, err := uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Email: "jane@example.com",
			OTP:   "9999",
		})

		// Assert
		assertBusinessError(t, err, "Invalid OTP", goerror.CodeUnauthorized)
		if _, ok := deps.store.items["jane@example.com"]; !ok {
			t.Fatalf("expected challenge kept after wrong code")
		}
	})

	t.Run("WrongFlowKeepsChallenge", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.store.items["jane@example.com"] = signupChallenge()

		// Act
		_, err := uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Email: "jane@example.com",
			OTP:   "1234",
		})

		// Assert
		assertBusinessError(t, err, "Invalid OTP flow", goerror.CodeUnauthorized)
		if _, ok := deps.store.items["jane@example.com"]; !ok {
			t.Fatalf("expected challenge kept after wrong flow")
		}
	})

	t.Run("AccountMissingAfterVerify", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.store.items["jane@example.com"] = loginChallenge()

		// Act
		_, err := uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Email: "jane@example.com",
			OTP:   "1234",
		})

		// Assert
		assertBusinessError(t, err, "User not found", goerror.CodeNotFound)
	})

	t.Run("ReissueInvalidatesOldCode", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		old := loginChallenge()
		old.Code = "5678"
		deps.store.items["jane@example.com"] = old
		deps.db.getUserByEmail = func(email string) (*entity.User, error) {
			return &entity.User{ID: "user-id-1", Email: email}, nil
		}

		// Act
		if err := uc.SendOTP(context.Background(), SendOTPInput{Email: "jane@example.com"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		_, err := uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Email: "jane@example.com",
			OTP:   "5678",
		})

		// Assert
		assertBusinessError(t, err, "Invalid OTP", goerror.CodeUnauthorized)
	})

	t.Run("RetryAfterWrongCodes", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.store.items["jane@example.com"] = loginChallenge()
		deps.db.getUserByEmail = func(email string) (*entity.User, error) {
			return &entity.User{ID: "user-id-1", Email: email, Name: "Jane Doe"}, nil
		}

		// Act
		for range 3 {
			_, err := uc.VerifyOTP(context.Background(), VerifyOTPInput{
				Email: "jane@example.com",
				OTP:   "0000",
			})
			assertBusinessError(t, err, "Invalid OTP", goerror.CodeUnauthorized)
		}
		out, err := uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Email: "jane@example.com",
			OTP:   "1234",
		})

		// Assert
		if err != nil {
			t.Fatalf("expected correct code to succeed after wrong attempts, got %v", err)
		}
		if out.AccessToken == "" {
			t.Fatalf("expected access token")
		}
	})

	t.Run("SingleRedemption", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.store.items["jane@example.com"] = loginChallenge()
		deps.db.getUserByEmail = func(email string) (*entity.User, error) {
			return &entity.User{ID: "user-id-1", Email: email, Name: "Jane Doe"}, nil
		}

		// Act
		_, first := uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Email: "jane@example.com",
			OTP:   "1234",
		})
		_, second := uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Email: "jane@example.com",
			OTP:   "1234",
		})

		// Assert
		if first != nil {
			t.Fatalf("expected first redemption to succeed, got %v", first)
		}
		assertBusinessError(t, second, "OTP not found or expired", goerror.CodeUnauthorized)
	})
}

func TestVerifySignupOTP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.store.items["jane@example.com"] = signupChallenge()
		deps.db.createUser = func(in entity.NewUser) (*entity.User, error) {
			if in.ID != "user-id-1" {
				t.Fatalf("unexpected generated id %q", in.ID)
			}
			if in.PasswordHash != "hashed:s3cretpass" {
				t.Fatalf("expected password to be hashed, got %q", in.PasswordHash)
			}
			if in.Role != entity.RoleUser {
				t.Fatalf("expected role user, got %v", in.Role)
			}
			return &entity.User{ID: in.ID, Name: in.Name, Email: in.Email, Role: in.Role}, nil
		}

		// Act
		out, err := uc.VerifySignupOTP(context.Background(), VerifySignupOTPInput{
			Email: "jane@example.com",
			OTP:   "1234",
		})

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.AccessToken != "token-user-id-1" {
			t.Fatalf("unexpected token %q", out.AccessToken)
		}
		if _, ok := deps.store.items["jane@example.com"]; ok {
			t.Fatalf("expected challenge consumed")
		}
		if err := deps.goroutine.Wait(); err != nil {
			t.Fatalf("expected event publish to succeed, got %v", err)
		}
		if len(deps.messaging.published) != 1 || deps.messaging.published[0].UserID != "user-id-1" {
			t.Fatalf("expected user registered event, got %v", deps.messaging.published)
		}
	})

	t.Run("LoginChallengeRejected", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.store.items["jane@example.com"] = loginChallenge()

		// Act
		_, err := uc.VerifySignupOTP(context.Background(), VerifySignupOTPInput{
			Email: "jane@example.com",
			OTP:   "1234",
		})

		// Assert
		assertBusinessError(t, err, "Invalid OTP flow", goerror.CodeUnauthorized)
	})

	t.Run("DuplicateAccount", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.store.items["jane@example.com"] = signupChallenge()
		deps.db.createUser = func(entity.NewUser) (*entity.User, error) {
			return nil, goerror.ErrConflict
		}

		// Act
		_, err := uc.VerifySignupOTP(context.Background(), VerifySignupOTPInput{
			Email: "jane@example.com",
			OTP:   "1234",
		})

		// Assert
		assertBusinessError(t, err, "User already exists", goerror.CodeConflict)
	})

	t.Run("CreationFailureKeepsChallenge", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.store.items["jane@example.com"] = signupChallenge()
		deps.db.createUser = func(entity.NewUser) (*entity.User, error) {
			return nil, errors.New("db down")
		}

		// Act
		_, err := uc.VerifySignupOTP(context.Background(), VerifySignupOTPInput{
			Email: "jane@example.com",
			OTP:   "1234",
		})

		// Assert
		assertBusinessError(t, err, "Failed to create user", goerror.CodeInternal)
		if _, ok := deps.store.items["jane@example.com"]; !ok {
			t.Fatalf("expected challenge kept after failed creation")
		}
	})
}
