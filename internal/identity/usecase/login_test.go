package usecase

import (
	"context"
	"testing"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/pkg/goerror"
)

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.db.getUserLoginInfo = func(email string) (*entity.UserLoginInfo, error) {
			return &entity.UserLoginInfo{
				ID:       "user-id-1",
				Name:     "Jane Doe",
				Email:    email,
				Password: "hashed:s3cretpass",
			}, nil
		}
		deps.db.getUserByID = func(id string) (*entity.User, error) {
			return &entity.User{ID: id, Name: "Jane Doe", Email: "jane@example.com"}, nil
		}

		// Act
		out, err := uc.Login(context.Background(), LoginInput{
			Email:    "jane@example.com",
			Password: "s3cretpass",
		})

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.AccessToken != "token-user-id-1" {
			t.Fatalf("unexpected token %q", out.AccessToken)
		}
		if out.User.Email != "jane@example.com" {
			t.Fatalf("unexpected user %+v", out.User)
		}
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		// Arrange
		uc, _ := newTestUsecase(t)

		// Act
		_, err := uc.Login(context.Background(), LoginInput{
			Email:    "ghost@example.com",
			Password: "s3cretpass",
		})

		// Assert
		assertBusinessError(t, err, "invalid email or password", goerror.CodeUnauthorized)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.db.getUserLoginInfo = func(email string) (*entity.UserLoginInfo, error) {
			return &entity.UserLoginInfo{
				ID:       "user-id-1",
				Email:    email,
				Password: "hashed:s3cretpass",
			}, nil
		}

		// Act
		_, err := uc.Login(context.Background(), LoginInput{
			Email:    "jane@example.com",
			Password: "wrongpass",
		})

		// Assert
		assertBusinessError(t, err, "invalid email or password", goerror.CodeUnauthorized)
	})
}
