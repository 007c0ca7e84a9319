package usecase

import (
	"context"
	"testing"

	libjwt "github.com/golang-jwt/jwt/v5"
	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/pkg/goerror"
	"github.com/medivision/medivision/internal/pkg/jwt"
)

func TestProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t)
		deps.db.getUserByID = func(id string) (*entity.User, error) {
			return &entity.User{ID: id, Name: "Jane Doe", Email: "jane@example.com"}, nil
		}
		ctx := jwt.SetAuth(context.Background(), jwt.Claims{
			RegisteredClaims: libjwt.RegisteredClaims{Subject: "user-id-1"},
			UserEmail:        "jane@example.com",
			UserName:         "Jane Doe",
		})

		// Act
		out, err := uc.Profile(ctx)

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.User.ID != "user-id-1" {
			t.Fatalf("unexpected user %+v", out.User)
		}
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		// Arrange
		uc, _ := newTestUsecase(t)

		// Act
		_, err := uc.Profile(context.Background())

		// Assert
		assertBusinessError(t, err, "Authentication required", goerror.CodeUnauthorized)
	})

	t.Run("AccountGone", func(t *testing.T) {
		// Arrange
		uc, _ := newTestUsecase(t)
		ctx := jwt.SetAuth(context.Background(), jwt.Claims{
			RegisteredClaims: libjwt.RegisteredClaims{Subject: "user-id-1"},
		})

		// Act
		_, err := uc.Profile(ctx)

		// Assert
		assertBusinessError(t, err, "User not found", goerror.CodeNotFound)
	})
}
