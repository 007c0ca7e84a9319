package challenge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/pkg/goerror"
	"github.com/medivision/medivision/internal/pkg/instrument"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("PutGetDelete", func(t *testing.T) {
		// Arrange
		store := NewMemory(instrument.NewNoop())
		ch := entity.Challenge{
			Code:      "1234",
			Flow:      entity.ChallengeFlowLogin,
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}

		// Act
		if err := store.Put(ctx, "jane@example.com", ch); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got, err := store.Get(ctx, "jane@example.com")

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Code != "1234" || got.Flow != entity.ChallengeFlowLogin {
			t.Fatalf("unexpected challenge %+v", got)
		}

		if err := store.Delete(ctx, "jane@example.com"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := store.Get(ctx, "jane@example.com"); !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		// Arrange
		store := NewMemory(instrument.NewNoop())

		// Act
		_, err := store.Get(ctx, "ghost@example.com")

		// Assert
		if !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("PutReplaces", func(t *testing.T) {
		// Arrange
		store := NewMemory(instrument.NewNoop())
		first := entity.Challenge{Code: "1111", Flow: entity.ChallengeFlowLogin}
		second := entity.Challenge{Code: "2222", Flow: entity.ChallengeFlowSignup}

		// Act
		_ = store.Put(ctx, "jane@example.com", first)
		_ = store.Put(ctx, "jane@example.com", second)
		got, err := store.Get(ctx, "jane@example.com")

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Code != "2222" || got.Flow != entity.ChallengeFlowSignup {
			t.Fatalf("expected replacement challenge, got %+v", got)
		}
	})
}
