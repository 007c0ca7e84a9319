package jwt

import (
	"errors"
	"testing"
	"time"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")

type stubClock struct{ now time.Time }

func (s stubClock) Now() time.Time { return s.now }

type stubUUID struct{}

func (stubUUID) Generate() string { return "jti-1" }

func newTestJWT(t *testing.T, now time.Time) *Symmetric {
	t.Helper()

	j, err := NewHS512(Config{
		Secret:    testSecret,
		Issuer:    "medivision",
		Audiences: []string{"medivision"},
		TTL:       time.Hour,
		Clock:     stubClock{now: now},
		UUID:      stubUUID{},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return j
}

func TestNewHS512(t *testing.T) {
	t.Run("ShortSecret", func(t *testing.T) {
		// Act
		_, err := NewHS512(Config{Secret: []byte("too-short")})

		// Assert
		if !errors.Is(err, ErrSigningKeyTooShort) {
			t.Fatalf("expected ErrSigningKeyTooShort, got %v", err)
		}
	})
}

func TestSymmetric(t *testing.T) {
	t.Run("GenerateAndVerify", func(t *testing.T) {
		// Arrange
		j := newTestJWT(t, time.Now())

		// Act
		token, err := j.Generate("user-id-1", "jane@example.com", "Jane Doe")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		claims, err := j.Verify(token)

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if claims.Subject != "user-id-1" {
			t.Fatalf("expected subject user-id-1, got %q", claims.Subject)
		}
		if claims.UserEmail != "jane@example.com" || claims.UserName != "Jane Doe" {
			t.Fatalf("unexpected payload claims %+v", claims)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		// Arrange
		j := newTestJWT(t, time.Now().Add(-2*time.Hour))

		// Act
		token, err := j.Generate("user-id-1", "jane@example.com", "Jane Doe")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		_, err = j.Verify(token)

		// Assert
		if !errors.Is(err, ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("TamperedToken", func(t *testing.T) {
		// Arrange
		j := newTestJWT(t, time.Now())

		// Act
		token, err := j.Generate("user-id-1", "jane@example.com", "Jane Doe")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		_, err = j.Verify(token + "x")

		// Assert
		if err == nil {
			t.Fatalf("expected verification error for tampered token")
		}
	})
}
