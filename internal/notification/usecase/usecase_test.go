package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/medivision/medivision/internal/pkg/config"
	"github.com/medivision/medivision/internal/pkg/instrument"
	"github.com/medivision/medivision/internal/pkg/mail"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeValidator struct{ err error }

func (f fakeValidator) Validate(any) error { return f.err }

type fakeConfig struct {
	config.Config
	strings map[string]string
}

func (f fakeConfig) GetString(key string) string { return f.strings[key] }

type fakeMail struct {
	err  error
	sent []mail.Message
}

func (f *fakeMail) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestUsecase(t *testing.T) (*Usecase, *fakeMail) {
	t.Helper()

	sender := &fakeMail{}
	uc := NewNotification(Dependency{
		Config: fakeConfig{strings: map[string]string{
			"modules.notification.support_email": "support@medivision.com",
		}},
		Clock:      fakeClock{now: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)},
		Validator:  fakeValidator{},
		RepoMail:   sender,
		Instrument: instrument.NewNoop(),
	})

	return uc, sender
}

func TestConsumeUserRegistered(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		uc, sender := newTestUsecase(t)

		// Act
		err := uc.ConsumeUserRegistered(context.Background(), ConsumeUserRegisteredInput{
			UserID: "user-id-1",
			Email:  "jane@example.com",
			Name:   "Jane Doe",
		})

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(sender.sent) != 1 {
			t.Fatalf("expected one email, got %d", len(sender.sent))
		}
		msg := sender.sent[0]
		if msg.To[0] != "jane@example.com" {
			t.Fatalf("unexpected recipient %v", msg.To)
		}
		if msg.Subject != "Welcome to MediVision" {
			t.Fatalf("unexpected subject %q", msg.Subject)
		}
		if !strings.Contains(msg.HTMLBody, "Jane Doe") {
			t.Fatalf("expected body to greet the user, got %q", msg.HTMLBody)
		}
		if !strings.Contains(msg.HTMLBody, "support@medivision.com") {
			t.Fatalf("expected body to include support email, got %q", msg.HTMLBody)
		}
	})

	t.Run("InvalidPayload", func(t *testing.T) {
		// Arrange
		uc, sender := newTestUsecase(t)
		uc.validator = fakeValidator{err: errors.New("missing email")}

		// Act
		err := uc.ConsumeUserRegistered(context.Background(), ConsumeUserRegisteredInput{})

		// Assert
		if err == nil {
			t.Fatalf("expected validation error")
		}
		if len(sender.sent) != 0 {
			t.Fatalf("expected no email sent")
		}
	})

	t.Run("SendFailure", func(t *testing.T) {
		// Arrange
		uc, sender := newTestUsecase(t)
		sender.err = errors.New("smtp down")

		// Act
		err := uc.ConsumeUserRegistered(context.Background(), ConsumeUserRegisteredInput{
			UserID: "user-id-1",
			Email:  "jane@example.com",
			Name:   "Jane Doe",
		})

		// Assert
		if err == nil {
			t.Fatalf("expected delivery error to propagate")
		}
	})
}
