package usecase

import (
	"context"
	"log/slog"

	"github.com/medivision/medivision/internal/pkg/mail"
)

const welcomeBodyHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Welcome to {{.company_name}}, {{.name}}!</h2>
  <p style="font-size: 16px; color: #555;">Your account has been created and is ready to use.</p>
  <p style="font-size: 14px; color: #999;">If you have any questions, reach us at {{.support_email}}.</p>
  <p style="font-size: 12px; color: #bbb;">&copy; {{.year}} {{.company_name}}</p>
</div>`

type ConsumeUserRegisteredInput struct {
	UserID string `validate:"required"`
	Email  string `validate:"required,email"`
	Name   string `validate:"required"`
}

// ConsumeUserRegistered sends a welcome email to a freshly created account.
func (s *Usecase) ConsumeUserRegistered(ctx context.Context, in ConsumeUserRegisteredInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserRegistered")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.WarnContext(ctx, "invalid user registered payload", "error", err, "user_id", in.UserID)
		return err
	}

	data := s.baseEmailTemplateData()
	data["name"] = in.Name

	body, err := s.renderTemplate("welcome", welcomeBodyHTML, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render welcome email", "error", err)
		return err
	}

	msg := mail.Message{
		To:       []string{in.Email},
		Subject:  "Welcome to MediVision",
		HTMLBody: body,
	}
	if err := s.repoMail.Send(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "failed to send welcome email", "error", err, "user_id", in.UserID)
		return err
	}

	return nil
}
