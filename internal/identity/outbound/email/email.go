// Package email delivers one-time codes to users.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/medivision/medivision/internal/pkg/instrument"
	"github.com/medivision/medivision/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

const otpBodyHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #0D3B2E;">MediVision OTP Verification</h2>
  <p>Hello,</p>
  <p>Your OTP code for signup/login is:</p>
  <div style="background-color: #f0f0f0; padding: 20px; text-align: center; border-radius: 8px; margin: 20px 0;">
    <h1 style="margin: 0; color: #0D3B2E; font-size: 36px; letter-spacing: 5px;">%s</h1>
  </div>
  <p>This code will expire in %d minutes.</p>
  <p>If you didn't request this code, please ignore this email.</p>
  <hr style="margin: 30px 0;">
  <p style="font-size: 12px; color: #666;">
    This is an automated message from MediVision. Please do not reply to this email.
  </p>
</div>`

type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

// SendOTP emails a one-time code along with its validity window.
func (m *Mail) SendOTP(ctx context.Context, to, code string, expiresIn time.Duration) error {
	ctx, span := m.ins.Tracer("identity.outbound.email").Start(ctx, "SendOTP")
	defer span.End()

	msg := mail.Message{
		To:       []string{to},
		Subject:  "MediVision - Your OTP Code",
		HTMLBody: fmt.Sprintf(otpBodyHTML, code, int(expiresIn.Minutes())),
	}

	if err := m.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
