// Package email adapts the mail client for notification deliveries.
package email

import (
	"context"

	"github.com/medivision/medivision/internal/pkg/goerror"
	"github.com/medivision/medivision/internal/pkg/instrument"
	"github.com/medivision/medivision/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

func (m *Mail) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return m.ins.Tracer("notification.outbound.email").Start(ctx, name)
}

func (m *Mail) endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (m *Mail) Send(ctx context.Context, msg mail.Message) (err error) {
	ctx, span := m.startSpan(ctx, "Send")
	defer func() { m.endSpan(span, err) }()

	if err := m.client.Send(ctx, msg); err != nil {
		return goerror.NewServer(err)
	}

	return nil
}
