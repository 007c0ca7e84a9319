package challenge

import (
	"context"
	"sync"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/pkg/goerror"
	"github.com/medivision/medivision/internal/pkg/instrument"
	"go.opentelemetry.io/otel/trace"
)

// Memory is a process-local Store. Challenges do not survive a restart.
type Memory struct {
	mu         sync.RWMutex
	challenges map[string]entity.Challenge
	ins        instrument.Instrumentation
}

// NewMemory constructs an empty in-memory store.
func NewMemory(ins instrument.Instrumentation) *Memory {
	return &Memory{
		challenges: make(map[string]entity.Challenge),
		ins:        ins,
	}
}

func (m *Memory) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return m.ins.Tracer("identity.outbound.challenge").Start(ctx, name)
}

func (m *Memory) Put(ctx context.Context, email string, ch entity.Challenge) error {
	_, span := m.startSpan(ctx, "Put")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.challenges[email] = ch
	return nil
}

func (m *Memory) Get(ctx context.Context, email string) (*entity.Challenge, error) {
	_, span := m.startSpan(ctx, "Get")
	defer span.End()

	m.mu.RLock()
	defer m.mu.RUnlock()

	ch, ok := m.challenges[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	return &ch, nil
}

func (m *Memory) Delete(ctx context.Context, email string) error {
	_, span := m.startSpan(ctx, "Delete")
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.challenges, email)
	return nil
}
