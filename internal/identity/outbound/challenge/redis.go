package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/medivision/medivision/internal/pkg/clock"
	"github.com/medivision/medivision/internal/pkg/goerror"
	"github.com/medivision/medivision/internal/pkg/instrument"
)

const keyPrefix = "identity:challenge:"

// expiredRetention keeps a record readable past ExpiresAt so verification can
// report expiry instead of a generic miss.
const expiredRetention = time.Hour

type challengeRecord struct {
	Code         string              `json:"code"`
	Flow         int16               `json:"flow"`
	ExpiresAt    time.Time           `json:"expires_at"`
	Registration *registrationRecord `json:"registration,omitempty"`
}

type registrationRecord struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	Phone       string     `json:"phone,omitempty"`
	Gender      int16      `json:"gender,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Location    string     `json:"location,omitempty"`
	Bio         string     `json:"bio,omitempty"`
}

// Redis is a Store backed by a shared Redis instance so challenges survive
// restarts and are visible across replicas.
type Redis struct {
	cache *redis.Client
	clk   clock.Clocker
	ins   instrument.Instrumentation
}

// NewRedis constructs a Redis-backed store.
func NewRedis(cache *redis.Client, clk clock.Clocker, ins instrument.Instrumentation) *Redis {
	return &Redis{cache: cache, clk: clk, ins: ins}
}

func (r *Redis) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return r.ins.Tracer("identity.outbound.challenge").Start(ctx, name)
}

func (r *Redis) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (r *Redis) Put(ctx context.Context, email string, ch entity.Challenge) (err error) {
	ctx, span := r.startSpan(ctx, "Put")
	defer func() { r.endSpan(span, err) }()

	rec := challengeRecord{
		Code:      ch.Code,
		Flow:      int16(ch.Flow),
		ExpiresAt: ch.ExpiresAt,
	}
	if reg := ch.Registration; reg != nil {
		rec.Registration = &registrationRecord{
			Name:        reg.Name,
			Email:       reg.Email,
			Password:    reg.Password,
			Phone:       reg.Phone,
			Gender:      int16(reg.Gender),
			DateOfBirth: reg.DateOfBirth,
			Location:    reg.Location,
			Bio:         reg.Bio,
		}
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("challenge: marshal record: %w", err)
	}

	ttl := ch.ExpiresAt.Sub(r.clk.Now()) + expiredRetention
	if ttl <= 0 {
		ttl = expiredRetention
	}

	return r.cache.Set(ctx, keyPrefix+email, body, ttl).Err()
}

func (r *Redis) Get(ctx context.Context, email string) (_ *entity.Challenge, err error) {
	ctx, span := r.startSpan(ctx, "Get")
	defer func() { r.endSpan(span, err) }()

	body, err := r.cache.Get(ctx, keyPrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, goerror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var rec challengeRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("challenge: unmarshal record: %w", err)
	}

	ch := &entity.Challenge{
		Code:      rec.Code,
		Flow:      entity.ChallengeFlow(rec.Flow),
		ExpiresAt: rec.ExpiresAt,
	}
	if reg := rec.Registration; reg != nil {
		ch.Registration = &entity.Registration{
			Name:        reg.Name,
			Email:       reg.Email,
			Password:    reg.Password,
			Phone:       reg.Phone,
			Gender:      entity.Gender(reg.Gender),
			DateOfBirth: reg.DateOfBirth,
			Location:    reg.Location,
			Bio:         reg.Bio,
		}
	}

	return ch, nil
}

func (r *Redis) Delete(ctx context.Context, email string) (err error) {
	ctx, span := r.startSpan(ctx, "Delete")
	defer func() { r.endSpan(span, err) }()

	return r.cache.Del(ctx, keyPrefix+email).Err()
}
