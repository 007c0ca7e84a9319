// Package challenge stores pending one-time codes keyed by email address.
//
// A store holds at most one challenge per email; issuing a new code replaces
// whatever was pending. Expiry is enforced by the caller against ExpiresAt so
// an expired code can still be reported distinctly from a missing one.
package challenge

import (
	"context"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/redis/go-redis/v9"

	"github.com/medivision/medivision/internal/pkg/clock"
	"github.com/medivision/medivision/internal/pkg/instrument"
)

// Store is the challenge persistence contract.
type Store interface {
	// Put saves the challenge for email, replacing any pending one.
	Put(ctx context.Context, email string, ch entity.Challenge) error
	// Get returns the pending challenge for email or goerror.ErrNotFound.
	Get(ctx context.Context, email string) (*entity.Challenge, error)
	// Delete removes the pending challenge for email. Deleting a missing
	// challenge is not an error.
	Delete(ctx context.Context, email string) error
}

// Driver names accepted by NewStore.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// NewStore builds the configured Store driver. An unrecognized driver name
// falls back to the in-memory store.
func NewStore(driver string, cache *redis.Client, clk clock.Clocker, ins instrument.Instrumentation) Store {
	if driver == DriverRedis && cache != nil {
		return NewRedis(cache, clk, ins)
	}
	return NewMemory(ins)
}
