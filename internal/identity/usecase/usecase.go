package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/pkg/clock"
	"github.com/medivision/medivision/internal/pkg/config"
	"github.com/medivision/medivision/internal/pkg/goroutine"
	"github.com/medivision/medivision/internal/pkg/hash"
	"github.com/medivision/medivision/internal/pkg/instrument"
	"github.com/medivision/medivision/internal/pkg/jwt"
	"github.com/medivision/medivision/internal/pkg/otp"
	"github.com/medivision/medivision/internal/pkg/uid"
	"github.com/medivision/medivision/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// UserRegisteredEvent is published when a signup verification completes.
type UserRegisteredEvent struct {
	UserID string
	Email  string
	Name   string
}

type repoMessaging interface {
	PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserLoginInfo(ctx context.Context, email string) (*entity.UserLoginInfo, error)
	CreateUser(ctx context.Context, in entity.NewUser) (*entity.User, error)
}

type challengeStore interface {
	Put(ctx context.Context, email string, ch entity.Challenge) error
	Get(ctx context.Context, email string) (*entity.Challenge, error)
	Delete(ctx context.Context, email string) error
}

type mailer interface {
	SendOTP(ctx context.Context, to, code string, expiresIn time.Duration) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	challenges    challengeStore
	mailer        mailer
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	uuid          uid.StringID
	otp           otp.Generator
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager

	verifyMu keyedMutex
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Challenges    challengeStore
	Mailer        mailer
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	UUID          uid.StringID
	OTP           otp.Generator
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		challenges:    dep.Challenges,
		mailer:        dep.Mailer,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		uuid:          dep.UUID,
		otp:           dep.OTP,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) otpTTL() time.Duration {
	return s.cfg.GetMinute("modules.identity.otp_ttl_minutes")
}

// keyedMutex serializes challenge verification per email so a code cannot be
// redeemed twice between read and delete.
type keyedMutex struct {
	mus sync.Map
}

func (k *keyedMutex) lock(key string) func() {
	v, _ := k.mus.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
