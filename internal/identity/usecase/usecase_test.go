package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medivision/medivision/internal/identity/entity"
	"github.com/medivision/medivision/internal/pkg/config"
	"github.com/medivision/medivision/internal/pkg/goerror"
	"github.com/medivision/medivision/internal/pkg/goroutine"
	"github.com/medivision/medivision/internal/pkg/instrument"
	"github.com/medivision/medivision/internal/pkg/jwt"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeUUID struct{ id string }

func (f fakeUUID) Generate() string { return f.id }

type fakeOTP struct {
	code string
	err  error
}

func (f fakeOTP) Generate() (string, error) { return f.code, f.err }

type fakeJWT struct{ err error }

func (f fakeJWT) Generate(userID, _, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID, nil
}

func (fakeJWT) Verify(string) (jwt.Claims, error) {
	return jwt.Claims{}, errors.New("not implemented")
}

type fakeBcrypt struct{ hashErr error }

func (f fakeBcrypt) Hash(plaintext string) ([]byte, error) {
	if f.hashErr != nil {
		return nil, f.hashErr
	}
	return []byte("hashed:" + plaintext), nil
}

func (fakeBcrypt) Verify(hashed, plaintext string) bool {
	return hashed == "hashed:"+plaintext
}

type fakeValidator struct{ err error }

func (f fakeValidator) Validate(any) error { return f.err }

type fakeConfig struct {
	config.Config
	minutes map[string]time.Duration
}

func (f fakeConfig) GetMinute(key string) time.Duration { return f.minutes[key] }

type fakeDB struct {
	getUserByEmail   func(email string) (*entity.User, error)
	getUserByID      func(id string) (*entity.User, error)
	getUserLoginInfo func(email string) (*entity.UserLoginInfo, error)
	createUser       func(in entity.NewUser) (*entity.User, error)
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.getUserByEmail == nil {
		return nil, goerror.ErrNotFound
	}
	return f.getUserByEmail(email)
}

func (f *fakeDB) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	if f.getUserByID == nil {
		return nil, goerror.ErrNotFound
	}
	return f.getUserByID(id)
}

func (f *fakeDB) GetUserLoginInfo(_ context.Context, email string) (*entity.UserLoginInfo, error) {
	if f.getUserLoginInfo == nil {
		return nil, goerror.ErrNotFound
	}
	return f.getUserLoginInfo(email)
}

func (f *fakeDB) CreateUser(_ context.Context, in entity.NewUser) (*entity.User, error) {
	if f.createUser == nil {
		return nil, errors.New("unexpected CreateUser call")
	}
	return f.createUser(in)
}

type fakeChallengeStore struct {
	items   map[string]entity.Challenge
	putErr  error
	delErr  error
	deleted []string
}

func newFakeChallengeStore() *fakeChallengeStore {
	return &fakeChallengeStore{items: map[string]entity.Challenge{}}
}

func (f *fakeChallengeStore) Put(_ context.Context, email string, ch entity.Challenge) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.items[email] = ch
	return nil
}

func (f *fakeChallengeStore) Get(_ context.Context, email string) (*entity.Challenge, error) {
	ch, ok := f.items[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &ch, nil
}

func (f *fakeChallengeStore) Delete(_ context.Context, email string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, email)
	delete(f.items, email)
	return nil
}

type fakeMailer struct {
	err  error
	sent []string
}

func (f *fakeMailer) SendOTP(_ context.Context, to, _ string, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

type fakeMessaging struct {
	err       error
	published []UserRegisteredEvent
}

func (f *fakeMessaging) PublishUserRegistered(_ context.Context, msg UserRegisteredEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

type testDeps struct {
	db        *fakeDB
	store     *fakeChallengeStore
	mailer    *fakeMailer
	messaging *fakeMessaging
	goroutine *goroutine.Manager
}

func newTestUsecase(t *testing.T) (*Usecase, *testDeps) {
	t.Helper()

	deps := &testDeps{
		db:        &fakeDB{},
		store:     newFakeChallengeStore(),
		mailer:    &fakeMailer{},
		messaging: &fakeMessaging{},
		goroutine: goroutine.NewManager(10),
	}

	uc := New(Dependency{
		RepoDB:        deps.db,
		RepoMessaging: deps.messaging,
		Challenges:    deps.store,
		Mailer:        deps.mailer,
		Validator:     fakeValidator{},
		Config: fakeConfig{minutes: map[string]time.Duration{
			"modules.identity.otp_ttl_minutes": 10 * time.Minute,
		}},
		Bcrypt:     fakeBcrypt{},
		UUID:       fakeUUID{id: "user-id-1"},
		OTP:        fakeOTP{code: "1234"},
		Clock:      fakeClock{now: testNow},
		JWT:        fakeJWT{},
		Instrument: instrument.NewNoop(),
		Goroutine:  deps.goroutine,
	})

	return uc, deps
}

func assertBusinessError(t *testing.T, err error, msg string, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected goerror.Error, got %v", err)
	}
	if gerr.Msg() != msg {
		t.Fatalf("expected message %q, got %q", msg, gerr.Msg())
	}
	if gerr.Code() != code {
		t.Fatalf("expected code %v, got %v", code, gerr.Code())
	}
}
