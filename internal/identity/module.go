// Package identity wires the authentication module: OTP issuance and
// verification, password login, and profile lookup.
package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medivision/medivision/internal/identity/inbound"
	"github.com/medivision/medivision/internal/identity/outbound/challenge"
	"github.com/medivision/medivision/internal/identity/outbound/db"
	"github.com/medivision/medivision/internal/identity/outbound/email"
	"github.com/medivision/medivision/internal/identity/outbound/mq"
	"github.com/medivision/medivision/internal/identity/usecase"
	"github.com/medivision/medivision/internal/pkg/clock"
	"github.com/medivision/medivision/internal/pkg/config"
	"github.com/medivision/medivision/internal/pkg/goroutine"
	"github.com/medivision/medivision/internal/pkg/hash"
	"github.com/medivision/medivision/internal/pkg/instrument"
	"github.com/medivision/medivision/internal/pkg/jwt"
	"github.com/medivision/medivision/internal/pkg/mail"
	"github.com/medivision/medivision/internal/pkg/messaging"
	"github.com/medivision/medivision/internal/pkg/otp"
	"github.com/medivision/medivision/internal/pkg/router"
	"github.com/medivision/medivision/internal/pkg/uid"
	"github.com/medivision/medivision/internal/pkg/validator"
	"github.com/redis/go-redis/v9"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	CacheConn  *redis.Client              ``
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	mailer := email.New(dep.Mail, dep.Instrument)
	challenges := challenge.NewStore(
		dep.Config.GetString("modules.identity.challenge_driver"),
		dep.CacheConn,
		dep.Clock,
		dep.Instrument,
	)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoMessaging: repoMsg,
		Challenges:    challenges,
		Mailer:        mailer,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		UUID:          dep.UUID,
		OTP:           dep.OTP,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, inbound.CookieConfig{
		Name:   dep.Config.GetString("modules.identity.session_cookie_name"),
		MaxAge: dep.Config.GetDay("modules.identity.session_cookie_ttl_days"),
		Secure: dep.Config.GetString("app.env") == "production",
	})

	return nil
}
