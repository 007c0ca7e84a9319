// Package app wires configuration, shared libraries, external resources, and
// the feature modules into a runnable service.
package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
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

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	mail      mail.Mail
	messaging messaging.Messaging

	// server
	router     *router.Router
	httpServer *http.Server

	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
