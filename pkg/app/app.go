// Package app wires the engine together: services, directory and the event
// bus handlers that keep the session countdown in step with user actions.
package app

import (
	"log/slog"

	"github.com/amirasaad/bankist/pkg/config"
	"github.com/amirasaad/bankist/pkg/eventbus"
	"github.com/amirasaad/bankist/pkg/repository"
	accountsvc "github.com/amirasaad/bankist/pkg/service/account"
	"github.com/amirasaad/bankist/pkg/service/auth"
	"github.com/amirasaad/bankist/pkg/service/session"
)

// Deps contains the dependencies needed to assemble an App.
type Deps struct {
	Directory repository.Directory
	Bus       eventbus.Bus
	Logger    *slog.Logger
}

// App is the assembled engine: one session plus the services operating on the
// shared directory. Constructed once at program start and torn down at exit;
// there is no ambient global state.
type App struct {
	Deps           *Deps
	Config         *config.App
	SessionService *session.Service
	AuthService    *auth.Service
	AccountService *accountsvc.Service
}

// New assembles the engine and registers the event handlers.
func New(deps *Deps, cfg *config.App) *App {
	sess := session.New(deps.Bus, int(cfg.Session.InactivityLimit.Seconds()), deps.Logger)
	app := &App{
		Deps:           deps,
		Config:         cfg,
		SessionService: sess,
		AuthService:    auth.New(deps.Directory, sess, deps.Bus, deps.Logger),
		AccountService: accountsvc.New(
			deps.Directory, sess, deps.Bus, cfg.Loan.ProcessingDelay, deps.Logger,
		),
	}
	app.setupEventBus()
	return app
}
