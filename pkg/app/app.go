// Package app wires the reconciliation services from infrastructure dependencies.
package app

import (
	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/handler/alert"
	"github.com/amirasaad/payrecon/pkg/service/auth"
	"github.com/amirasaad/payrecon/pkg/service/payment"
	"github.com/amirasaad/payrecon/pkg/service/reconcile"
	"github.com/amirasaad/payrecon/pkg/service/sweep"
	"github.com/amirasaad/payrecon/pkg/service/verification"
	"github.com/amirasaad/payrecon/pkg/service/webhook"
)

// App holds the constructed services shared by the HTTP server, the sweep
// runner and the CLI.
type App struct {
	Deps         *config.Deps
	Config       *config.App
	AuthService  *auth.Service
	Verification *verification.Client
	Reconciler   *reconcile.Service
	Ingestor     *webhook.Ingestor
	Payments     *payment.Service
	Sweeper      *sweep.Sweeper
}

// New builds every service from deps and cfg. Nil config sections fall back
// to the package defaults of the service they configure.
func New(deps *config.Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	if deps.EventBus != nil {
		alert.Register(deps.EventBus, deps.Logger)
	}

	verifyCfg := cfg.Verification
	reconCfg := cfg.Reconciliation
	if reconCfg == nil {
		reconCfg = &config.Reconciliation{}
	}

	var jwtCfg *config.Jwt
	if cfg.Auth != nil {
		jwtCfg = cfg.Auth.Jwt
	}
	app.AuthService = auth.NewWithJWT(jwtCfg, deps.Logger)

	app.Verification = verification.New(
		deps.Gateways,
		verification.PolicyFromConfig(verifyCfg),
		deps.Logger,
	)
	app.Reconciler = reconcile.New(deps.Uow, app.Verification, deps.EventBus, deps.Logger)
	app.Ingestor = webhook.New(
		deps.Gateways,
		deps.Uow,
		app.Reconciler,
		reconCfg.WebhookTimeout,
		deps.Logger,
	)
	if deps.Deliveries != nil {
		app.Ingestor.WithDeliveryCache(deps.Deliveries, reconCfg.DeliveryTTL)
	}

	initTimeout := verification.DefaultPolicy().AttemptTimeout
	if verifyCfg != nil && verifyCfg.HTTPTimeout > 0 {
		initTimeout = verifyCfg.HTTPTimeout
	}
	app.Payments = payment.New(deps.Gateways, deps.Uow, initTimeout, deps.Logger)
	app.Sweeper = sweep.New(
		deps.Uow,
		app.Reconciler,
		sweep.OptionsFromConfig(reconCfg),
		deps.Logger,
	)
	return app
}
