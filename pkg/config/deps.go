package config

import (
	"log/slog"

	"github.com/amirasaad/payrecon/pkg/cache"
	"github.com/amirasaad/payrecon/pkg/eventbus"
	"github.com/amirasaad/payrecon/pkg/provider/payment"
	"github.com/amirasaad/payrecon/pkg/repository"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	Uow        repository.UnitOfWork
	Gateways   *payment.Registry
	EventBus   eventbus.Bus
	// Deliveries is optional; nil disables webhook redelivery short-circuiting.
	Deliveries cache.DeliveryCache
	Logger     *slog.Logger
	Config     *App
}
