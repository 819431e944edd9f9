package initializer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/payrecon/infra"
	infra_cache "github.com/amirasaad/payrecon/infra/cache"
	infra_eventbus "github.com/amirasaad/payrecon/infra/eventbus"
	"github.com/amirasaad/payrecon/infra/migrations"
	"github.com/amirasaad/payrecon/infra/provider/mockpayment"
	"github.com/amirasaad/payrecon/infra/provider/paystack"
	"github.com/amirasaad/payrecon/infra/provider/stripepayment"
	infra_repository "github.com/amirasaad/payrecon/infra/repository"
	"github.com/amirasaad/payrecon/pkg/cache"
	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/eventbus"
	"github.com/amirasaad/payrecon/pkg/provider/payment"
	"gorm.io/gorm"
)

// ErrNoGateway is returned when no payment gateway is configured.
var ErrNoGateway = errors.New("no payment gateway configured")

// InitializeDependencies initializes all the application dependencies.
// The returned cleanup closes the event bus and the database pool.
func InitializeDependencies(cfg *config.App) (
	deps *config.Deps,
	cleanup func(),
	err error,
) {
	logger := SetupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, nil, err
	}
	closers := []io.Closer{}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		closers = append(closers, sqlDB)
	}
	cleanup = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if cerr := closers[i].Close(); cerr != nil {
				logger.Warn("close failed", "error", cerr)
			}
		}
	}

	if cfg.DB.AutoMigrate {
		if err := migrate(db, logger); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	gateways, err := initGateways(cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	bus, err := initEventBus(cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if c, ok := bus.(io.Closer); ok {
		closers = append(closers, c)
	}

	deliveries := initDeliveryCache(cfg, logger)
	if c, ok := deliveries.(io.Closer); ok {
		closers = append(closers, c)
	}

	return &config.Deps{
		Uow:        infra_repository.NewUoW(db),
		Gateways:   gateways,
		EventBus:   bus,
		Deliveries: deliveries,
		Logger:     logger,
		Config:     cfg,
	}, cleanup, nil
}

func migrate(db *gorm.DB, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := migrations.Up(sqlDB, logger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// initGateways registers every gateway that has credentials configured.
func initGateways(cfg *config.App, logger *slog.Logger) (*payment.Registry, error) {
	registry := payment.NewRegistry()
	gw := cfg.Gateways
	if gw == nil {
		return nil, ErrNoGateway
	}

	timeout := cfg.Verification.HTTPTimeout
	if gw.Paystack != nil && gw.Paystack.SecretKey != "" {
		registry.Register(paystack.New(gw.Paystack, timeout, logger))
	}
	if gw.Stripe != nil && gw.Stripe.ApiKey != "" {
		registry.Register(stripepayment.New(gw.Stripe, logger))
	}
	if gw.Mock != nil && gw.Mock.Enabled {
		if cfg.Env == "production" {
			logger.Warn("Mock gateway is enabled in production")
		}
		registry.Register(mockpayment.NewMockPaymentProvider(gw.Mock.Secret))
	}

	names := registry.Names()
	if len(names) == 0 {
		return nil, ErrNoGateway
	}
	logger.Info("Payment gateways registered", "gateways", names)
	return registry, nil
}

// initEventBus prefers Kafka, then Redis Streams, then memory.
// A broker that cannot be reached falls back to memory so the service still
// reconciles; events are then only observed in-process.
func initEventBus(cfg *config.App, logger *slog.Logger) (eventbus.Bus, error) {
	if cfg.Kafka != nil && cfg.Kafka.Brokers != "" {
		bus, err := infra_eventbus.NewWithKafka(cfg.Kafka, logger)
		if err == nil {
			return bus, nil
		}
		logger.Warn("Kafka event bus unavailable, using memory", "error", err)
		return infra_eventbus.NewWithMemory(logger), nil
	}
	if cfg.Redis != nil && cfg.Redis.URL != "" {
		bus, err := infra_eventbus.NewWithRedis(cfg.Redis, logger)
		if err == nil {
			return bus, nil
		}
		logger.Warn("Redis event bus unavailable, using memory", "error", err)
		return infra_eventbus.NewWithMemory(logger), nil
	}
	logger.Info("Using in-memory event bus")
	return infra_eventbus.NewWithMemory(logger), nil
}

// initDeliveryCache shares processed webhook event ids through Redis when
// configured, otherwise keeps them per process.
func initDeliveryCache(cfg *config.App, logger *slog.Logger) cache.DeliveryCache {
	if cfg.Redis != nil && cfg.Redis.URL != "" {
		c, err := infra_cache.NewRedisCache(cfg.Redis, logger)
		if err == nil {
			return c
		}
		logger.Warn("Redis delivery cache unavailable, using memory", "error", err)
	}
	return infra_cache.NewMemoryCache()
}
