package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/amirasaad/payrecon/infra/eventbus"
	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/domain/events"
	"github.com/google/uuid"
)

// RunSmokeTest publishes one event per reconciliation topic through the Kafka
// bus and waits for every handler to observe it.
func RunSmokeTest() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := &config.Kafka{
		Brokers:     strings.TrimSpace(config.GetEnv("BROKERS", "localhost:9092")),
		GroupID:     "payrecon-smoketest-" + uuid.NewString()[:8],
		TopicPrefix: "payrecon.smoketest",
	}

	bus, err := eventbus.NewWithKafka(cfg, logger)
	if err != nil {
		logger.Error("connect failed", "error", err)
		return err
	}
	defer func() { _ = bus.Close() }()

	ref := "chg_smoke_" + uuid.NewString()[:8]
	seen := make(chan string, 3)
	record := func(ctx context.Context, e events.Event) error {
		seen <- e.Type()
		return nil
	}
	bus.Register(events.EventTypeTransactionReconciled, record)
	bus.Register(events.EventTypeTransactionFlagged, record)
	bus.Register(events.EventTypeVerificationExhausted, record)

	ctx, cancel := context.WithTimeout(context.Background(), config.GetEnvAsDuration("SMOKE_TIMEOUT", time.Minute))
	defer cancel()

	now := time.Now().UTC()
	for _, e := range []events.Event{
		&events.TransactionReconciled{ID: uuid.New(), Reference: ref, Gateway: "mock", Amount: 100, Currency: "NGN", Timestamp: now},
		&events.TransactionFlagged{ID: uuid.New(), Reference: ref, Gateway: "mock", Reason: "smoke", Timestamp: now},
		&events.VerificationExhausted{ID: uuid.New(), Reference: ref, Gateway: "mock", Error: "smoke", Timestamp: now},
	} {
		if err := bus.Emit(ctx, e); err != nil {
			logger.Error("emit failed", "type", e.Type(), "error", err)
			return err
		}
		logger.Info("produced", "type", e.Type())
	}

	for i := 0; i < 3; i++ {
		select {
		case typ := <-seen:
			logger.Info("consumed", "type", typ)
		case <-ctx.Done():
			return errors.New("timed out waiting for events")
		}
	}
	logger.Info("kafka smoke test passed")
	return nil
}

// main runs the smoke test and exits non-zero on failure.
func main() {
	if err := RunSmokeTest(); err != nil {
		os.Exit(1)
	}
}
