package initializer

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	infra_cache "github.com/amirasaad/payrecon/infra/cache"
	infra_eventbus "github.com/amirasaad/payrecon/infra/eventbus"
	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitEventBus_DefaultsToMemory(t *testing.T) {
	bus, err := initEventBus(&config.App{Redis: &config.Redis{}, Kafka: &config.Kafka{}}, discard())
	require.NoError(t, err)
	require.IsType(t, &infra_eventbus.MemoryEventBus{}, bus)
}

func TestInitEventBus_RedisConnectionErrorFallsBackToMemory(t *testing.T) {
	cfg := &config.App{Redis: &config.Redis{URL: "redis://127.0.0.1:1", DialTimeout: 200 * time.Millisecond}}
	bus, err := initEventBus(cfg, discard())
	require.NoError(t, err)
	require.IsType(t, &infra_eventbus.MemoryEventBus{}, bus)
}

func TestInitEventBus_KafkaConnectionErrorFallsBackToMemory(t *testing.T) {
	cfg := &config.App{Kafka: &config.Kafka{Brokers: "127.0.0.1:1"}}
	bus, err := initEventBus(cfg, discard())
	require.NoError(t, err)
	require.IsType(t, &infra_eventbus.MemoryEventBus{}, bus)
}

func TestInitDeliveryCache(t *testing.T) {
	c := initDeliveryCache(&config.App{Redis: &config.Redis{}}, discard())
	require.IsType(t, &infra_cache.MemoryCache{}, c)

	cfg := &config.App{Redis: &config.Redis{URL: "redis://127.0.0.1:1", DialTimeout: 200 * time.Millisecond}}
	c = initDeliveryCache(cfg, discard())
	require.IsType(t, &infra_cache.MemoryCache{}, c)
}

func TestInitGateways(t *testing.T) {
	base := func() *config.App {
		return &config.App{
			Verification: &config.Verification{HTTPTimeout: time.Second},
			Gateways: &config.Gateways{
				Paystack: &config.Paystack{},
				Stripe:   &config.Stripe{},
				Mock:     &config.Mock{Secret: "s"},
			},
		}
	}

	t.Run("none configured", func(t *testing.T) {
		_, err := initGateways(base(), discard())
		assert.ErrorIs(t, err, ErrNoGateway)
	})

	t.Run("credentials select gateways", func(t *testing.T) {
		cfg := base()
		cfg.Gateways.Paystack.SecretKey = "sk_test"
		cfg.Gateways.Stripe.ApiKey = "sk_test_stripe"
		cfg.Gateways.Mock.Enabled = true

		reg, err := initGateways(cfg, discard())
		require.NoError(t, err)
		assert.Equal(t, []string{"mock", "paystack", "stripe"}, reg.Names())
	})
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Log{Format: "json", Prefix: "[payrecon]"})
	logger.Info("settled", "reference", "ref123")
	assert.Contains(t, buf.String(), `"reference":"ref123"`)
}
