package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisBus(t *testing.T) *RedisEventBus {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7.0.5",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	bus, err := NewWithRedis(&config.Redis{URL: "redis://" + host + ":" + port.Port(), KeyPrefix: "test"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bus.Close() })
	return bus
}

func TestRedisBusHandlerReceivesEvent(t *testing.T) {
	bus := setupRedisBus(t)

	received := make(chan string, 1)
	bus.Register(events.EventTypeTransactionReconciled, func(ctx context.Context, e events.Event) error {
		received <- e.(*events.TransactionReconciled).Reference
		return nil
	})

	require.NoError(t, bus.Emit(context.Background(), reconciledEvent("ref123")))

	select {
	case ref := <-received:
		assert.Equal(t, "ref123", ref)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestNewWithRedisRequiresURL(t *testing.T) {
	_, err := NewWithRedis(&config.Redis{}, nil)
	assert.Error(t, err)
}
