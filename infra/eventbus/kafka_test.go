package eventbus

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testcontainerskafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

func setupKafkaBus(t *testing.T) *KafkaEventBus {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping kafka container test in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	container, err := testcontainerskafka.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)

	bus, err := NewWithKafka(&config.Kafka{
		Brokers:     strings.Join(brokers, ","),
		GroupID:     "test",
		TopicPrefix: "test.events",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bus.Close() })
	return bus
}

func TestKafkaBusHandlerReceivesEvent(t *testing.T) {
	bus := setupKafkaBus(t)

	received := make(chan string, 1)
	bus.Register(events.EventTypeTransactionReconciled, func(ctx context.Context, e events.Event) error {
		received <- e.(*events.TransactionReconciled).Reference
		return nil
	})

	require.NoError(t, bus.Emit(context.Background(), reconciledEvent("ref123")))

	select {
	case ref := <-received:
		assert.Equal(t, "ref123", ref)
	case <-time.After(60 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestKafkaConfigValidation(t *testing.T) {
	_, err := NewWithKafka(&config.Kafka{Brokers: " , "}, nil)
	assert.Error(t, err)

	_, _, err = newKafkaDialer(&config.Kafka{SASLUsername: "user"})
	assert.Error(t, err)

	d, tr, err := newKafkaDialer(&config.Kafka{SASLUsername: "user", SASLPassword: "pw", TLSEnabled: true})
	require.NoError(t, err)
	assert.NotNil(t, d.TLS)
	assert.NotNil(t, tr)
}
