// Package cache defines short-lived lookups shared across requests.
package cache

import (
	"context"
	"time"
)

// DeliveryCache remembers webhook deliveries that reached a final outcome,
// keyed by gateway and event id. It is an optimisation only: settlement
// stays exactly-once without it.
type DeliveryCache interface {
	// Get returns the recorded outcome and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, outcome string, ttl time.Duration) error
}

// DeliveryKey builds the cache key of one gateway event.
func DeliveryKey(gateway, eventID string) string {
	return gateway + ":" + eventID
}
