// Package verification wraps gateway verify calls with a bounded retry policy.
package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/gateway"
	"github.com/amirasaad/payrecon/pkg/provider/payment"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"
)

// Policy bounds a single Verify call.
type Policy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	// AttemptTimeout caps each gateway round trip.
	AttemptTimeout time.Duration
}

// DefaultPolicy is three attempts with short exponential backoff.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:    3,
		InitialBackoff: 200 * time.Millisecond,
		MaxBackoff:     2 * time.Second,
		AttemptTimeout: 5 * time.Second,
	}
}

// Budget is the worst case duration of one Verify: every attempt timing out
// plus the longest randomized wait between attempts. Zero means unbounded.
func (p Policy) Budget() time.Duration {
	if p.AttemptTimeout <= 0 {
		return 0
	}
	attempts := time.Duration(max(p.MaxAttempts, 1))
	return attempts*p.AttemptTimeout + (attempts-1)*p.MaxBackoff*3/2
}

// PolicyFromConfig maps the verification config section.
func PolicyFromConfig(cfg *config.Verification) Policy {
	if cfg == nil {
		return DefaultPolicy()
	}
	return Policy{
		MaxAttempts:    cfg.MaxAttempts,
		InitialBackoff: cfg.InitialBackoff,
		MaxBackoff:     cfg.MaxBackoff,
		AttemptTimeout: cfg.HTTPTimeout,
	}
}

// Client verifies references against the authoritative gateway.
type Client struct {
	gateways *payment.Registry
	policy   Policy
	logger   *slog.Logger
	sf       singleflight.Group
}

// New creates a verification client.
func New(gateways *payment.Registry, policy Policy, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &Client{
		gateways: gateways,
		policy:   policy,
		logger:   logger.With("service", "verification"),
	}
}

// Verify asks gatewayName for the state of reference.
//
// Transient failures are retried until MaxAttempts calls have been made.
// domain.ErrNotFound and domain.ErrGatewayRejected are returned without retry.
// When every attempt fails transiently the error wraps domain.ErrGatewayUnavailable.
// Concurrent calls for the same gateway and reference share one round trip.
// The shared call is detached from any single caller's cancellation and
// bounded by Policy.Budget; each caller stops waiting when its own ctx ends.
func (c *Client) Verify(
	ctx context.Context,
	gatewayName, reference string,
) (*gateway.VerificationResult, error) {
	gw, err := c.gateways.Get(gatewayName)
	if err != nil {
		return nil, err
	}
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", domain.ErrValidation)
	}

	key := gatewayName + ":" + reference
	ch := c.sf.DoChan(key, func() (any, error) {
		callCtx := context.WithoutCancel(ctx)
		if budget := c.policy.Budget(); budget > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(callCtx, budget)
			defer cancel()
		}
		return c.verifyWithRetry(callCtx, gw, reference)
	})

	var r singleflight.Result
	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: verify %q: %v", domain.ErrGatewayUnavailable, reference, ctx.Err())
		}
		return nil, ctx.Err()
	case r = <-ch:
	}
	if r.Shared {
		c.logger.Debug("verify call coalesced", "gateway", gatewayName, "reference", reference)
	}
	if r.Err != nil {
		return nil, r.Err
	}
	// Each caller gets its own copy.
	res := *r.Val.(*gateway.VerificationResult)
	return &res, nil
}

func (c *Client) verifyWithRetry(
	ctx context.Context,
	gw payment.Gateway,
	reference string,
) (*gateway.VerificationResult, error) {
	logger := c.logger.With("gateway", gw.Name(), "reference", reference)

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = c.policy.InitialBackoff
	eb.MaxInterval = c.policy.MaxBackoff
	eb.MaxElapsedTime = 0
	b := backoff.WithContext(
		backoff.WithMaxRetries(eb, uint64(c.policy.MaxAttempts-1)),
		ctx,
	)

	attempt := 0
	var lastErr error
	op := func() (*gateway.VerificationResult, error) {
		attempt++
		res, err := c.attempt(ctx, gw, reference)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if !IsTransient(err) {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	notify := func(err error, wait time.Duration) {
		logger.Warn("verify attempt failed, retrying",
			"attempt", attempt, "max_attempts", c.policy.MaxAttempts, "wait", wait, "error", err)
	}

	res, err := backoff.RetryNotifyWithData(op, b, notify)
	if err == nil {
		logger.Info("verified", "status", res.Status, "attempts", attempt)
		return res, nil
	}

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Err
	}
	if !IsTransient(err) {
		logger.Info("verify failed permanently", "error", err, "attempts", attempt)
		return nil, err
	}
	if lastErr == nil {
		lastErr = err
	}
	logger.Error("verify attempts exhausted", "attempts", attempt, "error", lastErr)
	if errors.Is(lastErr, domain.ErrGatewayUnavailable) {
		return nil, fmt.Errorf("after %d attempts: %w", attempt, lastErr)
	}
	return nil, fmt.Errorf("%w: after %d attempts: %v", domain.ErrGatewayUnavailable, attempt, lastErr)
}

func (c *Client) attempt(
	ctx context.Context,
	gw payment.Gateway,
	reference string,
) (*gateway.VerificationResult, error) {
	if c.policy.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.policy.AttemptTimeout)
		defer cancel()
	}
	res, err := gw.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%w: empty verify response", domain.ErrGatewayUnavailable)
	}
	if res.Reference != "" && res.Reference != reference {
		return nil, fmt.Errorf("%w: verify returned reference %q for %q",
			domain.ErrGatewayRejected, res.Reference, reference)
	}
	if res.Reference == "" {
		res.Reference = reference
	}
	return res, nil
}

// IsTransient reports whether err may succeed on retry.
// Unclassified errors count as transient.
func IsTransient(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrGatewayRejected),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownGateway),
		errors.Is(err, context.Canceled):
		return false
	}
	return true
}
