// Package paystack integrates the Paystack REST API.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/domain"
)

// Name is the registry key and the PaymentService value of Paystack rows.
const Name = "paystack"

// Gateway talks to the Paystack API.
type Gateway struct {
	secretKey string
	baseURL   string
	http      *http.Client
	logger    *slog.Logger
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.http = c }
}

// New creates a Paystack gateway. timeout bounds each HTTP round trip.
func New(cfg *config.Paystack, timeout time.Duration, logger *slog.Logger, opts ...Option) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.paystack.co"
	}
	g := &Gateway{
		secretKey: cfg.SecretKey,
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		logger:    logger.With("gateway", Name),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns "paystack".
func (g *Gateway) Name() string {
	return Name
}

// do performs one API call and decodes the data field into out.
func (g *Gateway) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", domain.ErrValidation, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %s %s: %v", domain.ErrGatewayUnavailable, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", domain.ErrGatewayUnavailable, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if err := classify(method, resp.StatusCode, env.Message); err != nil {
		g.logger.Warn("paystack request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"message", env.Message,
		)
		return err
	}
	if decodeErr != nil {
		// a 2xx with an unreadable body is treated like a flaky upstream
		return fmt.Errorf("%w: decode response: %v", domain.ErrGatewayUnavailable, decodeErr)
	}
	if !env.Status {
		return fmt.Errorf("%w: %s", domain.ErrGatewayRejected, env.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %v", domain.ErrGatewayUnavailable, err)
	}
	return nil
}

// classify maps an HTTP status onto the gateway error taxonomy.
// A 400 or 422 on a write rejects the request we built; on a read it means
// the reference is unknown to the gateway.
func classify(method string, status int, message string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case method != http.MethodGet &&
		(status == http.StatusBadRequest || status == http.StatusUnprocessableEntity):
		return fmt.Errorf("%w: http %d: %s", domain.ErrValidation, status, message)
	case status == http.StatusTooManyRequests || status >= 500:
		return fmt.Errorf("%w: http %d: %s", domain.ErrGatewayUnavailable, status, message)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: http %d: %s", domain.ErrGatewayRejected, status, message)
	case status == http.StatusNotFound, status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: http %d: %s", domain.ErrNotFound, status, message)
	default:
		return fmt.Errorf("%w: http %d: %s", domain.ErrGatewayRejected, status, message)
	}
}

func escape(reference string) string {
	return url.PathEscape(reference)
}
