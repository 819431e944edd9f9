package webapi_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/payrecon/infra/eventbus"
	"github.com/amirasaad/payrecon/infra/provider/mockpayment"
	"github.com/amirasaad/payrecon/internal/fixtures/memstore"
	"github.com/amirasaad/payrecon/pkg/app"
	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/provider/payment"
	"github.com/amirasaad/payrecon/webapi"
	"github.com/amirasaad/payrecon/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HealthTestSuite struct {
	testutils.E2ETestSuite
}

func (s *HealthTestSuite) TestHealth() {
	resp := s.MakeRequest(http.MethodGet, "/", "", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Contains(string(body), "running")
}

func (s *HealthTestSuite) TestSwaggerDocListsRoutes() {
	resp := s.MakeRequest(http.MethodGet, "/swagger/doc.json", "", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	for _, path := range []string{
		"/webhooks/{gateway}",
		"/api/v1/payments",
		"/api/v1/transactions/{reference}",
		"/api/v1/transactions/{reference}/verify",
	} {
		s.Contains(string(body), path)
	}
	s.Contains(string(body), "Payment Reconciliation API")
}

func TestHealthTestSuite(t *testing.T) {
	suite.Run(t, new(HealthTestSuite))
}

func TestRateLimit(t *testing.T) {
	cfg := testutils.TestConfig()
	cfg.RateLimit = &config.RateLimit{MaxRequests: 2, Window: time.Minute}
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := &config.Deps{
		Uow:      memstore.New().UnitOfWork(),
		Gateways: payment.NewRegistry(mockpayment.NewMockPaymentProvider("secret")),
		EventBus: eventbus.NewWithMemory(quiet),
		Logger:   quiet,
		Config:   cfg,
	}
	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	get := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, get("203.0.113.1"))
	assert.Equal(t, fiber.StatusOK, get("203.0.113.1"))
	assert.Equal(t, fiber.StatusTooManyRequests, get("203.0.113.1"))
	assert.Equal(t, fiber.StatusOK, get("203.0.113.2"), "limit is keyed by client address")
}
