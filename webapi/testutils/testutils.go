// Package testutils provides an HTTP test harness backed by a real database.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"time"

	infracache "github.com/amirasaad/payrecon/infra/cache"
	"github.com/amirasaad/payrecon/infra/eventbus"
	"github.com/amirasaad/payrecon/infra/provider/mockpayment"
	infrarepo "github.com/amirasaad/payrecon/infra/repository"
	"github.com/amirasaad/payrecon/pkg/app"
	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/domain/transaction"
	"github.com/amirasaad/payrecon/pkg/money"
	"github.com/amirasaad/payrecon/pkg/provider/payment"
	"github.com/amirasaad/payrecon/pkg/service/auth"
	"github.com/amirasaad/payrecon/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// E2ETestSuite serves the full fiber app over a file-backed SQLite database,
// the in-memory event bus and the mock gateway.
type E2ETestSuite struct {
	suite.Suite
	DB      *gorm.DB
	App     *fiber.App
	Cfg     *config.App
	Gateway *mockpayment.MockPaymentProvider
	Bus     *eventbus.MemoryEventBus
	Uow     *infrarepo.UoW
	auth    *auth.Service
}

// TestConfig returns the configuration used by the harness.
func TestConfig() *config.App {
	return &config.App{
		Env:       "test",
		Auth:      &config.Auth{Strategy: "jwt", Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour}},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Verification: &config.Verification{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     5 * time.Millisecond,
			HTTPTimeout:    time.Second,
		},
		Reconciliation: &config.Reconciliation{
			SweepSLA:       15 * time.Minute,
			SweepInterval:  time.Minute,
			SweepBatchSize: 100,
			SweepWorkers:   2,
			WebhookTimeout: 5 * time.Second,
		},
	}
}

// SetupTest gives every test its own database and gateway.
func (s *E2ETestSuite) SetupTest() {
	dsn := filepath.Join(s.T().TempDir(), "e2e.db") + "?_busy_timeout=10000&_txlock=immediate"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(infrarepo.Models()...))
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = sqlDB.Close() })
	s.DB = db

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Cfg = TestConfig()
	s.Gateway = mockpayment.NewMockPaymentProvider("whsec_test")
	s.Gateway.SettleAfter = time.Hour
	s.Bus = eventbus.NewWithMemory(quiet)
	s.Uow = infrarepo.NewUoW(db)

	deps := &config.Deps{
		Uow:        s.Uow,
		Gateways:   payment.NewRegistry(s.Gateway),
		EventBus:   s.Bus,
		Deliveries: infracache.NewMemoryCache(),
		Logger:     quiet,
		Config:     s.Cfg,
	}
	s.App = webapi.SetupApp(app.New(deps, s.Cfg))
	s.auth = auth.NewWithJWT(s.Cfg.Auth.Jwt, quiet)
}

// Token mints an operator token.
func (s *E2ETestSuite) Token() string {
	token, err := s.auth.GenerateToken("ops@example.com")
	s.Require().NoError(err)
	return token
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// PostWebhook delivers body to the mock gateway endpoint, signed unless signature is set.
func (s *E2ETestSuite) PostWebhook(gatewayName string, body any, signature string) *http.Response {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)
	if signature == "" {
		signature = s.Gateway.Sign(payload)
	}
	req := httptest.NewRequest(http.MethodPost, "/webhooks/"+gatewayName, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(mockpayment.SignatureHeaderName, signature)
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// SeedPending records a Pending credit for the mock gateway directly in the store.
func (s *E2ETestSuite) SeedPending(reference string, amount int64, currency string) *transaction.Transaction {
	tx, err := transaction.New(transaction.NewParams{
		PaymentReferenceID: reference,
		Amount:             money.Must(amount, currency),
		Type:               transaction.TypeCredit,
		PaymentService:     mockpayment.Name,
		PayerID:            "payer-1",
		Recipient:          transaction.Party{AccountNumber: "0123456789", Name: "Ada"},
	})
	s.Require().NoError(err)
	store, err := s.Uow.TransactionStore()
	s.Require().NoError(err)
	s.Require().NoError(store.Create(context.Background(), tx))
	return tx
}

// Find loads a transaction from the store.
func (s *E2ETestSuite) Find(reference string) *transaction.Transaction {
	store, err := s.Uow.TransactionStore()
	s.Require().NoError(err)
	tx, err := store.FindByReference(context.Background(), reference)
	s.Require().NoError(err)
	return tx
}

// Response is the decoded envelope of a success or problem response.
type Response struct {
	Status  int            `json:"status"`
	Message string         `json:"message"`
	Title   string         `json:"title"`
	Detail  string         `json:"detail"`
	Data    map[string]any `json:"data"`
}

// Decode reads a JSON response body.
func (s *E2ETestSuite) Decode(resp *http.Response) Response {
	defer func() { _ = resp.Body.Close() }()
	var out Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out
}
