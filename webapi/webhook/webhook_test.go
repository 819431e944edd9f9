package webhook_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/events"
	"github.com/amirasaad/payrecon/pkg/domain/gateway"
	"github.com/amirasaad/payrecon/pkg/money"
	"github.com/amirasaad/payrecon/webapi/testutils"
	"github.com/amirasaad/payrecon/webapi/webhook"
	"github.com/stretchr/testify/suite"
)

type WebhookTestSuite struct {
	testutils.E2ETestSuite
}

func notification(ref string, amount int64) map[string]any {
	return map[string]any{
		"gateway":   "mock",
		"eventId":   "evt_" + ref,
		"reference": ref,
		"amount":    amount,
		"currency":  "NGN",
		"status":    "success",
	}
}

func (s *WebhookTestSuite) TestSettlesOnceAcrossRedeliveries() {
	s.SeedPending("chg_001", 500000, "NGN")
	s.Gateway.SetOutcome("chg_001", gateway.StatusSuccess, money.Must(500000, "NGN"))

	resp := s.PostWebhook("mock", notification("chg_001", 500000), "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body := s.Decode(resp)
	s.Equal(webhook.StatusProcessed, body.Data["status"])
	s.Equal("reconciled", body.Data["outcome"])

	// Same event id: short-circuited before touching the store.
	resp = s.PostWebhook("mock", notification("chg_001", 500000), "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(webhook.StatusDuplicate, s.Decode(resp).Data["status"])

	// A different event for the same reference still settles nothing new.
	other := notification("chg_001", 500000)
	other["eventId"] = "evt_other"
	resp = s.PostWebhook("mock", other, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("already_reconciled", s.Decode(resp).Data["outcome"])

	s.True(s.Find("chg_001").IsReconciled)
	reconciled := 0
	for _, e := range s.Bus.Published() {
		if e.Type() == events.EventTypeTransactionReconciled.String() {
			reconciled++
		}
	}
	s.Equal(1, reconciled)
}

func (s *WebhookTestSuite) TestVerifiedAmountMismatchFlags() {
	s.SeedPending("chg_002", 500000, "NGN")
	// The webhook claims the recorded amount; the verify call decides.
	s.Gateway.SetOutcome("chg_002", gateway.StatusSuccess, money.Must(400000, "NGN"))

	resp := s.PostWebhook("mock", notification("chg_002", 500000), "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("flagged", s.Decode(resp).Data["outcome"])

	tx := s.Find("chg_002")
	s.False(tx.IsReconciled)
	s.True(tx.IsFlagged)
}

func (s *WebhookTestSuite) TestPendingAtGatewayLeavesTransactionAlone() {
	s.SeedPending("chg_003", 1000, "NGN")
	s.Gateway.SetOutcome("chg_003", gateway.StatusPending, money.Must(1000, "NGN"))

	resp := s.PostWebhook("mock", notification("chg_003", 1000), "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("pending", s.Decode(resp).Data["outcome"])
	tx := s.Find("chg_003")
	s.False(tx.IsReconciled)
	s.False(tx.IsFlagged)
}

func (s *WebhookTestSuite) TestInvalidSignature() {
	s.SeedPending("chg_004", 1000, "NGN")
	resp := s.PostWebhook("mock", notification("chg_004", 1000), "deadbeef")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.False(s.Find("chg_004").IsReconciled)
}

func (s *WebhookTestSuite) TestUnknownGateway() {
	resp := s.PostWebhook("nope", notification("chg_005", 1000), "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *WebhookTestSuite) TestUnknownReferenceIsAcknowledged() {
	resp := s.PostWebhook("mock", notification("chg_missing", 1000), "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(webhook.StatusNotFound, s.Decode(resp).Data["status"])
}

func (s *WebhookTestSuite) TestMalformedNotificationIsAcknowledged() {
	resp := s.PostWebhook("mock", map[string]any{"reference": "chg_006"}, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(webhook.StatusIgnored, s.Decode(resp).Data["status"])
}

func (s *WebhookTestSuite) TestGatewayUnavailableAsksForRedelivery() {
	s.SeedPending("chg_007", 1000, "NGN")
	s.Gateway.FailNext(domain.ErrGatewayUnavailable, domain.ErrGatewayUnavailable, domain.ErrGatewayUnavailable)

	resp := s.PostWebhook("mock", notification("chg_007", 1000), "")
	s.Equal(http.StatusServiceUnavailable, resp.StatusCode)
	tx := s.Find("chg_007")
	s.False(tx.IsReconciled)
	s.False(tx.IsFlagged)

	exhausted := 0
	for _, e := range s.Bus.Published() {
		if e.Type() == events.EventTypeVerificationExhausted.String() {
			exhausted++
		}
	}
	s.Equal(1, exhausted)
}

func TestWebhookTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookTestSuite))
}
