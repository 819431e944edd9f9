package transaction_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/payrecon/pkg/domain/gateway"
	"github.com/amirasaad/payrecon/pkg/money"
	"github.com/amirasaad/payrecon/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	testutils.E2ETestSuite
}

func (s *TransactionTestSuite) TestGetTransaction() {
	tx := s.SeedPending("chg_get", 1500, "NGN")

	resp := s.MakeRequest(http.MethodGet, "/api/v1/transactions/chg_get", "", s.Token())
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	out := s.Decode(resp)
	s.Equal(tx.PublicID.String(), out.Data["id"])
	s.Equal("pending", out.Data["state"])
	s.EqualValues(1500, out.Data["amount"])
	s.Equal("NGN", out.Data["currency"])
}

func (s *TransactionTestSuite) TestGetMissingTransaction() {
	resp := s.MakeRequest(http.MethodGet, "/api/v1/transactions/chg_none", "", s.Token())
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *TransactionTestSuite) TestManualVerifyReconciles() {
	s.SeedPending("chg_manual", 700, "NGN")
	s.Gateway.SetOutcome("chg_manual", gateway.StatusSuccess, money.Must(700, "NGN"))

	resp := s.MakeRequest(http.MethodPost, "/api/v1/transactions/chg_manual/verify", "", s.Token())
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	out := s.Decode(resp)
	s.Equal("reconciled", out.Data["outcome"])

	resp = s.MakeRequest(http.MethodPost, "/api/v1/transactions/chg_manual/verify", "", s.Token())
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("already_reconciled", s.Decode(resp).Data["outcome"])
}

func (s *TransactionTestSuite) TestManualVerifyFailedPaymentFlags() {
	s.SeedPending("chg_failed", 700, "NGN")
	s.Gateway.SetOutcome("chg_failed", gateway.StatusFailed, money.Must(700, "NGN"))

	resp := s.MakeRequest(http.MethodPost, "/api/v1/transactions/chg_failed/verify", "", s.Token())
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("flagged", s.Decode(resp).Data["outcome"])
	s.True(s.Find("chg_failed").IsFlagged)
}

func (s *TransactionTestSuite) TestRejectsForeignToken() {
	resp := s.MakeRequest(http.MethodGet, "/api/v1/transactions/chg_get", "", "not-a-jwt")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func TestTransactionTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}
