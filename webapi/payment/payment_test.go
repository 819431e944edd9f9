package payment_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/amirasaad/payrecon/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

type PaymentTestSuite struct {
	testutils.E2ETestSuite
}

func (s *PaymentTestSuite) TestInitiateChargeRecordsPending() {
	body := `{"kind":"charge","gateway":"mock","amount":250000,"currency":"NGN",` +
		`"payerId":"cust_1","email":"ada@example.com","receiver":{"accountNumber":"0123456789"}}`
	resp := s.MakeRequest(http.MethodPost, "/api/v1/payments", body, s.Token())
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	out := s.Decode(resp)
	s.NotEmpty(out.Data["authorization_url"])
	tx, ok := out.Data["transaction"].(map[string]any)
	s.Require().True(ok)
	ref, _ := tx["reference"].(string)
	s.True(strings.HasPrefix(ref, "chg_"))
	s.Equal("pending", tx["state"])

	stored := s.Find(ref)
	s.Equal("ops@example.com", stored.CreatedBy)
	s.False(stored.IsReconciled)
	s.EqualValues(250000, stored.Amount.Amount())
}

func (s *PaymentTestSuite) TestInitiateTransferNeedsRecipient() {
	body := `{"kind":"transfer","gateway":"mock","amount":1000,"currency":"NGN","payerId":"cust_1"}`
	resp := s.MakeRequest(http.MethodPost, "/api/v1/payments", body, s.Token())
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *PaymentTestSuite) TestInitiateUnknownGateway() {
	body := `{"kind":"charge","gateway":"nope","amount":1000,"currency":"NGN","payerId":"cust_1"}`
	resp := s.MakeRequest(http.MethodPost, "/api/v1/payments", body, s.Token())
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *PaymentTestSuite) TestDuplicateReferenceConflicts() {
	s.SeedPending("chg_dup", 1000, "NGN")
	body := `{"kind":"charge","gateway":"mock","amount":1000,"currency":"NGN","payerId":"cust_1","reference":"chg_dup"}`
	resp := s.MakeRequest(http.MethodPost, "/api/v1/payments", body, s.Token())
	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *PaymentTestSuite) TestRequiresToken() {
	body := `{"kind":"charge","gateway":"mock","amount":1000,"currency":"NGN","payerId":"cust_1"}`
	resp := s.MakeRequest(http.MethodPost, "/api/v1/payments", body, "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestPaymentTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentTestSuite))
}
