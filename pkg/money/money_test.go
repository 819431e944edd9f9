package money_test

import (
	"encoding/json"
	"testing"

	"github.com/amirasaad/payrecon/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		currency string
		expected string
		wantErr  bool
	}{
		{"NGN kobo", 5000, "NGN", "50.00 NGN", false},
		{"lowercase currency is normalised", 5000, "ngn", "50.00 NGN", false},
		{"JPY without minor units", 1000, "JPY", "1000 JPY", false},
		{"KWD with 3 decimals", 100123, "KWD", "100.123 KWD", false},
		{"invalid currency", 100, "NAIRA", "", true},
		{"empty currency", 100, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := money.New(tt.amount, tt.currency)
			if tt.wantErr {
				require.ErrorIs(t, err, money.ErrInvalidCurrency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.String())
		})
	}
}

func TestEquals_IsExact(t *testing.T) {
	base := money.Must(5000, "NGN")
	assert.True(t, base.Equals(money.Must(5000, "ngn")))
	assert.False(t, base.Equals(money.Must(4999, "NGN")))
	assert.False(t, base.Equals(money.Must(5001, "NGN")))
	assert.False(t, base.Equals(money.Must(5000, "USD")))
}

func TestNegateAndDecimal(t *testing.T) {
	m := money.Must(12345, "USD")
	assert.Equal(t, int64(-12345), m.Negate().Amount())
	assert.Equal(t, "123.45", m.Decimal().String())
	assert.True(t, m.IsPositive())
	assert.False(t, m.Negate().IsPositive())
}

func TestJSONRoundTrip(t *testing.T) {
	m := money.Must(5000, "NGN")
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":5000,"currency":"NGN"}`, string(data))

	var decoded money.Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))

	require.Error(t, json.Unmarshal([]byte(`{"amount":1,"currency":"??"}`), &decoded))
}
