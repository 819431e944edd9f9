// Package money provides functionality for handling monetary values.
//
// It is a value object that represents a monetary value in a specific currency.
// Invariants:
//   - Amount is always stored in the smallest currency unit (e.g., kobo for NGN).
//   - Currency code must be valid ISO 4217 (3 uppercase letters).
//   - Equality is exact: no tolerance is ever applied.
package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidCurrency is returned when a currency code is not ISO 4217 shaped.
var ErrInvalidCurrency = errors.New("invalid currency code")

// Amount represents a monetary amount as an integer in the
// smallest currency unit (e.g., kobo for NGN).
type Amount = int64

// Money represents a monetary value in a specific currency.
type Money struct {
	amount   Amount
	currency Code
}

// New creates Money from an amount in minor units. The currency code is
// upper-cased before validation so gateway payloads like "ngn" are accepted.
func New(amount Amount, currency string) (Money, error) {
	code := Code(strings.ToUpper(strings.TrimSpace(currency)))
	if !code.IsValid() {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	return Money{amount: amount, currency: code}, nil
}

// Must is like New but panics on an invalid currency. Intended for tests and constants.
func Must(amount Amount, currency string) Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() Amount {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() Code {
	return m.currency
}

// Equals reports exact equality of amount and currency.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount == other.amount
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// Negate returns the additive inverse.
func (m Money) Negate() Money {
	return Money{amount: -m.amount, currency: m.currency}
}

// Decimal returns the amount in major units (e.g., 50.00 for 5000 kobo).
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.amount, -m.currency.Decimals())
}

// String renders the major-unit amount followed by the currency, e.g. "50.00 NGN".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Decimal().StringFixed(m.currency.Decimals()), m.currency)
}

// MarshalJSON implements json.Marshaler interface.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"amount":   m.amount,
		"currency": m.currency,
	})
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (m *Money) UnmarshalJSON(data []byte) error {
	var aux struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	parsed, err := New(aux.Amount, aux.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
