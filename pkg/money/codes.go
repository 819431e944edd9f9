package money

// Code represents a currency code (e.g., "NGN", "USD").
type Code string

// Currency codes the supported gateways settle in.
const (
	NGN Code = "NGN" // Nigerian Naira
	GHS Code = "GHS" // Ghanaian Cedi
	KES Code = "KES" // Kenyan Shilling
	ZAR Code = "ZAR" // South African Rand
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
	GBP Code = "GBP" // British Pound
	JPY Code = "JPY" // Japanese Yen
	KWD Code = "KWD" // Kuwaiti Dinar
)

// decimals lists minor-unit exponents that differ from the default of 2.
var decimals = map[Code]int32{
	JPY: 0,
	KWD: 3,
}

// Decimals returns the number of minor-unit digits for the code.
func (c Code) Decimals() int32 {
	if d, ok := decimals[c]; ok {
		return d
	}
	return 2
}

// IsValid checks if the currency code is three uppercase letters.
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}
