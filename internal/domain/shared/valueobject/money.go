package valueobject

import (
	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	INR Currency = "INR" // Indian Rupee (default)
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
	AED Currency = "AED" // UAE Dirham
)

// DefaultCurrency is the default currency for the system
const DefaultCurrency = INR

// MoneyPlaces is the number of decimal places shown for money values
const MoneyPlaces int32 = 2

// IsValid checks if the currency is supported
func (c Currency) IsValid() bool {
	switch c {
	case INR, USD, EUR, AED:
		return true
	}
	return false
}

// String returns the currency code
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display symbol of the currency
func (c Currency) Symbol() string {
	switch c {
	case INR:
		return "₹"
	case USD:
		return "$"
	case EUR:
		return "€"
	case AED:
		return "AED "
	}
	return string(c) + " "
}

// AllCurrencies returns the supported currencies in display order
func AllCurrencies() []Currency {
	return []Currency{INR, USD, EUR, AED}
}

// RoundMoney rounds an amount to two decimal places, half away from zero.
// Only call it at presentation boundaries; sums are computed at full precision.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// FormatMoney renders an amount with its currency symbol and two decimals
func FormatMoney(d decimal.Decimal, c Currency) string {
	if c == "" {
		c = DefaultCurrency
	}
	return c.Symbol() + RoundMoney(d).StringFixed(MoneyPlaces)
}
