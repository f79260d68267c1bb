package cart

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the reporting currency. Every stored price is expressed in it.
const DefaultCurrency = "EUR"

// rates holds, for each recognized currency, the amount of that currency worth one
// unit of DefaultCurrency. It is never mutated.
var rates = map[string]decimal.Decimal{
	"EUR": decimal.RequireFromString("1.00"),
	"GBP": decimal.RequireFromString("0.88"),
	"USD": decimal.RequireFromString("1.14"),
}

// Rate returns the fixed rate of a currency code and whether it is recognized.
func Rate(currency string) (decimal.Decimal, bool) {
	r, ok := rates[currency]
	return r, ok
}

// Currencies returns the recognized currency codes, sorted.
func Currencies() []string {
	return slices.Sorted(maps.Keys(rates))
}

// IsDefaultCurrency reports whether currency is the reporting currency.
func IsDefaultCurrency(currency string) bool { return currency == DefaultCurrency }

// ConvertToDefault converts an amount expressed in currency into DefaultCurrency.
//
// The result is rounded to the minor unit of the reporting currency, and must
// stay positive once rounded.
func ConvertToDefault(amount decimal.Decimal, currency string) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, fmt.Errorf("%w: cannot convert %s", ErrInvalidCurrency, amount)
	}
	rate, ok := Rate(currency)
	if !ok {
		return Money{}, fmt.Errorf("%w: currency should be one of the following: %s", ErrInvalidCurrency, strings.Join(Currencies(), ", "))
	}

	converted := EUR(amount)
	if !IsDefaultCurrency(currency) {
		hundred := decimal.NewFromInt(100)
		converted = EUR(amount.Mul(hundred).Div(rate).Div(hundred))
	}
	converted = converted.Round(converted.fraction())
	if !converted.IsPositive() {
		return Money{}, fmt.Errorf("%w: %s %s is worth less than the smallest %s amount", ErrInvalidPrice, amount, currency, DefaultCurrency)
	}
	return converted, nil
}
