package cart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RawEntry is an entry as read from the ledger file or the command line, before
// any validation. Fields are in canonical order.
type RawEntry struct {
	SKU         string
	Quantity    string
	Description string
	Price       string
	Currency    string
}

// Entry is a normalized ledger record.
//
// A positive Quantity adds stock at UnitPrice, always expressed in
// DefaultCurrency. A negative Quantity removes stock, and carries neither
// description nor price.
type Entry struct {
	SKU         string
	Quantity    int
	Description string
	UnitPrice   Money
}

// IsRemoval reports whether the entry takes stock out.
func (e Entry) IsRemoval() bool { return e.Quantity < 0 }

// Currency returns the currency of the unit price, empty for removals.
func (e Entry) Currency() string { return e.UnitPrice.Currency() }

// NewRemoval returns the entry removing quantity units of sku. The sign of
// quantity is ignored.
func NewRemoval(sku string, quantity int) Entry {
	if quantity > 0 {
		quantity = -quantity
	}
	return Entry{SKU: sku, Quantity: quantity}
}

// Normalize validates a raw entry and returns its canonical form.
//
// Fields are trimmed, the currency is upper-cased, and prices in another
// recognized currency are converted into DefaultCurrency. For removals,
// description, price and currency are discarded without being checked.
func Normalize(raw RawEntry) (Entry, error) {
	sku := strings.TrimSpace(raw.SKU)
	if sku == "" {
		return Entry{}, ErrMissingSKU
	}

	qty, err := strconv.Atoi(strings.TrimSpace(raw.Quantity))
	// math.MinInt has no positive counterpart to remove.
	if err != nil || qty == 0 || qty == math.MinInt {
		return Entry{}, fmt.Errorf("%w: %q", ErrZeroQuantity, raw.Quantity)
	}
	if qty < 0 {
		return NewRemoval(sku, qty), nil
	}

	price, err := decimal.NewFromString(strings.TrimSpace(raw.Price))
	if err != nil || !price.IsPositive() {
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidPrice, raw.Price)
	}

	currency := strings.ToUpper(strings.TrimSpace(raw.Currency))
	unitPrice, err := ConvertToDefault(price, currency)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		SKU:         sku,
		Quantity:    qty,
		Description: strings.TrimSpace(raw.Description),
		UnitPrice:   unitPrice,
	}, nil
}
