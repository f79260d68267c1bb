package cart

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		raw  RawEntry
		want Entry
	}{
		{
			name: "addition in EUR",
			raw:  RawEntry{SKU: "A1", Quantity: "3", Description: "apples", Price: "1.50", Currency: "EUR"},
			want: Entry{SKU: "A1", Quantity: 3, Description: "apples", UnitPrice: EUR(D("1.5"))},
		},
		{
			name: "EUR price is rounded to cents",
			raw:  RawEntry{SKU: "A1", Quantity: "1", Price: "1.239", Currency: "EUR"},
			want: Entry{SKU: "A1", Quantity: 1, UnitPrice: EUR(D("1.24"))},
		},
		{
			name: "fields are trimmed and currency upper-cased",
			raw:  RawEntry{SKU: " A1 ", Quantity: " 2\t", Description: " red apples ", Price: " 4 ", Currency: " eur\n"},
			want: Entry{SKU: "A1", Quantity: 2, Description: "red apples", UnitPrice: EUR(4)},
		},
		{
			name: "addition in USD is converted",
			raw:  RawEntry{SKU: "Y", Quantity: "1", Price: "100", Currency: "USD"},
			want: Entry{SKU: "Y", Quantity: 1, UnitPrice: EUR(D("87.72"))},
		},
		{
			name: "removal drops the other fields",
			raw:  RawEntry{SKU: "A1", Quantity: "-4", Description: "ignored", Price: "not a price", Currency: "XXX"},
			want: Entry{SKU: "A1", Quantity: -4},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.raw)
			if err != nil {
				t.Fatalf("Normalize() returned an unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got, equalMoney); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	testCases := []struct {
		name string
		raw  RawEntry
		want error
	}{
		{"missing sku", RawEntry{SKU: "  ", Quantity: "1", Price: "1", Currency: "EUR"}, ErrMissingSKU},
		{"zero quantity", RawEntry{SKU: "A", Quantity: "0", Price: "1", Currency: "EUR"}, ErrZeroQuantity},
		{"empty quantity", RawEntry{SKU: "A", Price: "1", Currency: "EUR"}, ErrZeroQuantity},
		{"non integer quantity", RawEntry{SKU: "A", Quantity: "two", Price: "1", Currency: "EUR"}, ErrZeroQuantity},
		{"smallest int quantity", RawEntry{SKU: "A", Quantity: strconv.Itoa(math.MinInt)}, ErrZeroQuantity},
		{"price converts to zero", RawEntry{SKU: "A", Quantity: "1", Price: "0.004", Currency: "USD"}, ErrInvalidPrice},
		{"zero price", RawEntry{SKU: "A", Quantity: "1", Price: "0", Currency: "EUR"}, ErrInvalidPrice},
		{"negative price", RawEntry{SKU: "A", Quantity: "1", Price: "-3", Currency: "EUR"}, ErrInvalidPrice},
		{"missing price", RawEntry{SKU: "A", Quantity: "1", Currency: "EUR"}, ErrInvalidPrice},
		{"unknown currency", RawEntry{SKU: "A", Quantity: "1", Price: "1", Currency: "CHF"}, ErrInvalidCurrency},
		{"missing currency", RawEntry{SKU: "A", Quantity: "1", Price: "1"}, ErrInvalidCurrency},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.raw)
			if !errors.Is(err, tc.want) {
				t.Errorf("Normalize() error = %v, want %v", err, tc.want)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Normalize() error = %v, should be a validation error", err)
			}
		})
	}
}
