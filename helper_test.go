package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// equalMoney lets cmp compare Money values.
var equalMoney = cmp.Comparer(func(a, b Money) bool { return a.Equal(b) })

// D is a helper for test to create a decimal from a const string.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// add is a helper for test to create a normalized addition in EUR.
func add(sku string, quantity int, price string) Entry {
	return Entry{SKU: sku, Quantity: quantity, UnitPrice: EUR(D(price))}
}

// writeLedger creates a ledger file with content in a temporary directory and returns its path.
func writeLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cart.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write ledger file: %v", err)
	}
	return path
}
