package cart

import (
	"iter"
	"slices"
)

// Ledger is the in-memory, append-only list of normalized entries.
//
// Entries are kept in insertion order. They are never modified or deleted.
type Ledger struct {
	entries []Entry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make([]Entry, 0)}
}

// Append appends entries at the end of the ledger.
func (l *Ledger) Append(entries ...Entry) {
	l.entries = append(l.entries, entries...)
}

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Entries iterates over entries in insertion order.
func (l *Ledger) Entries() iter.Seq[Entry] {
	return slices.Values(l.entries)
}

// BySKU returns the entries of sku, in insertion order.
func (l *Ledger) BySKU(sku string) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.SKU == sku {
			out = append(out, e)
		}
	}
	return out
}

// SKUs returns every SKU of the ledger, in order of first appearance.
func (l *Ledger) SKUs() []string {
	seen := make(map[string]bool)
	var skus []string
	for _, e := range l.entries {
		if !seen[e.SKU] {
			seen[e.SKU] = true
			skus = append(skus, e.SKU)
		}
	}
	return skus
}

// Stock returns the sum of all recorded quantities of sku, additions and removals alike.
func (l *Ledger) Stock(sku string) int {
	stock := 0
	for _, e := range l.BySKU(sku) {
		stock += e.Quantity
	}
	return stock
}

// RemainingLots runs the FIFO reconciliation over the whole ledger.
func (l *Ledger) RemainingLots() map[string][]Lot {
	return RemainingLotsBySKU(l.entries)
}
