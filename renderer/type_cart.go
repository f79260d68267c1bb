package renderer

import (
	"strings"

	"github.com/etnz/cart"
)

// Cart is the data of a cart report.
type Cart struct {
	// Total is the value of all the remaining lots, in the reporting currency.
	Total cart.Money
	// Lots lists the remaining lots, grouped by SKU in order of first appearance.
	Lots []CartLot
}

// CartLot is a single remaining lot.
type CartLot struct {
	SKU         string
	Description string
	Quantity    int
	UnitPrice   cart.Money
	Value       cart.Money
}

// NewCart creates the report data of a cart session.
func NewCart(c *cart.Cart) *Cart {
	r := &Cart{
		Total: c.Total(),
		Lots:  make([]CartLot, 0),
	}

	remaining := c.Lots()
	for _, sku := range c.SKUs() {
		for _, lot := range remaining[sku] {
			r.Lots = append(r.Lots, CartLot{
				SKU:         escapeCell(sku),
				Description: escapeCell(lot.Description),
				Quantity:    lot.Quantity,
				UnitPrice:   lot.UnitPrice,
				Value:       lot.Value(),
			})
		}
	}
	return r
}

// escapeCell makes s safe to use in a markdown table cell.
func escapeCell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
