package cart

import "math"

// Lot is a batch of stock added at one price that has not been consumed yet.
type Lot struct {
	Description string
	Quantity    int
	UnitPrice   Money
}

// Value returns the value of the remaining quantity.
func (l Lot) Value() Money { return l.UnitPrice.Mul(l.Quantity) }

type lots []Lot

// consume removes a quantity from the lots using the FIFO method, and returns the remaining lots.
func (l lots) consume(quantityToConsume int) lots {
	remainingLots := lots{}

	for _, currentLot := range l {
		if quantityToConsume <= 0 {
			remainingLots = append(remainingLots, currentLot)
			continue
		}

		if currentLot.Quantity > quantityToConsume {
			// Partial consumption of this lot
			currentLot.Quantity -= quantityToConsume
			remainingLots = append(remainingLots, currentLot)
			quantityToConsume = 0
		} else {
			// Full consumption of this lot
			quantityToConsume -= currentLot.Quantity
		}
	}
	return remainingLots
}

// value sums the value of all lots.
func (l lots) value() Money {
	total := EUR(0)
	for _, lot := range l {
		total = total.Add(lot.Value())
	}
	return total
}

// RemainingLotsBySKU groups entries by SKU and returns, for each SKU, the lots
// left once every removal has been matched against the earliest additions.
//
// All removals of a SKU are summed before matching, whatever their position in
// the sequence. Every SKU of entries has a key, possibly with no lots.
func RemainingLotsBySKU(entries []Entry) map[string][]Lot {
	added := make(map[string]lots)
	toConsume := make(map[string]int)

	for _, e := range entries {
		if _, exists := added[e.SKU]; !exists {
			added[e.SKU] = lots{}
		}
		if e.IsRemoval() {
			toConsume[e.SKU] = addCapped(toConsume[e.SKU], -e.Quantity)
			continue
		}
		added[e.SKU] = append(added[e.SKU], Lot{
			Description: e.Description,
			Quantity:    e.Quantity,
			UnitPrice:   e.UnitPrice,
		})
	}

	remaining := make(map[string][]Lot, len(added))
	for sku, l := range added {
		remaining[sku] = l.consume(toConsume[sku])
	}
	return remaining
}

// addCapped returns a+b for non negative a and b, capped at math.MaxInt.
func addCapped(a, b int) int {
	if b < 0 || a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// TotalValue sums quantity × unit price over all the lots of all SKUs.
func TotalValue(remaining map[string][]Lot) Money {
	total := EUR(0)
	for _, l := range remaining {
		total = total.Add(lots(l).value())
	}
	return total
}
