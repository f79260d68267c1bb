package cart

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Cart is a ledger session: the entries loaded from a Store, plus the entries
// appended since.
//
// A Cart is not safe for concurrent use.
type Cart struct {
	store  Store
	ledger *Ledger
	logger zerolog.Logger
}

// Option configures a Cart.
type Option func(*Cart)

// WithLogger sets the logger used to report loads and appends.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cart) { c.logger = logger }
}

// Open loads the cart stored in the ledger file at path.
func Open(path string, opts ...Option) (*Cart, error) {
	return New(FileStore{Path: path}, opts...)
}

// New loads the cart from store. Every record must normalize, otherwise no
// cart is returned.
func New(store Store, opts ...Option) (*Cart, error) {
	c := &Cart{
		store:  store,
		ledger: NewLedger(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	raws, err := store.Load()
	if err != nil {
		return nil, err
	}
	for i, raw := range raws {
		e, err := Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid record #%d: %w", i+1, err)
		}
		c.ledger.Append(e)
	}
	c.logger.Debug().Int("entries", c.ledger.Len()).Msg("ledger loaded")
	return c, nil
}

// append persists e, then records it in memory. If the store fails the
// in-memory ledger is left unchanged.
func (c *Cart) append(e Entry) error {
	if err := c.store.Append(e); err != nil {
		return err
	}
	c.ledger.Append(e)
	c.logger.Debug().
		Str("sku", e.SKU).
		Int("quantity", e.Quantity).
		Str("unit_price", e.UnitPrice.Amount().String()).
		Msg("entry appended")
	return nil
}

// AddToCart adds quantity units of sku at price, expressed in currency.
//
// The price is converted into DefaultCurrency before being stored.
func (c *Cart) AddToCart(sku, description string, quantity int, price decimal.Decimal, currency string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if !price.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidPrice, price)
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if _, ok := Rate(currency); !ok {
		return fmt.Errorf("%w: %q is not one of %s", ErrInvalidCurrency, currency, strings.Join(Currencies(), ", "))
	}

	e, err := Normalize(RawEntry{
		SKU:         sku,
		Quantity:    strconv.Itoa(quantity),
		Description: description,
		Price:       price.String(),
		Currency:    currency,
	})
	if err != nil {
		return err
	}
	return c.append(e)
}

// RemoveFromCart removes quantity units of sku.
//
// The requested quantity is checked against the sum of every quantity recorded
// for sku, not against the FIFO remaining lots.
func (c *Cart) RemoveFromCart(sku string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return ErrMissingSKU
	}
	if len(c.ledger.BySKU(sku)) == 0 {
		return fmt.Errorf("%w: %q", ErrSKUNotFound, sku)
	}
	if stock := c.ledger.Stock(sku); stock < quantity {
		return fmt.Errorf("%w: %d requested for %q, %d in stock", ErrInsufficientStock, quantity, sku, stock)
	}

	return c.append(NewRemoval(sku, quantity))
}

// Total returns the value of all the remaining lots, in DefaultCurrency.
func (c *Cart) Total() Money {
	return TotalValue(c.ledger.RemainingLots())
}

// Lots returns the remaining lots of each SKU.
func (c *Cart) Lots() map[string][]Lot {
	return c.ledger.RemainingLots()
}

// SKUs returns every SKU of the cart, in order of first appearance.
func (c *Cart) SKUs() []string {
	return c.ledger.SKUs()
}

// Entries iterates over the normalized entries of the cart, in order.
func (c *Cart) Entries() iter.Seq[Entry] {
	return c.ledger.Entries()
}
