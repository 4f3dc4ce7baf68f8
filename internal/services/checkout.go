package service

import (
	"maps"
	"slices"
	"sync"

	"github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/aaravmahajanofficial/shopity/internal/models"
	"github.com/shopspring/decimal"
)

type CheckoutService interface {
	Increase(productID string) (int, error)
	Decrease(productID string) (int, error)
	Quantity(productID string) int
	Quantities() map[string]int
	Summary() models.CartSummary
	Lines() []models.OrderLine
}

// CheckoutCalculator derives display totals from the cart and a quantity per
// product. Every cart change resets all quantities to 1.
type CheckoutCalculator struct {
	mu         sync.RWMutex
	entries    []models.CartEntry
	quantities map[string]int
}

func NewCheckoutCalculator(cart CartService) *CheckoutCalculator {
	c := &CheckoutCalculator{}
	c.Reset(cart.List())
	cart.Subscribe(c.Reset)

	return c
}

// Reset rebuilds the quantity map from scratch for entries.
func (c *CheckoutCalculator) Reset(entries []models.CartEntry) {
	quantities := make(map[string]int, len(entries))
	for _, e := range entries {
		quantities[e.ProductID()] = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = slices.Clone(entries)
	c.quantities = quantities
}

// Increase implements CheckoutService. There is no upper bound.
func (c *CheckoutCalculator) Increase(productID string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	q, ok := c.quantities[productID]
	if !ok {
		return 0, errors.NotFoundError("Item not in cart")
	}

	c.quantities[productID] = q + 1

	return q + 1, nil
}

// Decrease implements CheckoutService. Quantities never drop below 1.
func (c *CheckoutCalculator) Decrease(productID string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	q, ok := c.quantities[productID]
	if !ok {
		return 0, errors.NotFoundError("Item not in cart")
	}

	if q > 1 {
		q--
	}

	c.quantities[productID] = q

	return q, nil
}

// Quantity implements CheckoutService. Unknown products count as 1.
func (c *CheckoutCalculator) Quantity(productID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return quantityOf(c.quantities, productID)
}

// Quantities implements CheckoutService.
func (c *CheckoutCalculator) Quantities() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return maps.Clone(c.quantities)
}

// Summary implements CheckoutService.
func (c *CheckoutCalculator) Summary() models.CartSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines := make([]models.CartLine, 0, len(c.entries))

	for _, e := range c.entries {
		q := quantityOf(c.quantities, e.ProductID())
		lines = append(lines, models.CartLine{
			Product:  e.Product,
			Quantity: q,
			Subtotal: Subtotal(e.Product, q),
		})
	}

	return models.CartSummary{
		Items:      lines,
		GrandTotal: GrandTotal(c.entries, c.quantities),
	}
}

// Lines implements CheckoutService. It snapshots the cart as order lines.
func (c *CheckoutCalculator) Lines() []models.OrderLine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines := make([]models.OrderLine, 0, len(c.entries))

	for _, e := range c.entries {
		lines = append(lines, models.OrderLine{
			ItemName:     e.Product.ItemName,
			Price:        e.Product.Price,
			Quantity:     quantityOf(c.quantities, e.ProductID()),
			MainImageURL: e.Product.MainImageURL,
		})
	}

	return lines
}

// Subtotal is price × quantity.
func Subtotal(product models.Product, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(quantity)))
}

// GrandTotal sums the subtotals of entries, using quantity 1 for products
// missing from quantities.
func GrandTotal(entries []models.CartEntry, quantities map[string]int) decimal.Decimal {
	total := decimal.Zero

	for _, e := range entries {
		total = total.Add(Subtotal(e.Product, quantityOf(quantities, e.ProductID())))
	}

	return total
}

func quantityOf(quantities map[string]int, productID string) int {
	if q, ok := quantities[productID]; ok && q > 0 {
		return q
	}

	return 1
}

var _ CheckoutService = (*CheckoutCalculator)(nil)
