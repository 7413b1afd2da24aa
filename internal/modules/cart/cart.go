package cart

import (
	"fmt"

	"shopwindow.dev/app/internal/catalog"
	"shopwindow.dev/app/internal/shared/apperr"
)

// ProductLookup resolves a product id against the catalog snapshot that
// was current when the submit happened.
type ProductLookup func(productID string) (catalog.Product, bool)

// Confirmer answers the removal prompt. Injected so the web flow can use
// a confirm page and tests can use a deterministic stub.
type Confirmer interface {
	ConfirmRemoval(productTitle string) bool
}

// ConfirmerFunc adapts a plain function to Confirmer.
type ConfirmerFunc func(productTitle string) bool

func (f ConfirmerFunc) ConfirmRemoval(title string) bool { return f(title) }

// Line is one (product, quantity) record. Quantity is always >= 1; a
// line that would reach 0 is removed instead.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// Cart holds the lines for one visit, ordered by insertion and unique by
// product id. Updates keep a line's position, inserts append.
type Cart struct {
	lines []Line
	index map[string]int
}

func New() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Len returns the number of lines.
func (c *Cart) Len() int { return len(c.lines) }

// Count returns the total quantity across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Lines returns the lines in display order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Get returns the line for productID, if any.
func (c *Cart) Get(productID string) (Line, bool) {
	i, ok := c.index[productID]
	if !ok {
		return Line{}, false
	}
	return c.lines[i], true
}

// AddOrAccumulate handles a submit from the catalog page. An existing
// line grows by qty; a new product is resolved through lookup and
// appended. Adding never removes, so qty must be at least 1.
func (c *Cart) AddOrAccumulate(productID string, qty int, lookup ProductLookup) error {
	if qty < 1 {
		return apperr.InvalidErr("Quantity must be at least 1.", nil)
	}
	if productID == "" {
		return apperr.InvalidErr("No product selected.", nil)
	}

	if i, ok := c.index[productID]; ok {
		c.lines[i].Quantity += qty
		return nil
	}

	p, ok := lookup(productID)
	if !ok {
		// The product left the catalog between render and submit.
		return apperr.NotFoundErr("That product is no longer available.")
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: qty})
	c.index[productID] = len(c.lines) - 1
	return nil
}

// SetOrRemove handles a submit from the cart page. qty >= 1 overwrites
// the existing line's quantity in place. qty == 0 removes the line, but
// only after the confirmer agrees; declining leaves the cart untouched.
// Calling it for a product not in the cart is a contract violation and
// never inserts. The returned bool reports whether a line was removed.
func (c *Cart) SetOrRemove(productID string, qty int, confirmer Confirmer) (bool, error) {
	i, ok := c.index[productID]
	if !ok {
		return false, apperr.ConflictErr("That item is not in your cart.")
	}
	if qty < 0 {
		return false, apperr.InvalidErr("Quantity cannot be negative.", nil)
	}

	if qty == 0 {
		if confirmer == nil {
			return false, apperr.Wrap(fmt.Errorf("remove %s: no confirmer wired", productID))
		}
		if !confirmer.ConfirmRemoval(c.lines[i].Product.Title) {
			return false, nil
		}
		c.removeAt(i)
		return true, nil
	}

	c.lines[i].Quantity = qty
	return false, nil
}

func (c *Cart) removeAt(i int) {
	delete(c.index, c.lines[i].Product.ID)
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].Product.ID] = j
	}
}
