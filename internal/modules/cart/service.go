package cart

import (
	"shopwindow.dev/app/pkg/view"
)

// WidgetState supplies the quantity-widget state for a cart line, when a
// visitor has one mid-edit. ok=false means no widget state exists yet and
// the line's own quantity is shown.
type WidgetState func(productID string) (display string, committed int, ok bool)

// BuildCartPage assembles the cart page view model. Line totals are
// priced from the widget's committed quantity so they track stepping;
// the subtotal is priced from the stored line quantities, which are the
// authoritative cart state until an edit is submitted.
func BuildCartPage(c *Cart, state WidgetState) view.CartPage {
	lines := c.Lines()
	vm := view.CartPage{Items: make([]view.CartItem, 0, len(lines))}

	subtotal := 0.0
	for _, l := range lines {
		display := ""
		committed := l.Quantity
		if state != nil {
			if d, q, ok := state(l.Product.ID); ok {
				display, committed = d, q
			}
		}
		if display == "" {
			display = view.FormatQty(l.Quantity)
		}

		subtotal += l.Product.Price * float64(l.Quantity)

		vm.Items = append(vm.Items, view.CartItem{
			ProductID:   l.Product.ID,
			Title:       l.Product.Title,
			Description: l.Product.Description,
			ImageURL:    l.Product.Image,
			Qty:         l.Quantity,
			QtyDisplay:  display,
			UnitPrice:   view.Money(l.Product.Price),
			LineTotal:   view.Money(l.Product.Price * float64(committed)),
		})
	}

	vm.Count = c.Count()
	vm.Subtotal = view.Money(subtotal)
	return vm
}
