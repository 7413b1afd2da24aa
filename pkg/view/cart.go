package view

// CartItem is one line on the cart page, rendered with the same quantity
// widget as the shop page but in update/remove mode.
type CartItem struct {
	ProductID   string
	Title       string
	Description string
	ImageURL    string

	Qty        int
	QtyDisplay string

	UnitPrice string
	LineTotal string
}

type CartPage struct {
	Items    []CartItem
	Count    int // total quantity across lines, drives the nav badge
	Subtotal string
}

// ConfirmRemovePage asks the visitor to confirm removing one line.
type ConfirmRemovePage struct {
	ProductID string
	Title     string
}
