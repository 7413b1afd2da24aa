package view

import "fmt"

// FormatPrice renders an amount with exactly two decimals, no symbol.
// E.g., 10.0 * 3 -> "30.00"
func FormatPrice(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// Money renders an amount for display. Single-currency store, so the
// symbol is fixed. E.g., 30.0 -> "$30.00"
func Money(amount float64) string {
	return "$" + FormatPrice(amount)
}

// FormatQty renders a quantity for an input field.
func FormatQty(qty int) string {
	return fmt.Sprintf("%d", qty)
}
