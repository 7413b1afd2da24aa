package view

// ProductCard is one product widget on the shop page: the product fields
// plus the state of its quantity input.
type ProductCard struct {
	ID          string
	Title       string
	Description string
	ImageURL    string

	UnitPrice string // "$10.00"
	LinePrice string // unit price times the committed quantity, "$30.00"

	QtyDisplay   string // raw input text, may be mid-edit
	QtyCommitted int
}

// ShopPage is the catalog listing with its loading/error placeholder
// states.
type ShopPage struct {
	Loading  bool
	ErrorMsg string
	Products []ProductCard
}
