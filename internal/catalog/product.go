package catalog

// Product is the read-only record served by the catalog API. The
// storefront never mutates these; a rendered view works against one
// snapshot for its whole lifetime.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}
