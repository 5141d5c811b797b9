package domain

// Product is a catalog entity. It is created and refreshed wholesale by a
// catalog source; the cart and order subsystems never mutate it.
type Product struct {
	ID          int64   `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image,omitempty"`
}
