package domain

// CartLine is one product's presence in the active cart: a snapshot of the
// product fields at the time of the last reconciliation, plus a quantity.
// Invariant: 1 <= Qty <= snapshot stock.
type CartLine struct {
	Product
	Qty int `json:"qty"`
}

// Subtotal returns the line total, price times quantity.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Qty)
}
