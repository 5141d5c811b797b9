package domain

import "time"

// Order is an immutable historical record produced by a settled checkout.
// Items hold a frozen copy of the cart lines with no live link back to the
// catalog; once created no field is ever mutated.
type Order struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName"`
	Email         string        `json:"email"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Items         []CartLine    `json:"items"`
	Total         float64       `json:"total"`
	CreatedAt     time.Time     `json:"createdAt"`
}
