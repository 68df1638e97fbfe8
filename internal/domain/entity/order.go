package entity

import "time"

type ShippingInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// Order is the receipt of a simulated checkout. It is returned to the caller
// and never persisted.
type Order struct {
	ID          string       `json:"id"`
	Items       []CartEntry  `json:"items"`
	ItemCount   int          `json:"itemCount"`
	Subtotal    float64      `json:"subtotal"`
	ShippingFee float64      `json:"shippingFee"`
	Total       float64      `json:"total"`
	Shipping    ShippingInfo `json:"shipping"`
	PlacedAt    time.Time    `json:"placedAt"`
}
