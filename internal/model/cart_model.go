package model

import "time"

// CartLine is one product entry in a cart. A line always has quantity >= 1;
// dropping a quantity to zero removes the line instead of keeping it around.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart is the persisted per-user cart. At most one line per product id.
type Cart struct {
	UserID    string     `json:"userId"`
	Items     []CartLine `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CalculateTotal sums price*quantity over all lines. Always evaluated fresh,
// never cached, so it reflects the current state exactly.
func CalculateTotal(items []CartLine) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}

// CountItems sums quantities over all lines.
func CountItems(items []CartLine) int {
	var n int
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// CartResponse is returned when calling GET /api/cart.
type CartResponse struct {
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}
