package domain

// CartItem is one line of the in-progress cart. The product is embedded as a
// snapshot so the cart survives catalog edits until checkout.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Total returns the line total.
func (c CartItem) Total() float64 {
	return c.Product.SalePrice * float64(c.Quantity)
}
