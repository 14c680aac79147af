package domain

import "time"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// SaleCustomer is the customer snapshot embedded in a sale. Referential
// consistency with the customers collection is best-effort only.
type SaleCustomer struct {
	ID   int64  `json:"id,string"`
	Name string `json:"name"`
}

// SaleItem is one product line of a completed sale.
type SaleItem struct {
	ID       int64   `json:"id,string"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Sale is immutable once created except for deletion. total == subtotal - discount
// must hold at creation time.
type Sale struct {
	ID            int64         `json:"id,string"`
	Date          time.Time     `json:"date"`
	Customer      SaleCustomer  `json:"customer"`
	Items         []SaleItem    `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CashReceived  *float64      `json:"cashReceived,omitempty"`
	Change        *float64      `json:"change,omitempty"`
}

// ItemCount returns the number of product units across all lines.
func (s Sale) ItemCount() int {
	var n int
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}
