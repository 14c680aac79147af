package domain

import "time"

// IngredientUsage is one row of the consumption ledger: the total quantity of
// one ingredient consumed by one sale, aggregated across the sale's product
// lines. Rows are removed wholesale when their owning sale is deleted.
type IngredientUsage struct {
	ID             int64     `json:"id,string"`
	Date           time.Time `json:"date"`
	IngredientName string    `json:"ingredientName"`
	Unit           string    `json:"unit"`
	Quantity       float64   `json:"quantity"`
	SaleID         int64     `json:"saleId,string"`
	ProductName    string    `json:"productName"`
}
