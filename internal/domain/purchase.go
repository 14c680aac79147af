package domain

import "time"

// PurchaseIngredient identifies the ingredient a purchase replenished.
type PurchaseIngredient struct {
	ID   int64  `json:"id,string"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// Purchase is an append-only restock record. The sum of purchase quantities
// per ingredient is the baseline for stock reconciliation.
type Purchase struct {
	ID         int64              `json:"id,string"`
	Date       time.Time          `json:"date"`
	Ingredient PurchaseIngredient `json:"ingredient"`
	Quantity   float64            `json:"quantity"`
	Price      float64            `json:"price"`
	Total      float64            `json:"total"`
}
