package domain

// Ingredient is a stocked raw material. Name is the unique key; historical
// records (purchases, usage) reference it by name only, so deleting an
// ingredient from the catalog does not rewrite history.
type Ingredient struct {
	Name            string  `json:"name"`
	Unit            string  `json:"unit"`
	PackageQuantity float64 `json:"packageQuantity"`
	PackagePrice    float64 `json:"packagePrice"`
	UnitPrice       float64 `json:"unitPrice"`
	Stock           float64 `json:"stock"`
}

// RecalcUnitPrice restores the unitPrice == packagePrice/packageQuantity
// invariant after a package price or quantity change.
func (i *Ingredient) RecalcUnitPrice() {
	if i.PackageQuantity > 0 {
		i.UnitPrice = i.PackagePrice / i.PackageQuantity
	} else {
		i.UnitPrice = 0
	}
}
