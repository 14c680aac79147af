package domain

// BOMItem is one line of a product's bill-of-materials: the quantity of an
// ingredient consumed per unit of product sold.
type BOMItem struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
}

// Product is a sellable catalog item. ProductionCost is derived from
// ingredient unit prices at authoring time and is not recomputed when
// ingredient prices change later.
type Product struct {
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Category       string    `json:"category"`
	SalePrice      float64   `json:"salePrice"`
	ProductionCost float64   `json:"productionCost"`
	Ingredients    []BOMItem `json:"ingredients"`
	Available      bool      `json:"available"`
}
