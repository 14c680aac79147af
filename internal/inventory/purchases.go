package inventory

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
	"github.com/srburger/backoffice/internal/domain"
	"github.com/srburger/backoffice/internal/store"
	"github.com/srburger/backoffice/pkg/common"
	"go.uber.org/zap"
)

// Purchases returns the append-only purchase log.
func (l *Ledger) Purchases() []domain.Purchase {
	return store.Read(l.store, store.CollPurchases, []domain.Purchase{})
}

// RecordPurchase registers a restock of one ingredient: stock grows by the
// purchased quantity, the package price becomes the latest paid price and the
// unit price is re-derived from it. dateText accepts any common date format;
// empty means now.
func (l *Ledger) RecordPurchase(ingredientName string, quantity, price float64, dateText string) (domain.Purchase, error) {
	if quantity <= 0 {
		return domain.Purchase{}, errors.New("purchase quantity must be positive")
	}
	if price < 0 {
		return domain.Purchase{}, errors.New("purchase price must not be negative")
	}

	ingredients := l.catalog.Ingredients()
	var target *domain.Ingredient
	for i := range ingredients {
		if ingredients[i].Name == ingredientName {
			target = &ingredients[i]
			break
		}
	}
	if target == nil {
		return domain.Purchase{}, errors.Errorf("ingredient %q not found", ingredientName)
	}

	date := time.Now()
	if dateText != "" {
		parsed, err := dateparse.ParseAny(dateText)
		if err != nil {
			return domain.Purchase{}, errors.Wrapf(err, "parse purchase date %q", dateText)
		}
		date = parsed
	}

	target.Stock += quantity
	target.PackagePrice = price
	target.RecalcUnitPrice()
	l.catalog.SaveIngredients(ingredients)

	purchase := domain.Purchase{
		ID:   common.NextID(),
		Date: date,
		Ingredient: domain.PurchaseIngredient{
			ID:   common.NextID(),
			Name: target.Name,
			Unit: target.Unit,
		},
		Quantity: quantity,
		Price:    price,
		Total:    price * quantity,
	}
	store.Write(l.store, store.CollPurchases, append(l.Purchases(), purchase))

	zap.L().Info("purchase recorded",
		zap.String("ingredient", target.Name),
		zap.Float64("quantity", quantity),
		zap.Float64("stock", target.Stock))
	return purchase, nil
}
