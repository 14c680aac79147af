// Package inventory keeps ingredient stock consistent with the history of
// purchases and sales. Stock never goes negative: consumption clamps at zero
// and reversal recomputes from the full purchase and usage history.
package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/srburger/backoffice/internal/catalog"
	"github.com/srburger/backoffice/internal/domain"
	"github.com/srburger/backoffice/internal/store"
	"github.com/srburger/backoffice/pkg/common"
	"go.uber.org/zap"
)

// InsufficientStockError reports the first ingredient whose stock cannot
// cover a prospective sale.
type InsufficientStockError struct {
	Ingredient string
	Required   float64
	Available  float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock of %s: need %.2f, have %.2f",
		e.Ingredient, e.Required, e.Available)
}

// Ledger computes, validates, applies and reverses ingredient consumption.
type Ledger struct {
	store   *store.Store
	catalog *catalog.Service
}

func NewLedger(s *store.Store, c *catalog.Service) *Ledger {
	return &Ledger{store: s, catalog: c}
}

// RequiredStock accumulates the ingredient quantities a set of sale items
// consumes, summed across items sharing an ingredient. Items referencing a
// product no longer in the catalog contribute zero.
func (l *Ledger) RequiredStock(items []domain.SaleItem) map[string]float64 {
	required := make(map[string]float64)
	for _, item := range items {
		product, ok := l.catalog.ProductByName(item.Name)
		if !ok {
			zap.L().Debug("required stock: unknown product skipped",
				zap.String("product", item.Name))
			continue
		}
		for _, bom := range product.Ingredients {
			required[bom.Name] += bom.Quantity * float64(item.Quantity)
		}
	}
	return required
}

// ValidateStock checks that current stock covers the items. It returns an
// *InsufficientStockError naming the short ingredient, or nil. An ingredient
// missing from the catalog counts as zero stock. This is a precondition of
// committing a sale, not a post-hoc check.
func (l *Ledger) ValidateStock(items []domain.SaleItem) error {
	required := l.RequiredStock(items)
	names := make([]string, 0, len(required))
	for name := range required {
		names = append(names, name)
	}
	sort.Strings(names)

	stock := make(map[string]float64)
	for _, ing := range l.catalog.Ingredients() {
		stock[ing.Name] = ing.Stock
	}
	for _, name := range names {
		if stock[name] < required[name] {
			return &InsufficientStockError{
				Ingredient: name,
				Required:   required[name],
				Available:  stock[name],
			}
		}
	}
	return nil
}

// Usage materializes consumption ledger rows for a sale: one row per distinct
// (ingredient, unit) key, aggregated across all product lines. The product
// name retained on a row is the first line that touched that key; later
// contributors are folded into the quantity only.
func (l *Ledger) Usage(items []domain.SaleItem, saleID int64, saleDate time.Time) []domain.IngredientUsage {
	type usageKey struct{ name, unit string }
	index := make(map[usageKey]int)
	var rows []domain.IngredientUsage
	for _, item := range items {
		product, ok := l.catalog.ProductByName(item.Name)
		if !ok {
			continue
		}
		for _, bom := range product.Ingredients {
			quantity := bom.Quantity * float64(item.Quantity)
			key := usageKey{bom.Name, bom.Unit}
			if i, ok := index[key]; ok {
				rows[i].Quantity += quantity
				continue
			}
			index[key] = len(rows)
			rows = append(rows, domain.IngredientUsage{
				ID:             common.NextID(),
				Date:           saleDate,
				IngredientName: bom.Name,
				Unit:           bom.Unit,
				Quantity:       quantity,
				SaleID:         saleID,
				ProductName:    item.Name,
			})
		}
	}
	return rows
}

// ApplyUsage subtracts a sale's aggregated usage from every stored
// ingredient, clamped at zero. The clamp is the only defense against
// over-consumption from stale reads.
func (l *Ledger) ApplyUsage(usage []domain.IngredientUsage) {
	ingredients := l.catalog.Ingredients()
	if len(ingredients) == 0 {
		return
	}
	used := make(map[string]float64)
	for _, row := range usage {
		used[row.IngredientName] += row.Quantity
	}
	for i := range ingredients {
		newStock := ingredients[i].Stock - used[ingredients[i].Name]
		if newStock < 0 {
			newStock = 0
		}
		ingredients[i].Stock = newStock
	}
	l.catalog.SaveIngredients(ingredients)
}

// AppendUsage adds a sale's rows to the consumption ledger.
func (l *Ledger) AppendUsage(usage []domain.IngredientUsage) {
	stored := store.Read(l.store, store.CollIngredientUsage, []domain.IngredientUsage{})
	store.Write(l.store, store.CollIngredientUsage, append(stored, usage...))
}

// UsageRows returns the full consumption ledger.
func (l *Ledger) UsageRows() []domain.IngredientUsage {
	return store.Read(l.store, store.CollIngredientUsage, []domain.IngredientUsage{})
}

// ReverseSale undoes a sale's stock effects. It removes the sale's usage rows
// and then reconciles every stored ingredient from scratch:
//
//	stock = max(0, total purchased - total remaining usage)
//
// Recomputing from full history (rather than adding the sale's usage back)
// keeps deletion correct regardless of the order sales are removed in.
// Ingredients referenced by history but gone from the catalog are skipped.
func (l *Ledger) ReverseSale(saleID int64) {
	stored := l.UsageRows()
	remaining := make([]domain.IngredientUsage, 0, len(stored))
	for _, row := range stored {
		if row.SaleID != saleID {
			remaining = append(remaining, row)
		}
	}
	store.Write(l.store, store.CollIngredientUsage, remaining)

	ingredients := l.catalog.Ingredients()
	if len(ingredients) == 0 {
		return
	}

	totalUsed := make(map[string]float64)
	for _, row := range remaining {
		totalUsed[row.IngredientName] += row.Quantity
	}
	totalPurchased := make(map[string]float64)
	for _, p := range l.Purchases() {
		totalPurchased[p.Ingredient.Name] += p.Quantity
	}

	for i := range ingredients {
		name := ingredients[i].Name
		stock := totalPurchased[name] - totalUsed[name]
		if stock < 0 {
			stock = 0
		}
		ingredients[i].Stock = stock
	}
	l.catalog.SaveIngredients(ingredients)
}
