package inventory

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/srburger/backoffice/internal/catalog"
	"github.com/srburger/backoffice/internal/domain"
	"github.com/srburger/backoffice/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*Ledger, *catalog.Service) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	cat := catalog.NewService(s)
	return NewLedger(s, cat), cat
}

// seedBurgerStand installs a minimal test catalog: BUN and PATTY ingredients
// and two products consuming them.
func seedBurgerStand(cat *catalog.Service, bunStock, pattyStock float64) {
	cat.SaveIngredients([]domain.Ingredient{
		{Name: "BUN", Unit: "unidad", PackageQuantity: 12, PackagePrice: 60, UnitPrice: 5, Stock: bunStock},
		{Name: "PATTY", Unit: "unidad", PackageQuantity: 16, PackagePrice: 160, UnitPrice: 10, Stock: pattyStock},
	})
	cat.SaveProducts([]domain.Product{
		{
			Name: "X", Category: "Hamburguesas", SalePrice: 50, Available: true,
			Ingredients: []domain.BOMItem{{Name: "BUN", Unit: "unidad", Quantity: 2}},
		},
		{
			Name: "COMBO", Category: "Hamburguesas", SalePrice: 90, Available: true,
			Ingredients: []domain.BOMItem{
				{Name: "BUN", Unit: "unidad", Quantity: 1},
				{Name: "PATTY", Unit: "unidad", Quantity: 2},
			},
		},
	})
}

func stockOf(t *testing.T, cat *catalog.Service, name string) float64 {
	t.Helper()
	ing, ok := cat.IngredientByName(name)
	require.True(t, ok, "ingredient %s not found", name)
	return ing.Stock
}

func TestRequiredStockAccumulatesAcrossItems(t *testing.T) {
	ledger, cat := newTestLedger(t)
	seedBurgerStand(cat, 100, 100)

	required := ledger.RequiredStock([]domain.SaleItem{
		{Name: "X", Quantity: 3},     // 6 BUN
		{Name: "COMBO", Quantity: 2}, // 2 BUN, 4 PATTY
	})

	assert.Equal(t, 8.0, required["BUN"])
	assert.Equal(t, 4.0, required["PATTY"])
}

func TestRequiredStockUnknownProductContributesZero(t *testing.T) {
	ledger, cat := newTestLedger(t)
	seedBurgerStand(cat, 100, 100)

	required := ledger.RequiredStock([]domain.SaleItem{
		{Name: "DELETED PRODUCT", Quantity: 5},
		{Name: "X", Quantity: 1},
	})

	assert.Equal(t, map[string]float64{"BUN": 2}, required)
}

func TestValidateStockSufficient(t *testing.T) {
	ledger, cat := newTestLedger(t)
	seedBurgerStand(cat, 10, 10)

	assert.NoError(t, ledger.ValidateStock([]domain.SaleItem{{Name: "X", Quantity: 5}}))
}

func TestValidateStockNamesShortIngredient(t *testing.T) {
	ledger, cat := newTestLedger(t)
	seedBurgerStand(cat, 10, 1)

	err := ledger.ValidateStock([]domain.SaleItem{{Name: "COMBO", Quantity: 1}})
	require.Error(t, err)

	var short *InsufficientStockError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, "PATTY", short.Ingredient)
	assert.Equal(t, 2.0, short.Required)
	assert.Equal(t, 1.0, short.Available)
}

func TestValidateStockReportsFirstShortInSortedOrder(t *testing.T) {
	ledger, cat := newTestLedger(t)
	seedBurgerStand(cat, 0, 0)

	err := ledger.ValidateStock([]domain.SaleItem{{Name: "COMBO", Quantity: 1}})
	var short *InsufficientStockError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, "BUN", short.Ingredient)
}

func TestValidateStockMissingIngredientCountsAsZero(t *testing.T) {
	ledger, cat := newTestLedger(t)
	seedBurgerStand(cat, 10, 10)
	cat.DeleteIngredient("BUN")

	err := ledger.ValidateStock([]domain.SaleItem{{Name: "X", Quantity: 1}})
	var short *InsufficientStockError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, "BUN", short.Ingredient)
	assert.Zero(t, short.Available)
}

func TestUsageAggregatesByIngredientAndUnit(t *testing.T) {
	ledger, cat := newTestLedger(t)
	seedBurgerStand(cat, 100, 100)

	date := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	usage := ledger.Usage([]domain.SaleItem{
		{Name: "X", Quantity: 2},     // 4 BUN
		{Name: "COMBO", Quantity: 1}, // 1 BUN, 2 PATTY
	}, 777, date)

	require.Len(t, usage, 2)

	bun := usage[0]
	assert.Equal(t, "BUN", bun.IngredientName)
	assert.Equal(t, 5.0, bun.Quantity)
	// the first contributing line's product name is retained
	assert.Equal(t, "X", bun.ProductName)
	assert.Equal(t, int64(777), bun.SaleID)
	assert.True(t, bun.Date.Equal(date))

	patty := usage[1]
	assert.Equal(t, "PATTY", patty.IngredientName)
	assert.Equal(t, 2.0, patty.Quantity)
	assert.Equal(t, "COMBO", patty.ProductName)
}

func TestApplyUsageClampsStockAtZero(t *testing.T) {
	ledger, cat := newTestLedger(t)
	seedBurgerStand(cat, 3, 10)

	ledger.ApplyUsage([]domain.IngredientUsage{
		{IngredientName: "BUN", Unit: "unidad", Quantity: 5, SaleID: 1},
	})

	assert.Zero(t, stockOf(t, cat, "BUN"))
	assert.Equal(t, 10.0, stockOf(t, cat, "PATTY"))
}

func TestReverseSaleReconcilesFromPurchasesMinusUsage(t *testing.T) {
	ledger, cat := newTestLedger(t)
	seedBurgerStand(cat, 0, 0)

	_, err := ledger.RecordPurchase("BUN", 20, 60, "")
	require.NoError(t, err)

	// two sales consuming 4 and 6 BUN
	ledger.AppendUsage([]domain.IngredientUsage{
		{IngredientName: "BUN", Unit: "unidad", Quantity: 4, SaleID: 1},
	})
	ledger.AppendUsage([]domain.IngredientUsage{
		{IngredientName: "BUN", Unit: "unidad", Quantity: 6, SaleID: 2},
	})

	ledger.ReverseSale(1)
	assert.Equal(t, 14.0, stockOf(t, cat, "BUN")) // 20 - 6

	ledger.ReverseSale(2)
	assert.Equal(t, 20.0, stockOf(t, cat, "BUN"))
}

func TestReverseSaleOrderIndependent(t *testing.T) {
	run := func(order []int64) float64 {
		ledger, cat := newTestLedger(t)
		seedBurgerStand(cat, 0, 0)
		_, err := ledger.RecordPurchase("BUN", 12, 60, "")
		require.NoError(t, err)

		ledger.AppendUsage([]domain.IngredientUsage{
			{IngredientName: "BUN", Unit: "unidad", Quantity: 4, SaleID: 1},
		})
		ledger.AppendUsage([]domain.IngredientUsage{
			{IngredientName: "BUN", Unit: "unidad", Quantity: 3, SaleID: 2},
		})
		ledger.AppendUsage([]domain.IngredientUsage{
			{IngredientName: "BUN", Unit: "unidad", Quantity: 5, SaleID: 3},
		})

		for _, id := range order {
			ledger.ReverseSale(id)
		}
		return stockOf(t, cat, "BUN")
	}

	// deleting sales 1 and 3 in either order leaves the same stock: 12 - 3
	assert.Equal(t, run([]int64{1, 3}), run([]int64{3, 1}))
	assert.Equal(t, 9.0, run([]int64{1, 3}))
}

func TestReverseSaleSkipsIngredientsGoneFromCatalog(t *testing.T) {
	ledger, cat := newTestLedger(t)
	seedBurgerStand(cat, 0, 5)
	cat.DeleteIngredient("BUN")

	ledger.AppendUsage([]domain.IngredientUsage{
		{IngredientName: "BUN", Unit: "unidad", Quantity: 4, SaleID: 1},
	})

	// must not panic; PATTY reconciles normally (no purchases -> 0)
	ledger.ReverseSale(1)
	assert.Zero(t, stockOf(t, cat, "PATTY"))
	_, ok := cat.IngredientByName("BUN")
	assert.False(t, ok)
}

func TestRecordPurchaseUpdatesStockAndPrices(t *testing.T) {
	ledger, cat := newTestLedger(t)
	seedBurgerStand(cat, 2, 0)

	p, err := ledger.RecordPurchase("BUN", 24, 72, "2026-08-01")
	require.NoError(t, err)

	assert.Equal(t, 26.0, stockOf(t, cat, "BUN"))
	bun, _ := cat.IngredientByName("BUN")
	assert.Equal(t, 72.0, bun.PackagePrice)
	assert.InDelta(t, 6.0, bun.UnitPrice, 1e-9) // 72 / 12

	assert.Equal(t, "BUN", p.Ingredient.Name)
	assert.Equal(t, 24.0, p.Quantity)
	assert.Equal(t, 72.0*24, p.Total)
	assert.Equal(t, 2026, p.Date.Year())

	log := ledger.Purchases()
	require.Len(t, log, 1)
	assert.Equal(t, p.ID, log[0].ID)
}

func TestRecordPurchaseValidation(t *testing.T) {
	ledger, cat := newTestLedger(t)
	seedBurgerStand(cat, 0, 0)

	_, err := ledger.RecordPurchase("BUN", 0, 10, "")
	assert.Error(t, err)

	_, err = ledger.RecordPurchase("BUN", 1, -1, "")
	assert.Error(t, err)

	_, err = ledger.RecordPurchase("NO-EXISTE", 1, 10, "")
	assert.Error(t, err)

	_, err = ledger.RecordPurchase("BUN", 1, 10, "not a date")
	assert.Error(t, err)

	assert.Empty(t, ledger.Purchases())
}
