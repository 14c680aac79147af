package catalog

import (
	"path/filepath"
	"testing"

	"github.com/srburger/backoffice/internal/domain"
	"github.com/srburger/backoffice/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return NewService(s)
}

func findIngredient(t *testing.T, svc *Service, name string) domain.Ingredient {
	t.Helper()
	ing, ok := svc.IngredientByName(name)
	require.True(t, ok, "ingredient %s not found", name)
	return ing
}

func TestIngredientsEmptyStoreYieldsSeed(t *testing.T) {
	svc := newTestService(t)

	got := svc.Ingredients()
	require.Len(t, got, len(DefaultIngredients))
	assert.Equal(t, "AGUAS", got[0].Name)
	assert.Zero(t, got[0].Stock)
}

func TestIngredientsPersistedRecordWinsOnNameMatch(t *testing.T) {
	svc := newTestService(t)

	svc.SaveIngredients([]domain.Ingredient{
		{Name: "BIMBOLLO", Unit: "unidad", PackageQuantity: 12, PackagePrice: 99, UnitPrice: 8.25, Stock: 36},
	})

	merged := svc.Ingredients()
	require.Len(t, merged, len(DefaultIngredients))

	bimbollo := findIngredient(t, svc, "BIMBOLLO")
	assert.Equal(t, 36.0, bimbollo.Stock)
	assert.Equal(t, 99.0, bimbollo.PackagePrice)

	// untouched seed entries keep their seed values
	aguas := findIngredient(t, svc, "AGUAS")
	assert.Equal(t, 86.0, aguas.PackagePrice)
}

func TestIngredientsCustomEntriesAppendedAfterSeed(t *testing.T) {
	svc := newTestService(t)

	svc.SaveIngredients([]domain.Ingredient{
		{Name: "GUACAMOLE", Unit: "g", PackageQuantity: 500, PackagePrice: 120, UnitPrice: 0.24, Stock: 500},
	})

	merged := svc.Ingredients()
	require.Len(t, merged, len(DefaultIngredients)+1)
	assert.Equal(t, "GUACAMOLE", merged[len(merged)-1].Name)
}

func TestAddIngredientStartsWithZeroStock(t *testing.T) {
	svc := newTestService(t)

	err := svc.AddIngredient(domain.Ingredient{
		Name: "PEPINILLOS", Unit: "g", PackageQuantity: 1000, PackagePrice: 80, Stock: 999,
	})
	require.NoError(t, err)

	ing := findIngredient(t, svc, "PEPINILLOS")
	assert.Zero(t, ing.Stock)
	assert.InDelta(t, 0.08, ing.UnitPrice, 1e-9)
}

func TestAddIngredientRejectsDuplicates(t *testing.T) {
	svc := newTestService(t)

	err := svc.AddIngredient(domain.Ingredient{Name: "BIMBOLLO", Unit: "unidad", PackageQuantity: 12})
	assert.Error(t, err)
}

func TestUpdateIngredientRestoresUnitPriceInvariant(t *testing.T) {
	svc := newTestService(t)

	ing := findIngredient(t, svc, "BIMBOLLO")
	ing.PackagePrice = 120
	ing.PackageQuantity = 10
	ing.UnitPrice = 1 // stale on purpose
	require.NoError(t, svc.UpdateIngredient(ing))

	got := findIngredient(t, svc, "BIMBOLLO")
	assert.InDelta(t, 12.0, got.UnitPrice, 1e-9)
}

func TestDeleteIngredientRemovesFromActiveCatalog(t *testing.T) {
	svc := newTestService(t)

	svc.DeleteIngredient("BIMBOLLO")
	_, ok := svc.IngredientByName("BIMBOLLO")
	assert.False(t, ok)

	// the seed merge must not bring a deleted seed entry back on later reads
	require.Len(t, svc.Ingredients(), len(DefaultIngredients)-1)
	_, ok = svc.IngredientByName("BIMBOLLO")
	assert.False(t, ok)
}

func TestDeleteSeedIngredientSurvivesLaterEdits(t *testing.T) {
	svc := newTestService(t)

	svc.DeleteIngredient("BIMBOLLO")

	// unrelated mutations re-save the catalog; the deletion must hold
	aguas := findIngredient(t, svc, "AGUAS")
	aguas.PackagePrice = 90
	require.NoError(t, svc.UpdateIngredient(aguas))

	_, ok := svc.IngredientByName("BIMBOLLO")
	assert.False(t, ok)
	assert.Len(t, svc.Ingredients(), len(DefaultIngredients)-1)
}

func TestReAddingDeletedSeedIngredient(t *testing.T) {
	svc := newTestService(t)

	svc.DeleteIngredient("BIMBOLLO")
	require.NoError(t, svc.AddIngredient(domain.Ingredient{
		Name: "BIMBOLLO", Unit: "unidad", PackageQuantity: 12, PackagePrice: 96,
	}))

	ing := findIngredient(t, svc, "BIMBOLLO")
	assert.Zero(t, ing.Stock)
	assert.InDelta(t, 8.0, ing.UnitPrice, 1e-9)
	assert.Len(t, svc.Ingredients(), len(DefaultIngredients))
}

func TestDeleteSeedProductStaysDeleted(t *testing.T) {
	svc := newTestService(t)

	svc.DeleteProduct("HAMBURGUESA")

	_, ok := svc.ProductByName("HAMBURGUESA")
	assert.False(t, ok)
	require.Len(t, svc.Products(), len(DefaultProducts)-1)

	// still gone on a fresh read after another mutation re-saves the list
	require.NoError(t, svc.AddProduct(domain.Product{
		Name: "Agua fresca", Category: "Bebidas", SalePrice: 20, Available: true,
	}))
	_, ok = svc.ProductByName("HAMBURGUESA")
	assert.False(t, ok)
}

func TestDeleteCustomIngredientNeedsNoTombstone(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.AddIngredient(domain.Ingredient{
		Name: "GUACAMOLE", Unit: "g", PackageQuantity: 500, PackagePrice: 120,
	}))
	svc.DeleteIngredient("GUACAMOLE")

	_, ok := svc.IngredientByName("GUACAMOLE")
	assert.False(t, ok)
	assert.Len(t, svc.Ingredients(), len(DefaultIngredients))
}

func TestProductsPersistedRecordWins(t *testing.T) {
	svc := newTestService(t)

	svc.SaveProducts([]domain.Product{
		{Name: "HAMBURGUESA", Category: "Hamburguesas", SalePrice: 115, Available: false},
	})

	p, ok := svc.ProductByName("HAMBURGUESA")
	require.True(t, ok)
	assert.Equal(t, 115.0, p.SalePrice)
	assert.False(t, p.Available)
	assert.Len(t, svc.Products(), len(DefaultProducts))
}

func TestAddProductDerivesProductionCost(t *testing.T) {
	svc := newTestService(t)

	err := svc.AddProduct(domain.Product{
		Name:      "Refresco",
		Category:  "Bebidas",
		SalePrice: 25,
		Ingredients: []domain.BOMItem{
			{Name: "AGUAS", Unit: "unidad", Quantity: 1},
			{Name: "BOTECITO", Unit: "unidad", Quantity: 2},
		},
		Available: true,
	})
	require.NoError(t, err)

	p, ok := svc.ProductByName("Refresco")
	require.True(t, ok)
	// AGUAS 4.78 + 2 x BOTECITO 1.00
	assert.InDelta(t, 6.78, p.ProductionCost, 1e-9)
}

func TestProductionCostSkipsUnknownIngredients(t *testing.T) {
	svc := newTestService(t)

	cost := svc.ProductionCost([]domain.BOMItem{
		{Name: "NO-EXISTE", Unit: "g", Quantity: 100},
		{Name: "BOTECITO", Unit: "unidad", Quantity: 1},
	})
	assert.InDelta(t, 1.0, cost, 1e-9)
}

func TestUpdateProductReDerivesCostFromCurrentPrices(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.AddProduct(domain.Product{
		Name:        "Refresco",
		Category:    "Bebidas",
		SalePrice:   25,
		Ingredients: []domain.BOMItem{{Name: "AGUAS", Unit: "unidad", Quantity: 1}},
		Available:   true,
	}))

	aguas := findIngredient(t, svc, "AGUAS")
	aguas.PackagePrice = 180
	require.NoError(t, svc.UpdateIngredient(aguas))

	// the existing product keeps its authoring-time snapshot
	p, _ := svc.ProductByName("Refresco")
	assert.InDelta(t, 4.78, p.ProductionCost, 1e-9)

	// updating the product re-prices it
	require.NoError(t, svc.UpdateProduct(p))
	p, _ = svc.ProductByName("Refresco")
	assert.InDelta(t, 10.0, p.ProductionCost, 1e-9)
}

func TestProductImages(t *testing.T) {
	svc := newTestService(t)

	assert.Empty(t, svc.ProductImage("HAMBURGUESA"))
	svc.SetProductImage("HAMBURGUESA", "img://burger")
	assert.Equal(t, "img://burger", svc.ProductImage("HAMBURGUESA"))
}
