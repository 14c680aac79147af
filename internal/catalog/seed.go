package catalog

import "github.com/srburger/backoffice/internal/domain"

// DefaultIngredients is the first-run ingredient catalog. Persisted records
// override these by name; entries below that were never edited keep their
// seed values.
var DefaultIngredients = []domain.Ingredient{
	{Name: "AGUAS", Unit: "unidad", PackageQuantity: 18, PackagePrice: 86.00, UnitPrice: 4.78},
	{Name: "AROS DE CEBOLLA", Unit: "unidad", PackageQuantity: 100, PackagePrice: 272.00, UnitPrice: 2.72},
	{Name: "BIMBOLLO", Unit: "unidad", PackageQuantity: 12, PackagePrice: 91.00, UnitPrice: 7.58},
	{Name: "BOTECITO", Unit: "unidad", PackageQuantity: 100, PackagePrice: 100.00, UnitPrice: 1.00},
	{Name: "CARNE DE HAMBURGUESA", Unit: "unidad", PackageQuantity: 16, PackagePrice: 265.00, UnitPrice: 16.56},
	{Name: "Catsup", Unit: "unidad", PackageQuantity: 200, PackagePrice: 145.00, UnitPrice: 0.72},
	{Name: "CHAROLA UNISEL", Unit: "unidad", PackageQuantity: 50, PackagePrice: 170.00, UnitPrice: 3.40},
	{Name: "CHILES", Unit: "unidad", PackageQuantity: 2, PackagePrice: 2.00, UnitPrice: 1.00},
	{Name: "MAYONESA", Unit: "g", PackageQuantity: 3400, PackagePrice: 295.00, UnitPrice: 0.09},
	{Name: "PAN HOTDOG", Unit: "unidad", PackageQuantity: 12, PackagePrice: 70.00, UnitPrice: 5.83},
	{Name: "PAPAS GAJO", Unit: "g", PackageQuantity: 2000, PackagePrice: 160.00, UnitPrice: 0.08},
	{Name: "PAPEL GRADO ALIMENTICIO", Unit: "unidad", PackageQuantity: 1000, PackagePrice: 300.00, UnitPrice: 0.30},
	{Name: "QUESO AMERICANO", Unit: "unidad", PackageQuantity: 90, PackagePrice: 163.00, UnitPrice: 1.81},
	{Name: "QUESO MANCHEGO", Unit: "g", PackageQuantity: 1000, PackagePrice: 150.00, UnitPrice: 0.15},
	{Name: "QUESO NACHOS", Unit: "g", PackageQuantity: 4000, PackagePrice: 204.00, UnitPrice: 0.05},
	{Name: "Ranch", Unit: "mL", PackageQuantity: 750, PackagePrice: 75.00, UnitPrice: 0.10},
	{Name: "SALCHICHAS JUMBO", Unit: "unidad", PackageQuantity: 20, PackagePrice: 147.00, UnitPrice: 7.35},
	{Name: "SALSA BBQ", Unit: "g", PackageQuantity: 600, PackagePrice: 40.00, UnitPrice: 0.07},
	{Name: "TOCINO", Unit: "unidad", PackageQuantity: 48, PackagePrice: 305.00, UnitPrice: 6.35},
	{Name: "Vegetales", Unit: "unidad", PackageQuantity: 1, PackagePrice: 8.00, UnitPrice: 8.00},
}

// DefaultProducts is the first-run menu with each product's bill-of-materials.
var DefaultProducts = []domain.Product{
	{
		Name:           "Aros de cebolla 15pz",
		Description:    "15 piezas de aros de cebolla con aderezo ranch",
		Category:       "Entradas",
		SalePrice:      80.00,
		ProductionCost: 48.50,
		Ingredients: []domain.BOMItem{
			{ID: "charola1", Name: "CHAROLA UNISEL", Unit: "unidades", Quantity: 1},
			{ID: "papel1", Name: "PAPEL GRADO ALIMENTICIO", Unit: "unidades", Quantity: 1},
			{ID: "aros1", Name: "AROS DE CEBOLLA", Unit: "unidades", Quantity: 15},
			{ID: "ranch1", Name: "Ranch", Unit: "ml", Quantity: 30},
			{ID: "bote1", Name: "BOTECITO", Unit: "unidades", Quantity: 1},
		},
		Available: true,
	},
	{
		Name:           "HAMBURGUESA",
		Description:    "Hamburguesa tradicional con carne, vegetales y queso",
		Category:       "Hamburguesas",
		SalePrice:      100.00,
		ProductionCost: 52.10,
		Ingredients: []domain.BOMItem{
			{ID: "bimbollo1", Name: "BIMBOLLO", Unit: "unidades", Quantity: 1},
			{ID: "mayo1", Name: "MAYONESA", Unit: "g", Quantity: 10},
			{ID: "chiles1", Name: "CHILES", Unit: "unidades", Quantity: 1},
			{ID: "bote2", Name: "BOTECITO", Unit: "unidades", Quantity: 1},
			{ID: "carne1", Name: "CARNE DE HAMBURGUESA", Unit: "unidades", Quantity: 1},
			{ID: "tocino1", Name: "TOCINO", Unit: "unidades", Quantity: 1},
			{ID: "veg1", Name: "Vegetales", Unit: "unidades", Quantity: 1},
			{ID: "queso1", Name: "QUESO AMERICANO", Unit: "unidades", Quantity: 1},
			{ID: "catsup1", Name: "Catsup", Unit: "unidades", Quantity: 1},
			{ID: "queso2", Name: "QUESO MANCHEGO", Unit: "g", Quantity: 30},
			{ID: "papel2", Name: "PAPEL GRADO ALIMENTICIO", Unit: "unidades", Quantity: 1},
			{ID: "charola2", Name: "CHAROLA UNISEL", Unit: "unidades", Quantity: 1},
		},
		Available: true,
	},
	{
		Name:           "HAMBURGUESA BBQ",
		Description:    "Hamburguesa con salsa BBQ, tocino, queso y aros de cebolla",
		Category:       "Hamburguesas",
		SalePrice:      110.00,
		ProductionCost: 57.76,
		Ingredients: []domain.BOMItem{
			{ID: "bimbollo2", Name: "BIMBOLLO", Unit: "unidades", Quantity: 1},
			{ID: "mayo2", Name: "MAYONESA", Unit: "g", Quantity: 10},
			{ID: "chiles2", Name: "CHILES", Unit: "unidades", Quantity: 1},
			{ID: "bote3", Name: "BOTECITO", Unit: "unidades", Quantity: 1},
			{ID: "carne2", Name: "CARNE DE HAMBURGUESA", Unit: "unidades", Quantity: 1},
			{ID: "tocino2", Name: "TOCINO", Unit: "unidades", Quantity: 1},
			{ID: "veg2", Name: "Vegetales", Unit: "unidades", Quantity: 1},
			{ID: "queso3", Name: "QUESO AMERICANO", Unit: "unidades", Quantity: 1},
			{ID: "aros2", Name: "AROS DE CEBOLLA", Unit: "unidades", Quantity: 3},
			{ID: "bbq1", Name: "SALSA BBQ", Unit: "g", Quantity: 30},
			{ID: "catsup2", Name: "Catsup", Unit: "unidades", Quantity: 1},
			{ID: "papel3", Name: "PAPEL GRADO ALIMENTICIO", Unit: "unidades", Quantity: 1},
			{ID: "charola3", Name: "CHAROLA UNISEL", Unit: "unidades", Quantity: 1},
		},
		Available: true,
	},
	{
		Name:           "HAMBURGUESA BBQ DOBLE",
		Description:    "Hamburguesa doble carne con salsa BBQ, tocino, queso y aros de cebolla",
		Category:       "Hamburguesas",
		SalePrice:      140.00,
		ProductionCost: 76.14,
		Ingredients: []domain.BOMItem{
			{ID: "bimbollo3", Name: "BIMBOLLO", Unit: "unidades", Quantity: 1},
			{ID: "mayo3", Name: "MAYONESA", Unit: "g", Quantity: 10},
			{ID: "chiles3", Name: "CHILES", Unit: "unidades", Quantity: 1},
			{ID: "bote4", Name: "BOTECITO", Unit: "unidades", Quantity: 1},
			{ID: "carne3", Name: "CARNE DE HAMBURGUESA", Unit: "unidades", Quantity: 2},
			{ID: "tocino3", Name: "TOCINO", Unit: "unidades", Quantity: 1},
			{ID: "veg3", Name: "Vegetales", Unit: "unidades", Quantity: 1},
			{ID: "queso4", Name: "QUESO AMERICANO", Unit: "unidades", Quantity: 2},
			{ID: "aros3", Name: "AROS DE CEBOLLA", Unit: "unidades", Quantity: 3},
			{ID: "bbq2", Name: "SALSA BBQ", Unit: "g", Quantity: 30},
			{ID: "catsup3", Name: "Catsup", Unit: "unidades", Quantity: 1},
			{ID: "papel4", Name: "PAPEL GRADO ALIMENTICIO", Unit: "unidades", Quantity: 1},
			{ID: "charola4", Name: "CHAROLA UNISEL", Unit: "unidades", Quantity: 1},
		},
		Available: true,
	},
	{
		Name:           "HAMBURGUESA DOBLE",
		Description:    "Hamburguesa con doble carne, queso y tocino",
		Category:       "Hamburguesas",
		SalePrice:      130.00,
		ProductionCost: 65.98,
		Ingredients: []domain.BOMItem{
			{ID: "bimbollo4", Name: "BIMBOLLO", Unit: "unidades", Quantity: 1},
			{ID: "mayo4", Name: "MAYONESA", Unit: "g", Quantity: 10},
			{ID: "chiles4", Name: "CHILES", Unit: "unidades", Quantity: 1},
			{ID: "bote5", Name: "BOTECITO", Unit: "unidades", Quantity: 1},
			{ID: "carne4", Name: "CARNE DE HAMBURGUESA", Unit: "unidades", Quantity: 2},
			{ID: "tocino4", Name: "TOCINO", Unit: "unidades", Quantity: 1},
			{ID: "veg4", Name: "Vegetales", Unit: "unidades", Quantity: 1},
			{ID: "queso5", Name: "QUESO AMERICANO", Unit: "unidades", Quantity: 2},
			{ID: "catsup4", Name: "Catsup", Unit: "unidades", Quantity: 1},
			{ID: "papel5", Name: "PAPEL GRADO ALIMENTICIO", Unit: "unidades", Quantity: 1},
			{ID: "charola5", Name: "CHAROLA UNISEL", Unit: "unidades", Quantity: 1},
		},
		Available: true,
	},
	{
		Name:           "HOTDOG",
		Description:    "Hot dog tradicional con salchicha jumbo, vegetales y tocino",
		Category:       "Hot Dogs",
		SalePrice:      60.00,
		ProductionCost: 31.05,
		Ingredients: []domain.BOMItem{
			{ID: "tocino5", Name: "TOCINO", Unit: "unidades", Quantity: 1},
			{ID: "mayo5", Name: "MAYONESA", Unit: "g", Quantity: 1},
			{ID: "charola6", Name: "CHAROLA UNISEL", Unit: "unidades", Quantity: 1},
			{ID: "papel6", Name: "PAPEL GRADO ALIMENTICIO", Unit: "unidades", Quantity: 1},
			{ID: "chiles5", Name: "CHILES", Unit: "unidades", Quantity: 1},
			{ID: "bote6", Name: "BOTECITO", Unit: "unidades", Quantity: 1},
			{ID: "vegH", Name: "Vegetales Hotdog", Unit: "unidades", Quantity: 1},
			{ID: "catsup5", Name: "Catsup", Unit: "unidades", Quantity: 1},
			{ID: "pan1", Name: "PAN HOTDOG", Unit: "unidades", Quantity: 1},
			{ID: "salchicha1", Name: "SALCHICHAS JUMBO", Unit: "unidades", Quantity: 1},
		},
		Available: true,
	},
	{
		Name:           "Papas Gajo chicas",
		Description:    "Porción chica de papas gajo con queso para nachos",
		Category:       "Complementos",
		SalePrice:      20.00,
		ProductionCost: 13.99,
		Ingredients: []domain.BOMItem{
			{ID: "queso6", Name: "QUESO NACHOS", Unit: "g", Quantity: 35},
			{ID: "bote7", Name: "BOTECITO", Unit: "unidades", Quantity: 1},
			{ID: "papas1", Name: "PAPAS GAJO", Unit: "g", Quantity: 140},
		},
		Available: true,
	},
	{
		Name:           "Papas Gajo Medianas",
		Description:    "Porción mediana de papas gajo con queso para nachos",
		Category:       "Complementos",
		SalePrice:      60.00,
		ProductionCost: 28.89,
		Ingredients: []domain.BOMItem{
			{ID: "queso7", Name: "QUESO NACHOS", Unit: "g", Quantity: 35},
			{ID: "bote8", Name: "BOTECITO", Unit: "unidades", Quantity: 1},
			{ID: "papas2", Name: "PAPAS GAJO", Unit: "g", Quantity: 280},
			{ID: "papel7", Name: "PAPEL GRADO ALIMENTICIO", Unit: "unidades", Quantity: 1},
		},
		Available: true,
	},
}
