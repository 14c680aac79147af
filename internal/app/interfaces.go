package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/srburger/backoffice/config"
	"github.com/srburger/backoffice/internal/catalog"
	"github.com/srburger/backoffice/internal/customers"
	"github.com/srburger/backoffice/internal/inventory"
	"github.com/srburger/backoffice/internal/pos"
	"github.com/srburger/backoffice/internal/reporting"
	"github.com/srburger/backoffice/internal/sales"
	"github.com/srburger/backoffice/internal/store"
)

// StoreProvider provides key-value store access
type StoreProvider interface {
	Store() *store.Store
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// BusProvider provides the in-process event bus the UI subscribes to
type BusProvider interface {
	Bus() EventBus.Bus
}

// CatalogProvider provides product and ingredient catalog access
type CatalogProvider interface {
	Catalog() *catalog.Service
	Customers() *customers.Service
}

// LedgerProvider provides the inventory and sales ledgers
type LedgerProvider interface {
	Inventory() *inventory.Ledger
	Sales() *sales.Ledger
}

// RegisterProvider provides the point-of-sale register
type RegisterProvider interface {
	Register() *pos.Register
}

// ReportingProvider provides back-office reports
type ReportingProvider interface {
	Reporting() *reporting.Service
}

// AppContext combines all provider interfaces for full application context.
// UI handlers should depend on specific providers or this combined interface.
type AppContext interface {
	StoreProvider
	ConfigProvider
	BusProvider
	CatalogProvider
	LedgerProvider
	RegisterProvider
	ReportingProvider

	// InitDb drops all persisted collections
	InitDb()
}
