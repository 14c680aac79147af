package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/srburger/backoffice/config"
	"github.com/srburger/backoffice/internal/catalog"
	"github.com/srburger/backoffice/internal/customers"
	"github.com/srburger/backoffice/internal/inventory"
	"github.com/srburger/backoffice/internal/pos"
	"github.com/srburger/backoffice/internal/reporting"
	"github.com/srburger/backoffice/internal/sales"
	"github.com/srburger/backoffice/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Application wires the store, the event bus and every service for one
// session. There is exactly one instance per process; UI handlers receive it
// by reference instead of reaching for ambient singletons.
type Application struct {
	appConfig *config.AppConfig
	kvStore   *store.Store
	bus       EventBus.Bus

	catalogSvc   *catalog.Service
	customersSvc *customers.Service
	invLedger    *inventory.Ledger
	salesLedger  *sales.Ledger
	register     *pos.Register
	reportingSvc *reporting.Service
}

// Ensure Application implements all provider interfaces
var (
	_ StoreProvider     = (*Application)(nil)
	_ ConfigProvider    = (*Application)(nil)
	_ BusProvider       = (*Application)(nil)
	_ CatalogProvider   = (*Application)(nil)
	_ LedgerProvider    = (*Application)(nil)
	_ RegisterProvider  = (*Application)(nil)
	_ ReportingProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig     { return a.appConfig }
func (a *Application) Store() *store.Store           { return a.kvStore }
func (a *Application) Bus() EventBus.Bus             { return a.bus }
func (a *Application) Catalog() *catalog.Service     { return a.catalogSvc }
func (a *Application) Customers() *customers.Service { return a.customersSvc }
func (a *Application) Inventory() *inventory.Ledger  { return a.invLedger }
func (a *Application) Sales() *sales.Ledger          { return a.salesLedger }
func (a *Application) Register() *pos.Register       { return a.register }
func (a *Application) Reporting() *reporting.Service { return a.reportingSvc }

// Init sets up the logger, opens the store and wires the services.
func (a *Application) Init(cfg *config.AppConfig) error {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}
	zap.ReplaceGlobals(logger)

	a.kvStore, err = store.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	zap.S().Infof("Store opened: %s", cfg.Storage.Path)

	a.bus = EventBus.New()
	a.catalogSvc = catalog.NewService(a.kvStore)
	a.customersSvc = customers.NewService(a.kvStore)
	a.invLedger = inventory.NewLedger(a.kvStore, a.catalogSvc)
	a.salesLedger = sales.NewLedger(a.kvStore, a.invLedger, a.bus)
	a.register = pos.NewRegister(a.kvStore, a.catalogSvc, a.customersSvc, a.salesLedger)
	a.reportingSvc = reporting.NewService(a.catalogSvc, a.invLedger, a.salesLedger)

	zap.S().Infof("catalog ready: %d products, %d ingredients",
		len(a.catalogSvc.Products()), len(a.catalogSvc.Ingredients()))
	return nil
}

// InitDb drops every persisted collection, returning to the seed catalog.
func (a *Application) InitDb() {
	a.kvStore.DropAll()
	zap.L().Warn("all collections dropped")
}

// Release releases application resources.
func (a *Application) Release() {
	if a.kvStore != nil {
		if err := a.kvStore.Close(); err != nil {
			zap.L().Error("store close failed", zap.Error(err))
		}
	}
	_ = zap.L().Sync()
}
