// Package sales owns the collection of completed sales and orchestrates the
// inventory ledger around every mutation.
package sales

import (
	"github.com/asaskevich/EventBus"
	"github.com/srburger/backoffice/internal/domain"
	"github.com/srburger/backoffice/internal/inventory"
	"github.com/srburger/backoffice/internal/store"
	"go.uber.org/zap"
)

// Bus topics published after successful ledger mutations. The UI collaborator
// subscribes to re-render.
const (
	TopicSaleAdded   = "sales.added"
	TopicSaleRemoved = "sales.removed"
)

// Ledger is the sales collection plus its stock side effects. A sale is
// either active or nonexistent; line items are never edited in place.
type Ledger struct {
	store *store.Store
	inv   *inventory.Ledger
	bus   EventBus.Bus
}

func NewLedger(s *store.Store, inv *inventory.Ledger, bus EventBus.Bus) *Ledger {
	return &Ledger{store: s, inv: inv, bus: bus}
}

// List returns all completed sales, most recent first.
func (l *Ledger) List() []domain.Sale {
	return store.Read(l.store, store.CollSales, []domain.Sale{})
}

// Add commits a completed sale. Stock is validated first; on failure nothing
// is written. On success the sale's ingredient usage is applied to stock,
// appended to the usage ledger, and the sale is prepended to the collection.
func (l *Ledger) Add(sale domain.Sale) error {
	if err := l.inv.ValidateStock(sale.Items); err != nil {
		zap.L().Warn("sale rejected", zap.Int64("sale_id", sale.ID), zap.Error(err))
		return err
	}

	usage := l.inv.Usage(sale.Items, sale.ID, sale.Date)
	l.inv.ApplyUsage(usage)
	l.inv.AppendUsage(usage)

	updated := append([]domain.Sale{sale}, l.List()...)
	store.Write(l.store, store.CollSales, updated)

	zap.L().Info("sale recorded",
		zap.Int64("sale_id", sale.ID),
		zap.Float64("total", sale.Total),
		zap.Int("items", len(sale.Items)))
	l.publish(TopicSaleAdded, sale.ID)
	return nil
}

// Remove deletes a sale and reverses its stock effects as one logical undo.
// Unknown ids leave the collection untouched (reconciliation still runs).
func (l *Ledger) Remove(saleID int64) {
	l.inv.ReverseSale(saleID)

	list := l.List()
	kept := make([]domain.Sale, 0, len(list))
	for _, sale := range list {
		if sale.ID != saleID {
			kept = append(kept, sale)
		}
	}
	store.Write(l.store, store.CollSales, kept)

	zap.L().Info("sale removed", zap.Int64("sale_id", saleID))
	l.publish(TopicSaleRemoved, saleID)
}

// Replace overwrites the whole collection without recomputing stock. This is
// an administrative escape hatch; callers changing stock-affecting fields own
// the consequences.
func (l *Ledger) Replace(list []domain.Sale) {
	store.Write(l.store, store.CollSales, list)
}

func (l *Ledger) publish(topic string, saleID int64) {
	if l.bus != nil {
		l.bus.Publish(topic, saleID)
	}
}
