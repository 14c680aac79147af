// Package reporting derives back-office summaries from the ledgers. All
// reports are read-only over the persisted collections.
package reporting

import (
	"sort"
	"time"

	"github.com/araddon/dateparse"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/srburger/backoffice/internal/catalog"
	"github.com/srburger/backoffice/internal/domain"
	"github.com/srburger/backoffice/internal/inventory"
	"github.com/srburger/backoffice/internal/sales"
)

// LowStockThreshold marks ingredients that need restocking soon.
const LowStockThreshold = 5

type Service struct {
	catalog *catalog.Service
	inv     *inventory.Ledger
	sales   *sales.Ledger
}

func NewService(c *catalog.Service, inv *inventory.Ledger, sl *sales.Ledger) *Service {
	return &Service{catalog: c, inv: inv, sales: sl}
}

// DailyTotal is one day's revenue.
type DailyTotal struct {
	Date  string
	Total float64
}

// SalesSummary aggregates the whole sales ledger.
type SalesSummary struct {
	Orders             int
	Revenue            float64
	Items              int
	ByCategory         map[string]float64
	Daily              []DailyTotal
	MeanDailyRevenue   float64
	MedianDailyRevenue float64
}

// Summary computes order, revenue and item totals, revenue per product
// category, and the day-by-day revenue series with its mean and median.
func (s *Service) Summary() SalesSummary {
	list := s.sales.List()
	summary := SalesSummary{ByCategory: make(map[string]float64)}

	daily := make(map[string]float64)
	for _, sale := range list {
		summary.Orders++
		summary.Revenue += sale.Total
		summary.Items += sale.ItemCount()
		daily[sale.Date.Format("2006-01-02")] += sale.Total

		for _, item := range sale.Items {
			category := "Sin categoría"
			if product, ok := s.catalog.ProductByName(item.Name); ok {
				category = product.Category
			}
			summary.ByCategory[category] += item.Total
		}
	}

	days := make([]string, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Strings(days)
	values := make([]float64, 0, len(days))
	for _, day := range days {
		summary.Daily = append(summary.Daily, DailyTotal{Date: day, Total: daily[day]})
		values = append(values, daily[day])
	}
	if len(values) > 0 {
		if mean, err := stats.Mean(values); err == nil {
			summary.MeanDailyRevenue = mean
		}
		if median, err := stats.Median(values); err == nil {
			summary.MedianDailyRevenue = median
		}
	}
	return summary
}

// IngredientUsageRow is one line of the usage report.
type IngredientUsageRow struct {
	Name  string
	Unit  string
	Usage float64
	Stock float64
	Cost  float64
}

// UsageReport summarizes the consumption ledger against the catalog.
type UsageReport struct {
	Rows       []IngredientUsageRow
	TotalUsage float64
	MostUsed   string
	LeastUsed  string
	LowStock   int
}

// Usage totals consumption per ingredient, prices it at the current unit
// price, and flags low-stock ingredients. Rows are sorted by usage,
// heaviest first.
func (s *Service) Usage() UsageReport {
	type usageAgg struct {
		quantity float64
		unit     string
	}
	byName := make(map[string]usageAgg)
	for _, row := range s.inv.UsageRows() {
		agg := byName[row.IngredientName]
		agg.quantity += row.Quantity
		agg.unit = row.Unit
		byName[row.IngredientName] = agg
	}

	var report UsageReport
	for _, ing := range s.catalog.Ingredients() {
		usage := byName[ing.Name].quantity
		report.Rows = append(report.Rows, IngredientUsageRow{
			Name:  ing.Name,
			Unit:  ing.Unit,
			Usage: usage,
			Stock: ing.Stock,
			Cost:  usage * ing.UnitPrice,
		})
		report.TotalUsage += usage
		if ing.Stock <= LowStockThreshold {
			report.LowStock++
		}
	}
	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Usage > report.Rows[j].Usage
	})
	if len(report.Rows) > 0 {
		report.MostUsed = report.Rows[0].Name
		report.LeastUsed = report.Rows[len(report.Rows)-1].Name
	}
	return report
}

// PurchaseSummary aggregates the purchase log over an optional date range.
type PurchaseSummary struct {
	Orders     int
	TotalSpent float64
	Average    float64
	Purchases  []domain.Purchase
}

// PurchasesBetween filters the purchase log by a free-form date range. Empty
// bounds are open ends.
func (s *Service) PurchasesBetween(fromText, toText string) (PurchaseSummary, error) {
	var from, to time.Time
	if fromText != "" {
		parsed, err := dateparse.ParseAny(fromText)
		if err != nil {
			return PurchaseSummary{}, errors.Wrapf(err, "parse range start %q", fromText)
		}
		from = parsed
	}
	if toText != "" {
		parsed, err := dateparse.ParseAny(toText)
		if err != nil {
			return PurchaseSummary{}, errors.Wrapf(err, "parse range end %q", toText)
		}
		to = parsed
	}

	var summary PurchaseSummary
	for _, p := range s.inv.Purchases() {
		if !from.IsZero() && p.Date.Before(from) {
			continue
		}
		if !to.IsZero() && p.Date.After(to) {
			continue
		}
		summary.Orders++
		summary.TotalSpent += p.Total
		summary.Purchases = append(summary.Purchases, p)
	}
	if summary.Orders > 0 {
		summary.Average = summary.TotalSpent / float64(summary.Orders)
	}
	return summary, nil
}
