package reporting

import (
	"fmt"
	"io"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// saleCSVRow is the flattened CSV shape of one sale.
type saleCSVRow struct {
	ID            int64   `csv:"id"`
	Date          string  `csv:"date"`
	Customer      string  `csv:"customer"`
	Items         int     `csv:"items"`
	Subtotal      float64 `csv:"subtotal"`
	Discount      float64 `csv:"discount"`
	Total         float64 `csv:"total"`
	PaymentMethod string  `csv:"payment_method"`
}

// purchaseCSVRow is the flattened CSV shape of one purchase.
type purchaseCSVRow struct {
	ID         int64   `csv:"id"`
	Date       string  `csv:"date"`
	Ingredient string  `csv:"ingredient"`
	Unit       string  `csv:"unit"`
	Quantity   float64 `csv:"quantity"`
	Price      float64 `csv:"price"`
	Total      float64 `csv:"total"`
}

// ExportSalesCSV writes the sales ledger as CSV, most recent first.
func (s *Service) ExportSalesCSV(w io.Writer) error {
	rows := make([]saleCSVRow, 0, len(s.sales.List()))
	for _, sale := range s.sales.List() {
		rows = append(rows, saleCSVRow{
			ID:            sale.ID,
			Date:          sale.Date.Format("2006-01-02 15:04:05"),
			Customer:      sale.Customer.Name,
			Items:         sale.ItemCount(),
			Subtotal:      sale.Subtotal,
			Discount:      sale.Discount,
			Total:         sale.Total,
			PaymentMethod: string(sale.PaymentMethod),
		})
	}
	return errors.Wrap(gocsv.Marshal(&rows, w), "export sales csv")
}

// ExportPurchasesCSV writes the purchase log as CSV.
func (s *Service) ExportPurchasesCSV(w io.Writer) error {
	rows := make([]purchaseCSVRow, 0, len(s.inv.Purchases()))
	for _, p := range s.inv.Purchases() {
		rows = append(rows, purchaseCSVRow{
			ID:         p.ID,
			Date:       p.Date.Format("2006-01-02"),
			Ingredient: p.Ingredient.Name,
			Unit:       p.Ingredient.Unit,
			Quantity:   p.Quantity,
			Price:      p.Price,
			Total:      p.Total,
		})
	}
	return errors.Wrap(gocsv.Marshal(&rows, w), "export purchases csv")
}

// ExportSalesXLSX writes the sales ledger to an Excel workbook at path.
func (s *Service) ExportSalesXLSX(path string) error {
	const sheet = "Sheet1"
	xlsx := excelize.NewFile()

	headers := []string{"ID", "Date", "Customer", "Items", "Subtotal", "Discount", "Total", "Payment"}
	for i, h := range headers {
		xlsx.SetCellValue(sheet, fmt.Sprintf("%s1", excelize.ToAlphaString(i)), h)
	}
	for i, sale := range s.sales.List() {
		row := i + 2
		xlsx.SetCellValue(sheet, fmt.Sprintf("A%d", row), sale.ID)
		xlsx.SetCellValue(sheet, fmt.Sprintf("B%d", row), sale.Date.Format("2006-01-02 15:04:05"))
		xlsx.SetCellValue(sheet, fmt.Sprintf("C%d", row), sale.Customer.Name)
		xlsx.SetCellValue(sheet, fmt.Sprintf("D%d", row), sale.ItemCount())
		xlsx.SetCellValue(sheet, fmt.Sprintf("E%d", row), sale.Subtotal)
		xlsx.SetCellValue(sheet, fmt.Sprintf("F%d", row), sale.Discount)
		xlsx.SetCellValue(sheet, fmt.Sprintf("G%d", row), sale.Total)
		xlsx.SetCellValue(sheet, fmt.Sprintf("H%d", row), string(sale.PaymentMethod))
	}
	return errors.Wrapf(xlsx.SaveAs(path), "export sales xlsx %s", path)
}
