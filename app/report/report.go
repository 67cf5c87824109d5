package report

import (
	"fmt"
	"io"

	"github.com/mytheresa/inventory-system/models"
	"github.com/xuri/excelize/v2"
)

const (
	DefaultItemsSheet    = "Items"
	DefaultProductsSheet = "Products"
)

var (
	itemsHeader    = []any{"ID", "Name", "Price", "Inventory", "Min", "Max", "Source", "Machine ID", "Supplier"}
	productsHeader = []any{"ID", "Name", "Price", "Inventory", "Min", "Max", "Parts", "Parts Cost"}
)

// Sheets names the two worksheets of a stock report. Empty names fall
// back to the defaults.
type Sheets struct {
	Items    string
	Products string
}

func (s Sheets) withDefaults() Sheets {
	if s.Items == "" {
		s.Items = DefaultItemsSheet
	}
	if s.Products == "" {
		s.Products = DefaultProductsSheet
	}
	return s
}

// Write renders both collections as an XLSX workbook, one row per record
// in list order.
func Write(w io.Writer, items models.ItemList, products models.ProductList, sheets Sheets) error {
	sheets = sheets.withDefaults()
	if sheets.Items == sheets.Products {
		return fmt.Errorf("report: sheet names must differ, got %q twice", sheets.Items)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, sheets.Items); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if _, err := f.NewSheet(sheets.Products); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	rows := make([][]any, 0, len(items)+1)
	rows = append(rows, itemsHeader)
	for _, it := range items {
		machine, supplier := any(""), any("")
		if id, ok := it.MachineID(); ok {
			machine = id
		}
		if name, ok := it.SupplierName(); ok {
			supplier = name
		}
		rows = append(rows, []any{
			it.ID, it.Name, it.Price.InexactFloat64(), it.Stock, it.Min, it.Max,
			string(it.Kind()), machine, supplier,
		})
	}
	if err := writeRows(f, sheets.Items, rows); err != nil {
		return err
	}

	rows = make([][]any, 0, len(products)+1)
	rows = append(rows, productsHeader)
	for _, p := range products {
		rows = append(rows, []any{
			p.ID, p.Name, p.Price.InexactFloat64(), p.Stock, p.Min, p.Max,
			len(p.Components), p.ComponentsCost().InexactFloat64(),
		})
	}
	if err := writeRows(f, sheets.Products, rows); err != nil {
		return err
	}

	if idx, err := f.GetSheetIndex(sheets.Items); err == nil {
		f.SetActiveSheet(idx)
	}
	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("report: %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
