package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// SheetName is the worksheet holding the exported entries.
const SheetName = "Transactions"

// XLSXExporter writes entries into an Excel workbook.
type XLSXExporter struct{}

// NewXLSXExporter creates a new XLSXExporter.
func NewXLSXExporter() adapter.TransactionExporter {
	return XLSXExporter{}
}

func (XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXExporter) FileExtension() string { return "xlsx" }

// Export writes a bold header, one row per entry and a closing totals row
// holding income, expense and net balance.
func (XLSXExporter) Export(w io.Writer, transactions []*entity.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "F1", bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	income, expense := decimal.Zero, decimal.Zero
	for i, t := range transactions {
		rowNum := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		values := []interface{}{
			t.Date.Format(entity.DateLayout),
			t.Title,
			t.Category,
			string(t.Type),
			nil,
			t.Note,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
		amount, _ := t.Amount.Float64()
		if err := f.SetCellFloat(SheetName, fmt.Sprintf("E%d", rowNum), amount, 2, 64); err != nil {
			return fmt.Errorf("failed to write amount on row %d: %w", rowNum, err)
		}

		if t.Type == entity.TransactionTypeIncome {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}

	totalsRow := len(transactions) + 3
	totals := []struct {
		label string
		value decimal.Decimal
	}{
		{"Total income", income},
		{"Total expense", expense},
		{"Net", income.Sub(expense)},
	}
	for i, total := range totals {
		r := totalsRow + i
		if err := f.SetCellValue(SheetName, fmt.Sprintf("D%d", r), total.label); err != nil {
			return fmt.Errorf("failed to write totals: %w", err)
		}
		v, _ := total.value.Float64()
		if err := f.SetCellFloat(SheetName, fmt.Sprintf("E%d", r), v, 2, 64); err != nil {
			return fmt.Errorf("failed to write totals: %w", err)
		}
	}
	if err := f.SetCellStyle(SheetName, fmt.Sprintf("D%d", totalsRow), fmt.Sprintf("E%d", totalsRow+len(totals)-1), bold); err != nil {
		return fmt.Errorf("failed to style totals: %w", err)
	}

	_ = f.SetColWidth(SheetName, "A", "A", 12)
	_ = f.SetColWidth(SheetName, "B", "B", 30)
	_ = f.SetColWidth(SheetName, "C", "C", 18)
	_ = f.SetColWidth(SheetName, "D", "D", 14)
	_ = f.SetColWidth(SheetName, "E", "E", 12)
	_ = f.SetColWidth(SheetName, "F", "F", 40)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
