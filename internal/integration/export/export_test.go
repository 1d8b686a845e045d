package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/integration/export"
)

func sample() []*entity.Transaction {
	userID := uuid.New()
	return []*entity.Transaction{
		entity.NewTransaction(userID, "Salary", decimal.RequireFromString("2500"), "Income",
			entity.TransactionTypeIncome, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ""),
		entity.NewTransaction(userID, "Groceries, weekly", decimal.RequireFromString("82.10"), "Food",
			entity.TransactionTypeExpense, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "market \"bio\""),
	}
}

func TestCSVExporter(t *testing.T) {
	var buf bytes.Buffer
	exp := export.NewCSVExporter()
	require.NoError(t, exp.Export(&buf, sample()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Date", "Title", "Category", "Type", "Amount", "Note"}, records[0])
	assert.Equal(t, []string{"2024-03-02", "Groceries, weekly", "Food", "Expense", "82.10", "market \"bio\""}, records[2])
	assert.Equal(t, "csv", exp.FileExtension())
}

func TestXLSXExporter(t *testing.T) {
	var buf bytes.Buffer
	exp := export.NewXLSXExporter()
	require.NoError(t, exp.Export(&buf, sample()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{export.SheetName}, f.GetSheetList())

	rows, err := f.GetRows(export.SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Title", "Category", "Type", "Amount", "Note"}, rows[0])
	assert.Equal(t, "Salary", rows[1][1])
	assert.Equal(t, "Expense", rows[2][3])

	net, err := f.GetCellValue(export.SheetName, "E7", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "2417.90", net)

	label, err := f.GetCellValue(export.SheetName, "D5")
	require.NoError(t, err)
	assert.Equal(t, "Total income", label)
}

func TestXLSXExporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.NewXLSXExporter().Export(&buf, nil))
	assert.NotZero(t, buf.Len())
}
