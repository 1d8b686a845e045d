// Package export renders ledger entries into downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

var header = []string{"Date", "Title", "Category", "Type", "Amount", "Note"}

// CSVExporter writes entries as comma-separated values.
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter.
func NewCSVExporter() adapter.TransactionExporter {
	return CSVExporter{}
}

func (CSVExporter) ContentType() string   { return "text/csv; charset=utf-8" }
func (CSVExporter) FileExtension() string { return "csv" }

// Export writes a header row followed by one row per entry.
func (CSVExporter) Export(w io.Writer, transactions []*entity.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range transactions {
		if err := writer.Write(row(t)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func row(t *entity.Transaction) []string {
	return []string{
		t.Date.Format(entity.DateLayout),
		t.Title,
		t.Category,
		string(t.Type),
		t.Amount.StringFixed(2),
		t.Note,
	}
}
