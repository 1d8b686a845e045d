package transaction

import (
	"bytes"
	"context"
	"fmt"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// exportPageSize bounds each page read while collecting an export.
const exportPageSize = 500

// ExportTransactionsInput represents the input for an export.
type ExportTransactionsInput struct {
	Filter entity.TransactionFilter
	Format string
}

// ExportTransactionsOutput carries the rendered file.
type ExportTransactionsOutput struct {
	Content     []byte
	ContentType string
	FileName    string
	Count       int
}

// ExportTransactionsUseCase renders every entry matching a filter into a file.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	exporters       map[string]adapter.TransactionExporter
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase keyed by format name.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository, exporters map[string]adapter.TransactionExporter) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
		exporters:       exporters,
	}
}

// Execute collects all matching entries, ignoring the filter's pagination.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	exporter, ok := uc.exporters[input.Format]
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidExportFormat,
			fmt.Sprintf("unsupported export format %q", input.Format),
			domainerror.ErrInvalidExportFormat,
		)
	}

	filter := input.Filter
	if err := validateFilter(&filter); err != nil {
		return nil, err
	}
	filter.Limit = exportPageSize
	filter.Offset = 0

	var all []*entity.Transaction
	for {
		page, err := uc.transactionRepo.FindByFilter(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions for export: %w", err)
		}
		all = append(all, page.Transactions...)
		if len(page.Transactions) < filter.Limit {
			break
		}
		filter.Offset += filter.Limit
	}

	var buf bytes.Buffer
	if err := exporter.Export(&buf, all); err != nil {
		return nil, fmt.Errorf("failed to render %s export: %w", input.Format, err)
	}

	return &ExportTransactionsOutput{
		Content:     buf.Bytes(),
		ContentType: exporter.ContentType(),
		FileName:    "transactions." + exporter.FileExtension(),
		Count:       len(all),
	}, nil
}
