package adapter

import (
	"io"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// TransactionExporter writes ledger entries in a downloadable format.
type TransactionExporter interface {
	ContentType() string
	FileExtension() string
	Export(w io.Writer, transactions []*entity.Transaction) error
}
