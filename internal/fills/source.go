package fills

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-commission/internal/types"
)

// Filter narrows the fills read from a Source.
type Filter struct {
	Symbol  optional.Option[string]
	OrderID optional.Option[string]
}

// Source reads transactions from a fill file.
type Source interface {
	// Initialize points the source at a CSV or Parquet file.
	Initialize(path string) error
	// Count returns the number of fills matching filter.
	Count(filter Filter) (int, error)
	// ReadAll yields fills matching filter in arrival order: by time, then by
	// position in the file.
	ReadAll(filter Filter) func(yield func(types.Transaction, error) bool)
	// Close releases the underlying database.
	Close() error
}
