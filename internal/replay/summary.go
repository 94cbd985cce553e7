package replay

import (
	"github.com/rxtech-lab/argo-commission/internal/types"
	"github.com/shopspring/decimal"
)

// OrderSummary is the commission charged on one order.
type OrderSummary struct {
	OrderID    string
	Asset      types.Asset
	Filled     float64
	Fills      int
	Commission decimal.Decimal
	Model      string
}

// Summary totals commission per order, per asset class and overall.
type Summary struct {
	// Orders in the order they were first seen.
	Orders       []OrderSummary
	ByClass      map[types.AssetClass]decimal.Decimal
	Total        decimal.Decimal
	Transactions int
}

// TotalFloat returns Total as a float64.
func (s Summary) TotalFloat() float64 {
	total, _ := s.Total.Float64()

	return total
}
