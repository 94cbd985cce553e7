package commission

import (
	"fmt"

	"github.com/rxtech-lab/argo-commission/internal/types"
)

var (
	_ EquityModel = (*PerEquityTrade)(nil)
	_ FutureModel = (*PerFutureTrade)(nil)
)

// perTrade charges a fixed cost the first time commission is attributed to an
// order, regardless of its size.
type perTrade struct {
	cost float64
}

func newPerTrade(cost float64) (perTrade, error) {
	if err := validateCost("cost", cost); err != nil {
		return perTrade{}, err
	}

	return perTrade{cost: cost}, nil
}

func (p perTrade) Cost() float64 {
	return p.cost
}

// Calculate implements Model.
func (p perTrade) Calculate(order types.Order, tx types.Transaction) float64 {
	if tx.Amount == 0 || order.Commission != 0 {
		return 0.0
	}

	return p.cost
}

// PerEquityTrade charges a flat fee per equity order.
type PerEquityTrade struct {
	perTrade
}

// PerTrade is the equity flat fee model.
type PerTrade = PerEquityTrade

// NewPerEquityTrade creates a flat fee model for equities.
func NewPerEquityTrade(cost float64) (*PerEquityTrade, error) {
	base, err := newPerTrade(cost)
	if err != nil {
		return nil, err
	}

	return &PerEquityTrade{perTrade: base}, nil
}

// NewPerTrade is NewPerEquityTrade.
func NewPerTrade(cost float64) (*PerTrade, error) {
	return NewPerEquityTrade(cost)
}

// NewDefaultPerEquityTrade charges DefaultMinimumCostPerTrade per order.
func NewDefaultPerEquityTrade() *PerEquityTrade {
	return &PerEquityTrade{perTrade: perTrade{cost: DefaultMinimumCostPerTrade}}
}

func (p *PerEquityTrade) String() string {
	return fmt.Sprintf("PerEquityTrade(cost=%s)", formatCost(p.cost))
}

func (p *PerEquityTrade) equityModel() {}

// PerFutureTrade charges a flat fee per futures order.
type PerFutureTrade struct {
	perTrade
}

// NewPerFutureTrade creates a flat fee model for futures.
func NewPerFutureTrade(cost float64) (*PerFutureTrade, error) {
	base, err := newPerTrade(cost)
	if err != nil {
		return nil, err
	}

	return &PerFutureTrade{perTrade: base}, nil
}

func (p *PerFutureTrade) String() string {
	return fmt.Sprintf("PerFutureTrade(cost=%s)", formatCost(p.cost))
}

func (p *PerFutureTrade) futureModel() {}
