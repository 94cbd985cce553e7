package commission

import (
	"fmt"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-commission/internal/types"
)

var _ EquityModel = (*PerShare)(nil)

// PerShare charges a fixed cost per share traded with an optional minimum per order.
type PerShare struct {
	costPerShare float64
	minTradeCost optional.Option[float64]
}

// NewPerShare creates a per share model. Pass optional.None for no minimum.
func NewPerShare(cost float64, minTradeCost optional.Option[float64]) (*PerShare, error) {
	if err := validateCost("cost_per_share", cost); err != nil {
		return nil, err
	}

	if err := validateMinTradeCost(minTradeCost); err != nil {
		return nil, err
	}

	return &PerShare{costPerShare: cost, minTradeCost: minTradeCost}, nil
}

// NewDefaultPerShare charges DefaultPerShareCost with a DefaultMinimumCostPerTrade minimum.
func NewDefaultPerShare() *PerShare {
	return &PerShare{
		costPerShare: DefaultPerShareCost,
		minTradeCost: optional.Some(DefaultMinimumCostPerTrade),
	}
}

func (p *PerShare) CostPerShare() float64 {
	return p.costPerShare
}

func (p *PerShare) MinTradeCost() optional.Option[float64] {
	return p.minTradeCost
}

// Calculate implements Model.
func (p *PerShare) Calculate(order types.Order, tx types.Transaction) float64 {
	return calculatePerUnit(order, tx, p.costPerShare, p.minTradeCost)
}

func (p *PerShare) String() string {
	return fmt.Sprintf("PerShare(cost_per_unit=%s, min_trade_cost=%s)",
		formatCost(p.costPerShare), formatMinTradeCost(p.minTradeCost))
}

func (p *PerShare) equityModel() {}
