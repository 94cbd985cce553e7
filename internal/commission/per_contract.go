package commission

import (
	"fmt"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-commission/internal/types"
)

var _ FutureModel = (*PerContract)(nil)

// PerContract charges a cost per futures contract traded with an optional
// minimum per order. The rate is looked up from the order's root symbol on
// every call.
type PerContract struct {
	costPerContract ContractCost
	minTradeCost    optional.Option[float64]
}

// NewPerContract creates a per contract model. Pass optional.None for no minimum.
func NewPerContract(cost ContractCost, minTradeCost optional.Option[float64]) (*PerContract, error) {
	if err := cost.validate(); err != nil {
		return nil, err
	}

	if err := validateMinTradeCost(minTradeCost); err != nil {
		return nil, err
	}

	return &PerContract{costPerContract: cost, minTradeCost: minTradeCost}, nil
}

// NewDefaultPerContract prices every contract from the default cost table
// without a minimum.
func NewDefaultPerContract() *PerContract {
	return &PerContract{
		costPerContract: ContractCostBySymbol(nil),
		minTradeCost:    optional.None[float64](),
	}
}

func (p *PerContract) CostPerContract() ContractCost {
	return p.costPerContract
}

func (p *PerContract) MinTradeCost() optional.Option[float64] {
	return p.minTradeCost
}

// Calculate implements Model.
func (p *PerContract) Calculate(order types.Order, tx types.Transaction) float64 {
	costPerContract := p.costPerContract.Resolve(order.Asset.RootSymbol)

	return calculatePerUnit(order, tx, costPerContract, p.minTradeCost)
}

func (p *PerContract) String() string {
	return fmt.Sprintf("PerContract(cost_per_unit=%s, min_trade_cost=%s)",
		p.costPerContract, formatMinTradeCost(p.minTradeCost))
}

func (p *PerContract) futureModel() {}
