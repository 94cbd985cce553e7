package commission

import "github.com/moznion/go-optional"

const (
	interactiveBrokerPerShareCost    = 0.005
	interactiveBrokerMinimumPerOrder = 1.0
	interactiveBrokerPerContractCost = 0.85
)

// NewInteractiveBrokerSet returns the models of the Interactive Brokers fixed
// pricing tier: $0.005 per share with a $1 minimum per order and $0.85 per
// futures contract.
func NewInteractiveBrokerSet() Set {
	equity := &PerShare{
		costPerShare: interactiveBrokerPerShareCost,
		minTradeCost: optional.Some(interactiveBrokerMinimumPerOrder),
	}
	future := &PerContract{
		costPerContract: FlatContractCost(interactiveBrokerPerContractCost),
		minTradeCost:    optional.None[float64](),
	}

	return NewSet(equity, future)
}
