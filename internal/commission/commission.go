// Package commission prices the commission owed on each transaction that fills an order.
//
// A Model answers one question per transaction: how much additional commission
// is due now, given what the order has already been charged. Models never
// mutate their arguments and keep no state between calls, so the caller must
// add every returned charge to Order.Commission (and the transaction amount
// to Order.Filled) before pricing the next transaction of the same order.
// Minimum-per-order logic reads Order.Commission and assumes the same model
// produced every earlier charge on that order.
package commission

import (
	"fmt"

	"github.com/rxtech-lab/argo-commission/internal/types"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
)

// Model calculates the commission to charge on an order as a result of a transaction.
type Model interface {
	// Calculate returns the additional commission in USD to attribute to order
	// for tx. order.Commission is the commission already charged on the order and
	// order.Filled the quantity filled before tx. The result is never negative.
	Calculate(order types.Order, tx types.Transaction) float64
	fmt.Stringer
}

// EquityModel is a Model intended for equities.
type EquityModel interface {
	Model
	equityModel()
}

// FutureModel is a Model intended for futures contracts.
type FutureModel interface {
	Model
	futureModel()
}

// Resolver picks the model that prices a given asset. Set is the usual implementation.
type Resolver interface {
	ModelFor(asset types.Asset) (Model, error)
}

type Broker string

const (
	BrokerInteractiveBroker Broker = "interactive_broker"
	BrokerZero              Broker = "zero_commission"
	BrokerDefault           Broker = "default"
)

var AllBrokers = []any{
	BrokerInteractiveBroker,
	BrokerZero,
	BrokerDefault,
}

// ModelsForBroker returns the equity and future models of a broker preset.
func ModelsForBroker(broker Broker) (Set, error) {
	switch broker {
	case BrokerInteractiveBroker:
		return NewInteractiveBrokerSet(), nil
	case BrokerZero:
		zero := NewNoCommission()

		return NewSet(zero, zero), nil
	case BrokerDefault:
		return DefaultSet(), nil
	default:
		return Set{}, errors.Newf(errors.ErrCodeUnknownBroker, "unknown broker %q", broker)
	}
}
