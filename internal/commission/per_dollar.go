package commission

import (
	"fmt"
	"math"

	"github.com/rxtech-lab/argo-commission/internal/types"
)

var (
	_ EquityModel = (*PerEquityDollar)(nil)
	_ FutureModel = (*PerFutureDollar)(nil)
)

// perDollar charges a cost per dollar traded. It has no minimum and ignores
// the order's history. 0.0015 on $1 million is $1,500.
type perDollar struct {
	costPerDollar float64
}

func newPerDollar(cost float64) (perDollar, error) {
	if err := validateCost("cost_per_dollar", cost); err != nil {
		return perDollar{}, err
	}

	return perDollar{costPerDollar: cost}, nil
}

func (p perDollar) CostPerDollar() float64 {
	return p.costPerDollar
}

// Calculate implements Model.
func (p perDollar) Calculate(_ types.Order, tx types.Transaction) float64 {
	costPerShare := tx.Price * p.costPerDollar

	return math.Abs(tx.Amount) * costPerShare
}

// PerEquityDollar charges a cost per dollar of equities traded.
type PerEquityDollar struct {
	perDollar
}

// PerDollar is the equity per dollar model.
type PerDollar = PerEquityDollar

// NewPerEquityDollar creates a per dollar model for equities.
func NewPerEquityDollar(cost float64) (*PerEquityDollar, error) {
	base, err := newPerDollar(cost)
	if err != nil {
		return nil, err
	}

	return &PerEquityDollar{perDollar: base}, nil
}

// NewPerDollar is NewPerEquityDollar.
func NewPerDollar(cost float64) (*PerDollar, error) {
	return NewPerEquityDollar(cost)
}

// NewDefaultPerEquityDollar charges DefaultPerDollarCost.
func NewDefaultPerEquityDollar() *PerEquityDollar {
	return &PerEquityDollar{perDollar: perDollar{costPerDollar: DefaultPerDollarCost}}
}

func (p *PerEquityDollar) String() string {
	return fmt.Sprintf("PerEquityDollar(cost_per_dollar=%s)", formatCost(p.costPerDollar))
}

func (p *PerEquityDollar) equityModel() {}

// PerFutureDollar charges a cost per dollar of futures traded.
type PerFutureDollar struct {
	perDollar
}

// NewPerFutureDollar creates a per dollar model for futures.
func NewPerFutureDollar(cost float64) (*PerFutureDollar, error) {
	base, err := newPerDollar(cost)
	if err != nil {
		return nil, err
	}

	return &PerFutureDollar{perDollar: base}, nil
}

func (p *PerFutureDollar) String() string {
	return fmt.Sprintf("PerFutureDollar(cost_per_dollar=%s)", formatCost(p.costPerDollar))
}

func (p *PerFutureDollar) futureModel() {}
