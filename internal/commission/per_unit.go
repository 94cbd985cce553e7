package commission

import (
	"fmt"
	"math"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-commission/internal/types"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
)

// calculatePerUnit prices tx at costPerUnit per unit traded.
//
// With a minimum, the first charge on an order is at least the minimum. Later
// fills charge nothing until the per-unit cost of everything filled so far
// passes the minimum, then only the amount above what was already charged.
// order.Filled is read by magnitude, so a sell order's negative Filled
// converges on the same total as the matching buy.
func calculatePerUnit(order types.Order, tx types.Transaction, costPerUnit float64, minTradeCost optional.Option[float64]) float64 {
	if tx.Amount == 0 {
		return 0
	}

	additional := math.Abs(tx.Amount) * costPerUnit

	if minTradeCost.IsNone() {
		return additional
	}

	minimum := minTradeCost.Unwrap()

	if order.Commission == 0 {
		return math.Max(minimum, additional)
	}

	perUnitTotal := math.Abs(order.Filled)*costPerUnit + additional
	if perUnitTotal < minimum {
		return 0
	}

	return math.Max(0, perUnitTotal-order.Commission)
}

func formatMinTradeCost(minTradeCost optional.Option[float64]) string {
	if minTradeCost.IsNone() {
		return "None"
	}

	return formatCost(minTradeCost.Unwrap())
}

func formatCost(cost float64) string {
	return fmt.Sprintf("%g", cost)
}

func validateCost(name string, cost float64) error {
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 {
		return errors.Newf(errors.ErrCodeInvalidCommissionCost, "%s must be a finite non-negative number, got %v", name, cost)
	}

	return nil
}

func validateMinTradeCost(minTradeCost optional.Option[float64]) error {
	if minTradeCost.IsNone() {
		return nil
	}

	minimum := minTradeCost.Unwrap()
	if math.IsNaN(minimum) || math.IsInf(minimum, 0) || minimum < 0 {
		return errors.Newf(errors.ErrCodeInvalidMinimumCost, "min_trade_cost must be a finite non-negative number, got %v", minimum)
	}

	return nil
}
