package utils

import (
	"math"

	"github.com/rxtech-lab/argo-commission/internal/commission"
	"github.com/rxtech-lab/argo-commission/internal/types"
)

// quoteOrderID identifies the hypothetical order priced while sizing a trade.
const quoteOrderID = "quote"

// EstimateCommission returns what model charges for a new order of quantity
// asset filled in a single transaction at price.
func EstimateCommission(model commission.Model, asset types.Asset, quantity float64, price float64) float64 {
	order := types.Order{ID: quoteOrderID, Asset: asset, Amount: quantity}
	tx := types.Transaction{OrderID: quoteOrderID, Asset: asset, Amount: quantity, Price: price}

	return model.Calculate(order, tx)
}

// affordableSearchSteps bounds the bisection in CalculateMaxQuantity. Each step
// halves the interval, so 100 steps reach float64 resolution for any balance.
const affordableSearchSteps = 100

// quantitySnap is the grid a solved quantity is snapped up to.
const quantitySnap = 1e9

// CalculateMaxQuantity returns the largest quantity of asset whose notional plus the
// commission model charges on a single fill fits in balance. It returns 0 when no
// positive quantity is affordable, for example when a flat fee exceeds the balance.
func CalculateMaxQuantity(balance float64, price float64, model commission.Model, asset types.Asset) float64 {
	if price <= 0 || balance <= 0 {
		return 0
	}

	totalCost := func(quantity float64) float64 {
		return quantity*price + EstimateCommission(model, asset, quantity, price)
	}

	// Commission is never negative, so the answer is at most balance / price.
	high := balance / price
	if totalCost(high) <= balance {
		return high
	}

	// Fees can jump (minimums, flat fees), so search instead of scaling.
	// low always stays affordable; a zero quantity costs nothing.
	low := 0.0
	for i := 0; i < affordableSearchSteps && high-low > 0; i++ {
		mid := low + (high-low)/2
		if mid == low || mid == high {
			break
		}

		if totalCost(mid) <= balance {
			low = mid
		} else {
			high = mid
		}
	}

	// Bisection approaches the boundary from below; take the boundary itself
	// when it is affordable so whole quantities survive rounding down.
	if snapped := math.Round(low*quantitySnap) / quantitySnap; snapped > low && totalCost(snapped) <= balance {
		return snapped
	}

	return low
}

// RoundToDecimalPrecision rounds the quantity down to the specified decimal precision.
func RoundToDecimalPrecision(quantity float64, decimalPrecision int) float64 {
	multiplier := math.Pow10(decimalPrecision)

	return math.Floor(quantity*multiplier) / multiplier
}

// CalculateOrderQuantityByPercentage calculates the quantity of an order by the given percentage of the balance.
func CalculateOrderQuantityByPercentage(balance float64, price float64, model commission.Model, asset types.Asset, percentage float64) float64 {
	quantity := balance * percentage

	return CalculateMaxQuantity(quantity, price, model, asset)
}
