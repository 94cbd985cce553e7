package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFutureCost(t *testing.T) {
	cost, ok := DefaultFutureCost("ES")
	assert.True(t, ok)
	assert.Equal(t, 2.35, cost)

	cost, ok = DefaultFutureCost("NOT_A_ROOT")
	assert.False(t, ok)
	assert.Equal(t, DefaultFutureCostPerTrade, cost)
}

func TestDefaultFutureCostBySymbolReturnsCopy(t *testing.T) {
	table := DefaultFutureCostBySymbol()
	assert.Len(t, table, 72)
	assert.Contains(t, table, "CL")
	assert.Contains(t, table, "YS")

	table["ES"] = 99
	delete(table, "CL")

	cost, _ := DefaultFutureCost("ES")
	assert.Equal(t, 2.35, cost)
	_, ok := DefaultFutureCost("CL")
	assert.True(t, ok)
}

func TestDefaultScalars(t *testing.T) {
	assert.Equal(t, 0.0075, DefaultPerShareCost)
	assert.Equal(t, 0.0015, DefaultPerDollarCost)
	assert.Equal(t, 1.0, DefaultMinimumCostPerTrade)
	assert.Equal(t, 2.35, DefaultFutureCostPerTrade)
}
