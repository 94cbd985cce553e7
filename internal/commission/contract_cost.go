package commission

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

type contractCostKind int

const (
	contractCostFlat contractCostKind = iota
	contractCostBySymbol
)

// ContractCost is the per-contract rate of a PerContract model: either one
// flat rate for every contract or a table keyed by root symbol.
// The zero value is a flat rate of 0.
type ContractCost struct {
	kind     contractCostKind
	flat     float64
	bySymbol map[string]float64
}

// FlatContractCost charges cost for every contract regardless of symbol.
func FlatContractCost(cost float64) ContractCost {
	return ContractCost{kind: contractCostFlat, flat: cost}
}

// ContractCostBySymbol charges per root symbol. Symbols missing from costs fall
// back to the default cost table, then to DefaultFutureCostPerTrade.
func ContractCostBySymbol(costs map[string]float64) ContractCost {
	return ContractCost{kind: contractCostBySymbol, bySymbol: maps.Clone(costs)}
}

func (c ContractCost) IsFlat() bool {
	return c.kind == contractCostFlat
}

// Resolve returns the per-contract rate for rootSymbol.
func (c ContractCost) Resolve(rootSymbol string) float64 {
	if c.kind == contractCostFlat {
		return c.flat
	}

	if cost, ok := c.bySymbol[rootSymbol]; ok {
		return cost
	}

	cost, _ := DefaultFutureCost(rootSymbol)

	return cost
}

func (c ContractCost) validate() error {
	if c.kind == contractCostFlat {
		return validateCost("cost_per_contract", c.flat)
	}

	for symbol, cost := range c.bySymbol {
		if err := validateCost(fmt.Sprintf("cost_per_contract[%s]", symbol), cost); err != nil {
			return err
		}
	}

	return nil
}

func (c ContractCost) String() string {
	if c.kind == contractCostFlat {
		return formatCost(c.flat)
	}

	entries := make([]string, 0, len(c.bySymbol))
	for _, symbol := range slices.Sorted(maps.Keys(c.bySymbol)) {
		entries = append(entries, fmt.Sprintf("%s: %s", symbol, formatCost(c.bySymbol[symbol])))
	}

	return "{" + strings.Join(entries, ", ") + "}"
}
