package commission

import "maps"

const (
	// DefaultPerShareCost is 0.75 cents per share.
	DefaultPerShareCost = 0.0075
	// DefaultPerDollarCost is 0.15 cents per dollar traded.
	DefaultPerDollarCost = 0.0015
	// DefaultMinimumCostPerTrade is $1 per trade.
	DefaultMinimumCostPerTrade = 1.0
	// DefaultFutureCostPerTrade is charged per contract for root symbols
	// missing from every cost table.
	DefaultFutureCostPerTrade = 2.35
)

// defaultFutureCostBySymbol holds per-contract costs keyed by root symbol.
// Never mutated; read it through DefaultFutureCost or DefaultFutureCostBySymbol.
var defaultFutureCostBySymbol = map[string]float64{
	"AD": 2.35, // AUD
	"AI": 2.35, // Bloomberg Commodity Index
	"BD": 2.35, // Big Dow
	"BO": 2.35, // Soybean Oil
	"BP": 2.35, // GBP
	"CD": 2.35, // CAD
	"CL": 2.35, // Crude Oil
	"CM": 2.35, // Corn e-mini
	"CN": 2.35, // Corn
	"DJ": 2.35, // Dow Jones
	"EC": 2.35, // Euro FX
	"ED": 2.35, // Eurodollar
	"EE": 2.35, // Euro FX e-mini
	"EI": 2.35, // MSCI Emerging Markets mini
	"EL": 2.35, // Eurodollar NYSE LIFFE
	"ER": 2.35, // Russell2000 e-mini
	"ES": 2.35, // SP500 e-mini
	"ET": 2.35, // Ethanol
	"EU": 2.35, // Eurodollar e-micro
	"FC": 2.35, // Feeder Cattle
	"FF": 2.35, // 3-Day Federal Funds
	"FI": 2.35, // Deliverable Interest Rate Swap 5y
	"FS": 2.35, // Interest Rate Swap 5y
	"FV": 2.35, // US 5y
	"GC": 2.35, // Gold
	"HG": 2.35, // Copper
	"HO": 2.35, // Heating Oil
	"HU": 2.35, // Unleaded Gasoline
	"JE": 2.35, // JPY e-mini
	"JY": 2.35, // JPY
	"LB": 2.35, // Lumber
	"LC": 2.35, // Live Cattle
	"LH": 2.35, // Lean Hogs
	"MB": 2.35, // Municipal Bonds
	"MD": 2.35, // SP400 Midcap
	"ME": 2.35, // MXN
	"MG": 2.35, // MSCI EAFE mini
	"MI": 2.35, // SP400 Midcap e-mini
	"MS": 2.35, // Soybean e-mini
	"MW": 2.35, // Wheat e-mini
	"ND": 2.35, // Nasdaq100
	"NG": 2.35, // Natural Gas
	"NK": 2.35, // Nikkei225
	"NQ": 2.35, // Nasdaq100 e-mini
	"NZ": 2.35, // NZD
	"OA": 2.35, // Oats
	"PA": 2.35, // Palladium
	"PB": 2.35, // Pork Bellies
	"PL": 2.35, // Platinum
	"QG": 2.35, // Natural Gas e-mini
	"QM": 2.35, // Crude Oil e-mini
	"RM": 2.35, // Russell1000 e-mini
	"RR": 2.35, // Rough Rice
	"SB": 2.35, // Sugar
	"SF": 2.35, // CHF
	"SM": 2.35, // Soybean Meal
	"SP": 2.35, // SP500
	"SV": 2.35, // Silver
	"SY": 2.35, // Soybean
	"TB": 2.35, // Treasury Bills
	"TN": 2.35, // Deliverable Interest Rate Swap 10y
	"TS": 2.35, // Interest Rate Swap 10y
	"TU": 2.35, // US 2y
	"TY": 2.35, // US 10y
	"UB": 2.35, // Ultra Tbond
	"US": 2.35, // US 30y
	"VX": 2.35, // VIX
	"WC": 2.35, // Wheat
	"XB": 2.35, // RBOB Gasoline
	"XG": 2.35, // Gold e-mini
	"YM": 2.35, // Dow Jones e-mini
	"YS": 2.35, // Silver e-mini
}

// DefaultFutureCost returns the default per-contract cost for rootSymbol and
// whether the symbol has an entry in the default table. Unknown symbols
// report DefaultFutureCostPerTrade.
func DefaultFutureCost(rootSymbol string) (float64, bool) {
	cost, ok := defaultFutureCostBySymbol[rootSymbol]
	if !ok {
		return DefaultFutureCostPerTrade, false
	}

	return cost, true
}

// DefaultFutureCostBySymbol returns a copy of the default per-contract cost table.
func DefaultFutureCostBySymbol() map[string]float64 {
	return maps.Clone(defaultFutureCostBySymbol)
}
