package mocks

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/rxtech-lab/argo-commission/internal/types"
)

// FillGenerator splits orders into random partial fills for tests.
type FillGenerator struct {
	rng *rand.Rand
}

// NewFillGenerator creates a new FillGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewFillGenerator(seed int64) *FillGenerator {
	return &FillGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how fills are generated.
type GeneratorConfig struct {
	Asset types.Asset
	// StartTime is the time of the first fill
	StartTime time.Time
	// Interval is the duration between fills
	Interval time.Duration
	// OrderCount is the number of orders to generate
	OrderCount int
	// MinOrderSize and MaxOrderSize bound the unsigned quantity of each order
	MinOrderSize int
	MaxOrderSize int
	// MaxFillsPerOrder bounds how many transactions fill one order
	MaxFillsPerOrder int
	// SellRatio is the probability that an order sells (0.0 to 1.0)
	SellRatio float64
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls price movement between fills (0.001 = 0.1%)
	Volatility float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Asset:            types.NewEquity("TEST"),
		StartTime:        time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC),
		Interval:         time.Second,
		OrderCount:       100,
		MinOrderSize:     1,
		MaxOrderSize:     1000,
		MaxFillsPerOrder: 5,
		SellRatio:        0.5,
		InitialPrice:     100.0,
		Volatility:       0.001,
	}
}

// GeneratedOrder is an order together with the transactions that fill it.
type GeneratedOrder struct {
	Order        types.Order
	Transactions []types.Transaction
}

// Generate creates OrderCount orders, each completely filled by 1 to
// MaxFillsPerOrder transactions. Prices follow a geometric Brownian motion.
func (g *FillGenerator) Generate(config GeneratorConfig) []GeneratedOrder {
	orders := make([]GeneratedOrder, 0, config.OrderCount)
	currentPrice := config.InitialPrice
	currentTime := config.StartTime

	for i := 0; i < config.OrderCount; i++ {
		size := config.MinOrderSize + g.rng.Intn(config.MaxOrderSize-config.MinOrderSize+1)

		sign := 1.0
		if g.rng.Float64() < config.SellRatio {
			sign = -1.0
		}

		order := types.Order{
			ID:     fmt.Sprintf("%s-%d", config.Asset.Symbol, i),
			Asset:  config.Asset,
			Amount: sign * float64(size),
		}

		generated := GeneratedOrder{Order: order}

		for _, part := range g.split(size, 1+g.rng.Intn(config.MaxFillsPerOrder)) {
			// Box-Muller transform for normal distribution
			u1 := g.rng.Float64()
			u2 := g.rng.Float64()
			z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

			next := currentPrice * (1 + config.Volatility*z)
			if next <= 0 {
				next = currentPrice * 0.99
			}

			currentPrice = next

			generated.Transactions = append(generated.Transactions, types.Transaction{
				OrderID:   order.ID,
				Asset:     config.Asset,
				Amount:    sign * float64(part),
				Price:     roundToDecimals(currentPrice, 4),
				Timestamp: currentTime,
			})

			currentTime = currentTime.Add(config.Interval)
		}

		orders = append(orders, generated)
	}

	return orders
}

// Interleave merges the transactions of orders into one stream, keeping the
// relative order of each order's own transactions. Timestamps are rewritten
// to be increasing.
func (g *FillGenerator) Interleave(orders []GeneratedOrder, start time.Time, interval time.Duration) []types.Transaction {
	positions := make([]int, len(orders))
	pending := 0

	for _, order := range orders {
		pending += len(order.Transactions)
	}

	result := make([]types.Transaction, 0, pending)
	current := start

	for pending > 0 {
		i := g.rng.Intn(len(orders))
		if positions[i] >= len(orders[i].Transactions) {
			continue
		}

		tx := orders[i].Transactions[positions[i]]
		tx.Timestamp = current
		result = append(result, tx)

		positions[i]++
		pending--
		current = current.Add(interval)
	}

	return result
}

// split divides total into at most parts positive integers.
func (g *FillGenerator) split(total int, parts int) []int {
	if parts > total {
		parts = total
	}

	if parts <= 1 {
		return []int{total}
	}

	result := make([]int, parts)
	remaining := total

	for i := 0; i < parts-1; i++ {
		// leave at least one unit for every remaining part
		maxPart := remaining - (parts - 1 - i)
		result[i] = 1 + g.rng.Intn(maxPart)
		remaining -= result[i]
	}

	result[parts-1] = remaining

	return result
}

// WriteCSV writes transactions in the fill file layout read by fills.DuckDBSource.
func WriteCSV(path string, transactions []types.Transaction) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"order_id", "symbol", "root_symbol", "asset_class", "amount", "price", "time"}); err != nil {
		return err
	}

	for _, tx := range transactions {
		record := []string{
			tx.OrderID,
			tx.Asset.Symbol,
			tx.Asset.RootSymbol,
			string(tx.Asset.Class),
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
			strconv.FormatFloat(tx.Price, 'f', -1, 64),
			tx.Timestamp.UTC().Format("2006-01-02 15:04:05.000000"),
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))

	return math.Round(val*pow) / pow
}
