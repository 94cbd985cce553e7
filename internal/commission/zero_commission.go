package commission

import "github.com/rxtech-lab/argo-commission/internal/types"

var (
	_ EquityModel = (*NoCommission)(nil)
	_ FutureModel = (*NoCommission)(nil)
)

// NoCommission charges nothing. It serves both equities and futures.
type NoCommission struct{}

// NewNoCommission creates a zero commission model.
func NewNoCommission() *NoCommission {
	return &NoCommission{}
}

// Calculate returns 0 for any transaction.
func (c *NoCommission) Calculate(types.Order, types.Transaction) float64 {
	return 0.0
}

func (c *NoCommission) String() string {
	return "NoCommission()"
}

func (c *NoCommission) equityModel() {}

func (c *NoCommission) futureModel() {}
