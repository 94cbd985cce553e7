// Package replay prices a stream of fills with a commission.Resolver. It plays the
// caller's role in the commission contract: it keeps the running state of
// every order it sees and applies each charge before pricing the next fill.
// Nothing is kept once the engine is discarded.
package replay

import (
	"context"
	"sync"

	"github.com/rxtech-lab/argo-commission/internal/commission"
	"github.com/rxtech-lab/argo-commission/internal/fills"
	"github.com/rxtech-lab/argo-commission/internal/logger"
	"github.com/rxtech-lab/argo-commission/internal/types"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Charge is the commission attributed to one transaction.
type Charge struct {
	Transaction types.Transaction
	// Model is the commission model that priced the transaction.
	Model string
	// Amount is the incremental commission in USD.
	Amount float64
	// Order is the order state after the charge was applied.
	Order types.Order
}

// Engine applies commission models to transactions in arrival order.
type Engine struct {
	models commission.Resolver
	logger *logger.Logger

	mu     sync.Mutex
	orders map[string]*types.Order
	// first-seen order of ids, for stable summaries
	seen   []string
	fills  map[string]int
	priced int
}

// NewEngine creates an engine that prices each transaction with the model
// models returns for its asset.
func NewEngine(models commission.Resolver, logger *logger.Logger) *Engine {
	return &Engine{
		models: models,
		logger: logger,
		orders: make(map[string]*types.Order),
		fills:  make(map[string]int),
	}
}

// Track registers an order that already carries fills or commission, for
// example one carried over from an earlier session. Its CommissionModel must
// match the model the engine would use for it.
func (e *Engine) Track(order types.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	model, err := e.models.ModelFor(order.Asset)
	if err != nil {
		return err
	}

	if order.Commission > 0 && order.CommissionModel != model.String() {
		return errors.Newf(errors.ErrCodeCommissionModelConflict,
			"order %s was priced by %q, cannot continue with %s", order.ID, order.CommissionModel, model)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.orders[order.ID]; ok {
		return errors.Newf(errors.ErrCodeInvalidOrder, "order %s is already tracked", order.ID)
	}

	e.orders[order.ID] = &order
	e.seen = append(e.seen, order.ID)

	return nil
}

// Price calculates the commission for tx and applies it to its order.
func (e *Engine) Price(tx types.Transaction) (Charge, error) {
	if err := tx.Validate(); err != nil {
		return Charge{}, err
	}

	model, err := e.models.ModelFor(tx.Asset)
	if err != nil {
		return Charge{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	order, ok := e.orders[tx.OrderID]
	if !ok {
		order = &types.Order{ID: tx.OrderID, Asset: tx.Asset}
		e.orders[tx.OrderID] = order
		e.seen = append(e.seen, tx.OrderID)
	}

	if order.Asset != tx.Asset {
		return Charge{}, errors.Newf(errors.ErrCodeOrderAssetMismatch,
			"transaction for %s does not match order %s on %s", tx.Asset.Symbol, order.ID, order.Asset.Symbol)
	}

	name := model.String()
	if order.CommissionModel != "" && order.CommissionModel != name {
		return Charge{}, errors.Newf(errors.ErrCodeCommissionModelConflict,
			"order %s was priced by %q, cannot continue with %s", order.ID, order.CommissionModel, name)
	}

	amount := model.Calculate(*order, tx)
	order.ApplyFill(tx, amount, name)
	e.fills[order.ID]++
	e.priced++

	e.logger.Debug("Priced transaction",
		zap.String("order_id", order.ID),
		zap.String("symbol", tx.Asset.Symbol),
		zap.Float64("amount", tx.Amount),
		zap.Float64("price", tx.Price),
		zap.String("model", name),
		zap.Float64("commission", amount),
		zap.Float64("order_commission", order.Commission),
	)

	return Charge{
		Transaction: tx,
		Model:       name,
		Amount:      amount,
		Order:       *order,
	}, nil
}

// Run prices every fill source yields for filter. onCharge, when not nil, is
// called after each fill is priced. Run stops at the first error.
func (e *Engine) Run(ctx context.Context, source fills.Source, filter fills.Filter, onCharge func(Charge)) (Summary, error) {
	for tx, err := range source.ReadAll(filter) {
		if err != nil {
			return Summary{}, err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return Summary{}, errors.Wrap(errors.ErrCodeReplayAborted, "replay cancelled", ctxErr)
		}

		charge, err := e.Price(tx)
		if err != nil {
			e.logger.Error("Failed to price transaction", zap.String("order_id", tx.OrderID), zap.Error(err))

			return Summary{}, err
		}

		if onCharge != nil {
			onCharge(charge)
		}
	}

	summary := e.Summary()
	e.logger.Info("Replay completed",
		zap.Int("transactions", summary.Transactions),
		zap.Int("orders", len(summary.Orders)),
		zap.String("total_commission", summary.Total.StringFixed(4)),
	)

	return summary, nil
}

// Order returns the current state of the order with id.
func (e *Engine) Order(id string) (types.Order, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	order, ok := e.orders[id]
	if !ok {
		return types.Order{}, false
	}

	return *order, true
}

// Summary totals the commission charged so far.
func (e *Engine) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	summary := Summary{
		ByClass:      make(map[types.AssetClass]decimal.Decimal),
		Total:        decimal.Zero,
		Transactions: e.priced,
	}

	for _, id := range e.seen {
		order := e.orders[id]
		commission := decimal.NewFromFloat(order.Commission)

		summary.Orders = append(summary.Orders, OrderSummary{
			OrderID:    order.ID,
			Asset:      order.Asset,
			Filled:     order.Filled,
			Fills:      e.fills[id],
			Commission: commission,
			Model:      order.CommissionModel,
		})

		summary.ByClass[order.Asset.Class] = summary.ByClass[order.Asset.Class].Add(commission)
		summary.Total = summary.Total.Add(commission)
	}

	return summary
}
