package types

import (
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
)

// Order is the running state of an order as seen by commission models.
// Models only read it; the caller owns every update.
type Order struct {
	ID    string `yaml:"id" json:"id" csv:"id" validate:"required"`
	Asset Asset  `yaml:"asset" json:"asset" csv:"asset"`
	// Amount is the signed quantity requested. Positive buys, negative sells.
	Amount float64 `yaml:"amount" json:"amount" csv:"amount"`
	// Filled is the signed quantity filled so far, excluding the transaction
	// currently being priced.
	Filled float64 `yaml:"filled" json:"filled" csv:"filled"`
	// Commission is the total commission charged to this order so far in USD.
	Commission float64 `yaml:"commission" json:"commission" csv:"commission" validate:"gte=0"`
	// CommissionModel names the model that attributed the first commission to
	// this order. Empty until the first charge is applied.
	CommissionModel string `yaml:"commission_model" json:"commission_model" csv:"commission_model"`
}

// NewOrder creates an unfilled order for asset with a fresh id.
func NewOrder(asset Asset, amount float64) Order {
	return Order{
		ID:     uuid.New().String(),
		Asset:  asset,
		Amount: amount,
	}
}

// Remaining returns the signed quantity still to be filled.
func (o Order) Remaining() float64 {
	return o.Amount - o.Filled
}

// IsFilled is true once the filled quantity reaches the requested amount.
func (o Order) IsFilled() bool {
	return o.Amount != 0 && math.Abs(o.Filled) >= math.Abs(o.Amount)
}

// ApplyFill records tx and the commission charged for it. modelName is
// stamped on the first charge so later fills can be checked against it.
func (o *Order) ApplyFill(tx Transaction, charge float64, modelName string) {
	o.Filled += tx.Amount
	o.Commission += charge

	if o.CommissionModel == "" && charge > 0 {
		o.CommissionModel = modelName
	}
}

// Validate validates the Order struct.
func (o *Order) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOrder, "invalid order", err)
	}

	return nil
}
