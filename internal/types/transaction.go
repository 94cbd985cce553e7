package types

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
)

// Transaction is a single execution that fills part or all of an order.
type Transaction struct {
	OrderID string `yaml:"order_id" json:"order_id" csv:"order_id" validate:"required"`
	Asset   Asset  `yaml:"asset" json:"asset" csv:"asset"`
	// Amount is the signed quantity filled. Only its magnitude matters for commission.
	Amount    float64   `yaml:"amount" json:"amount" csv:"amount"`
	Price     float64   `yaml:"price" json:"price" csv:"price" validate:"gte=0"`
	Timestamp time.Time `yaml:"timestamp" json:"timestamp" csv:"timestamp"`
}

// Quantity returns the unsigned traded quantity.
func (t Transaction) Quantity() float64 {
	return math.Abs(t.Amount)
}

// Value returns the unsigned dollar value traded.
func (t Transaction) Value() float64 {
	return math.Abs(t.Amount) * t.Price
}

// Validate validates the Transaction struct.
func (t *Transaction) Validate() error {
	validate := validator.New()
	if err := validate.Struct(t); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidTransaction, "invalid transaction", err)
	}

	return nil
}
