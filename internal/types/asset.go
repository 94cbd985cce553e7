package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
)

// AssetClass tells commission routing which family of models prices an instrument.
type AssetClass string

const (
	AssetClassEquity AssetClass = "EQUITY"
	AssetClassFuture AssetClass = "FUTURE"
)

// AllAssetClasses lists every supported asset class. Used for schema enums.
var AllAssetClasses = []any{
	AssetClassEquity,
	AssetClassFuture,
}

// Asset is the instrument metadata an order refers to.
type Asset struct {
	Symbol string `yaml:"symbol" json:"symbol" csv:"symbol" validate:"required"`
	// RootSymbol identifies the contract family of a future (ES for ESZ4).
	// Per-contract commission tables are keyed by it.
	RootSymbol string     `yaml:"root_symbol" json:"root_symbol" csv:"root_symbol" validate:"required_if=Class FUTURE"`
	Class      AssetClass `yaml:"class" json:"class" csv:"class" validate:"required,oneof=EQUITY FUTURE"`
}

// NewEquity returns the metadata of an equity.
func NewEquity(symbol string) Asset {
	return Asset{Symbol: symbol, Class: AssetClassEquity}
}

// NewFuture returns the metadata of a futures contract.
func NewFuture(symbol string, rootSymbol string) Asset {
	return Asset{Symbol: symbol, RootSymbol: rootSymbol, Class: AssetClassFuture}
}

func (a Asset) IsFuture() bool {
	return a.Class == AssetClassFuture
}

// Validate validates the Asset struct.
func (a *Asset) Validate() error {
	validate := validator.New()
	if err := validate.Struct(a); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidAsset, "invalid asset", err)
	}

	return nil
}
