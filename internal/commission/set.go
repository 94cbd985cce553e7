package commission

import (
	"github.com/rxtech-lab/argo-commission/internal/types"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
)

// Set routes each asset class to the model that prices it.
type Set struct {
	Equity EquityModel
	Future FutureModel
}

var _ Resolver = Set{}

func NewSet(equity EquityModel, future FutureModel) Set {
	return Set{Equity: equity, Future: future}
}

// DefaultSet prices equities with NewDefaultPerShare and futures with
// NewDefaultPerContract.
func DefaultSet() Set {
	return NewSet(NewDefaultPerShare(), NewDefaultPerContract())
}

// ModelFor returns the model configured for asset's class.
func (s Set) ModelFor(asset types.Asset) (Model, error) {
	switch asset.Class {
	case types.AssetClassEquity:
		if s.Equity == nil {
			return nil, errors.Newf(errors.ErrCodeUnsupportedAssetClass, "no equity commission model configured for %s", asset.Symbol)
		}

		return s.Equity, nil
	case types.AssetClassFuture:
		if s.Future == nil {
			return nil, errors.Newf(errors.ErrCodeUnsupportedAssetClass, "no future commission model configured for %s", asset.Symbol)
		}

		return s.Future, nil
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedAssetClass, "unsupported asset class %q for %s", asset.Class, asset.Symbol)
	}
}
