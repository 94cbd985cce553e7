package commission

import (
	"testing"

	"github.com/rxtech-lab/argo-commission/internal/types"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type SetTestSuite struct {
	suite.Suite
}

func TestSetSuite(t *testing.T) {
	suite.Run(t, new(SetTestSuite))
}

func (suite *SetTestSuite) TestModelFor() {
	set := DefaultSet()

	equity, err := set.ModelFor(types.NewEquity("AAPL"))
	suite.NoError(err)
	suite.IsType(&PerShare{}, equity)

	future, err := set.ModelFor(types.NewFuture("ESZ4", "ES"))
	suite.NoError(err)
	suite.IsType(&PerContract{}, future)
}

func (suite *SetTestSuite) TestModelForErrors() {
	tests := []struct {
		name  string
		set   Set
		asset types.Asset
	}{
		{"missing equity model", NewSet(nil, NewDefaultPerContract()), types.NewEquity("AAPL")},
		{"missing future model", NewSet(NewDefaultPerShare(), nil), types.NewFuture("ESZ4", "ES")},
		{"unknown class", DefaultSet(), types.Asset{Symbol: "BTC", Class: "CRYPTO"}},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			model, err := tc.set.ModelFor(tc.asset)
			suite.Nil(model)
			suite.True(errors.HasCode(err, errors.ErrCodeUnsupportedAssetClass))
		})
	}
}

func (suite *SetTestSuite) TestModelsForBroker() {
	tests := []struct {
		name           string
		broker         Broker
		equityQuantity float64
		equityExpected float64
		futureExpected float64
	}{
		{
			name:           "interactive broker minimum",
			broker:         BrokerInteractiveBroker,
			equityQuantity: 10,
			equityExpected: 1.0,
			futureExpected: 1.7,
		},
		{
			name:           "interactive broker above minimum",
			broker:         BrokerInteractiveBroker,
			equityQuantity: 1000,
			equityExpected: 5.0,
			futureExpected: 1.7,
		},
		{
			name:           "zero commission",
			broker:         BrokerZero,
			equityQuantity: 1000,
			equityExpected: 0.0,
			futureExpected: 0.0,
		},
		{
			name:           "default",
			broker:         BrokerDefault,
			equityQuantity: 1000,
			equityExpected: 7.5,
			futureExpected: 4.7,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			set, err := ModelsForBroker(tc.broker)
			suite.Require().NoError(err)

			equityOrder := types.NewOrder(types.NewEquity("AAPL"), tc.equityQuantity)
			equityTx := types.Transaction{OrderID: equityOrder.ID, Asset: equityOrder.Asset, Amount: tc.equityQuantity, Price: 100}
			suite.InDelta(tc.equityExpected, set.Equity.Calculate(equityOrder, equityTx), 1e-9)

			futureOrder := types.NewOrder(types.NewFuture("ESZ4", "ES"), 2)
			futureTx := types.Transaction{OrderID: futureOrder.ID, Asset: futureOrder.Asset, Amount: 2, Price: 4500}
			suite.InDelta(tc.futureExpected, set.Future.Calculate(futureOrder, futureTx), 1e-9)
		})
	}
}

func (suite *SetTestSuite) TestUnknownBroker() {
	_, err := ModelsForBroker(Broker("unknown"))
	suite.True(errors.HasCode(err, errors.ErrCodeUnknownBroker))
}

func (suite *SetTestSuite) TestAllBrokers() {
	suite.Len(AllBrokers, 3)
	suite.Contains(AllBrokers, BrokerInteractiveBroker)
	suite.Contains(AllBrokers, BrokerZero)
	suite.Contains(AllBrokers, BrokerDefault)
}
