package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rxtech-lab/argo-commission/internal/version"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
	"github.com/stretchr/testify/suite"
)

const testFills = `order_id,symbol,root_symbol,asset_class,amount,price,time
o-1,AAPL,,EQUITY,50,10,2024-01-02 15:30:00
f-1,ESH4,ES,FUTURE,2,4750,2024-01-02 15:30:30
o-1,AAPL,,EQUITY,100,10,2024-01-02 15:31:00
`

const testConfig = `version: v1.0.0
equity:
  model: per_trade
  cost: 5
future:
  model: per_contract
  cost: 0.85
`

type CommissionCmdTestSuite struct {
	suite.Suite
	tempDir string
}

func TestCommissionCmdSuite(t *testing.T) {
	suite.Run(t, new(CommissionCmdTestSuite))
}

func (suite *CommissionCmdTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
}

func (suite *CommissionCmdTestSuite) run(args ...string) (string, error) {
	var out bytes.Buffer

	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run(context.Background(), append([]string{"commission"}, args...))

	return out.String(), err
}

func (suite *CommissionCmdTestSuite) writeFile(name, content string) string {
	path := filepath.Join(suite.tempDir, name)
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	return path
}

func (suite *CommissionCmdTestSuite) TestCalculate() {
	configPath := suite.writeFile("commission.yaml", testConfig)

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "first fill pays the minimum",
			args:     []string{"--symbol", "AAPL", "--amount=50", "--price=10"},
			contains: []string{"PerShare(cost_per_unit=0.0075, min_trade_cost=1)", "$1.0000", "EQUITY"},
		},
		{
			name:     "later fill pays above the minimum",
			args:     []string{"--symbol", "AAPL", "--amount=100", "--price=10", "--filled=50", "--commission=1", "--order-id", "o-1"},
			contains: []string{"$0.1250", "$1.1250", "o-1"},
		},
		{
			name:     "sell fill",
			args:     []string{"--symbol", "AAPL", "--amount=-200", "--price=10"},
			contains: []string{"$1.5000", "-200"},
		},
		{
			name:     "future by root symbol",
			args:     []string{"--symbol", "ESH4", "--root", "ES", "--amount=2", "--price=4750"},
			contains: []string{"FUTURE", "$4.7000"},
		},
		{
			name:     "broker preset",
			args:     []string{"--broker", "interactive_broker", "--symbol", "AAPL", "--amount=1000", "--price=10"},
			contains: []string{"$5.0000"},
		},
		{
			name:     "config file",
			args:     []string{"--config", configPath, "--symbol", "AAPL", "--amount=10", "--price=10"},
			contains: []string{"PerEquityTrade(cost=5)", "$5.0000"},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			output, err := suite.run(append([]string{"calculate"}, tc.args...)...)
			suite.Require().NoError(err)

			for _, want := range tc.contains {
				suite.Contains(output, want)
			}
		})
	}
}

func (suite *CommissionCmdTestSuite) TestCalculateErrors() {
	tests := []struct {
		name     string
		args     []string
		wantCode errors.ErrorCode
	}{
		{
			name:     "unknown asset class",
			args:     []string{"--symbol", "AAPL", "--class", "BOND", "--amount=1", "--price=1"},
			wantCode: errors.ErrCodeInvalidParameter,
		},
		{
			name:     "future without root",
			args:     []string{"--symbol", "ESH4", "--class", "FUTURE", "--amount=1", "--price=1"},
			wantCode: errors.ErrCodeInvalidParameter,
		},
		{
			name:     "unknown broker",
			args:     []string{"--broker", "nobody", "--symbol", "AAPL", "--amount=1", "--price=1"},
			wantCode: errors.ErrCodeUnknownBroker,
		},
		{
			name:     "negative price",
			args:     []string{"--symbol", "AAPL", "--amount=1", "--price=-1"},
			wantCode: errors.ErrCodeInvalidTransaction,
		},
		{
			name:     "missing config file",
			args:     []string{"--config", "missing.yaml", "--symbol", "AAPL", "--amount=1", "--price=1"},
			wantCode: errors.ErrCodeInvalidConfiguration,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := suite.run(append([]string{"calculate"}, tc.args...)...)
			suite.Require().Error(err)
			suite.Equal(tc.wantCode, errors.GetCode(err))
		})
	}
}

func (suite *CommissionCmdTestSuite) TestCalculateRequiresFlags() {
	_, err := suite.run("calculate", "--symbol", "AAPL")
	suite.Error(err)
}

func (suite *CommissionCmdTestSuite) TestQuote() {
	configPath := suite.writeFile("commission.yaml", testConfig)

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "whole shares under the minimum",
			args:     []string{"--symbol", "AAPL", "--balance=1000", "--price=100"},
			contains: []string{"PerShare(cost_per_unit=0.0075, min_trade_cost=1)", "$1.0000", "$901.0000"},
		},
		{
			name:     "fractional shares",
			args:     []string{"--symbol", "AAPL", "--balance=1000", "--price=100", "--decimals=2"},
			contains: []string{"9.99", "$1000.0000"},
		},
		{
			name:     "share of the balance",
			args:     []string{"--symbol", "AAPL", "--balance=1000", "--price=100", "--percentage=0.5"},
			contains: []string{"$500.0000", "$401.0000"},
		},
		{
			name:     "flat fee config",
			args:     []string{"--config", configPath, "--symbol", "AAPL", "--balance=1000", "--price=100"},
			contains: []string{"PerEquityTrade(cost=5)", "$5.0000", "$905.0000"},
		},
		{
			name:     "fee larger than the balance",
			args:     []string{"--config", configPath, "--symbol", "AAPL", "--balance=4", "--price=1"},
			contains: []string{"$0.0000"},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			output, err := suite.run(append([]string{"quote"}, tc.args...)...)
			suite.Require().NoError(err)

			for _, want := range tc.contains {
				suite.Contains(output, want)
			}
		})
	}
}

func (suite *CommissionCmdTestSuite) TestQuoteErrors() {
	tests := []struct {
		name     string
		args     []string
		wantCode errors.ErrorCode
	}{
		{
			name:     "zero price",
			args:     []string{"--symbol", "AAPL", "--balance=1000", "--price=0"},
			wantCode: errors.ErrCodeInvalidParameter,
		},
		{
			name:     "negative balance",
			args:     []string{"--symbol", "AAPL", "--balance=-1", "--price=10"},
			wantCode: errors.ErrCodeInvalidParameter,
		},
		{
			name:     "percentage above one",
			args:     []string{"--symbol", "AAPL", "--balance=1000", "--price=10", "--percentage=1.5"},
			wantCode: errors.ErrCodeInvalidParameter,
		},
		{
			name:     "unknown broker",
			args:     []string{"--broker", "nobody", "--symbol", "AAPL", "--balance=1000", "--price=10"},
			wantCode: errors.ErrCodeUnknownBroker,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := suite.run(append([]string{"quote"}, tc.args...)...)
			suite.Require().Error(err)
			suite.Equal(tc.wantCode, errors.GetCode(err))
		})
	}
}

func (suite *CommissionCmdTestSuite) TestQuoteRequiresBalance() {
	_, err := suite.run("quote", "--symbol", "AAPL", "--price=10")
	suite.Error(err)
}

func (suite *CommissionCmdTestSuite) TestReplay() {
	fillsPath := suite.writeFile("fills.csv", testFills)

	output, err := suite.run("replay", "--fills", fillsPath)
	suite.Require().NoError(err)

	suite.Contains(output, "Orders")
	suite.Contains(output, "o-1")
	suite.Contains(output, "f-1")
	suite.Contains(output, "$1.1250")
	suite.Contains(output, "$4.7000")
	suite.Contains(output, "$5.8250")
	suite.NotContains(output, "Order total")
}

func (suite *CommissionCmdTestSuite) TestReplayDetailsAndFilter() {
	fillsPath := suite.writeFile("fills.csv", testFills)

	output, err := suite.run("replay", "--fills", fillsPath, "--symbol", "AAPL", "--details")
	suite.Require().NoError(err)

	suite.Contains(output, "Order total")
	suite.Contains(output, "$0.1250")
	suite.NotContains(output, "f-1")
	suite.Contains(output, "$1.1250")
}

func (suite *CommissionCmdTestSuite) TestReplayWithConfig() {
	fillsPath := suite.writeFile("fills.csv", testFills)
	configPath := suite.writeFile("commission.yaml", testConfig)

	output, err := suite.run("replay", "--fills", fillsPath, "--config", configPath)
	suite.Require().NoError(err)

	// $5 once for o-1 plus 2 x $0.85 for f-1
	suite.Contains(output, "$6.7000")
}

func (suite *CommissionCmdTestSuite) TestReplayErrors() {
	_, err := suite.run("replay", "--fills", filepath.Join(suite.tempDir, "missing.csv"))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeFillSourceUnavailable))

	jsonPath := suite.writeFile("fills.json", "{}")
	_, err = suite.run("replay", "--fills", jsonPath)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnsupportedFillFormat))
}

func (suite *CommissionCmdTestSuite) TestSchema() {
	output, err := suite.run("schema")
	suite.Require().NoError(err)
	suite.Contains(output, "commission-config")
	suite.Contains(output, "interactive_broker")
}

func (suite *CommissionCmdTestSuite) TestSchemaOutput() {
	dir := filepath.Join(suite.tempDir, "config")

	_, err := suite.run("schema", "--output", dir)
	suite.Require().NoError(err)

	suite.FileExists(filepath.Join(dir, schemaName))

	samplePath := filepath.Join(dir, sampleConfigName)
	sample, err := os.ReadFile(samplePath)
	suite.Require().NoError(err)
	suite.Contains(string(sample), "# yaml-language-server: $schema="+schemaName)
	suite.Contains(string(sample), "per_share")

	// The sample config is usable as is.
	fillsPath := suite.writeFile("fills.csv", testFills)
	output, err := suite.run("replay", "--fills", fillsPath, "--config", samplePath)
	suite.Require().NoError(err)
	suite.Contains(output, "$5.8250")

	// An existing sample config is not overwritten.
	suite.Require().NoError(os.WriteFile(samplePath, []byte("edited"), 0o600))
	output, err = suite.run("schema", "--output", dir)
	suite.Require().NoError(err)
	suite.NotContains(output, "Sample config written")

	edited, err := os.ReadFile(samplePath)
	suite.Require().NoError(err)
	suite.Equal("edited", string(edited))
}

func (suite *CommissionCmdTestSuite) TestDefaults() {
	output, err := suite.run("defaults")
	suite.Require().NoError(err)
	suite.Contains(output, "$0.0075")
	suite.Contains(output, "0.0015")
	suite.Contains(output, "ES")
	suite.Contains(output, "$2.3500")
}

func (suite *CommissionCmdTestSuite) TestVersion() {
	output, err := suite.run("version")
	suite.Require().NoError(err)
	suite.Contains(output, version.GetVersion())
}

func (suite *CommissionCmdTestSuite) TestExampleFiles() {
	output, err := suite.run("replay",
		"--fills", filepath.Join("..", "..", "examples", "fills.csv"),
		"--config", filepath.Join("..", "..", "examples", "commission.yaml"),
	)
	suite.Require().NoError(err)

	for _, order := range []string{"buy-aapl", "sell-es", "buy-msft", "buy-zn"} {
		suite.Contains(output, order)
	}

	suite.Contains(output, "PerShare(cost_per_unit=0.005, min_trade_cost=1)")
	suite.Contains(output, "PerContract(cost_per_unit={CL: 1.5, ES: 1.25, NQ: 1.25}, min_trade_cost=2)")
}
