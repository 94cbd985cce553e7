package config

import (
	"encoding/json"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-commission/internal/commission"
	"github.com/rxtech-lab/argo-commission/internal/version"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ModelName selects a commission model in the configuration file.
type ModelName string

const (
	ModelPerShare    ModelName = "per_share"
	ModelPerContract ModelName = "per_contract"
	ModelPerTrade    ModelName = "per_trade"
	ModelPerDollar   ModelName = "per_dollar"
	ModelZero        ModelName = "zero"
)

// CommissionConfig selects the commission models used to price fills.
// A broker preset provides both models; an equity or future section
// replaces the preset's model for that asset class.
type CommissionConfig struct {
	Version string             `yaml:"version" json:"version" jsonschema:"title=Version,description=Library version the file was written for"`
	Broker  commission.Broker  `yaml:"broker,omitempty" json:"broker" jsonschema:"title=Broker,description=Broker preset providing both models" validate:"omitempty,oneof=interactive_broker zero_commission default"`
	Equity  *EquityModelConfig `yaml:"equity,omitempty" json:"equity" jsonschema:"title=Equity,description=Commission model for equities"`
	Future  *FutureModelConfig `yaml:"future,omitempty" json:"future" jsonschema:"title=Future,description=Commission model for futures contracts"`
}

// EquityModelConfig configures the equity commission model.
type EquityModelConfig struct {
	Model ModelName `yaml:"model" json:"model" jsonschema:"title=Model,enum=per_share,enum=per_trade,enum=per_dollar,enum=zero,required" validate:"required,oneof=per_share per_trade per_dollar zero"`
	// Cost is per share, per trade or per dollar depending on Model.
	Cost optional.Option[float64] `yaml:"cost" json:"cost" jsonschema:"title=Cost,description=Cost per share / per trade / per dollar,minimum=0"`
	// MinTradeCost only applies to per_share. None means no minimum; an omitted
	// key defaults to commission.DefaultMinimumCostPerTrade.
	MinTradeCost optional.Option[float64] `yaml:"min_trade_cost" json:"min_trade_cost" jsonschema:"title=Minimum Trade Cost,description=Minimum commission per order (per_share only),minimum=0"`
}

// FutureModelConfig configures the futures commission model.
type FutureModelConfig struct {
	Model ModelName `yaml:"model" json:"model" jsonschema:"title=Model,enum=per_contract,enum=per_trade,enum=per_dollar,enum=zero,required" validate:"required,oneof=per_contract per_trade per_dollar zero"`
	// Cost is a flat per contract, per trade or per dollar cost depending on Model.
	Cost optional.Option[float64] `yaml:"cost" json:"cost" jsonschema:"title=Cost,description=Cost per contract / per trade / per dollar,minimum=0"`
	// CostBySymbol maps root symbols to per contract costs. Only valid for
	// per_contract and mutually exclusive with Cost.
	CostBySymbol map[string]float64 `yaml:"cost_by_symbol" json:"cost_by_symbol" jsonschema:"title=Cost By Symbol,description=Per contract cost keyed by root symbol (per_contract only)" validate:"omitempty,dive,keys,required,endkeys,gte=0"`
	// MinTradeCost only applies to per_contract. None means no minimum.
	MinTradeCost optional.Option[float64] `yaml:"min_trade_cost" json:"min_trade_cost" jsonschema:"title=Minimum Trade Cost,description=Minimum commission per order (per_contract only),minimum=0"`
}

// UnmarshalYAML implements custom unmarshaling for EquityModelConfig
func (c *EquityModelConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type Config struct {
		Model        ModelName `yaml:"model"`
		Cost         *float64  `yaml:"cost"`
		MinTradeCost *float64  `yaml:"min_trade_cost"`
	}

	var config Config
	if err := unmarshal(&config); err != nil {
		return err
	}

	// An omitted minimum takes the per_share default; an explicit null removes it.
	var keys map[string]interface{}
	if err := unmarshal(&keys); err != nil {
		return err
	}
	_, hasMinimum := keys["min_trade_cost"]

	c.Model = config.Model
	c.Cost = optionFromPtr(config.Cost)
	c.MinTradeCost = optionFromPtr(config.MinTradeCost)
	if !hasMinimum && c.Model == ModelPerShare {
		c.MinTradeCost = optional.Some(commission.DefaultMinimumCostPerTrade)
	}

	return nil
}

// UnmarshalYAML implements custom unmarshaling for FutureModelConfig
func (c *FutureModelConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type Config struct {
		Model        ModelName          `yaml:"model"`
		Cost         *float64           `yaml:"cost"`
		CostBySymbol map[string]float64 `yaml:"cost_by_symbol"`
		MinTradeCost *float64           `yaml:"min_trade_cost"`
	}

	var config Config
	if err := unmarshal(&config); err != nil {
		return err
	}

	c.Model = config.Model
	c.Cost = optionFromPtr(config.Cost)
	c.CostBySymbol = config.CostBySymbol
	c.MinTradeCost = optionFromPtr(config.MinTradeCost)

	return nil
}

// MarshalYAML implements custom marshaling for EquityModelConfig
func (c EquityModelConfig) MarshalYAML() (interface{}, error) {
	if c.Model == ModelPerShare {
		// Written even when none so the default minimum is not applied on reload.
		return struct {
			Model        ModelName `yaml:"model"`
			Cost         *float64  `yaml:"cost,omitempty"`
			MinTradeCost *float64  `yaml:"min_trade_cost"`
		}{
			Model:        c.Model,
			Cost:         ptrFromOption(c.Cost),
			MinTradeCost: ptrFromOption(c.MinTradeCost),
		}, nil
	}

	return struct {
		Model        ModelName `yaml:"model"`
		Cost         *float64  `yaml:"cost,omitempty"`
		MinTradeCost *float64  `yaml:"min_trade_cost,omitempty"`
	}{
		Model:        c.Model,
		Cost:         ptrFromOption(c.Cost),
		MinTradeCost: ptrFromOption(c.MinTradeCost),
	}, nil
}

// MarshalYAML implements custom marshaling for FutureModelConfig
func (c FutureModelConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Model        ModelName          `yaml:"model"`
		Cost         *float64           `yaml:"cost,omitempty"`
		CostBySymbol map[string]float64 `yaml:"cost_by_symbol,omitempty"`
		MinTradeCost *float64           `yaml:"min_trade_cost,omitempty"`
	}{
		Model:        c.Model,
		Cost:         ptrFromOption(c.Cost),
		CostBySymbol: c.CostBySymbol,
		MinTradeCost: ptrFromOption(c.MinTradeCost),
	}, nil
}

func ptrFromOption(v optional.Option[float64]) *float64 {
	if v.IsNone() {
		return nil
	}

	value := v.Unwrap()

	return &value
}

func optionFromPtr(v *float64) optional.Option[float64] {
	if v == nil {
		return optional.None[float64]()
	}

	return optional.Some(*v)
}

// Parse decodes a YAML configuration and validates it.
func Parse(data []byte) (*CommissionConfig, error) {
	var config CommissionConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse commission config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Marshal encodes the configuration as YAML.
func (c CommissionConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to encode commission config", err)
	}

	return data, nil
}

// Load reads and validates the YAML configuration at path.
func Load(path string) (*CommissionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read commission config %s", path)
	}

	return Parse(data)
}

// Validate checks the configuration and builds its models once so that every
// configuration error surfaces before any fill is priced.
func (c *CommissionConfig) Validate() error {
	if err := version.CheckConfigCompatibility(version.GetVersion(), c.Version); err != nil {
		return err
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid commission config", err)
	}

	_, err := c.Build()

	return err
}

// Build creates the commission models described by the configuration.
func (c *CommissionConfig) Build() (commission.Set, error) {
	set := commission.DefaultSet()

	if c.Broker != "" {
		preset, err := commission.ModelsForBroker(c.Broker)
		if err != nil {
			return commission.Set{}, err
		}

		set = preset
	}

	if c.Equity != nil {
		equity, err := c.Equity.Build()
		if err != nil {
			return commission.Set{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid equity commission model", err)
		}

		set.Equity = equity
	}

	if c.Future != nil {
		future, err := c.Future.Build()
		if err != nil {
			return commission.Set{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid future commission model", err)
		}

		set.Future = future
	}

	return set, nil
}

// Build creates the configured equity model. Omitted costs use the library defaults.
func (c *EquityModelConfig) Build() (commission.EquityModel, error) {
	if c.Model != ModelPerShare && c.MinTradeCost.IsSome() {
		return nil, errors.Newf(errors.ErrCodeInvalidConfiguration, "min_trade_cost is not supported by %s", c.Model)
	}

	var (
		model commission.EquityModel
		err   error
	)

	switch c.Model {
	case ModelPerShare:
		model, err = commission.NewPerShare(c.Cost.TakeOr(commission.DefaultPerShareCost), c.MinTradeCost)
	case ModelPerTrade:
		model, err = commission.NewPerEquityTrade(c.Cost.TakeOr(commission.DefaultMinimumCostPerTrade))
	case ModelPerDollar:
		model, err = commission.NewPerEquityDollar(c.Cost.TakeOr(commission.DefaultPerDollarCost))
	case ModelZero:
		model = commission.NewNoCommission()
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedModel, "unsupported equity commission model %q", c.Model)
	}

	if err != nil {
		return nil, err
	}

	return model, nil
}

// Build creates the configured futures model. A per_contract model without
// any cost prices every contract from the default cost table.
func (c *FutureModelConfig) Build() (commission.FutureModel, error) {
	if c.Model != ModelPerContract && c.MinTradeCost.IsSome() {
		return nil, errors.Newf(errors.ErrCodeInvalidConfiguration, "min_trade_cost is not supported by %s", c.Model)
	}

	if c.Model != ModelPerContract && c.CostBySymbol != nil {
		return nil, errors.Newf(errors.ErrCodeInvalidConfiguration, "cost_by_symbol is not supported by %s", c.Model)
	}

	var (
		model commission.FutureModel
		err   error
	)

	switch c.Model {
	case ModelPerContract:
		if c.Cost.IsSome() && c.CostBySymbol != nil {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration, "cost and cost_by_symbol are mutually exclusive")
		}

		cost := commission.ContractCostBySymbol(c.CostBySymbol)
		if c.Cost.IsSome() {
			cost = commission.FlatContractCost(c.Cost.Unwrap())
		}

		model, err = commission.NewPerContract(cost, c.MinTradeCost)
	case ModelPerTrade:
		if c.Cost.IsNone() {
			return nil, errors.New(errors.ErrCodeMissingParameter, "per_trade futures model requires cost")
		}

		model, err = commission.NewPerFutureTrade(c.Cost.Unwrap())
	case ModelPerDollar:
		model, err = commission.NewPerFutureDollar(c.Cost.TakeOr(commission.DefaultPerDollarCost))
	case ModelZero:
		model = commission.NewNoCommission()
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedModel, "unsupported future commission model %q", c.Model)
	}

	if err != nil {
		return nil, err
	}

	return model, nil
}

// GenerateSchema generates a JSON schema for the CommissionConfig
func (c *CommissionConfig) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t.String() == "optional.Option[float64]" {
				return &jsonschema.Schema{
					Type: "number",
				}
			}

			if strings.Contains(t.String(), "commission.Broker") {
				return &jsonschema.Schema{
					Type: "string",
					Enum: commission.AllBrokers,
				}
			}

			return nil
		},
	}

	schema := reflector.Reflect(c)

	schema.Title = "commission-config"
	schema.Description = "Configuration schema for commission models"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for the CommissionConfig
func (c *CommissionConfig) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}

// EmptyConfig returns a CommissionConfig with default values: default per
// share pricing with a $1 minimum for equities and the default per contract
// table for futures.
func EmptyConfig() CommissionConfig {
	return CommissionConfig{
		Version: version.GetVersion(),
		Equity: &EquityModelConfig{
			Model:        ModelPerShare,
			Cost:         optional.Some(commission.DefaultPerShareCost),
			MinTradeCost: optional.Some(commission.DefaultMinimumCostPerTrade),
		},
		Future: &FutureModelConfig{
			Model:        ModelPerContract,
			Cost:         optional.None[float64](),
			MinTradeCost: optional.None[float64](),
		},
	}
}
