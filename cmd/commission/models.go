package main

import (
	"github.com/rxtech-lab/argo-commission/internal/commission"
	"github.com/rxtech-lab/argo-commission/internal/config"
	"github.com/rxtech-lab/argo-commission/internal/logger"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// modelFlags select the commission models for a command.
func modelFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a commission config `FILE`",
		},
		&cli.StringFlag{
			Name:    "broker",
			Aliases: []string{"b"},
			Usage:   "Broker preset (interactive_broker, zero_commission, default); ignored when --config is set",
		},
	}
}

// loadModels builds the models selected by --config or --broker, falling
// back to the default per share and per contract models.
func loadModels(cmd *cli.Command, log *logger.Logger) (commission.Set, error) {
	if path := cmd.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return commission.Set{}, err
		}

		log.Debug("Loaded commission config", zap.String("path", path))

		return cfg.Build()
	}

	if broker := cmd.String("broker"); broker != "" {
		return commission.ModelsForBroker(commission.Broker(broker))
	}

	return commission.DefaultSet(), nil
}

// newLogger returns a logger that stays quiet unless --verbose is set.
func newLogger(cmd *cli.Command) (*logger.Logger, error) {
	level := zapcore.WarnLevel
	if cmd.Bool("verbose") {
		level = zapcore.DebugLevel
	}

	return logger.NewLoggerWithLevel(level)
}
