package main

import (
	"context"
	"fmt"
	"math"

	"github.com/rxtech-lab/argo-commission/internal/utils"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func quoteCommand() *cli.Command {
	flags := append(modelFlags(),
		&cli.StringFlag{
			Name:     "symbol",
			Aliases:  []string{"s"},
			Usage:    "Instrument symbol",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "root",
			Usage: "Root symbol of a futures contract; implies --class FUTURE",
		},
		&cli.StringFlag{
			Name:  "class",
			Usage: "Asset class (EQUITY or FUTURE)",
		},
		&cli.FloatFlag{
			Name:     "price",
			Aliases:  []string{"p"},
			Usage:    "Expected execution price",
			Required: true,
		},
		&cli.FloatFlag{
			Name:     "balance",
			Usage:    "Cash available for the order",
			Required: true,
		},
		&cli.FloatFlag{
			Name:  "percentage",
			Usage: "Fraction of the balance to spend, in (0, 1]",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "decimals",
			Usage: "Decimal places the quantity is rounded down to",
		},
	)

	return &cli.Command{
		Name:   "quote",
		Usage:  "Size the largest order a balance can pay for, commission included",
		Flags:  flags,
		Action: quoteAction,
	}
}

func quoteAction(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	price := cmd.Float("price")
	balance := cmd.Float("balance")
	percentage := cmd.Float("percentage")
	decimals := int(cmd.Int("decimals"))

	switch {
	case math.IsNaN(price) || math.IsInf(price, 0) || price <= 0:
		return errors.Newf(errors.ErrCodeInvalidParameter, "price must be positive, got %v", price)
	case math.IsNaN(balance) || math.IsInf(balance, 0) || balance < 0:
		return errors.Newf(errors.ErrCodeInvalidParameter, "balance must be a finite non-negative number, got %v", balance)
	case math.IsNaN(percentage) || percentage <= 0 || percentage > 1:
		return errors.Newf(errors.ErrCodeInvalidParameter, "percentage must be in (0, 1], got %v", percentage)
	case decimals < 0:
		return errors.Newf(errors.ErrCodeInvalidParameter, "decimals must not be negative, got %d", decimals)
	}

	models, err := loadModels(cmd, log)
	if err != nil {
		return err
	}

	asset, err := assetFromFlags(cmd)
	if err != nil {
		return err
	}

	model, err := models.ModelFor(asset)
	if err != nil {
		return err
	}

	budget := balance * percentage
	quantity := utils.RoundToDecimalPrecision(
		utils.CalculateOrderQuantityByPercentage(balance, price, model, asset, percentage),
		decimals,
	)
	charge := utils.EstimateCommission(model, asset, quantity, price)

	log.Debug("Quoted order",
		zap.String("symbol", asset.Symbol),
		zap.String("model", model.String()),
		zap.Float64("quantity", quantity),
		zap.Float64("commission", charge),
	)

	out := cmd.Root().Writer

	fmt.Fprintln(out, TitleStyle.Render("Quote"))
	fmt.Fprintln(out, renderTable(
		[]string{"Field", "Value"},
		[][]string{
			{"Model", model.String()},
			{"Symbol", asset.Symbol},
			{"Class", string(asset.Class)},
			{"Price", FormatMoney(price)},
			{"Budget", FormatMoney(budget)},
			{"Quantity", FormatQuantity(quantity)},
			{"Commission", ChargeStyle.Render(FormatMoney(charge))},
			{"Total cost", FormatMoney(quantity*price + charge)},
		},
	))

	return nil
}
