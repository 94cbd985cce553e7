package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-commission/internal/types"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func calculateCommand() *cli.Command {
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
			Name:     "amount",
			Aliases:  []string{"a"},
			Usage:    "Signed quantity of the fill",
			Required: true,
		},
		&cli.FloatFlag{
			Name:     "price",
			Aliases:  []string{"p"},
			Usage:    "Execution price",
			Required: true,
		},
		&cli.FloatFlag{
			Name:  "filled",
			Usage: "Signed quantity of the order filled before this fill",
		},
		&cli.FloatFlag{
			Name:  "commission",
			Usage: "Commission already charged on the order",
		},
		&cli.StringFlag{
			Name:  "order-id",
			Usage: "Order id (a random id is used when omitted)",
		},
	)

	return &cli.Command{
		Name:   "calculate",
		Usage:  "Price a single fill against an order",
		Flags:  flags,
		Action: calculateAction,
	}
}

func calculateAction(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	models, err := loadModels(cmd, log)
	if err != nil {
		return err
	}

	asset, err := assetFromFlags(cmd)
	if err != nil {
		return err
	}

	orderID := cmd.String("order-id")
	if orderID == "" {
		orderID = uuid.New().String()
	}

	filled := cmd.Float("filled")
	amount := cmd.Float("amount")

	order := types.Order{
		ID:         orderID,
		Asset:      asset,
		Amount:     filled + amount,
		Filled:     filled,
		Commission: cmd.Float("commission"),
	}
	if err := order.Validate(); err != nil {
		return err
	}

	tx := types.Transaction{
		OrderID: orderID,
		Asset:   asset,
		Amount:  amount,
		Price:   cmd.Float("price"),
	}
	if err := tx.Validate(); err != nil {
		return err
	}

	model, err := models.ModelFor(asset)
	if err != nil {
		return err
	}

	charge := model.Calculate(order, tx)

	log.Debug("Calculated commission",
		zap.String("order_id", orderID),
		zap.String("model", model.String()),
		zap.Float64("commission", charge),
	)

	out := cmd.Root().Writer

	fmt.Fprintln(out, TitleStyle.Render("Commission"))
	fmt.Fprintln(out, renderTable(
		[]string{"Field", "Value"},
		[][]string{
			{"Model", model.String()},
			{"Order", orderID},
			{"Symbol", asset.Symbol},
			{"Class", string(asset.Class)},
			{"Amount", FormatQuantity(amount)},
			{"Price", FormatMoney(tx.Price)},
			{"Charged before", FormatMoney(order.Commission)},
			{"Charge", ChargeStyle.Render(FormatMoney(charge))},
			{"Order total", FormatMoney(order.Commission + charge)},
		},
	))

	return nil
}

func assetFromFlags(cmd *cli.Command) (types.Asset, error) {
	symbol := cmd.String("symbol")
	root := cmd.String("root")

	class := types.AssetClass(cmd.String("class"))
	if class == "" {
		class = types.AssetClassEquity
		if root != "" {
			class = types.AssetClassFuture
		}
	}

	asset := types.Asset{Symbol: symbol, RootSymbol: root, Class: class}
	if err := asset.Validate(); err != nil {
		return types.Asset{}, errors.Wrapf(errors.ErrCodeInvalidParameter, err, "invalid instrument %s", symbol)
	}

	return asset, nil
}
