package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-commission/internal/fills"
	"github.com/rxtech-lab/argo-commission/internal/replay"
	"github.com/rxtech-lab/argo-commission/internal/types"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func replayCommand() *cli.Command {
	flags := append(modelFlags(),
		&cli.StringFlag{
			Name:     "fills",
			Aliases:  []string{"f"},
			Usage:    "Path to a CSV or Parquet fill `FILE`",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "symbol",
			Usage: "Only price fills for this symbol",
		},
		&cli.StringFlag{
			Name:  "order-id",
			Usage: "Only price fills for this order",
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "DuckDB database path used to read the fill file",
			Value: ":memory:",
		},
		&cli.BoolFlag{
			Name:  "details",
			Usage: "Print the commission charged on every fill",
		},
		&cli.BoolFlag{
			Name:  "progress",
			Usage: "Show a progress bar",
		},
	)

	return &cli.Command{
		Name:   "replay",
		Usage:  "Price every fill in a fill file in arrival order",
		Flags:  flags,
		Action: replayAction,
	}
}

func replayAction(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	models, err := loadModels(cmd, log)
	if err != nil {
		return err
	}

	source, err := fills.NewDuckDBSource(cmd.String("db"), log)
	if err != nil {
		return err
	}
	defer source.Close()

	if err := source.Initialize(cmd.String("fills")); err != nil {
		return err
	}

	filter := fills.Filter{
		Symbol:  optionalString(cmd.String("symbol")),
		OrderID: optionalString(cmd.String("order-id")),
	}

	count, err := source.Count(filter)
	if err != nil {
		return err
	}

	log.Info("Replaying fills", zap.String("path", cmd.String("fills")), zap.Int("count", count))

	var bar *progressbar.ProgressBar
	if cmd.Bool("progress") {
		bar = progressbar.Default(int64(count), "Pricing fills")
	}

	var details [][]string

	engine := replay.NewEngine(models, log)

	summary, err := engine.Run(ctx, source, filter, func(charge replay.Charge) {
		if bar != nil {
			_ = bar.Add(1)
		}

		if cmd.Bool("details") {
			details = append(details, []string{
				charge.Transaction.Timestamp.Format("2006-01-02 15:04:05"),
				charge.Transaction.OrderID,
				charge.Transaction.Asset.Symbol,
				FormatQuantity(charge.Transaction.Amount),
				FormatMoney(charge.Transaction.Price),
				FormatMoney(charge.Amount),
				FormatMoney(charge.Order.Commission),
			})
		}
	})
	if err != nil {
		return err
	}

	if bar != nil {
		_ = bar.Finish()
	}

	out := cmd.Root().Writer

	if len(details) > 0 {
		fmt.Fprintln(out, TitleStyle.Render("Fills"))
		fmt.Fprintln(out, renderTable(
			[]string{"Time", "Order", "Symbol", "Amount", "Price", "Charge", "Order total"},
			details,
		))
	}

	fmt.Fprintln(out, TitleStyle.Render("Orders"))
	fmt.Fprintln(out, renderTable(
		[]string{"Order", "Symbol", "Class", "Fills", "Filled", "Model", "Commission"},
		orderRows(summary),
	))

	fmt.Fprintln(out, TitleStyle.Render("Totals"))
	fmt.Fprintln(out, renderTable([]string{"Class", "Commission"}, totalRows(summary)))

	return nil
}

func orderRows(summary replay.Summary) [][]string {
	rows := make([][]string, 0, len(summary.Orders))

	for _, order := range summary.Orders {
		rows = append(rows, []string{
			order.OrderID,
			order.Asset.Symbol,
			string(order.Asset.Class),
			fmt.Sprintf("%d", order.Fills),
			FormatQuantity(order.Filled),
			order.Model,
			"$" + order.Commission.StringFixed(4),
		})
	}

	return rows
}

func totalRows(summary replay.Summary) [][]string {
	classes := make([]types.AssetClass, 0, len(summary.ByClass))
	for class := range summary.ByClass {
		classes = append(classes, class)
	}

	slices.Sort(classes)

	rows := make([][]string, 0, len(classes)+1)
	for _, class := range classes {
		rows = append(rows, []string{string(class), "$" + summary.ByClass[class].StringFixed(4)})
	}

	rows = append(rows, []string{"TOTAL", ChargeStyle.Render("$" + summary.Total.StringFixed(4))})

	return rows
}

func optionalString(v string) optional.Option[string] {
	if v == "" {
		return optional.None[string]()
	}

	return optional.Some(v)
}
