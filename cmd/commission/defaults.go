package main

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/rxtech-lab/argo-commission/internal/commission"
	"github.com/rxtech-lab/argo-commission/internal/version"
	"github.com/urfave/cli/v3"
)

func defaultsCommand() *cli.Command {
	return &cli.Command{
		Name:  "defaults",
		Usage: "Print the default commission costs",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := cmd.Root().Writer

			fmt.Fprintln(out, TitleStyle.Render("Default costs"))
			fmt.Fprintln(out, renderTable(
				[]string{"Cost", "Value"},
				[][]string{
					{"Per share", FormatMoney(commission.DefaultPerShareCost)},
					{"Per dollar", fmt.Sprintf("%g", commission.DefaultPerDollarCost)},
					{"Minimum per trade", FormatMoney(commission.DefaultMinimumCostPerTrade)},
					{"Per future contract", FormatMoney(commission.DefaultFutureCostPerTrade)},
				},
			))

			costs := commission.DefaultFutureCostBySymbol()
			rows := make([][]string, 0, len(costs))

			for _, root := range slices.Sorted(maps.Keys(costs)) {
				rows = append(rows, []string{root, FormatMoney(costs[root])})
			}

			fmt.Fprintln(out, TitleStyle.Render("Per contract cost by root symbol"))
			fmt.Fprintln(out, renderTable([]string{"Root", "Cost"}, rows))
			fmt.Fprintln(out, HelpStyle.Render("Roots not listed cost "+FormatMoney(commission.DefaultFutureCostPerTrade)+" per contract"))

			return nil
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the library version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintln(cmd.Root().Writer, version.GetVersion())

			return nil
		},
	}
}
