package main

import (
	"context"
	"log"
	"os"

	"github.com/rxtech-lab/argo-commission/internal/version"
	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "commission",
		Usage:   "Price brokerage commission on order fills",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log every priced fill",
			},
		},
		Commands: []*cli.Command{
			calculateCommand(),
			quoteCommand(),
			replayCommand(),
			schemaCommand(),
			defaultsCommand(),
			versionCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(ErrorStyle.Render(err.Error()))
	}
}
