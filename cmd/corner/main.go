// Command corner draws corner plots of two-parameter Gaussian posteriors
// read from JSON files.
//
// A posterior file looks like:
//
//	{
//	  "mean":   [1.0, 2.0],
//	  "cov":    [[1.0, 0.0], [0.0, 4.0]],
//	  "truth":  [0.5, 2.5],
//	  "labels": ["a", "b"]
//	}
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/corner"
)

// initCornerApp initializes the corner app. This function is called by
// the main function and unit tests.
func initCornerApp() *cli.App {
	return &cli.App{
		Name:     "corner",
		HelpName: "corner",
		Usage:    "draw corner plots of two-parameter Gaussian posteriors",
		Flags:    []cli.Flag{&VerboseFlag},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool(VerboseFlag.Name) {
				corner.SetLogger(slog.New(slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return nil
		},
		Commands: []*cli.Command{
			&RenderCommand,
			&HTMLCommand,
			&SummaryCommand,
		},
	}
}

func main() {
	app := initCornerApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
