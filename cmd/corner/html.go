package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/gogpu/corner"
	"github.com/gogpu/corner/echart"
)

// HTMLCommand writes an interactive page of a posterior.
var HTMLCommand = cli.Command{
	Action:    htmlAction,
	Name:      "html",
	Usage:     "writes the corner plot of a posterior as an interactive HTML page",
	ArgsUsage: "<posterior.json>",
	Flags: []cli.Flag{
		&HTMLOutputFlag,
		&WindowFlag,
		&SamplesFlag,
		&LevelsFlag,
	},
}

// htmlAction implements the html command.
func htmlAction(ctx *cli.Context) error {
	p, err := posteriorArg(ctx)
	if err != nil {
		return err
	}
	a, err := corner.Analyze(p, analysisOptions(ctx)...)
	if err != nil {
		return err
	}

	out := ctx.Path(HTMLOutputFlag.Name)
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed creating %s: %w", out, err)
	}
	if err := echart.Render(f, a); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed writing %s: %w", out, err)
	}
	bold := color.New(color.Bold).SprintfFunc()
	fmt.Fprintf(ctx.App.Writer, "Rendered %s\n", bold(out))
	return nil
}
