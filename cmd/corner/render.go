package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/gogpu/corner"
)

// RenderCommand draws a posterior into a PNG file.
var RenderCommand = cli.Command{
	Action:    renderAction,
	Name:      "render",
	Usage:     "draws the corner plot of a posterior into a PNG file",
	ArgsUsage: "<posterior.json>",
	Flags: []cli.Flag{
		&PNGOutputFlag,
		&WidthFlag,
		&HeightFlag,
		&WindowFlag,
		&SamplesFlag,
		&LevelsFlag,
	},
}

// renderAction implements the render command.
func renderAction(ctx *cli.Context) error {
	p, err := posteriorArg(ctx)
	if err != nil {
		return err
	}
	opts := append(analysisOptions(ctx),
		corner.WithSize(ctx.Int(WidthFlag.Name), ctx.Int(HeightFlag.Name)))

	fig, err := corner.Plot(p, opts...)
	if err != nil {
		return err
	}
	defer fig.Close()

	out := ctx.Path(PNGOutputFlag.Name)
	if err := fig.SavePNG(out); err != nil {
		return fmt.Errorf("failed writing %s: %w", out, err)
	}
	bold := color.New(color.Bold).SprintfFunc()
	fmt.Fprintf(ctx.App.Writer, "Rendered %s (%dx%d)\n", bold(out), fig.Layout().Width, fig.Layout().Height)
	return nil
}
