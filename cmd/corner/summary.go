package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/gogpu/corner"
)

// SummaryCommand prints the numbers behind a corner plot.
var SummaryCommand = cli.Command{
	Action:    summaryAction,
	Name:      "summary",
	Usage:     "prints marginal summaries and ellipse geometry of a posterior",
	ArgsUsage: "<posterior.json>",
	Flags: []cli.Flag{
		&WindowFlag,
		&LevelsFlag,
	},
}

// summaryAction implements the summary command.
func summaryAction(ctx *cli.Context) error {
	p, err := posteriorArg(ctx)
	if err != nil {
		return err
	}
	a, err := corner.Analyze(p,
		corner.WithWindow(ctx.Float64(WindowFlag.Name)),
		corner.WithSigmaLevels(ctx.Float64Slice(LevelsFlag.Name)...))
	if err != nil {
		return err
	}
	printSummary(ctx.App.Writer, a)
	return nil
}

// printSummary sends a table of both parameters and one line per ellipse
// into the output writer.
func printSummary(w io.Writer, a *corner.Analysis) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Parameter", "Mean", "Std", "Lower", "Upper", "Truth", "Pull"})
	tbl.SetBorder(true)
	for i, s := range a.Params {
		truth := a.Posterior.Truth[i]
		tbl.Append([]string{
			a.Posterior.Labels[i],
			num(s.Mean),
			num(s.Std),
			num(a.Ranges[i].Min),
			num(a.Ranges[i].Max),
			num(truth),
			num((truth - s.Mean) / s.Std),
		})
	}
	tbl.Render()

	bold := color.New(color.Bold).SprintfFunc()
	for i, e := range a.Ellipses {
		fmt.Fprintf(w, "%s ellipse:\twidth %s, height %s, angle %s°\n",
			bold("%gσ", a.Levels[i]), num(e.Width), num(e.Height), num(e.Angle))
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
