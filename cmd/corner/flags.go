package main

import (
	"github.com/urfave/cli/v2"

	"github.com/gogpu/corner/gauss"
)

var (
	VerboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "log debug information to stderr",
	}
	PNGOutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output PNG file",
		Value:   "corner.png",
	}
	HTMLOutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output HTML file",
		Value:   "corner.html",
	}
	WidthFlag = cli.IntFlag{
		Name:  "width",
		Usage: "image width in pixels",
		Value: 800,
	}
	HeightFlag = cli.IntFlag{
		Name:  "height",
		Usage: "image height in pixels",
		Value: 800,
	}
	WindowFlag = cli.Float64Flag{
		Name:  "window",
		Usage: "half-width of each axis in standard deviations",
		Value: gauss.Window,
	}
	SamplesFlag = cli.IntFlag{
		Name:  "samples",
		Usage: "number of points each marginal density is evaluated at",
		Value: 100,
	}
	LevelsFlag = cli.Float64SliceFlag{
		Name:  "levels",
		Usage: "confidence ellipses to draw, in multiples of σ",
		Value: cli.NewFloat64Slice(1, 2),
	}
)
