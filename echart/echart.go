// Package echart renders a corner plot analysis as an interactive HTML page
// built on Apache ECharts: one line chart per marginal density and one for
// the joint confidence ellipses.
package echart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/gogpu/corner"
)

// Series names shared by all charts.
const (
	densitySeries = "density"
	truthSeries   = "truth"
)

// chartSize is the pixel size of each chart on the page.
const chartSize = "520px"

// Render writes the page for a to w.
func Render(w io.Writer, a *corner.Analysis) error {
	if err := Page(a).Render(w); err != nil {
		return fmt.Errorf("echart: render: %w", err)
	}
	return nil
}

// Page returns the marginal charts of both parameters and the joint chart.
func Page(a *corner.Analysis) *components.Page {
	page := components.NewPage()
	page.AddCharts(Marginal(a, 0), Joint(a), Marginal(a, 1))
	return page
}

// Marginal returns the density curve of parameter i with its truth line.
func Marginal(a *corner.Analysis, i int) *charts.Line {
	c := a.Curves[i]
	label := a.Posterior.Labels[i]
	top := c.Peak * 1.05

	chart := newChart(a.Titles[i], "marginal density of "+label)
	chart.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{
			Name: label,
			Type: "value",
			Min:  a.Ranges[i].Min,
			Max:  a.Ranges[i].Max,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "density",
			Type: "value",
			Min:  0,
			Max:  top,
		}),
	)

	density := make([][2]float64, len(c.X))
	for j := range c.X {
		density[j] = [2]float64{c.X[j], c.Y[j]}
	}
	t := a.Posterior.Truth[i]
	chart.AddSeries(densitySeries, lineData(density)).
		AddSeries(truthSeries, lineData([][2]float64{{t, 0}, {t, top}}))
	return chart
}

// Joint returns the confidence ellipses with the truth crosshair.
func Joint(a *corner.Analysis) *charts.Line {
	p := a.Posterior
	x, y := a.Ranges[0], a.Ranges[1]

	chart := newChart(fmt.Sprintf("%s vs %s", p.Labels[1], p.Labels[0]), "confidence ellipses")
	chart.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: p.Labels[0], Type: "value", Min: x.Min, Max: x.Max}),
		charts.WithYAxisOpts(opts.YAxis{Name: p.Labels[1], Type: "value", Min: y.Min, Max: y.Max}),
	)

	for i, e := range a.Ellipses {
		outline := e.Outline(128)
		outline = append(outline, outline[0])
		chart.AddSeries(fmt.Sprintf("%gσ", a.Levels[i]), lineData(outline))
	}
	chart.AddSeries(truthSeries+" "+p.Labels[0], lineData([][2]float64{{p.Truth[0], y.Min}, {p.Truth[0], y.Max}})).
		AddSeries(truthSeries+" "+p.Labels[1], lineData([][2]float64{{x.Min, p.Truth[1]}, {x.Max, p.Truth[1]}}))
	return chart
}

func newChart(title, subtitle string) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Corner plot",
			Width:     chartSize,
			Height:    chartSize,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
	)
	return chart
}

// lineData converts points to chart points.
func lineData(pts [][2]float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(pts))
	for _, pt := range pts {
		items = append(items, opts.LineData{Value: pt})
	}
	return items
}
