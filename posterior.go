package corner

import (
	"fmt"
	"math"

	"github.com/gogpu/corner/gauss"
)

// Posterior is a Gaussian summary of two parameters together with the values
// they are known to take and the names to print on the axes.
type Posterior struct {
	Mean   [2]float64    `json:"mean"`
	Cov    [2][2]float64 `json:"cov"`
	Truth  [2]float64    `json:"truth"`
	Labels [2]string     `json:"labels"`
}

// Range is a closed interval of data values.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Contains reports whether v lies in the range.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Curve is a marginal density sampled on an evenly spaced grid.
type Curve struct {
	X    []float64
	Y    []float64
	Peak float64
}

// Analysis holds everything derived from a Posterior before anything is drawn.
// Both the raster renderer and the echart package consume it.
type Analysis struct {
	Posterior Posterior
	Params    [2]gauss.Summary
	Ranges    [2]Range
	Curves    [2]Curve

	// Levels[i] is the sigma multiple of Ellipses[i].
	Levels   []float64
	Ellipses []gauss.Ellipse

	Titles [2]string
}

// Title formats a marginal panel title as "<label>=<mean>±<std>".
func Title(label string, s gauss.Summary, p Precision) string {
	return fmt.Sprintf("%s=%.*f±%.*f", label, p.Mean, s.Mean, p.Std, s.Std)
}

// Analyze validates p and derives the summaries, axis ranges, density
// curves, confidence ellipses and titles of its corner plot.
func Analyze(p Posterior, opts ...Option) (*Analysis, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return analyze(p, o)
}

func analyze(p Posterior, o options) (*Analysis, error) {
	params, err := gauss.Summarize(p.Mean, p.Cov)
	if err != nil {
		return nil, fmt.Errorf("corner: %w", err)
	}
	for i, s := range params {
		if s.Std == 0 {
			return nil, fmt.Errorf("corner: parameter %d (%s): %w", i, p.Labels[i], ErrZeroVariance)
		}
		if math.IsNaN(p.Truth[i]) || math.IsInf(p.Truth[i], 0) {
			return nil, fmt.Errorf("corner: truth[%d]: %w", i, gauss.ErrNonFinite)
		}
	}

	ellipse, clamped, err := gauss.CovarianceEllipse(p.Mean, p.Cov)
	if err != nil {
		return nil, fmt.Errorf("corner: %w", err)
	}
	for _, c := range clamped {
		Logger().Warn("corner: clamped negative eigenvalue", "value", c.Value)
	}

	a := &Analysis{
		Posterior: p,
		Params:    params,
		Levels:    append([]float64(nil), o.levels...),
	}
	for i, s := range params {
		lo, hi := s.Bounds(o.window)
		a.Ranges[i] = Range{Min: lo, Max: hi}
		xs := gauss.Linspace(lo, hi, o.samples)
		a.Curves[i] = Curve{X: xs, Y: s.Density(xs), Peak: s.Peak()}
		a.Titles[i] = Title(p.Labels[i], s, o.precision[i])
	}
	for _, k := range o.levels {
		a.Ellipses = append(a.Ellipses, ellipse.Scale(k))
	}

	Logger().Debug("corner: analysis",
		"std0", params[0].Std,
		"std1", params[1].Std,
		"width", ellipse.Width,
		"height", ellipse.Height,
		"angle", ellipse.Angle)
	return a, nil
}
