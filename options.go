package corner

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/corner/gauss"
)

// Option configures Analyze, Render and Plot.
//
// Example:
//
//	fig, err := corner.Plot(p,
//	    corner.WithSize(1200, 1200),
//	    corner.WithSigmaLevels(1, 2, 3),
//	)
type Option func(*options)

// Precision is the number of decimals printed for the mean and the
// standard deviation in a marginal panel title.
type Precision struct {
	Mean int
	Std  int
}

// DefaultPrecision holds the title precisions of parameter 0 and parameter 1.
var DefaultPrecision = [2]Precision{{Mean: 3, Std: 3}, {Mean: 6, Std: 5}}

// options holds the configuration shared by analysis and rendering.
type options struct {
	width, height int
	window        float64
	samples       int
	levels        []float64
	precision     [2]Precision

	source                         *text.FontSource
	titleSize, labelSize, tickSize float64
	maxTicks                       int
	outlinePoints                  int

	lineWidth  float64
	lineColor  gg.RGBA
	truthColor gg.RGBA
	background gg.RGBA
}

// defaultOptions returns the configuration of a plain 800x800 corner plot.
func defaultOptions() options {
	return options{
		width:         800,
		height:        800,
		window:        gauss.Window,
		samples:       100,
		levels:        []float64{1, 2},
		precision:     DefaultPrecision,
		titleSize:     15,
		labelSize:     15,
		tickSize:      12,
		maxTicks:      5,
		outlinePoints: 256,
		lineWidth:     1.5,
		lineColor:     gg.Black,
		truthColor:    gg.Hex("#1f77b4"),
		background:    gg.White,
	}
}

// newOptions applies opts over the defaults and validates the result.
func newOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return o, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.width, o.height)
	}
	if !(o.window > 0) {
		return o, fmt.Errorf("%w: window %v", ErrInvalidOption, o.window)
	}
	if o.samples < 2 {
		return o, fmt.Errorf("%w: %d samples", ErrInvalidOption, o.samples)
	}
	if len(o.levels) == 0 {
		return o, fmt.Errorf("%w: no sigma levels", ErrInvalidOption)
	}
	for _, k := range o.levels {
		if !(k > 0) {
			return o, fmt.Errorf("%w: sigma level %v", ErrInvalidOption, k)
		}
	}
	for i, p := range o.precision {
		if p.Mean < 0 || p.Std < 0 {
			return o, fmt.Errorf("%w: precision of parameter %d", ErrInvalidOption, i)
		}
	}
	if !(o.titleSize > 0 && o.labelSize > 0 && o.tickSize > 0) {
		return o, fmt.Errorf("%w: font sizes %v/%v/%v", ErrInvalidOption, o.titleSize, o.labelSize, o.tickSize)
	}
	if !(o.lineWidth > 0) {
		return o, fmt.Errorf("%w: line width %v", ErrInvalidOption, o.lineWidth)
	}
	return o, nil
}

// WithSize sets the pixel size of figures created by Plot.
// Render always uses the size of the context it draws into.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithWindow sets the half-width of each axis range in standard deviations.
// The default is gauss.Window (3.5).
func WithWindow(k float64) Option {
	return func(o *options) {
		o.window = k
	}
}

// WithSamples sets how many evenly spaced points each marginal density is
// evaluated at. The default is 100.
func WithSamples(n int) Option {
	return func(o *options) {
		o.samples = n
	}
}

// WithSigmaLevels sets the confidence ellipses drawn in the joint panel,
// as multiples of the 1σ ellipse. The default is 1 and 2.
func WithSigmaLevels(levels ...float64) Option {
	ls := append([]float64(nil), levels...)
	return func(o *options) {
		o.levels = ls
	}
}

// WithTitlePrecision sets the decimals of the title of parameter i (0 or 1).
// Other indices are ignored.
func WithTitlePrecision(i int, p Precision) Option {
	return func(o *options) {
		if i == 0 || i == 1 {
			o.precision[i] = p
		}
	}
}

// WithFontSource sets the font used for titles, labels and ticks.
// The default is Go Regular.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithFontSizes sets the title, axis label and tick label sizes in points.
func WithFontSizes(title, label, tick float64) Option {
	return func(o *options) {
		o.titleSize = title
		o.labelSize = label
		o.tickSize = tick
	}
}

// WithLineWidth sets the width of curves, ellipses and truth lines.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		o.lineWidth = w
	}
}

// WithColors sets the colour of curves and ellipses and the colour of the
// truth lines.
func WithColors(line, truth gg.RGBA) Option {
	return func(o *options) {
		o.lineColor = line
		o.truthColor = truth
	}
}

// WithBackground sets the colour Plot clears new figures with.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}
