package corner

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Figure is a rendered corner plot that owns its drawing context.
// Figure implements io.Closer.
type Figure struct {
	dc       *gg.Context
	layout   *Layout
	analysis *Analysis
	closed   bool
}

// Ensure Figure implements io.Closer
var _ io.Closer = (*Figure)(nil)

// Plot renders p into a new context sized by WithSize (800x800 by default)
// and cleared with the background colour. Nothing is written to disk; use
// SavePNG or EncodePNG on the result.
func Plot(p Posterior, opts ...Option) (*Figure, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	a, err := analyze(p, o)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(o.width, o.height)
	dc.ClearWithColor(o.background)
	l, err := render(dc, a, o)
	if err != nil {
		_ = dc.Close()
		return nil, err
	}
	return &Figure{dc: dc, layout: l, analysis: a}, nil
}

// Context returns the drawing context, for callers that want to add to the plot.
func (f *Figure) Context() *gg.Context { return f.dc }

// Layout returns the panel geometry of the figure.
func (f *Figure) Layout() *Layout { return f.layout }

// Analysis returns the values the figure was drawn from.
func (f *Figure) Analysis() *Analysis { return f.analysis }

// Image returns the rendered image.
func (f *Figure) Image() image.Image { return f.dc.Image() }

// EncodePNG writes the figure as PNG to w.
func (f *Figure) EncodePNG(w io.Writer) error { return f.dc.EncodePNG(w) }

// SavePNG writes the figure to a PNG file.
func (f *Figure) SavePNG(path string) error { return f.dc.SavePNG(path) }

// Close releases the drawing context. Close is idempotent.
func (f *Figure) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.dc.Close()
}
