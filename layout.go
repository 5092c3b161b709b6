package corner

// Subplot margins as fractions of the figure size.
const (
	marginLeft   = 0.125
	marginRight  = 0.9
	marginBottom = 0.11
	marginTop    = 0.88

	// densityHeadroom leaves space above the peak of a marginal curve.
	densityHeadroom = 1.05
)

// Rect is an axis-aligned rectangle in pixel coordinates, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the pixel (px, py) lies inside r.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Center returns the centre of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Panel maps a data window onto a pixel rectangle.
type Panel struct {
	Rect Rect
	X    Range
	Y    Range
}

// Map converts data coordinates to pixel coordinates. Y grows upwards in
// data space and downwards in pixel space.
func (p Panel) Map(x, y float64) (px, py float64) {
	px = p.Rect.X + (x-p.X.Min)/p.X.Span()*p.Rect.W
	py = p.Rect.Y + p.Rect.H - (y-p.Y.Min)/p.Y.Span()*p.Rect.H
	return px, py
}

// Layout is the 2x2 grid of a corner plot. Cells touch with no spacing.
// The top-right cell is left empty.
type Layout struct {
	Width  int
	Height int

	// Marginal[0] is the top-left cell, Marginal[1] the bottom-right one.
	// Both put the parameter on the horizontal axis and density on the vertical.
	Marginal [2]Panel

	// Joint is the bottom-left cell: parameter 0 across, parameter 1 up.
	Joint Panel

	// Empty is the unused top-right cell.
	Empty Rect
}

func newLayout(width, height int, a *Analysis) *Layout {
	w, h := float64(width), float64(height)
	x0 := marginLeft * w
	y0 := (1 - marginTop) * h
	cw := (marginRight - marginLeft) * w / 2
	ch := (marginTop - marginBottom) * h / 2

	density := func(i int) Range {
		return Range{Min: 0, Max: a.Curves[i].Peak * densityHeadroom}
	}

	return &Layout{
		Width:  width,
		Height: height,
		Marginal: [2]Panel{
			{Rect: Rect{X: x0, Y: y0, W: cw, H: ch}, X: a.Ranges[0], Y: density(0)},
			{Rect: Rect{X: x0 + cw, Y: y0 + ch, W: cw, H: ch}, X: a.Ranges[1], Y: density(1)},
		},
		Joint: Panel{Rect: Rect{X: x0, Y: y0 + ch, W: cw, H: ch}, X: a.Ranges[0], Y: a.Ranges[1]},
		Empty: Rect{X: x0 + cw, Y: y0, W: cw, H: ch},
	}
}
