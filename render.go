package corner

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/corner/internal/ticks"
)

// Tick and label spacing in pixels.
const (
	tickLength = 4
	tickPad    = 4
	labelGap   = 6
	titleGap   = 6
	frameWidth = 1
)

// Render draws the corner plot of p into dc, filling the area inside the
// figure margins. The top-right cell is left untouched.
//
// Render always draws in device space over the whole of dc: the current
// transform of dc is ignored. To place a plot inside a larger canvas, render
// it into its own context and draw that image onto the canvas.
//
// Render discards any pending path on dc. It leaves the transform, clip,
// stroke style, brush and font of dc as it found them.
func Render(dc *gg.Context, p Posterior, opts ...Option) (*Layout, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	a, err := analyze(p, o)
	if err != nil {
		return nil, err
	}
	return render(dc, a, o)
}

// renderer draws one analysis into one context.
type renderer struct {
	dc *gg.Context
	o  options

	titleFace text.Face
	labelFace text.Face
	tickFace  text.Face
}

func render(dc *gg.Context, a *Analysis, o options) (*Layout, error) {
	if dc.Width() <= 0 || dc.Height() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, dc.Width(), dc.Height())
	}
	src := o.source
	if src == nil {
		var err error
		if src, err = defaultFontSource(); err != nil {
			return nil, fmt.Errorf("corner: load default font: %w", err)
		}
	}

	l := newLayout(dc.Width(), dc.Height(), a)
	Logger().Debug("corner: layout",
		"width", l.Width,
		"height", l.Height,
		"cell_w", l.Joint.Rect.W,
		"cell_h", l.Joint.Rect.H)

	font, stroke, brush := dc.Font(), dc.GetStroke(), dc.FillBrush()
	dc.Push()
	defer func() {
		dc.Pop()
		dc.SetFont(font)
		dc.SetStroke(stroke)
		dc.SetFillBrush(brush)
	}()
	dc.Identity()
	dc.ClearPath()

	r := &renderer{
		dc:        dc,
		o:         o,
		titleFace: src.Face(o.titleSize),
		labelFace: src.Face(o.labelSize),
		tickFace:  src.Face(o.tickSize),
	}
	p := a.Posterior

	steps := []func() error{
		func() error { return r.marginal(l.Marginal[0], a.Curves[0], p.Truth[0]) },
		func() error { return r.joint(l.Joint, a) },
		func() error { return r.marginal(l.Marginal[1], a.Curves[1], p.Truth[1]) },
		func() error {
			// Parameter 0 shares its axis with the joint panel below: no labels.
			if _, err := r.xTicks(l.Marginal[0], false); err != nil {
				return err
			}
			_, err := r.yTicks(l.Marginal[0], false)
			return err
		},
		func() error {
			ext, err := r.xTicks(l.Marginal[1], true)
			if err != nil {
				return err
			}
			if _, err := r.yTicks(l.Marginal[1], false); err != nil {
				return err
			}
			r.xLabel(l.Marginal[1], p.Labels[1], ext)
			return nil
		},
		func() error {
			xext, err := r.xTicks(l.Joint, true)
			if err != nil {
				return err
			}
			yext, err := r.yTicks(l.Joint, true)
			if err != nil {
				return err
			}
			r.xLabel(l.Joint, p.Labels[0], xext)
			r.yLabel(l.Joint, p.Labels[1], yext)
			return nil
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, fmt.Errorf("corner: render: %w", err)
		}
	}
	r.title(l.Marginal[0], a.Titles[0])
	r.title(l.Marginal[1], a.Titles[1])
	return l, nil
}

// marginal draws a density curve, the truth line and the panel frame.
func (r *renderer) marginal(p Panel, c Curve, truth float64) error {
	pts := make([][2]float64, len(c.X))
	for i := range c.X {
		pts[i] = [2]float64{c.X[i], c.Y[i]}
	}
	if err := r.polyline(p, pts, false); err != nil {
		return err
	}
	if err := r.vline(p, truth); err != nil {
		return err
	}
	return r.frame(p)
}

// joint draws the confidence ellipses, the truth crosshair and the frame.
func (r *renderer) joint(p Panel, a *Analysis) error {
	for _, e := range a.Ellipses {
		if err := r.polyline(p, e.Outline(r.o.outlinePoints), true); err != nil {
			return err
		}
	}
	if err := r.vline(p, a.Posterior.Truth[0]); err != nil {
		return err
	}
	if err := r.hline(p, a.Posterior.Truth[1]); err != nil {
		return err
	}
	return r.frame(p)
}

func (r *renderer) stroke(col gg.RGBA, width float64) error {
	r.dc.SetColor(col.Color())
	r.dc.SetLineWidth(width)
	return r.dc.Stroke()
}

// polyline strokes pts, given in data coordinates, clipped to the panel.
func (r *renderer) polyline(p Panel, pts [][2]float64, closed bool) error {
	if len(pts) == 0 {
		return nil
	}
	r.dc.Push()
	defer r.dc.Pop()
	r.dc.ClipRect(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H)
	for i, pt := range pts {
		px, py := p.Map(pt[0], pt[1])
		if i == 0 {
			r.dc.MoveTo(px, py)
		} else {
			r.dc.LineTo(px, py)
		}
	}
	if closed {
		r.dc.ClosePath()
	}
	return r.stroke(r.o.lineColor, r.o.lineWidth)
}

// vline draws a vertical truth line at data x. Values outside the window
// are not drawn.
func (r *renderer) vline(p Panel, x float64) error {
	if !p.X.Contains(x) {
		return nil
	}
	px, _ := p.Map(x, p.Y.Min)
	r.dc.DrawLine(px, p.Rect.Y, px, p.Rect.Y+p.Rect.H)
	return r.stroke(r.o.truthColor, r.o.lineWidth)
}

// hline draws a horizontal truth line at data y.
func (r *renderer) hline(p Panel, y float64) error {
	if !p.Y.Contains(y) {
		return nil
	}
	_, py := p.Map(p.X.Min, y)
	r.dc.DrawLine(p.Rect.X, py, p.Rect.X+p.Rect.W, py)
	return r.stroke(r.o.truthColor, r.o.lineWidth)
}

func (r *renderer) frame(p Panel) error {
	r.dc.DrawRectangle(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H)
	return r.stroke(r.o.lineColor, frameWidth)
}

// xTicks draws inward tick marks on the bottom edge and, if labels is set,
// tick labels rotated by 45°. It returns how far the labels reach below
// the edge.
func (r *renderer) xTicks(p Panel, labels bool) (float64, error) {
	vals := ticks.Locate(p.X.Min, p.X.Max, r.o.maxTicks)
	bottom := p.Rect.Y + p.Rect.H
	for _, v := range vals {
		px, _ := p.Map(v, p.Y.Min)
		r.dc.DrawLine(px, bottom, px, bottom-tickLength)
	}
	if err := r.stroke(r.o.lineColor, frameWidth); err != nil {
		return 0, err
	}
	if !labels {
		return 0, nil
	}

	r.dc.SetFont(r.tickFace)
	r.dc.SetColor(r.o.lineColor.Color())
	var reach float64
	for i, s := range ticks.Labels(vals) {
		px, _ := p.Map(vals[i], p.Y.Min)
		r.rotated(s, px, bottom+tickPad, -math.Pi/4, 1, 0.5)
		reach = math.Max(reach, diagonalReach(r.dc.MeasureString(s)))
	}
	return reach + tickPad, nil
}

// yTicks is xTicks for the left edge.
func (r *renderer) yTicks(p Panel, labels bool) (float64, error) {
	vals := ticks.Locate(p.Y.Min, p.Y.Max, r.o.maxTicks)
	left := p.Rect.X
	for _, v := range vals {
		_, py := p.Map(p.X.Min, v)
		r.dc.DrawLine(left, py, left+tickLength, py)
	}
	if err := r.stroke(r.o.lineColor, frameWidth); err != nil {
		return 0, err
	}
	if !labels {
		return 0, nil
	}

	r.dc.SetFont(r.tickFace)
	r.dc.SetColor(r.o.lineColor.Color())
	var reach float64
	for i, s := range ticks.Labels(vals) {
		_, py := p.Map(p.X.Min, vals[i])
		r.rotated(s, left-tickPad, py, -math.Pi/4, 1, 0.5)
		reach = math.Max(reach, diagonalReach(r.dc.MeasureString(s)))
	}
	return reach + tickPad, nil
}

// diagonalReach is the axis-aligned extent of a w x h label turned by 45°.
func diagonalReach(w, h float64) float64 {
	return (w + h) * math.Sqrt2 / 2
}

func (r *renderer) rotated(s string, x, y, angle, ax, ay float64) {
	r.dc.Push()
	r.dc.RotateAbout(angle, x, y)
	r.dc.DrawStringAnchored(s, x, y, ax, ay)
	r.dc.Pop()
}

func (r *renderer) xLabel(p Panel, s string, reach float64) {
	cx, _ := p.Rect.Center()
	r.dc.SetFont(r.labelFace)
	r.dc.SetColor(r.o.lineColor.Color())
	r.dc.DrawStringAnchored(s, cx, p.Rect.Y+p.Rect.H+reach+labelGap, 0.5, 1)
}

func (r *renderer) yLabel(p Panel, s string, reach float64) {
	_, cy := p.Rect.Center()
	r.dc.SetFont(r.labelFace)
	r.dc.SetColor(r.o.lineColor.Color())
	r.rotated(s, p.Rect.X-reach-labelGap, cy, -math.Pi/2, 0.5, 0)
}

func (r *renderer) title(p Panel, s string) {
	cx, _ := p.Rect.Center()
	r.dc.SetFont(r.titleFace)
	r.dc.SetColor(r.o.lineColor.Color())
	r.dc.DrawStringAnchored(s, cx, p.Rect.Y-titleGap, 0.5, 0)
}
