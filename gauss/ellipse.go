package gauss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// eigenTolerance bounds, relative to the trace, how far below zero an
// eigenvalue may fall before the covariance is rejected. Smaller negative
// values are rounding noise and are clamped to zero.
const eigenTolerance = 1e-12

// Ellipse is the kσ contour of a bivariate normal distribution.
// Width lies along the direction given by Angle, Height perpendicular to it.
type Ellipse struct {
	Center [2]float64
	Width  float64
	Height float64
	Angle  float64 // degrees, counter-clockwise from the x axis
}

// Clamped reports an eigenvalue that was clamped from a small negative value
// to zero. CovarianceEllipse returns it alongside a valid ellipse.
type Clamped struct {
	Value float64
}

// CovarianceEllipse returns the 1σ ellipse of cov centred at mean.
//
// The axes are 2·sqrt(λ) for the eigenvalues λ of cov. The eigenvector that
// lies closest to the x axis, oriented with a non-negative x component,
// determines Angle and Width. A diagonal matrix diag(a, b) therefore always
// gives Width 2√a, Height 2√b and Angle 0.
//
// The returned slice lists eigenvalues that were clamped to zero.
func CovarianceEllipse(mean [2]float64, cov [2][2]float64) (Ellipse, []Clamped, error) {
	for i := 0; i < 2; i++ {
		if !finite(mean[i]) {
			return Ellipse{}, nil, fmt.Errorf("mean[%d]: %w", i, ErrNonFinite)
		}
		for j := 0; j < 2; j++ {
			if !finite(cov[i][j]) {
				return Ellipse{}, nil, fmt.Errorf("cov[%d][%d]: %w", i, j, ErrNonFinite)
			}
		}
	}
	scale := math.Max(
		math.Max(math.Abs(cov[0][0]), math.Abs(cov[1][1])),
		math.Max(math.Abs(cov[0][1]), math.Abs(cov[1][0])))
	if math.Abs(cov[0][1]-cov[1][0]) > eigenTolerance*scale {
		return Ellipse{}, nil, ErrNotSymmetric
	}

	sym := mat.NewSymDense(2, []float64{
		cov[0][0], cov[0][1],
		cov[0][1], cov[1][1],
	})
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return Ellipse{}, nil, ErrEigen
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	var clamped []Clamped
	trace := math.Abs(cov[0][0]) + math.Abs(cov[1][1])
	for i, v := range vals {
		if v >= 0 {
			continue
		}
		if v < -eigenTolerance*trace {
			return Ellipse{}, nil, fmt.Errorf("eigenvalue %g: %w", v, ErrNotPositiveSemiDefinite)
		}
		clamped = append(clamped, Clamped{Value: v})
		vals[i] = 0
	}

	// Values are ascending; on an exact tie prefer the larger eigenvalue.
	first := 1
	if math.Abs(vecs.At(0, 0)) > math.Abs(vecs.At(0, 1)) {
		first = 0
	}
	vx, vy := vecs.At(0, first), vecs.At(1, first)
	if vx < 0 {
		vx, vy = -vx, -vy
	}
	angle := math.Atan2(vy, vx) * 180 / math.Pi
	if angle == 0 {
		angle = 0 // drop the sign of -0
	}

	return Ellipse{
		Center: mean,
		Width:  2 * math.Sqrt(vals[first]),
		Height: 2 * math.Sqrt(vals[1-first]),
		Angle:  angle,
	}, clamped, nil
}

// Scale returns the ellipse with both axes multiplied by k. Scale(2) of a 1σ
// ellipse is the 2σ ellipse.
func (e Ellipse) Scale(k float64) Ellipse {
	e.Width *= k
	e.Height *= k
	return e
}

// Outline samples n points on the ellipse boundary in data coordinates,
// starting at the end of the Width axis and running counter-clockwise.
func (e Ellipse) Outline(n int) [][2]float64 {
	if n < 3 {
		n = 3
	}
	theta := e.Angle * math.Pi / 180
	sin, cos := math.Sincos(theta)
	a, b := e.Width/2, e.Height/2

	pts := make([][2]float64, n)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		st, ct := math.Sincos(t)
		pts[i] = [2]float64{
			e.Center[0] + a*ct*cos - b*st*sin,
			e.Center[1] + a*ct*sin + b*st*cos,
		}
	}
	return pts
}
