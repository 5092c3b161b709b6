package gauss

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Abs(b))
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		mean [2]float64
		cov  [2][2]float64
		want [2]float64
	}{
		{"unit", [2]float64{0, 0}, [2][2]float64{{1, 0}, {0, 1}}, [2]float64{1, 1}},
		{"diagonal", [2]float64{1, 2}, [2][2]float64{{1, 0}, {0, 4}}, [2]float64{1, 2}},
		{"correlated", [2]float64{-3, 7}, [2][2]float64{{2.25, 0.9}, {0.9, 0.16}}, [2]float64{1.5, 0.4}},
		{"zero variance", [2]float64{5, 5}, [2][2]float64{{0, 0}, {0, 9}}, [2]float64{0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(tt.mean, tt.cov)
			if err != nil {
				t.Fatalf("Summarize: %v", err)
			}
			for i := range got {
				if got[i].Mean != tt.mean[i] {
					t.Errorf("Mean[%d] = %v, want %v", i, got[i].Mean, tt.mean[i])
				}
				if !near(got[i].Std, tt.want[i]) {
					t.Errorf("Std[%d] = %v, want %v", i, got[i].Std, tt.want[i])
				}
				if got[i].Std < 0 {
					t.Errorf("Std[%d] = %v is negative", i, got[i].Std)
				}
			}
		})
	}
}

func TestSummarizeErrors(t *testing.T) {
	tests := []struct {
		name string
		mean [2]float64
		cov  [2][2]float64
		want error
	}{
		{"negative variance", [2]float64{0, 0}, [2][2]float64{{1, 0}, {0, -1}}, ErrNegativeVariance},
		{"nan variance", [2]float64{0, 0}, [2][2]float64{{math.NaN(), 0}, {0, 1}}, ErrNonFinite},
		{"inf mean", [2]float64{math.Inf(1), 0}, [2][2]float64{{1, 0}, {0, 1}}, ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Summarize(tt.mean, tt.cov)
			if !errors.Is(err, tt.want) {
				t.Errorf("Summarize error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	s := Summary{Mean: 1, Std: 1}
	lo, hi := s.Bounds(Window)
	if lo != -2.5 || hi != 4.5 {
		t.Errorf("Bounds = [%v, %v], want [-2.5, 4.5]", lo, hi)
	}
	if !(lo < s.Mean && s.Mean < hi) {
		t.Errorf("mean %v not strictly inside [%v, %v]", s.Mean, lo, hi)
	}
	if !near(s.Mean-lo, hi-s.Mean) {
		t.Errorf("bounds not symmetric: %v vs %v", s.Mean-lo, hi-s.Mean)
	}

	s = Summary{Mean: 2, Std: 2}
	lo, hi = s.Bounds(Window)
	if lo != -5 || hi != 9 {
		t.Errorf("Bounds = [%v, %v], want [-5, 9]", lo, hi)
	}
}

func TestLinspace(t *testing.T) {
	xs := Linspace(-2.5, 4.5, 100)
	if len(xs) != 100 {
		t.Fatalf("len = %d, want 100", len(xs))
	}
	if !near(xs[0], -2.5) || !near(xs[99], 4.5) {
		t.Errorf("endpoints = %v, %v", xs[0], xs[99])
	}
	step := 7.0 / 99
	for i := 1; i < len(xs); i++ {
		if !near(xs[i]-xs[i-1], step) {
			t.Fatalf("step %d = %v, want %v", i, xs[i]-xs[i-1], step)
		}
	}
}

func TestLinspacePanicsOnShortGrid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Linspace(0, 1, 1) did not panic")
		}
	}()
	Linspace(0, 1, 1)
}

func TestDensity(t *testing.T) {
	s := Summary{Mean: 2, Std: 2}
	ys := s.Density([]float64{2, 0, 4})
	peak := 1 / (2 * math.Sqrt(2*math.Pi))
	if !near(ys[0], peak) || !near(s.Peak(), peak) {
		t.Errorf("density at mean = %v, Peak = %v, want %v", ys[0], s.Peak(), peak)
	}
	if !near(ys[1], ys[2]) {
		t.Errorf("density not symmetric: %v vs %v", ys[1], ys[2])
	}
	if !near(ys[1], peak*math.Exp(-0.5)) {
		t.Errorf("density at 1σ = %v, want %v", ys[1], peak*math.Exp(-0.5))
	}
}

func TestCovarianceEllipseDiagonal(t *testing.T) {
	tests := []struct {
		name          string
		cov           [2][2]float64
		width, height float64
	}{
		{"a > b", [2][2]float64{{9, 0}, {0, 4}}, 6, 4},
		{"a < b", [2][2]float64{{1, 0}, {0, 4}}, 2, 4},
		{"a == b", [2][2]float64{{4, 0}, {0, 4}}, 4, 4},
		{"degenerate", [2][2]float64{{4, 0}, {0, 0}}, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, clamped, err := CovarianceEllipse([2]float64{1, 2}, tt.cov)
			if err != nil {
				t.Fatalf("CovarianceEllipse: %v", err)
			}
			if len(clamped) != 0 {
				t.Errorf("clamped = %v, want none", clamped)
			}
			if e.Center != [2]float64{1, 2} {
				t.Errorf("Center = %v", e.Center)
			}
			if !near(e.Width, tt.width) || !near(e.Height, tt.height) {
				t.Errorf("Width, Height = %v, %v, want %v, %v", e.Width, e.Height, tt.width, tt.height)
			}
			if tt.name != "a == b" && e.Angle != 0 {
				t.Errorf("Angle = %v, want 0", e.Angle)
			}
		})
	}
}

func TestCovarianceEllipseCorrelated(t *testing.T) {
	cov := [2][2]float64{{3, 1}, {1, 2}}
	e, _, err := CovarianceEllipse([2]float64{0, 0}, cov)
	if err != nil {
		t.Fatalf("CovarianceEllipse: %v", err)
	}

	// The Width axis must be an eigenvector with eigenvalue (Width/2)².
	sin, cos := math.Sincos(e.Angle * math.Pi / 180)
	lambda := e.Width * e.Width / 4
	cx := cov[0][0]*cos + cov[0][1]*sin
	cy := cov[1][0]*cos + cov[1][1]*sin
	if math.Abs(cx-lambda*cos) > 1e-9 || math.Abs(cy-lambda*sin) > 1e-9 {
		t.Errorf("axis at %v° is not an eigenvector with eigenvalue %v", e.Angle, lambda)
	}

	// Eigenvalues of [[3,1],[1,2]] are (5 ± √5)/2; the larger one is nearer the x axis.
	big := (5 + math.Sqrt(5)) / 2
	small := (5 - math.Sqrt(5)) / 2
	if !near(e.Width, 2*math.Sqrt(big)) || !near(e.Height, 2*math.Sqrt(small)) {
		t.Errorf("Width, Height = %v, %v", e.Width, e.Height)
	}
	if e.Angle <= 0 || e.Angle >= 45 {
		t.Errorf("Angle = %v, want in (0, 45)", e.Angle)
	}

	// Negative correlation tilts the other way.
	e, _, err = CovarianceEllipse([2]float64{0, 0}, [2][2]float64{{3, -1}, {-1, 2}})
	if err != nil {
		t.Fatalf("CovarianceEllipse: %v", err)
	}
	if e.Angle >= 0 || e.Angle <= -45 {
		t.Errorf("Angle = %v, want in (-45, 0)", e.Angle)
	}
}

func TestCovarianceEllipseErrors(t *testing.T) {
	tests := []struct {
		name string
		cov  [2][2]float64
		want error
	}{
		{"asymmetric", [2][2]float64{{1, 0.5}, {0.2, 1}}, ErrNotSymmetric},
		{"indefinite", [2][2]float64{{1, 2}, {2, 1}}, ErrNotPositiveSemiDefinite},
		{"nan", [2][2]float64{{1, math.NaN()}, {math.NaN(), 1}}, ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := CovarianceEllipse([2]float64{0, 0}, tt.cov)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCovarianceEllipseRoundingAsymmetry(t *testing.T) {
	// Off-diagonal entries that differ only at the level of rounding noise
	// relative to the variances are symmetric.
	cov := [2][2]float64{{1, 1e-17}, {-1e-17, 4}}
	e, _, err := CovarianceEllipse([2]float64{0, 0}, cov)
	if err != nil {
		t.Fatalf("CovarianceEllipse: %v", err)
	}
	if !near(e.Width, 2) || !near(e.Height, 4) {
		t.Errorf("Width, Height = %v, %v, want 2, 4", e.Width, e.Height)
	}

	cov = [2][2]float64{{1, 0.5 + 1e-15}, {0.5, 4}}
	if _, _, err := CovarianceEllipse([2]float64{0, 0}, cov); err != nil {
		t.Errorf("CovarianceEllipse rejected near-symmetric %v: %v", cov, err)
	}
}

func TestEllipseScale(t *testing.T) {
	e, _, err := CovarianceEllipse([2]float64{1, 2}, [2][2]float64{{1, 0.3}, {0.3, 4}})
	if err != nil {
		t.Fatalf("CovarianceEllipse: %v", err)
	}
	e2 := e.Scale(2)
	if e2.Width != 2*e.Width || e2.Height != 2*e.Height {
		t.Errorf("Scale(2) = %v x %v, want %v x %v", e2.Width, e2.Height, 2*e.Width, 2*e.Height)
	}
	if e2.Angle != e.Angle || e2.Center != e.Center {
		t.Errorf("Scale changed orientation or centre: %+v vs %+v", e2, e)
	}
}

func TestEllipseOutline(t *testing.T) {
	e := Ellipse{Center: [2]float64{1, 2}, Width: 2, Height: 4}
	pts := e.Outline(4)
	want := [][2]float64{{2, 2}, {1, 4}, {0, 2}, {1, 0}}
	for i, p := range pts {
		if math.Abs(p[0]-want[i][0]) > 1e-12 || math.Abs(p[1]-want[i][1]) > 1e-12 {
			t.Errorf("pts[%d] = %v, want %v", i, p, want[i])
		}
	}

	// Rotated by 90° the Width axis points along y.
	e.Angle = 90
	p := e.Outline(8)[0]
	if math.Abs(p[0]-1) > 1e-12 || math.Abs(p[1]-3) > 1e-12 {
		t.Errorf("rotated start = %v, want [1 3]", p)
	}
}
