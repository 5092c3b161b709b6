package gauss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Window is the default half-width of a parameter's display range, in
// standard deviations.
const Window = 3.5

// Summary is the marginal mean and standard deviation of one parameter.
type Summary struct {
	Mean float64
	Std  float64
}

// Std returns the standard deviation for a variance.
func Std(variance float64) (float64, error) {
	switch {
	case math.IsNaN(variance) || math.IsInf(variance, 0):
		return 0, ErrNonFinite
	case variance < 0:
		return 0, ErrNegativeVariance
	}
	return math.Sqrt(variance), nil
}

// Summarize derives both marginal summaries from a mean vector and the
// diagonal of a covariance matrix.
func Summarize(mean [2]float64, cov [2][2]float64) ([2]Summary, error) {
	var out [2]Summary
	for i := range out {
		if !finite(mean[i]) {
			return out, fmt.Errorf("mean[%d]: %w", i, ErrNonFinite)
		}
		std, err := Std(cov[i][i])
		if err != nil {
			return out, fmt.Errorf("cov[%d][%d]: %w", i, i, err)
		}
		out[i] = Summary{Mean: mean[i], Std: std}
	}
	return out, nil
}

// Bounds returns Mean ∓ k·Std.
func (s Summary) Bounds(k float64) (lo, hi float64) {
	return s.Mean - k*s.Std, s.Mean + k*s.Std
}

// Distribution returns the normal distribution described by s.
func (s Summary) Distribution() distuv.Normal {
	return distuv.Normal{Mu: s.Mean, Sigma: s.Std}
}

// Peak returns the density at the mean, 1/(σ√2π).
func (s Summary) Peak() float64 {
	return s.Distribution().Prob(s.Mean)
}

// Density evaluates the normal density of s at every x.
func (s Summary) Density(xs []float64) []float64 {
	d := s.Distribution()
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = d.Prob(x)
	}
	return ys
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n must be at least 2.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		panic(fmt.Sprintf("gauss: Linspace needs at least 2 points, got %d", n))
	}
	return floats.Span(make([]float64, n), lo, hi)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
