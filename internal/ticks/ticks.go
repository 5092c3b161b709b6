// Package ticks places axis ticks at "nice" values and formats their labels.
package ticks

import (
	"math"
	"strconv"
)

// steps are the mantissas a tick step may take within one decade.
var steps = [...]float64{1, 2, 2.5, 5, 10}

// Step returns the smallest nice step that splits [lo, hi] into at most n
// intervals. It returns 0 for an empty or invalid range.
func Step(lo, hi float64, n int) float64 {
	span := hi - lo
	if n < 1 || !(span > 0) || math.IsInf(span, 0) {
		return 0
	}
	raw := span / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, s := range steps {
		if s*mag >= raw*(1-1e-9) {
			return s * mag
		}
	}
	return 10 * mag
}

// Locate returns the multiples of Step(lo, hi, n) that lie in [lo, hi].
func Locate(lo, hi float64, n int) []float64 {
	step := Step(lo, hi, n)
	if step == 0 {
		return nil
	}
	tol := step * 1e-9
	first := math.Ceil((lo-tol)/step) * step

	var out []float64
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v > hi+tol {
			break
		}
		// Snap values that should be zero but carry rounding noise.
		if math.Abs(v) < tol {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

// Decimals returns how many fractional digits are needed to print every
// multiple of step exactly.
func Decimals(step float64) int {
	if !(step > 0) {
		return 0
	}
	d := 0
	for d < 12 {
		scaled := step * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-6*scaled {
			return d
		}
		d++
	}
	return d
}

// Labels formats ticks with the fixed number of decimals their spacing needs.
func Labels(ticks []float64) []string {
	if len(ticks) == 0 {
		return nil
	}
	d := 0
	if len(ticks) > 1 {
		d = Decimals(ticks[1] - ticks[0])
	} else {
		d = Decimals(math.Abs(ticks[0]))
	}
	out := make([]string, len(ticks))
	for i, v := range ticks {
		s := strconv.FormatFloat(v, 'f', d, 64)
		if s == "-"+strconv.FormatFloat(0, 'f', d, 64) {
			s = s[1:]
		}
		out[i] = s
	}
	return out
}
