package ticks

import (
	"math"
	"reflect"
	"testing"
)

func TestStep(t *testing.T) {
	tests := []struct {
		lo, hi float64
		n      int
		want   float64
	}{
		{0, 10, 5, 2},
		{-2.5, 4.5, 5, 2},
		{-5, 9, 5, 5},
		{0, 1, 4, 0.25},
		{0, 0.07, 5, 0.02},
		{0, 1000, 4, 250},
		{1, 1, 5, 0},
		{2, 1, 5, 0},
		{0, 1, 0, 0},
	}
	for _, tt := range tests {
		got := Step(tt.lo, tt.hi, tt.n)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Step(%v, %v, %d) = %v, want %v", tt.lo, tt.hi, tt.n, got, tt.want)
		}
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		lo, hi float64
		n      int
		want   []float64
	}{
		{-2.5, 4.5, 5, []float64{-2, 0, 2, 4}},
		{-5, 9, 5, []float64{-5, 0, 5}},
		{0, 10, 5, []float64{0, 2, 4, 6, 8, 10}},
		{-0.3, 0.3, 3, []float64{-0.2, 0, 0.2}},
	}
	for _, tt := range tests {
		got := Locate(tt.lo, tt.hi, tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("Locate(%v, %v, %d) = %v, want %v", tt.lo, tt.hi, tt.n, got, tt.want)
			continue
		}
		for i := range got {
			if math.Abs(got[i]-tt.want[i]) > 1e-12 {
				t.Errorf("Locate(%v, %v, %d)[%d] = %v, want %v", tt.lo, tt.hi, tt.n, i, got[i], tt.want[i])
			}
		}
	}
	if got := Locate(1, 1, 5); got != nil {
		t.Errorf("Locate on empty range = %v, want nil", got)
	}
}

func TestLocateStaysInRange(t *testing.T) {
	lo, hi := 0.123, 0.987
	for _, v := range Locate(lo, hi, 6) {
		if v < lo || v > hi {
			t.Errorf("tick %v outside [%v, %v]", v, lo, hi)
		}
	}
}

func TestDecimals(t *testing.T) {
	tests := map[float64]int{
		1:     0,
		5:     0,
		250:   0,
		0.5:   1,
		0.25:  2,
		0.2:   1,
		0.02:  2,
		0.025: 3,
		0:     0,
	}
	for step, want := range tests {
		if got := Decimals(step); got != want {
			t.Errorf("Decimals(%v) = %d, want %d", step, got, want)
		}
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		in   []float64
		want []string
	}{
		{[]float64{-2, 0, 2, 4}, []string{"-2", "0", "2", "4"}},
		{[]float64{-0.25, 0, 0.25}, []string{"-0.25", "0.00", "0.25"}},
		{[]float64{-0.2, -1e-17, 0.2}, []string{"-0.2", "0.0", "0.2"}},
		{[]float64{1.5}, []string{"1.5"}},
		{nil, nil},
	}
	for _, tt := range tests {
		got := Labels(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Labels(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
