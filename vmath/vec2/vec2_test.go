package vec2

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	testCases := []struct {
		name string
		a, b T
		want float64
	}{
		{name: "same point", a: T{3, 4}, b: T{3, 4}, want: 0},
		{name: "axis aligned", a: T{0, 0}, b: T{0, 2}, want: 2},
		{name: "3-4-5", a: T{1, 1}, b: T{4, 5}, want: 5},
		{name: "diagonal", a: T{0, 0}, b: T{5, 5}, want: math.Sqrt(50)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Bad distance; got %v, want %v", got, tc.want)
			}
			if got := Distance(tc.b, tc.a); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Distance isn't symmetric; got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCProd(t *testing.T) {
	if got := CProd(T{1, 0}, T{0, 1}); got != 1 {
		t.Errorf("Bad cross product of x and y; got %v, want 1", got)
	}
	if got := CProd(T{2, 2}, T{4, 4}); got != 0 {
		t.Errorf("Cross product of parallel vectors is nonzero; got %v", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !(T{1, -1}).IsFinite() {
		t.Errorf("Ordinary vector reported as non-finite")
	}
	if (T{math.Inf(1), 0}).IsFinite() {
		t.Errorf("Infinite vector reported as finite")
	}
	if (T{0, math.NaN()}).IsFinite() {
		t.Errorf("NaN vector reported as finite")
	}
}
