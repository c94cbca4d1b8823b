package vec2

import "math"

// T is a point or displacement in the plane.
type T [2]float64

func (v T) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1])
}

func (v T) IsFinite() bool {
	return !math.IsInf(v[0], 0) && !math.IsInf(v[1], 0) && !math.IsNaN(v[0]) && !math.IsNaN(v[1])
}

func AddVV(a, b T) T {
	return T{
		a[0] + b[0],
		a[1] + b[1],
	}
}

func SubVV(a, b T) T {
	return T{
		a[0] - b[0],
		a[1] - b[1],
	}
}

func MulVS(a T, b float64) T {
	return T{
		a[0] * b,
		a[1] * b,
	}
}

// CProd returns the z component of the cross product of a and b, treated as
// vectors in the xy plane.
func CProd(a, b T) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b T) float64 {
	return SubVV(b, a).Norm()
}
