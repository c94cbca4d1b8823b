package ray

import (
	"math"

	"barriercast/vmath/vec2"

	"golang.org/x/xerrors"
)

// Span is a closed interval of the ray parameter.
type Span struct {
	Lo, Hi float64
}

// UnitSpan covers every point of a segment, endpoints included.
var UnitSpan = Span{Lo: 0, Hi: 1}

// Contains reports whether x lies in s.  Both ends are inclusive, and NaN is
// never contained.
func (s Span) Contains(x float64) bool {
	return s.Lo <= x && x <= s.Hi
}

// Ray is a directed probe segment from Origin to Terminus.
type Ray struct {
	Origin   vec2.T
	Terminus vec2.T
}

// FromDirection builds the ray that starts at origin and reaches
// origin+direction*distance.  The direction doesn't need to be normalized,
// but every input must be finite, and so must the resulting terminus.
func FromDirection(origin, direction vec2.T, distance float64) (Ray, error) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return Ray{}, xerrors.Errorf("ray distance must be finite and non-negative, got %v", distance)
	}
	if !origin.IsFinite() {
		return Ray{}, xerrors.Errorf("ray origin %v is not finite", origin)
	}
	if !direction.IsFinite() {
		return Ray{}, xerrors.Errorf("ray direction %v is not finite", direction)
	}

	terminus := vec2.AddVV(origin, vec2.MulVS(direction, distance))
	if !terminus.IsFinite() {
		return Ray{}, xerrors.Errorf("ray terminus overflows: origin %v, direction %v, distance %v", origin, direction, distance)
	}

	return Ray{
		Origin:   origin,
		Terminus: terminus,
	}, nil
}

// Slope is the displacement from Origin to Terminus.
func (r Ray) Slope() vec2.T {
	return vec2.SubVV(r.Terminus, r.Origin)
}

// Eval returns the point at parameter t; Eval(0) is Origin and Eval(1) is
// Terminus.
func (r Ray) Eval(t float64) vec2.T {
	return vec2.T{
		r.Origin[0] + t*(r.Terminus[0]-r.Origin[0]),
		r.Origin[1] + t*(r.Terminus[1]-r.Origin[1]),
	}
}

// IsDegenerate reports whether the ray has zero length.
func (r Ray) IsDegenerate() bool {
	return r.Origin == r.Terminus
}
