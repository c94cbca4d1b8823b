package geometry

import "barriercast/vmath/vec2"

// Barrier is a solid line segment between two endpoints.  It is the
// simplest building block for colliders.
type Barrier struct {
	A, B vec2.T
}

// Slope is the displacement from A to B.
func (b Barrier) Slope() vec2.T {
	return vec2.SubVV(b.B, b.A)
}

// IsDegenerate reports whether both endpoints coincide.  Casts against a
// degenerate barrier never hit.
func (b Barrier) IsDegenerate() bool {
	return b.A == b.B
}
