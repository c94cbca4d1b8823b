package contact

import "barriercast/vmath/vec2"

// RayHit describes where a ray struck a barrier.
type RayHit struct {
	// Position is the point of intersection.
	Position vec2.T

	// Distance from the ray's origin to Position.
	Distance float64

	// T and U are the parameters of the hit along the ray and the barrier.
	// Both lie in [0, 1].
	T, U float64

	// Index of the barrier that was hit, within the slice given to a wide
	// cast.  Always 0 for a single-barrier cast.
	Index int
}
