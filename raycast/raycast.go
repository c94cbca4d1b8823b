// Package raycast tests rays against solid line barriers in the plane.
package raycast

import (
	"fmt"
	"math"

	"barriercast/contact"
	"barriercast/geometry"
	"barriercast/ray"
	"barriercast/vmath/vec2"

	"golang.org/x/xerrors"
)

var (
	// ErrNoHit means the ray didn't hit any barrier.
	ErrNoHit = xerrors.New("ray did not hit any barrier")

	// ErrParallel means the ray and the barrier are parallel, so they can't
	// cross.  Only single-barrier casts report it.  It wraps ErrNoHit.
	ErrParallel = xerrors.Errorf("ray is parallel to barrier: %w", ErrNoHit)
)

// PreconditionError is the panic value used when a caller breaks the
// contract of a cast, for example by passing no barriers.  It is never
// returned as an error.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("raycast: %s: %s", e.Op, e.Msg)
}

// Caster runs casts with a fixed configuration.  It is safe for concurrent
// use.
type Caster struct {
	parallelEpsilon float64
}

type Option func(c *Caster)

// WithParallelEpsilon treats a ray and a barrier as parallel whenever the
// magnitude of their cross term is at most eps.  The default of 0 only
// catches exactly parallel lines.
//
// The cross term is |ray| * |barrier| * sin(angle between them), so eps is
// an absolute threshold in squared scene units.  The same eps rejects a
// smaller angle between long segments than between short ones; pick it
// relative to the segment lengths in your scene.
func WithParallelEpsilon(eps float64) Option {
	return func(c *Caster) {
		if math.IsNaN(eps) || eps < 0 {
			eps = 0
		}
		c.parallelEpsilon = eps
	}
}

func New(opts ...Option) *Caster {
	c := &Caster{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCaster = New()

// Cast tests r against a single barrier using the default Caster.
func Cast(r ray.Ray, b geometry.Barrier) (contact.RayHit, error) {
	return defaultCaster.Cast(r, b)
}

// CastWide finds the nearest barrier hit by r using the default Caster.
func CastWide(r ray.Ray, bs []geometry.Barrier) (contact.RayHit, error) {
	return defaultCaster.CastWide(r, bs)
}

// Cast tests r against a single barrier.
//
// Both are treated as parametric segments, r(t) = P1 + t*(P2-P1) and
// b(u) = P3 + u*(P4-P3), and the 2x2 system r(t) = b(u) is solved by
// Cramer's rule.  A hit requires t and u to both lie in [0, 1]; touching an
// endpoint counts.
func (c *Caster) Cast(r ray.Ray, b geometry.Barrier) (contact.RayHit, error) {
	if r.IsDegenerate() {
		return contact.RayHit{}, ErrNoHit
	}

	// With d = P2-P1, e = P4-P3 and w = P3-P1, flipping the sign of both
	// operands of each cross product gives exactly the determinants
	//
	//   den   = (P1-P2) x (P3-P4)
	//   t_num = (P1-P3) x (P3-P4)
	//   u_num = (P1-P3) x (P1-P2)
	d := r.Slope()
	e := b.Slope()
	w := vec2.SubVV(b.A, r.Origin)

	den := vec2.CProd(d, e)
	if math.Abs(den) <= c.parallelEpsilon {
		return contact.RayHit{}, ErrParallel
	}

	t := vec2.CProd(w, e) / den
	u := vec2.CProd(w, d) / den

	if !ray.UnitSpan.Contains(t) || !ray.UnitSpan.Contains(u) {
		return contact.RayHit{}, ErrNoHit
	}

	p := r.Eval(t)
	return contact.RayHit{
		Position: p,
		Distance: vec2.Distance(r.Origin, p),
		T:        t,
		U:        u,
	}, nil
}

// CastWide tests r against every barrier in bs and returns the hit closest
// to the ray's origin.  When two hits are equally close, the one that comes
// first in bs wins.  Parallel barriers count as misses.
//
// bs must not be empty; CastWide panics with a *PreconditionError if it is.
func (c *Caster) CastWide(r ray.Ray, bs []geometry.Barrier) (contact.RayHit, error) {
	if len(bs) == 0 {
		panic(&PreconditionError{Op: "CastWide", Msg: "barrier slice cannot be empty"})
	}

	var best contact.RayHit
	found := false
	for i, b := range bs {
		hit, err := c.Cast(r, b)
		if err != nil {
			continue
		}

		if !found || hit.Distance < best.Distance {
			hit.Index = i
			best = hit
			found = true
		}
	}

	if !found {
		return contact.RayHit{}, ErrNoHit
	}
	return best, nil
}

// Outcome names the result of a cast for metrics and logs: "hit",
// "parallel", or "nohit".
func Outcome(err error) string {
	switch {
	case err == nil:
		return "hit"
	case xerrors.Is(err, ErrParallel):
		return "parallel"
	default:
		return "nohit"
	}
}
