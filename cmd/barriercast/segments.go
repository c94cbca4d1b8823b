package main

import (
	"strconv"
	"strings"

	"barriercast/geometry"
	"barriercast/ray"
	"barriercast/vmath/vec2"

	"golang.org/x/xerrors"
)

// parsePoint parses "x,y".
func parsePoint(s string) (vec2.T, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return vec2.T{}, xerrors.Errorf("point %q must have the form x,y", s)
	}

	p := vec2.T{}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return vec2.T{}, xerrors.Errorf("while parsing coordinate %d of point %q: %w", i, s, err)
		}
		p[i] = v
	}

	if !p.IsFinite() {
		return vec2.T{}, xerrors.Errorf("point %q is not finite", s)
	}
	return p, nil
}

// parseEndpoints parses "x1,y1:x2,y2".
func parseEndpoints(s string) (vec2.T, vec2.T, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return vec2.T{}, vec2.T{}, xerrors.Errorf("segment %q must have the form x1,y1:x2,y2", s)
	}

	a, err := parsePoint(parts[0])
	if err != nil {
		return vec2.T{}, vec2.T{}, xerrors.Errorf("while parsing segment start: %w", err)
	}
	b, err := parsePoint(parts[1])
	if err != nil {
		return vec2.T{}, vec2.T{}, xerrors.Errorf("while parsing segment end: %w", err)
	}
	return a, b, nil
}

func parseBarrier(s string) (geometry.Barrier, error) {
	start, end, err := parseEndpoints(s)
	if err != nil {
		return geometry.Barrier{}, err
	}
	b := geometry.Barrier{A: start, B: end}
	if b.IsDegenerate() {
		return geometry.Barrier{}, xerrors.Errorf("barrier %q has coincident endpoints", s)
	}
	return b, nil
}

func parseEndpointRay(s string) (ray.Ray, error) {
	a, b, err := parseEndpoints(s)
	if err != nil {
		return ray.Ray{}, err
	}
	return ray.Ray{Origin: a, Terminus: b}, nil
}

// parseDirectionRay parses "ox,oy:dx,dy:distance".
func parseDirectionRay(s string) (ray.Ray, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return ray.Ray{}, xerrors.Errorf("ray %q must have the form ox,oy:dx,dy:distance", s)
	}

	origin, err := parsePoint(parts[0])
	if err != nil {
		return ray.Ray{}, xerrors.Errorf("while parsing ray origin: %w", err)
	}
	dir, err := parsePoint(parts[1])
	if err != nil {
		return ray.Ray{}, xerrors.Errorf("while parsing ray direction: %w", err)
	}
	dist, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return ray.Ray{}, xerrors.Errorf("while parsing ray distance: %w", err)
	}

	return ray.FromDirection(origin, dir, dist)
}

// barrierList is a repeatable flag of barriers.
type barrierList []geometry.Barrier

func (l *barrierList) String() string {
	if l == nil {
		return ""
	}
	parts := []string{}
	for _, b := range *l {
		parts = append(parts, formatSegment(b.A, b.B))
	}
	return strings.Join(parts, " ")
}

func (l *barrierList) Set(s string) error {
	b, err := parseBarrier(s)
	if err != nil {
		return err
	}
	*l = append(*l, b)
	return nil
}

// rayList is a repeatable flag of rays.  Several flags with different
// syntaxes can feed the same list.
type rayList struct {
	rays  *[]ray.Ray
	parse func(string) (ray.Ray, error)
}

func (l rayList) String() string {
	if l.rays == nil {
		return ""
	}
	parts := []string{}
	for _, r := range *l.rays {
		parts = append(parts, formatSegment(r.Origin, r.Terminus))
	}
	return strings.Join(parts, " ")
}

func (l rayList) Set(s string) error {
	r, err := l.parse(s)
	if err != nil {
		return err
	}
	*l.rays = append(*l.rays, r)
	return nil
}

func formatSegment(a, b vec2.T) string {
	return formatFloat(a[0]) + "," + formatFloat(a[1]) + ":" + formatFloat(b[0]) + "," + formatFloat(b[1])
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
