package intersect

import (
	"github.com/chazu/robust3d/pkg/geom"
	"github.com/chazu/robust3d/pkg/numeric"
)

// extent selects which parameter values along a direction are accepted.
type extent int

const (
	unbounded extent = iota // line: every t
	forward                 // ray: t >= 0
	bounded                 // segment: 0 <= t <= length
)

// crossPlane intersects base + t·dir with pl. Both operands must already be
// known non-degenerate. Boundary values of t count as intersecting.
func crossPlane[T numeric.Float](pl geom.Plane[T], base geom.Point3[T], dir geom.UnitVector3[T], ext extent, length T) (geom.Point3[T], ResultCode) {
	invalid := geom.InvalidPoint3[T]()
	up := pl.Up()

	dp := dir.DotUnit(up)
	if numeric.IsEqual(dp, 0) {
		if numeric.IsEqual(geom.DistanceToPlane(base, pl), 0) {
			return invalid, Coplanar
		}
		return invalid, Parallel
	}

	// The numerator is taken from raw components so that an overflowed
	// difference keeps its sign and the range checks still see -Inf.
	t := offsetAlong(pl.Base(), base, up) / dp
	if t != t {
		return invalid, Overflow
	}
	if ext != unbounded && !numeric.IsGreaterOrEqual(t, 0) {
		return invalid, NoIntersection
	}
	if ext == bounded && !numeric.IsLessOrEqual(t, length) {
		return invalid, NoIntersection
	}
	if !numeric.IsValid(t) {
		return invalid, Overflow
	}

	pt := geom.Along(base, dir, t)
	if !pt.Valid() {
		return invalid, Overflow
	}
	return pt, OK
}

// offsetAlong returns (to - from)·u without building an intermediate Vector3.
func offsetAlong[T numeric.Float](to, from geom.Point3[T], u geom.UnitVector3[T]) T {
	tx, ty, tz := to.Components()
	fx, fy, fz := from.Components()
	ux, uy, uz := u.Components()
	return (tx-fx)*ux + (ty-fy)*uy + (tz-fz)*uz
}

// PlaneLine intersects a plane and a line.
func PlaneLine[T numeric.Float](pl geom.Plane[T], l geom.Line3[T]) (geom.Point3[T], ResultCode) {
	if pl.Degenerate() || l.Degenerate() {
		return geom.InvalidPoint3[T](), Degenerate
	}
	return crossPlane(pl, l.Base(), l.Direction(), unbounded, 0)
}

// LinePlane is PlaneLine with its operands swapped.
func LinePlane[T numeric.Float](l geom.Line3[T], pl geom.Plane[T]) (geom.Point3[T], ResultCode) {
	return PlaneLine(pl, l)
}

// PlaneRay intersects a plane and a ray. A ray that starts on the plane
// intersects it at its base.
func PlaneRay[T numeric.Float](pl geom.Plane[T], r geom.Ray3[T]) (geom.Point3[T], ResultCode) {
	if pl.Degenerate() || r.Degenerate() {
		return geom.InvalidPoint3[T](), Degenerate
	}
	return crossPlane(pl, r.Base(), r.Direction(), forward, 0)
}

// RayPlane is PlaneRay with its operands swapped.
func RayPlane[T numeric.Float](r geom.Ray3[T], pl geom.Plane[T]) (geom.Point3[T], ResultCode) {
	return PlaneRay(pl, r)
}

// PlaneSegment intersects a plane and a segment. Both endpoints count as part
// of the segment.
func PlaneSegment[T numeric.Float](pl geom.Plane[T], s geom.Segment3[T]) (geom.Point3[T], ResultCode) {
	if pl.Degenerate() || s.Degenerate() {
		return geom.InvalidPoint3[T](), Degenerate
	}
	return crossPlane(pl, s.Base(), s.Direction(), bounded, s.Length())
}

// SegmentPlane is PlaneSegment with its operands swapped.
func SegmentPlane[T numeric.Float](s geom.Segment3[T], pl geom.Plane[T]) (geom.Point3[T], ResultCode) {
	return PlaneSegment(pl, s)
}
