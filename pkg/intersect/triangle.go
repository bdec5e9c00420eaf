package intersect

import (
	"github.com/chazu/robust3d/pkg/geom"
	"github.com/chazu/robust3d/pkg/numeric"
)

// barycentric runs the Möller–Trumbore test of base + t·dir against tri and
// returns the parameter t of the crossing. Both operands must already be
// known non-degenerate. The code is OK, Coplanar or NoIntersection.
func barycentric[T numeric.Float](tri geom.Triangle3[T], base geom.Point3[T], dir geom.UnitVector3[T]) (T, ResultCode) {
	p1 := tri.P1()
	edge1 := tri.P2().Sub(p1)
	edge2 := tri.P3().Sub(p1)

	pvec := dir.Cross(edge2)
	det := edge1.Dot(pvec)
	if numeric.IsEqual(det, 0) {
		return 0, Coplanar
	}

	tvec := base.Sub(p1)
	u := tvec.Dot(pvec) / det
	if !(numeric.IsGreaterOrEqual(u, 0) && numeric.IsLessOrEqual(u, 1)) {
		return 0, NoIntersection
	}

	qvec := tvec.Cross(edge1)
	v := dir.Dot(qvec) / det
	if !(numeric.IsGreaterOrEqual(v, 0) && numeric.IsLessOrEqual(u+v, 1)) {
		return 0, NoIntersection
	}

	return edge2.Dot(qvec) / det, OK
}

// TriangleRay intersects a triangle and a ray. Hits on the triangle's edges
// and at the ray's base count.
func TriangleRay[T numeric.Float](tri geom.Triangle3[T], r geom.Ray3[T]) (geom.Point3[T], ResultCode) {
	invalid := geom.InvalidPoint3[T]()
	if tri.Degenerate() || r.Degenerate() {
		return invalid, Degenerate
	}
	t, code := barycentric(tri, r.Base(), r.Direction())
	if code != OK {
		return invalid, code
	}
	if !numeric.IsGreaterOrEqual(t, 0) {
		return invalid, NoIntersection
	}
	pt := geom.Along(r.Base(), r.Direction(), t)
	if !pt.Valid() {
		return invalid, Overflow
	}
	return pt, OK
}

// RayTriangle is TriangleRay with its operands swapped.
func RayTriangle[T numeric.Float](r geom.Ray3[T], tri geom.Triangle3[T]) (geom.Point3[T], ResultCode) {
	return TriangleRay(tri, r)
}

// TriangleLine intersects a triangle and a line.
func TriangleLine[T numeric.Float](tri geom.Triangle3[T], l geom.Line3[T]) (geom.Point3[T], ResultCode) {
	invalid := geom.InvalidPoint3[T]()
	if tri.Degenerate() || l.Degenerate() {
		return invalid, Degenerate
	}
	t, code := barycentric(tri, l.Base(), l.Direction())
	if code != OK {
		return invalid, code
	}
	pt := geom.Along(l.Base(), l.Direction(), t)
	if !pt.Valid() {
		return invalid, Overflow
	}
	return pt, OK
}

// LineTriangle is TriangleLine with its operands swapped.
func LineTriangle[T numeric.Float](l geom.Line3[T], tri geom.Triangle3[T]) (geom.Point3[T], ResultCode) {
	return TriangleLine(tri, l)
}

// TriangleSegment intersects a triangle and a segment. Unlike the other
// point-returning functions, an Overflow result carries the raw computed
// point rather than the invalid sentinel whenever the crossing parameter
// itself was finite.
func TriangleSegment[T numeric.Float](tri geom.Triangle3[T], s geom.Segment3[T]) (geom.Point3[T], ResultCode) {
	invalid := geom.InvalidPoint3[T]()
	if tri.Degenerate() || s.Degenerate() {
		return invalid, Degenerate
	}
	dir := s.Direction()
	t, code := barycentric(tri, s.Base(), dir)
	if code != OK {
		return invalid, code
	}
	if !numeric.IsValid(t) {
		return invalid, Overflow
	}
	if !numeric.IsGreaterOrEqual(t, 0) {
		return invalid, NoIntersection
	}

	pt := geom.Along(s.Base(), dir, t)
	// The true hit lies inside a triangle with finite vertices, so this only
	// fires when rounding pushes a component just past MaxValue.
	if !pt.Valid() {
		return pt, Overflow
	}
	if !numeric.IsLessOrEqual(geom.Distance(pt, s.Base()), s.Length()) {
		return invalid, NoIntersection
	}
	return pt, OK
}

// SegmentTriangle is TriangleSegment with its operands swapped.
func SegmentTriangle[T numeric.Float](s geom.Segment3[T], tri geom.Triangle3[T]) (geom.Point3[T], ResultCode) {
	return TriangleSegment(tri, s)
}

// TrianglePlane reports whether a triangle crosses or touches a plane by
// testing its three edges as segments. The result is OK if any edge
// intersects, otherwise Overflow if any edge overflowed, Coplanar or Parallel
// if all three edges agree on it, and NoIntersection in every other case.
func TrianglePlane[T numeric.Float](tri geom.Triangle3[T], pl geom.Plane[T]) ResultCode {
	if tri.Degenerate() || pl.Degenerate() {
		return Degenerate
	}

	var codes [3]ResultCode
	v := tri.Vertices()
	for i := range v {
		_, codes[i] = PlaneSegment(pl, geom.NewSegment3(v[i], v[(i+1)%3]))
	}

	count := func(want ResultCode) int {
		n := 0
		for _, c := range codes {
			if c == want {
				n++
			}
		}
		return n
	}
	switch {
	case count(OK) > 0:
		return OK
	case count(Overflow) > 0:
		return Overflow
	case count(Coplanar) == 3:
		return Coplanar
	case count(Parallel) == 3:
		return Parallel
	}
	return NoIntersection
}

// PlaneTriangle is TrianglePlane with its operands swapped.
func PlaneTriangle[T numeric.Float](pl geom.Plane[T], tri geom.Triangle3[T]) ResultCode {
	return TrianglePlane(tri, pl)
}
