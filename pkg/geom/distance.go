package geom

import "github.com/chazu/robust3d/pkg/numeric"

// Distance returns |p-q|, or +Inf if either point is invalid or the distance
// is not representable.
func Distance[T numeric.Float](p, q Point3[T]) T {
	if !p.Valid() || !q.Valid() {
		return numeric.Infinity[T]()
	}
	return numeric.Hypot3(p.x-q.x, p.y-q.y, p.z-q.z)
}

// DistanceToPlane returns the signed distance from p to pl, positive on the
// side up points to.
func DistanceToPlane[T numeric.Float](p Point3[T], pl Plane[T]) T {
	if p.Degenerate() || pl.Degenerate() {
		return numeric.Infinity[T]()
	}
	return pl.up.Dot(p.Sub(pl.base))
}

// ClosestPointOnLine projects p onto l.
func ClosestPointOnLine[T numeric.Float](l Line3[T], p Point3[T]) Point3[T] {
	if l.Degenerate() || p.Degenerate() {
		return InvalidPoint3[T]()
	}
	f := l.direction.Dot(p.Sub(l.base))
	return l.base.Add(l.direction.Multiply(f))
}

// ClosestPointOnPlane projects p onto pl.
func ClosestPointOnPlane[T numeric.Float](pl Plane[T], p Point3[T]) Point3[T] {
	if pl.Degenerate() || p.Degenerate() {
		return InvalidPoint3[T]()
	}
	d := DistanceToPlane(p, pl)
	return p.SubVector(pl.up.Multiply(d))
}

// UnitNormal returns the normal of t by the right-hand rule on p1→p2→p3.
// A degenerate triangle has no normal.
func UnitNormal[T numeric.Float](t Triangle3[T]) UnitVector3[T] {
	if t.Degenerate() {
		return InvalidUnitVector3[T]()
	}
	n := t.p2.Sub(t.p1).Cross(t.p3.Sub(t.p1))
	if !n.Valid() {
		return InvalidUnitVector3[T]()
	}
	return MakeUnitVector3(n)
}

// Area returns the area of t. An invalid triangle has area +Inf; a valid but
// degenerate one has area 0.
func Area[T numeric.Float](t Triangle3[T]) T {
	if !t.Valid() {
		return numeric.Infinity[T]()
	}
	if t.Degenerate() {
		return 0
	}
	return rawArea(t.p1, t.p2, t.p3)
}

// Centroid returns the mean of the vertices of t. Degenerate triangles still
// have a centroid.
func Centroid[T numeric.Float](t Triangle3[T]) Point3[T] {
	if !t.Valid() {
		return InvalidPoint3[T]()
	}
	return NewPoint3(
		(t.p1.x+t.p2.x+t.p3.x)/3,
		(t.p1.y+t.p2.y+t.p3.y)/3,
		(t.p1.z+t.p2.z+t.p3.z)/3,
	)
}
