package intersect

import (
	"github.com/chazu/robust3d/pkg/geom"
	"github.com/chazu/robust3d/pkg/numeric"
)

// Triangle/triangle test after Tomas Möller, "A Fast Triangle-Triangle
// Intersection Test", Journal of Graphics Tools 2(2), 1997, in its
// division-free form. The inner loop works on plain arrays and skips the
// status bookkeeping of the geom types.

type vec3[T numeric.Float] [3]T

func toVec3[T numeric.Float](p geom.Point3[T]) vec3[T] {
	return vec3[T]{p.X(), p.Y(), p.Z()}
}

func sub[T numeric.Float](a, b vec3[T]) vec3[T] {
	return vec3[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross[T numeric.Float](a, b vec3[T]) vec3[T] {
	return vec3[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot[T numeric.Float](a, b vec3[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// snap returns 0 for values approximately equal to zero.
func snap[T numeric.Float](v T) T {
	if numeric.IsEqual(v, 0) {
		return 0
	}
	return v
}

// TriangleTriangle reports whether two triangles intersect. Touching counts as
// intersecting. The result is OK, NoIntersection, or Degenerate when either
// triangle is degenerate, and does not depend on the order of the operands.
func TriangleTriangle[T numeric.Float](a, b geom.Triangle3[T]) ResultCode {
	if a.Degenerate() || b.Degenerate() {
		return Degenerate
	}
	v0, v1, v2 := toVec3(a.P1()), toVec3(a.P2()), toVec3(a.P3())
	u0, u1, u2 := toVec3(b.P1()), toVec3(b.P2()), toVec3(b.P3())
	if triTri(v0, v1, v2, u0, u1, u2) {
		return OK
	}
	return NoIntersection
}

func triTri[T numeric.Float](v0, v1, v2, u0, u1, u2 vec3[T]) bool {
	// plane of the first triangle: n1·x + d1 = 0
	n1 := cross(sub(v1, v0), sub(v2, v0))
	d1 := -dot(n1, v0)

	du0 := snap(dot(n1, u0) + d1)
	du1 := snap(dot(n1, u1) + d1)
	du2 := snap(dot(n1, u2) + d1)
	du0du1 := du0 * du1
	du0du2 := du0 * du2
	if du0du1 > 0 && du0du2 > 0 {
		return false
	}

	// plane of the second triangle
	n2 := cross(sub(u1, u0), sub(u2, u0))
	d2 := -dot(n2, u0)

	dv0 := snap(dot(n2, v0) + d2)
	dv1 := snap(dot(n2, v1) + d2)
	dv2 := snap(dot(n2, v2) + d2)
	dv0dv1 := dv0 * dv1
	dv0dv2 := dv0 * dv2
	if dv0dv1 > 0 && dv0dv2 > 0 {
		return false
	}

	// direction of the intersection line; project onto its largest axis
	d := cross(n1, n2)
	index := 0
	best := numeric.Abs(d[0])
	if bb := numeric.Abs(d[1]); bb > best {
		best, index = bb, 1
	}
	if cc := numeric.Abs(d[2]); cc > best {
		index = 2
	}

	i1, ok := interval(v0[index], v1[index], v2[index], dv0, dv1, dv2, dv0dv1, dv0dv2)
	if !ok {
		return coplanarTriTri(n1, v0, v1, v2, u0, u1, u2)
	}
	i2, ok := interval(u0[index], u1[index], u2[index], du0, du1, du2, du0du1, du0du2)
	if !ok {
		return coplanarTriTri(n1, v0, v1, v2, u0, u1, u2)
	}

	xx := i1.x0 * i1.x1
	yy := i2.x0 * i2.x1
	xxyy := xx * yy

	// each product is grouped so that swapping the triangles swaps the two
	// intervals exactly
	lo1 := i1.a*xxyy + (i1.b*i1.x1)*yy
	hi1 := i1.a*xxyy + (i1.c*i1.x0)*yy
	lo2 := i2.a*xxyy + (i2.b*i2.x1)*xx
	hi2 := i2.a*xxyy + (i2.c*i2.x0)*xx
	if lo1 > hi1 {
		lo1, hi1 = hi1, lo1
	}
	if lo2 > hi2 {
		lo2, hi2 = hi2, lo2
	}
	return !(hi1 < lo2 || hi2 < lo1)
}

// span holds the unscaled description of where one triangle crosses the
// intersection line: the interval is [a + b/x0, a + c/x1] once the divisions
// are put back.
type span[T numeric.Float] struct {
	a, b, c, x0, x1 T
}

// interval picks the vertex that is alone on its side of the other plane and
// builds the span from it. ok is false when all three distances are zero and
// the triangles are coplanar.
func interval[T numeric.Float](vv0, vv1, vv2, d0, d1, d2, d0d1, d0d2 T) (span[T], bool) {
	switch {
	case d0d1 > 0:
		// d0 and d1 on the same side, d2 on the other side or on the plane
		return span[T]{vv2, (vv0 - vv2) * d2, (vv1 - vv2) * d2, d2 - d0, d2 - d1}, true
	case d0d2 > 0:
		return span[T]{vv1, (vv0 - vv1) * d1, (vv2 - vv1) * d1, d1 - d0, d1 - d2}, true
	case d1*d2 > 0 || d0 != 0:
		return span[T]{vv0, (vv1 - vv0) * d0, (vv2 - vv0) * d0, d0 - d1, d0 - d2}, true
	case d1 != 0:
		return span[T]{vv1, (vv0 - vv1) * d1, (vv2 - vv1) * d1, d1 - d0, d1 - d2}, true
	case d2 != 0:
		return span[T]{vv2, (vv0 - vv2) * d2, (vv1 - vv2) * d2, d2 - d0, d2 - d1}, true
	}
	return span[T]{}, false
}

// coplanarTriTri projects both triangles onto the axis-aligned plane where
// they have the largest area and runs 2-D edge and containment tests there.
func coplanarTriTri[T numeric.Float](n, v0, v1, v2, u0, u1, u2 vec3[T]) bool {
	a0, a1, a2 := numeric.Abs(n[0]), numeric.Abs(n[1]), numeric.Abs(n[2])
	var i0, i1 int
	switch {
	case a0 > a1 && a0 > a2:
		i0, i1 = 1, 2
	case a0 > a1, a2 > a1:
		i0, i1 = 0, 1
	default:
		i0, i1 = 0, 2
	}
	p := projector[T]{i0, i1}

	if p.edgeAgainstEdges(v0, v1, u0, u1, u2) ||
		p.edgeAgainstEdges(v1, v2, u0, u1, u2) ||
		p.edgeAgainstEdges(v2, v0, u0, u1, u2) {
		return true
	}
	return p.pointInTri(v0, u0, u1, u2) || p.pointInTri(u0, v0, v1, v2)
}

// projector drops one coordinate, keeping axes i0 and i1.
type projector[T numeric.Float] struct {
	i0, i1 int
}

// edgeAgainstEdges tests edge v0v1 against the three edges of u.
func (p projector[T]) edgeAgainstEdges(v0, v1, u0, u1, u2 vec3[T]) bool {
	ax := v1[p.i0] - v0[p.i0]
	ay := v1[p.i1] - v0[p.i1]
	return p.edgeEdge(ax, ay, v0, u0, u1) ||
		p.edgeEdge(ax, ay, v0, u1, u2) ||
		p.edgeEdge(ax, ay, v0, u2, u0)
}

// edgeEdge is Franklin Antonio's segment test from "Faster Line Segment
// Intersection", Graphics Gems III.
func (p projector[T]) edgeEdge(ax, ay T, v0, u0, u1 vec3[T]) bool {
	bx := u0[p.i0] - u1[p.i0]
	by := u0[p.i1] - u1[p.i1]
	cx := v0[p.i0] - u0[p.i0]
	cy := v0[p.i1] - u0[p.i1]
	f := ay*bx - ax*by
	d := by*cx - bx*cy
	if (f > 0 && d >= 0 && d <= f) || (f < 0 && d <= 0 && d >= f) {
		e := ax*cy - ay*cx
		if f > 0 {
			return e >= 0 && e <= f
		}
		return e <= 0 && e >= f
	}
	return false
}

// pointInTri reports whether v0 lies strictly inside triangle u.
func (p projector[T]) pointInTri(v0, u0, u1, u2 vec3[T]) bool {
	side := func(from, to vec3[T]) T {
		a := to[p.i1] - from[p.i1]
		b := -(to[p.i0] - from[p.i0])
		c := -a*from[p.i0] - b*from[p.i1]
		return a*v0[p.i0] + b*v0[p.i1] + c
	}
	d0 := side(u0, u1)
	d1 := side(u1, u2)
	d2 := side(u2, u0)
	return d0*d1 > 0 && d0*d2 > 0
}
