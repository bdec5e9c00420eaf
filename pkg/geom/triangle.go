package geom

import (
	"fmt"

	"github.com/chazu/robust3d/pkg/numeric"
)

// Triangle3 is the triangle p1, p2, p3. The winding p1→p2→p3 defines the
// direction of its normal.
type Triangle3[T numeric.Float] struct {
	state
	p1, p2, p3 Point3[T]
}

// NewTriangle3 returns the triangle with the given vertices.
//
// The triangle is degenerate if any of these probes fails:
//   - every edge has a finite, nonzero length
//   - the area is finite and nonzero
//   - none of the three vertex cross products is approximately zero
func NewTriangle3[T numeric.Float](p1, p2, p3 Point3[T]) Triangle3[T] {
	t := Triangle3[T]{p1: p1, p2: p2, p3: p3}
	if !p1.Valid() || !p2.Valid() || !p3.Valid() {
		return t
	}
	t.valid = true
	t.subnormal = p1.Subnormal() || p2.Subnormal() || p3.Subnormal()
	t.degenerate = !edgeOK(p1, p2) || !edgeOK(p2, p3) || !edgeOK(p3, p1)

	if !t.degenerate {
		a := rawArea(p1, p2, p3)
		t.degenerate = !numeric.IsValid(a) || numeric.IsEqual(a, 0)
	}
	if !t.degenerate {
		t.degenerate = cornerCollapsed(p1, p2, p3) ||
			cornerCollapsed(p2, p3, p1) ||
			cornerCollapsed(p3, p1, p2)
	}
	return t
}

func (t Triangle3[T]) P1() Point3[T] { return t.p1 }
func (t Triangle3[T]) P2() Point3[T] { return t.p2 }
func (t Triangle3[T]) P3() Point3[T] { return t.p3 }

// Vertices returns p1, p2 and p3.
func (t Triangle3[T]) Vertices() [3]Point3[T] {
	return [3]Point3[T]{t.p1, t.p2, t.p3}
}

func (t Triangle3[T]) String() string {
	return fmt.Sprintf("Triangle3(%v, %v, %v)", t.p1, t.p2, t.p3)
}

func edgeOK[T numeric.Float](a, b Point3[T]) bool {
	d := Distance(a, b)
	return numeric.IsValid(d) && !numeric.IsEqual(d, 0)
}

// rawArea computes the area of a triangle whose vertices are known valid.
func rawArea[T numeric.Float](p1, p2, p3 Point3[T]) T {
	cx, cy, cz := cross3(
		p2.x-p1.x, p2.y-p1.y, p2.z-p1.z,
		p3.x-p1.x, p3.y-p1.y, p3.z-p1.z,
	)
	return numeric.Hypot3(cx, cy, cz) / 2
}

// cornerCollapsed reports whether (b-a)×(c-a) is approximately zero.
func cornerCollapsed[T numeric.Float](a, b, c Point3[T]) bool {
	x, y, z := cross3(
		b.x-a.x, b.y-a.y, b.z-a.z,
		c.x-a.x, c.y-a.y, c.z-a.z,
	)
	return zero3(x, y, z)
}
