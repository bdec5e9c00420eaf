// Package geom defines the immutable entity types of the kernel: points,
// vectors, unit vectors, lines, planes, rays, segments, triangles and 3x3
// matrices. Every entity computes its validity status once, at construction,
// and never changes afterwards.
//
// Constructors never fail. A bad input yields a structurally complete value
// whose input fields are preserved, whose derived fields hold +Inf, and whose
// status flags say what went wrong. Callers check Valid or Degenerate before
// trusting the geometry.
package geom

import "github.com/chazu/robust3d/pkg/numeric"

// state is the status every entity carries. The zero value is invalid, so an
// entity that was never constructed can not be mistaken for a good one.
type state struct {
	valid      bool
	degenerate bool
	subnormal  bool
}

// Valid reports whether every input component was finite.
func (s state) Valid() bool {
	return s.valid
}

// Degenerate reports whether the entity is invalid or geometrically
// meaningless (a zero length direction, a zero area triangle, ...).
func (s state) Degenerate() bool {
	return !s.valid || s.degenerate
}

// Subnormal reports whether a valid entity was built from, or derived,
// a subnormal component.
func (s state) Subnormal() bool {
	return s.valid && s.subnormal
}

// Entity is implemented by every kernel type.
type Entity interface {
	Valid() bool
	Degenerate() bool
	Subnormal() bool
}

// IsValid reports e.Valid().
func IsValid(e Entity) bool { return e.Valid() }

// IsDegenerate reports e.Degenerate().
func IsDegenerate(e Entity) bool { return e.Degenerate() }

// IsSubnormal reports e.Subnormal().
func IsSubnormal(e Entity) bool { return e.Subnormal() }

func finite3[T numeric.Float](x, y, z T) bool {
	return numeric.IsValid(x) && numeric.IsValid(y) && numeric.IsValid(z)
}

func subnormal3[T numeric.Float](x, y, z T) bool {
	return numeric.IsSubnormal(x) || numeric.IsSubnormal(y) || numeric.IsSubnormal(z)
}

// zero3 reports whether every component is approximately zero.
func zero3[T numeric.Float](x, y, z T) bool {
	return numeric.IsEqual(x, 0) && numeric.IsEqual(y, 0) && numeric.IsEqual(z, 0)
}

func cross3[T numeric.Float](ax, ay, az, bx, by, bz T) (x, y, z T) {
	return ay*bz - az*by, az*bx - ax*bz, ax*by - ay*bx
}
