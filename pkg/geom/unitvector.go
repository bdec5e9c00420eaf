package geom

import (
	"fmt"

	"github.com/chazu/robust3d/pkg/numeric"
)

// UnitVector3 is a direction. Its components are the normalized input; when
// the input can not be normalized they are +Inf.
type UnitVector3[T numeric.Float] struct {
	state
	x, y, z T
}

// NewUnitVector3 normalizes (x, y, z). The result is degenerate when the
// length of the input is approximately zero or not representable in T.
func NewUnitVector3[T numeric.Float](x, y, z T) UnitVector3[T] {
	inf := numeric.Infinity[T]()
	u := UnitVector3[T]{x: inf, y: inf, z: inf}
	if !finite3(x, y, z) {
		return u
	}
	u.valid = true
	u.subnormal = subnormal3(x, y, z)

	mag := numeric.Hypot3(x, y, z)
	if !numeric.IsValid(mag) || numeric.IsEqual(mag, 0) {
		u.degenerate = true
		return u
	}

	u.x, u.y, u.z = x/mag, y/mag, z/mag
	u.subnormal = u.subnormal || subnormal3(u.x, u.y, u.z)
	return u
}

// InvalidUnitVector3 returns the sentinel unit vector.
func InvalidUnitVector3[T numeric.Float]() UnitVector3[T] {
	inf := numeric.Infinity[T]()
	return NewUnitVector3(inf, inf, inf)
}

func (u UnitVector3[T]) X() T { return u.x }
func (u UnitVector3[T]) Y() T { return u.y }
func (u UnitVector3[T]) Z() T { return u.z }

// Components returns x, y and z.
func (u UnitVector3[T]) Components() (x, y, z T) {
	return u.x, u.y, u.z
}

// Vector returns u as a Vector3, or the invalid sentinel if u is degenerate.
func (u UnitVector3[T]) Vector() Vector3[T] {
	if u.Degenerate() {
		return InvalidVector3[T]()
	}
	return NewVector3(u.x, u.y, u.z)
}

func (u UnitVector3[T]) String() string {
	return fmt.Sprintf("UnitVector3(%g, %g, %g)", u.x, u.y, u.z)
}
