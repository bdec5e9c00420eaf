package geom

import (
	"fmt"

	"github.com/chazu/robust3d/pkg/numeric"
)

// Vector3 is a free vector with a cached magnitude. A vector is never
// degenerate unless it is invalid; a magnitude that overflows T is stored as
// +Inf and left for the caller to inspect.
type Vector3[T numeric.Float] struct {
	state
	x, y, z T
	mag     T
}

// NewVector3 returns the vector (x, y, z).
func NewVector3[T numeric.Float](x, y, z T) Vector3[T] {
	v := Vector3[T]{x: x, y: y, z: z, mag: numeric.Infinity[T]()}
	if !finite3(x, y, z) {
		return v
	}
	v.valid = true
	v.mag = numeric.Hypot3(x, y, z)
	v.subnormal = subnormal3(x, y, z) || numeric.IsSubnormal(v.mag)
	return v
}

// InvalidVector3 returns the sentinel vector with every component +Inf.
func InvalidVector3[T numeric.Float]() Vector3[T] {
	inf := numeric.Infinity[T]()
	return NewVector3(inf, inf, inf)
}

func (v Vector3[T]) X() T { return v.x }
func (v Vector3[T]) Y() T { return v.y }
func (v Vector3[T]) Z() T { return v.z }

// Magnitude returns the overflow-safe length computed at construction.
func (v Vector3[T]) Magnitude() T { return v.mag }

// Components returns x, y and z.
func (v Vector3[T]) Components() (x, y, z T) {
	return v.x, v.y, v.z
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("Vector3(%g, %g, %g)", v.x, v.y, v.z)
}
