package geom

import (
	"fmt"

	"github.com/chazu/robust3d/pkg/numeric"
)

// Point3 is a location in space.
type Point3[T numeric.Float] struct {
	state
	x, y, z T
}

// NewPoint3 returns the point (x, y, z).
func NewPoint3[T numeric.Float](x, y, z T) Point3[T] {
	p := Point3[T]{x: x, y: y, z: z}
	if !finite3(x, y, z) {
		return p
	}
	p.valid = true
	p.subnormal = subnormal3(x, y, z)
	return p
}

// InvalidPoint3 returns the sentinel point with every component +Inf.
func InvalidPoint3[T numeric.Float]() Point3[T] {
	inf := numeric.Infinity[T]()
	return NewPoint3(inf, inf, inf)
}

func (p Point3[T]) X() T { return p.x }
func (p Point3[T]) Y() T { return p.y }
func (p Point3[T]) Z() T { return p.z }

// Components returns x, y and z.
func (p Point3[T]) Components() (x, y, z T) {
	return p.x, p.y, p.z
}

func (p Point3[T]) String() string {
	return fmt.Sprintf("Point3(%g, %g, %g)", p.x, p.y, p.z)
}
