package geom

import (
	"fmt"

	"github.com/chazu/robust3d/pkg/numeric"
)

// Plane is the plane through base with normal up.
type Plane[T numeric.Float] struct {
	state
	base Point3[T]
	up   UnitVector3[T]
}

// NewPlane returns the plane through base with normal up. A degenerate normal
// makes the plane degenerate.
func NewPlane[T numeric.Float](base Point3[T], up UnitVector3[T]) Plane[T] {
	pl := Plane[T]{base: base, up: up}
	if !base.Valid() || !up.Valid() {
		return pl
	}
	pl.valid = true
	pl.degenerate = up.Degenerate()
	pl.subnormal = base.Subnormal() || up.Subnormal()
	return pl
}

func (pl Plane[T]) Base() Point3[T]    { return pl.base }
func (pl Plane[T]) Up() UnitVector3[T] { return pl.up }

func (pl Plane[T]) String() string {
	return fmt.Sprintf("Plane(%v, %v)", pl.base, pl.up)
}
