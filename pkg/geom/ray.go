package geom

import (
	"fmt"

	"github.com/chazu/robust3d/pkg/numeric"
)

// Ray3 starts at base and extends forever along direction.
type Ray3[T numeric.Float] struct {
	state
	base      Point3[T]
	direction UnitVector3[T]
}

// NewRay3 returns the ray from base along direction.
func NewRay3[T numeric.Float](base Point3[T], direction UnitVector3[T]) Ray3[T] {
	r := Ray3[T]{base: base, direction: direction}
	if !base.Valid() || !direction.Valid() {
		return r
	}
	r.valid = true
	r.degenerate = direction.Degenerate()
	r.subnormal = base.Subnormal() || direction.Subnormal()
	return r
}

func (r Ray3[T]) Base() Point3[T]           { return r.base }
func (r Ray3[T]) Direction() UnitVector3[T] { return r.direction }

func (r Ray3[T]) String() string {
	return fmt.Sprintf("Ray3(%v, %v)", r.base, r.direction)
}
