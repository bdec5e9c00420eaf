package geom

import (
	"fmt"

	"github.com/chazu/robust3d/pkg/numeric"
)

// Segment3 is the closed segment between base and target.
type Segment3[T numeric.Float] struct {
	state
	base, target Point3[T]
	length       T
}

// NewSegment3 returns the segment from base to target. It is degenerate when
// the endpoints coincide or their distance overflows T.
func NewSegment3[T numeric.Float](base, target Point3[T]) Segment3[T] {
	s := Segment3[T]{base: base, target: target, length: numeric.Infinity[T]()}
	if !base.Valid() || !target.Valid() {
		return s
	}
	s.valid = true
	s.subnormal = base.Subnormal() || target.Subnormal()

	length := Distance(base, target)
	if !numeric.IsValid(length) {
		s.degenerate = true
		return s
	}
	s.length = length
	s.degenerate = numeric.IsEqual(length, 0)
	s.subnormal = s.subnormal || numeric.IsSubnormal(length)
	return s
}

func (s Segment3[T]) Base() Point3[T]   { return s.base }
func (s Segment3[T]) Target() Point3[T] { return s.target }

// Length returns the distance between the endpoints, or +Inf if it overflowed.
func (s Segment3[T]) Length() T { return s.length }

// Direction returns the unit direction from base towards target.
func (s Segment3[T]) Direction() UnitVector3[T] {
	return MakeUnitVector3Between(s.base, s.target)
}

func (s Segment3[T]) String() string {
	return fmt.Sprintf("Segment3(%v -> %v)", s.base, s.target)
}
