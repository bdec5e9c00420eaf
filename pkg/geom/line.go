package geom

import (
	"fmt"

	"github.com/chazu/robust3d/pkg/numeric"
)

// Line3 is the infinite line through two points.
type Line3[T numeric.Float] struct {
	state
	base, target Point3[T]
	delta        Vector3[T]
	direction    UnitVector3[T]
}

// NewLine3 returns the line through base and target. It is degenerate when
// the two points coincide or the direction between them can not be
// normalized.
func NewLine3[T numeric.Float](base, target Point3[T]) Line3[T] {
	l := Line3[T]{
		base:      base,
		target:    target,
		delta:     InvalidVector3[T](),
		direction: InvalidUnitVector3[T](),
	}
	if !base.Valid() || !target.Valid() {
		return l
	}
	l.valid = true
	l.subnormal = base.Subnormal() || target.Subnormal()

	if numeric.IsEqual(Distance(base, target), 0) {
		l.degenerate = true
		return l
	}

	delta := target.Sub(base)
	direction := MakeUnitVector3(delta)
	if direction.Degenerate() {
		l.degenerate = true
		return l
	}
	l.delta = delta
	l.direction = direction
	l.subnormal = l.subnormal || delta.Subnormal() || direction.Subnormal()
	return l
}

func (l Line3[T]) Base() Point3[T]   { return l.base }
func (l Line3[T]) Target() Point3[T] { return l.target }

// Delta returns target - base.
func (l Line3[T]) Delta() Vector3[T] { return l.delta }

// Direction returns the unit direction from base towards target.
func (l Line3[T]) Direction() UnitVector3[T] { return l.direction }

func (l Line3[T]) String() string {
	return fmt.Sprintf("Line3(%v -> %v)", l.base, l.target)
}
