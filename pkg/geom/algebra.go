package geom

import "github.com/chazu/robust3d/pkg/numeric"

// Vector algebra. Every operation checks its operands first: if any of them is
// degenerate the result is the invalid sentinel (+Inf for scalars) and no
// arithmetic is attempted.

// ----- Vector3 -----

// Dot returns v·o.
func (v Vector3[T]) Dot(o Vector3[T]) T {
	if v.Degenerate() || o.Degenerate() {
		return numeric.Infinity[T]()
	}
	return v.x*o.x + v.y*o.y + v.z*o.z
}

// DotUnit returns v·u.
func (v Vector3[T]) DotUnit(u UnitVector3[T]) T {
	if v.Degenerate() || u.Degenerate() {
		return numeric.Infinity[T]()
	}
	return v.x*u.x + v.y*u.y + v.z*u.z
}

// Cross returns v×o.
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	if v.Degenerate() || o.Degenerate() {
		return InvalidVector3[T]()
	}
	return NewVector3(cross3(v.x, v.y, v.z, o.x, o.y, o.z))
}

// Multiply returns v scaled by s.
func (v Vector3[T]) Multiply(s T) Vector3[T] {
	if v.Degenerate() || !numeric.IsValid(s) {
		return InvalidVector3[T]()
	}
	return NewVector3(v.x*s, v.y*s, v.z*s)
}

// Add returns v+o.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	if v.Degenerate() || o.Degenerate() {
		return InvalidVector3[T]()
	}
	return NewVector3(v.x+o.x, v.y+o.y, v.z+o.z)
}

// Sub returns v-o.
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	if v.Degenerate() || o.Degenerate() {
		return InvalidVector3[T]()
	}
	return NewVector3(v.x-o.x, v.y-o.y, v.z-o.z)
}

// ----- UnitVector3 -----

// Dot returns u·v.
func (u UnitVector3[T]) Dot(v Vector3[T]) T {
	return v.DotUnit(u)
}

// DotUnit returns u·o, the cosine of the angle between them.
func (u UnitVector3[T]) DotUnit(o UnitVector3[T]) T {
	if u.Degenerate() || o.Degenerate() {
		return numeric.Infinity[T]()
	}
	return u.x*o.x + u.y*o.y + u.z*o.z
}

// Cross returns u×v.
func (u UnitVector3[T]) Cross(v Vector3[T]) Vector3[T] {
	if u.Degenerate() || v.Degenerate() {
		return InvalidVector3[T]()
	}
	return NewVector3(cross3(u.x, u.y, u.z, v.x, v.y, v.z))
}

// CrossUnit returns the normalized u×o. It is degenerate when u and o are
// parallel.
func (u UnitVector3[T]) CrossUnit(o UnitVector3[T]) UnitVector3[T] {
	if u.Degenerate() || o.Degenerate() {
		return InvalidUnitVector3[T]()
	}
	return NewUnitVector3(cross3(u.x, u.y, u.z, o.x, o.y, o.z))
}

// Multiply returns u scaled by s.
func (u UnitVector3[T]) Multiply(s T) Vector3[T] {
	if u.Degenerate() || !numeric.IsValid(s) {
		return InvalidVector3[T]()
	}
	return NewVector3(u.x*s, u.y*s, u.z*s)
}

// ----- Point3 -----

// Add returns p translated by v.
func (p Point3[T]) Add(v Vector3[T]) Point3[T] {
	if p.Degenerate() || v.Degenerate() {
		return InvalidPoint3[T]()
	}
	return NewPoint3(p.x+v.x, p.y+v.y, p.z+v.z)
}

// SubVector returns p translated by -v.
func (p Point3[T]) SubVector(v Vector3[T]) Point3[T] {
	if p.Degenerate() || v.Degenerate() {
		return InvalidPoint3[T]()
	}
	return NewPoint3(p.x-v.x, p.y-v.y, p.z-v.z)
}

// Sub returns the vector from q to p.
func (p Point3[T]) Sub(q Point3[T]) Vector3[T] {
	if p.Degenerate() || q.Degenerate() {
		return InvalidVector3[T]()
	}
	return NewVector3(p.x-q.x, p.y-q.y, p.z-q.z)
}

// Along returns base + t·dir computed component-wise, without the operand
// checks of Add and Multiply. The result may be invalid if the product
// overflows; intersection routines rely on seeing that raw point.
func Along[T numeric.Float](base Point3[T], dir UnitVector3[T], t T) Point3[T] {
	return NewPoint3(base.x+dir.x*t, base.y+dir.y*t, base.z+dir.z*t)
}
