package geom

import "github.com/chazu/robust3d/pkg/numeric"

// MatrixRotation3 is an orthonormal matrix with determinant 1, built from its
// three columns.
type MatrixRotation3[T numeric.Float] struct {
	state
	columns [3]UnitVector3[T]
	matrix  Matrix3[T]
}

// NewMatrixRotation3 returns the rotation whose columns are c0, c1 and c2.
// The result is degenerate if any column is degenerate, if M·Mᵗ is not
// approximately the identity, or if det(M) is not approximately 1. Both
// tolerances are scaled by 12 times the largest absolute entry.
func NewMatrixRotation3[T numeric.Float](c0, c1, c2 UnitVector3[T]) MatrixRotation3[T] {
	r := MatrixRotation3[T]{
		columns: [3]UnitVector3[T]{c0, c1, c2},
		matrix: NewMatrix3([9]T{
			c0.x, c1.x, c2.x,
			c0.y, c1.y, c2.y,
			c0.z, c1.z, c2.z,
		}),
	}
	if !c0.Valid() || !c1.Valid() || !c2.Valid() {
		return r
	}
	r.valid = true
	r.subnormal = c0.Subnormal() || c1.Subnormal() || c2.Subnormal() || r.matrix.Subnormal()

	if c0.Degenerate() || c1.Degenerate() || c2.Degenerate() || !r.matrix.Valid() {
		r.degenerate = true
		return r
	}
	r.degenerate = !orthonormal(r.matrix.m, r.matrix.maxAbs)
	return r
}

func orthonormal[T numeric.Float](m [9]T, maxAbs T) bool {
	scale := 12 * maxAbs
	p := mulRaw(m, transposeRaw(m))
	id := identityRaw[T]()
	for i := range p {
		if !numeric.IsEqualScaled(p[i], id[i], scale) {
			return false
		}
	}
	return numeric.IsEqualScaled(detRaw(m), 1, scale)
}

// RotationAboutAxis returns the right-handed rotation by angle radians about
// axis.
func RotationAboutAxis[T numeric.Float](axis UnitVector3[T], angle T) MatrixRotation3[T] {
	if axis.Degenerate() || !numeric.IsValid(angle) {
		inv := InvalidUnitVector3[T]()
		return NewMatrixRotation3(inv, inv, inv)
	}
	s, c := numeric.Sincos(angle)
	t := 1 - c
	x, y, z := axis.x, axis.y, axis.z
	return NewMatrixRotation3(
		NewUnitVector3(t*x*x+c, t*x*y+s*z, t*x*z-s*y),
		NewUnitVector3(t*x*y-s*z, t*y*y+c, t*y*z+s*x),
		NewUnitVector3(t*x*z+s*y, t*y*z-s*x, t*z*z+c),
	)
}

// Column returns column i, which must be 0, 1 or 2.
func (r MatrixRotation3[T]) Column(i int) UnitVector3[T] { return r.columns[i] }

// Matrix returns the underlying matrix.
func (r MatrixRotation3[T]) Matrix() Matrix3[T] { return r.matrix }

// Determinant returns det(r).
func (r MatrixRotation3[T]) Determinant() T {
	if r.Degenerate() {
		return numeric.Infinity[T]()
	}
	return detRaw(r.matrix.m)
}

// Transpose returns the inverse rotation.
func (r MatrixRotation3[T]) Transpose() MatrixRotation3[T] {
	if r.Degenerate() {
		inv := InvalidUnitVector3[T]()
		return NewMatrixRotation3(inv, inv, inv)
	}
	m := r.matrix.m
	return NewMatrixRotation3(
		NewUnitVector3(m[0], m[1], m[2]),
		NewUnitVector3(m[3], m[4], m[5]),
		NewUnitVector3(m[6], m[7], m[8]),
	)
}

// Multiply returns r·o as a plain matrix.
func (r MatrixRotation3[T]) Multiply(o Matrix3[T]) Matrix3[T] {
	if r.Degenerate() {
		return invalidMatrix3[T]()
	}
	return r.matrix.Multiply(o)
}

// Rotate returns v rotated by r.
func (r MatrixRotation3[T]) Rotate(v Vector3[T]) Vector3[T] {
	if r.Degenerate() {
		return InvalidVector3[T]()
	}
	return r.matrix.MultiplyVector(v)
}

// RotatePoint rotates p about the origin.
func (r MatrixRotation3[T]) RotatePoint(p Point3[T]) Point3[T] {
	if r.Degenerate() || p.Degenerate() {
		return InvalidPoint3[T]()
	}
	v := r.matrix.MultiplyVector(NewVector3(p.x, p.y, p.z))
	return NewPoint3(v.x, v.y, v.z)
}
