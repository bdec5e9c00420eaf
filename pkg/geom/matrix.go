package geom

import (
	"fmt"

	"github.com/chazu/robust3d/pkg/numeric"
)

// Matrix3 is a 3x3 matrix stored row-major. It is never degenerate unless one
// of its entries is non-finite.
type Matrix3[T numeric.Float] struct {
	state
	m      [9]T
	maxAbs T
}

// NewMatrix3 returns the matrix with the given row-major entries.
func NewMatrix3[T numeric.Float](entries [9]T) Matrix3[T] {
	mx := Matrix3[T]{m: entries, maxAbs: numeric.Infinity[T]()}
	var maxAbs T
	for _, e := range entries {
		if !numeric.IsValid(e) {
			return mx
		}
		if numeric.IsSubnormal(e) {
			mx.subnormal = true
		}
		if a := numeric.Abs(e); a > maxAbs {
			maxAbs = a
		}
	}
	mx.valid = true
	mx.maxAbs = maxAbs
	return mx
}

// NewMatrix3Columns returns the matrix whose columns are c0, c1 and c2.
func NewMatrix3Columns[T numeric.Float](c0, c1, c2 Vector3[T]) Matrix3[T] {
	return NewMatrix3([9]T{
		c0.x, c1.x, c2.x,
		c0.y, c1.y, c2.y,
		c0.z, c1.z, c2.z,
	})
}

// Identity returns the 3x3 identity matrix.
func Identity[T numeric.Float]() Matrix3[T] {
	return NewMatrix3(identityRaw[T]())
}

// At returns the entry in row r, column c.
func (mx Matrix3[T]) At(r, c int) T { return mx.m[r*3+c] }

// Entries returns a copy of the row-major entries.
func (mx Matrix3[T]) Entries() [9]T { return mx.m }

// MaxAbs returns the largest absolute entry, or +Inf if mx is invalid.
func (mx Matrix3[T]) MaxAbs() T { return mx.maxAbs }

// Multiply returns mx·o.
func (mx Matrix3[T]) Multiply(o Matrix3[T]) Matrix3[T] {
	if mx.Degenerate() || o.Degenerate() {
		return invalidMatrix3[T]()
	}
	return NewMatrix3(mulRaw(mx.m, o.m))
}

// Transpose returns mxᵗ.
func (mx Matrix3[T]) Transpose() Matrix3[T] {
	if mx.Degenerate() {
		return invalidMatrix3[T]()
	}
	return NewMatrix3(transposeRaw(mx.m))
}

// Determinant returns det(mx), or +Inf if mx is invalid.
func (mx Matrix3[T]) Determinant() T {
	if mx.Degenerate() {
		return numeric.Infinity[T]()
	}
	return detRaw(mx.m)
}

// MultiplyVector returns mx·v.
func (mx Matrix3[T]) MultiplyVector(v Vector3[T]) Vector3[T] {
	if mx.Degenerate() || v.Degenerate() {
		return InvalidVector3[T]()
	}
	m := mx.m
	return NewVector3(
		m[0]*v.x+m[1]*v.y+m[2]*v.z,
		m[3]*v.x+m[4]*v.y+m[5]*v.z,
		m[6]*v.x+m[7]*v.y+m[8]*v.z,
	)
}

func (mx Matrix3[T]) String() string {
	m := mx.m
	return fmt.Sprintf("Matrix3[[%g %g %g] [%g %g %g] [%g %g %g]]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

func invalidMatrix3[T numeric.Float]() Matrix3[T] {
	inf := numeric.Infinity[T]()
	return NewMatrix3([9]T{inf, inf, inf, inf, inf, inf, inf, inf, inf})
}

// ----- raw helpers -----
//
// These operate on entries without any status bookkeeping. MatrixRotation3
// validates itself with them.

func identityRaw[T numeric.Float]() [9]T {
	return [9]T{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

func mulRaw[T numeric.Float](a, b [9]T) [9]T {
	var r [9]T
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = a[i*3]*b[j] + a[i*3+1]*b[3+j] + a[i*3+2]*b[6+j]
		}
	}
	return r
}

func transposeRaw[T numeric.Float](a [9]T) [9]T {
	return [9]T{
		a[0], a[3], a[6],
		a[1], a[4], a[7],
		a[2], a[5], a[8],
	}
}

func detRaw[T numeric.Float](a [9]T) T {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}
