// Package numeric provides the epsilon-aware comparisons and finiteness
// predicates the geometry kernel is built on. Every function is generic over
// the two IEEE-754 binary types and computes in the caller's precision only:
// float32 arithmetic goes through math32, float64 through math.
package numeric

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the set of floating point types the kernel can be instantiated with.
type Float interface {
	constraints.Float
}

// The limits are variables rather than constants: a constant converted to a
// type parameter must be representable in every member of the type set.
var (
	epsilon32   float32 = 0x1p-23
	epsilon64   float64 = 0x1p-52
	minNormal32 float32 = 0x1p-126
	minNormal64 float64 = 0x1p-1022
	maxValue32  float32 = math.MaxFloat32
	maxValue64  float64 = math.MaxFloat64
)

// is32 reports whether T is a 32-bit float.
func is32[T Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	if is32[T]() {
		return T(epsilon32)
	}
	return T(epsilon64)
}

// Infinity returns positive infinity in T. The kernel uses it as the sentinel
// for fields that could not be computed.
func Infinity[T Float]() T {
	return T(math.Inf(1))
}

// MaxValue returns the largest finite value of T.
func MaxValue[T Float]() T {
	if is32[T]() {
		return T(maxValue32)
	}
	return T(maxValue64)
}

// MinNormal returns the smallest positive normalized value of T.
func MinNormal[T Float]() T {
	if is32[T]() {
		return T(minNormal32)
	}
	return T(minNormal64)
}

// ---------------------------------------------------------------------------
// Elementary functions in the caller's precision
// ---------------------------------------------------------------------------

// Abs returns |v|.
func Abs[T Float](v T) T {
	if is32[T]() {
		return T(math32.Abs(float32(v)))
	}
	return T(math.Abs(float64(v)))
}

// Sqrt returns the square root of v.
func Sqrt[T Float](v T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(v)))
	}
	return T(math.Sqrt(float64(v)))
}

// Sincos returns sin(a) and cos(a).
func Sincos[T Float](a T) (sin, cos T) {
	if is32[T]() {
		s, c := math32.Sincos(float32(a))
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(a))
	return T(s), T(c)
}

// Hypot3 returns sqrt(x²+y²+z²) without intermediate overflow or underflow.
// The result is +Inf when any input is non-finite or the true magnitude is
// not representable in T.
func Hypot3[T Float](x, y, z T) T {
	if !IsValid(x) || !IsValid(y) || !IsValid(z) {
		return Infinity[T]()
	}
	if is32[T]() {
		return T(math32.Hypot(math32.Hypot(float32(x), float32(y)), float32(z)))
	}
	return T(math.Hypot(math.Hypot(float64(x), float64(y)), float64(z)))
}

// ---------------------------------------------------------------------------
// Validity
// ---------------------------------------------------------------------------

// IsValid reports whether v is finite.
func IsValid[T Float](v T) bool {
	return v-v == 0
}

// IsSubnormal reports whether v is finite, nonzero and below the normalized
// range of T.
func IsSubnormal[T Float](v T) bool {
	return IsValid(v) && v != 0 && Abs(v) < MinNormal[T]()
}

// ---------------------------------------------------------------------------
// Epsilon comparisons
// ---------------------------------------------------------------------------

// IsEqual compares a and b with a tolerance of one machine epsilon. When both
// are nonzero the difference is measured relative to each operand, so that
// the test is symmetric in magnitude; otherwise it is absolute.
func IsEqual[T Float](a, b T) bool {
	return IsEqualScaled(a, b, 1)
}

// IsEqualScaled is IsEqual with the tolerance multiplied by scale. It is used
// where rounding error accumulates over several multiply-adds.
func IsEqualScaled[T Float](a, b, scale T) bool {
	eps := Epsilon[T]() * scale
	diff := Abs(a - b)
	if a != 0 && b != 0 {
		return diff/Abs(a) <= eps && diff/Abs(b) <= eps
	}
	return diff <= eps
}

// IsGreaterOrEqual reports a > b, or a ≈ b.
func IsGreaterOrEqual[T Float](a, b T) bool {
	return a > b || IsEqual(a, b)
}

// IsLessOrEqual reports a < b, or a ≈ b.
func IsLessOrEqual[T Float](a, b T) bool {
	return a < b || IsEqual(a, b)
}
