// Package intersect computes pairwise intersections between the line-like
// entities (Line3, Ray3, Segment3) and the planar ones (Plane, Triangle3), and
// between two triangles.
//
// Every function returns a ResultCode instead of an error. Functions that
// produce a point return geom.InvalidPoint3 alongside any code other than OK,
// with one exception: TriangleSegment reports Overflow together with the raw
// computed point so the caller can see which component overflowed.
//
// For each unordered pair there is a canonical function (planar operand
// first) and a commuted one that forwards to it.
package intersect

import "errors"

// ResultCode is the outcome of an intersection test.
type ResultCode int

const (
	OK             ResultCode = iota // the operands intersect
	Degenerate                       // an operand is degenerate or invalid
	Coplanar                         // the line-like operand lies in the plane
	Parallel                         // the line-like operand is parallel to the plane and offset from it
	NoIntersection                   // sound arithmetic, no intersection
	Overflow                         // the result is not representable in the chosen precision
)

var codeNames = [...]string{
	OK:             "ok",
	Degenerate:     "degenerate",
	Coplanar:       "coplanar",
	Parallel:       "parallel",
	NoIntersection: "no-intersection",
	Overflow:       "overflow",
}

func (c ResultCode) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return "unknown"
	}
	return codeNames[c]
}

// Errors returned by ResultCode.Err.
var (
	ErrDegenerate     = errors.New("intersect: degenerate operand")
	ErrCoplanar       = errors.New("intersect: coplanar")
	ErrParallel       = errors.New("intersect: parallel")
	ErrNoIntersection = errors.New("intersect: no intersection")
	ErrOverflow       = errors.New("intersect: overflow")
)

// Err returns nil for OK and the matching sentinel error otherwise.
func (c ResultCode) Err() error {
	switch c {
	case OK:
		return nil
	case Degenerate:
		return ErrDegenerate
	case Coplanar:
		return ErrCoplanar
	case Parallel:
		return ErrParallel
	case NoIntersection:
		return ErrNoIntersection
	case Overflow:
		return ErrOverflow
	}
	return errors.New("intersect: unknown result code")
}

// ParseResultCode returns the code whose String form is s.
func ParseResultCode(s string) (ResultCode, bool) {
	for i, name := range codeNames {
		if name == s {
			return ResultCode(i), true
		}
	}
	return 0, false
}
