package engine

import (
	"fmt"

	"github.com/chazu/robust3d/pkg/geom"
	"github.com/chazu/robust3d/pkg/intersect"
	"github.com/chazu/robust3d/pkg/numeric"
)

// kind identifies the entity a DSL value describes.
type kind int

const (
	kindPoint kind = iota
	kindVector
	kindLine
	kindRay
	kindSegment
	kindPlane
	kindTriangle
)

var kindNames = [...]string{
	kindPoint:    "point",
	kindVector:   "vec",
	kindLine:     "line",
	kindRay:      "ray",
	kindSegment:  "segment",
	kindPlane:    "plane",
	kindTriangle: "triangle",
}

func (k kind) String() string { return kindNames[k] }

// shape is the precision-independent description of an entity as the
// program wrote it. Coordinates stay float64 until a query picks T.
type shape struct {
	kind kind
	a    [3]float64
	b    [3]float64
	c    [3]float64

	// lines and rays: b is a second point rather than a direction.
	// planes: a, b, c are three points rather than base and normal.
	byPoints bool
}

func point3[T numeric.Float](v [3]float64) geom.Point3[T] {
	return geom.NewPoint3(T(v[0]), T(v[1]), T(v[2]))
}

func unit3[T numeric.Float](v [3]float64) geom.UnitVector3[T] {
	return geom.NewUnitVector3(T(v[0]), T(v[1]), T(v[2]))
}

func lineOf[T numeric.Float](s *shape) geom.Line3[T] {
	if s.byPoints {
		return geom.NewLine3(point3[T](s.a), point3[T](s.b))
	}
	return geom.MakeLine3(point3[T](s.a), geom.NewVector3(T(s.b[0]), T(s.b[1]), T(s.b[2])))
}

func rayOf[T numeric.Float](s *shape) geom.Ray3[T] {
	if s.byPoints {
		return geom.MakeRay3(point3[T](s.a), point3[T](s.b))
	}
	return geom.NewRay3(point3[T](s.a), unit3[T](s.b))
}

func segmentOf[T numeric.Float](s *shape) geom.Segment3[T] {
	return geom.NewSegment3(point3[T](s.a), point3[T](s.b))
}

func planeOf[T numeric.Float](s *shape) geom.Plane[T] {
	if s.byPoints {
		return geom.MakePlane(point3[T](s.a), point3[T](s.b), point3[T](s.c))
	}
	return geom.NewPlane(point3[T](s.a), unit3[T](s.b))
}

func triangleOf[T numeric.Float](s *shape) geom.Triangle3[T] {
	return geom.NewTriangle3(point3[T](s.a), point3[T](s.b), point3[T](s.c))
}

// entityOf builds s in precision T.
func entityOf[T numeric.Float](s *shape) geom.Entity {
	switch s.kind {
	case kindPoint:
		return point3[T](s.a)
	case kindVector:
		return geom.NewVector3(T(s.a[0]), T(s.a[1]), T(s.a[2]))
	case kindLine:
		return lineOf[T](s)
	case kindRay:
		return rayOf[T](s)
	case kindSegment:
		return segmentOf[T](s)
	case kindPlane:
		return planeOf[T](s)
	case kindTriangle:
		return triangleOf[T](s)
	}
	return geom.InvalidPoint3[T]()
}

// statusName is what the status builtin reports for e.
func statusName(e geom.Entity) string {
	switch {
	case !e.Valid():
		return "invalid"
	case e.Degenerate():
		return "degenerate"
	case e.Subnormal():
		return "subnormal"
	}
	return "ok"
}

// outcome is a query result converted back to float64.
type outcome struct {
	code     intersect.ResultCode
	point    [3]float64
	hasPoint bool
}

func pointOutcome[T numeric.Float](p geom.Point3[T], code intersect.ResultCode) (outcome, error) {
	return outcome{
		code:     code,
		point:    [3]float64{float64(p.X()), float64(p.Y()), float64(p.Z())},
		hasPoint: true,
	}, nil
}

// run intersects a and b in precision T, calling the intersect function
// that matches the operand order.
func run[T numeric.Float](a, b *shape) (outcome, error) {
	switch a.kind {
	case kindPlane:
		pl := planeOf[T](a)
		switch b.kind {
		case kindLine:
			return pointOutcome(intersect.PlaneLine(pl, lineOf[T](b)))
		case kindRay:
			return pointOutcome(intersect.PlaneRay(pl, rayOf[T](b)))
		case kindSegment:
			return pointOutcome(intersect.PlaneSegment(pl, segmentOf[T](b)))
		case kindTriangle:
			return outcome{code: intersect.PlaneTriangle(pl, triangleOf[T](b))}, nil
		}

	case kindTriangle:
		tri := triangleOf[T](a)
		switch b.kind {
		case kindLine:
			return pointOutcome(intersect.TriangleLine(tri, lineOf[T](b)))
		case kindRay:
			return pointOutcome(intersect.TriangleRay(tri, rayOf[T](b)))
		case kindSegment:
			return pointOutcome(intersect.TriangleSegment(tri, segmentOf[T](b)))
		case kindPlane:
			return outcome{code: intersect.TrianglePlane(tri, planeOf[T](b))}, nil
		case kindTriangle:
			return outcome{code: intersect.TriangleTriangle(tri, triangleOf[T](b))}, nil
		}

	case kindLine:
		l := lineOf[T](a)
		switch b.kind {
		case kindPlane:
			return pointOutcome(intersect.LinePlane(l, planeOf[T](b)))
		case kindTriangle:
			return pointOutcome(intersect.LineTriangle(l, triangleOf[T](b)))
		}

	case kindRay:
		r := rayOf[T](a)
		switch b.kind {
		case kindPlane:
			return pointOutcome(intersect.RayPlane(r, planeOf[T](b)))
		case kindTriangle:
			return pointOutcome(intersect.RayTriangle(r, triangleOf[T](b)))
		}

	case kindSegment:
		s := segmentOf[T](a)
		switch b.kind {
		case kindPlane:
			return pointOutcome(intersect.SegmentPlane(s, planeOf[T](b)))
		case kindTriangle:
			return pointOutcome(intersect.SegmentTriangle(s, triangleOf[T](b)))
		}
	}
	return outcome{}, fmt.Errorf("no intersection test for %s/%s", a.kind, b.kind)
}

// runIn dispatches on the configured precision.
func runIn(p Precision, a, b *shape) (outcome, error) {
	if p == Float32 {
		return run[float32](a, b)
	}
	return run[float64](a, b)
}

// statusIn builds s in precision p.
func statusIn(p Precision, s *shape) geom.Entity {
	if p == Float32 {
		return entityOf[float32](s)
	}
	return entityOf[float64](s)
}

// session is the per-evaluation state the builtins write into.
type session struct {
	cfg    Config
	report *Report
}

func (s *session) warn(query int, format string, args ...any) {
	s.report.Warnings = append(s.report.Warnings, EvalWarning{
		Message: fmt.Sprintf(format, args...),
		Query:   query,
	})
}

// intersect runs one query and records it.
func (s *session) intersect(a, b *shape) (Query, error) {
	idx := len(s.report.Queries)
	prec := s.cfg.Precision

	out, err := runIn(prec, a, b)
	if err != nil {
		return Query{}, err
	}

	for _, op := range []*shape{a, b} {
		switch st := statusName(statusIn(prec, op)); st {
		case "invalid", "degenerate", "subnormal":
			s.warn(idx, "query %d: %s operand is %s in %s", idx, op.kind, st, prec)
		}
	}

	q := Query{
		Index:     idx,
		Pair:      a.kind.String() + "/" + b.kind.String(),
		Precision: prec,
	}
	if out.code == intersect.Overflow && prec == Float32 && s.cfg.WidenOnOverflow {
		wide, err := runIn(Float64, a, b)
		if err != nil {
			return Query{}, err
		}
		s.cfg.Logger.Printf("engine: query %d (%s) overflowed in float32, widened to float64: %s", idx, q.Pair, wide.code)
		s.warn(idx, "query %d: widened to float64", idx)
		out = wide
		q.Precision = Float64
		q.Widened = true
	}
	q.Code = out.code
	q.Point = out.point
	q.HasPoint = out.hasPoint

	s.report.Queries = append(s.report.Queries, q)
	return q, nil
}
