package intersect

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/chazu/robust3d/pkg/geom"
	"github.com/chazu/robust3d/pkg/numeric"
)

func pt(x, y, z float64) geom.Point3[float64] { return geom.NewPoint3(x, y, z) }

func dir(x, y, z float64) geom.UnitVector3[float64] { return geom.NewUnitVector3(x, y, z) }

func isSentinel[T numeric.Float](p geom.Point3[T]) bool {
	return math.IsInf(float64(p.X()), 1) && math.IsInf(float64(p.Y()), 1) && math.IsInf(float64(p.Z()), 1)
}

func samePoint(p geom.Point3[float64], x, y, z float64) bool {
	return numeric.IsEqual(p.X(), x) && numeric.IsEqual(p.Y(), y) && numeric.IsEqual(p.Z(), z)
}

// ---------------------------------------------------------------------------
// ResultCode
// ---------------------------------------------------------------------------

func TestResultCode(t *testing.T) {
	tests := []struct {
		code ResultCode
		name string
		err  error
	}{
		{OK, "ok", nil},
		{Degenerate, "degenerate", ErrDegenerate},
		{Coplanar, "coplanar", ErrCoplanar},
		{Parallel, "parallel", ErrParallel},
		{NoIntersection, "no-intersection", ErrNoIntersection},
		{Overflow, "overflow", ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.code.Err(); !errors.Is(got, tt.err) {
				t.Errorf("Err() = %v, want %v", got, tt.err)
			}
			if got, ok := ParseResultCode(tt.name); !ok || got != tt.code {
				t.Errorf("ParseResultCode(%q) = %v, %v, want %v", tt.name, got, ok, tt.code)
			}
		})
	}
	if got := ResultCode(42).String(); got != "unknown" {
		t.Errorf("ResultCode(42).String() = %q, want unknown", got)
	}
	if _, ok := ParseResultCode("bogus"); ok {
		t.Error("ParseResultCode(bogus) ok = true, want false")
	}
}

// ---------------------------------------------------------------------------
// Line-like x Plane
// ---------------------------------------------------------------------------

func TestPlaneLine(t *testing.T) {
	ground := geom.NewPlane(pt(0, 0, 0), dir(0, 0, 1))

	tests := []struct {
		name string
		line geom.Line3[float64]
		want ResultCode
	}{
		{"crossing", geom.NewLine3(pt(0, 0, 1), pt(1, 1, -1)), OK},
		{"vertical", geom.NewLine3(pt(3, 4, 5), pt(3, 4, 6)), OK},
		{"parallel offset", geom.NewLine3(pt(0, 0, 1), pt(1, 0, 1)), Parallel},
		{"in plane", geom.NewLine3(pt(0, 0, 0), pt(1, 2, 0)), Coplanar},
		{"degenerate line", geom.NewLine3(pt(1, 1, 1), pt(1, 1, 1)), Degenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, code := PlaneLine(ground, tt.line)
			if code != tt.want {
				t.Fatalf("PlaneLine() code = %v, want %v", code, tt.want)
			}
			if code != OK {
				if !isSentinel(got) {
					t.Errorf("PlaneLine() point = %v, want sentinel", got)
				}
				return
			}
			if d := geom.DistanceToPlane(got, ground); !numeric.IsEqualScaled(d, 0, 8) {
				t.Errorf("distance(%v, plane) = %v, want 0", got, d)
			}
			if back, code := LinePlane(tt.line, ground); code != OK || back != got {
				t.Errorf("LinePlane() = %v, %v, want %v, ok", back, code, got)
			}
		})
	}

	got, _ := PlaneLine(ground, geom.NewLine3(pt(3, 4, 5), pt(3, 4, 6)))
	if !samePoint(got, 3, 4, 0) {
		t.Errorf("PlaneLine(vertical) = %v, want (3, 4, 0)", got)
	}
}

func TestPlaneRay(t *testing.T) {
	ground := geom.NewPlane(pt(0, 0, 0), dir(0, 0, 1))
	tests := []struct {
		name    string
		ray     geom.Ray3[float64]
		want    ResultCode
		x, y, z float64
	}{
		{"toward", geom.NewRay3(pt(1, 2, 3), dir(0, 0, -1)), OK, 1, 2, 0},
		{"away", geom.NewRay3(pt(1, 2, 3), dir(0, 0, 1)), NoIntersection, 0, 0, 0},
		{"starts on plane", geom.NewRay3(pt(1, 2, 0), dir(0, 0, 1)), OK, 1, 2, 0},
		{"parallel", geom.NewRay3(pt(1, 2, 3), dir(1, 0, 0)), Parallel, 0, 0, 0},
		{"in plane", geom.NewRay3(pt(1, 2, 0), dir(1, 1, 0)), Coplanar, 0, 0, 0},
		{"degenerate", geom.NewRay3(pt(1, 2, 3), dir(0, 0, 0)), Degenerate, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, code := RayPlane(tt.ray, ground)
			if code != tt.want {
				t.Fatalf("RayPlane() code = %v, want %v", code, tt.want)
			}
			if code == OK && !samePoint(got, tt.x, tt.y, tt.z) {
				t.Errorf("RayPlane() = %v, want (%g, %g, %g)", got, tt.x, tt.y, tt.z)
			}
			if code != OK && !isSentinel(got) {
				t.Errorf("RayPlane() point = %v, want sentinel", got)
			}
		})
	}
}

func TestPlaneRayOverflow(t *testing.T) {
	pl := geom.NewPlane(geom.NewPoint3[float32](0, 0, 0), geom.NewUnitVector3[float32](0, 0, 1))
	r := geom.NewRay3(geom.NewPoint3[float32](0, 0, 3e38), geom.NewUnitVector3[float32](1, 0, -1e-3))
	got, code := PlaneRay(pl, r)
	if code != Overflow {
		t.Fatalf("PlaneRay() code = %v, want overflow", code)
	}
	if !isSentinel(got) {
		t.Errorf("PlaneRay() point = %v, want sentinel", got)
	}

	// the same query is representable in float64
	pl64 := geom.NewPlane(pt(0, 0, 0), dir(0, 0, 1))
	r64 := geom.NewRay3(pt(0, 0, 3e38), dir(1, 0, -1e-3))
	if _, code := PlaneRay(pl64, r64); code != OK {
		t.Errorf("PlaneRay(float64) code = %v, want ok", code)
	}
}

func TestPlaneSegment(t *testing.T) {
	ground := geom.NewPlane(pt(0, 0, 0), dir(0, 0, 1))
	tests := []struct {
		name string
		seg  geom.Segment3[float64]
		want ResultCode
	}{
		{"crossing", geom.NewSegment3(pt(0, 0, 1), pt(0, 0, -1)), OK},
		{"ends on plane", geom.NewSegment3(pt(0, 0, 1), pt(0, 0, 0)), OK},
		{"starts on plane", geom.NewSegment3(pt(0, 0, 0), pt(0, 0, 1)), OK},
		{"short of plane", geom.NewSegment3(pt(0, 0, 2), pt(0, 0, 1)), NoIntersection},
		{"pointing away", geom.NewSegment3(pt(0, 0, 1), pt(0, 0, 2)), NoIntersection},
		{"parallel", geom.NewSegment3(pt(0, 0, 1), pt(1, 0, 1)), Parallel},
		{"in plane", geom.NewSegment3(pt(0, 0, 0), pt(1, 0, 0)), Coplanar},
		{"degenerate", geom.NewSegment3(pt(0, 0, 1), pt(0, 0, 1)), Degenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, code := SegmentPlane(tt.seg, ground)
			if code != tt.want {
				t.Fatalf("SegmentPlane() code = %v, want %v", code, tt.want)
			}
			if code == OK && !samePoint(got, 0, 0, 0) {
				t.Errorf("SegmentPlane() = %v, want origin", got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Triangle x line-like
// ---------------------------------------------------------------------------

func unitTriangle() geom.Triangle3[float64] {
	return geom.NewTriangle3(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
}

func TestTriangleRay(t *testing.T) {
	tri := unitTriangle()
	tests := []struct {
		name string
		ray  geom.Ray3[float64]
		want ResultCode
	}{
		{"through interior", geom.NewRay3(pt(0.25, 0.25, 1), dir(0, 0, -1)), OK},
		{"from below", geom.NewRay3(pt(0.25, 0.25, -1), dir(0, 0, 1)), OK},
		{"pointing away", geom.NewRay3(pt(0.25, 0.25, 1), dir(0, 0, 1)), NoIntersection},
		{"outside", geom.NewRay3(pt(2, 2, 1), dir(0, 0, -1)), NoIntersection},
		{"past hypotenuse", geom.NewRay3(pt(0.6, 0.6, 1), dir(0, 0, -1)), NoIntersection},
		{"on edge", geom.NewRay3(pt(0.5, 0, 1), dir(0, 0, -1)), OK},
		{"parallel to triangle", geom.NewRay3(pt(0.25, 0.25, 1), dir(1, 0, 0)), Coplanar},
		{"degenerate ray", geom.NewRay3(pt(0.25, 0.25, 1), dir(0, 0, 0)), Degenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, code := TriangleRay(tri, tt.ray)
			if code != tt.want {
				t.Fatalf("TriangleRay() code = %v, want %v", code, tt.want)
			}
			if code != OK && !isSentinel(got) {
				t.Errorf("TriangleRay() point = %v, want sentinel", got)
			}
			if back, backCode := RayTriangle(tt.ray, tri); backCode != code || (code == OK && back != got) {
				t.Errorf("RayTriangle() = %v, %v, want %v, %v", back, backCode, got, code)
			}
		})
	}

	got, _ := TriangleRay(tri, geom.NewRay3(pt(0.25, 0.25, 1), dir(0, 0, -1)))
	if !samePoint(got, 0.25, 0.25, 0) {
		t.Errorf("TriangleRay() = %v, want (0.25, 0.25, 0)", got)
	}
}

func TestTriangleRayFloat32(t *testing.T) {
	p := func(x, y, z float32) geom.Point3[float32] { return geom.NewPoint3(x, y, z) }
	tri := geom.NewTriangle3(p(0, 0, 0), p(1, 0, 0), p(0, 1, 0))
	r := geom.NewRay3(p(0.25, 0.25, 1), geom.NewUnitVector3[float32](0, 0, -1))
	got, code := TriangleRay(tri, r)
	if code != OK {
		t.Fatalf("TriangleRay() code = %v, want ok", code)
	}
	if got.X() != 0.25 || got.Y() != 0.25 || got.Z() != 0 {
		t.Errorf("TriangleRay() = %v, want (0.25, 0.25, 0)", got)
	}
}

func TestTriangleLine(t *testing.T) {
	tri := unitTriangle()

	// the line extends behind its base
	l := geom.NewLine3(pt(0.25, 0.25, 1), pt(0.25, 0.25, 2))
	got, code := TriangleLine(tri, l)
	if code != OK || !samePoint(got, 0.25, 0.25, 0) {
		t.Errorf("TriangleLine() = %v, %v, want (0.25, 0.25, 0), ok", got, code)
	}
	if back, code := LineTriangle(l, tri); code != OK || back != got {
		t.Errorf("LineTriangle() = %v, %v, want %v, ok", back, code, got)
	}

	miss := geom.NewLine3(pt(1, 1, 1), pt(1, 1, 2))
	if got, code := TriangleLine(tri, miss); code != NoIntersection || !isSentinel(got) {
		t.Errorf("TriangleLine(miss) = %v, %v, want sentinel, no-intersection", got, code)
	}
	flat := geom.NewLine3(pt(0, 0, 0), pt(1, 1, 0))
	if _, code := TriangleLine(tri, flat); code != Coplanar {
		t.Errorf("TriangleLine(in plane) code = %v, want coplanar", code)
	}
}

func TestTriangleSegment(t *testing.T) {
	tri := unitTriangle()
	tests := []struct {
		name string
		seg  geom.Segment3[float64]
		want ResultCode
	}{
		{"crossing", geom.NewSegment3(pt(0.25, 0.25, 1), pt(0.25, 0.25, -1)), OK},
		{"ends on triangle", geom.NewSegment3(pt(0.25, 0.25, 1), pt(0.25, 0.25, 0)), OK},
		{"too short", geom.NewSegment3(pt(0.25, 0.25, 1), pt(0.25, 0.25, 0.5)), NoIntersection},
		{"pointing away", geom.NewSegment3(pt(0.25, 0.25, 1), pt(0.25, 0.25, 2)), NoIntersection},
		{"beside", geom.NewSegment3(pt(3, 3, 1), pt(3, 3, -1)), NoIntersection},
		{"in plane", geom.NewSegment3(pt(0, 0, 0), pt(1, 1, 0)), Coplanar},
		{"degenerate", geom.NewSegment3(pt(0.25, 0.25, 1), pt(0.25, 0.25, 1)), Degenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, code := SegmentTriangle(tt.seg, tri)
			if code != tt.want {
				t.Fatalf("SegmentTriangle() code = %v, want %v", code, tt.want)
			}
			if code == OK && !samePoint(got, 0.25, 0.25, 0) {
				t.Errorf("SegmentTriangle() = %v, want (0.25, 0.25, 0)", got)
			}
			if code != OK && !isSentinel(got) {
				t.Errorf("SegmentTriangle() point = %v, want sentinel", got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Triangle x Plane
// ---------------------------------------------------------------------------

func TestTrianglePlane(t *testing.T) {
	flat := unitTriangle()
	upright := geom.NewTriangle3(pt(0, 0, 0), pt(1, 0, 0), pt(0, 0, 1))
	horizontal := func(z float64) geom.Plane[float64] { return geom.NewPlane(pt(0, 0, z), dir(0, 0, 1)) }

	tests := []struct {
		name  string
		tri   geom.Triangle3[float64]
		plane geom.Plane[float64]
		want  ResultCode
	}{
		{"upright crosses", upright, horizontal(0.5), OK},
		{"upright touches at base", upright, horizontal(0), OK},
		{"upright below plane", upright, horizontal(5), NoIntersection},
		{"flat in plane", flat, horizontal(0), Coplanar},
		{"flat under plane", flat, horizontal(1), Parallel},
		{"degenerate plane", flat, geom.NewPlane(pt(0, 0, 0), dir(0, 0, 0)), Degenerate},
		{"degenerate triangle", geom.NewTriangle3(pt(0, 0, 0), pt(1, 1, 1), pt(2, 2, 2)), horizontal(0), Degenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrianglePlane(tt.tri, tt.plane); got != tt.want {
				t.Errorf("TrianglePlane() = %v, want %v", got, tt.want)
			}
			if got := PlaneTriangle(tt.plane, tt.tri); got != tt.want {
				t.Errorf("PlaneTriangle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrianglePlaneFarPlane(t *testing.T) {
	// every edge parameter overflows float32, but only past the edge's end
	p := func(x, y, z float32) geom.Point3[float32] { return geom.NewPoint3(x, y, z) }
	tri := geom.NewTriangle3(p(0, 0, 0), p(1, 0, 0), p(0, 1, 0))
	far := geom.NewPlane(p(0, 0, 3e38), geom.NewUnitVector3[float32](1, 2, 3))
	if got := TrianglePlane(tri, far); got != NoIntersection {
		t.Errorf("TrianglePlane() = %v, want no-intersection", got)
	}

	tri64 := geom.NewTriangle3(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	far64 := geom.NewPlane(pt(0, 0, 3e38), dir(1, 2, 3))
	if got := TrianglePlane(tri64, far64); got != NoIntersection {
		t.Errorf("TrianglePlane(float64) = %v, want no-intersection", got)
	}
}

func TestPlaneOverflowedOffset(t *testing.T) {
	// base - origin overflows to +Inf along the normal
	pl := geom.NewPlane(pt(math.MaxFloat64, 0, 0), dir(1, 0, 0))
	origin := pt(-math.MaxFloat64, 0, 0)

	tests := []struct {
		name string
		fn   func() (geom.Point3[float64], ResultCode)
		want ResultCode
	}{
		{"ray away", func() (geom.Point3[float64], ResultCode) {
			return PlaneRay(pl, geom.NewRay3(origin, dir(-1, 0, 0)))
		}, NoIntersection},
		{"ray toward", func() (geom.Point3[float64], ResultCode) {
			return PlaneRay(pl, geom.NewRay3(origin, dir(1, 0, 0)))
		}, Overflow},
		{"segment short of plane", func() (geom.Point3[float64], ResultCode) {
			return PlaneSegment(pl, geom.NewSegment3(origin, pt(0, 0, 0)))
		}, NoIntersection},
		{"line", func() (geom.Point3[float64], ResultCode) {
			return PlaneLine(pl, geom.NewLine3(origin, pt(0, 0, 0)))
		}, Overflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, code := tt.fn()
			if code != tt.want {
				t.Fatalf("code = %v, want %v", code, tt.want)
			}
			if !isSentinel(got) {
				t.Errorf("point = %v, want sentinel", got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Triangle x Triangle
// ---------------------------------------------------------------------------

func TestTriangleTriangle(t *testing.T) {
	base := geom.NewTriangle3(pt(0, 0, 0), pt(2, 0, 0), pt(0, 2, 0))
	tri := func(a, b, c [3]float64) geom.Triangle3[float64] {
		return geom.NewTriangle3(pt(a[0], a[1], a[2]), pt(b[0], b[1], b[2]), pt(c[0], c[1], c[2]))
	}

	tests := []struct {
		name  string
		other geom.Triangle3[float64]
		want  ResultCode
	}{
		{"piercing", tri([3]float64{0.5, 0.5, -1}, [3]float64{0.5, 0.5, 1}, [3]float64{1.5, 0.5, 0}), OK},
		{"above", tri([3]float64{0, 0, 5}, [3]float64{1, 0, 5}, [3]float64{0, 1, 6}), NoIntersection},
		{"plane crosses but triangles apart", tri([3]float64{5, 5, -1}, [3]float64{5, 5, 1}, [3]float64{6, 5, 0}), NoIntersection},
		{"coplanar overlapping", tri([3]float64{0.5, 0.5, 0}, [3]float64{3, 0.5, 0}, [3]float64{0.5, 3, 0}), OK},
		{"coplanar contained", tri([3]float64{0.2, 0.2, 0}, [3]float64{0.6, 0.2, 0}, [3]float64{0.2, 0.6, 0}), OK},
		{"coplanar disjoint", tri([3]float64{5, 5, 0}, [3]float64{6, 5, 0}, [3]float64{5, 6, 0}), NoIntersection},
		{"degenerate", tri([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, [3]float64{2, 2, 2}), Degenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TriangleTriangle(base, tt.other); got != tt.want {
				t.Errorf("TriangleTriangle(base, other) = %v, want %v", got, tt.want)
			}
			if got := TriangleTriangle(tt.other, base); got != tt.want {
				t.Errorf("TriangleTriangle(other, base) = %v, want %v", got, tt.want)
			}
		})
	}

	// contains the base triangle entirely
	big := tri([3]float64{-1, -1, 0}, [3]float64{10, -1, 0}, [3]float64{-1, 10, 0})
	if got := TriangleTriangle(base, big); got != OK {
		t.Errorf("TriangleTriangle(base, enclosing) = %v, want ok", got)
	}
}

func checkTriTriSymmetry[T numeric.Float](t *testing.T) {
	rng := rand.New(rand.NewSource(1997))
	coord := func() T { return T(rng.Float64()*2 - 1) }
	randomTri := func() geom.Triangle3[T] {
		return geom.NewTriangle3(
			geom.NewPoint3(coord(), coord(), coord()),
			geom.NewPoint3(coord(), coord(), coord()),
			geom.NewPoint3(coord(), coord(), coord()),
		)
	}

	counts := map[ResultCode]int{}
	for i := 0; i < 5000; i++ {
		a, b := randomTri(), randomTri()
		ab := TriangleTriangle(a, b)
		ba := TriangleTriangle(b, a)
		if ab != ba {
			t.Fatalf("TriangleTriangle(%v, %v) = %v, reversed = %v", a, b, ab, ba)
		}
		counts[ab]++
	}
	if counts[OK] == 0 || counts[NoIntersection] == 0 {
		t.Errorf("random sample not mixed: %v", counts)
	}
}

func TestTriangleTriangleSymmetry(t *testing.T) {
	t.Run("float32", checkTriTriSymmetry[float32])
	t.Run("float64", checkTriTriSymmetry[float64])
}

// ---------------------------------------------------------------------------
// Degenerate operands
// ---------------------------------------------------------------------------

func TestDegenerateOperands(t *testing.T) {
	badPlane := geom.NewPlane(pt(0, 0, 0), dir(0, 0, 0))
	badLine := geom.NewLine3(pt(1, 1, 1), pt(1, 1, 1))
	badRay := geom.NewRay3(geom.InvalidPoint3[float64](), dir(0, 0, 1))
	badSeg := geom.NewSegment3(pt(0, 0, 0), pt(0, 0, 0))
	badTri := geom.NewTriangle3(pt(0, 0, 0), pt(0, 0, 0), pt(0, 1, 0))

	goodPlane := geom.NewPlane(pt(0, 0, 0), dir(0, 0, 1))
	goodLine := geom.NewLine3(pt(0.1, 0.1, 1), pt(0.1, 0.1, -1))
	goodRay := geom.NewRay3(pt(0.1, 0.1, 1), dir(0, 0, -1))
	goodSeg := geom.NewSegment3(pt(0.1, 0.1, 1), pt(0.1, 0.1, -1))
	goodTri := unitTriangle()

	type call func() (geom.Point3[float64], ResultCode)
	calls := map[string]call{
		"PlaneLine bad plane":       func() (geom.Point3[float64], ResultCode) { return PlaneLine(badPlane, goodLine) },
		"LinePlane bad line":        func() (geom.Point3[float64], ResultCode) { return LinePlane(badLine, goodPlane) },
		"PlaneRay bad ray":          func() (geom.Point3[float64], ResultCode) { return PlaneRay(goodPlane, badRay) },
		"PlaneSegment bad segment":  func() (geom.Point3[float64], ResultCode) { return PlaneSegment(goodPlane, badSeg) },
		"TriangleRay bad triangle":  func() (geom.Point3[float64], ResultCode) { return TriangleRay(badTri, goodRay) },
		"RayTriangle bad ray":       func() (geom.Point3[float64], ResultCode) { return RayTriangle(badRay, goodTri) },
		"TriangleLine bad line":     func() (geom.Point3[float64], ResultCode) { return TriangleLine(goodTri, badLine) },
		"SegmentTriangle bad tri":   func() (geom.Point3[float64], ResultCode) { return SegmentTriangle(goodSeg, badTri) },
		"TriangleSegment bad seg":   func() (geom.Point3[float64], ResultCode) { return TriangleSegment(goodTri, badSeg) },
		"SegmentPlane bad plane":    func() (geom.Point3[float64], ResultCode) { return SegmentPlane(goodSeg, badPlane) },
		"RayPlane bad plane":        func() (geom.Point3[float64], ResultCode) { return RayPlane(goodRay, badPlane) },
		"LineTriangle bad triangle": func() (geom.Point3[float64], ResultCode) { return LineTriangle(goodLine, badTri) },
	}
	for name, c := range calls {
		got, code := c()
		if code != Degenerate {
			t.Errorf("%s: code = %v, want degenerate", name, code)
		}
		if !isSentinel(got) {
			t.Errorf("%s: point = %v, want sentinel", name, got)
		}
	}

	// the good operands do intersect
	for name, c := range map[string]call{
		"PlaneLine":       func() (geom.Point3[float64], ResultCode) { return PlaneLine(goodPlane, goodLine) },
		"TriangleRay":     func() (geom.Point3[float64], ResultCode) { return TriangleRay(goodTri, goodRay) },
		"TriangleSegment": func() (geom.Point3[float64], ResultCode) { return TriangleSegment(goodTri, goodSeg) },
	} {
		if _, code := c(); code != OK {
			t.Errorf("%s: code = %v, want ok", name, code)
		}
	}
}
