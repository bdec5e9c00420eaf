package engine

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/chazu/robust3d/pkg/intersect"
)

// ---------------------------------------------------------------------------
// Preprocessing tests
// ---------------------------------------------------------------------------

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(plane :at p :normal n)`,
			expect: `(plane "__kw_at" p "__kw_normal" n)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "escaped quote in string",
			input:  `"a \" :b" :c`,
			expect: `"a \" :b" "__kw_c"`,
		},
		{
			name:   "backtick string preserved",
			input:  "`hit-point :x`",
			expect: "`hit-point :x`",
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(hit-point h)`,
			expect: `(hit_point h)`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "negative number preserved",
			input:  `(vec 0 0 -1)`,
			expect: `(vec 0 0 -1)`,
		},
		{
			name:   "exponent preserved",
			input:  `(point 1e-5 2.5e-3 0)`,
			expect: `(point 1e-5 2.5e-3 0)`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "hyphen in keyword preserved",
			input:  `(expect h :no-intersection)`,
			expect: `(expect h "__kw_no-intersection")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Query tests
// ---------------------------------------------------------------------------

func evaluate(t *testing.T, eng *Engine, source string) *Report {
	t.Helper()
	rep, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if rep == nil {
		t.Fatal("expected non-nil report")
	}
	return rep
}

func TestTriangleRayQuery(t *testing.T) {
	eng := NewEngine()

	rep := evaluate(t, eng, `
(def tri (triangle (point 0 0 0) (point 1 0 0) (point 0 1 0)))
(def r (ray (point 0.25 0.25 1) (vec 0 0 -1)))
(expect (intersect tri r) :ok)
`)
	if len(rep.Queries) != 1 {
		t.Fatalf("expected 1 query, got %d", len(rep.Queries))
	}
	q := rep.Queries[0]
	if q.Pair != "triangle/ray" {
		t.Errorf("Pair = %q, want triangle/ray", q.Pair)
	}
	if q.Code != intersect.OK || !q.HasPoint {
		t.Fatalf("Code = %v, HasPoint = %v, want ok with a point", q.Code, q.HasPoint)
	}
	if q.Point != [3]float64{0.25, 0.25, 0} {
		t.Errorf("Point = %v, want [0.25 0.25 0]", q.Point)
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", rep.Warnings)
	}
}

func TestQueryPairs(t *testing.T) {
	const ground = `(plane (point 0 0 0) (vec 0 0 1))`
	const tri = `(triangle (point 0 0 0) (point 1 0 0) (point 0 1 0))`

	tests := []struct {
		name  string
		a, b  string
		pair  string
		code  intersect.ResultCode
		point bool
	}{
		{"plane line", ground, `(line (point 0 0 1) (point 0 0 2))`, "plane/line", intersect.OK, true},
		{"line plane", `(line (point 0 0 1) (vec 0 0 1))`, ground, "line/plane", intersect.OK, true},
		{"plane ray away", ground, `(ray (point 0 0 1) (vec 0 0 1))`, "plane/ray", intersect.NoIntersection, true},
		{"ray through point", `(ray (point 0 0 1) (point 0 0 -1))`, ground, "ray/plane", intersect.OK, true},
		{"plane segment short", ground, `(segment (point 0 0 2) (point 0 0 1))`, "plane/segment", intersect.NoIntersection, true},
		{"segment plane parallel", `(segment (point 0 0 1) (point 1 0 1))`, ground, "segment/plane", intersect.Parallel, true},
		{"triangle line", tri, `(line (point 0.25 0.25 1) (point 0.25 0.25 2))`, "triangle/line", intersect.OK, true},
		{"segment triangle", `(segment (point 0.25 0.25 1) (point 0.25 0.25 -1))`, tri, "segment/triangle", intersect.OK, true},
		{"ray triangle coplanar", `(ray (point 0 0 0) (vec 1 1 0))`, tri, "ray/triangle", intersect.Coplanar, true},
		{"triangle plane", tri, ground, "triangle/plane", intersect.Coplanar, false},
		{"plane triangle", `(plane (point 0 0 5) (vec 0 0 1))`, tri, "plane/triangle", intersect.Parallel, false},
		{"triangle triangle", tri, `(triangle (point 0.2 0.2 -1) (point 0.2 0.2 1) (point 0.6 0.2 0))`, "triangle/triangle", intersect.OK, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := evaluate(t, quietEngine(DefaultConfig()), "(intersect "+tt.a+" "+tt.b+")")
			if len(rep.Queries) != 1 {
				t.Fatalf("expected 1 query, got %d", len(rep.Queries))
			}
			q := rep.Queries[0]
			if q.Pair != tt.pair {
				t.Errorf("Pair = %q, want %q", q.Pair, tt.pair)
			}
			if q.Code != tt.code {
				t.Errorf("Code = %v, want %v", q.Code, tt.code)
			}
			if q.HasPoint != tt.point {
				t.Errorf("HasPoint = %v, want %v", q.HasPoint, tt.point)
			}
		})
	}
}

func TestPlaneForms(t *testing.T) {
	forms := []string{
		`(plane (point 0 0 0) (vec 0 0 1))`,
		`(plane (point 0 0 0) (point 1 0 0) (point 0 1 0))`,
		`(plane :at (point 0 0 0) :normal (vec 0 0 1))`,
		`(plane :normal (vec 0 0 2) :at (point 0 0 0))`,
	}
	for _, form := range forms {
		t.Run(form, func(t *testing.T) {
			rep := evaluate(t, NewEngine(), "(intersect "+form+" (line (point 1 2 3) (point 1 2 4)))")
			q := rep.Queries[0]
			if q.Code != intersect.OK || q.Point != [3]float64{1, 2, 0} {
				t.Errorf("query = %+v, want ok at [1 2 0]", q)
			}
		})
	}
}

func TestHitPointChaining(t *testing.T) {
	rep := evaluate(t, NewEngine(), `
(def ground (plane (point 0 0 0) (vec 0 0 1)))
(def h (intersect ground (line (point 1 2 3) (point 1 2 4))))
(def p (hit-point h))
(def up (ray p (vec 0 0 1)))
(expect (intersect ground up) :ok)
(coord p :x)
(status up)
`)
	if len(rep.Queries) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(rep.Queries))
	}
	if got := rep.Queries[1]; got.Index != 1 || got.Point != [3]float64{1, 2, 0} {
		t.Errorf("second query = %+v, want index 1 at [1 2 0]", got)
	}
}

func TestBuiltinErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"unsupported pair", `(intersect (line (point 0 0 0) (point 1 0 0)) (line (point 0 1 0) (point 1 1 0)))`},
		{"point operand", `(intersect (point 0 0 0) (plane (point 0 0 0) (vec 0 0 1)))`},
		{"wrong arity", `(point 1 2)`},
		{"non-number", `(point 1 2 "three")`},
		{"triangle of vectors", `(triangle (vec 0 0 0) (vec 1 0 0) (vec 0 1 0))`},
		{"plane missing normal", `(plane :at (point 0 0 0))`},
		{"hit-point of tri/tri", `(hit-point (intersect (triangle (point 0 0 0) (point 1 0 0) (point 0 1 0)) (triangle (point 0 0 1) (point 1 0 1) (point 0 1 1))))`},
		{"expect mismatch", `(expect (intersect (plane (point 0 0 0) (vec 0 0 1)) (ray (point 0 0 1) (vec 0 0 1))) :ok)`},
		{"expect unknown code", `(expect (intersect (plane (point 0 0 0) (vec 0 0 1)) (ray (point 0 0 1) (vec 0 0 1))) :maybe)`},
		{"coord bad axis", `(coord (point 1 2 3) :w)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, evalErrs, err := NewEngine().Evaluate(tt.source)
			if err != nil {
				t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
			}
			if rep != nil {
				t.Error("expected nil report on eval error")
			}
			if len(evalErrs) == 0 {
				t.Fatal("expected at least one eval error")
			}
			if evalErrs[0].Message == "" {
				t.Error("eval error should have a non-empty message")
			}
		})
	}
}

func TestTriangleFromList(t *testing.T) {
	rep := evaluate(t, NewEngine(), `
(def corners (list (point 0 0 0) (point 1 0 0) (point 0 1 0)))
(intersect (triangle corners) (segment (point 0.1 0.1 1) (point 0.1 0.1 -1)))
`)
	if got := rep.Queries[0].Code; got != intersect.OK {
		t.Errorf("Code = %v, want ok", got)
	}
}

func TestDegenerateOperandWarns(t *testing.T) {
	rep := evaluate(t, NewEngine(), `
(intersect (triangle (point 0 0 0) (point 1 1 1) (point 2 2 2))
           (plane (point 0 0 0) (vec 0 0 1)))
(intersect (plane (point 0 0 0) (vec 0 0 0))
           (ray (point 0 0 1) (vec 0 0 -1)))
`)
	if len(rep.Queries) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(rep.Queries))
	}
	for _, q := range rep.Queries {
		if q.Code != intersect.Degenerate {
			t.Errorf("query %d: Code = %v, want degenerate", q.Index, q.Code)
		}
	}
	if len(rep.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", rep.Warnings)
	}
	if w := rep.Warnings[0]; w.Query != 0 || !strings.Contains(w.Message, "triangle operand is degenerate") {
		t.Errorf("warning = %+v", w)
	}
	if w := rep.Warnings[1]; w.Query != 1 || !strings.Contains(w.Message, "plane operand is degenerate") {
		t.Errorf("warning = %+v", w)
	}
	if counts := rep.Counts(); counts[intersect.Degenerate] != 2 {
		t.Errorf("Counts() = %v", counts)
	}
}

// ---------------------------------------------------------------------------
// Precision tests
// ---------------------------------------------------------------------------

const overflowingRay = `
(intersect (plane (point 0 0 0) (vec 0 0 1))
           (ray (point 0 0 3.0e38) (vec 1 0 -0.001)))
`

func TestFloat32Widening(t *testing.T) {
	var buf bytes.Buffer
	eng := NewEngineWithConfig(Config{
		Precision:       Float32,
		WidenOnOverflow: true,
		Logger:          log.New(&buf, "", 0),
	})

	rep := evaluate(t, eng, overflowingRay)
	q := rep.Queries[0]
	if !q.Widened || q.Precision != Float64 {
		t.Errorf("Widened = %v, Precision = %v, want widened to float64", q.Widened, q.Precision)
	}
	if q.Code != intersect.OK {
		t.Errorf("Code = %v, want ok after widening", q.Code)
	}
	if !strings.Contains(buf.String(), "widened") {
		t.Errorf("log = %q, want widening notice", buf.String())
	}
	if len(rep.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", rep.Warnings)
	}
}

func TestFloat32WithoutWidening(t *testing.T) {
	eng := quietEngine(Config{Precision: Float32})

	rep := evaluate(t, eng, overflowingRay)
	q := rep.Queries[0]
	if q.Widened || q.Precision != Float32 {
		t.Errorf("Widened = %v, Precision = %v, want float32", q.Widened, q.Precision)
	}
	if q.Code != intersect.Overflow {
		t.Errorf("Code = %v, want overflow", q.Code)
	}
	for i, c := range q.Point {
		if !math.IsInf(c, 1) {
			t.Errorf("Point[%d] = %v, want +Inf", i, c)
		}
	}
}

func TestStatusByPrecision(t *testing.T) {
	// 1e-40 is subnormal in float32 but normal in float64
	tiny := &shape{kind: kindPoint, a: [3]float64{1e-40, 0, 0}}
	if got := statusName(statusIn(Float32, tiny)); got != "subnormal" {
		t.Errorf("float32 status = %q, want subnormal", got)
	}
	if got := statusName(statusIn(Float64, tiny)); got != "ok" {
		t.Errorf("float64 status = %q, want ok", got)
	}

	// 1e39 overflows float32
	huge := &shape{kind: kindPoint, a: [3]float64{1e39, 0, 0}}
	if got := statusName(statusIn(Float32, huge)); got != "invalid" {
		t.Errorf("float32 status = %q, want invalid", got)
	}

	flat := &shape{kind: kindSegment, a: [3]float64{1, 1, 1}, b: [3]float64{1, 1, 1}, byPoints: true}
	if got := statusName(statusIn(Float64, flat)); got != "degenerate" {
		t.Errorf("segment status = %q, want degenerate", got)
	}
}

func TestCommutedDispatchAgrees(t *testing.T) {
	plane := &shape{kind: kindPlane, a: [3]float64{0, 0, 0}, b: [3]float64{0, 0, 1}}
	tri := &shape{kind: kindTriangle, a: [3]float64{0, 0, 0}, b: [3]float64{1, 0, 0}, c: [3]float64{0, 1, 0}}
	others := []*shape{
		{kind: kindLine, a: [3]float64{0.2, 0.2, 1}, b: [3]float64{0.2, 0.2, 2}, byPoints: true},
		{kind: kindRay, a: [3]float64{0.2, 0.2, 1}, b: [3]float64{0, 0, -1}},
		{kind: kindSegment, a: [3]float64{0.2, 0.2, 1}, b: [3]float64{0.2, 0.2, -1}, byPoints: true},
	}
	for _, planar := range []*shape{plane, tri} {
		for _, o := range others {
			ab, err := run[float64](planar, o)
			if err != nil {
				t.Fatalf("run(%s, %s): %v", planar.kind, o.kind, err)
			}
			ba, err := run[float64](o, planar)
			if err != nil {
				t.Fatalf("run(%s, %s): %v", o.kind, planar.kind, err)
			}
			if ab != ba {
				t.Errorf("%s/%s = %+v, reversed = %+v", planar.kind, o.kind, ab, ba)
			}
		}
	}
}
