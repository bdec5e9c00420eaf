package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/robust3d/pkg/intersect"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpShape wraps a shape so it can be passed between builtins.
type sexpShape struct {
	shape shape
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	sh := s.shape
	switch sh.kind {
	case kindPoint, kindVector:
		return fmt.Sprintf("(%s %g %g %g)", sh.kind, sh.a[0], sh.a[1], sh.a[2])
	case kindTriangle:
		return fmt.Sprintf("(triangle %v %v %v)", sh.a, sh.b, sh.c)
	case kindPlane:
		if sh.byPoints {
			return fmt.Sprintf("(plane %v %v %v)", sh.a, sh.b, sh.c)
		}
	}
	return fmt.Sprintf("(%s %v %v)", sh.kind, sh.a, sh.b)
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// sexpHit wraps the Query recorded by an intersect call.
type sexpHit struct {
	query Query
}

func (h *sexpHit) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(hit %d %s %s)", h.query.Index, h.query.Pair, h.query.Code)
}
func (h *sexpHit) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string and returns the
// keyword name without its prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
func toKeywordString(s zygo.Sexp) (string, error) {
	if name, ok := isKW(s); ok {
		return name, nil
	}
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
}

// toShape extracts a shape of one of the wanted kinds.
func toShape(s zygo.Sexp, want ...kind) (*shape, error) {
	v, ok := s.(*sexpShape)
	if !ok {
		return nil, fmt.Errorf("expected geometry, got %T (%s)", s, s.SexpString(nil))
	}
	if len(want) == 0 {
		return &v.shape, nil
	}
	names := make([]string, len(want))
	for i, k := range want {
		if v.shape.kind == k {
			return &v.shape, nil
		}
		names[i] = k.String()
	}
	return nil, fmt.Errorf("expected %s, got %s", strings.Join(names, " or "), v.shape.kind)
}

func toPoint(s zygo.Sexp) ([3]float64, error) {
	sh, err := toShape(s, kindPoint)
	if err != nil {
		return [3]float64{}, err
	}
	return sh.a, nil
}

func toVector(s zygo.Sexp) ([3]float64, error) {
	sh, err := toShape(s, kindVector)
	if err != nil {
		return [3]float64{}, err
	}
	return sh.a, nil
}

func toHit(s zygo.Sexp) (Query, error) {
	if h, ok := s.(*sexpHit); ok {
		return h.query, nil
	}
	return Query{}, fmt.Errorf("expected intersect result, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// coords reads three numbers.
func coords(fn string, args []zygo.Sexp) ([3]float64, error) {
	var v [3]float64
	if len(args) != 3 {
		return v, fmt.Errorf("%s requires exactly 3 arguments, got %d", fn, len(args))
	}
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return v, fmt.Errorf("%s: %c: %w", fn, "xyz"[i], err)
		}
		v[i] = f
	}
	return v, nil
}

// points reads n point arguments, or a single list holding them.
func points(fn string, args []zygo.Sexp, n int) ([][3]float64, error) {
	if len(args) == 1 {
		items, err := sexpListToSlice(args[0])
		if err == nil {
			args = items
		}
	}
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d points, got %d", fn, n, len(args))
	}
	pts := make([][3]float64, n)
	for i, a := range args {
		p, err := toPoint(a)
		if err != nil {
			return nil, fmt.Errorf("%s: point %d: %w", fn, i+1, err)
		}
		pts[i] = p
	}
	return pts, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the query builtins into a zygomys environment.
// intersect calls are recorded in s.report.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens and hyphenated names are recognizable.
func registerBuiltins(env *zygo.Zlisp, s *session) {

	// -----------------------------------------------------------------------
	// (point 1 2 3) (vec 0 0 1)
	// -----------------------------------------------------------------------
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		p, err := coords("point", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{shape{kind: kindPoint, a: p}}, nil
	})
	env.AddFunction("vec", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		v, err := coords("vec", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{shape{kind: kindVector, a: v}}, nil
	})

	// -----------------------------------------------------------------------
	// (line p q) (ray p q) (ray p v)
	//
	// A line through two points, or from a point along a vector. A ray from
	// a point through another point, or along a direction.
	// -----------------------------------------------------------------------
	lineLike := func(k kind) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			fn := k.String()
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires a base point and a point or vector", fn)
			}
			base, err := toPoint(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: base: %w", fn, err)
			}
			other, err := toShape(args[1], kindPoint, kindVector)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			return &sexpShape{shape{kind: k, a: base, b: other.a, byPoints: other.kind == kindPoint}}, nil
		}
	}
	env.AddFunction("line", lineLike(kindLine))
	env.AddFunction("ray", lineLike(kindRay))

	// -----------------------------------------------------------------------
	// (segment p q)
	// -----------------------------------------------------------------------
	env.AddFunction("segment", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pts, err := points("segment", args, 2)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{shape{kind: kindSegment, a: pts[0], b: pts[1], byPoints: true}}, nil
	})

	// -----------------------------------------------------------------------
	// (plane p n) (plane p q r) (plane :at p :normal n)
	// -----------------------------------------------------------------------
	env.AddFunction("plane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		at, hasAt := pa.kw["at"]
		normal, hasNormal := pa.kw["normal"]
		switch {
		case hasAt || hasNormal:
			if !hasAt || !hasNormal || len(pa.positional) > 0 {
				return zygo.SexpNull, fmt.Errorf("plane: :at and :normal must be given together")
			}
		case len(pa.positional) == 2:
			at, normal = pa.positional[0], pa.positional[1]
		case len(pa.positional) == 3:
			pts, err := points("plane", pa.positional, 3)
			if err != nil {
				return zygo.SexpNull, err
			}
			return &sexpShape{shape{kind: kindPlane, a: pts[0], b: pts[1], c: pts[2], byPoints: true}}, nil
		default:
			return zygo.SexpNull, fmt.Errorf("plane requires a point and a normal, or three points")
		}

		base, err := toPoint(at)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: at: %w", err)
		}
		n, err := toVector(normal)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: normal: %w", err)
		}
		return &sexpShape{shape{kind: kindPlane, a: base, b: n}}, nil
	})

	// -----------------------------------------------------------------------
	// (triangle p q r) (triangle (list p q r))
	// -----------------------------------------------------------------------
	env.AddFunction("triangle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pts, err := points("triangle", args, 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{shape{kind: kindTriangle, a: pts[0], b: pts[1], c: pts[2]}}, nil
	})

	// -----------------------------------------------------------------------
	// (intersect a b)
	// -----------------------------------------------------------------------
	env.AddFunction("intersect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("intersect requires exactly 2 arguments, got %d", len(args))
		}
		a, err := toShape(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("intersect: first: %w", err)
		}
		b, err := toShape(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("intersect: second: %w", err)
		}
		q, err := s.intersect(a, b)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("intersect: %w", err)
		}
		return &sexpHit{query: q}, nil
	})

	// -----------------------------------------------------------------------
	// (hit-code h) (hit-point h) (expect h :ok)
	// -----------------------------------------------------------------------
	env.AddFunction("hit_code", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("hit-code requires an intersect result")
		}
		q, err := toHit(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("hit-code: %w", err)
		}
		return &zygo.SexpStr{S: q.Code.String()}, nil
	})

	env.AddFunction("hit_point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("hit-point requires an intersect result")
		}
		q, err := toHit(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("hit-point: %w", err)
		}
		if !q.HasPoint {
			return zygo.SexpNull, fmt.Errorf("hit-point: %s queries do not produce a point", q.Pair)
		}
		return &sexpShape{shape{kind: kindPoint, a: q.Point}}, nil
	})

	env.AddFunction("expect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("expect requires an intersect result and a result code")
		}
		q, err := toHit(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("expect: %w", err)
		}
		codeName, err := toKeywordString(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("expect: %w", err)
		}
		want, ok := intersect.ParseResultCode(codeName)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("expect: unknown result code %q", codeName)
		}
		if q.Code != want {
			return zygo.SexpNull, fmt.Errorf("expect: query %d (%s) is %s, want %s", q.Index, q.Pair, q.Code, want)
		}
		return args[0], nil
	})

	// (check cond "message") fails the program when cond is false.
	env.AddFunction("check", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 || len(args) > 2 {
			return zygo.SexpNull, fmt.Errorf("check requires a condition and an optional message")
		}
		ok, isBool := args[0].(*zygo.SexpBool)
		if !isBool {
			return zygo.SexpNull, fmt.Errorf("check: expected boolean, got %T (%s)", args[0], args[0].SexpString(nil))
		}
		if ok.Val {
			return args[0], nil
		}
		msg := "condition is false"
		if len(args) == 2 {
			if str, isStr := args[1].(*zygo.SexpStr); isStr {
				msg = str.S
			}
		}
		return zygo.SexpNull, fmt.Errorf("check: %s", msg)
	})

	// -----------------------------------------------------------------------
	// (status e) (coord p :x)
	// -----------------------------------------------------------------------
	env.AddFunction("status", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("status requires one geometry argument")
		}
		sh, err := toShape(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("status: %w", err)
		}
		return &zygo.SexpStr{S: statusName(statusIn(s.cfg.Precision, sh))}, nil
	})

	env.AddFunction("coord", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("coord requires a point or vector and an axis")
		}
		sh, err := toShape(args[0], kindPoint, kindVector)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("coord: %w", err)
		}
		axis, err := toKeywordString(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("coord: axis: %w", err)
		}
		i := strings.Index("xyz", axis)
		if len(axis) != 1 || i < 0 {
			return zygo.SexpNull, fmt.Errorf("coord: invalid axis %q, expected x, y, or z", axis)
		}
		return &zygo.SexpFloat{Val: sh.a[i]}, nil
	})
}
