package engine

import (
	"fmt"

	"github.com/chazu/robust3d/pkg/geom"
	"github.com/chazu/robust3d/pkg/kernel"
	zygo "github.com/glycerine/zygomys/zygo"
)

// sexpSolid wraps a kernel solid.
type sexpSolid struct {
	solid kernel.Solid
}

func (s *sexpSolid) SexpString(ps *zygo.PrintState) string {
	lo, hi := s.solid.Bounds()
	return fmt.Sprintf("(solid %v %v)", lo, hi)
}
func (s *sexpSolid) Type() *zygo.RegisteredType { return nil }

// sexpMesh wraps a triangulated solid.
type sexpMesh struct {
	mesh *kernel.Mesh
}

func (m *sexpMesh) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(mesh %d triangles)", m.mesh.TriangleCount())
}
func (m *sexpMesh) Type() *zygo.RegisteredType { return nil }

func toSolid(s zygo.Sexp) (kernel.Solid, error) {
	if v, ok := s.(*sexpSolid); ok {
		return v.solid, nil
	}
	return nil, fmt.Errorf("expected solid, got %T (%s)", s, s.SexpString(nil))
}

func toMesh(s zygo.Sexp) (*kernel.Mesh, error) {
	if v, ok := s.(*sexpMesh); ok {
		return v.mesh, nil
	}
	return nil, fmt.Errorf("expected mesh, got %T (%s)", s, s.SexpString(nil))
}

// numbers reads n numeric arguments.
func numbers(fn string, args []zygo.Sexp, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d numbers, got %d", fn, n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", fn, i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

// meshHits runs a ray or segment against m, nearest hit first.
func meshHits(m *kernel.Mesh, probe zygo.Sexp) ([]kernel.Hit, error) {
	sh, err := toShape(probe, kindRay, kindSegment)
	if err != nil {
		return nil, err
	}
	if sh.kind == kindRay {
		return m.RayHits(rayOf[float64](sh)), nil
	}
	return m.SegmentHits(segmentOf[float64](sh)), nil
}

// registerSolidBuiltins installs the builtins that build solids with the
// configured kernel, triangulate them, and probe the resulting meshes. Mesh
// probes always run in float64.
func registerSolidBuiltins(env *zygo.Zlisp, s *session) {
	k := s.cfg.Kernel

	// -----------------------------------------------------------------------
	// (box x y z) (sphere r)
	// -----------------------------------------------------------------------
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		v, err := numbers("box", args, 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		solid, err := k.Box(v[0], v[1], v[2])
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpSolid{solid}, nil
	})
	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		v, err := numbers("sphere", args, 1)
		if err != nil {
			return zygo.SexpNull, err
		}
		solid, err := k.Sphere(v[0])
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpSolid{solid}, nil
	})

	// -----------------------------------------------------------------------
	// (union a b) (difference a b)
	// -----------------------------------------------------------------------
	boolean := func(fn string, op func(a, b kernel.Solid) kernel.Solid) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 2 solids, got %d", fn, len(args))
			}
			a, err := toSolid(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: first: %w", fn, err)
			}
			b, err := toSolid(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: second: %w", fn, err)
			}
			return &sexpSolid{op(a, b)}, nil
		}
	}
	env.AddFunction("union", boolean("union", k.Union))
	env.AddFunction("difference", boolean("difference", k.Difference))

	// -----------------------------------------------------------------------
	// (move s v) (rotate s x y z)
	// -----------------------------------------------------------------------
	env.AddFunction("move", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("move requires a solid and a vector")
		}
		solid, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("move: %w", err)
		}
		v, err := toVector(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("move: %w", err)
		}
		return &sexpSolid{k.Translate(solid, geom.NewVector3(v[0], v[1], v[2]))}, nil
	})
	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("rotate requires a solid and three angles in degrees")
		}
		solid, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
		}
		deg, err := numbers("rotate", args[1:], 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpSolid{k.Rotate(solid, deg[0], deg[1], deg[2])}, nil
	})

	// -----------------------------------------------------------------------
	// (mesh s) (triangle-count m) (mesh-area m)
	// -----------------------------------------------------------------------
	env.AddFunction("mesh", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("mesh requires one solid")
		}
		solid, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mesh: %w", err)
		}
		m, err := k.Triangulate(solid)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mesh: %w", err)
		}
		if n := m.DegenerateCount(); n > 0 {
			s.warn(-1, "mesh: %d of %d triangles are degenerate", n, m.TriangleCount())
		}
		return &sexpMesh{m}, nil
	})
	env.AddFunction("triangle_count", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("triangle-count requires one mesh")
		}
		m, err := toMesh(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("triangle-count: %w", err)
		}
		return &zygo.SexpInt{Val: int64(m.TriangleCount())}, nil
	})
	env.AddFunction("mesh_area", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("mesh-area requires one mesh")
		}
		m, err := toMesh(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mesh-area: %w", err)
		}
		return &zygo.SexpFloat{Val: m.Area()}, nil
	})

	// -----------------------------------------------------------------------
	// (mesh-hits m probe) (first-hit m probe) (section m plane) (collides a b)
	// -----------------------------------------------------------------------
	env.AddFunction("mesh_hits", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("mesh-hits requires a mesh and a ray or segment")
		}
		m, err := toMesh(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mesh-hits: %w", err)
		}
		hits, err := meshHits(m, args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mesh-hits: %w", err)
		}
		return &zygo.SexpInt{Val: int64(len(hits))}, nil
	})
	env.AddFunction("first_hit", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("first-hit requires a mesh and a ray or segment")
		}
		m, err := toMesh(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("first-hit: %w", err)
		}
		hits, err := meshHits(m, args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("first-hit: %w", err)
		}
		if len(hits) == 0 {
			return zygo.SexpNull, fmt.Errorf("first-hit: probe misses the mesh")
		}
		x, y, z := hits[0].Point.Components()
		return &sexpShape{shape{kind: kindPoint, a: [3]float64{x, y, z}}}, nil
	})
	env.AddFunction("section", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("section requires a mesh and a plane")
		}
		m, err := toMesh(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("section: %w", err)
		}
		pl, err := toShape(args[1], kindPlane)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("section: %w", err)
		}
		return &zygo.SexpInt{Val: int64(len(m.Section(planeOf[float64](pl))))}, nil
	})
	env.AddFunction("collides", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("collides requires two meshes")
		}
		a, err := toMesh(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("collides: first: %w", err)
		}
		b, err := toMesh(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("collides: second: %w", err)
		}
		return &zygo.SexpBool{Val: a.Collides(b)}, nil
	})
}
