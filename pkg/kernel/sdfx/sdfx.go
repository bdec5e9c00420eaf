// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library, and converts between sdfx
// vectors and matrices and the robust entity types.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/robust3d/pkg/geom"
	"github.com/chazu/robust3d/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// DefaultMeshCells controls marching cubes tessellation resolution.
const DefaultMeshCells = 200

type sdfxSolid struct {
	s sdf.SDF3
}

// Bounds returns the axis-aligned bounding box.
func (s *sdfxSolid) Bounds() (min, max geom.Point3[float64]) {
	bb := s.s.BoundingBox()
	return PointFromVec(bb.Min), PointFromVec(bb.Max)
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	cells int
}

// New returns a kernel that tessellates with DefaultMeshCells.
func New() *SdfxKernel {
	return &SdfxKernel{cells: DefaultMeshCells}
}

// NewWithCells returns a kernel whose marching cubes grid has the given
// number of cells along the longest bounding box axis.
func NewWithCells(cells int) *SdfxKernel {
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	return &SdfxKernel{cells: cells}
}

func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// Box creates a box with its minimum corner at the origin. sdf.Box3D
// centers the box, so it is shifted by half its size.
func (k *SdfxKernel) Box(x, y, z float64) (kernel.Solid, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx: box: %w", err)
	}
	m := sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return wrap(sdf.Transform3D(s, m)), nil
}

// Sphere creates a sphere centered at the origin.
func (k *SdfxKernel) Sphere(radius float64) (kernel.Solid, error) {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, fmt.Errorf("sdfx: sphere: %w", err)
	}
	return wrap(s), nil
}

// Cylinder creates a cylinder along Z centered at the origin.
func (k *SdfxKernel) Cylinder(height, radius float64) (kernel.Solid, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx: cylinder: %w", err)
	}
	return wrap(s), nil
}

// Union returns the union of two solids.
func (k *SdfxKernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *SdfxKernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(b)))
}

// Intersection returns the intersection of two solids.
func (k *SdfxKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b)))
}

// Translate moves a solid by v.
func (k *SdfxKernel) Translate(s kernel.Solid, v geom.Vector3[float64]) kernel.Solid {
	return wrap(sdf.Transform3D(unwrap(s), sdf.Translate3d(VecFromVector(v))))
}

// Rotate rotates a solid by Euler angles in degrees, X first.
func (k *SdfxKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return wrap(sdf.Transform3D(unwrap(s), eulerM44(x, y, z)))
}

func eulerM44(x, y, z float64) sdf.M44 {
	rad := math.Pi / 180.0
	return sdf.RotateZ(z * rad).Mul(sdf.RotateY(y * rad)).Mul(sdf.RotateX(x * rad))
}

// Triangulate converts a solid to a mesh using marching cubes.
func (k *SdfxKernel) Triangulate(s kernel.Solid) (*kernel.Mesh, error) {
	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(unwrap(s), renderer)
	if len(triangles) == 0 {
		return nil, fmt.Errorf("sdfx: triangulate: no surface at %d cells", k.cells)
	}

	m := &kernel.Mesh{Triangles: make([]geom.Triangle3[float64], 0, len(triangles))}
	for _, tri := range triangles {
		m.Triangles = append(m.Triangles, geom.NewTriangle3(
			PointFromVec(tri[0]), PointFromVec(tri[1]), PointFromVec(tri[2]),
		))
	}
	return m, nil
}

// ---- conversions ----

// PointFromVec converts an sdfx vector to a point.
func PointFromVec(v v3.Vec) geom.Point3[float64] {
	return geom.NewPoint3(v.X, v.Y, v.Z)
}

// VectorFromVec converts an sdfx vector to a free vector.
func VectorFromVec(v v3.Vec) geom.Vector3[float64] {
	return geom.NewVector3(v.X, v.Y, v.Z)
}

// VecFromPoint converts a point to an sdfx vector.
func VecFromPoint(p geom.Point3[float64]) v3.Vec {
	return v3.Vec{X: p.X(), Y: p.Y(), Z: p.Z()}
}

// VecFromVector converts a free vector to an sdfx vector.
func VecFromVector(v geom.Vector3[float64]) v3.Vec {
	x, y, z := v.Components()
	return v3.Vec{X: x, Y: y, Z: z}
}

// RotationFromM44 extracts the upper 3x3 block of m as a rotation. The
// result is degenerate when that block is not a proper rotation, as for a
// scaling transform.
func RotationFromM44(m sdf.M44) geom.MatrixRotation3[float64] {
	origin := m.MulPosition(v3.Vec{})
	col := func(e v3.Vec) geom.UnitVector3[float64] {
		c := m.MulPosition(e).Sub(origin)
		return unitExact(c)
	}
	return geom.NewMatrixRotation3(
		col(v3.Vec{X: 1}),
		col(v3.Vec{Y: 1}),
		col(v3.Vec{Z: 1}),
	)
}

// RotationFromEuler returns the rotation Rotate applies for the same angles.
func RotationFromEuler(x, y, z float64) geom.MatrixRotation3[float64] {
	return RotationFromM44(eulerM44(x, y, z))
}

// unitExact keeps a scaled column from being silently renormalized into a
// unit vector, so NewMatrixRotation3 sees the scale.
func unitExact(c v3.Vec) geom.UnitVector3[float64] {
	u := geom.NewUnitVector3(c.X, c.Y, c.Z)
	if math.Abs(c.Length()-1) > 1e-9 {
		return geom.InvalidUnitVector3[float64]()
	}
	return u
}
