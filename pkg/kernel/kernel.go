// Package kernel connects solid-modelling backends to the robust entity types.
// A backend builds solids and triangulates their surfaces into a Mesh of
// geom.Triangle3 values, which the intersect package can then query.
package kernel

import "github.com/chazu/robust3d/pkg/geom"

// Solid is an opaque handle to a backend solid.
type Solid interface {
	// Bounds returns the corners of the axis-aligned bounding box.
	Bounds() (min, max geom.Point3[float64])
}

// Kernel builds solids and triangulates them.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) (Solid, error)
	Sphere(radius float64) (Solid, error)

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid

	// Transforms
	Translate(s Solid, v geom.Vector3[float64]) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees, applied X then Y then Z

	// Triangulate tessellates the surface of s.
	Triangulate(s Solid) (*Mesh, error)
}
