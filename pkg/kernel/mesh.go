package kernel

import (
	"fmt"
	"slices"

	"github.com/chazu/robust3d/pkg/geom"
	"github.com/chazu/robust3d/pkg/intersect"
	"github.com/samber/lo"
)

// Mesh is a triangle soup. Triangles keep their status, so a mesh may hold
// degenerate slivers; the query methods skip them.
type Mesh struct {
	Triangles []geom.Triangle3[float64]
	Name      string
}

// FromArrays builds a mesh from flat render buffers: vertices holds 3 floats
// per vertex and indices 3 vertex indices per triangle.
func FromArrays(vertices []float32, indices []uint32) (*Mesh, error) {
	if len(vertices)%3 != 0 {
		return nil, fmt.Errorf("kernel: vertex buffer length %d is not a multiple of 3", len(vertices))
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("kernel: index buffer length %d is not a multiple of 3", len(indices))
	}
	n := uint32(len(vertices) / 3)
	vertex := func(i uint32) geom.Point3[float64] {
		return geom.NewPoint3(float64(vertices[3*i]), float64(vertices[3*i+1]), float64(vertices[3*i+2]))
	}

	m := &Mesh{Triangles: make([]geom.Triangle3[float64], 0, len(indices)/3)}
	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if a >= n || b >= n || c >= n {
			return nil, fmt.Errorf("kernel: triangle %d references vertex beyond %d", i/3, n)
		}
		m.Triangles = append(m.Triangles, geom.NewTriangle3(vertex(a), vertex(b), vertex(c)))
	}
	return m, nil
}

// Arrays flattens the mesh into render buffers with one face normal per
// vertex. Degenerate triangles are dropped.
func (m *Mesh) Arrays() (vertices, normals []float32, indices []uint32) {
	for _, tri := range m.usable() {
		nx, ny, nz := geom.UnitNormal(tri).Components()
		for _, v := range tri.Vertices() {
			indices = append(indices, uint32(len(vertices)/3))
			vertices = append(vertices, float32(v.X()), float32(v.Y()), float32(v.Z()))
			normals = append(normals, float32(nx), float32(ny), float32(nz))
		}
	}
	return vertices, normals, indices
}

// TriangleCount returns the number of triangles, degenerate ones included.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// DegenerateCount returns the number of degenerate or invalid triangles.
func (m *Mesh) DegenerateCount() int {
	return lo.CountBy(m.Triangles, func(t geom.Triangle3[float64]) bool { return t.Degenerate() })
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// Area sums the area of the non-degenerate triangles.
func (m *Mesh) Area() float64 {
	return lo.SumBy(m.usable(), geom.Area[float64])
}

func (m *Mesh) usable() []geom.Triangle3[float64] {
	return lo.Filter(m.Triangles, func(t geom.Triangle3[float64], _ int) bool { return !t.Degenerate() })
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Hit is one triangle crossed by a query.
type Hit struct {
	Triangle int // index into Mesh.Triangles
	Point    geom.Point3[float64]
	Distance float64 // from the query's base point
}

// RayHits returns every triangle the ray hits, nearest first. Triangles the
// ray only grazes in their plane are not reported.
func (m *Mesh) RayHits(r geom.Ray3[float64]) []Hit {
	return m.hits(r.Base(), func(tri geom.Triangle3[float64]) (geom.Point3[float64], intersect.ResultCode) {
		return intersect.TriangleRay(tri, r)
	})
}

// SegmentHits returns every triangle the segment crosses, nearest to its
// base first.
func (m *Mesh) SegmentHits(s geom.Segment3[float64]) []Hit {
	return m.hits(s.Base(), func(tri geom.Triangle3[float64]) (geom.Point3[float64], intersect.ResultCode) {
		return intersect.TriangleSegment(tri, s)
	})
}

func (m *Mesh) hits(base geom.Point3[float64], test func(geom.Triangle3[float64]) (geom.Point3[float64], intersect.ResultCode)) []Hit {
	hits := lo.FilterMap(m.Triangles, func(tri geom.Triangle3[float64], i int) (Hit, bool) {
		if tri.Degenerate() {
			return Hit{}, false
		}
		p, code := test(tri)
		if code != intersect.OK {
			return Hit{}, false
		}
		return Hit{Triangle: i, Point: p, Distance: geom.Distance(base, p)}, true
	})
	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}

// Section returns the indices of the triangles that cross or touch pl,
// including those lying in it.
func (m *Mesh) Section(pl geom.Plane[float64]) []int {
	var idx []int
	for i, tri := range m.Triangles {
		switch intersect.TrianglePlane(tri, pl) {
		case intersect.OK, intersect.Coplanar:
			idx = append(idx, i)
		}
	}
	return idx
}

// Collides reports whether any triangle of m intersects any triangle of o.
// The test is exhaustive and meant for small meshes.
func (m *Mesh) Collides(o *Mesh) bool {
	theirs := o.usable()
	return lo.SomeBy(m.usable(), func(a geom.Triangle3[float64]) bool {
		return lo.SomeBy(theirs, func(b geom.Triangle3[float64]) bool {
			return intersect.TriangleTriangle(a, b) == intersect.OK
		})
	})
}
