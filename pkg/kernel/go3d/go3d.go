// Package go3d adapts github.com/ungerik/go3d vectors to the robust entity
// types. Triangles are addressed the way go3d-based mesh code stores them:
// a shared point slice and three indices per face.
package go3d

import (
	"fmt"

	"github.com/chazu/robust3d/pkg/geom"
	"github.com/chazu/robust3d/pkg/intersect"
	dvec3 "github.com/ungerik/go3d/float64/vec3"
	"github.com/ungerik/go3d/vec3"
)

// Tri holds the point indices of one face.
type Tri [3]int

// TriSegmentIntersection is where a segment crossed a face.
type TriSegmentIntersection struct {
	Point *dvec3.T
	P     float64 // fraction of the segment from its start, in [0, 1]
}

// Point32 converts a float32 go3d vector to a point.
func Point32(v vec3.T) geom.Point3[float32] {
	return geom.NewPoint3(v[0], v[1], v[2])
}

// Vec32 converts a float32 point back to go3d.
func Vec32(p geom.Point3[float32]) vec3.T {
	return vec3.T{p.X(), p.Y(), p.Z()}
}

// Point64 converts a float64 go3d vector to a point.
func Point64(v dvec3.T) geom.Point3[float64] {
	return geom.NewPoint3(v[0], v[1], v[2])
}

// Vec64 converts a float64 point back to go3d.
func Vec64(p geom.Point3[float64]) dvec3.T {
	return dvec3.T{p.X(), p.Y(), p.Z()}
}

// Triangle returns face tri of points.
func Triangle(points []dvec3.T, tri Tri) (geom.Triangle3[float64], error) {
	for _, i := range tri {
		if i < 0 || i >= len(points) {
			return geom.Triangle3[float64]{}, fmt.Errorf("go3d: point index %d out of range [0, %d)", i, len(points))
		}
	}
	return geom.NewTriangle3(Point64(points[tri[0]]), Point64(points[tri[1]]), Point64(points[tri[2]])), nil
}

// TriangleNormal returns the unit normal of a face. ok is false for a
// degenerate face.
func TriangleNormal(points []dvec3.T, tri Tri) (n dvec3.T, ok bool) {
	t, err := Triangle(points, tri)
	if err != nil || t.Degenerate() {
		return dvec3.T{}, false
	}
	u := geom.UnitNormal(t)
	return dvec3.T{u.X(), u.Y(), u.Z()}, true
}

// TriangleCentroid returns the average of a face's corners.
func TriangleCentroid(points []dvec3.T, tri Tri) (dvec3.T, error) {
	t, err := Triangle(points, tri)
	if err != nil {
		return dvec3.T{}, err
	}
	return Vec64(geom.Centroid(t)), nil
}

// SegmentTriangle intersects the segment p0-p1 with a face. The result is
// nil unless the code is OK.
func SegmentTriangle(points []dvec3.T, tri Tri, p0, p1 dvec3.T) (*TriSegmentIntersection, intersect.ResultCode, error) {
	t, err := Triangle(points, tri)
	if err != nil {
		return nil, intersect.Degenerate, err
	}
	seg := geom.NewSegment3(Point64(p0), Point64(p1))
	pt, code := intersect.TriangleSegment(t, seg)
	if code != intersect.OK {
		return nil, code, nil
	}
	hit := Vec64(pt)
	return &TriSegmentIntersection{
		Point: &hit,
		P:     geom.Distance(seg.Base(), pt) / seg.Length(),
	}, code, nil
}
