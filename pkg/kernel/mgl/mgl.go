// Package mgl converts between github.com/go-gl/mathgl vectors, matrices
// and quaternions and the robust entity types, in both precisions.
package mgl

import (
	"github.com/chazu/robust3d/pkg/geom"
	"github.com/chazu/robust3d/pkg/intersect"
	"github.com/chazu/robust3d/pkg/numeric"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// ---- float64 ----

// Point64 converts v to a point.
func Point64(v mgl64.Vec3) geom.Point3[float64] {
	return geom.NewPoint3(v[0], v[1], v[2])
}

// Vector64 converts v to a free vector.
func Vector64(v mgl64.Vec3) geom.Vector3[float64] {
	return geom.NewVector3(v[0], v[1], v[2])
}

// Unit64 normalizes v. A zero v gives a degenerate unit vector.
func Unit64(v mgl64.Vec3) geom.UnitVector3[float64] {
	return geom.NewUnitVector3(v[0], v[1], v[2])
}

// Triangle64 builds a triangle from three vertices.
func Triangle64(a, b, c mgl64.Vec3) geom.Triangle3[float64] {
	return geom.NewTriangle3(Point64(a), Point64(b), Point64(c))
}

// Vec3FromPoint converts p back to mgl64.
func Vec3FromPoint(p geom.Point3[float64]) mgl64.Vec3 {
	return mgl64.Vec3{p.X(), p.Y(), p.Z()}
}

// Vec3FromVector converts v back to mgl64.
func Vec3FromVector(v geom.Vector3[float64]) mgl64.Vec3 {
	x, y, z := v.Components()
	return mgl64.Vec3{x, y, z}
}

// Rotation64 reads the columns of m as a rotation. The result is degenerate
// unless m is orthonormal with determinant 1.
func Rotation64(m mgl64.Mat3) geom.MatrixRotation3[float64] {
	return geom.NewMatrixRotation3(column64(m.Col(0)), column64(m.Col(1)), column64(m.Col(2)))
}

// RotationFromQuat64 returns the rotation q applies. q need not be unit
// length; mathgl's conversion assumes it is, so a non-unit q usually yields
// a degenerate rotation.
func RotationFromQuat64(q mgl64.Quat) geom.MatrixRotation3[float64] {
	return Rotation64(q.Mat4().Mat3())
}

// Mat3FromRotation converts r back to a column-major mgl64.Mat3.
func Mat3FromRotation(r geom.MatrixRotation3[float64]) mgl64.Mat3 {
	c0, c1, c2 := r.Column(0), r.Column(1), r.Column(2)
	return mgl64.Mat3FromCols(
		mgl64.Vec3{c0.X(), c0.Y(), c0.Z()},
		mgl64.Vec3{c1.X(), c1.Y(), c1.Z()},
		mgl64.Vec3{c2.X(), c2.Y(), c2.Z()},
	)
}

// column64 keeps scale in a column visible: a column whose length is not 1
// becomes the invalid unit vector instead of being renormalized.
func column64(c mgl64.Vec3) geom.UnitVector3[float64] {
	if !numeric.IsEqualScaled(c.Len(), 1, 16) {
		return geom.InvalidUnitVector3[float64]()
	}
	return Unit64(c)
}

// ---- float32 ----

// Point32 converts v to a point.
func Point32(v mgl32.Vec3) geom.Point3[float32] {
	return geom.NewPoint3(v[0], v[1], v[2])
}

// Unit32 normalizes v.
func Unit32(v mgl32.Vec3) geom.UnitVector3[float32] {
	return geom.NewUnitVector3(v[0], v[1], v[2])
}

// Triangle32 builds a triangle from three vertices.
func Triangle32(a, b, c mgl32.Vec3) geom.Triangle3[float32] {
	return geom.NewTriangle3(Point32(a), Point32(b), Point32(c))
}

// Vec3FromPoint32 converts p back to mgl32.
func Vec3FromPoint32(p geom.Point3[float32]) mgl32.Vec3 {
	return mgl32.Vec3{p.X(), p.Y(), p.Z()}
}

// Rotation32 reads the columns of m as a rotation.
func Rotation32(m mgl32.Mat3) geom.MatrixRotation3[float32] {
	return geom.NewMatrixRotation3(column32(m.Col(0)), column32(m.Col(1)), column32(m.Col(2)))
}

// RotationFromQuat32 returns the rotation q applies.
func RotationFromQuat32(q mgl32.Quat) geom.MatrixRotation3[float32] {
	return Rotation32(q.Mat4().Mat3())
}

func column32(c mgl32.Vec3) geom.UnitVector3[float32] {
	if !numeric.IsEqualScaled(c.Len(), 1, 16) {
		return geom.InvalidUnitVector3[float32]()
	}
	return Unit32(c)
}

// ---- queries ----

// SegmentTriangle32 intersects the segment from start to end with the
// triangle (v0, v1, v2). ok is true only for a single crossing point; code
// tells the other outcomes apart.
func SegmentTriangle32(start, end, v0, v1, v2 mgl32.Vec3) (hit mgl32.Vec3, ok bool, code intersect.ResultCode) {
	p, code := intersect.TriangleSegment(Triangle32(v0, v1, v2), geom.NewSegment3(Point32(start), Point32(end)))
	if code != intersect.OK {
		return mgl32.Vec3{}, false, code
	}
	return Vec3FromPoint32(p), true, code
}

// RayTriangle64 intersects the ray from origin along dir with the triangle
// (v0, v1, v2).
func RayTriangle64(origin, dir, v0, v1, v2 mgl64.Vec3) (mgl64.Vec3, intersect.ResultCode) {
	p, code := intersect.TriangleRay(Triangle64(v0, v1, v2), geom.NewRay3(Point64(origin), Unit64(dir)))
	if code != intersect.OK {
		return mgl64.Vec3{}, code
	}
	return Vec3FromPoint(p), code
}
