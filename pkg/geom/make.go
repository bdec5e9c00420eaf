package geom

import "github.com/chazu/robust3d/pkg/numeric"

// MakeVector3 returns the vector from `from` to `to`.
func MakeVector3[T numeric.Float](from, to Point3[T]) Vector3[T] {
	return to.Sub(from)
}

// MakeUnitVector3 returns v normalized.
func MakeUnitVector3[T numeric.Float](v Vector3[T]) UnitVector3[T] {
	return NewUnitVector3(v.x, v.y, v.z)
}

// MakeUnitVector3Between returns the unit direction from `from` to `to`.
func MakeUnitVector3Between[T numeric.Float](from, to Point3[T]) UnitVector3[T] {
	return MakeUnitVector3(MakeVector3(from, to))
}

// MakeLine3 returns the line through p and p+v.
func MakeLine3[T numeric.Float](p Point3[T], v Vector3[T]) Line3[T] {
	return NewLine3(p, p.Add(v))
}

// MakeLine3Unit returns the line through p along u.
func MakeLine3Unit[T numeric.Float](p Point3[T], u UnitVector3[T]) Line3[T] {
	return NewLine3(p, p.Add(u.Vector()))
}

// MakePlane returns the plane through p1, p2 and p3, with the normal given by
// the right-hand rule.
func MakePlane[T numeric.Float](p1, p2, p3 Point3[T]) Plane[T] {
	return NewPlane(p1, MakeUnitVector3(p2.Sub(p1).Cross(p3.Sub(p1))))
}

// MakeRay3 returns the ray from `from` passing through `through`.
func MakeRay3[T numeric.Float](from, through Point3[T]) Ray3[T] {
	return NewRay3(from, MakeUnitVector3Between(from, through))
}
