package geometry

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// Translate moves a shape by a fixed offset
type Translate struct {
	Object Shape
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so that it appears moved by offset
func NewTranslate(object Shape, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Add(offset),
	}
}

// Hit moves the ray into object space, intersects, and moves the hit back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, isHit := t.Object.Hit(offsetRay, rayT)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the translated box of the wrapped shape
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// RotateY rotates a shape about the Y axis by a fixed angle
type RotateY struct {
	Object   Shape
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object rotated counterclockwise (looking down -Y) by angle degrees
func NewRotateY(object Shape, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	inner := object.BoundingBox()
	if inner.IsEmpty() {
		r.bbox = core.EmptyAABB
		return r
	}

	// Rotate all 8 corners once and take the axis-wise extremes
	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, x := range []float64{inner.X.Min, inner.X.Max} {
		for _, y := range []float64{inner.Y.Min, inner.Y.Max} {
			for _, z := range []float64{inner.Z.Min, inner.Z.Max} {
				corner := r.toWorld(core.NewVec3(x, y, z))
				min = core.NewVec3(math.Min(min.X, corner.X), math.Min(min.Y, corner.Y), math.Min(min.Z, corner.Z))
				max = core.NewVec3(math.Max(max.X, corner.X), math.Max(max.Y, corner.Y), math.Max(max.Z, corner.Z))
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(min, max)

	return r
}

func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, intersects, and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, isHit := r.Object.Hit(rotated, rayT)
	if !isHit {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the precomputed world-space box
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
