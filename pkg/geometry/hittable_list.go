package geometry

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// HittableList is an ordered collection of shapes searched linearly.
// Its bounding box is kept up to date as shapes are added.
type HittableList struct {
	Shapes []Shape
	bbox   core.AABB
}

// NewHittableList creates a list holding the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	l := &HittableList{bbox: core.EmptyAABB}
	for _, shape := range shapes {
		l.Add(shape)
	}
	return l
}

// Add appends a shape and grows the cached bounding box
func (l *HittableList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
	l.bbox = l.bbox.Union(shape.BoundingBox())
}

// Hit returns the nearest hit among all shapes. Each accepted hit narrows the
// range for the shapes after it, and a later shape only wins if strictly closer.
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range l.Shapes {
		hit, isHit := shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar))
		if !isHit || (closestHit != nil && hit.T >= closestSoFar) {
			continue
		}
		closestSoFar = hit.T
		closestHit = hit
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all member boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
