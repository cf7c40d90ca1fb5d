package core

import "math"

// minimumExtent is the thinnest a padded AABB may be along any axis.
// Planar shapes would otherwise get a box no ray can enter.
const minimumExtent = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

var (
	// EmptyAABB contains nothing and is the identity for Union
	EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}
	// UniverseAABB contains all of space
	UniverseAABB = AABB{X: UniverseInterval, Y: UniverseInterval, Z: UniverseInterval}
)

// NewAABB creates an AABB from three axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates the AABB spanned by two opposite corners.
// The corners may be given in either order.
func NewAABBFromPoints(a, b Vec3) AABB {
	return NewAABB(
		NewInterval(math.Min(a.X, b.X), math.Max(a.X, b.X)),
		NewInterval(math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)),
		NewInterval(math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)),
	)
}

// IsEmpty reports whether the box contains no points
func (aabb AABB) IsEmpty() bool {
	return aabb.X.Size() < 0 || aabb.Y.Size() < 0 || aabb.Z.Size() < 0
}

// Padded returns a copy widened to the minimum extent on every axis thinner
// than it. Empty axes are left alone.
func (aabb AABB) Padded() AABB {
	aabb.padToMinimums()
	return aabb
}

func (aabb *AABB) padToMinimums() {
	if aabb.X.Size() >= 0 && aabb.X.Size() < minimumExtent {
		aabb.X = aabb.X.Expand(minimumExtent)
	}
	if aabb.Y.Size() >= 0 && aabb.Y.Size() < minimumExtent {
		aabb.Y = aabb.Y.Expand(minimumExtent)
	}
	if aabb.Z.Size() >= 0 && aabb.Z.Size() < minimumExtent {
		aabb.Z = aabb.Z.Expand(minimumExtent)
	}
}

// AxisInterval returns the interval for axis 0 (X), 1 (Y) or 2 (Z)
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// Hit tests if a ray intersects with this AABB within rayT using the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	_, hit := aabb.HitInterval(ray, rayT)
	return hit
}

// HitInterval clips rayT against the three slabs and returns the surviving
// parametric range, or false once that range becomes empty.
func (aabb AABB) HitInterval(ray Ray, rayT Interval) (Interval, bool) {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Parallel to this slab: the origin has to lie inside it
		if math.Abs(direction) < 1e-8 {
			if origin < slab.Min || origin > slab.Max {
				return rayT, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return rayT, false
		}
	}

	return rayT, true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: Enclosing(aabb.X, other.X),
		Y: Enclosing(aabb.Y, other.Y),
		Z: Enclosing(aabb.Z, other.Z),
	}
}

// Add returns the box translated by offset
func (aabb AABB) Add(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Add(offset.X),
		Y: aabb.Y.Add(offset.Y),
		Z: aabb.Z.Add(offset.Z),
	}
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	if aabb.X.Size() > aabb.Y.Size() {
		if aabb.X.Size() > aabb.Z.Size() {
			return 0
		}
		return 2
	}
	if aabb.Y.Size() > aabb.Z.Size() {
		return 1
	}
	return 2
}
