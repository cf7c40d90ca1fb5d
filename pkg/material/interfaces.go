package material

import (
	"math/rand"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Material decides how light arriving at a surface point is scattered.
// Implementations are immutable and shared by every shape and worker that uses them.
type Material interface {
	// Scatter returns the attenuation and continuation ray, or false when the
	// incoming ray is absorbed.
	Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light. Materials that do not
// implement it emit nothing.
type Emitter interface {
	Emitted(u, v float64, point core.Vec3) core.Vec3
}

// Emitted returns the light emitted by m at the given surface point, or black
// if m is not an Emitter.
func Emitted(m Material, u, v float64, point core.Vec3) core.Vec3 {
	if emitter, ok := m.(Emitter); ok {
		return emitter.Emitted(u, v, point)
	}
	return core.Vec3{}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface parametric coordinates
	FrontFace bool      // Whether ray hit the outward side
	Material  Material  // Material of the hit object, shared
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
