package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// shadowAcneEpsilon keeps a bounced ray from re-hitting the surface it left
const shadowAcneEpsilon = 0.001

// Raytracer evaluates the light arriving along camera rays
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	maxDepth   int
	background core.Vec3
}

// NewRaytracer creates a raytracer over a fully built world
func NewRaytracer(world geometry.Shape, camera *Camera) *Raytracer {
	config := camera.Config()
	return &Raytracer{
		world:      world,
		camera:     camera,
		maxDepth:   config.MaxDepth,
		background: config.Background,
	}
}

// RayColor returns the radiance carried back along ray. Each bounce adds the
// surface emission weighted by the throughput so far, then multiplies the
// throughput by the scatter attenuation. Rays that run out of bounces
// contribute nothing further.
func (rt *Raytracer) RayColor(ray core.Ray, random *rand.Rand) core.Vec3 {
	color := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for depth := rt.maxDepth; depth > 0; depth-- {
		hit, isHit := rt.world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)))
		if !isHit {
			return color.Add(throughput.MultiplyVec(rt.background))
		}

		emitted := material.Emitted(hit.Material, hit.U, hit.V, hit.Point)
		color = color.Add(throughput.MultiplyVec(emitted))

		scatter, didScatter := hit.Material.Scatter(ray, hit, random)
		if !didScatter {
			return color
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return color
}

// SamplePixel averages samples independent rays through pixel (i, j)
func (rt *Raytracer) SamplePixel(i, j, samples int, random *rand.Rand) core.Vec3 {
	var stats PixelStats
	for s := 0; s < samples; s++ {
		stats.AddSample(rt.RayColor(rt.camera.GetRay(i, j, random), random))
	}
	return stats.GetColor()
}
