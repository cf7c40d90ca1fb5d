package scene

import (
	"math/rand"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
	"github.com/df07/go-weekend-pathtracer/pkg/noise"
)

// NewBouncingSpheresScene creates a large checkered ground covered in a
// random field of small diffuse, metal and glass spheres. The diffuse ones
// bounce upward during the exposure.
func NewBouncingSpheresScene(random *rand.Rand) *Scene {
	config := defaultCameraConfig()
	config.DefocusAngle = 0.6

	s := newScene(config)

	checker := material.NewSolidCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			// Keep the area around the big metal sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				albedo := core.RandomVec3(random, 0, 1).MultiplyVec(core.RandomVec3(random, 0, 1))
				center1 := center.Add(core.NewVec3(0, core.RandomRange(random, 0, 0.5), 0))
				s.Add(geometry.NewMovingSphere(center, center1, 0.2, material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				albedo := core.RandomVec3(random, 0.5, 1)
				fuzz := core.RandomRange(random, 0, 0.5)
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

// NewCheckeredSpheresScene creates two large spheres sharing one solid
// checker texture, showing that the pattern lives in space, not on surfaces
func NewCheckeredSpheresScene(random *rand.Rand) *Scene {
	s := newScene(defaultCameraConfig())

	checker := material.NewTexturedLambertian(
		material.NewSolidCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return s
}

// NewPerlinSpheresScene creates a marble sphere resting on a marble ground
func NewPerlinSpheresScene(random *rand.Rand) *Scene {
	s := newScene(defaultCameraConfig())
	addPerlinSpheres(s, random)
	return s
}

// addPerlinSpheres adds the marble ground and sphere shared by the Perlin
// and simple light scenes
func addPerlinSpheres(s *Scene, random *rand.Rand) {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(noise.NewPerlin(random), 4))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
}

// NewSimpleLightScene lights the Perlin spheres with a rectangular area light
// and a glowing sphere against a black background
func NewSimpleLightScene(random *rand.Rand) *Scene {
	config := defaultCameraConfig()
	config.Center = core.NewVec3(26, 3, 6)
	config.LookAt = core.NewVec3(0, 2, 0)
	config.Background = core.Vec3{}

	s := newScene(config)
	addPerlinSpheres(s, random)

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
	)

	return s
}
