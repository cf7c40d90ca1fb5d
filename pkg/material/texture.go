package material

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/noise"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at the given surface coordinates and 3D point
	Evaluate(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two textures on a 3D grid of cubes
// with side length 1/InvScale.
type CheckerTexture struct {
	InvScale float64
	Even     Texture
	Odd      Texture
}

// NewCheckerTexture creates a checker pattern alternating between even and odd
func NewCheckerTexture(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewSolidCheckerTexture creates a checker pattern of two solid colors
func NewSolidCheckerTexture(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks a child texture by the parity of the summed cell indices
func (c *CheckerTexture) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.InvScale * point.X))
	y := int(math.Floor(c.InvScale * point.Y))
	z := int(math.Floor(c.InvScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(u, v, point)
	}
	return c.Odd.Evaluate(u, v, point)
}

// turbulenceDepth is the number of octaves in marble textures
const turbulenceDepth = 7

// NoiseTexture is a marbled pattern: sinusoidal stripes along z phase-shifted by turbulence
type NoiseTexture struct {
	Noise *noise.Perlin
	Scale float64
	Color core.Vec3
}

// NewNoiseTexture creates a white marble texture
func NewNoiseTexture(perlin *noise.Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: perlin, Scale: scale, Color: core.NewVec3(1, 1, 1)}
}

// Evaluate returns Color * 0.5 * (1 + sin(scale*z + 10*turbulence(point)))
func (n *NoiseTexture) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	phase := n.Scale*point.Z + 10*n.Noise.Turbulence(point, turbulenceDepth)
	return n.Color.Multiply(0.5 * (1 + math.Sin(phase)))
}
