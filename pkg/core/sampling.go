package core

import (
	"math"
	"math/rand"
)

// RandomRange returns a uniform float64 in [min, max)
func RandomRange(random *rand.Rand, min, max float64) float64 {
	return min + (max-min)*random.Float64()
}

// RandomVec3 returns a vector with each component uniform in [min, max)
func RandomVec3(random *rand.Rand, min, max float64) Vec3 {
	return NewVec3(
		RandomRange(random, min, max),
		RandomRange(random, min, max),
		RandomRange(random, min, max),
	)
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere.
// Points are rejection-sampled inside the unit ball and then normalized; the
// tiny lower bound discards points whose length would underflow.
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3(random, -1, 1)
		lengthSquared := p.LengthSquared()
		if 1e-160 < lengthSquared && lengthSquared <= 1 {
			return p.Divide(math.Sqrt(lengthSquared))
		}
	}
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
