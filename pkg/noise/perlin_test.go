package noise

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

func TestPerlin_PermutationsArePermutations(t *testing.T) {
	p := NewPerlin(rand.New(rand.NewSource(42)))

	want := make([]int, pointCount)
	for i := range want {
		want[i] = i
	}

	for name, perm := range map[string][pointCount]int{"x": p.permX, "y": p.permY, "z": p.permZ} {
		got := append([]int(nil), perm[:]...)
		sort.Ints(got)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("perm%s is not a permutation of 0..255 (-want +got):\n%s", name, diff)
		}
	}

	for i, g := range p.gradients {
		if math.Abs(g.Length()-1) > 1e-12 {
			t.Fatalf("Gradient %d not unit length: %v", i, g)
		}
	}
}

func TestPerlin_Deterministic(t *testing.T) {
	a := NewPerlin(rand.New(rand.NewSource(3)))
	b := NewPerlin(rand.New(rand.NewSource(3)))

	point := core.NewVec3(1.25, -7.5, 3.125)
	if a.Noise(point) != b.Noise(point) {
		t.Error("Expected equal seeds to produce equal noise fields")
	}
}

func TestPerlin_NoiseProperties(t *testing.T) {
	p := NewPerlin(rand.New(rand.NewSource(42)))
	random := rand.New(rand.NewSource(1))

	// Gradient noise vanishes on lattice points
	for _, point := range []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(3, -2, 17),
		core.NewVec3(-300, 255, 256),
	} {
		if n := p.Noise(point); math.Abs(n) > 1e-12 {
			t.Errorf("Expected zero noise at lattice point %v, got %f", point, n)
		}
	}

	for i := 0; i < 1000; i++ {
		point := core.RandomVec3(random, -50, 50)
		n := p.Noise(point)
		if math.IsNaN(n) || math.Abs(n) > 2 {
			t.Fatalf("Noise out of range at %v: %f", point, n)
		}

		// Continuity: a tiny step changes the value only slightly
		step := p.Noise(point.Add(core.NewVec3(1e-6, 0, 0)))
		if math.Abs(step-n) > 1e-4 {
			t.Errorf("Noise discontinuous at %v: %f vs %f", point, n, step)
		}
	}
}

func TestPerlin_Turbulence(t *testing.T) {
	p := NewPerlin(rand.New(rand.NewSource(42)))
	point := core.NewVec3(0.3, 1.7, -2.2)

	if got := p.Turbulence(point, 0); got != 0 {
		t.Errorf("Expected zero turbulence with no octaves, got %f", got)
	}

	want := math.Abs(p.Noise(point) + 0.5*p.Noise(point.Multiply(2)))
	if got := p.Turbulence(point, 2); math.Abs(got-want) > 1e-15 {
		t.Errorf("Expected two-octave turbulence %f, got %f", want, got)
	}

	if got := p.Turbulence(point, 7); got < 0 {
		t.Errorf("Turbulence must be non-negative, got %f", got)
	}
}
