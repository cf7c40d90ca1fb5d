package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), &DummyMaterial{})

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		rayT      core.Interval
		shouldHit bool
		expectedT float64
	}{
		{"center", core.NewVec3(0.25, 0.5, -1), core.NewVec3(0, 0, 1), everything, true, 1.0},
		{"corner is inside", core.NewVec3(1, 1, -2), core.NewVec3(0, 0, 1), everything, true, 2.0},
		{"outside u range", core.NewVec3(1.5, 0.5, -1), core.NewVec3(0, 0, 1), everything, false, 0},
		{"outside v range", core.NewVec3(0.5, -0.1, -1), core.NewVec3(0, 0, 1), everything, false, 0},
		{"parallel", core.NewVec3(0.5, 0.5, -1), core.NewVec3(1, 0, 0), everything, false, 0},
		{"behind origin", core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, 1), everything, false, 0},
		{"t on closed upper bound", core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1), core.NewInterval(0.001, 1.0), true, 1.0},
		{"t past upper bound", core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1), core.NewInterval(0.001, 0.5), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := quad.Hit(core.NewRay(tt.origin, tt.direction), tt.rayT)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestQuad_HitRecord(t *testing.T) {
	mat := &DummyMaterial{Name: "quad"}
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), mat)

	hit, isHit := quad.Hit(core.NewRay(core.NewVec3(0.25, 0.5, -1), core.NewVec3(0, 0, 1)), everything)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.U != 0.25 || hit.V != 0.5 {
		t.Errorf("Expected (u, v) = (0.25, 0.5), got (%f, %f)", hit.U, hit.V)
	}
	// Normal is U x V = +Z; the ray travels along it so we see the back face
	if hit.FrontFace {
		t.Error("Expected back face hit")
	}
	if hit.Normal != core.NewVec3(0, 0, -1) {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
	}
	if hit.Point != core.NewVec3(0.25, 0.5, 0) {
		t.Errorf("Expected point (0.25,0.5,0), got %v", hit.Point)
	}
	if hit.Material != mat {
		t.Error("Expected quad material on hit record")
	}
}

func TestQuad_BoundingBoxIsPadded(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 5), core.NewVec3(2, 0, 0), core.NewVec3(0, 3, 0), &DummyMaterial{})
	box := quad.BoundingBox()

	if box.X.Min != 0 || box.X.Max != 2 || box.Y.Min != 0 || box.Y.Max != 3 {
		t.Errorf("Expected in-plane extent [0,2]x[0,3], got %v", box)
	}
	if box.Z.Size() <= 0 {
		t.Errorf("Expected flat axis to be padded, got %v", box.Z)
	}
	if !box.Z.Contains(5) {
		t.Errorf("Expected padded Z interval to contain the plane, got %v", box.Z)
	}
}

func TestQuad_SkewedBoundingBox(t *testing.T) {
	// Parallelogram whose far corner is not the bounding-box maximum
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(2, 1, 0), core.NewVec3(-1, 2, 1), &DummyMaterial{})
	box := quad.BoundingBox()

	corners := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(2, 1, 0),
		core.NewVec3(-1, 2, 1),
		core.NewVec3(1, 3, 1),
	}
	for _, c := range corners {
		if !box.X.Contains(c.X) || !box.Y.Contains(c.Y) || !box.Z.Contains(c.Z) {
			t.Errorf("Expected box %v to contain corner %v", box, c)
		}
	}
}
