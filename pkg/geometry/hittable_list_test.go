package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()

	if _, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), everything); isHit {
		t.Error("Expected empty list to never be hit")
	}
	if list.BoundingBox() != core.EmptyAABB {
		t.Errorf("Expected empty bounding box, got %v", list.BoundingBox())
	}
}

func TestHittableList_NearestHit(t *testing.T) {
	near := &DummyMaterial{Name: "near"}
	far := &DummyMaterial{Name: "far"}

	// Insert the far sphere first so order alone cannot produce the answer
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, 10), 1, far),
		NewSphere(core.NewVec3(0, 0, 0), 1, near),
	)

	hit, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), everything)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != near {
		t.Errorf("Expected nearest sphere material, got %v", hit.Material)
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}

	// Restricting the range past the near sphere exposes the far one
	hit, isHit = list.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), core.NewInterval(7, 100))
	if !isHit || hit.Material != far {
		t.Errorf("Expected far sphere within [7,100], got hit=%t", isHit)
	}
}

func TestHittableList_BoundingBox(t *testing.T) {
	list := NewHittableList(NewSphere(core.NewVec3(0, 0, 0), 1, &DummyMaterial{}))
	list.Add(NewSphere(core.NewVec3(5, -3, 2), 0.5, &DummyMaterial{}))

	box := list.BoundingBox()
	if box.Min() != core.NewVec3(-1, -3.5, -1) {
		t.Errorf("Expected min (-1,-3.5,-1), got %v", box.Min())
	}
	if box.Max() != core.NewVec3(5.5, 1, 2.5) {
		t.Errorf("Expected max (5.5,1,2.5), got %v", box.Max())
	}
}

// coplanarQuads returns identical quads in the z=0 plane, one per material
func coplanarQuads(materials ...*DummyMaterial) []Shape {
	shapes := make([]Shape, len(materials))
	for i, mat := range materials {
		shapes[i] = NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mat)
	}
	return shapes
}

func TestHittableList_TieKeepsEarlierShape(t *testing.T) {
	first := &DummyMaterial{Name: "first"}
	second := &DummyMaterial{Name: "second"}
	list := NewHittableList(coplanarQuads(first, second)...)

	hit, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), everything)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != first {
		t.Errorf("Expected first quad to win the tie, got %v", hit.Material)
	}
}
