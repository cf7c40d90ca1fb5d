package core

import (
	"encoding/json"
	"math"
	"testing"
)

func TestVec3_CrossAndDot(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("Expected x cross y = (0,0,1), got %v", got)
	}
	if got := x.Dot(y); got != 0 {
		t.Errorf("Expected orthogonal dot product 0, got %f", got)
	}
	if got := NewVec3(1, 2, 3).MultiplyVec(NewVec3(2, 3, 4)); got != NewVec3(2, 6, 12) {
		t.Errorf("Expected component-wise product (2,6,12), got %v", got)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-3, 0).NearZero() {
		t.Error("Expected vector with a 1e-3 component not to be near zero")
	}
}

func TestVec3_ReflectAndRefract(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	incoming := NewVec3(1, -1, 0).Normalize()

	reflected := incoming.Reflect(normal)
	expected := NewVec3(1, 1, 0).Normalize()
	if reflected.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected reflection %v, got %v", expected, reflected)
	}

	// A ratio of one leaves the direction unchanged
	refracted := incoming.Refract(normal, 1.0)
	if refracted.Subtract(incoming).Length() > 1e-12 {
		t.Errorf("Expected unbent refraction %v, got %v", incoming, refracted)
	}

	// Entering a denser medium bends toward the normal
	bent := incoming.Refract(normal, 1.0/1.5)
	if math.Abs(bent.X) >= math.Abs(incoming.X) {
		t.Errorf("Expected refraction to bend toward normal, got %v", bent)
	}
}

func TestVec3_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Vec3
		wantErr bool
	}{
		{"array", `[1, 2.5, -3]`, NewVec3(1, 2.5, -3), false},
		{"object", `{"x": 4, "y": 5, "z": 6}`, NewVec3(4, 5, 6), false},
		{"short array", `[1, 2]`, Vec3{}, true},
		{"string", `"up"`, Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Vec3
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %s, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
