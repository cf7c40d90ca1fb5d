package core

import (
	"math"
	"testing"
)

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	i := NewInterval(0, 1)

	tests := []struct {
		x         float64
		contains  bool
		surrounds bool
	}{
		{-0.5, false, false},
		{0, true, false},
		{0.5, true, true},
		{1, true, false},
		{1.5, false, false},
	}

	for _, tt := range tests {
		if got := i.Contains(tt.x); got != tt.contains {
			t.Errorf("Contains(%f): expected %t, got %t", tt.x, tt.contains, got)
		}
		if got := i.Surrounds(tt.x); got != tt.surrounds {
			t.Errorf("Surrounds(%f): expected %t, got %t", tt.x, tt.surrounds, got)
		}
	}
}

func TestInterval_Sentinels(t *testing.T) {
	i := NewInterval(-2, 3)

	if got := Enclosing(EmptyInterval, i); got != i {
		t.Errorf("Expected empty to be the identity for Enclosing, got %v", got)
	}
	if got := Enclosing(UniverseInterval, i); got != UniverseInterval {
		t.Errorf("Expected universe to absorb %v, got %v", i, got)
	}
	if EmptyInterval.Contains(0) {
		t.Error("Empty interval should contain nothing")
	}
	if !UniverseInterval.Surrounds(1e300) {
		t.Error("Universe should surround every finite value")
	}
}

func TestInterval_ClampAndExpand(t *testing.T) {
	i := NewInterval(0, 0.999)

	if got := i.Clamp(2); got != 0.999 {
		t.Errorf("Expected clamp to max, got %f", got)
	}
	if got := i.Clamp(-1); got != 0 {
		t.Errorf("Expected clamp to min, got %f", got)
	}
	if got := i.Clamp(math.NaN()); got != 0 {
		t.Errorf("Expected NaN to clamp to min, got %f", got)
	}

	expanded := NewInterval(1, 2).Expand(1)
	if expanded.Min != 0.5 || expanded.Max != 2.5 {
		t.Errorf("Expected [0.5, 2.5], got %v", expanded)
	}
}
