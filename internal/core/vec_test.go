package core

import (
	"math"
	"testing"
)

func TestLerpClampsT(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"zero", 0, 10, 0, 0},
		{"half", 0, 10, 0.5, 5},
		{"full", 0, 10, 1, 10},
		{"overshoot clamped", 0, 10, 2.5, 10},
		{"negative clamped", 0, 10, -1, 0},
		{"backward", 10, 0, 0.25, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestDistXZIgnoresVertical(t *testing.T) {
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 3, Y: 100, Z: 4}

	if got := a.DistXZ(b); math.Abs(got-5) > 1e-9 {
		t.Errorf("DistXZ = %v, want 5 (vertical axis must not contribute)", got)
	}
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		aLo, aHi, bLo, bHi     float64
		want                   bool
	}{
		{"disjoint", 0, 1, 2, 3, false},
		{"touching", 0, 1, 1, 2, true},
		{"nested", 0, 10, 2, 3, true},
		{"partial", 0, 5, 4, 8, true},
		{"reversed disjoint", 5, 6, 0, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntervalsOverlap(tt.aLo, tt.aHi, tt.bLo, tt.bHi); got != tt.want {
				t.Errorf("IntervalsOverlap(%v,%v,%v,%v) = %v, want %v",
					tt.aLo, tt.aHi, tt.bLo, tt.bHi, got, tt.want)
			}
		})
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Out-of-bounds writes must be ignored, not panic
	s.Set(-1, 0, 'x', ColorRed)
	s.Set(10, 0, 'x', ColorRed)
	s.Set(0, 5, 'x', ColorRed)

	if got := s.Get(-1, -1); got.Rune != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got.Rune)
	}

	s.Set(3, 2, '@', ColorGreen)
	cell := s.Get(3, 2)
	if cell.Rune != '@' || cell.Color != ColorGreen {
		t.Errorf("Get(3,2) = %+v, want '@' in green", cell)
	}
}
