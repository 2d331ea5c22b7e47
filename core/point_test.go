package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestPointArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"add", Pt(1, 2).Add(Pt(3, -1)), Pt(4, 1)},
		{"sub", Pt(1, 2).Sub(Pt(3, -1)), Pt(-2, 3)},
		{"mul", Pt(1.5, -2).Mul(2), Pt(3, -4)},
		{"mid", Pt(0, 0).Mid(Pt(4, 6)), Pt(2, 3)},
		{"lerp zero", Pt(1, 1).Lerp(Pt(5, 5), 0), Pt(1, 1)},
		{"lerp one", Pt(1, 1).Lerp(Pt(5, 5), 1), Pt(5, 5)},
		{"lerp half", Pt(0, 2).Lerp(Pt(4, 6), 0.5), Pt(2, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !near(tt.got.X, tt.want.X) || !near(tt.got.Y, tt.want.Y) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPointPolar(t *testing.T) {
	p := Pt(10, 10)

	right := p.Polar(5, 0)
	if !near(right.X, 15) || !near(right.Y, 10) {
		t.Errorf("Polar(5, 0) = %v, want (15, 10)", right)
	}

	down := p.Polar(5, math.Pi/2)
	if !near(down.X, 10) || !near(down.Y, 15) {
		t.Errorf("Polar(5, pi/2) = %v, want (10, 15)", down)
	}
}

func TestPointDistance(t *testing.T) {
	if d := Pt(0, 0).Distance(Pt(3, 4)); !near(d, 5) {
		t.Errorf("Distance = %v, want 5", d)
	}
	if d := Pt(2, 2).Distance(Pt(2, 2)); !near(d, 0) {
		t.Errorf("Distance to self = %v, want 0", d)
	}
}
