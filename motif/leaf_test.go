package motif

import (
	"math"
	"testing"

	"github.com/vellari/rangoli/core"
)

// TestLeafClosedAtBase verifies the outline returns to the base point
func TestLeafClosedAtBase(t *testing.T) {
	base := core.Pt(30, 70)
	pts := Leaf(base, 1.1, 1.5)

	if len(pts) != 2*leafSteps+1 {
		t.Fatalf("len = %d, want %d", len(pts), 2*leafSteps+1)
	}
	if !pointsNear(pts[0], base) {
		t.Errorf("outline starts at %v, want %v", pts[0], base)
	}
	if !pointsNear(pts[len(pts)-1], base) {
		t.Errorf("outline ends at %v, want %v", pts[len(pts)-1], base)
	}
}

// TestLeafTipReach verifies the tip lands at the scaled length
func TestLeafTipReach(t *testing.T) {
	base := core.Pt(0, 0)
	scale := 1.2
	pts := Leaf(base, 0, scale)

	// The farthest sample is the tip, one leaf length down the axis
	max := 0.0
	for _, p := range pts {
		if d := p.Distance(base); d > max {
			max = d
		}
	}
	want := 6 * scale
	if math.Abs(max-want) > 1e-6 {
		t.Errorf("tip reach = %v, want %v", max, want)
	}
}

// TestLeafFlanksMirrorAcrossAxis verifies the two flanks mirror across the spine
func TestLeafFlanksMirrorAcrossAxis(t *testing.T) {
	base := core.Pt(0, 0)
	pts := Leaf(base, 0, 1) // axis along +X, flanks along Y

	// Forward sample i and return sample mirror across the axis
	for i := 1; i < leafSteps; i++ {
		fwd := pts[i]
		ret := pts[len(pts)-1-i]
		if math.Abs(fwd.X-ret.X) > tol || math.Abs(fwd.Y+ret.Y) > tol {
			t.Fatalf("sample %d not mirrored: %v vs %v", i, fwd, ret)
		}
	}
}
