package motif

import (
	"math"

	"github.com/vellari/rangoli/core"
)

const vineSamples = 51

// Vine interpolates start to end in exactly 51 samples with a sinusoidal
// sway that dies out at both tips. complexity sets the wiggle frequency;
// the two axes run at different rates so the sway never collapses into a
// flat wave.
func Vine(start, end core.Point, complexity float64) []core.Point {
	amp := 0.08 * start.Distance(end)

	pts := make([]core.Point, 0, vineSamples)
	for i := 0; i < vineSamples; i++ {
		t := float64(i) / (vineSamples - 1)
		p := start.Lerp(end, t)
		envelope := amp * math.Sin(math.Pi*t)
		p.X += envelope * math.Sin(2*math.Pi*complexity*t)
		p.Y += envelope * math.Sin(3*math.Pi*complexity*t)
		pts = append(pts, p)
	}
	return pts
}
