package motif

import (
	"math"

	"github.com/vellari/rangoli/core"
	"github.com/vellari/rangoli/pattern"
)

const (
	scallopSteps = 96
	scallopWaves = 8
	rosetteCount = 12
)

// Border rings the design: one scalloped circle whose radius swells across
// eight lobes, then twelve small rosettes spaced around the ring between
// the lobes.
func Border(center core.Point, radius float64) []pattern.Stroke {
	amp := 0.04 * radius

	ring := make([]core.Point, 0, scallopSteps+1)
	for i := 0; i <= scallopSteps; i++ {
		theta := 2 * math.Pi * float64(i) / scallopSteps
		r := radius + amp*math.Sin(scallopWaves*theta)
		ring = append(ring, center.Polar(r, theta))
	}

	strokes := make([]pattern.Stroke, 0, 1+rosetteCount)
	strokes = append(strokes, pattern.Stroke{
		Points:    ring,
		Color:     Rust,
		Thickness: 1.1,
		Delay:     0,
		Kind:      pattern.Curve,
	})

	for i := 0; i < rosetteCount; i++ {
		theta := 2*math.Pi*float64(i)/rosetteCount + math.Pi/rosetteCount
		strokes = append(strokes, pattern.Stroke{
			Points:    Rosette(center.Polar(radius, theta), 0.05*radius),
			Color:     Gold,
			Thickness: 0.6,
			Delay:     1 + i,
			Kind:      pattern.Curve,
		})
	}

	return strokes
}
