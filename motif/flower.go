package motif

import (
	"math"

	"github.com/vellari/rangoli/core"
	"github.com/vellari/rangoli/pattern"
)

const (
	outerPetals = 8
	innerPetals = 4
	petalSpread = 0.62 // angular width of one petal loop, radians
)

// Flower builds a layered rosette around center: eight outer petals
// alternating two pens, four inner petals offset between them, and a chalk
// center ring. The whole motif scales linearly from one base radius.
// Delays step through the petals in drawing order, center last.
func Flower(center core.Point, scale float64) []pattern.Stroke {
	radius := 10 * scale
	strokes := make([]pattern.Stroke, 0, outerPetals+innerPetals+1)

	for i := 0; i < outerPetals; i++ {
		pen := Marigold
		if i%2 == 1 {
			pen = Vermilion
		}
		base := 2 * math.Pi * float64(i) / outerPetals
		strokes = append(strokes, pattern.Stroke{
			Points:    Petal(center, radius, base, petalSpread),
			Color:     pen,
			Thickness: 0.9,
			Delay:     i,
			Kind:      pattern.Curve,
		})
	}

	for i := 0; i < innerPetals; i++ {
		base := 2*math.Pi*float64(i)/innerPetals + math.Pi/4
		strokes = append(strokes, pattern.Stroke{
			Points:    Petal(center, 0.55*radius, base, petalSpread*1.3),
			Color:     Saffron,
			Thickness: 0.8,
			Delay:     outerPetals + i,
			Kind:      pattern.Curve,
		})
	}

	strokes = append(strokes, pattern.Stroke{
		Points:    Circle(center, 0.2*radius, 16),
		Color:     Chalk,
		Thickness: 0.8,
		Delay:     outerPetals + innerPetals,
		Kind:      pattern.Curve,
	})

	return strokes
}
