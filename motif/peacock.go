package motif

import (
	"math"

	"github.com/vellari/rangoli/core"
	"github.com/vellari/rangoli/pattern"
)

const (
	tailFeathers  = 15
	crownFeathers = 5
	stemSteps     = 8
)

var eyePens = [3]core.RGB{Sapphire, Emerald, Gold}

// Peacock draws a hand-authored bird with its tail base at center: the body
// and neck polyline, five crown feathers above the head, then fifteen tail
// feathers fanning over the upward arc, each a bowed stem capped with a
// colored eye. Stem reach grows with the feather index and the eye pens
// cycle through three colors.
func Peacock(center core.Point) []pattern.Stroke {
	strokes := make([]pattern.Stroke, 0, 1+crownFeathers+2*tailFeathers)

	// Tail base, breast, neck and head, in canvas units relative to center
	body := []core.Point{
		center,
		center.Add(core.Pt(2.6, 1.6)),
		center.Add(core.Pt(5.4, 1.9)),
		center.Add(core.Pt(7.6, 0.6)),
		center.Add(core.Pt(8.6, -2.2)),
		center.Add(core.Pt(8.4, -5.6)),
		center.Add(core.Pt(7.8, -9.0)),
		center.Add(core.Pt(8.6, -12.0)),
	}
	strokes = append(strokes, pattern.Stroke{
		Points:    body,
		Color:     PeacockBlue,
		Thickness: 1.3,
		Delay:     0,
		Kind:      pattern.Curve,
	})

	head := body[len(body)-1]
	for i := 0; i < crownFeathers; i++ {
		theta := (240 + 15*float64(i)) * math.Pi / 180
		strokes = append(strokes, pattern.Stroke{
			Points:    []core.Point{head, head.Polar(3.0, theta)},
			Color:     Gold,
			Thickness: 0.5,
			Delay:     1 + i,
			Kind:      pattern.Line,
		})
	}

	for i := 0; i < tailFeathers; i++ {
		frac := float64(i) / (tailFeathers - 1)
		theta := (195 + 150*frac) * math.Pi / 180
		reach := 13 + 1.05*float64(i)

		stem := featherStem(center, reach, theta)
		strokes = append(strokes, pattern.Stroke{
			Points:    stem,
			Color:     Emerald,
			Thickness: 0.6,
			Delay:     1 + crownFeathers + 2*i,
			Kind:      pattern.Curve,
		})

		tip := stem[len(stem)-1]
		strokes = append(strokes, pattern.Stroke{
			Points:    Circle(tip, 1.7, 10),
			Color:     eyePens[i%3],
			Thickness: 0.7,
			Delay:     2 + crownFeathers + 2*i,
			Kind:      pattern.Curve,
		})
	}

	return strokes
}

// featherStem bows a stem sideways on its way out from the tail base
func featherStem(base core.Point, reach, theta float64) []core.Point {
	dir := core.Pt(math.Cos(theta), math.Sin(theta))
	norm := core.Pt(-dir.Y, dir.X)

	pts := make([]core.Point, 0, stemSteps+1)
	for i := 0; i <= stemSteps; i++ {
		t := float64(i) / stemSteps
		p := base.Add(dir.Mul(reach * t))
		pts = append(pts, p.Add(norm.Mul(1.1*math.Sin(math.Pi*t))))
	}
	return pts
}
