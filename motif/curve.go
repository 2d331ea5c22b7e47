package motif

import (
	"math"

	"github.com/vellari/rangoli/core"
)

// Circle samples a closed circle as steps segments; the first and last
// point coincide
func Circle(center core.Point, radius float64, steps int) []core.Point {
	pts := make([]core.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		pts = append(pts, center.Polar(radius, theta))
	}
	return pts
}

// Petal samples one closed rose-curve petal anchored at center. The radius
// tapers to a point at both ends of the parameter while the angle drifts
// across spread, so the outward edge returns along a rotated path and the
// loop closes back at the anchor.
func Petal(center core.Point, length, baseAngle, spread float64) []core.Point {
	const steps = 20
	pts := make([]core.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		r := length * math.Sin(math.Pi*t)
		theta := baseAngle + spread*(t-0.5)
		pts = append(pts, center.Polar(r, theta))
	}
	return pts
}

// Rosette samples a small four-lobed closed loop
func Rosette(center core.Point, radius float64) []core.Point {
	const steps = 16
	pts := make([]core.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		phi := 2 * math.Pi * float64(i) / steps
		r := radius * (0.55 + 0.45*math.Cos(4*phi))
		pts = append(pts, center.Polar(r, phi))
	}
	return pts
}
