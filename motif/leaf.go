package motif

import (
	"math"

	"github.com/vellari/rangoli/core"
)

const leafSteps = 16

// Leaf samples a closed teardrop silhouette pointing along angle: out along
// one flank of the axis, back along the other, widest at the mid-rib. base
// sits at the stem end and the loop closes there.
func Leaf(base core.Point, angle, scale float64) []core.Point {
	length := 6 * scale
	width := 1.9 * scale

	dir := core.Pt(math.Cos(angle), math.Sin(angle))
	norm := core.Pt(-dir.Y, dir.X)

	pts := make([]core.Point, 0, 2*leafSteps+1)
	for i := 0; i <= leafSteps; i++ {
		t := float64(i) / leafSteps
		spine := base.Add(dir.Mul(length * t))
		pts = append(pts, spine.Add(norm.Mul(width*math.Sin(math.Pi*t))))
	}
	for i := leafSteps - 1; i >= 0; i-- {
		t := float64(i) / leafSteps
		spine := base.Add(dir.Mul(length * t))
		pts = append(pts, spine.Sub(norm.Mul(width*math.Sin(math.Pi*t))))
	}
	return pts
}
