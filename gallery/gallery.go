package gallery

import (
	"fmt"
	"math"
	"sync"

	"github.com/vellari/rangoli/core"
	"github.com/vellari/rangoli/motif"
	"github.com/vellari/rangoli/pattern"
)

var canvasCenter = core.Pt(pattern.CanvasSize/2, pattern.CanvasSize/2)

var (
	buildOnce sync.Once
	table     []pattern.Pattern
)

// Patterns returns the shared pattern table, built once on first use
// and read-only afterward
func Patterns() []pattern.Pattern {
	buildOnce.Do(func() {
		table = []pattern.Pattern{
			lotusBloom(),
			peacockGarden(),
			vineMandala(),
			starKolam(),
		}
		for i := range table {
			if err := table[i].Validate(); err != nil {
				panic(fmt.Sprintf("gallery: pattern %q: %v", table[i].ID, err))
			}
		}
	})
	return table
}

// stroke wraps raw generator points with pen metadata
func stroke(pts []core.Point, pen core.RGB, thickness float64, delay int, kind pattern.Kind) pattern.Stroke {
	return pattern.Stroke{Points: pts, Color: pen, Thickness: thickness, Delay: delay, Kind: kind}
}

// shift rebases a stroke group's relative delays to start at base and
// returns the group plus the next free delay slot
func shift(strokes []pattern.Stroke, base int) ([]pattern.Stroke, int) {
	next := base
	for i := range strokes {
		strokes[i].Delay += base
		if strokes[i].Delay >= next {
			next = strokes[i].Delay + 1
		}
	}
	return strokes, next
}

// lotusBloom: a large central lotus, four satellite blooms on the
// diagonals, vines reaching out to each, a leaf ring, the full border
func lotusBloom() pattern.Pattern {
	pal := palettes[0]
	vinePen := pal.vine()

	p := pattern.Pattern{
		ID:          "lotus-bloom",
		Name:        "Lotus Bloom",
		Description: "central lotus with satellite blooms on the diagonals",
		GridSize:    13,
		DotSpacing:  6.5,
		Background:  pal.Background,
	}

	strokes := []pattern.Stroke{
		stroke(motif.DotGrid(p.GridSize, p.DotSpacing, canvasCenter), pal.Lattice, 1, 0, pattern.Dot),
	}
	next := 1

	for i := 0; i < 4; i++ {
		theta := math.Pi/4 + float64(i)*math.Pi/2
		from := canvasCenter.Polar(14, theta)
		to := canvasCenter.Polar(27, theta)
		strokes = append(strokes, stroke(motif.Vine(from, to, 3), vinePen, 0.7, next, pattern.Curve))
		next++
	}

	for i := 0; i < 8; i++ {
		theta := float64(i) * math.Pi / 4
		base := canvasCenter.Polar(19, theta)
		strokes = append(strokes, stroke(motif.Leaf(base, theta, 0.9), pal.Leaf, 0.8, next, pattern.Curve))
		next++
	}

	var group []pattern.Stroke
	group, next = shift(motif.Flower(canvasCenter, 1.6), next)
	strokes = append(strokes, group...)

	for i := 0; i < 4; i++ {
		theta := math.Pi/4 + float64(i)*math.Pi/2
		group, next = shift(motif.Flower(canvasCenter.Polar(34, theta), 0.7), next)
		strokes = append(strokes, group...)
	}

	group, _ = shift(motif.Border(canvasCenter, 45), next)
	strokes = append(strokes, group...)

	p.Strokes = strokes
	return p
}

// peacockGarden: the peacock fanned over the upper arc, two blooms at its
// feet joined by vines, leaves along the lower rim
func peacockGarden() pattern.Pattern {
	pal := palettes[1]
	vinePen := pal.vine()

	p := pattern.Pattern{
		ID:          "peacock-garden",
		Name:        "Peacock Garden",
		Description: "a fanned peacock flanked by two blooms",
		GridSize:    11,
		DotSpacing:  8,
		Background:  pal.Background,
	}

	strokes := []pattern.Stroke{
		stroke(motif.DotGrid(p.GridSize, p.DotSpacing, canvasCenter), pal.Lattice, 1, 0, pattern.Dot),
	}
	next := 1

	tail := core.Pt(50, 62)
	strokes = append(strokes,
		stroke(motif.Vine(core.Pt(44, 65), core.Pt(30, 72), 2.5), vinePen, 0.7, next, pattern.Curve))
	next++
	strokes = append(strokes,
		stroke(motif.Vine(core.Pt(56, 65), core.Pt(70, 72), 2.5), vinePen, 0.7, next, pattern.Curve))
	next++

	for i := 0; i < 5; i++ {
		theta := (65 + 12.5*float64(i)) * math.Pi / 180
		base := canvasCenter.Polar(28, theta)
		strokes = append(strokes, stroke(motif.Leaf(base, theta, 0.7), pal.Leaf, 0.8, next, pattern.Curve))
		next++
	}

	var group []pattern.Stroke
	group, next = shift(motif.Peacock(tail), next)
	strokes = append(strokes, group...)

	group, next = shift(motif.Flower(core.Pt(24, 74), 0.6), next)
	strokes = append(strokes, group...)
	group, next = shift(motif.Flower(core.Pt(76, 74), 0.6), next)
	strokes = append(strokes, group...)

	group, _ = shift(motif.Border(canvasCenter, 44), next)
	strokes = append(strokes, group...)

	p.Strokes = strokes
	return p
}

// vineMandala: six vines spiral out to a hex ring of small blooms, a leaf
// pair flanking every vine
func vineMandala() pattern.Pattern {
	pal := palettes[2]
	vinePen := pal.vine()

	p := pattern.Pattern{
		ID:          "vine-mandala",
		Name:        "Vine Mandala",
		Description: "hex ring of blooms joined by winding vines",
		GridSize:    15,
		DotSpacing:  5.8,
		Background:  pal.Background,
	}

	strokes := []pattern.Stroke{
		stroke(motif.DotGrid(p.GridSize, p.DotSpacing, canvasCenter), pal.Lattice, 1, 0, pattern.Dot),
	}
	next := 1

	for k := 0; k < 6; k++ {
		theta := float64(k) * math.Pi / 3
		from := canvasCenter.Polar(12, theta)
		to := canvasCenter.Polar(23, theta)
		strokes = append(strokes, stroke(motif.Vine(from, to, 4), vinePen, 0.7, next, pattern.Curve))
		next++
	}

	for k := 0; k < 6; k++ {
		theta := float64(k) * math.Pi / 3
		for _, side := range []float64{-1, 1} {
			base := canvasCenter.Polar(16, theta+side*0.22)
			strokes = append(strokes,
				stroke(motif.Leaf(base, theta+side*0.6, 0.55), pal.Leaf, 0.7, next, pattern.Curve))
			next++
		}
	}

	var group []pattern.Stroke
	group, next = shift(motif.Flower(canvasCenter, 1.1), next)
	strokes = append(strokes, group...)

	for k := 0; k < 6; k++ {
		theta := float64(k) * math.Pi / 3
		group, next = shift(motif.Flower(canvasCenter.Polar(29, theta), 0.55), next)
		strokes = append(strokes, group...)
	}

	group, _ = shift(motif.Border(canvasCenter, 46), next)
	strokes = append(strokes, group...)

	p.Strokes = strokes
	return p
}

// starKolam: an eight-point star of near-straight vines between two rings
// of lattice radii, leaves at the tips, a bloom in the middle
func starKolam() pattern.Pattern {
	pal := palettes[3]
	vinePen := pal.vine()

	p := pattern.Pattern{
		ID:          "star-kolam",
		Name:        "Star Kolam",
		Description: "eight-point star with leaf-tipped rays",
		GridSize:    9,
		DotSpacing:  9,
		Background:  pal.Background,
	}

	strokes := []pattern.Stroke{
		stroke(motif.DotGrid(p.GridSize, p.DotSpacing, canvasCenter), pal.Lattice, 1, 0, pattern.Dot),
	}
	next := 1

	const points = 8
	for k := 0; k < points; k++ {
		tipTheta := float64(k) * math.Pi / 4
		valleyTheta := tipTheta + math.Pi/8
		nextTipTheta := float64(k+1) * math.Pi / 4

		tip := canvasCenter.Polar(36, tipTheta)
		valley := canvasCenter.Polar(15, valleyTheta)
		nextTip := canvasCenter.Polar(36, nextTipTheta)

		strokes = append(strokes, stroke(motif.Vine(tip, valley, 1.2), vinePen, 0.8, next, pattern.Curve))
		next++
		strokes = append(strokes, stroke(motif.Vine(valley, nextTip, 1.2), vinePen, 0.8, next, pattern.Curve))
		next++
	}

	var group []pattern.Stroke
	group, next = shift(motif.Flower(canvasCenter, 0.9), next)
	strokes = append(strokes, group...)

	for k := 0; k < points; k++ {
		theta := float64(k) * math.Pi / 4
		base := canvasCenter.Polar(36.5, theta)
		strokes = append(strokes, stroke(motif.Leaf(base, theta, 0.5), pal.Leaf, 0.7, next, pattern.Curve))
		next++
	}

	group, _ = shift(motif.Border(canvasCenter, 45), next)
	strokes = append(strokes, group...)

	p.Strokes = strokes
	return p
}
