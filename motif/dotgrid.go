package motif

import "github.com/vellari/rangoli/core"

// DotGrid lays out a size x size lattice centered on center, row-major
// from the top-left dot, returning nil when size or spacing is out of range
func DotGrid(size int, spacing float64, center core.Point) []core.Point {
	if size < 1 || spacing <= 0 {
		return nil
	}
	half := float64(size-1) / 2
	pts := make([]core.Point, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pts = append(pts, core.Pt(
				center.X+(float64(col)-half)*spacing,
				center.Y+(float64(row)-half)*spacing,
			))
		}
	}
	return pts
}
