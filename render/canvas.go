package render

import (
	"math"

	"github.com/vellari/rangoli/core"
	"github.com/vellari/rangoli/pattern"
)

// QuadrantChars maps a 4-bit occupancy mask to its Unicode quadrant
// block character. Bit 0 is the upper-left quadrant, bit 1 upper-right,
// bit 2 lower-left, bit 3 lower-right
var QuadrantChars = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// Canvas is a fixed-size RGB pixel buffer with a centered viewport
// transform from pattern coordinates to device pixels. All drawing
// primitives take pattern coordinates; only the cell and pixel readers
// speak device units. Pixels need not be square: terminal quadrants are
// roughly twice as tall as wide, and the transform absorbs that
type Canvas struct {
	w, h   int
	pix    []core.RGB
	sx, sy float64
	dx, dy float64
}

// NewCanvas allocates a w by h canvas with square pixels whose viewport
// fits the full pattern square, centered and uniformly scaled
func NewCanvas(w, h int) *Canvas {
	return NewCanvasAspect(w, h, 1)
}

// NewCanvasAspect allocates a canvas whose pixels display at the given
// width to height ratio. The viewport is chosen so the pattern square
// appears square on the output device
func NewCanvasAspect(w, h int, pixelAspect float64) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if pixelAspect <= 0 {
		pixelAspect = 1
	}
	c := &Canvas{
		w:   w,
		h:   h,
		pix: make([]core.RGB, w*h),
	}
	c.sy = math.Min(float64(w)*pixelAspect, float64(h)) / pattern.CanvasSize
	c.sx = c.sy / pixelAspect
	c.dx = (float64(w) - pattern.CanvasSize*c.sx) / 2
	c.dy = (float64(h) - pattern.CanvasSize*c.sy) / 2
	return c
}

// Width returns the device width in pixels
func (c *Canvas) Width() int { return c.w }

// Height returns the device height in pixels
func (c *Canvas) Height() int { return c.h }

// At returns the pixel at device coordinates, black when out of range
func (c *Canvas) At(x, y int) core.RGB {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return core.RGBBlack
	}
	return c.pix[y*c.w+x]
}

// Clear resets every pixel to black
func (c *Canvas) Clear() {
	c.Fill(core.RGBBlack)
}

// Fill floods every pixel with the given color
func (c *Canvas) Fill(color core.RGB) {
	for i := range c.pix {
		c.pix[i] = color
	}
}

func (c *Canvas) device(p core.Point) (float64, float64) {
	return p.X*c.sx + c.dx, p.Y*c.sy + c.dy
}

func (c *Canvas) set(x, y int, color core.RGB) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.pix[y*c.w+x] = color
}

func (c *Canvas) blend(x, y int, color core.RGB, alpha float64) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	i := y*c.w + x
	c.pix[i] = c.pix[i].Blend(color, alpha)
}

func (c *Canvas) deposit(x, y int, color core.RGB) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	i := y*c.w + x
	c.pix[i] = c.pix[i].Add(color)
}

// stamp paints a solid disc of the given pattern-unit radius centered
// at device coordinates, with a soft one-pixel rim. On non-square
// pixels the painted region is elliptical in device space so it reads
// round on the output
func (c *Canvas) stamp(cx, cy, radius float64, color core.RGB) {
	rx := radius * c.sx
	ry := radius * c.sy
	if rx <= 0.5 {
		c.blend(int(cx), int(cy), color, math.Max(rx*2, 0.35))
		return
	}
	k := rx / ry
	minX := int(math.Floor(cx - rx - 1))
	maxX := int(math.Ceil(cx + rx + 1))
	minY := int(math.Floor(cy - ry - 1))
	maxY := int(math.Ceil(cy + ry + 1))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5 - cx
			py := (float64(y) + 0.5 - cy) * k
			d := math.Hypot(px, py)
			switch {
			case d <= rx-0.5:
				c.set(x, y, color)
			case d <= rx+0.5:
				c.blend(x, y, color, rx+0.5-d)
			}
		}
	}
}

// Line draws a stroked segment between two pattern points
func (c *Canvas) Line(from, to core.Point, thickness float64, color core.RGB) {
	x0, y0 := c.device(from)
	x1, y1 := c.device(to)
	dist := math.Hypot(x1-x0, y1-y0)
	steps := int(dist) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.stamp(x0+(x1-x0)*t, y0+(y1-y0)*t, thickness/2, color)
	}
}

// Quad draws a quadratic bezier from p0 to p1 bending toward ctrl
func (c *Canvas) Quad(p0, ctrl, p1 core.Point, thickness float64, color core.RGB) {
	const steps = 12
	prev := p0
	for i := 1; i <= steps; i++ {
		t := float64(i) / steps
		u := 1 - t
		cur := core.Point{
			X: u*u*p0.X + 2*u*t*ctrl.X + t*t*p1.X,
			Y: u*u*p0.Y + 2*u*t*ctrl.Y + t*t*p1.Y,
		}
		c.Line(prev, cur, thickness, color)
		prev = cur
	}
}

// Disc paints a filled circle of the given pattern-unit radius
func (c *Canvas) Disc(center core.Point, radius float64, color core.RGB) {
	cx, cy := c.device(center)
	c.stamp(cx, cy, radius, color)
}

// Fleck deposits color additively over a small disc, brightest at the
// center. Repeated flecks pile up the way scattered powder does
func (c *Canvas) Fleck(at core.Point, radius float64, color core.RGB, alpha float64) {
	cx, cy := c.device(at)
	rx := math.Max(radius*c.sx, 0.5)
	ry := math.Max(radius*c.sy, 0.5)
	k := rx / ry
	minX := int(math.Floor(cx - rx))
	maxX := int(math.Ceil(cx + rx))
	minY := int(math.Floor(cy - ry))
	maxY := int(math.Ceil(cy + ry))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5 - cx
			py := (float64(y) + 0.5 - cy) * k
			d := math.Hypot(px, py)
			if d > rx+0.5 {
				continue
			}
			a := alpha * (1 - d/(rx+0.5)*0.5)
			c.deposit(x, y, color.Scale(a))
		}
	}
}

// CellAt folds the 2x2 pixel block backing a terminal cell into a
// quadrant character plus foreground and background colors
func (c *Canvas) CellAt(col, row int) (rune, core.RGB, core.RGB) {
	block := [4]core.RGB{
		c.At(col*2, row*2),
		c.At(col*2+1, row*2),
		c.At(col*2, row*2+1),
		c.At(col*2+1, row*2+1),
	}
	return bestQuadrant(block)
}

// bestQuadrant picks the occupancy mask whose two-color rendering of
// the block has the least squared error
func bestQuadrant(block [4]core.RGB) (rune, core.RGB, core.RGB) {
	bestMask := 0
	bestErr := math.MaxInt
	var bestFg, bestBg core.RGB
	for mask := 0; mask < 16; mask++ {
		fg := maskAverage(block, mask, true)
		bg := maskAverage(block, mask, false)
		errSum := 0
		for i := 0; i < 4; i++ {
			if mask&(1<<i) != 0 {
				errSum += colorDistSq(block[i], fg)
			} else {
				errSum += colorDistSq(block[i], bg)
			}
		}
		if errSum < bestErr {
			bestMask = mask
			bestErr = errSum
			bestFg = fg
			bestBg = bg
		}
	}
	if bestMask == 0 {
		bestFg = bestBg
	}
	return QuadrantChars[bestMask], bestFg, bestBg
}

func maskAverage(block [4]core.RGB, mask int, on bool) core.RGB {
	var r, g, b, n int
	for i := 0; i < 4; i++ {
		if (mask&(1<<i) != 0) != on {
			continue
		}
		r += int(block[i].R)
		g += int(block[i].G)
		b += int(block[i].B)
		n++
	}
	if n == 0 {
		return core.RGBBlack
	}
	return core.RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

func colorDistSq(a, b core.RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
