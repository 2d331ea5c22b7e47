package gallery

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vellari/rangoli/core"
)

// Palette holds the ground and foliage pens one pattern draws from; the
// motif generators carry their own fixed pens for petals, feathers and
// borders
type Palette struct {
	Name       string
	Background core.RGB
	Lattice    core.RGB
	Leaf       core.RGB
}

var palettes = []Palette{
	{
		Name:       "Terracotta",
		Background: core.RGB{R: 54, G: 24, B: 18},
		Lattice:    core.RGB{R: 246, G: 240, B: 228},
		Leaf:       core.RGB{R: 76, G: 155, B: 70},
	},
	{
		Name:       "Midnight",
		Background: core.RGB{R: 16, G: 18, B: 42},
		Lattice:    core.RGB{R: 236, G: 238, B: 248},
		Leaf:       core.RGB{R: 58, G: 142, B: 92},
	},
	{
		Name:       "Slate",
		Background: core.RGB{R: 38, G: 40, B: 44},
		Lattice:    core.RGB{R: 242, G: 238, B: 230},
		Leaf:       core.RGB{R: 96, G: 148, B: 72},
	},
	{
		Name:       "Indigo Dusk",
		Background: core.RGB{R: 30, G: 22, B: 52},
		Lattice:    core.RGB{R: 244, G: 236, B: 250},
		Leaf:       core.RGB{R: 70, G: 150, B: 96},
	},
}

// vine derives the vine pen from the leaf pen, a shade darker in the same hue
func (p Palette) vine() core.RGB {
	return darken(p.Leaf, 0.3)
}

// darken drops a pen's Lab lightness while keeping its hue
func darken(c core.RGB, amount float64) core.RGB {
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	l, a, b := col.Lab()
	out := colorful.Lab(l*(1-amount), a, b).Clamped()
	return core.RGB{
		R: uint8(out.R*255 + 0.5),
		G: uint8(out.G*255 + 0.5),
		B: uint8(out.B*255 + 0.5),
	}
}
