package motif

import "github.com/vellari/rangoli/core"

// Powder pens fixed at authoring time, shared by the stroke generators
var (
	Marigold    = core.RGB{R: 249, G: 168, B: 37}
	Vermilion   = core.RGB{R: 211, G: 47, B: 47}
	Saffron     = core.RGB{R: 255, G: 213, B: 79}
	Chalk       = core.RGB{R: 250, G: 250, B: 245}
	PeacockBlue = core.RGB{R: 38, G: 93, B: 179}
	Emerald     = core.RGB{R: 27, G: 158, B: 119}
	Sapphire    = core.RGB{R: 63, G: 81, B: 181}
	Gold        = core.RGB{R: 255, G: 193, B: 7}
	Rust        = core.RGB{R: 183, G: 65, B: 14}
)
