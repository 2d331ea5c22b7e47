package render

import (
	"math"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vellari/rangoli/core"
)

// Effects throws the stochastic powder accents that make a drawn line
// look poured rather than plotted. All randomness flows through one
// seeded source, so a fixed seed replays the exact same accents
type Effects struct {
	rng *rand.Rand

	ScatterCount  int     // flecks per drawn segment
	ScatterSpread float64 // maximum throw distance in pattern units
	TextureChance float64 // per-segment probability of a stray hairline
	TextureLength float64 // hairline half-length in pattern units
}

// NewEffects builds an effect source. A zero seed draws one from the
// clock, which is the interactive default; fix the seed to replay
func NewEffects(seed int64) *Effects {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Effects{
		rng:           rand.New(rand.NewSource(seed)),
		ScatterCount:  3,
		ScatterSpread: 1.6,
		TextureChance: 0.12,
		TextureLength: 2.2,
	}
}

// Scatter lands ScatterCount powder flecks around the tip of the mark
// just drawn. Short throws are more likely than long ones, so flecks
// cluster where the hand released
func (e *Effects) Scatter(r Renderer, tip core.Point, color core.RGB) {
	if r == nil {
		return
	}
	tint := airborne(color)
	for i := 0; i < e.ScatterCount; i++ {
		throw := e.ScatterSpread * e.rng.Float64() * e.rng.Float64()
		at := tip.Polar(throw, e.rng.Float64()*2*math.Pi)
		r.DrawScatter(at, ScatterStyle{
			Color:  tint,
			Radius: 0.2 + 0.3*e.rng.Float64(),
			Alpha:  0.12 + 0.2*e.rng.Float64(),
		})
	}
}

// Texture occasionally drags a faint hairline across the segment, the
// way a loaded hand leaves a wisp when it moves on
func (e *Effects) Texture(r Renderer, from, to core.Point, color core.RGB) {
	if r == nil {
		return
	}
	if e.rng.Float64() >= e.TextureChance {
		return
	}
	mid := from.Mid(to)
	angle := e.rng.Float64() * 2 * math.Pi
	reach := e.TextureLength * (0.4 + 0.6*e.rng.Float64())
	a := mid.Polar(reach, angle)
	b := mid.Polar(reach*(0.3+0.7*e.rng.Float64()), angle+math.Pi)
	r.DrawTexture(a, b, Style{Color: color.Scale(0.55), Thickness: 0.18})
}

// airborne lightens a pen toward chalk dust; powder in the air picks up
// ambient light, so flecks read paler than the line they came from
func airborne(c core.RGB) core.RGB {
	base := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	pale := colorful.Color{R: 1, G: 0.97, B: 0.9}
	mixed := base.BlendLab(pale, 0.35).Clamped()
	return core.RGB{
		R: uint8(mixed.R*255 + 0.5),
		G: uint8(mixed.G*255 + 0.5),
		B: uint8(mixed.B*255 + 0.5),
	}
}
