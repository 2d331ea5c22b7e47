package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChimeGenerator generates a single sine tone with a fast exponential
// decay, like a struck bell. It never ends on its own; wrap it in
// beep.Take
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

var _ beep.Streamer = (*ChimeGenerator)(nil)

// NewChimeGenerator creates a chime generator at the given pitch
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		v := math.Sin(2*math.Pi*g.freq*t) * math.Exp(-t*22) * 0.35
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// arpeggioNotes is a pentatonic run, C5 up to A5
var arpeggioNotes = [5]float64{523.25, 587.33, 659.25, 783.99, 880.00}

const arpeggioNoteLen = 140 * time.Millisecond

// ArpeggioGenerator generates the notes of arpeggioNotes in order, each
// plucked with its own decay envelope. Wrap in beep.Take for the total
// length
type ArpeggioGenerator struct {
	sr  beep.SampleRate
	pos int
}

var _ beep.Streamer = (*ArpeggioGenerator)(nil)

// NewArpeggioGenerator creates the pattern-completion arpeggio generator
func NewArpeggioGenerator(sr beep.SampleRate) *ArpeggioGenerator {
	return &ArpeggioGenerator{sr: sr}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	noteSamples := g.sr.N(arpeggioNoteLen)
	for i := range samples {
		idx := g.pos / noteSamples
		if idx >= len(arpeggioNotes) {
			idx = len(arpeggioNotes) - 1
		}
		t := float64(g.pos%noteSamples) / float64(g.sr)
		v := math.Sin(2*math.Pi*arpeggioNotes[idx]*t) * math.Exp(-t*9) * 0.3
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}
