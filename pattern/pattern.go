package pattern

import (
	"errors"
	"fmt"

	"github.com/vellari/rangoli/core"
)

// CanvasSize is the edge length of the square logical space every pattern
// is authored in; renderers own the transform to device coordinates
const CanvasSize = 100.0

// Kind selects the rendering algorithm for a stroke
type Kind uint8

const (
	Line  Kind = iota // straight segments between consecutive points
	Curve             // smoothed segments using neighbor samples
	Dot               // independent point markers, drawn in one burst
	Fill              // closed outline painted as a region; reserved, accepted but unused by generators
)

// String returns human-readable kind name
func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Curve:
		return "curve"
	case Dot:
		return "dot"
	case Fill:
		return "fill"
	default:
		return "unknown"
	}
}

// Stroke is one drawable unit: an ordered point path plus pen metadata
// Point order is the drawing order
type Stroke struct {
	Points    []core.Point
	Color     core.RGB
	Thickness float64 // pen width in canvas units, ignored for Dot and Fill
	Delay     int     // authoring timeline hint; playback stays strictly sequential
	Kind      Kind
}

// Pattern is a complete named design, built once at startup and never
// mutated afterward
type Pattern struct {
	ID          string
	Name        string
	Description string
	GridSize    int     // dot lattice edge, retained for display
	DotSpacing  float64 // lattice pitch in canvas units
	Background  core.RGB
	Strokes     []Stroke // mandatory draw order, never reorder
}

// Info is the display metadata reported alongside playback progress
type Info struct {
	ID          string
	Name        string
	Description string
}

// Info extracts the pattern's display metadata
func (p *Pattern) Info() Info {
	return Info{ID: p.ID, Name: p.Name, Description: p.Description}
}

// Validation sentinels; assembly fails fast on these, playback never sees them
var (
	ErrEmptyStroke = errors.New("stroke has no points")
	ErrShortStroke = errors.New("single-point stroke is only legal for dots")
)

// Validate checks every stroke is drawable, meant to run once at assembly
// time so malformed generator output fails at startup rather than
// mid-playback
func (p *Pattern) Validate() error {
	for i := range p.Strokes {
		s := &p.Strokes[i]
		if len(s.Points) == 0 {
			return fmt.Errorf("stroke %d: %w", i, ErrEmptyStroke)
		}
		if len(s.Points) == 1 && s.Kind != Dot {
			return fmt.Errorf("stroke %d (%s): %w", i, s.Kind, ErrShortStroke)
		}
		if s.Delay < 0 {
			return fmt.Errorf("stroke %d: negative delay %d", i, s.Delay)
		}
		if s.Thickness <= 0 && (s.Kind == Line || s.Kind == Curve) {
			return fmt.Errorf("stroke %d (%s): thickness %g is not positive", i, s.Kind, s.Thickness)
		}
	}
	return nil
}
