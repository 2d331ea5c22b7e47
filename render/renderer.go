// Package render rasterizes pattern geometry onto drawing surfaces.
//
// The Renderer interface is the contract the playback engine draws
// through. Two implementations are provided: ScreenRenderer targets a
// tcell terminal using quadrant block characters, ImageRenderer targets
// an in-memory RGBA image for PNG export. Both share the Canvas
// rasterizer and differ only in how a finished frame is presented.
package render

import (
	"github.com/vellari/rangoli/core"
	"github.com/vellari/rangoli/pattern"
)

// Style carries the pen for a single drawing operation
type Style struct {
	Color     core.RGB
	Thickness float64
}

// Segment is one step of a stroke: the edge From->To, plus the point
// preceding From when the stroke has one. Renderers use Prev to round
// curve joints; straight strokes ignore it
type Segment struct {
	From    core.Point
	To      core.Point
	Prev    core.Point
	HasPrev bool
	Kind    pattern.Kind
	Style   Style
}

// ScatterStyle describes one powder fleck thrown beside a stroke
type ScatterStyle struct {
	Color  core.RGB
	Radius float64
	Alpha  float64
}

// Renderer is a drawing surface in pattern coordinates. Implementations
// map the logical canvas (pattern.CanvasSize square) onto their device
// and must tolerate any call order the engine produces
type Renderer interface {
	// Clear resets the surface to black
	Clear()

	// FillBackground floods the surface with the pattern background
	FillBackground(color core.RGB)

	// DrawDots stamps the lattice markers of a dot grid
	DrawDots(points []core.Point, style Style)

	// DrawSegment draws one stroke step
	DrawSegment(seg Segment)

	// DrawScatter deposits a powder fleck at a point
	DrawScatter(at core.Point, style ScatterStyle)

	// DrawTexture drops a stray hairline between two points
	DrawTexture(from, to core.Point, style Style)

	// Present flushes the frame to the device
	Present()
}

// dotRadius is the lattice marker size in pattern units
const dotRadius = 0.55

// surface implements the Renderer drawing vocabulary over a Canvas
// ScreenRenderer and ImageRenderer embed it and add their own Present
type surface struct {
	canvas *Canvas
}

func (s *surface) Clear() {
	s.canvas.Clear()
}

func (s *surface) FillBackground(color core.RGB) {
	s.canvas.Fill(color)
}

func (s *surface) DrawDots(points []core.Point, style Style) {
	for _, p := range points {
		s.canvas.Disc(p, dotRadius, style.Color)
	}
}

func (s *surface) DrawSegment(seg Segment) {
	if seg.Kind == pattern.Curve && seg.HasPrev {
		// Round the joint: a quadratic through the midpoints keeps the
		// polyline tangent-continuous without overshooting the samples
		entry := seg.Prev.Mid(seg.From)
		exit := seg.From.Mid(seg.To)
		s.canvas.Quad(entry, seg.From, exit, seg.Style.Thickness, seg.Style.Color)
		s.canvas.Line(exit, seg.To, seg.Style.Thickness, seg.Style.Color)
		return
	}
	s.canvas.Line(seg.From, seg.To, seg.Style.Thickness, seg.Style.Color)
}

func (s *surface) DrawScatter(at core.Point, style ScatterStyle) {
	s.canvas.Fleck(at, style.Radius, style.Color, style.Alpha)
}

func (s *surface) DrawTexture(from, to core.Point, style Style) {
	s.canvas.Line(from, to, style.Thickness, style.Color)
}
