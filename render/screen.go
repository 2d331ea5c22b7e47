package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vellari/rangoli/core"
)

// cellAspect approximates the displayed width to height ratio of one
// quadrant pixel. Terminal cells run about twice as tall as wide, and
// quadrants split the cell evenly, so the ratio carries over
const cellAspect = 0.5

// ScreenRenderer draws onto a tcell terminal, packing four canvas
// pixels into each cell via quadrant block characters. The bottom
// statusRows rows are reserved for the caller and never painted
type ScreenRenderer struct {
	surface
	screen     tcell.Screen
	cols       int
	rows       int
	statusRows int
}

// NewScreenRenderer wraps an initialized tcell screen. The renderer
// sizes itself immediately; call Resize after terminal size changes
func NewScreenRenderer(screen tcell.Screen, statusRows int) *ScreenRenderer {
	if statusRows < 0 {
		statusRows = 0
	}
	r := &ScreenRenderer{screen: screen, statusRows: statusRows}
	r.Resize()
	return r
}

// Resize rebuilds the backing canvas from the current terminal size
// The previous frame is discarded; redraw after calling this
func (r *ScreenRenderer) Resize() {
	cols, rows := r.screen.Size()
	rows -= r.statusRows
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}
	r.cols = cols
	r.rows = rows
	r.canvas = NewCanvasAspect(cols*2, rows*2, cellAspect)
}

// Present folds the canvas into quadrant cells and flushes the screen
func (r *ScreenRenderer) Present() {
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			ch, fg, bg := r.canvas.CellAt(col, row)
			style := tcell.StyleDefault.
				Foreground(toTcellColor(fg)).
				Background(toTcellColor(bg))
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
	r.screen.Show()
}

func toTcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
