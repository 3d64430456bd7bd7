package tui

import (
	"github.com/vovakirdan/jumping-chick/internal/core"
	"github.com/vovakirdan/jumping-chick/internal/render"
)

// HalfBlock is drawn in every cell: foreground is the upper pixel,
// background the lower one.
const HalfBlock = '▀'

type label struct {
	text   string
	x, y   float64
	anchor render.Anchor
	color  core.Color
}

// TermSurface is a render.Surface for a terminal. Shapes are rasterized
// at cols x rows*2 pixels; text is kept as terminal characters so it stays
// readable at any size.
type TermSurface struct {
	*render.Canvas
	width, height int // Logical frame the session draws in
	screen        *core.Screen
	labels        []label
}

// NewTermSurface creates a surface showing a width x height logical frame
// on a cols x rows terminal.
func NewTermSurface(width, height, cols, rows int) (*TermSurface, error) {
	ts := &TermSurface{width: width, height: height, screen: core.NewScreen(1, 1)}
	if err := ts.Resize(cols, rows); err != nil {
		return nil, err
	}
	return ts, nil
}

// Resize adapts the raster to a new terminal size. The logical frame
// stays the same.
func (ts *TermSurface) Resize(cols, rows int) error {
	cols = core.Max(cols, 1)
	rows = core.Max(rows, 1)

	c, err := render.NewCanvas(ts.width, ts.height, cols, rows*2)
	if err != nil {
		return err
	}
	ts.Canvas = c
	ts.screen.Resize(cols, rows)
	return nil
}

// Clear starts a new frame.
func (ts *TermSurface) Clear(c core.Color) {
	ts.labels = ts.labels[:0]
	ts.Canvas.Clear(c)
}

// DrawText records text to be placed on the cell grid at Present.
func (ts *TermSurface) DrawText(text string, x, y, _ float64, anchor render.Anchor, c core.Color) {
	ts.labels = append(ts.labels, label{text: text, x: x, y: y, anchor: anchor, color: c})
}

// Present converts the raster to cells and overlays the text.
func (ts *TermSurface) Present() error {
	cols, rows := ts.screen.Width(), ts.screen.Height()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			ts.screen.SetCell(x, y, core.Cell{
				Rune: HalfBlock,
				FG:   ts.PixelAt(x, y*2),
				BG:   ts.PixelAt(x, y*2+1),
			})
		}
	}

	for _, l := range ts.labels {
		col, row := ts.cellOf(l.x, l.y)
		if l.anchor == render.AnchorCenter {
			col -= len([]rune(l.text)) / 2
		}
		ts.screen.DrawText(core.Max(col, 0), row, l.text, l.color)
	}

	return ts.Canvas.Present()
}

// cellOf maps a logical point to the cell containing it.
func (ts *TermSurface) cellOf(x, y float64) (int, int) {
	col := int(x * float64(ts.screen.Width()) / float64(ts.width))
	row := int(y * float64(ts.screen.Height()) / float64(ts.height))
	return col, core.Clamp(row, 0, ts.screen.Height()-1)
}

// Screen returns the cell grid of the last presented frame.
func (ts *TermSurface) Screen() *core.Screen {
	return ts.screen
}

var _ render.Surface = (*TermSurface)(nil)
