// Package render defines the drawing surface the game draws into and a
// software implementation of it backed by fogleman/gg.
//
// All coordinates are logical units (the game's fixed 800x600 frame);
// implementations map them onto whatever pixels or cells they own.
package render

import "github.com/vovakirdan/jumping-chick/internal/core"

// Anchor selects which point of a text's bounding box lands on (x, y).
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorCenter
)

// Surface is a frame buffer with the primitives the game needs.
// A frame is complete once Present returns.
type Surface interface {
	// Size returns the logical frame size.
	Size() (w, h int)

	// Clear fills the whole frame.
	Clear(c core.Color)

	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c core.Color)

	// FillEllipse fills the ellipse inscribed in the given box.
	FillEllipse(x, y, w, h float64, c core.Color)

	// StrokeEllipse outlines the ellipse inscribed in the given box. The
	// stroke stays inside the box.
	StrokeEllipse(x, y, w, h, width float64, c core.Color)

	// FillPolygon fills a closed polygon.
	FillPolygon(pts []core.Point, c core.Color)

	// FillCircle fills a circle.
	FillCircle(cx, cy, r float64, c core.Color)

	// DrawText renders a single line of text of the given height.
	DrawText(text string, x, y, size float64, anchor Anchor, c core.Color)

	// Present publishes the frame.
	Present() error
}

var _ Surface = (*Canvas)(nil)
