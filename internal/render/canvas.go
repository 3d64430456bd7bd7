package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/jumping-chick/internal/core"
)

// PresentFunc receives every finished frame.
type PresentFunc func(frame *image.RGBA) error

// Canvas is a software Surface. It rasterizes at pixelW x pixelH and scales
// the logical frame to fit, so the same drawing code serves an 800x600 PNG
// and a tiny terminal-sized raster.
type Canvas struct {
	dc       *gg.Context
	logicalW int
	logicalH int
	scale    float64 // Smaller of the two axis scales, for stroke widths
	faces    *Faces
	frames   int
	onFrame  PresentFunc
}

// NewCanvas creates a canvas for a logicalW x logicalH frame rendered into
// pixelW x pixelH pixels.
func NewCanvas(logicalW, logicalH, pixelW, pixelH int) (*Canvas, error) {
	if logicalW <= 0 || logicalH <= 0 || pixelW <= 0 || pixelH <= 0 {
		return nil, fmt.Errorf("render: invalid canvas size %dx%d -> %dx%d", logicalW, logicalH, pixelW, pixelH)
	}

	faces, err := NewFaces()
	if err != nil {
		return nil, err
	}

	sx := float64(pixelW) / float64(logicalW)
	sy := float64(pixelH) / float64(logicalH)

	dc := gg.NewContext(pixelW, pixelH)
	dc.Scale(sx, sy)

	return &Canvas{
		dc:       dc,
		logicalW: logicalW,
		logicalH: logicalH,
		scale:    math.Min(sx, sy),
		faces:    faces,
	}, nil
}

// OnPresent registers a callback run by Present with the finished frame.
func (c *Canvas) OnPresent(fn PresentFunc) {
	c.onFrame = fn
}

// Size returns the logical frame size.
func (c *Canvas) Size() (int, int) {
	return c.logicalW, c.logicalH
}

// PixelSize returns the raster size.
func (c *Canvas) PixelSize() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// Clear fills the whole raster.
func (c *Canvas) Clear(col core.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col core.Color) {
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.SetColor(col)
	c.dc.Fill()
}

// FillEllipse fills the ellipse inscribed in the box.
func (c *Canvas) FillEllipse(x, y, w, h float64, col core.Color) {
	c.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	c.dc.SetColor(col)
	c.dc.Fill()
}

// StrokeEllipse outlines the ellipse inscribed in the box.
// The path is inset by half the width so the stroke stays inside the box.
func (c *Canvas) StrokeEllipse(x, y, w, h, width float64, col core.Color) {
	inset := width / 2
	c.dc.DrawEllipse(x+w/2, y+h/2, w/2-inset, h/2-inset)
	c.dc.SetLineWidth(width * c.scale)
	c.dc.SetColor(col)
	c.dc.Stroke()
}

// FillPolygon fills a closed polygon. Fewer than three points draw nothing.
func (c *Canvas) FillPolygon(pts []core.Point, col core.Color) {
	if len(pts) < 3 {
		return
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.dc.SetColor(col)
	c.dc.Fill()
}

// FillCircle fills a circle.
func (c *Canvas) FillCircle(cx, cy, r float64, col core.Color) {
	c.dc.DrawCircle(cx, cy, r)
	c.dc.SetColor(col)
	c.dc.Fill()
}

// DrawText renders text with the bundled typeface.
func (c *Canvas) DrawText(text string, x, y, size float64, anchor Anchor, col core.Color) {
	c.dc.SetFontFace(c.faces.Face(size))
	c.dc.SetColor(col)
	switch anchor {
	case AnchorCenter:
		c.dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
	default:
		c.dc.DrawStringAnchored(text, x, y, 0, 1)
	}
}

// Present counts the frame and hands it to the OnPresent callback.
func (c *Canvas) Present() error {
	c.frames++
	if c.onFrame == nil {
		return nil
	}
	return c.onFrame(c.RGBA())
}

// Frames returns how many frames have been presented.
func (c *Canvas) Frames() int {
	return c.frames
}

// RGBA returns the raster. It is reused by the next frame.
func (c *Canvas) RGBA() *image.RGBA {
	if img, ok := c.dc.Image().(*image.RGBA); ok {
		return img
	}
	b := c.dc.Image().Bounds()
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, c.dc.Image().At(x, y))
		}
	}
	return img
}

// PixelAt returns the raster color at pixel (px, py).
func (c *Canvas) PixelAt(px, py int) core.Color {
	rgba := color.RGBAModel.Convert(c.dc.Image().At(px, py)).(color.RGBA)
	return core.RGB(rgba.R, rgba.G, rgba.B)
}

// EncodePNG writes the current raster as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: cannot encode frame: %w", err)
	}
	return nil
}

// SavePNG writes the current raster to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: cannot save frame to %s: %w", path, err)
	}
	return nil
}
