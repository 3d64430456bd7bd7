package window

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/jumping-chick/internal/core"
	"github.com/vovakirdan/jumping-chick/internal/render"
)

// ellipseSegments is the polygon resolution used for ellipses.
const ellipseSegments = 48

// Surface draws into an offscreen ebiten image at logical resolution.
type Surface struct {
	frame *ebiten.Image
	w, h  int
	src   *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
}

// NewSurface creates a w x h surface.
func NewSurface(w, h int) (*Surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}
	return &Surface{
		frame: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
		src:   src,
		faces: make(map[float64]*text.GoTextFace),
	}, nil
}

// Frame returns the image holding the last drawn frame.
func (s *Surface) Frame() *ebiten.Image {
	return s.frame
}

func (s *Surface) Size() (int, int) {
	return s.w, s.h
}

func (s *Surface) Clear(c core.Color) {
	s.frame.Fill(c)
}

func (s *Surface) FillRect(x, y, w, h float64, c core.Color) {
	vector.FillRect(s.frame, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) FillEllipse(x, y, w, h float64, c core.Color) {
	path := ellipsePath(x+w/2, y+h/2, w/2, h/2)
	vector.FillPath(s.frame, path, &vector.FillOptions{}, pathOptions(c))
}

// StrokeEllipse keeps the stroke inside the box, like the software canvas.
func (s *Surface) StrokeEllipse(x, y, w, h, width float64, c core.Color) {
	inset := width / 2
	path := ellipsePath(x+w/2, y+h/2, w/2-inset, h/2-inset)
	vector.StrokePath(s.frame, path, &vector.StrokeOptions{Width: float32(width)}, pathOptions(c))
}

func (s *Surface) FillPolygon(pts []core.Point, c core.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	vector.FillPath(s.frame, &path, &vector.FillOptions{}, pathOptions(c))
}

func (s *Surface) FillCircle(cx, cy, r float64, c core.Color) {
	vector.FillCircle(s.frame, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) DrawText(str string, x, y, size float64, anchor render.Anchor, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	if anchor == render.AnchorCenter {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(s.frame, str, s.face(size), op)
}

// Present is a no-op; ebiten shows the frame after Game.Draw.
func (s *Surface) Present() error {
	return nil
}

func (s *Surface) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.src, Size: size}
	s.faces[size] = f
	return f
}

func ellipsePath(cx, cy, rx, ry float64) *vector.Path {
	var path vector.Path
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		px := float32(cx + rx*math.Cos(a))
		py := float32(cy + ry*math.Sin(a))
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	return &path
}

func pathOptions(c core.Color) *vector.DrawPathOptions {
	opts := &vector.DrawPathOptions{AntiAlias: true}
	opts.ColorScale.ScaleWithColor(c)
	return opts
}

var _ render.Surface = (*Surface)(nil)
