package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces caches font faces of the bundled Go Regular typeface by size.
// Not safe for concurrent use; each Canvas owns one.
type Faces struct {
	font  *truetype.Font
	cache map[float64]font.Face
}

// NewFaces parses the bundled typeface.
func NewFaces() (*Faces, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: cannot parse bundled font: %w", err)
	}
	return &Faces{
		font:  f,
		cache: make(map[float64]font.Face),
	}, nil
}

// Face returns a face whose size is size logical units.
func (f *Faces) Face(size float64) font.Face {
	if face, ok := f.cache[size]; ok {
		return face
	}
	face := truetype.NewFace(f.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	f.cache[size] = face
	return face
}
