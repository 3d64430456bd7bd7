package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)
	want := Cell{Rune: '▀', FG: RGB(1, 2, 3), BG: RGB(4, 5, 6)}

	s.SetCell(5, 5, want)
	if got := s.GetCell(5, 5); got != want {
		t.Errorf("GetCell(5, 5) = %+v, expected %+v", got, want)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, want)
	s.SetCell(100, 0, want)
	s.SetCell(0, -1, want)
	s.SetCell(0, 100, want)

	if s.GetCell(-1, 0).Rune != ' ' || s.GetCell(100, 0).Rune != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextKeepsBackground(t *testing.T) {
	s := NewScreen(20, 3)
	bg := RGB(135, 206, 235)
	for x := 0; x < 20; x++ {
		s.SetCell(x, 1, Cell{Rune: '▀', FG: bg, BG: bg})
	}

	s.DrawText(2, 1, "Score: 3", White)

	for i, ch := range "Score: 3" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch {
			t.Errorf("expected %q at (%d, 1), got %q", ch, 2+i, c.Rune)
		}
		if c.FG != White || c.BG != bg {
			t.Errorf("cell colors = %+v, expected white on sky", c)
		}
	}

	// Clipped at the right boundary
	s.DrawText(18, 0, "Hello", White)
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", White)
	s.DrawText(0, 1, "BBBBB", White)
	s.DrawText(0, 2, "CCCCC", White)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", White)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if row := s.Row(0); row != strings.Repeat(" ", 8) {
		t.Errorf("resized screen should be blank, row 0 = %q", row)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", White)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if s.Row(-1) != "          " {
		t.Errorf("out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

func TestColorHexAndRGBA(t *testing.T) {
	c := RGB(135, 206, 235)
	if c.Hex() != "#87ceeb" {
		t.Errorf("Hex() = %q, expected #87ceeb", c.Hex())
	}
	r, g, b, a := c.RGBA()
	if r>>8 != 135 || g>>8 != 206 || b>>8 != 235 || a != 0xffff {
		t.Errorf("RGBA() = %d %d %d %d", r, g, b, a)
	}
}
