package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jumping-chick/internal/config"
	"github.com/vovakirdan/jumping-chick/internal/core"
	"github.com/vovakirdan/jumping-chick/internal/games/chick"
	"github.com/vovakirdan/jumping-chick/internal/render"
)

func newTestModel(t *testing.T, cols, rows int) (Model, *chick.Session) {
	t.Helper()
	s, err := chick.New(config.DefaultChickConfig())
	if err != nil {
		t.Fatalf("chick.New() failed: %v", err)
	}
	m, err := NewModel(s, nil, Options{Cols: cols, Rows: rows, ScreenshotDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m, s
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg(time.Now()))
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Binding
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, BindJump},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, BindJump},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, BindJump},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, BindQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, BindQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, BindQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, BindScreenshot},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, BindNone},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, BindNone},
	}

	for _, tc := range tests {
		if got := km.Map(tc.msg); got != tc.want {
			t.Errorf("%s: Map() = %d, expected %d", tc.name, got, tc.want)
		}
	}
}

func TestKeyMapperEvents(t *testing.T) {
	km := NewKeyMapper()

	if ev, ok := km.Event(tea.KeyMsg{Type: tea.KeyUp}); !ok || ev != core.KeyDownEvent(core.KeyUp) {
		t.Errorf("up = %v, %v, expected key-down up", ev, ok)
	}
	if ev, ok := km.Event(tea.KeyMsg{Type: tea.KeyCtrlC}); !ok || ev.Kind != core.EventQuit {
		t.Errorf("ctrl+c = %v, %v, expected quit", ev, ok)
	}
	if ev, ok := km.Event(tea.KeyMsg{Type: tea.KeyDown}); !ok || ev.Key != core.KeyOther {
		t.Errorf("down = %v, %v, expected key-down other", ev, ok)
	}
	if _, ok := km.Event(tea.KeyMsg{Type: tea.KeyCtrlS}); ok {
		t.Error("screenshot key should not reach the session")
	}
}

func TestJumpAppliedOnTick(t *testing.T) {
	m, s := newTestModel(t, 80, 24)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if s.Player().Airborne {
		t.Fatal("key should be queued until the next tick")
	}

	m, cmd := tick(t, m)
	if !s.Player().Airborne {
		t.Error("jump should apply on the tick")
	}
	if cmd == nil || m.quitting {
		t.Error("running model should schedule the next tick")
	}
}

func TestQuitStopsProgram(t *testing.T) {
	m, s := newTestModel(t, 80, 24)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m, cmd := tick(t, m)

	if !s.QuitRequested() || !m.quitting {
		t.Fatal("quit key should end the session")
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestViewShowsScore(t *testing.T) {
	m, _ := newTestModel(t, 80, 24)
	m, _ = tick(t, m)

	lines := strings.Split(m.surface.Screen().String(), "\n")
	if len(lines) != 24 {
		t.Fatalf("rows = %d, expected 24", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Score: 0") {
		t.Errorf("first row = %q, expected the score", lines[0])
	}
	if !strings.ContainsRune(lines[5], HalfBlock) {
		t.Errorf("row 5 = %q, expected half blocks", lines[5])
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("View() should contain the score")
	}
}

func TestViewShowsGameOver(t *testing.T) {
	m, s := newTestModel(t, 80, 24)

	// Idle until the first egg reaches the chick.
	for i := 0; i < 300 && s.State() == chick.Running; i++ {
		m, _ = tick(t, m)
	}
	if s.State() != chick.GameOver {
		t.Fatal("expected game over")
	}

	screen := m.surface.Screen()
	if row := screen.Row(10); !strings.Contains(row, "GAME OVER") {
		t.Errorf("row 10 = %q, expected GAME OVER", row)
	}
	if row := screen.Row(12); !strings.Contains(row, "Final Score: 0") {
		t.Errorf("row 12 = %q, expected final score", row)
	}
}

func TestResize(t *testing.T) {
	m, _ := newTestModel(t, 80, 24)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	m, _ = tick(t, m)

	screen := m.surface.Screen()
	if screen.Width() != 40 || screen.Height() != 12 {
		t.Errorf("screen = %dx%d, expected 40x12", screen.Width(), screen.Height())
	}
	if w, h := m.surface.PixelSize(); w != 40 || h != 24 {
		t.Errorf("raster = %dx%d, expected 40x24", w, h)
	}
}

func TestInterrupted(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"context cancelled", fmt.Errorf("%w: %w", tea.ErrProgramKilled, context.Canceled), true},
		{"sigint", fmt.Errorf("%w: %w", tea.ErrProgramKilled, tea.ErrInterrupted), true},
		{"sigterm kill", tea.ErrProgramKilled, true},
		{"panic", fmt.Errorf("%w: %w", tea.ErrProgramKilled, tea.ErrProgramPanic), false},
		{"other", errors.New("tty lost"), false},
	}

	for _, tc := range tests {
		if got := Interrupted(tc.err); got != tc.want {
			t.Errorf("%s: Interrupted() = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestScreenshot(t *testing.T) {
	m, _ := newTestModel(t, 80, 24)
	m, _ = tick(t, m)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(m.screenshotDir, "chick_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v (%v), expected one file", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "Score: 0") {
		t.Errorf("screenshot starts with %q, expected the score", string(data[:20]))
	}
}

func TestTermSurfaceHalfBlocks(t *testing.T) {
	ts, err := NewTermSurface(800, 600, 80, 24)
	if err != nil {
		t.Fatalf("NewTermSurface() failed: %v", err)
	}

	sky := core.RGB(135, 206, 235)
	grass := core.RGB(50, 205, 50)
	ts.Clear(sky)
	ts.FillRect(0, 500, 800, 100, grass)
	if err := ts.Present(); err != nil {
		t.Fatalf("Present() failed: %v", err)
	}

	top := ts.Screen().GetCell(10, 0)
	if top.Rune != HalfBlock || top.FG != sky || top.BG != sky {
		t.Errorf("top cell = %+v, expected sky half block", top)
	}
	bottom := ts.Screen().GetCell(10, 23)
	if bottom.FG != grass || bottom.BG != grass {
		t.Errorf("bottom cell = %+v, expected grass", bottom)
	}
}

func TestTermSurfaceKeepsLogicalFrame(t *testing.T) {
	ts, err := NewTermSurface(400, 300, 40, 12)
	if err != nil {
		t.Fatalf("NewTermSurface() failed: %v", err)
	}
	if err := ts.Resize(80, 24); err != nil {
		t.Fatalf("Resize() failed: %v", err)
	}
	if w, h := ts.Size(); w != 400 || h != 300 {
		t.Fatalf("logical size = %dx%d, expected 400x300 after resize", w, h)
	}

	sky := core.RGB(135, 206, 235)
	grass := core.RGB(50, 205, 50)
	ts.Clear(sky)
	ts.FillRect(0, 250, 400, 50, grass)
	ts.DrawText("Hi", 200, 150, 50, render.AnchorTopLeft, core.White)
	if err := ts.Present(); err != nil {
		t.Fatalf("Present() failed: %v", err)
	}

	if c := ts.Screen().GetCell(40, 23); c.FG != grass || c.BG != grass {
		t.Errorf("bottom cell = %+v, expected grass", c)
	}
	if c := ts.Screen().GetCell(40, 0); c.FG != sky {
		t.Errorf("top cell = %+v, expected sky", c)
	}
	// The middle of a 400x300 frame is the middle of the terminal.
	if c := ts.Screen().GetCell(40, 12); c.Rune != 'H' {
		t.Errorf("cell (40, 12) = %q, expected the label", c.Rune)
	}
}
