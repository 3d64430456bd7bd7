package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jumping-chick/internal/core"
	"github.com/vovakirdan/jumping-chick/internal/games/chick"
	"github.com/vovakirdan/jumping-chick/internal/loop"
)

// Options configures a terminal run.
type Options struct {
	Cols, Rows    int       // Initial terminal size; a resize message follows anyway
	ScreenshotDir string    // Defaults to ~/.chick/screenshots
	LogOutput     io.Writer // Receives buffered log lines after the alternate screen closes
}

// Model is the Bubble Tea model running one session.
type Model struct {
	loop          *loop.Loop
	clock         *loop.TickSchedule
	queue         *core.EventQueue
	surface       *TermSurface
	keys          *KeyMapper
	logger        *log.Logger
	tickRate      int
	screenshotDir string
	quitting      bool
	err           error
}

// NewModel creates a model for session. A nil logger discards output.
func NewModel(session *chick.Session, logger *log.Logger, opts Options) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Cols <= 0 || opts.Rows <= 0 {
		opts.Cols, opts.Rows = 80, 24
	}
	screen := session.Config().Screen
	surface, err := NewTermSurface(screen.Width, screen.Height, opts.Cols, opts.Rows)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot create surface: %w", err)
	}

	dir := opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".chick", "screenshots")
	}

	return Model{
		loop:          loop.New(session, logger),
		clock:         loop.NewTickSchedule(session.Config().Screen.TickRate),
		queue:         core.NewEventQueue(),
		surface:       surface,
		keys:          NewKeyMapper(),
		logger:        logger,
		tickRate:      session.Config().Screen.TickRate,
		screenshotDir: dir,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key for the next tick. Quit also goes through the
// queue so the session sees it at the start of a tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.Map(msg) == BindScreenshot {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if ev, ok := m.keys.Event(msg); ok {
		m.queue.Push(ev)
	}
	return m, nil
}

// handleResize refits the raster. The session keeps its logical frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if err := m.surface.Resize(msg.Width, msg.Height); err != nil {
		m.logger.Warn("resize failed", "width", msg.Width, "height", msg.Height, "error", err)
	}
	return m, nil
}

// handleTick runs one loop iteration.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	err := m.loop.Step(m.queue.Poll(), m.clock.Next(), m.surface)
	switch {
	case errors.Is(err, loop.ErrQuit):
		m.quitting = true
		return m, tea.Quit
	case err != nil:
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the last presented frame as text.
func (m *Model) saveScreenshot() (string, error) {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("chick_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.surface.Screen().String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the last presented frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.surface.Screen())
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program. Log lines are held back while the
// alternate screen is active and written to opts.LogOutput on exit.
func Run(ctx context.Context, session *chick.Session, opts Options) error {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{
		ReportTimestamp: true,
		Prefix:          "chick",
	})

	model, err := NewModel(session, logger, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil && Interrupted(err) {
		logger.Info("interrupted", "reason", err, "score", session.Score(), "state", session.State())
		err = nil
	}
	if opts.LogOutput != nil {
		//nolint:errcheck // Best-effort flush after the terminal is restored
		io.Copy(opts.LogOutput, &logs)
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

// Interrupted reports whether err only says the program was stopped from
// outside: a cancelled context, SIGINT or SIGTERM. A panic is not an
// interruption.
func Interrupted(err error) bool {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, tea.ErrInterrupted):
		return true
	case errors.Is(err, tea.ErrProgramKilled):
		return !errors.Is(err, tea.ErrProgramPanic)
	}
	return false
}
