// Package session owns the state of one editor window: the grid, the
// transition engine, the simulation clock, the pointer controller and the menu.
// The frame-loop shell feeds it input and asks it to advance once per frame.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"

	"lifegrid/internal/core"
	"lifegrid/internal/interact"
	"lifegrid/internal/pattern"
	"lifegrid/internal/rle"
	"lifegrid/internal/sims/life"
	"lifegrid/internal/ui"
)

// ErrUnknownPreset is returned when a preset name is not registered.
var ErrUnknownPreset = errors.New("session: unknown preset")

// Confirmer asks a blocking yes/no question.
type Confirmer interface {
	Confirm(message string) bool
}

// FileSelector asks the user for a pattern file.
type FileSelector interface {
	SelectFile() (path string, ok bool)
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(title, message string)
}

// Options configures a Session.
type Options struct {
	Width, Height int
	CellSize      int
	TPS           int
	Seed          int64
	Boundary      core.BoundaryMode
	Workers       int

	Confirm  Confirmer
	Files    FileSelector
	Notifier Notifier
	Logger   *log.Logger
}

// Session dispatches user actions and pointer events against its grid.
type Session struct {
	grid   *core.Grid
	engine *life.Engine
	clock  *core.Clock
	ctrl   *interact.Controller
	menu   *ui.Menu
	rng    *core.RNG

	confirm  Confirmer
	files    FileSelector
	notifier Notifier
	logger   *log.Logger

	generation int
	quit       bool
}

// New builds a session with an all-dead grid and a paused clock.
func New(opts Options) *Session {
	grid := core.NewGrid(opts.Width, opts.Height)
	ctrl := interact.New(grid, opts.CellSize)
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		grid:     grid,
		engine:   life.New(opts.Boundary, opts.Workers),
		clock:    core.NewClock(opts.TPS),
		ctrl:     ctrl,
		menu:     ui.NewMenu(grid.H*ctrl.CellSize(), ui.DefaultEntries),
		rng:      core.NewRNG(opts.Seed),
		confirm:  opts.Confirm,
		files:    opts.Files,
		notifier: opts.Notifier,
		logger:   logger,
	}
}

// Grid returns the current generation.
func (s *Session) Grid() *core.Grid { return s.grid }

// Clock exposes the pause and speed state.
func (s *Session) Clock() *core.Clock { return s.clock }

// Controller exposes the pointer controller.
func (s *Session) Controller() *interact.Controller { return s.ctrl }

// Menu exposes the button layout.
func (s *Session) Menu() *ui.Menu { return s.menu }

// Generation counts the generations computed since the session started.
func (s *Session) Generation() int { return s.generation }

// Boundary reports the engine's boundary mode.
func (s *Session) Boundary() core.BoundaryMode { return s.engine.Boundary }

// Quit reports whether a quit action was dispatched.
func (s *Session) Quit() bool { return s.quit }

// Frame advances one generation when the clock is running.
func (s *Session) Frame() bool {
	return s.clock.Frame(s.step)
}

func (s *Session) step() {
	s.grid = s.engine.Step(s.grid)
	s.ctrl.SetGrid(s.grid)
	s.generation++
}

// Dispatch performs a user action. Failures have already been reported to the
// notifier; the returned error is for callers that want to inspect it.
func (s *Session) Dispatch(a ui.Action) error {
	switch a {
	case ui.ActionNone:
	case ui.ActionStart:
		s.clock.Start()
	case ui.ActionTogglePause:
		s.clock.TogglePause()
	case ui.ActionSpeedUp:
		s.clock.SpeedUp()
	case ui.ActionSpeedDown:
		s.clock.SlowDown()
	case ui.ActionOpen:
		return s.Open()
	case ui.ActionClear:
		s.grid.Clear()
	case ui.ActionRandomize:
		s.rng.Randomize(s.grid)
	case ui.ActionHotkeys:
		s.notify("Hotkeys", ui.HotkeyText())
	case ui.ActionQuit:
		s.quit = true
	default:
		name, ok := a.Preset()
		if !ok {
			s.logger.Printf("ignoring unknown action %v", a)
			return nil
		}
		return s.InsertPreset(name)
	}
	s.logger.Printf("action %v", a)
	return nil
}

// InsertPreset centers a built-in pattern on the grid without confirmation.
func (s *Session) InsertPreset(name string) error {
	p, ok := pattern.Preset(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	pattern.Place(p, s.grid)
	s.logger.Printf("inserted preset %s", name)
	return nil
}

// Open asks for a file and loads it. Cancelling the file selection is not an
// error.
func (s *Session) Open() error {
	if s.files == nil {
		return nil
	}
	path, ok := s.files.SelectFile()
	if !ok {
		return nil
	}
	return s.OpenFile(path)
}

// OpenFile decodes the pattern at path and loads it centered on the grid.
func (s *Session) OpenFile(path string) error {
	p, err := rle.ReadFile(path)
	if err != nil {
		s.logger.Printf("open %s: %v", path, err)
		s.notify("Open RLE", err.Error())
		return err
	}
	var confirm pattern.ConfirmFunc
	if s.confirm != nil {
		confirm = s.confirm.Confirm
	}
	if err := pattern.Load(p, s.grid, confirm); err != nil {
		if errors.Is(err, pattern.ErrDeclined) {
			s.logger.Printf("open %s: %dx%d pattern declined for %dx%d grid", path, p.W, p.H, s.grid.W, s.grid.H)
		}
		return err
	}
	s.logger.Printf("loaded %s (%dx%d, %d cells)", path, p.W, p.H, len(p.Cells))
	return nil
}

// PointerDown routes a press to the menu or the grid.
func (s *Session) PointerDown(px, py int) error {
	if s.menu.Contains(px, py) {
		if a, ok := s.menu.Hit(px, py); ok {
			return s.Dispatch(a)
		}
		return nil
	}
	s.ctrl.PressAt(px, py)
	return nil
}

// PointerMove paints while dragging over the grid.
func (s *Session) PointerMove(px, py int) {
	if s.menu.Contains(px, py) {
		return
	}
	s.ctrl.MoveAt(px, py)
}

// PointerUp ends a drag.
func (s *Session) PointerUp() { s.ctrl.Release() }

func (s *Session) notify(title, message string) {
	if s.notifier != nil {
		s.notifier.Notify(title, message)
	}
}
