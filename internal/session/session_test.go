package session

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"lifegrid/internal/core"
	"lifegrid/internal/pattern"
	"lifegrid/internal/rle"
	"lifegrid/internal/ui"
)

type fakeDialogs struct {
	answer   bool
	asked    []string
	path     string
	selectOK bool
	notes    []string
}

func (f *fakeDialogs) Confirm(message string) bool {
	f.asked = append(f.asked, message)
	return f.answer
}

func (f *fakeDialogs) SelectFile() (string, bool) { return f.path, f.selectOK }

func (f *fakeDialogs) Notify(title, message string) {
	f.notes = append(f.notes, title+": "+message)
}

func newSession(t *testing.T, w, h int, d *fakeDialogs) *Session {
	t.Helper()
	return New(Options{
		Width: w, Height: h, CellSize: 10, TPS: core.DefaultTPS, Seed: 1,
		Boundary: core.Clamped,
		Confirm:  d, Files: d, Notifier: d,
	})
}

func writePattern(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "p.rle")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFrameRespectsClock(t *testing.T) {
	s := newSession(t, 10, 10, &fakeDialogs{})
	if err := s.InsertPreset("blinker"); err != nil {
		t.Fatal(err)
	}
	before := s.Grid().LiveCells()

	if s.Frame() || s.Generation() != 0 {
		t.Fatal("paused session must not advance")
	}
	s.Dispatch(ui.ActionStart)
	if !s.Frame() || s.Generation() != 1 {
		t.Fatal("running session should advance once per frame")
	}
	if slices.Equal(before, s.Grid().LiveCells()) {
		t.Fatal("blinker did not change phase")
	}
	s.Dispatch(ui.ActionTogglePause)
	s.Frame()
	if s.Generation() != 1 {
		t.Fatal("toggle should pause the session")
	}
}

func TestSpeedActions(t *testing.T) {
	s := newSession(t, 5, 5, &fakeDialogs{})
	s.Dispatch(ui.ActionSpeedUp)
	if s.Clock().TPS() != core.DefaultTPS+1 {
		t.Fatalf("tps = %d", s.Clock().TPS())
	}
	for i := 0; i < 50; i++ {
		s.Dispatch(ui.ActionSpeedDown)
	}
	if s.Clock().TPS() != 1 {
		t.Fatalf("tps = %d, want floor 1", s.Clock().TPS())
	}
}

func TestClearAndRandomize(t *testing.T) {
	s := newSession(t, 32, 32, &fakeDialogs{})
	s.Dispatch(ui.ActionRandomize)
	if p := s.Grid().Population(); p == 0 || p == 32*32 {
		t.Fatalf("randomized population %d looks degenerate", p)
	}
	s.Dispatch(ui.ActionClear)
	if s.Grid().Population() != 0 {
		t.Fatal("clear left live cells")
	}
}

func TestPresetActions(t *testing.T) {
	for _, a := range []ui.Action{ui.ActionGlider, ui.ActionLWSS, ui.ActionBlinker, ui.ActionMWSS} {
		s := newSession(t, 20, 20, &fakeDialogs{})
		if err := s.Dispatch(a); err != nil {
			t.Fatalf("%v: %v", a, err)
		}
		name, _ := a.Preset()
		p, _ := pattern.Preset(name)
		if s.Grid().Population() != len(p.Cells) {
			t.Fatalf("%v: population %d, want %d", a, s.Grid().Population(), len(p.Cells))
		}
	}
	s := newSession(t, 5, 5, &fakeDialogs{})
	if err := s.InsertPreset("gosper"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestHotkeysAndQuit(t *testing.T) {
	d := &fakeDialogs{}
	s := newSession(t, 5, 5, d)
	s.Dispatch(ui.ActionHotkeys)
	if len(d.notes) != 1 || !strings.HasPrefix(d.notes[0], "Hotkeys: Space:") {
		t.Fatalf("notes = %v", d.notes)
	}
	if s.Quit() {
		t.Fatal("quit set too early")
	}
	s.Dispatch(ui.ActionQuit)
	if !s.Quit() {
		t.Fatal("quit action should be recorded")
	}
}

func TestOpenLoadsSelectedFile(t *testing.T) {
	d := &fakeDialogs{selectOK: true}
	d.path = writePattern(t, "#N plus\nx = 3, y = 3\nbob$obo$bob!\n")
	s := newSession(t, 9, 9, d)

	if err := s.Dispatch(ui.ActionOpen); err != nil {
		t.Fatalf("open: %v", err)
	}
	want := []core.Point{{X: 4, Y: 3}, {X: 3, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 5}}
	if got := s.Grid().LiveCells(); !slices.Equal(got, want) {
		t.Fatalf("live = %v, want %v", got, want)
	}
	if len(d.asked) != 0 {
		t.Fatal("fitting pattern should not ask for confirmation")
	}
}

func TestOpenCancelled(t *testing.T) {
	d := &fakeDialogs{selectOK: false}
	s := newSession(t, 5, 5, d)
	if err := s.Dispatch(ui.ActionOpen); err != nil {
		t.Fatalf("cancel should not fail: %v", err)
	}
}

func TestOpenErrorsLeaveGridUnchanged(t *testing.T) {
	d := &fakeDialogs{}
	s := newSession(t, 4, 4, d)
	s.Grid().Set(1, 1, true)
	before := append([]uint8(nil), s.Grid().Cells()...)

	err := s.OpenFile(filepath.Join(t.TempDir(), "nope.rle"))
	var re *rle.FileReadError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want *rle.FileReadError", err)
	}

	err = s.OpenFile(writePattern(t, "3o!"))
	var fe *rle.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *rle.FormatError", err)
	}
	if len(d.notes) != 2 {
		t.Fatalf("expected two failure notifications, got %v", d.notes)
	}

	d.answer = false
	err = s.OpenFile(writePattern(t, "x = 6, y = 1\n6o!"))
	if !errors.Is(err, pattern.ErrDeclined) {
		t.Fatalf("err = %v, want ErrDeclined", err)
	}
	if len(d.asked) != 1 {
		t.Fatalf("confirm asked %d times, want 1", len(d.asked))
	}
	if !slices.Equal(before, s.Grid().Cells()) {
		t.Fatal("failed opens mutated the grid")
	}

	d.answer = true
	if err := s.OpenFile(writePattern(t, "x = 6, y = 1\n6o!")); err != nil {
		t.Fatalf("confirmed open: %v", err)
	}
	// offset floor((4-6)/2) = -1, so pattern columns 1..4 land on 0..3.
	for x := 0; x < 4; x++ {
		if !s.Grid().Alive(x, 1) {
			t.Fatalf("expected (%d,1) alive after confirmed oversize load", x)
		}
	}
}

func TestPointerRouting(t *testing.T) {
	d := &fakeDialogs{}
	s := newSession(t, 10, 8, d)

	s.PointerDown(55, 25)
	if !s.Grid().Alive(5, 2) {
		t.Fatal("press in grid should toggle the cell")
	}
	s.PointerMove(55, 35)
	if !s.Grid().Alive(5, 3) {
		t.Fatal("drag should paint")
	}
	// Dragging into the menu strip must not touch the grid or the menu.
	s.PointerMove(55, 85)
	s.PointerUp()
	s.PointerMove(55, 45)
	if s.Grid().Alive(5, 4) {
		t.Fatal("move after release should not paint")
	}

	start := s.Menu().Buttons[0].Rect
	if err := s.PointerDown(start.Min.X+1, start.Min.Y+1); err != nil {
		t.Fatal(err)
	}
	if s.Clock().Paused() {
		t.Fatal("Start button should resume the clock")
	}
	if s.Controller().Drag().Active {
		t.Fatal("menu press must not start a drag")
	}
	pop := s.Grid().Population()
	s.PointerDown(1, 8*10+1)
	if s.Grid().Population() != pop {
		t.Fatal("press on empty menu space changed the grid")
	}
}

func TestDragSurvivesGeneration(t *testing.T) {
	s := newSession(t, 10, 10, &fakeDialogs{})
	s.Dispatch(ui.ActionStart)
	s.PointerDown(5, 5)
	s.Frame()
	s.PointerMove(95, 95)
	if !s.Grid().Alive(9, 9) {
		t.Fatal("drag should keep painting the new generation")
	}
}

func TestWrappedBoundaryOption(t *testing.T) {
	s := New(Options{Width: 6, Height: 5, CellSize: 1, Boundary: core.Wrapped})
	if s.Boundary() != core.Wrapped {
		t.Fatal("boundary option ignored")
	}
	s.Grid().Set(0, 1, true)
	s.Grid().Set(0, 2, true)
	s.Grid().Set(0, 3, true)
	s.Dispatch(ui.ActionStart)
	s.Frame()
	if !s.Grid().Alive(5, 2) {
		t.Fatal("wrapped session should birth a cell across the edge")
	}
}

func TestEngineOptions(t *testing.T) {
	s := New(Options{Width: 4, Height: 4, CellSize: 1})
	if s.engine.Workers != 1 || s.engine.Boundary != core.Clamped {
		t.Fatalf("default engine = %+v", *s.engine)
	}
	s = New(Options{Width: 4, Height: 4, CellSize: 1, Boundary: core.Wrapped, Workers: 3})
	if s.engine.Workers != 3 || s.engine.Boundary != core.Wrapped {
		t.Fatalf("engine = %+v", *s.engine)
	}
}
