package app

import (
	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/pattern"
	"lifegrid/internal/session"
	"lifegrid/internal/ui"
)

// ScreenSize returns the window size for a grid drawn at scale pixels per
// cell, including the menu strip.
func ScreenSize(size core.Size, scale int) (int, int) {
	return size.W * scale, size.H*scale + ui.MenuHeight
}

// SessionOptions maps the command-line configuration onto session options.
// Dialog collaborators are left for the caller to fill in.
func SessionOptions(cfg *config.Config) session.Options {
	return session.Options{
		Width:    cfg.Width,
		Height:   cfg.Height,
		CellSize: cfg.Cell,
		TPS:      cfg.TPS,
		Seed:     cfg.Seed,
		Boundary: cfg.Boundary,
		Workers:  cfg.Workers,
	}
}

// LoadStartupPattern inserts the named preset, or loads name as an RLE file
// when no preset has that name. An empty name does nothing.
func LoadStartupPattern(sess *session.Session, name string) error {
	if name == "" {
		return nil
	}
	if _, ok := pattern.Preset(name); ok {
		return sess.InsertPreset(name)
	}
	return sess.OpenFile(name)
}
