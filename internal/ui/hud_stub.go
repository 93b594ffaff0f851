//go:build !ebiten

package ui

// Status is the simulation summary shown by the HUD.
type Status struct {
	Paused     bool
	TPS        int
	Generation int
	Population int
	Boundary   string
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*Menu, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, Status) {}
