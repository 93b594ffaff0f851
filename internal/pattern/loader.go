package pattern

import (
	"errors"
	"fmt"

	"lifegrid/internal/core"
)

// ErrDeclined is returned by Load when an oversized pattern was not confirmed.
var ErrDeclined = errors.New("pattern: load declined")

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(message string) bool

// Load overlays p centered on g. A pattern larger than the grid in either
// dimension is only placed after confirm approves it; otherwise Load returns
// ErrDeclined and g is untouched.
func Load(p core.Pattern, g *core.Grid, confirm ConfirmFunc) error {
	if Oversized(p, g) {
		if confirm == nil || !confirm(OversizeMessage(p, g)) {
			return ErrDeclined
		}
	}
	Place(p, g)
	return nil
}

// Oversized reports whether p does not fit inside g.
func Oversized(p core.Pattern, g *core.Grid) bool {
	return p.W > g.W || p.H > g.H
}

// OversizeMessage describes the pattern and grid sizes for a confirmation prompt.
func OversizeMessage(p core.Pattern, g *core.Grid) string {
	return fmt.Sprintf("The selected pattern is larger than the current grid size.\n"+
		"Pattern size: %d x %d\n"+
		"Current grid size: %d x %d\n\n"+
		"Would you like to proceed anyway?", p.W, p.H, g.W, g.H)
}

// Offset returns where the pattern's top-left corner lands when centered.
func Offset(p core.Pattern, g *core.Grid) (int, int) {
	return floorDiv(g.W-p.W, 2), floorDiv(g.H-p.H, 2)
}

// Place sets every pattern cell alive at its centered position. Cells that land
// outside g are dropped and existing live cells are kept.
func Place(p core.Pattern, g *core.Grid) {
	ox, oy := Offset(p, g)
	for _, c := range p.Cells {
		g.Set(ox+c.X, oy+c.Y, true)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
