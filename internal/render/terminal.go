package render

import (
	"bufio"
	"io"

	"lifegrid/internal/core"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreen = "\x1b[H\x1b[2J"
)

// Terminal draws grids as text blocks.
type Terminal struct {
	w io.Writer
}

// NewTerminal returns a renderer writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Display writes one line per grid row.
func (r *Terminal) Display(g *core.Grid) error {
	bw := bufio.NewWriter(r.w)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Alive(x, y) {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Clear homes the cursor and clears the screen.
func (r *Terminal) Clear() error {
	_, err := io.WriteString(r.w, clearScreen)
	return err
}
