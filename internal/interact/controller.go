// Package interact turns pointer gestures into grid edits: a press toggles the
// cell under the pointer and a drag paints every further cell with the value
// the first cell toggled to.
package interact

import "lifegrid/internal/core"

// DragState remembers the paint value of an in-progress drag.
type DragState struct {
	Active bool
	Target bool
}

// Controller applies press, move and release events to a grid.
type Controller struct {
	grid     *core.Grid
	cellSize int
	drag     DragState
}

// New returns a controller editing g, where each cell is cellSize pixels wide.
func New(g *core.Grid, cellSize int) *Controller {
	if cellSize < 1 {
		cellSize = 1
	}
	return &Controller{grid: g, cellSize: cellSize}
}

// SetGrid points the controller at a new generation. Any drag in progress
// continues on the new grid.
func (c *Controller) SetGrid(g *core.Grid) { c.grid = g }

// Drag reports the current drag state.
func (c *Controller) Drag() DragState { return c.drag }

// CellSize returns the pixel size of one cell.
func (c *Controller) CellSize() int { return c.cellSize }

// Press toggles (x, y) and starts a drag painting the cell's new state.
// Presses outside the grid are ignored.
func (c *Controller) Press(x, y int) bool {
	if !c.grid.InBounds(x, y) {
		return false
	}
	c.drag = DragState{Active: true, Target: c.grid.Toggle(x, y)}
	return true
}

// Move paints (x, y) with the drag target while a drag is active.
func (c *Controller) Move(x, y int) bool {
	if !c.drag.Active || !c.grid.InBounds(x, y) {
		return false
	}
	c.grid.Set(x, y, c.drag.Target)
	return true
}

// Release ends the drag.
func (c *Controller) Release() { c.drag.Active = false }

// PressAt is Press for pixel coordinates.
func (c *Controller) PressAt(px, py int) bool {
	x, y, ok := c.CellAt(px, py)
	if !ok {
		return false
	}
	return c.Press(x, y)
}

// MoveAt is Move for pixel coordinates.
func (c *Controller) MoveAt(px, py int) bool {
	x, y, ok := c.CellAt(px, py)
	if !ok {
		return false
	}
	return c.Move(x, y)
}

// CellAt maps a pixel to the cell under it.
func (c *Controller) CellAt(px, py int) (int, int, bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y := px/c.cellSize, py/c.cellSize
	return x, y, c.grid.InBounds(x, y)
}
