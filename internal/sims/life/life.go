package life

import (
	"golang.org/x/sync/errgroup"

	"lifegrid/internal/core"
)

// Engine computes Conway generations (B3/S23) under a fixed boundary mode.
type Engine struct {
	Boundary core.BoundaryMode
	// Workers splits rows across goroutines; values below two run serially.
	Workers int
}

// New returns an engine for the given boundary mode. Worker counts below one
// are raised to one.
func New(boundary core.BoundaryMode, workers int) *Engine {
	return &Engine{Boundary: boundary, Workers: max(workers, 1)}
}

// Step returns the next generation of g. g is not modified.
func (e *Engine) Step(g *core.Grid) *core.Grid {
	return StepWorkers(g, e.Boundary, e.Workers)
}

// Step returns the next generation of g under the given boundary mode.
func Step(g *core.Grid, boundary core.BoundaryMode) *core.Grid {
	return StepWorkers(g, boundary, 1)
}

// StepWorkers is Step with the rows partitioned across workers goroutines.
// It returns once every row has been computed.
func StepWorkers(g *core.Grid, boundary core.BoundaryMode, workers int) *core.Grid {
	next := core.NewGrid(g.W, g.H)
	if workers < 2 || g.H < 2 {
		stepRows(g, next, boundary, 0, g.H)
		return next
	}
	if workers > g.H {
		workers = g.H
	}

	var eg errgroup.Group
	rowsPerWorker := (g.H + workers - 1) / workers
	for start := 0; start < g.H; start += rowsPerWorker {
		start, end := start, min(start+rowsPerWorker, g.H)
		eg.Go(func() error {
			stepRows(g, next, boundary, start, end)
			return nil
		})
	}
	// Row workers never fail.
	_ = eg.Wait()
	return next
}

func stepRows(cur, next *core.Grid, boundary core.BoundaryMode, y0, y1 int) {
	src, dst := cur.Cells(), next.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < cur.W; x++ {
			idx := cur.Index(x, y)
			if Rule(src[idx] == 1, Neighbors(cur, x, y, boundary)) {
				dst[idx] = 1
			}
		}
	}
}

// Neighbors counts the live cells in the Moore neighborhood of (x, y).
func Neighbors(g *core.Grid, x, y int, boundary core.BoundaryMode) int {
	w, h := g.W, g.H
	cells := g.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if boundary == core.Wrapped {
				nx = (nx + w) % w
				ny = (ny + h) % h
			} else if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			n += int(cells[ny*w+nx])
		}
	}
	return n
}

// Rule applies B3/S23: a live cell survives with two or three neighbors and a
// dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
