package engine

import (
	"github.com/vovakirdan/pursuit/internal/core"
	"github.com/vovakirdan/pursuit/internal/maze"
)

// moveRect applies one step of size step in dir. A move that would overlap a
// wall or leave the bounds is reverted in full, so r is returned unchanged
// with ok false. There is no per-axis sliding.
func moveRect(m *maze.Maze, r core.Rect, dir core.Direction, step float64) (core.Rect, bool) {
	dx, dy := dir.Delta()
	return moveBy(m, r, dx*step, dy*step)
}

// moveBy applies an arbitrary delta with the same full-revert rule.
func moveBy(m *maze.Maze, r core.Rect, dx, dy float64) (core.Rect, bool) {
	next := r.Translate(dx, dy)
	if m.Blocked(next) {
		return r, false
	}
	return next, true
}
