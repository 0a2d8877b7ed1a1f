package engine

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/pursuit/internal/config"
	"github.com/vovakirdan/pursuit/internal/core"
	"github.com/vovakirdan/pursuit/internal/maze"
)

// Placer searches for pickup positions by rejection sampling over a
// quantized grid inside the maze bounds.
type Placer struct {
	maze *maze.Maze
	cfg  config.PickupConfig
	rng  *rand.Rand

	cols, rows int // Candidate grid size
}

// NewPlacer creates a placer for m.
func NewPlacer(m *maze.Maze, cfg config.PickupConfig, rng *rand.Rand) *Placer {
	p := &Placer{maze: m, cfg: cfg, rng: rng}
	p.cols = gridCount(m.Bounds.W, cfg.GridOffset, cfg.Width, cfg.GridStep)
	p.rows = gridCount(m.Bounds.H, cfg.GridOffset, cfg.Height, cfg.GridStep)
	return p
}

// gridCount returns how many quantized positions of size fit along one axis.
func gridCount(length, offset, size, step float64) int {
	n := int(math.Floor((length-offset-size)/step)) + 1
	if n < 1 {
		return 1
	}
	return n
}

// Place returns a pickup rectangle. ok is false when the attempt budget ran
// out and a preset position was used instead; presets are only checked for
// wall clearance.
func (p *Placer) Place(player core.Rect, ghosts []core.Rect) (r core.Rect, ok bool) {
	for i, n := 0, p.cfg.Attempts; i < n; i++ {
		x := p.maze.Bounds.X + p.cfg.GridOffset + float64(p.rng.Intn(p.cols))*p.cfg.GridStep
		y := p.maze.Bounds.Y + p.cfg.GridOffset + float64(p.rng.Intn(p.rows))*p.cfg.GridStep
		r = core.NewRect(x, y, p.cfg.Width, p.cfg.Height)
		if p.Valid(r, player, ghosts) {
			return r, true
		}
	}
	return p.fallback(), false
}

// Valid reports whether r is inside the bounds, clear of every wall by the
// padding, and far enough from the player and all ghosts.
func (p *Placer) Valid(r, player core.Rect, ghosts []core.Rect) bool {
	if !p.clearOfWalls(r) {
		return false
	}
	if core.Distance(r, player) < p.cfg.MinDistance {
		return false
	}
	for _, g := range ghosts {
		if core.Distance(r, g) < p.cfg.MinDistance {
			return false
		}
	}
	return true
}

func (p *Placer) clearOfWalls(r core.Rect) bool {
	if !p.maze.Bounds.ContainsRect(r) {
		return false
	}
	for _, w := range p.maze.Walls {
		if r.Intersects(w.Inflate(p.cfg.WallPadding)) {
			return false
		}
	}
	return true
}

// fallback returns the first preset that clears the walls, or the first
// preset when none does.
func (p *Placer) fallback() core.Rect {
	presets := p.maze.PickupPresets
	for _, pt := range presets {
		r := core.NewRect(pt.X, pt.Y, p.cfg.Width, p.cfg.Height)
		if p.clearOfWalls(r) {
			return r
		}
	}
	if len(presets) == 0 {
		x, y := p.maze.Bounds.Center()
		return core.NewRect(x, y, p.cfg.Width, p.cfg.Height)
	}
	return core.NewRect(presets[0].X, presets[0].Y, p.cfg.Width, p.cfg.Height)
}
