package engine

import (
	"math"

	"github.com/vovakirdan/pursuit/internal/core"
	"github.com/vovakirdan/pursuit/internal/maze"
)

// spawnGhost adds a ghost when the population is below the cap. It returns
// false at the cap.
func (g *Game) spawnGhost() bool {
	if len(g.ghosts) >= g.cfg.Ghosts.MaxCount {
		return false
	}

	g.session.Spawned++
	spawn := g.session.Spawned
	base := g.difficulty.SpawnBaseSpeed(g.cfg.Ghosts.BaseSpeed, g.session.Score, spawn)

	kind := GhostRegular
	if every := g.cfg.Ghosts.SpecialEvery; every > 0 && spawn%every == 0 {
		kind = GhostSpecial
	}

	rect, sampled := g.spawnRect()
	gh := &Ghost{
		ID:        len(g.ghosts),
		Kind:      kind,
		Rect:      rect,
		BaseSpeed: base,
		Speed:     g.difficulty.Speed(base, g.session.Score),
	}
	g.ghosts = append(g.ghosts, gh)

	g.log.Info("ghost spawned", "id", gh.ID, "kind", kind, "x", rect.X, "y", rect.Y,
		"base_speed", base, "fallback", !sampled)
	return true
}

// spawnRect samples the layout's spawn regions, rejecting positions that hit
// a wall, another ghost or the player. After the attempt budget it tries the
// fixed fallback points in order and returns the first clear one with sampled
// false. When none is clear the layout's fallback position is used as is.
func (g *Game) spawnRect() (core.Rect, bool) {
	w, h := g.cfg.Ghosts.Width, g.cfg.Ghosts.Height
	regions := g.maze.SpawnRegions

	if len(regions) > 0 {
		for i, n := 0, g.cfg.Ghosts.SpawnAttempts; i < n; i++ {
			region := regions[g.rng.Intn(len(regions))]
			x := region.X + math.Floor(g.rng.Float64()*math.Max(0, region.W-w))
			y := region.Y + math.Floor(g.rng.Float64()*math.Max(0, region.H-h))
			r := core.NewRect(x, y, w, h)
			if g.spawnClear(r) {
				return r, true
			}
		}
	}

	for _, p := range g.spawnFallbacks() {
		if r := core.NewRect(p.X, p.Y, w, h); g.spawnClear(r) {
			return r, false
		}
	}
	fb := g.maze.SpawnFallback
	g.log.Warn("no clear spawn position", "x", fb.X, "y", fb.Y)
	return core.NewRect(fb.X, fb.Y, w, h), false
}

// spawnFallbacks lists the fixed spawn points: the layout's fallback, then
// the ghost starts, then the top-left corner of each spawn region.
func (g *Game) spawnFallbacks() []maze.Point {
	points := make([]maze.Point, 0, 1+len(g.maze.GhostStarts)+len(g.maze.SpawnRegions))
	points = append(points, g.maze.SpawnFallback)
	points = append(points, g.maze.GhostStarts...)
	for _, r := range g.maze.SpawnRegions {
		points = append(points, maze.Point{X: r.X, Y: r.Y})
	}
	return points
}

func (g *Game) spawnClear(r core.Rect) bool {
	if g.maze.Blocked(r) || r.Intersects(g.player.Rect) {
		return false
	}
	for _, other := range g.ghosts {
		if r.Intersects(other.Rect) {
			return false
		}
	}
	return true
}

// rescaleGhosts applies the current difficulty multiplier to every ghost.
func (g *Game) rescaleGhosts() {
	for _, gh := range g.ghosts {
		gh.Speed = g.difficulty.Speed(gh.BaseSpeed, g.session.Score)
	}
}
