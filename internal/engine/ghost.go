package engine

import (
	"time"

	"github.com/vovakirdan/pursuit/internal/core"
	"github.com/vovakirdan/pursuit/internal/nav"
)

// pursuit is the per-tick navigation input shared by every ghost.
type pursuit struct {
	graph *nav.Graph
	goal  nav.Node
	field *nav.DistanceField // Nil when the player maps to no node
}

// decision is a ghost's choice before hysteresis.
type decision struct {
	best    core.Direction
	hold    bool     // Hysteresis may keep the previous direction
	node    nav.Node // Valid when resting
	resting bool     // The ghost sits exactly on node and follows a path from it
}

// waypoint is the anchor a ghost is heading for. Steps are clamped so the
// ghost lands on it exactly instead of overshooting.
type waypoint struct {
	x, y float64
	ok   bool
}

// newPursuit fetches the cached graph and maps the player onto it.
func (g *Game) newPursuit(now time.Time) pursuit {
	graph, rebuilt := g.graphs.GetOrRebuild(now)
	if rebuilt {
		g.log.Debug("grid graph rebuilt", "nodes", graph.FreeCount())
	}

	p := pursuit{graph: graph}
	if goal, ok := graph.NodeOf(g.player.Rect); ok {
		p.goal = goal
		p.field = nav.Distances(graph, goal)
	}
	return p
}

// updateGhosts runs one behavior step for every ghost.
func (g *Game) updateGhosts(now time.Time) {
	p := g.newPursuit(now)
	for _, gh := range g.ghosts {
		d := g.bestDirection(p, gh)
		dir := g.commitDirection(gh, d.best, now, d.hold)
		if d.resting {
			gh.Target, gh.Targeting = d.node.Step(dir), dir != core.DirNone
		}
		g.stepGhost(gh, dir, targetWaypoint(p.graph, gh))
		if gh.Stuck >= g.cfg.Ghosts.StuckEscapeTicks {
			g.escape(gh, now)
		}
		g.maybeFire(gh, now)
	}
}

// bestDirection decides where the ghost goes this tick. Ghosts only replan
// while resting on a node: they take the first hop of the shortest path to
// the player. Between nodes they keep heading for their target node, and a
// ghost off the grid slides onto its nearest node first. Without a usable
// path the ghost falls back to wall-following.
func (g *Game) bestDirection(p pursuit, gh *Ghost) decision {
	if p.field == nil {
		return g.wander(gh)
	}

	if gh.Targeting && p.graph.Free(gh.Target) && !atAnchor(p.graph, gh.Target, gh.Rect) {
		if dir, ok := g.headFor(p.graph, gh, gh.Target); ok {
			return decision{best: dir}
		}
	}
	gh.Targeting = false

	from, ok := p.graph.NodeOf(gh.Rect)
	if !ok {
		return g.wander(gh)
	}
	if !atAnchor(p.graph, from, gh.Rect) {
		dir, ok := g.headFor(p.graph, gh, from)
		if !ok {
			return g.wander(gh)
		}
		gh.Target, gh.Targeting = from, true
		gh.Following = false
		gh.Orientation = 0
		return decision{best: dir}
	}

	path := nav.ShortestPath(p.graph, from, p.goal)
	dir, ok := nav.DirectionFromPath(path)
	if !ok {
		return g.wander(gh)
	}
	gh.Following = false
	gh.Orientation = 0
	return decision{
		best:    dir,
		hold:    p.field.Descends(from, gh.Dir),
		node:    from,
		resting: true,
	}
}

// wander switches the ghost to wall-following.
func (g *Game) wander(gh *Ghost) decision {
	gh.Targeting = false
	return decision{best: g.followWall(gh), hold: true}
}

// headFor points the ghost at the anchor of n, trying the axis with the
// larger offset first. ok is false when the ghost already sits on it.
func (g *Game) headFor(graph *nav.Graph, gh *Ghost, n nav.Node) (core.Direction, bool) {
	ax, ay := graph.Anchor(n)
	dx, dy := ax-gh.Rect.X, ay-gh.Rect.Y

	candidates := [2]core.Direction{axisDirection(dx, 0), axisDirection(0, dy)}
	if abs(dy) > abs(dx) {
		candidates[0], candidates[1] = candidates[1], candidates[0]
	}
	if candidates[0] == core.DirNone {
		candidates[0], candidates[1] = candidates[1], candidates[0]
	}
	if candidates[0] == core.DirNone {
		return core.DirNone, false
	}

	wp := waypoint{x: ax, y: ay, ok: true}
	for _, d := range candidates {
		if d == core.DirNone {
			continue
		}
		if _, ok := g.tryStep(gh, d, wp); ok {
			return d, true
		}
	}
	return candidates[0], true
}

// targetWaypoint returns the anchor of the ghost's target node, if any.
func targetWaypoint(graph *nav.Graph, gh *Ghost) waypoint {
	if !gh.Targeting {
		return waypoint{}
	}
	x, y := graph.Anchor(gh.Target)
	return waypoint{x: x, y: y, ok: true}
}

func atAnchor(graph *nav.Graph, n nav.Node, r core.Rect) bool {
	const eps = 1e-6
	x, y := graph.Anchor(n)
	return abs(r.X-x) < eps && abs(r.Y-y) < eps
}

// axisDirection maps a single-axis offset to a direction.
func axisDirection(dx, dy float64) core.Direction {
	switch {
	case dx > 0:
		return core.DirRight
	case dx < 0:
		return core.DirLeft
	case dy > 0:
		return core.DirDown
	case dy < 0:
		return core.DirUp
	}
	return core.DirNone
}

// followWall picks a direction by rotating around the last committed one.
// The orientation is chosen once and kept until a real path shows up.
func (g *Game) followWall(gh *Ghost) core.Direction {
	if gh.Orientation == 0 {
		gh.Orientation = 1
		if g.rng.Intn(2) == 0 {
			gh.Orientation = -1
		}
	}
	gh.Following = true

	last := gh.Dir
	if last == core.DirNone {
		last = core.DirUp
	}
	candidates := [4]core.Direction{
		last.Rotate(gh.Orientation),
		last,
		last.Rotate(-gh.Orientation),
		last.Opposite(),
	}
	for _, d := range candidates {
		if _, ok := moveRect(g.maze, gh.Rect, d, gh.Speed); ok {
			return d
		}
	}
	return last
}

// commitDirection applies hysteresis: a fresh direction change is held back
// until the dwell window has passed, unless the ghost has been stuck or the
// previous direction may not be held.
func (g *Game) commitDirection(gh *Ghost, best core.Direction, now time.Time, canHold bool) core.Direction {
	if best == gh.Dir {
		return gh.Dir
	}
	if canHold && gh.Dir != core.DirNone &&
		now.Sub(gh.DirChangedAt) < g.cfg.Ghosts.Hysteresis() &&
		gh.Stuck < g.cfg.Ghosts.HysteresisStuckTicks {
		return gh.Dir
	}
	gh.Dir = best
	gh.DirChangedAt = now
	gh.Stuck = 0
	return best
}

func (g *Game) stepGhost(gh *Ghost, dir core.Direction, wp waypoint) {
	next, ok := g.tryStep(gh, dir, wp)
	if !ok {
		gh.Stuck++
		return
	}
	gh.Rect = next
	gh.Stuck = 0
}

// tryStep moves one speed step in dir. When the waypoint lies ahead on that
// axis within one step, the ghost lands on it exactly.
func (g *Game) tryStep(gh *Ghost, dir core.Direction, wp waypoint) (core.Rect, bool) {
	if wp.ok {
		next := gh.Rect
		var remaining float64
		switch dir {
		case core.DirRight:
			remaining, next.X = wp.x-gh.Rect.X, wp.x
		case core.DirLeft:
			remaining, next.X = gh.Rect.X-wp.x, wp.x
		case core.DirDown:
			remaining, next.Y = wp.y-gh.Rect.Y, wp.y
		case core.DirUp:
			remaining, next.Y = gh.Rect.Y-wp.y, wp.y
		}
		if remaining > 0 && remaining <= gh.Speed {
			if g.maze.Blocked(next) {
				return gh.Rect, false
			}
			return next, true
		}
	}
	return moveRect(g.maze, gh.Rect, dir, gh.Speed)
}

// escape tries a single random step away from the last direction.
func (g *Game) escape(gh *Ghost, now time.Time) {
	options := make([]core.Direction, 0, 4)
	for _, d := range core.Directions {
		if d != gh.Dir {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		options = core.Directions[:]
	}

	d := options[g.rng.Intn(len(options))]
	next, ok := moveRect(g.maze, gh.Rect, d, gh.Speed)
	if !ok {
		return
	}
	gh.Rect = next
	gh.Dir = d
	gh.DirChangedAt = now
	gh.Stuck = 0
	gh.Targeting = false
}

// maybeFire launches a projectile toward the player along the axis with the
// larger distance, subject to the unlock, chance and cooldown.
func (g *Game) maybeFire(gh *Ghost, now time.Time) {
	if !g.session.FiringUnlocked {
		return
	}
	if !gh.LastShotAt.IsZero() && now.Sub(gh.LastShotAt) < g.cfg.Projectiles.Cooldown() {
		return
	}

	chance := g.cfg.Projectiles.FireChance
	if gh.Special() {
		chance *= g.cfg.Projectiles.SpecialFireFactor
	}
	if g.rng.Float64() >= chance {
		return
	}

	gx, gy := gh.Rect.Center()
	px, py := g.player.Rect.Center()
	dir := fireDirection(px-gx, py-gy)

	w, h := g.cfg.Projectiles.Width, g.cfg.Projectiles.Height
	g.projectiles = append(g.projectiles, &Projectile{
		Rect:  core.NewRect(gx-w/2, gy-h/2, w, h),
		Dir:   dir,
		Speed: g.cfg.Projectiles.Speed,
		Owner: gh.ID,
	})
	gh.LastShotAt = now
	g.log.Debug("ghost fired", "id", gh.ID, "dir", dir)
}

// fireDirection picks the axis with the larger absolute distance, pointing
// toward the target. Ties go to the x axis.
func fireDirection(dx, dy float64) core.Direction {
	if abs(dx) >= abs(dy) {
		if dx < 0 {
			return core.DirLeft
		}
		return core.DirRight
	}
	if dy < 0 {
		return core.DirUp
	}
	return core.DirDown
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
