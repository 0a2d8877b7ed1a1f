package engine

import (
	"time"

	"github.com/vovakirdan/pursuit/internal/core"
	"github.com/vovakirdan/pursuit/internal/nav"
)

// Player is the agent steered by direction commands.
type Player struct {
	Rect  core.Rect
	Speed float64 // Pixels per command
}

// GhostKind distinguishes ghost variants. Both share movement and AI.
type GhostKind int

const (
	GhostRegular GhostKind = iota
	GhostSpecial           // Fires more often and renders differently
)

// String returns the kind name.
func (k GhostKind) String() string {
	if k == GhostSpecial {
		return "special"
	}
	return "regular"
}

// Ghost is an autonomous pursuer. Ghosts are only ever repositioned, never
// removed, during a session.
type Ghost struct {
	ID        int
	Kind      GhostKind
	Rect      core.Rect
	BaseSpeed float64
	Speed     float64 // BaseSpeed × difficulty multiplier

	Dir          core.Direction // Last committed direction
	DirChangedAt time.Time
	Stuck        int // Consecutive ticks without movement
	LastShotAt   time.Time

	// Node the ghost is walking to; ghosts replan only on arrival.
	Target    nav.Node
	Targeting bool

	// Wall-following state; Orientation is 0 until the fallback is first used.
	Orientation int
	Following   bool
}

// Special reports whether the ghost is the special variant.
func (g *Ghost) Special() bool {
	return g.Kind == GhostSpecial
}

// resetMotion clears AI state after a reposition.
func (g *Ghost) resetMotion() {
	g.Dir = core.DirNone
	g.DirChangedAt = time.Time{}
	g.Stuck = 0
	g.Targeting = false
	g.Orientation = 0
	g.Following = false
}

// Projectile travels in a straight line until it hits a wall, leaves the
// bounds or hits the player.
type Projectile struct {
	Rect  core.Rect
	Dir   core.Direction
	Speed float64
	Owner int // Ghost ID
}
