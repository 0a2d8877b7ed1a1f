package engine

import "github.com/vovakirdan/pursuit/internal/core"

// GhostView is the read-only view of a ghost.
type GhostView struct {
	ID      int
	Rect    core.Rect
	Special bool
	Dir     core.Direction
	Speed   float64
}

// Snapshot is a read-only copy of everything a renderer needs. Mutating it
// never affects the game.
type Snapshot struct {
	SessionID string
	PlayerID  string
	Layout    string
	State     State
	Tick      uint64

	Score          int
	WinScore       int
	Lives          int
	FiringUnlocked bool

	Canvas      core.Rect // Full canvas including border walls
	Bounds      core.Rect
	Walls       []core.Rect
	Player      core.Rect
	Ghosts      []GhostView
	Pickup      core.Rect
	Projectiles []core.Rect
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	ghosts := make([]GhostView, len(g.ghosts))
	for i, gh := range g.ghosts {
		ghosts[i] = GhostView{
			ID:      gh.ID,
			Rect:    gh.Rect,
			Special: gh.Special(),
			Dir:     gh.Dir,
			Speed:   gh.Speed,
		}
	}
	projectiles := make([]core.Rect, len(g.projectiles))
	for i, p := range g.projectiles {
		projectiles[i] = p.Rect
	}

	return Snapshot{
		SessionID:      g.session.ID,
		PlayerID:       g.session.PlayerID,
		Layout:         g.maze.Name,
		State:          g.session.State,
		Tick:           g.session.Tick,
		Score:          g.session.Score,
		WinScore:       g.cfg.Gameplay.WinScore,
		Lives:          g.session.Lives,
		FiringUnlocked: g.session.FiringUnlocked,
		Canvas:         core.NewRect(0, 0, g.maze.Width, g.maze.Height),
		Bounds:         g.maze.Bounds,
		Walls:          append([]core.Rect(nil), g.maze.Walls...),
		Player:         g.player.Rect,
		Ghosts:         ghosts,
		Pickup:         g.pickup,
		Projectiles:    projectiles,
	}
}
