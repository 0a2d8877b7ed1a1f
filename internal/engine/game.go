// Package engine runs the maze pursuit simulation: entity movement with
// full-revert collision, ghost pursuit AI, difficulty scaling, pickup
// placement and the session state machine.
//
// The engine is single-threaded. Every exported method must be called from
// one goroutine; the only asynchronous work is the victory announcement,
// handed to Options.Dispatch.
package engine

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pursuit/internal/config"
	"github.com/vovakirdan/pursuit/internal/core"
	"github.com/vovakirdan/pursuit/internal/maze"
	"github.com/vovakirdan/pursuit/internal/nav"
	"github.com/vovakirdan/pursuit/internal/notify"
)

// Options carries the engine's collaborators. Zero values are replaced with
// defaults.
type Options struct {
	Logger    *log.Logger
	Now       func() time.Time // Clock; defaults to time.Now
	Dispatch  func(func())     // Runs the victory announcement; defaults to a new goroutine
	Announcer notify.Announcer // Receives the victory; defaults to logging only
	Message   string           // Victory message; defaults to the configured one
}

// Game is one pursuit session bound to a maze layout.
type Game struct {
	cfg        config.PursuitConfig
	maze       *maze.Maze
	rc         core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	graphs     *nav.GraphCache
	placer     *Placer

	log       *log.Logger
	now       func() time.Time
	dispatch  func(func())
	announcer notify.Announcer
	message   string

	session     SessionState
	player      Player
	ghosts      []*Ghost
	pickup      core.Rect
	projectiles []*Projectile
}

// New validates the configuration and layout and returns an idle game.
// Invalid input fails here, before any session starts.
func New(cfg config.PursuitConfig, m *maze.Maze, rc core.RuntimeConfig, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("engine: no maze layout")
	}
	if err := m.Validate(cfg.Navigation.CellSize); err != nil {
		return nil, fmt.Errorf("engine: layout %s: %w", m.Name, err)
	}

	player := core.NewRect(m.PlayerStart.X, m.PlayerStart.Y, cfg.Player.Width, cfg.Player.Height)
	if m.Blocked(player) {
		return nil, fmt.Errorf("engine: layout %s: player start %v,%v is blocked", m.Name, m.PlayerStart.X, m.PlayerStart.Y)
	}
	for i, p := range m.GhostStarts[:2] {
		if m.Blocked(core.NewRect(p.X, p.Y, cfg.Ghosts.Width, cfg.Ghosts.Height)) {
			return nil, fmt.Errorf("engine: layout %s: ghost start %d is blocked", m.Name, i)
		}
	}

	g := &Game{
		cfg:        cfg,
		maze:       m,
		rc:         rc,
		rng:        rand.New(rand.NewSource(rc.Seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		graphs:     nav.NewGraphCache(m, cfg.Navigation.CellSize, cfg.Ghosts.Width, cfg.Ghosts.Height, cfg.Navigation.RebuildInterval()),
		log:        opts.Logger,
		now:        opts.Now,
		dispatch:   opts.Dispatch,
		announcer:  opts.Announcer,
		message:    opts.Message,
	}
	g.placer = NewPlacer(m, cfg.Pickup, g.rng)

	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.dispatch == nil {
		g.dispatch = func(f func()) { go f() }
	}
	if g.announcer == nil {
		g.announcer = notify.LogAnnouncer{Logger: g.log}
	}
	if g.message == "" {
		g.message = cfg.Notify.Message
	}

	return g, nil
}

// Start moves an idle game into Running for playerID. It returns false when
// the game is not idle.
func (g *Game) Start(playerID string) bool {
	if g.session.State != StateIdle {
		return false
	}
	g.session.PlayerID = playerID
	g.reset()
	return true
}

// Restart begins a fresh session after GameOver or Won.
func (g *Game) Restart() bool {
	if !g.session.State.Terminal() {
		return false
	}
	g.reset()
	return true
}

func (g *Game) reset() {
	now := g.now()
	playerID := g.session.PlayerID

	g.session = SessionState{
		ID:             uuid.NewString(),
		PlayerID:       playerID,
		State:          StateRunning,
		Lives:          g.cfg.Gameplay.Lives,
		FiringUnlocked: g.difficulty.FiringUnlocked(0),
		StartedAt:      now,
	}

	g.player = Player{
		Rect:  core.NewRect(g.maze.PlayerStart.X, g.maze.PlayerStart.Y, g.cfg.Player.Width, g.cfg.Player.Height),
		Speed: g.cfg.Player.Speed,
	}

	g.ghosts = g.ghosts[:0]
	for i, p := range g.maze.GhostStarts[:2] {
		g.ghosts = append(g.ghosts, &Ghost{
			ID:        i,
			Kind:      GhostRegular,
			Rect:      core.NewRect(p.X, p.Y, g.cfg.Ghosts.Width, g.cfg.Ghosts.Height),
			BaseSpeed: g.cfg.Ghosts.BaseSpeed,
			Speed:     g.difficulty.Speed(g.cfg.Ghosts.BaseSpeed, 0),
		})
	}
	g.projectiles = nil
	g.placePickup()

	g.log.Info("session started", "session", g.session.ID, "player", playerID,
		"layout", g.maze.Name, "lives", g.session.Lives, "win_score", g.cfg.Gameplay.WinScore,
		"progression", g.difficulty.IsEnabled())
}

// Step advances the simulation by one tick. Ticks outside Running are
// no-ops. Order: ghosts, projectiles, pickup, player-ghost collision.
func (g *Game) Step() State {
	if g.session.State != StateRunning {
		return g.session.State
	}
	now := g.now()
	g.session.Tick++

	g.updateGhosts(now)

	if owner, hit := g.updateProjectiles(); hit {
		g.hit(now, "projectile", owner)
		if g.session.State != StateRunning {
			return g.session.State
		}
	}

	if g.player.Rect.Intersects(g.pickup) {
		g.collect(now)
		if g.session.State != StateRunning {
			return g.session.State
		}
	}

	for _, gh := range g.ghosts {
		if g.player.Rect.Intersects(gh.Rect) {
			g.hit(now, "ghost", gh.ID)
			break
		}
	}
	return g.session.State
}

// Move steps the player once in dir. Commands outside Running are ignored.
// It returns whether the player moved.
func (g *Game) Move(dir core.Direction) bool {
	if g.session.State != StateRunning || dir == core.DirNone {
		return false
	}
	next, ok := moveRect(g.maze, g.player.Rect, dir, g.player.Speed)
	if ok {
		g.player.Rect = next
	}
	return ok
}

// updateProjectiles moves every projectile, dropping those that hit a wall,
// leave the bounds or strike the player. It reports whether the player was
// hit and by which ghost's shot.
func (g *Game) updateProjectiles() (owner int, hit bool) {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		next, ok := moveRect(g.maze, p.Rect, p.Dir, p.Speed)
		if !ok {
			continue
		}
		p.Rect = next
		if p.Rect.Intersects(g.player.Rect) {
			owner, hit = p.Owner, true
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(g.projectiles); i++ {
		g.projectiles[i] = nil
	}
	g.projectiles = kept
	return owner, hit
}

// collect scores the pickup, hardens the session and relocates the pickup.
func (g *Game) collect(now time.Time) {
	g.session.Score++
	g.log.Info("pickup collected", "session", g.session.ID, "score", g.session.Score)

	g.spawnGhost()
	g.rescaleGhosts()
	if !g.session.FiringUnlocked && g.difficulty.FiringUnlocked(g.session.Score) {
		g.session.FiringUnlocked = true
		g.log.Info("ghost firing unlocked", "session", g.session.ID, "score", g.session.Score)
	}
	g.placePickup()

	if g.session.Score >= g.cfg.Gameplay.WinScore {
		g.win(now)
	}
}

func (g *Game) placePickup() {
	r, ok := g.placer.Place(g.player.Rect, g.ghostRects())
	if !ok {
		g.log.Debug("pickup placed at preset", "x", r.X, "y", r.Y)
	}
	g.pickup = r
}

func (g *Game) ghostRects() []core.Rect {
	rects := make([]core.Rect, len(g.ghosts))
	for i, gh := range g.ghosts {
		rects[i] = gh.Rect
	}
	return rects
}

// hit handles a player hit by ghost, directly or through its projectile.
// Hits during the cooldown are ignored. With lives to spare the game pauses
// for acknowledgment; on the last life it ends.
func (g *Game) hit(now time.Time, cause string, ghost int) {
	if now.Before(g.session.HitCooldownUntil) {
		return
	}
	if g.session.Lives-1 > 0 {
		g.session.State = StatePaused
		g.log.Info("player hit", "session", g.session.ID, "cause", cause, "ghost", ghost, "lives", g.session.Lives)
		return
	}
	g.session.Lives = 0
	g.end(StateGameOver, now)
	g.log.Info("game over", "session", g.session.ID, "cause", cause, "ghost", ghost, "score", g.session.Score)
}

// Acknowledge dismisses the hit popup: a life is lost and, if any remain,
// the player and the first two ghosts return to their starts and ticking
// resumes.
func (g *Game) Acknowledge() bool {
	if g.session.State != StatePaused {
		return false
	}
	now := g.now()
	g.session.Lives--
	if g.session.Lives <= 0 {
		g.session.Lives = 0
		g.end(StateGameOver, now)
		return true
	}

	g.player.Rect = core.NewRect(g.maze.PlayerStart.X, g.maze.PlayerStart.Y, g.cfg.Player.Width, g.cfg.Player.Height)
	for i, p := range g.maze.GhostStarts[:2] {
		gh := g.ghosts[i]
		gh.Rect = core.NewRect(p.X, p.Y, gh.Rect.W, gh.Rect.H)
		gh.resetMotion()
	}
	g.projectiles = nil
	g.session.HitCooldownUntil = now.Add(g.cfg.Gameplay.HitCooldown())
	g.session.State = StateRunning

	g.log.Info("life lost", "session", g.session.ID, "lives", g.session.Lives)
	return true
}

func (g *Game) end(state State, now time.Time) {
	g.session.State = state
	g.session.EndedAt = now
	g.projectiles = nil
}

// win ends the session and hands the victory to the announcer without
// waiting for it.
func (g *Game) win(now time.Time) {
	g.end(StateWon, now)
	g.log.Info("session won", "session", g.session.ID, "player", g.session.PlayerID, "score", g.session.Score)

	v := notify.Victory{
		SessionID: g.session.ID,
		PlayerID:  g.session.PlayerID,
		Message:   g.message,
		Score:     g.session.Score,
		Layout:    g.maze.Name,
		At:        now,
	}
	announcer, logger, timeout := g.announcer, g.log, g.cfg.Notify.Timeout()
	g.dispatch(func() {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		if err := announcer.Announce(ctx, v); err != nil {
			logger.Error("victory announcement failed", "session", v.SessionID, "err", err)
			return
		}
		logger.Info("victory announced", "session", v.SessionID, "player", v.PlayerID)
	})
}

// State returns the current state.
func (g *Game) State() State {
	return g.session.State
}

// Session returns a copy of the session bookkeeping.
func (g *Game) Session() SessionState {
	return g.session
}

// Maze returns the active layout.
func (g *Game) Maze() *maze.Maze {
	return g.maze
}
