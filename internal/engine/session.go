package engine

import "time"

// State is the session state machine's current state.
type State int

const (
	StateIdle     State = iota
	StateRunning        // Ticking
	StatePaused         // Hit popup awaiting acknowledgment
	StateGameOver       // Terminal; restart re-enters Running
	StateWon            // Terminal; victory announced
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks will run until a restart.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateWon
}

// SessionState is the per-session bookkeeping owned by the state machine.
type SessionState struct {
	ID       string
	PlayerID string
	State    State

	Score          int
	Lives          int
	FiringUnlocked bool // Never reverts within a session
	Spawned        int  // Ghosts added after the initial two

	Tick             uint64
	HitCooldownUntil time.Time
	StartedAt        time.Time
	EndedAt          time.Time
}
