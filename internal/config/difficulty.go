package config

// DifficultyManager calculates score-driven ghost parameters.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether speed progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// SpeedMultiplier returns 1 + score × increment, or 1 when progression is off.
func (d *DifficultyManager) SpeedMultiplier(score int) float64 {
	if !d.cfg.Enabled || score <= 0 {
		return 1.0
	}
	return 1.0 + float64(score)*d.cfg.SpeedIncrement
}

// Speed returns a ghost's effective speed for its base speed at score.
// Non-decreasing in score.
func (d *DifficultyManager) Speed(baseSpeed float64, score int) float64 {
	return baseSpeed * d.SpeedMultiplier(score)
}

// SpawnBaseSpeed returns the base speed for the spawn-th dynamically spawned
// ghost (1-based) joining at score. Later spawns start faster.
func (d *DifficultyManager) SpawnBaseSpeed(baseSpeed float64, score, spawn int) float64 {
	if !d.cfg.Enabled {
		return baseSpeed
	}
	if score < 0 {
		score = 0
	}
	if spawn < 0 {
		spawn = 0
	}
	return baseSpeed * (1.0 + float64(score)*d.cfg.SpawnScoreBoost) * (1.0 + float64(spawn)*d.cfg.SpawnStep)
}

// FiringUnlocked reports whether ghosts may fire at score.
func (d *DifficultyManager) FiringUnlocked(score int) bool {
	return score >= d.cfg.FireUnlockScore
}
