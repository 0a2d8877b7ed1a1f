// Package config provides YAML-based game configuration loading and
// difficulty management for the pursuit engine.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for values the engine cannot run with.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// PursuitConfig contains all configuration for a pursuit session.
type PursuitConfig struct {
	Player      PlayerConfig     `yaml:"player"`
	Ghosts      GhostConfig      `yaml:"ghosts"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Pickup      PickupConfig     `yaml:"pickup"`
	Navigation  NavConfig        `yaml:"navigation"`
	Gameplay    GameplayConfig   `yaml:"gameplay"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
	Notify      NotifyConfig     `yaml:"notify"`
}

// PlayerConfig defines the player entity.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Pixels per direction command
}

// GhostConfig defines ghost entities and their behavior timings.
type GhostConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BaseSpeed     float64 `yaml:"base_speed"` // Pixels per tick at score 0
	MaxCount      int     `yaml:"max_count"`
	SpawnAttempts int     `yaml:"spawn_attempts"`
	SpecialEvery  int     `yaml:"special_every"` // Every Nth spawned ghost is special; 0 disables

	HysteresisMS         int `yaml:"hysteresis_ms"`
	HysteresisStuckTicks int `yaml:"hysteresis_stuck_ticks"` // Stuck ticks that bypass hysteresis
	StuckEscapeTicks     int `yaml:"stuck_escape_ticks"`
}

// Hysteresis returns the minimum dwell time before a direction change.
func (g GhostConfig) Hysteresis() time.Duration {
	return time.Duration(g.HysteresisMS) * time.Millisecond
}

// ProjectileConfig defines ghost projectiles.
type ProjectileConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Speed             float64 `yaml:"speed"`
	FireChance        float64 `yaml:"fire_chance"`         // Per ghost per tick
	SpecialFireFactor float64 `yaml:"special_fire_factor"` // Chance multiplier for special ghosts
	CooldownMS        int     `yaml:"cooldown_ms"`
}

// Cooldown returns the minimum time between two shots of one ghost.
func (p ProjectileConfig) Cooldown() time.Duration {
	return time.Duration(p.CooldownMS) * time.Millisecond
}

// PickupConfig defines the pickup and its placement search.
type PickupConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	GridStep    float64 `yaml:"grid_step"`   // Candidate positions are multiples of this
	GridOffset  float64 `yaml:"grid_offset"` // Offset of the candidate grid from the bounds origin
	WallPadding float64 `yaml:"wall_padding"`
	MinDistance float64 `yaml:"min_distance"` // From the player and every ghost
	Attempts    int     `yaml:"attempts"`
}

// NavConfig defines the pathfinding grid.
type NavConfig struct {
	CellSize  float64 `yaml:"cell_size"`
	RebuildMS int     `yaml:"rebuild_ms"`
}

// RebuildInterval returns the grid graph max age.
func (n NavConfig) RebuildInterval() time.Duration {
	return time.Duration(n.RebuildMS) * time.Millisecond
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives         int `yaml:"lives"`
	WinScore      int `yaml:"win_score"`
	HitCooldownMS int `yaml:"hit_cooldown_ms"`
}

// HitCooldown returns how long life loss is suppressed after a reposition.
func (g GameplayConfig) HitCooldown() time.Duration {
	return time.Duration(g.HitCooldownMS) * time.Millisecond
}

// DifficultyConfig defines how the session hardens as the score grows.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	SpeedIncrement  float64 `yaml:"speed_increment"`   // Added to the ghost speed multiplier per point
	SpawnScoreBoost float64 `yaml:"spawn_score_boost"` // Base speed boost per point for newly spawned ghosts
	SpawnStep       float64 `yaml:"spawn_step"`        // Base speed boost per earlier spawn
	FireUnlockScore int     `yaml:"fire_unlock_score"`
}

// NotifyConfig defines the victory announcement.
type NotifyConfig struct {
	Message   string `yaml:"message"`
	URL       string `yaml:"url"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// Timeout returns the webhook request timeout.
func (n NotifyConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutMS) * time.Millisecond
}

// Validate rejects configurations the engine cannot run with.
func (c PursuitConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"},
		{c.Player.Speed > 0, "player speed must be positive"},
		{c.Ghosts.Width > 0 && c.Ghosts.Height > 0, "ghost size must be positive"},
		{c.Ghosts.BaseSpeed > 0, "ghost base speed must be positive"},
		{c.Ghosts.MaxCount >= 2, "ghost max count must be at least 2"},
		{c.Ghosts.SpawnAttempts > 0, "ghost spawn attempts must be positive"},
		{c.Ghosts.SpecialEvery >= 0, "ghost special_every must not be negative"},
		{c.Ghosts.HysteresisMS >= 0, "ghost hysteresis must not be negative"},
		{c.Ghosts.StuckEscapeTicks > 0, "ghost stuck escape ticks must be positive"},
		{c.Projectiles.Width > 0 && c.Projectiles.Height > 0, "projectile size must be positive"},
		{c.Projectiles.Speed > 0, "projectile speed must be positive"},
		{c.Projectiles.FireChance >= 0 && c.Projectiles.FireChance <= 1, "fire chance must be within [0, 1]"},
		{c.Projectiles.SpecialFireFactor >= 0, "special fire factor must not be negative"},
		{c.Projectiles.CooldownMS >= 0, "projectile cooldown must not be negative"},
		{c.Pickup.Width > 0 && c.Pickup.Height > 0, "pickup size must be positive"},
		{c.Pickup.GridStep > 0, "pickup grid step must be positive"},
		{c.Pickup.WallPadding >= 0, "pickup wall padding must not be negative"},
		{c.Pickup.MinDistance >= 0, "pickup min distance must not be negative"},
		{c.Pickup.Attempts > 0, "pickup attempts must be positive"},
		{c.Navigation.CellSize > 0, "navigation cell size must be positive"},
		{c.Ghosts.Width >= c.Navigation.CellSize && c.Ghosts.Height >= c.Navigation.CellSize, "ghost size must be at least one navigation cell"},
		{c.Navigation.RebuildMS >= 0, "navigation rebuild interval must not be negative"},
		{c.Gameplay.Lives > 0, "lives must be positive"},
		{c.Gameplay.WinScore > 0, "win score must be positive"},
		{c.Gameplay.HitCooldownMS >= 0, "hit cooldown must not be negative"},
		{c.Difficulty.SpeedIncrement >= 0, "speed increment must not be negative"},
		{c.Difficulty.SpawnScoreBoost >= 0 && c.Difficulty.SpawnStep >= 0, "spawn boosts must not be negative"},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.what)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
