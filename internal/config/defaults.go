package config

import (
	_ "embed"
)

//go:embed defaults/pursuit.yaml
var defaultPursuitYAML []byte

// DefaultPursuitConfig returns the default pursuit configuration.
func DefaultPursuitConfig() PursuitConfig {
	return PursuitConfig{
		Player: PlayerConfig{
			Width:  30,
			Height: 30,
			Speed:  10,
		},
		Ghosts: GhostConfig{
			Width:                30,
			Height:               30,
			BaseSpeed:            1.0,
			MaxCount:             6,
			SpawnAttempts:        50,
			SpecialEvery:         3,
			HysteresisMS:         250,
			HysteresisStuckTicks: 5,
			StuckEscapeTicks:     10,
		},
		Projectiles: ProjectileConfig{
			Width:             8,
			Height:            8,
			Speed:             4,
			FireChance:        0.01,
			SpecialFireFactor: 2,
			CooldownMS:        2000,
		},
		Pickup: PickupConfig{
			Width:       30,
			Height:      30,
			GridStep:    20,
			GridOffset:  10,
			WallPadding: 15,
			MinDistance: 100,
			Attempts:    100,
		},
		Navigation: NavConfig{
			CellSize:  10,
			RebuildMS: 3000,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			WinScore:      5,
			HitCooldownMS: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			SpeedIncrement:  0.15,
			SpawnScoreBoost: 0.05,
			SpawnStep:       0.1,
			FireUnlockScore: 2,
		},
		Notify: NotifyConfig{
			Message:   "I made it out of the maze!",
			TimeoutMS: 5000,
		},
	}
}
