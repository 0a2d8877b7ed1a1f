package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg PursuitConfig
	if err := yaml.Unmarshal(defaultPursuitYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if expected := DefaultPursuitConfig(); !reflect.DeepEqual(cfg, expected) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, expected)
	}
}

func TestDefaultsValid(t *testing.T) {
	if err := DefaultPursuitConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *PursuitConfig)
	}{
		{"zero player speed", func(c *PursuitConfig) { c.Player.Speed = 0 }},
		{"one ghost", func(c *PursuitConfig) { c.Ghosts.MaxCount = 1 }},
		{"fire chance above one", func(c *PursuitConfig) { c.Projectiles.FireChance = 1.5 }},
		{"zero cell size", func(c *PursuitConfig) { c.Navigation.CellSize = 0 }},
		{"ghost narrower than a cell", func(c *PursuitConfig) { c.Navigation.CellSize = 40 }},
		{"no lives", func(c *PursuitConfig) { c.Gameplay.Lives = 0 }},
		{"zero win score", func(c *PursuitConfig) { c.Gameplay.WinScore = 0 }},
		{"negative increment", func(c *PursuitConfig) { c.Difficulty.SpeedIncrement = -0.1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPursuitConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultPursuitConfig()
	tests := []struct {
		name     string
		got      time.Duration
		expected time.Duration
	}{
		{"hysteresis", cfg.Ghosts.Hysteresis(), 250 * time.Millisecond},
		{"cooldown", cfg.Projectiles.Cooldown(), 2 * time.Second},
		{"rebuild", cfg.Navigation.RebuildInterval(), 3 * time.Second},
		{"hit cooldown", cfg.Gameplay.HitCooldown(), time.Second},
		{"notify timeout", cfg.Notify.Timeout(), 5 * time.Second},
	}
	for _, tc := range tests {
		if tc.got != tc.expected {
			t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.expected)
		}
	}
}

func TestLoadPursuitCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pursuit.yaml")
	doc := "gameplay:\n  win_score: 9\nghosts:\n  max_count: 4\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPursuit(path)
	if err != nil {
		t.Fatalf("LoadPursuit() failed: %v", err)
	}
	if cfg.Gameplay.WinScore != 9 || cfg.Ghosts.MaxCount != 4 {
		t.Errorf("overrides not applied: win=%d max=%d", cfg.Gameplay.WinScore, cfg.Ghosts.MaxCount)
	}
	if cfg.Gameplay.Lives != 3 || cfg.Player.Speed != 10 {
		t.Errorf("missing keys should keep defaults: lives=%d speed=%v", cfg.Gameplay.Lives, cfg.Player.Speed)
	}
}

func TestLoadPursuitErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadPursuit(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPursuit(bad); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr || got != tc.expected {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected %q", tc.in, got, err, tc.expected)
		}
	}
}

func TestApplyPursuitPreset(t *testing.T) {
	base := DefaultPursuitConfig()

	easy := DefaultPursuitConfig()
	ApplyPursuitPreset(&easy, DifficultyEasy)
	hard := DefaultPursuitConfig()
	ApplyPursuitPreset(&hard, DifficultyHard)
	fixed := DefaultPursuitConfig()
	ApplyPursuitPreset(&fixed, DifficultyFixed)
	normal := DefaultPursuitConfig()
	ApplyPursuitPreset(&normal, DifficultyNormal)

	if !(easy.Ghosts.BaseSpeed < base.Ghosts.BaseSpeed && base.Ghosts.BaseSpeed < hard.Ghosts.BaseSpeed) {
		t.Errorf("base speeds not ordered: easy=%v normal=%v hard=%v",
			easy.Ghosts.BaseSpeed, base.Ghosts.BaseSpeed, hard.Ghosts.BaseSpeed)
	}
	if easy.Gameplay.Lives <= hard.Gameplay.Lives {
		t.Errorf("easy lives %d should exceed hard lives %d", easy.Gameplay.Lives, hard.Gameplay.Lives)
	}
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should leave defaults unchanged")
	}
	for _, c := range []PursuitConfig{easy, hard, fixed} {
		if err := c.Validate(); err != nil {
			t.Errorf("preset config invalid: %v", err)
		}
	}
}

func TestSpeedMonotonic(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		cfg := DefaultPursuitConfig()
		ApplyPursuitPreset(&cfg, preset)
		dm := NewDifficultyManager(cfg.Difficulty)

		for _, base := range []float64{0.5, 1, 2.3} {
			prev := dm.Speed(base, 0)
			if prev != base {
				t.Errorf("%s: Speed(%v, 0) = %v, expected %v", preset, base, prev, base)
			}
			for score := 1; score <= 50; score++ {
				cur := dm.Speed(base, score)
				if cur < prev {
					t.Fatalf("%s: Speed(%v, %d) = %v decreased from %v", preset, base, score, cur, prev)
				}
				prev = cur
			}
		}
	}
}

func TestSpeedMultiplier(t *testing.T) {
	dm := NewDifficultyManager(DefaultPursuitConfig().Difficulty)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 1.0},
		{1, 1.15},
		{4, 1.6},
	}
	for _, tc := range tests {
		got := dm.SpeedMultiplier(tc.score)
		if diff := got - tc.expected; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("SpeedMultiplier(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	off := DefaultPursuitConfig().Difficulty
	off.Enabled = false
	dm = NewDifficultyManager(off)
	if dm.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := dm.SpeedMultiplier(10); got != 1.0 {
		t.Errorf("disabled SpeedMultiplier(10) = %v, expected 1", got)
	}
}

func TestSpawnBaseSpeedGrows(t *testing.T) {
	dm := NewDifficultyManager(DefaultPursuitConfig().Difficulty)

	if a, b := dm.SpawnBaseSpeed(1, 1, 1), dm.SpawnBaseSpeed(1, 1, 2); b <= a {
		t.Errorf("later spawn should be faster: %v <= %v", b, a)
	}
	if a, b := dm.SpawnBaseSpeed(1, 1, 1), dm.SpawnBaseSpeed(1, 3, 1); b <= a {
		t.Errorf("higher score spawn should be faster: %v <= %v", b, a)
	}
}

func TestFiringUnlocked(t *testing.T) {
	dm := NewDifficultyManager(DefaultPursuitConfig().Difficulty)
	for score, expected := range []bool{false, false, true, true} {
		if got := dm.FiringUnlocked(score); got != expected {
			t.Errorf("FiringUnlocked(%d) = %v, expected %v", score, got, expected)
		}
	}
}
