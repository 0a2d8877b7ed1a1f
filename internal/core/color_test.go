package core

import "testing"

func TestColorString(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{ColorDefault, "default"},
		{ColorBrightMagenta, "bright_magenta"},
		{ColorGray, "gray"},
		{ColorWall, "blue"},
		{ColorPlayer, "bright_yellow"},
		{Color(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.expected {
			t.Errorf("Color(%d).String() = %q, expected %q", tt.c, got, tt.expected)
		}
	}
}

func TestRoleColorsDistinct(t *testing.T) {
	roles := []Color{ColorWall, ColorPlayer, ColorGhost, ColorSpecialGhost, ColorPickup, ColorProjectile}
	seen := make(map[Color]bool)
	for _, c := range roles {
		if seen[c] {
			t.Errorf("role color %v used twice", c)
		}
		seen[c] = true
	}
}
