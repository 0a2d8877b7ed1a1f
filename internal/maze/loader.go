package maze

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pursuit/internal/core"
)

// YAMLRect is a rectangle as written in layout files.
type YAMLRect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (r YAMLRect) rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// YAMLLayout represents the YAML structure for a layout file.
type YAMLLayout struct {
	Name          string     `yaml:"name"`
	Title         string     `yaml:"title"`
	Size          YAMLSize   `yaml:"size"`
	Bounds        YAMLRect   `yaml:"bounds"`
	Walls         []YAMLRect `yaml:"walls"`
	PlayerStart   Point      `yaml:"player_start"`
	GhostStarts   []Point    `yaml:"ghost_starts"`
	SpawnRegions  []YAMLRect `yaml:"spawn_regions,omitempty"`
	SpawnFallback *Point     `yaml:"spawn_fallback,omitempty"`
	PickupPresets []Point    `yaml:"pickup_presets"`
}

// YAMLSize represents canvas dimensions.
type YAMLSize struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// ParseYAML parses a layout document. The result is not validated; callers
// run Validate with their cell size.
func ParseYAML(data []byte) (*Maze, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	m := &Maze{
		Name:        yl.Name,
		Title:       yl.Title,
		Width:       yl.Size.W,
		Height:      yl.Size.H,
		Bounds:      yl.Bounds.rect(),
		PlayerStart: yl.PlayerStart,
		GhostStarts: yl.GhostStarts,
	}
	if m.Title == "" {
		m.Title = m.Name
	}
	// Canvas defaults to the bounds plus a one-wall margin.
	if m.Width == 0 {
		m.Width = m.Bounds.Right() + m.Bounds.X
	}
	if m.Height == 0 {
		m.Height = m.Bounds.Bottom() + m.Bounds.Y
	}

	for _, w := range yl.Walls {
		m.Walls = append(m.Walls, w.rect())
	}
	for _, r := range yl.SpawnRegions {
		m.SpawnRegions = append(m.SpawnRegions, r.rect())
	}

	switch {
	case yl.SpawnFallback != nil:
		m.SpawnFallback = *yl.SpawnFallback
	case len(m.GhostStarts) > 0:
		m.SpawnFallback = m.GhostStarts[0]
	}
	m.PickupPresets = yl.PickupPresets

	return m, nil
}

// LoadFile loads a layout from a .yaml or .yml file.
func LoadFile(path string) (*Maze, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("maze: unsupported extension: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maze: reading file %s: %w", path, err)
	}

	m, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("maze: parsing file %s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if m.Title == "" {
			m.Title = m.Name
		}
	}
	return m, nil
}
