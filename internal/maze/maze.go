// Package maze holds the static playfield: wall rectangles, movement bounds
// and the per-layout coordinates the engine starts from.
package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/pursuit/internal/core"
)

// Errors returned by Validate.
var (
	ErrNoWalls    = errors.New("maze: layout has no walls")
	ErrBadBounds  = errors.New("maze: bounds must have positive size")
	ErrUnevenGrid = errors.New("maze: cell size does not divide the bounds evenly")
)

// Point is a playfield position in pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Maze is an immutable wall layout. The engine never mutates it once a
// session starts.
type Maze struct {
	Name   string
	Title  string
	Width  float64   // Canvas width in pixels
	Height float64   // Canvas height in pixels
	Bounds core.Rect // Area entities must stay inside
	Walls  []core.Rect

	PlayerStart Point
	GhostStarts []Point // The first two ghosts are reset here after a lost life

	// SpawnRegions are sampled when new ghosts join; SpawnFallback is used
	// when sampling keeps failing.
	SpawnRegions  []core.Rect
	SpawnFallback Point

	// PickupPresets are tried in order when random pickup placement fails.
	PickupPresets []Point
}

// Validate checks the layout against a grid cell size. Invalid layouts must be
// rejected before a session starts.
func (m *Maze) Validate(cellSize float64) error {
	if len(m.Walls) == 0 {
		return fmt.Errorf("%w: %s", ErrNoWalls, m.Name)
	}
	if m.Bounds.W <= 0 || m.Bounds.H <= 0 {
		return fmt.Errorf("%w: %s is %vx%v", ErrBadBounds, m.Name, m.Bounds.W, m.Bounds.H)
	}
	if cellSize <= 0 || !divides(m.Bounds.W, cellSize) || !divides(m.Bounds.H, cellSize) {
		return fmt.Errorf("%w: %s bounds %vx%v, cell %v", ErrUnevenGrid, m.Name, m.Bounds.W, m.Bounds.H, cellSize)
	}
	if len(m.GhostStarts) < 2 {
		return fmt.Errorf("maze: %s needs two ghost start positions, has %d", m.Name, len(m.GhostStarts))
	}
	if len(m.PickupPresets) == 0 {
		return fmt.Errorf("maze: %s has no pickup presets", m.Name)
	}
	for i, w := range m.Walls {
		if w.W < 0 || w.H < 0 {
			return fmt.Errorf("maze: %s wall %d has negative size", m.Name, i)
		}
	}
	return nil
}

// Blocked reports whether r overlaps any wall or leaves the bounds.
func (m *Maze) Blocked(r core.Rect) bool {
	if !m.Bounds.ContainsRect(r) {
		return true
	}
	return m.HitsWall(r)
}

// HitsWall reports whether r overlaps any wall.
func (m *Maze) HitsWall(r core.Rect) bool {
	for _, w := range m.Walls {
		if r.Intersects(w) {
			return true
		}
	}
	return false
}

func divides(length, cell float64) bool {
	n := length / cell
	return math.Abs(n-math.Round(n)) < 1e-9
}
