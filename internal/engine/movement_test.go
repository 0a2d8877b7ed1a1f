package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/pursuit/internal/core"
	"github.com/vovakirdan/pursuit/internal/maze"
)

func stripeMaze() *maze.Maze {
	return &maze.Maze{
		Name:   "stripe",
		Bounds: core.NewRect(0, 0, 800, 800),
		Walls:  []core.Rect{core.NewRect(50, 0, 20, 800)},
	}
}

func TestScenarioTouchingWall(t *testing.T) {
	m := stripeMaze()

	// A point entity at x=40 lands exactly on the wall's left edge.
	p := core.NewRect(40, 100, 0, 0)
	p, ok := moveRect(m, p, core.DirRight, 10)
	if !ok || p.X != 50 {
		t.Fatalf("first move: ok=%v x=%v, expected true/50", ok, p.X)
	}
	p, ok = moveRect(m, p, core.DirRight, 10)
	if ok || p.X != 50 {
		t.Errorf("second move: ok=%v x=%v, expected false/50", ok, p.X)
	}
}

func TestTouchingWallWithBody(t *testing.T) {
	m := stripeMaze()

	// A 30 px body whose right edge reaches the wall after one step.
	r := core.NewRect(10, 100, 30, 30)
	r, ok := moveRect(m, r, core.DirRight, 10)
	if !ok || r.Right() != 50 {
		t.Fatalf("first move: ok=%v right=%v, expected true/50", ok, r.Right())
	}
	r, ok = moveRect(m, r, core.DirRight, 10)
	if ok || r.X != 20 {
		t.Errorf("second move: ok=%v x=%v, expected false/20", ok, r.X)
	}
}

func TestFullRevertAtCorner(t *testing.T) {
	m := &maze.Maze{
		Bounds: core.NewRect(0, 0, 200, 200),
		Walls:  []core.Rect{core.NewRect(100, 0, 20, 50)},
	}
	// The body clips the wall's bottom corner by 5 px: the whole move is
	// reverted, the entity does not slide along the free axis.
	r := core.NewRect(60, 45, 30, 30)
	got, ok := moveBy(m, r, 15, 0)
	if ok || got != r {
		t.Errorf("moveBy() = (%+v, %v), expected unchanged", got, ok)
	}
}

func TestMovementReversion(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, name := range []string{"desktop", "mobile"} {
		m, _ := maze.Get(name)

		for trial := 0; trial < 500; trial++ {
			r := randomFreeRect(rng, m, 30, 30)
			dx := float64(rng.Intn(61) - 30)
			dy := float64(rng.Intn(61) - 30)

			got, ok := moveBy(m, r, dx, dy)
			overlaps := m.HitsWall(r.Translate(dx, dy))
			if overlaps && (ok || got != r) {
				t.Fatalf("%s: move %+v by (%v,%v) overlapped a wall but was not reverted", name, r, dx, dy)
			}
			if ok && m.Blocked(got) {
				t.Fatalf("%s: accepted move left %+v blocked", name, got)
			}
		}
	}
}

func randomFreeRect(rng *rand.Rand, m *maze.Maze, w, h float64) core.Rect {
	for {
		x := m.Bounds.X + float64(rng.Intn(int(m.Bounds.W-w)+1))
		y := m.Bounds.Y + float64(rng.Intn(int(m.Bounds.H-h)+1))
		r := core.NewRect(x, y, w, h)
		if !m.Blocked(r) {
			return r
		}
	}
}
