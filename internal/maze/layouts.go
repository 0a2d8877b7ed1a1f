package maze

import "github.com/vovakirdan/pursuit/internal/core"

func init() {
	Register("desktop", Desktop)
	Register("mobile", Mobile)
}

func wall(x, y, w, h float64) core.Rect {
	return core.NewRect(x, y, w, h)
}

// Desktop returns the wide landscape layout.
func Desktop() *Maze {
	return &Maze{
		Name:   "desktop",
		Title:  "Desktop (landscape)",
		Width:  800,
		Height: 520,
		Bounds: core.NewRect(20, 20, 760, 460),
		Walls: []core.Rect{
			// Outer border
			wall(0, 0, 800, 20),
			wall(0, 500, 800, 20),
			wall(0, 0, 20, 520),
			wall(780, 0, 20, 520),

			// Top section
			wall(80, 60, 80, 20),
			wall(200, 60, 140, 20),
			wall(400, 60, 140, 20),
			wall(600, 60, 120, 20),
			wall(160, 60, 20, 80),
			wall(360, 60, 20, 60),
			wall(560, 60, 20, 80),

			// Middle section
			wall(60, 180, 80, 20),
			wall(200, 180, 110, 20),
			wall(450, 180, 110, 20),
			wall(600, 180, 120, 20),

			// Ghost house, open on the left and right
			wall(320, 240, 70, 20),
			wall(450, 240, 70, 20),
			wall(320, 240, 20, 20),
			wall(320, 290, 20, 20),
			wall(500, 240, 20, 20),
			wall(500, 290, 20, 20),
			wall(320, 300, 200, 20),

			// Lower section
			wall(60, 340, 140, 20),
			wall(240, 340, 80, 20),
			wall(360, 340, 80, 20),
			wall(480, 340, 80, 20),
			wall(600, 340, 140, 20),
			wall(160, 340, 20, 70),
			wall(240, 360, 20, 50),
			wall(360, 360, 20, 50),
			wall(480, 360, 20, 50),
			wall(600, 340, 20, 70),

			// Bottom section
			wall(60, 410, 80, 20),
			wall(280, 410, 100, 20),
			wall(420, 410, 100, 20),
			wall(620, 410, 120, 20),
		},
		PlayerStart: Point{X: 50, Y: 450},
		GhostStarts: []Point{{X: 360, Y: 260}, {X: 380, Y: 260}},
		SpawnRegions: []core.Rect{
			core.NewRect(340, 260, 160, 40), // ghost house
			core.NewRect(200, 20, 400, 40),  // top corridor
			core.NewRect(740, 100, 40, 300), // right column
			core.NewRect(20, 100, 40, 300),  // left column
			core.NewRect(200, 440, 400, 40), // bottom corridor
		},
		SpawnFallback: Point{X: 400, Y: 265},
		PickupPresets: []Point{{X: 400, Y: 100}, {X: 650, Y: 270}, {X: 80, Y: 270}},
	}
}

// Mobile returns the tall portrait layout.
func Mobile() *Maze {
	return &Maze{
		Name:   "mobile",
		Title:  "Mobile (portrait)",
		Width:  550,
		Height: 780,
		Bounds: core.NewRect(20, 20, 510, 740),
		Walls: []core.Rect{
			// Outer border
			wall(0, 0, 550, 20),
			wall(0, 760, 550, 20),
			wall(0, 0, 20, 780),
			wall(530, 0, 20, 780),

			// Top section
			wall(60, 60, 100, 20),
			wall(200, 60, 250, 20),
			wall(60, 120, 60, 20),
			wall(160, 120, 290, 20),

			// Vertical dividers
			wall(160, 60, 20, 60),
			wall(330, 140, 20, 180),
			wall(120, 180, 20, 180),
			wall(240, 260, 20, 160),

			// Middle section
			wall(60, 180, 60, 20),
			wall(140, 180, 250, 20),
			wall(60, 260, 170, 20),
			wall(260, 260, 210, 20),

			// Ghost house, open on both sides
			wall(160, 360, 60, 20),
			wall(260, 360, 60, 20),
			wall(160, 360, 20, 20),
			wall(160, 410, 20, 20),
			wall(300, 360, 20, 20),
			wall(300, 410, 20, 20),
			wall(160, 430, 160, 20),

			// Lower section
			wall(60, 500, 160, 20),
			wall(260, 500, 210, 20),
			wall(120, 500, 20, 100),
			wall(380, 500, 20, 100),
			wall(60, 600, 200, 20),
			wall(300, 600, 170, 20),

			// Bottom section
			wall(60, 680, 140, 20),
			wall(240, 680, 230, 20),
		},
		PlayerStart: Point{X: 50, Y: 700},
		GhostStarts: []Point{{X: 210, Y: 380}, {X: 260, Y: 380}},
		SpawnRegions: []core.Rect{
			core.NewRect(180, 380, 120, 50), // ghost house
			core.NewRect(60, 20, 450, 40),   // top corridor
			core.NewRect(60, 710, 450, 50),  // bottom corridor
			core.NewRect(20, 200, 40, 400),  // left column
			core.NewRect(480, 200, 50, 400), // right column
		},
		SpawnFallback: Point{X: 265, Y: 385},
		PickupPresets: []Point{{X: 260, Y: 540}, {X: 420, Y: 215}, {X: 440, Y: 300}},
	}
}
