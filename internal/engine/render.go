package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/pursuit/internal/core"
)

// Playfield pixels covered by one terminal cell. Rows are twice as tall as
// columns so the maze keeps its proportions.
const (
	PixelsPerColumn = 10.0
	PixelsPerRow    = 20.0
	hudHeight       = 2
)

// RequiredSize returns the terminal size needed to draw a canvas.
func RequiredSize(canvas core.Rect) (w, h int) {
	return int(math.Ceil(canvas.W / PixelsPerColumn)), int(math.Ceil(canvas.H/PixelsPerRow)) + hudHeight
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.Snapshot())
}

// Draw renders a snapshot. It only reads s.
func Draw(dst *core.Screen, s Snapshot) {
	dst.Clear()
	drawHUD(dst, s)

	needW, needH := RequiredSize(s.Canvas)
	if dst.Width() < needW || dst.Height() < needH {
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	offX := (dst.Width() - needW) / 2
	offY := hudHeight

	for _, w := range s.Walls {
		fillPixels(dst, offX, offY, w, '█', core.ColorWall)
	}
	fillPixels(dst, offX, offY, s.Pickup, '*', core.ColorPickup)
	for _, p := range s.Projectiles {
		fillPixels(dst, offX, offY, p, 'o', core.ColorProjectile)
	}
	for _, gh := range s.Ghosts {
		if gh.Special {
			fillPixels(dst, offX, offY, gh.Rect, 'W', core.ColorSpecialGhost)
		} else {
			fillPixels(dst, offX, offY, gh.Rect, 'M', core.ColorGhost)
		}
	}
	fillPixels(dst, offX, offY, s.Player, '@', core.ColorPlayer)

	switch s.State {
	case StateIdle:
		drawOverlay(dst, "Ready", "Waiting to start")
	case StatePaused:
		drawOverlay(dst, "Caught!", fmt.Sprintf("%d lives left - press Enter", max(s.Lives-1, 0)))
	case StateGameOver:
		drawOverlay(dst, "Game Over", "Press R to restart")
	case StateWon:
		drawOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d - press R to play again", s.Score))
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	lives := strings.Repeat("♥", max(s.Lives, 0))
	hud := fmt.Sprintf(" Score: %d/%d  Lives: %s  Ghosts: %d", s.Score, s.WinScore, lives, len(s.Ghosts))
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)
	if s.FiringUnlocked {
		dst.DrawTextColored(len([]rune(hud))+2, 0, "FIRE!", core.ColorProjectile)
	}

	who := s.PlayerID
	if who == "" {
		who = "anonymous"
	}
	dst.DrawTextColored(0, 1, fmt.Sprintf(" %s on %s", who, s.Layout), core.ColorMuted)
}

// fillPixels fills every cell whose pixel area overlaps r.
func fillPixels(dst *core.Screen, offX, offY int, r core.Rect, ch rune, c core.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c0 := int(math.Floor(r.X / PixelsPerColumn))
	c1 := int(math.Ceil(r.Right()/PixelsPerColumn)) - 1
	r0 := int(math.Floor(r.Y / PixelsPerRow))
	r1 := int(math.Ceil(r.Bottom()/PixelsPerRow)) - 1

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			dst.SetColored(offX+col, offY+row, ch, c)
		}
	}
}

func drawOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 4
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawTextColored(x+(boxW-len([]rune(line1)))/2, y+1, line1, core.ColorBrightYellow)
	dst.DrawTextColored(x+(boxW-len([]rune(line2)))/2, y+2, line2, core.ColorWhite)
}
