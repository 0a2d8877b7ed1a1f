// Package tui provides the Bubble Tea front end for maze pursuit: the local
// program, the layout picker and name prompt, and the Wish SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Ticks double as
// animation frames.
type TickMsg time.Time

// defaultTickRate is used when the configured rate is not positive.
const defaultTickRate = 60

// frameInterval converts a tick rate to the delay between ticks.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next tick. The model issues one only while the
// session is running, so ticks never overlap.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
