// Package tui runs Xtarda Rescue in a terminal with Bubble Tea: the game
// loop, key mapping, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/xtarda-rescue/internal/core"
)

// TickMsg advances the simulation by one step.
type TickMsg time.Time

// frameInterval is the wall time of one simulation step.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next step.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
