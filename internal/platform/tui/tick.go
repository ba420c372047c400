// Package tui runs Meme Run in a terminal with Bubble Tea, locally or over
// SSH. It owns key mapping, frame pacing and painting; the game owns rules.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to run a simulation step if one is due.
type TickMsg time.Time

// tickCmd schedules the next TickMsg for the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
