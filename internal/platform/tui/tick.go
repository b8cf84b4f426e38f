// Package tui provides the Bubble Tea front end for the game: the board,
// trivia, completion and leaderboard screens, the category picker, and
// the jukebox controls. It owns the terminal loop and feeds input and
// clock events into the session controller.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the session clock by one second.
type TickMsg time.Time

// tickCmd schedules the next session tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
