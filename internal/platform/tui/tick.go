// Package tui provides the Bubble Tea integration for the platformer.
// It handles the terminal UI loop, input mapping and level hot reload.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// LevelsChangedMsg reports a level file that changed on disk.
type LevelsChangedMsg struct {
	Path string
}

// waitForChange returns a command that delivers the next watcher event.
// It yields nil once the channel is closed, which ends the watch loop.
func waitForChange(events <-chan string) tea.Cmd {
	return func() tea.Msg {
		path, ok := <-events
		if !ok {
			return nil
		}
		return LevelsChangedMsg{Path: path}
	}
}
