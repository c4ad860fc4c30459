package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const toastDuration = 2 * time.Second

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

// savedMsg reports the result of persisting overrides.
type savedMsg struct {
	widget string
	err    error
}
