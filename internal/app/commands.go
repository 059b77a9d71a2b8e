package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// expireMessage creates a command to clear status message seq after d
func expireMessage(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MessageExpiredMsg{Seq: seq}
	})
}
