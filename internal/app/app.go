// Package app wires the editor together: the key-driven controller, the
// Bubbletea model around it and the interactive and scripted sessions.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/willibrandon/scribe/internal/logger"
	"github.com/willibrandon/scribe/internal/ui/terminal"
)

// DefaultMessageTimeout is how long a status message stays visible.
const DefaultMessageTimeout = 4 * time.Second

// Model represents the main Bubbletea application model
type Model struct {
	ctrl *Controller
	grid *terminal.Grid

	messageTimeout time.Duration
	scheduled      int
	quitting       bool
}

// NewModel creates a model rendering grid, the painter of ctrl.
func NewModel(ctrl *Controller, grid *terminal.Grid) *Model {
	return &Model{
		ctrl:           ctrl,
		grid:           grid,
		messageTimeout: DefaultMessageTimeout,
	}
}

// SetMessageTimeout changes how long status messages stay visible. Zero keeps
// them until replaced.
func (m *Model) SetMessageTimeout(d time.Duration) {
	m.messageTimeout = d
}

// Controller returns the controller driven by the model.
func (m *Model) Controller() *Controller {
	return m.ctrl
}

// Quitting reports whether the model asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Init schedules the expiry of the startup message
func (m *Model) Init() tea.Cmd {
	return m.scheduleExpiry()
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.ctrl.HandleKey(msg) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.scheduleExpiry()

	case MessageExpiredMsg:
		m.ctrl.ExpireMessage(msg.Seq)
		return m, nil

	case tea.WindowSizeMsg:
		// The layout is fixed at startup.
		logger.Debug("window size changed", "width", msg.Width, "height", msg.Height,
			"layout", m.ctrl.Screen().String())
		return m, nil
	}

	return m, nil
}

// scheduleExpiry starts the timer of a message that appeared since the last
// call.
func (m *Model) scheduleExpiry() tea.Cmd {
	seq := m.ctrl.MessageSeq()
	if m.messageTimeout <= 0 || seq == m.scheduled || m.ctrl.Status().Message() == "" {
		return nil
	}
	m.scheduled = seq
	return expireMessage(seq, m.messageTimeout)
}

// View renders the application UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.grid.View()
}
