package tui

import (
	"github.com/MikeBiancalana/datepicker/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// Message Handlers
//
// These methods handle specific message types, keeping the main Update()
// function clean and focused. Each handler follows the pattern:
//
//   func (m *Model) handle<MessageType>(msg <MessageType>) (tea.Model, tea.Cmd)

// handleWindowSize handles terminal resize events
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.terminalTooSmall = msg.Width < MinTerminalWidth || msg.Height < MinTerminalHeight

	if m.statusBar != nil {
		m.statusBar.SetWidth(msg.Width)
	}

	return m, nil
}

// handleConfigChanged applies a reloaded config and keeps listening
func (m *Model) handleConfigChanged(msg configChangedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.lastError = msg.err
		return m, m.waitForConfigChange()
	}

	if msg.cfg != nil {
		logger.Debug("tui: applying reloaded config", "showStatus", msg.cfg.ShowStatus)
		m.cfg = msg.cfg
		m.styles = newStyles(msg.cfg.Theme)
		m.lastError = nil
	}

	return m, m.waitForConfigChange()
}
