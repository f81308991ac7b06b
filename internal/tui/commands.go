package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// waitForConfigChange waits for config reloads from the watcher.
// The closure captures the watcher so a later Stop cannot race the read.
func (m *Model) waitForConfigChange() tea.Cmd {
	capturedWatcher := m.watcher
	if capturedWatcher == nil {
		return nil
	}

	return func() tea.Msg {
		event, ok := <-capturedWatcher.Changes()
		if !ok {
			return nil
		}
		return configChangedMsg{cfg: event.Config, err: event.Err}
	}
}
