package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	announcementStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Italic(true)
)

// StatusBar shows the widget's live status announcement above a line of
// key hints.
type StatusBar struct {
	width        int
	announcement string
	hints        string
}

// NewStatusBar creates a new status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetWidth sets the width of the status bar
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// SetAnnouncement sets the status text announced by the widget
func (sb *StatusBar) SetAnnouncement(text string) {
	sb.announcement = text
}

// SetHints sets the key hints
func (sb *StatusBar) SetHints(hints string) {
	sb.hints = hints
}

// View renders the status bar
func (sb *StatusBar) View() string {
	hints := sb.hints

	// Truncate if too long
	if sb.width > 5 && len(hints) > sb.width-2 {
		hints = hints[:sb.width-5] + "..."
	}

	bar := statusBarStyle
	if sb.width > 0 {
		bar = bar.Width(sb.width)
	}

	if sb.announcement == "" {
		return bar.Render(hints)
	}

	announcement := announcementStyle
	if sb.width > 0 {
		announcement = announcement.Width(sb.width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, announcement.Render(sb.announcement), bar.Render(hints))
}
