package tui

import (
	"strings"
	"time"

	"github.com/MikeBiancalana/datepicker/internal/caldate"
	"github.com/MikeBiancalana/datepicker/internal/config"
	"github.com/MikeBiancalana/datepicker/internal/datepicker"
	"github.com/MikeBiancalana/datepicker/internal/dom"
	"github.com/charmbracelet/lipgloss"
)

// Cell widths per kind of grid button.
const (
	dayCellWidth   = 4
	monthCellWidth = 11
	yearCellWidth  = 6
)

// navLabels are drawn for buttons that carry only an aria label.
var navLabels = map[dom.Role]string{
	datepicker.RolePreviousYear:      "«",
	datepicker.RolePreviousMonth:     "‹",
	datepicker.RoleNextMonth:         "›",
	datepicker.RoleNextYear:          "»",
	datepicker.RolePreviousYearChunk: "‹ earlier",
	datepicker.RoleNextYearChunk:     "later ›",
	datepicker.RoleToggle:            "[cal]",
}

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	err      lipgloss.Style
	box      lipgloss.Style
	button   lipgloss.Style
	header   lipgloss.Style
	muted    lipgloss.Style
	current  lipgloss.Style
	selected lipgloss.Style
	focused  lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),
		err: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)).
			Italic(true),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Accent)).
			Padding(0, 1),
		button: lipgloss.NewStyle(),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)),
		muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),
		current: lipgloss.NewStyle().
			Underline(true),
		selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Selected)).
			Bold(true),
		focused: lipgloss.NewStyle().
			Reverse(true).
			Foreground(lipgloss.Color(theme.Focus)),
	}
}

// renderTree draws an element subtree: rows side by side, everything else
// stacked.
func (m *Model) renderTree(el *dom.Element) string {
	switch {
	case el.Tag == "button":
		return m.renderButton(el)

	case el.HasRole(datepicker.RoleColumnHeader):
		return m.styles.header.
			Width(dayCellWidth).
			Align(lipgloss.Right).
			Render(el.Text())

	case el.HasRole(datepicker.RoleRow):
		return lipgloss.JoinHorizontal(lipgloss.Top, m.renderChildren(el)...)

	case el.HasRole(datepicker.RoleCell):
		children := m.renderChildren(el)
		if len(children) == 0 {
			return el.Text()
		}
		return strings.Join(children, " ")
	}

	children := m.renderChildren(el)
	if len(children) == 0 {
		return el.Text()
	}
	return lipgloss.JoinVertical(lipgloss.Center, children...)
}

func (m *Model) renderChildren(el *dom.Element) []string {
	var out []string
	for _, c := range el.Children() {
		if c.Hidden() {
			continue
		}
		out = append(out, m.renderTree(c))
	}
	return out
}

// renderButton draws a button, highlighting it when focused.
func (m *Model) renderButton(el *dom.Element) string {
	label := el.Text()
	style := m.styles.button

	for role, symbol := range navLabels {
		if el.HasRole(role) && label == "" {
			label = symbol
		}
	}

	switch {
	case el.HasRole(datepicker.RoleDate):
		style = style.Width(dayCellWidth).Align(lipgloss.Right)
		if el.HasRole(datepicker.RoleDatePreviousMonth) || el.HasRole(datepicker.RoleDateNextMonth) {
			style = style.Inherit(m.styles.muted)
		}
		if el.AttrOr(datepicker.AttrValue) == m.selectedValue() {
			style = style.Inherit(m.styles.selected)
		}
		if el.HasRole(datepicker.RoleDateFocused) {
			style = style.Inherit(m.styles.current)
		}
	case el.HasRole(datepicker.RoleMonth):
		style = style.Width(monthCellWidth).Align(lipgloss.Center)
	case el.HasRole(datepicker.RoleYear):
		style = style.Width(yearCellWidth).Align(lipgloss.Center)
	case el.HasRole(datepicker.RoleMonthSelection), el.HasRole(datepicker.RoleYearSelection):
		style = style.Inherit(m.styles.header)
	case el.HasRole(datepicker.RolePreviousYear), el.HasRole(datepicker.RolePreviousMonth),
		el.HasRole(datepicker.RoleNextMonth), el.HasRole(datepicker.RoleNextYear):
		style = style.Padding(0, 1)
	case el.HasRole(roleAccept):
		label = "[ " + label + " ]"
	}

	if el == m.doc.ActiveElement() {
		style = m.styles.focused.Inherit(style)
	}
	return style.Render(label)
}

// selectedValue returns the input's date in MM/DD/YYYY form, or "" when the
// input does not hold a valid date.
func (m *Model) selectedValue() string {
	value := m.parts.Input.Value()
	if !caldate.IsValid(value) {
		return ""
	}
	d, ok := caldate.ParseLenient(value, false, time.Time{})
	if !ok {
		return ""
	}
	return d.Format()
}
