package tui

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/MikeBiancalana/datepicker/internal/datepicker"
	"github.com/MikeBiancalana/datepicker/internal/dom"
	"github.com/MikeBiancalana/datepicker/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// Keyboard Handlers
//
// Every key press is first offered to the widget as a keydown event on the
// focused element. When no handler prevents the default, the host runs the
// action a browser would: typing into the input, moving focus on tab, and
// clicking buttons on enter or space.

// domKeys maps terminal key names to widget keydown events.
var domKeys = map[string]dom.Event{
	"up":          {Key: dom.KeyArrowUp},
	"down":        {Key: dom.KeyArrowDown},
	"left":        {Key: dom.KeyArrowLeft},
	"right":       {Key: dom.KeyArrowRight},
	"home":        {Key: dom.KeyHome},
	"end":         {Key: dom.KeyEnd},
	"pgup":        {Key: dom.KeyPageUp},
	"pgdown":      {Key: dom.KeyPageDown},
	"ctrl+pgup":   {Key: dom.KeyPageUp, Shift: true},
	"ctrl+pgdown": {Key: dom.KeyPageDown, Shift: true},
	"esc":         {Key: dom.KeyEscape},
	"enter":       {Key: dom.KeyEnter},
	" ":           {Key: dom.KeySpace},
	"tab":         {Key: dom.KeyTab},
	"shift+tab":   {Key: dom.KeyTab, Shift: true},
}

// handleKeyPress is the main keyboard input dispatcher
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.keys.Inc()
	key := msg.String()

	if key == "ctrl+c" {
		return m, m.cancel()
	}

	m.lastError = nil
	active := m.doc.ActiveElement()
	viewBefore, _ := datepicker.CurrentView(m.parts.Root)

	var ev *dom.Event
	if template, ok := domKeys[key]; ok {
		e := template
		e.Kind = dom.KeyDown
		e.Target = active
		ev = &e
		if err := m.doc.Dispatch(ev); err != nil {
			logger.Error("tui: keydown handler failed", "key", key, "error", err)
			m.lastError = err
		}
	}

	var cmd tea.Cmd
	if ev == nil || !ev.DefaultPrevented() {
		cmd = m.defaultAction(msg, active, viewBefore)
	}

	if view, _ := datepicker.CurrentView(m.parts.Root); view != viewBefore {
		m.typeahead = ""
	}

	return m, tea.Batch(cmd, m.syncInput())
}

// defaultAction runs the host behavior for a key nothing in the widget claimed.
func (m *Model) defaultAction(msg tea.KeyMsg, active *dom.Element, view datepicker.View) tea.Cmd {
	key := msg.String()

	switch key {
	case "tab", "shift+tab":
		m.typeahead = ""
		m.doc.FocusNext(key == "shift+tab")
		return nil
	}

	if active == m.parts.Input {
		return m.handleInputKeys(msg)
	}

	switch key {
	case "esc", "q":
		if view == datepicker.ViewClosed {
			return m.cancel()
		}
		return nil

	case "enter", " ":
		m.typeahead = ""
		if active == m.accept {
			return m.acceptValue()
		}
		if active.Tag == "button" {
			m.click(active)
		}
		return nil

	case "up", "down", "left", "right":
		m.typeahead = ""
		if view == datepicker.ViewMonths || view == datepicker.ViewYears {
			m.moveInGrid(active, key)
		}
		return nil
	}

	if msg.Type != tea.KeyRunes {
		return nil
	}

	switch view {
	case datepicker.ViewDays:
		m.handleDayShortcut(key)
	case datepicker.ViewMonths, datepicker.ViewYears:
		m.handleShortcut(key)
	}
	return nil
}

// handleInputKeys handles keys typed while the text input is focused. Esc
// closes an open calendar before it cancels.
func (m *Model) handleInputKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.acceptValue()
	case "esc":
		if m.parts.Calendar.Visible() {
			m.click(m.parts.Toggle)
			return nil
		}
		return m.cancel()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.parts.Input.SetValue(m.input.Value())
	return cmd
}

// handleDayShortcut opens the month or year grid from the day grid.
func (m *Model) handleDayShortcut(key string) {
	switch key {
	case "m":
		m.click(m.frame().Query(datepicker.RoleMonthSelection))
	case "y":
		m.click(m.frame().Query(datepicker.RoleYearSelection))
	}
}

// handleShortcut pages year chunks or jumps to a cell by type-ahead.
func (m *Model) handleShortcut(key string) {
	switch key {
	case "[":
		m.typeahead = ""
		m.click(m.frame().Query(datepicker.RolePreviousYearChunk))
		return
	case "]":
		m.typeahead = ""
		m.click(m.frame().Query(datepicker.RoleNextYearChunk))
		return
	}

	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return
		}
	}
	m.typeahead += strings.ToLower(key)

	cells := m.gridButtons()
	names := make([]string, len(cells))
	for i, c := range cells {
		names[i] = strings.ToLower(c.Text())
	}

	matches := fuzzy.Find(m.typeahead, names)
	if len(matches) == 0 {
		logger.Debug("tui: no type-ahead match", "pattern", m.typeahead)
		m.typeahead = ""
		return
	}
	m.doc.Focus(cells[matches[0].Index])
}

// click dispatches a click on el, as a mouse or enter press would.
func (m *Model) click(el *dom.Element) {
	if el == nil {
		return
	}
	if err := m.doc.Dispatch(&dom.Event{Kind: dom.Click, Target: el}); err != nil {
		logger.Error("tui: click handler failed", "error", err)
		m.lastError = err
	}
}

// gridButtons returns the month or year buttons currently shown.
func (m *Model) gridButtons() []*dom.Element {
	if cells := m.frame().QueryAll(datepicker.RoleMonth); len(cells) > 0 {
		return cells
	}
	return m.frame().QueryAll(datepicker.RoleYear)
}

// moveInGrid moves focus across the three-column month or year grid. From
// outside the grid it lands on the cell for the focus date.
func (m *Model) moveInGrid(active *dom.Element, key string) {
	cells := m.gridButtons()
	if len(cells) == 0 {
		return
	}

	idx := -1
	for i, c := range cells {
		if c == active {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.doc.Focus(cells[m.currentGridIndex(cells)])
		return
	}

	switch key {
	case "left":
		idx--
	case "right":
		idx++
	case "up":
		idx -= 3
	case "down":
		idx += 3
	}
	if idx >= 0 && idx < len(cells) {
		m.doc.Focus(cells[idx])
	}
}

// currentGridIndex finds the cell holding the focus date's month or year.
func (m *Model) currentGridIndex(cells []*dom.Element) int {
	focus, ok, err := datepicker.FocusDate(m.parts.Root)
	if err != nil || !ok {
		return 0
	}
	for i, c := range cells {
		if c.HasRole(datepicker.RoleMonth) && c.AttrOr(datepicker.AttrValue) == strconv.Itoa(focus.MonthIndex()) {
			return i
		}
		if c.HasRole(datepicker.RoleYear) && strings.TrimSpace(c.Text()) == strconv.Itoa(focus.Year()) {
			return i
		}
	}
	return 0
}
