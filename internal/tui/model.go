package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeBiancalana/datepicker/internal/caldate"
	"github.com/MikeBiancalana/datepicker/internal/config"
	"github.com/MikeBiancalana/datepicker/internal/datepicker"
	"github.com/MikeBiancalana/datepicker/internal/dom"
	"github.com/MikeBiancalana/datepicker/internal/logger"
	"github.com/MikeBiancalana/datepicker/internal/perf"
	"github.com/MikeBiancalana/datepicker/internal/sync"
	"github.com/MikeBiancalana/datepicker/internal/tui/components"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Minimum terminal dimensions
const (
	MinTerminalWidth  = 36
	MinTerminalHeight = 18
)

// roleAccept marks the host's own "Done" button, which sits outside the
// widget so that tabbing to it moves focus out of the date picker.
const roleAccept dom.Role = "tui-accept"

// Options configures a Model.
type Options struct {
	// Value is the initial input text. Config.InitialValue is used when empty.
	Value string

	Config  *config.Config
	Watcher *sync.Watcher

	// Now is the clock used for today and two-digit year expansion.
	Now func() time.Time
}

// Model hosts a single date picker widget in the terminal. The widget lives
// in a dom.Document; the model turns key presses into document events and
// draws the element tree with lipgloss.
type Model struct {
	doc     *dom.Document
	picker  *datepicker.Picker
	parts   datepicker.Parts
	accept  *dom.Element
	watcher *sync.Watcher

	input     textinput.Model
	statusBar *components.StatusBar
	cfg       *config.Config
	styles    styles

	renders *perf.Recorder
	keys    *perf.OpCounter

	// typeahead holds the letters typed while a month or year grid is shown.
	typeahead string

	width            int
	height           int
	terminalTooSmall bool

	accepted  bool
	cancelled bool
	lastError error
}

// NewModel builds the document, enhances the widget and focuses its input.
func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	value := opts.Value
	if value == "" {
		value = cfg.InitialValue
	}

	renders := perf.NewRecorder("tui.render", logger.GetLogger(), 16*time.Millisecond)

	pickerOpts := []datepicker.Option{datepicker.WithRenderRecorder(renders)}
	if opts.Now != nil {
		pickerOpts = append(pickerOpts, datepicker.WithNow(opts.Now))
	}

	m := &Model{
		doc:       dom.NewDocument(),
		picker:    datepicker.New(pickerOpts...),
		watcher:   opts.Watcher,
		statusBar: components.NewStatusBar(),
		cfg:       cfg,
		styles:    newStyles(cfg.Theme),
		renders:   renders,
		keys:      perf.NewOpCounter("tui.keys"),
	}

	marker := datepicker.NewMarker(value)
	m.accept = dom.NewElement("button", roleAccept).SetText("Done")
	m.doc.Body.Append(marker, m.accept)

	if err := m.picker.Init(m.doc.Body); err != nil {
		return nil, fmt.Errorf("failed to initialize date picker: %w", err)
	}
	m.doc.Listen(m.picker.Behavior())
	m.doc.OnError = func(err error) {
		logger.Error("tui: widget handler failed", "error", err)
		m.lastError = err
	}
	m.doc.Measure = func(el *dom.Element) int {
		if el == m.parts.Root {
			return lipgloss.Height(m.inputLine())
		}
		return 0
	}

	parts, err := datepicker.Locate(marker)
	if err != nil {
		return nil, err
	}
	m.parts = parts

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "MM/DD/YYYY"
	ti.CharLimit = 10
	ti.Width = 12
	ti.SetValue(value)
	m.input = ti

	m.doc.Focus(parts.Input)
	m.syncInput()

	return m, nil
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}

	if m.watcher != nil {
		if err := m.watcher.Start(); err != nil {
			logger.Warn("tui: config watcher not started", "error", err)
		} else {
			cmds = append(cmds, m.waitForConfigChange())
		}
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case configChangedMsg:
		return m.handleConfigChanged(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.terminalTooSmall {
		return m.terminalTooSmallView()
	}
	if m.accepted || m.cancelled {
		return ""
	}

	sections := []string{
		m.styles.title.Render("Choose a date"),
		m.inputLine(),
	}

	if msg := m.parts.Input.ValidationMessage(); msg != "" {
		sections = append(sections, m.styles.err.Render(msg))
	}

	if m.parts.Calendar.Visible() {
		sections = append(sections, m.styles.box.Render(m.renderTree(m.frame())))
	}

	sections = append(sections, m.renderButton(m.accept))

	if m.lastError != nil {
		sections = append(sections, m.styles.err.Render("Error: "+m.lastError.Error()))
	}

	if m.cfg.ShowStatus {
		m.statusBar.SetAnnouncement(m.parts.Status.Text())
	} else {
		m.statusBar.SetAnnouncement("")
	}
	m.statusBar.SetHints(m.hints())
	sections = append(sections, m.statusBar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// inputLine renders the text input followed by the calendar toggle.
func (m *Model) inputLine() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.label.Render("Date "),
		m.input.View(),
		" ",
		m.renderButton(m.parts.Toggle),
	)
}

// hints returns the key help for the focused part of the widget.
func (m *Model) hints() string {
	view, _ := datepicker.CurrentView(m.parts.Root)
	switch {
	case m.doc.ActiveElement() == m.parts.Input:
		return "enter:accept tab:calendar esc:cancel"
	case view == datepicker.ViewDays:
		return "arrows:day/week pgup/pgdn:month ctrl+pgup/pgdn:year home/end:week m:month y:year enter:select esc:close"
	case view == datepicker.ViewMonths:
		return "arrows:move type:jump enter:select esc:close"
	case view == datepicker.ViewYears:
		return "arrows:move [/]:12 years type:jump enter:select esc:close"
	}
	return "enter:open calendar tab:next q:quit"
}

// terminalTooSmallView renders the message when terminal is too small
func (m *Model) terminalTooSmallView() string {
	title := "Terminal Too Small"
	currentSize := fmt.Sprintf("Current: %dx%d", m.width, m.height)
	requiredSize := fmt.Sprintf("Required: %dx%d or larger", MinTerminalWidth, MinTerminalHeight)

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.cfg.Theme.Accent)).
		Padding(0, 1).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(strings.Join([]string{title, currentSize, requiredSize}, "\n\n"))
}

// Value returns the accepted date, or false if the user cancelled.
func (m *Model) Value() (string, bool) {
	if !m.accepted {
		return "", false
	}
	return m.parts.Input.Value(), true
}

// Document exposes the hosted document.
func (m *Model) Document() *dom.Document {
	return m.doc
}

// Parts exposes the hosted widget's elements.
func (m *Model) Parts() datepicker.Parts {
	return m.parts
}

// syncInput mirrors the input element into the text input model, including
// whether it holds focus.
func (m *Model) syncInput() tea.Cmd {
	if v := m.parts.Input.Value(); v != m.input.Value() {
		m.input.SetValue(v)
		m.input.CursorEnd()
	}
	if m.doc.ActiveElement() == m.parts.Input {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// acceptValue finishes the program when the input holds a valid date, or
// flags the input otherwise.
func (m *Model) acceptValue() tea.Cmd {
	value := m.parts.Input.Value()
	if err := caldate.Validate(value); err != nil {
		logger.Debug("tui: rejected value", "value", value)
		if m.parts.Input.ValidationMessage() == "" {
			m.parts.Input.SetCustomValidity(caldate.ValidationMessage)
		}
		m.doc.Focus(m.parts.Input)
		return m.syncInput()
	}

	m.accepted = true
	m.finish()
	return tea.Quit
}

func (m *Model) cancel() tea.Cmd {
	m.cancelled = true
	m.finish()
	return tea.Quit
}

func (m *Model) finish() {
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
	m.renders.LogStats()
	logger.Debug("tui: finished", "accepted", m.accepted, "keys", m.keys.Value())
}

// configChangedMsg carries a reloaded config, or the error that stopped it
// from loading.
type configChangedMsg struct {
	cfg *config.Config
	err error
}

// frame returns the calendar's current frame. Renders replace the frame, so
// it is looked up each time rather than kept.
func (m *Model) frame() *dom.Element {
	if f := m.parts.Calendar.Query(datepicker.RoleFrame); f != nil {
		return f
	}
	return dom.NewElement("div", datepicker.RoleFrame)
}
