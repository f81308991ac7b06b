// Package datepicker turns a plain text input into a keyboard-navigable
// calendar. A widget keeps its focus date on the calendar element, renders a
// day, month or year grid into the calendar frame, and writes the chosen day
// back into the input as MM/DD/YYYY.
package datepicker

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/MikeBiancalana/datepicker/internal/caldate"
	"github.com/MikeBiancalana/datepicker/internal/dom"
	"github.com/MikeBiancalana/datepicker/internal/logger"
	"github.com/MikeBiancalana/datepicker/internal/perf"
	"github.com/rs/xid"
)

const renderThreshold = 16 * time.Millisecond

// Picker enhances widget markers and handles their events. It holds no
// per-widget state; each widget's focus date lives on its own calendar.
type Picker struct {
	now     func() time.Time
	log     *slog.Logger
	renders *perf.Recorder
}

// Option configures a Picker.
type Option func(*Picker)

// WithNow sets the clock used for "today" and two-digit year expansion.
func WithNow(now func() time.Time) Option {
	return func(p *Picker) {
		p.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Picker) {
		p.log = l
	}
}

// WithRenderRecorder records every render's duration into r.
func WithRenderRecorder(r *perf.Recorder) Option {
	return func(p *Picker) {
		p.renders = r
	}
}

// New creates a Picker.
func New(opts ...Option) *Picker {
	p := &Picker{
		now: time.Now,
		log: logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Picker) today() caldate.Date {
	return caldate.Today(p.now())
}

// Init enhances every undecorated date picker marker in root's subtree,
// root included. A marker must contain an input carrying RoleTextInput.
func (p *Picker) Init(root *dom.Element) error {
	for _, el := range root.QueryAll(RoleDatePicker) {
		if el.HasRole(RoleInitialized) {
			continue
		}
		if err := p.enhance(el); err != nil {
			return err
		}
	}
	return nil
}

func (p *Picker) enhance(datePicker *dom.Element) error {
	input := datePicker.QueryTag("input", RoleTextInput)
	if input == nil {
		return fmt.Errorf("%w: %s is missing inner %s", ErrStructural, RoleDatePicker, RoleTextInput)
	}

	id := xid.New().String()
	datePicker.SetAttr(AttrID, id)
	datePicker.AddRole(RoleInitialized)
	input.AddRole(RoleInput)

	toggle := dom.NewElement("div", RoleToggle).
		SetAttr(AttrTabIndex, "0").
		SetAttr(AttrRole, "button").
		SetAttr(AttrAriaLabel, "Display calendar")

	calendar := dom.NewElement("div", RoleCalendar).
		SetAttr(AttrTabIndex, "-1").
		Append(dom.NewElement("div", RoleFrame))
	calendar.SetHidden(true)

	status := dom.NewElement("div", RoleStatus).
		SetAttr(AttrRole, "status").
		SetAttr(AttrAriaLive, "polite")

	datePicker.Append(toggle, calendar, status)

	p.log.Debug("datepicker: enhanced", "widget", id)
	return nil
}

// View is the content currently shown by a widget's calendar.
type View int

const (
	ViewClosed View = iota
	ViewDays
	ViewMonths
	ViewYears
)

func (v View) String() string {
	switch v {
	case ViewDays:
		return "days"
	case ViewMonths:
		return "months"
	case ViewYears:
		return "years"
	default:
		return "closed"
	}
}

// CurrentView reports what the widget containing el is showing.
func CurrentView(el *dom.Element) (View, error) {
	els, err := getElements(el)
	if err != nil {
		return ViewClosed, err
	}
	switch {
	case els.calendar.Hidden():
		return ViewClosed, nil
	case els.frame.Query(RoleDayPicker) != nil:
		return ViewDays, nil
	case els.frame.Query(RoleMonthPicker) != nil:
		return ViewMonths, nil
	case els.frame.Query(RoleYearPicker) != nil:
		return ViewYears, nil
	}
	return ViewClosed, nil
}

// FocusDate returns the focus date persisted on the widget's calendar. It
// reports false while the calendar is closed.
func FocusDate(el *dom.Element) (caldate.Date, bool, error) {
	els, err := getElements(el)
	if err != nil {
		return caldate.Date{}, false, err
	}
	v, ok := els.calendar.Attr(AttrValue)
	if !ok {
		return caldate.Date{}, false, nil
	}
	d, ok := caldate.ParseState(v)
	return d, ok, nil
}

// NewMarker returns an undecorated widget marker holding a text input with
// the given initial value, ready for Init.
func NewMarker(value string) *dom.Element {
	input := dom.NewElement("input", RoleTextInput)
	input.SetValue(value)
	return dom.NewElement("div", RoleDatePicker).Append(input)
}

// Parts are the elements of an enhanced widget, for hosts that draw it.
// Every render replaces the frame, so Frame is only current until the next
// event.
type Parts struct {
	Root     *dom.Element
	Input    *dom.Element
	Toggle   *dom.Element
	Calendar *dom.Element
	Frame    *dom.Element
	Status   *dom.Element
}

// Locate finds the parts of the widget containing el.
func Locate(el *dom.Element) (Parts, error) {
	els, err := getElements(el)
	if err != nil {
		return Parts{}, err
	}
	return Parts{
		Root:     els.datePicker,
		Input:    els.input,
		Toggle:   els.toggle,
		Calendar: els.calendar,
		Frame:    els.frame,
		Status:   els.status,
	}, nil
}
