package datepicker

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MikeBiancalana/datepicker/internal/caldate"
	"github.com/MikeBiancalana/datepicker/internal/dom"
)

// focusDate reads the persisted focus date, falling back to today so that
// navigation keeps working even if the state attribute is missing.
func (p *Picker) focusDate(els *elements) caldate.Date {
	if v, ok := els.calendar.Attr(AttrValue); ok {
		if d, ok := caldate.ParseState(v); ok {
			return d
		}
	}
	return p.today()
}

// navigate applies move to the focus date and redraws the day grid.
func (p *Picker) navigate(el *dom.Element, move func(caldate.Date) caldate.Date) error {
	els, err := getElements(el)
	if err != nil {
		return err
	}
	return p.renderCalendar(els.calendar, move(p.focusDate(els)))
}

// displayCalendar opens the calendar on the input's date, or today when the
// input does not hold one.
func (p *Picker) displayCalendar(el *dom.Element) error {
	els, err := getElements(el)
	if err != nil {
		return err
	}
	date, ok := caldate.ParseLenient(els.input.Value(), true, p.now())
	if !ok {
		date = p.today()
	}
	return p.renderCalendar(els.calendar, date)
}

func (p *Picker) hideCalendar(el *dom.Element) error {
	els, err := getElements(el)
	if err != nil {
		return err
	}
	els.calendar.SetHidden(true)
	els.calendar.RemoveAttr(AttrValue)
	els.frame.ReplaceChildren()
	els.status.SetText("")

	p.log.Debug("datepicker: hidden", "widget", els.id())
	return nil
}

func (p *Picker) toggleCalendar(el *dom.Element) error {
	els, err := getElements(el)
	if err != nil {
		return err
	}
	if els.calendar.Hidden() {
		return p.displayCalendar(el)
	}
	return p.hideCalendar(el)
}

// selectDate commits a day cell's value to the input and closes the calendar.
func (p *Picker) selectDate(dateEl *dom.Element) error {
	els, err := getElements(dateEl)
	if err != nil {
		return err
	}

	els.input.SetValue(dateEl.AttrOr(AttrValue))

	if err := p.hideCalendar(els.datePicker); err != nil {
		return err
	}
	if err := p.validateInput(els.datePicker); err != nil {
		return err
	}
	els.input.Focus()

	p.log.Debug("datepicker: selected", "widget", els.id(), "value", els.input.Value())
	return nil
}

func (p *Picker) selectMonth(monthEl *dom.Element) error {
	idx, err := strconv.Atoi(monthEl.AttrOr(AttrValue))
	if err != nil {
		return fmt.Errorf("%w: month cell has no month value", ErrStructural)
	}
	return p.navigate(monthEl, func(d caldate.Date) caldate.Date {
		return d.WithMonth(time.Month(idx + 1))
	})
}

func (p *Picker) selectYear(yearEl *dom.Element) error {
	year, err := strconv.Atoi(strings.TrimSpace(yearEl.Text()))
	if err != nil {
		return fmt.Errorf("%w: year cell has no year", ErrStructural)
	}
	return p.navigate(yearEl, func(d caldate.Date) caldate.Date {
		return d.WithYear(year)
	})
}

func (p *Picker) displayYearSelection(el *dom.Element) error {
	els, err := getElements(el)
	if err != nil {
		return err
	}
	return p.renderYearSelection(el, p.focusDate(els).Year())
}

// displayYearChunk pages the year grid by delta years, reading the current
// chunk from the first rendered year.
func (p *Picker) displayYearChunk(el *dom.Element, delta int) error {
	els, err := getElements(el)
	if err != nil {
		return err
	}
	if els.firstYear == nil {
		return fmt.Errorf("%w: year grid has no years", ErrStructural)
	}
	first, err := strconv.Atoi(strings.TrimSpace(els.firstYear.Text()))
	if err != nil {
		return fmt.Errorf("%w: year cell has no year", ErrStructural)
	}
	return p.renderYearSelection(el, first+delta)
}

// validateInput sets the validation message on malformed input and clears
// it on valid input, leaving messages set by anything else alone.
func (p *Picker) validateInput(el *dom.Element) error {
	els, err := getElements(el)
	if err != nil {
		return err
	}

	invalid := caldate.Validate(els.input.Value()) != nil
	current := els.input.ValidationMessage()

	if invalid && current == "" {
		els.input.SetCustomValidity(caldate.ValidationMessage)
	}
	if !invalid && current == caldate.ValidationMessage {
		els.input.SetCustomValidity("")
	}
	return nil
}

func (p *Picker) handleEscape(el *dom.Element, ev *dom.Event) error {
	els, err := getElements(el)
	if err != nil {
		return err
	}
	if err := p.hideCalendar(el); err != nil {
		return err
	}
	els.input.Focus()
	ev.PreventDefault()
	return nil
}

// handleFocusOut closes the calendar once focus has left the whole widget.
func (p *Picker) handleFocusOut(el *dom.Element, ev *dom.Event) error {
	els, err := getElements(el)
	if err != nil {
		return err
	}
	if els.datePicker.Contains(ev.RelatedTarget) || els.calendar.Hidden() {
		return nil
	}
	return p.hideCalendar(el)
}

// keyMove wraps a focus date move as a keydown handler that suppresses the
// host's default action.
func (p *Picker) keyMove(move func(caldate.Date) caldate.Date) dom.Handler {
	return func(el *dom.Element, ev *dom.Event) error {
		if err := p.navigate(el, move); err != nil {
			return err
		}
		ev.PreventDefault()
		return nil
	}
}

// clickMove wraps a focus date move as a click handler.
func (p *Picker) clickMove(move func(caldate.Date) caldate.Date) dom.Handler {
	return func(el *dom.Element, _ *dom.Event) error {
		return p.navigate(el, move)
	}
}

func addDays(n int) func(caldate.Date) caldate.Date {
	return func(d caldate.Date) caldate.Date { return d.AddDays(n) }
}

func addMonths(n int) func(caldate.Date) caldate.Date {
	return func(d caldate.Date) caldate.Date { return d.AddMonths(n) }
}

func addYears(n int) func(caldate.Date) caldate.Date {
	return func(d caldate.Date) caldate.Date { return d.AddYears(n) }
}

func startOfWeek(d caldate.Date) caldate.Date { return d.StartOfWeek() }

func endOfWeek(d caldate.Date) caldate.Date { return d.EndOfWeek() }
