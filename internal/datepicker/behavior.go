package datepicker

import (
	"github.com/MikeBiancalana/datepicker/internal/caldate"
	"github.com/MikeBiancalana/datepicker/internal/dom"
)

// Behavior returns the widget's event bindings keyed by event kind and role.
// Hosts attach it to their document with dom.Document.Listen.
func (p *Picker) Behavior() *dom.Behavior {
	click := func(fn func(*dom.Element) error) dom.Handler {
		return func(el *dom.Element, _ *dom.Event) error { return fn(el) }
	}

	return dom.NewBehavior().
		On(dom.Click, RoleToggle, click(p.toggleCalendar)).
		On(dom.Click, RoleDate, click(p.selectDate)).
		On(dom.Click, RoleMonth, click(p.selectMonth)).
		On(dom.Click, RoleYear, click(p.selectYear)).
		On(dom.Click, RolePreviousMonth, p.clickMove(addMonths(-1))).
		On(dom.Click, RoleNextMonth, p.clickMove(addMonths(1))).
		On(dom.Click, RolePreviousYear, p.clickMove(addYears(-1))).
		On(dom.Click, RoleNextYear, p.clickMove(addYears(1))).
		On(dom.Click, RolePreviousYearChunk, click(func(el *dom.Element) error {
			return p.displayYearChunk(el, -caldate.YearChunk)
		})).
		On(dom.Click, RoleNextYearChunk, click(func(el *dom.Element) error {
			return p.displayYearChunk(el, caldate.YearChunk)
		})).
		On(dom.Click, RoleMonthSelection, click(p.renderMonthSelection)).
		On(dom.Click, RoleYearSelection, click(p.displayYearSelection)).
		On(dom.KeyDown, RoleDateFocused, dom.Keymap(map[string]dom.Handler{
			"Up":             p.keyMove(addDays(-7)),
			"ArrowUp":        p.keyMove(addDays(-7)),
			"Down":           p.keyMove(addDays(7)),
			"ArrowDown":      p.keyMove(addDays(7)),
			"Left":           p.keyMove(addDays(-1)),
			"ArrowLeft":      p.keyMove(addDays(-1)),
			"Right":          p.keyMove(addDays(1)),
			"ArrowRight":     p.keyMove(addDays(1)),
			"Home":           p.keyMove(startOfWeek),
			"End":            p.keyMove(endOfWeek),
			"PageDown":       p.keyMove(addMonths(1)),
			"PageUp":         p.keyMove(addMonths(-1)),
			"Shift+PageDown": p.keyMove(addYears(1)),
			"Shift+PageUp":   p.keyMove(addYears(-1)),
		})).
		On(dom.KeyDown, RoleCalendar, dom.Keymap(map[string]dom.Handler{
			"Escape": p.handleEscape,
		})).
		On(dom.KeyDown, RoleToggle, func(el *dom.Element, ev *dom.Event) error {
			if ev.Key != dom.KeySpace && ev.Key != dom.KeyEnter {
				return nil
			}
			ev.PreventDefault()
			return p.toggleCalendar(el)
		}).
		On(dom.FocusOut, RoleInput, func(el *dom.Element, _ *dom.Event) error {
			return p.validateInput(el)
		}).
		On(dom.FocusOut, RoleDatePicker, p.handleFocusOut)
}
