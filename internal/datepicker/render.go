package datepicker

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MikeBiancalana/datepicker/internal/caldate"
	"github.com/MikeBiancalana/datepicker/internal/dom"
	"github.com/MikeBiancalana/datepicker/internal/perf"
)

// Status messages announced through the widget's status region.
const (
	StatusInstructions = "You can navigate by day using left and right arrows; " +
		"weeks by using up and down arrows; months by using page up and page down keys; " +
		"years by using shift plus page up and shift plus page down; " +
		"home and end keys navigate to the beginning and end of a week."
	StatusSelectMonth = "Select a month."
)

var weekdayHeaders = []struct {
	abbr string
	day  time.Weekday
}{
	{"S", time.Sunday},
	{"M", time.Monday},
	{"T", time.Tuesday},
	{"W", time.Wednesday},
	{"Th", time.Thursday},
	{"F", time.Friday},
	{"S", time.Saturday},
}

// renderCalendar draws the day grid for date, reveals the calendar when it
// was hidden, persists date as the focus date and focuses its cell.
func (p *Picker) renderCalendar(el *dom.Element, date caldate.Date) error {
	defer perf.NewTimer("datepicker.renderCalendar", p.log, renderThreshold).Into(p.renders).Stop()

	els, err := getElements(el)
	if err != nil {
		return err
	}

	els.calendar.Focus()

	els.frame.ReplaceWith(dom.NewElement("div", RoleFrame).Append(dayView(date)))

	if els.calendar.Hidden() {
		els.status.SetText(StatusInstructions)
		els.calendar.SetStyle("top", strconv.Itoa(els.datePicker.Height()))
		els.calendar.SetHidden(false)
	} else {
		els.status.SetText(fmt.Sprintf("%s %d", date.Month(), date.Year()))
	}

	els.calendar.SetAttr(AttrValue, date.Format())

	focused := els.calendar.Query(RoleDateFocused)
	if focused == nil {
		return fmt.Errorf("%w: rendered grid has no focused date", ErrStructural)
	}
	focused.Focus()

	p.log.Debug("datepicker: rendered days", "widget", els.id(), "focus", date.Format())
	return nil
}

func dayView(date caldate.Date) *dom.Element {
	monthLabel := date.Month().String()

	nav := func(role dom.Role, label string) *dom.Element {
		return cell(dom.NewElement("button", role).
			SetAttr(AttrTabIndex, "-1").
			SetAttr(AttrAriaLabel, label))
	}

	labels := dom.NewElement("div", RoleCell).Append(
		dom.NewElement("button", RoleMonthSelection).
			SetAttr(AttrTabIndex, "-1").
			SetAttr(AttrAriaLabel, monthLabel+". Click to select month").
			SetText(monthLabel),
		dom.NewElement("button", RoleYearSelection).
			SetAttr(AttrTabIndex, "-1").
			SetAttr(AttrAriaLabel, strconv.Itoa(date.Year())+". Click to select year").
			SetText(strconv.Itoa(date.Year())),
	)

	header := dom.NewElement("div", RoleRow).Append(
		nav(RolePreviousYear, "Navigate back one year"),
		nav(RolePreviousMonth, "Navigate back one month"),
		labels,
		nav(RoleNextMonth, "Navigate forward one month"),
		nav(RoleNextYear, "Navigate forward one year"),
	)

	weekdays := dom.NewElement("div", RoleRow)
	for _, wd := range weekdayHeaders {
		weekdays.Append(dom.NewElement("div", RoleCell, RoleColumnHeader).
			SetAttr(AttrRole, "columnheader").
			SetAttr(AttrAriaLabel, wd.day.String()).
			SetText(wd.abbr))
	}

	var days []*dom.Element
	for _, c := range caldate.DayGrid(date) {
		days = append(days, dayButton(c))
	}

	return dom.NewElement("div", RoleDayPicker).Append(
		header,
		weekdays,
		dom.NewElement("div", RoleDateGrid).Append(grid(days, 7)...),
	)
}

func dayButton(c caldate.Cell) *dom.Element {
	b := dom.NewElement("button", RoleDate).
		SetAttr(AttrTabIndex, "-1").
		SetAttr(AttrDay, strconv.Itoa(c.Date.Day())).
		SetAttr(AttrMonth, strconv.Itoa(int(c.Date.Month()))).
		SetAttr(AttrYear, strconv.Itoa(c.Date.Year())).
		SetAttr(AttrValue, c.Value).
		SetAttr(AttrAriaLabel, c.Date.Label()).
		SetText(strconv.Itoa(c.Date.Day()))

	if c.PreviousMonth {
		b.AddRole(RoleDatePreviousMonth)
	}
	if c.NextMonth {
		b.AddRole(RoleDateNextMonth)
	}
	if c.Focused {
		b.SetAttr(AttrTabIndex, "0")
		b.AddRole(RoleDateFocused)
	}
	return b
}

// renderMonthSelection replaces the day grid with the twelve months.
func (p *Picker) renderMonthSelection(el *dom.Element) error {
	els, err := getElements(el)
	if err != nil {
		return err
	}

	els.calendar.Focus()

	var months []*dom.Element
	for m := time.January; m <= time.December; m++ {
		months = append(months, dom.NewElement("button", RoleMonth).
			SetAttr(AttrValue, strconv.Itoa(int(m)-1)).
			SetText(m.String()))
	}

	els.frame.ReplaceWith(dom.NewElement("div", RoleFrame).Append(
		dom.NewElement("div", RoleMonthPicker).Append(grid(months, 3)...),
	))
	els.status.SetText(StatusSelectMonth)

	p.log.Debug("datepicker: rendered months", "widget", els.id())
	return nil
}

// renderYearSelection shows the year chunk containing year.
func (p *Picker) renderYearSelection(el *dom.Element, year int) error {
	els, err := getElements(el)
	if err != nil {
		return err
	}

	els.calendar.Focus()

	var years []*dom.Element
	for _, y := range caldate.ChunkYears(year) {
		years = append(years, dom.NewElement("button", RoleYear).SetText(strconv.Itoa(y)))
	}

	chunkStart := caldate.ChunkStart(year)
	els.frame.ReplaceWith(dom.NewElement("div", RoleFrame).Append(
		dom.NewElement("div", RoleYearPicker).Append(
			dom.NewElement("button", RolePreviousYearChunk).
				SetAttr(AttrAriaLabel, "Navigate back "+strconv.Itoa(caldate.YearChunk)+" years"),
			dom.NewElement("div", RoleYearGrid).
				SetAttr(AttrRole, "grid").
				Append(grid(years, 3)...),
			dom.NewElement("button", RoleNextYearChunk).
				SetAttr(AttrAriaLabel, "Navigate forward "+strconv.Itoa(caldate.YearChunk)+" years"),
		),
	))
	els.status.SetText(fmt.Sprintf("Showing years %d to %d. Select a year.",
		chunkStart, chunkStart+caldate.YearChunk-1))

	p.log.Debug("datepicker: rendered years", "widget", els.id(), "chunk", chunkStart)
	return nil
}

// grid wraps items in cells and rows of rowSize.
func grid(items []*dom.Element, rowSize int) []*dom.Element {
	var rows []*dom.Element
	for _, r := range caldate.Rows(items, rowSize) {
		row := dom.NewElement("div", RoleRow)
		for _, item := range r {
			row.Append(cell(item))
		}
		rows = append(rows, row)
	}
	return rows
}

func cell(child *dom.Element) *dom.Element {
	return dom.NewElement("div", RoleCell).Append(child)
}
