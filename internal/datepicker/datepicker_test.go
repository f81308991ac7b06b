package datepicker

import (
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/MikeBiancalana/datepicker/internal/caldate"
	"github.com/MikeBiancalana/datepicker/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)

type harness struct {
	t      *testing.T
	doc    *dom.Document
	picker *Picker
	parts  Parts
}

func newHarness(t *testing.T, value string) *harness {
	t.Helper()

	doc := dom.NewDocument()
	doc.OnError = func(err error) { t.Errorf("handler error: %v", err) }

	marker := NewMarker(value)
	doc.Body.Append(marker)

	p := New(
		WithNow(func() time.Time { return testNow }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, p.Init(doc.Body))
	doc.Listen(p.Behavior())

	parts, err := Locate(marker)
	require.NoError(t, err)

	return &harness{t: t, doc: doc, picker: p, parts: parts}
}

func (h *harness) click(el *dom.Element) {
	h.t.Helper()
	require.NotNil(h.t, el)
	require.NoError(h.t, h.doc.Dispatch(&dom.Event{Kind: dom.Click, Target: el}))
}

func (h *harness) key(key dom.Key, shift bool) *dom.Event {
	h.t.Helper()
	ev := &dom.Event{Kind: dom.KeyDown, Target: h.doc.ActiveElement(), Key: key, Shift: shift}
	require.NoError(h.t, h.doc.Dispatch(ev))
	return ev
}

func (h *harness) open() {
	h.t.Helper()
	h.click(h.parts.Toggle)
	require.Equal(h.t, ViewDays, h.view())
}

func (h *harness) view() View {
	h.t.Helper()
	v, err := CurrentView(h.parts.Root)
	require.NoError(h.t, err)
	return v
}

func (h *harness) focus() string {
	h.t.Helper()
	d, ok, err := FocusDate(h.parts.Root)
	require.NoError(h.t, err)
	require.True(h.t, ok, "calendar has no focus date")
	return d.Format()
}

func (h *harness) focusedCell() *dom.Element {
	return h.parts.Root.Query(RoleDateFocused)
}

func (h *harness) status() string {
	s, err := Locate(h.parts.Root)
	require.NoError(h.t, err)
	return s.Status.Text()
}

func (h *harness) query(role dom.Role) *dom.Element {
	return h.parts.Root.Query(role)
}

func TestInitEnhancesMarkers(t *testing.T) {
	h := newHarness(t, "")

	assert.True(t, h.parts.Root.HasRole(RoleInitialized))
	assert.NotEmpty(t, h.parts.Root.AttrOr(AttrID))
	assert.True(t, h.parts.Input.HasRole(RoleInput))
	assert.Equal(t, "Display calendar", h.parts.Toggle.AttrOr(AttrAriaLabel))
	assert.Equal(t, "0", h.parts.Toggle.AttrOr(AttrTabIndex))
	assert.True(t, h.parts.Calendar.Hidden())
	assert.Empty(t, h.parts.Frame.Children())
	assert.Equal(t, "polite", h.parts.Status.AttrOr(AttrAriaLive))
	assert.Equal(t, ViewClosed, h.view())

	// A second pass leaves initialized widgets alone.
	require.NoError(t, h.picker.Init(h.doc.Body))
	assert.Len(t, h.parts.Root.QueryAll(RoleToggle), 1)
}

func TestInitRequiresInput(t *testing.T) {
	root := dom.NewElement("div")
	root.Append(dom.NewElement("div", RoleDatePicker))

	err := New().Init(root)
	assert.ErrorIs(t, err, ErrStructural)
}

func TestElementOutsideWidget(t *testing.T) {
	_, err := CurrentView(dom.NewElement("div"))
	assert.ErrorIs(t, err, ErrStructural)

	_, err = Locate(nil)
	assert.ErrorIs(t, err, ErrStructural)
}

func TestOpenEmptyInputFocusesToday(t *testing.T) {
	h := newHarness(t, "")
	h.doc.Measure = func(el *dom.Element) int { return 2 }

	h.open()

	assert.False(t, h.parts.Calendar.Hidden())
	assert.Equal(t, "06/15/2024", h.focus())
	assert.Equal(t, StatusInstructions, h.status())
	assert.Equal(t, "2", h.parts.Calendar.Style("top"))

	cell := h.focusedCell()
	require.NotNil(t, cell)
	assert.Equal(t, "06/15/2024", cell.AttrOr(AttrValue))
	assert.Equal(t, "0", cell.AttrOr(AttrTabIndex))
	assert.Equal(t, "15 June 2024 Saturday", cell.AttrOr(AttrAriaLabel))
	assert.Same(t, cell, h.doc.ActiveElement())
	assert.Len(t, h.parts.Root.QueryAll(RoleDateFocused), 1)
}

func TestOpenParsesInput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10/19/2026", "10/19/2026"},
		{"1/15/99", "01/15/2099"},
		{"3/4/5", "03/04/2025"},
		{"garbage", "06/15/2024"},
		{"2/30/2023", "03/02/2023"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			h := newHarness(t, tt.input)
			h.open()
			assert.Equal(t, tt.want, h.focus())
		})
	}
}

func TestToggleCloses(t *testing.T) {
	h := newHarness(t, "")
	h.open()

	h.click(h.parts.Toggle)

	assert.Equal(t, ViewClosed, h.view())
	assert.True(t, h.parts.Calendar.Hidden())
	assert.Empty(t, h.status())
	_, ok := h.parts.Calendar.Attr(AttrValue)
	assert.False(t, ok, "focus date is cleared on close")

	parts, err := Locate(h.parts.Root)
	require.NoError(t, err)
	assert.Empty(t, parts.Frame.Children())
}

func TestToggleKeys(t *testing.T) {
	h := newHarness(t, "")
	h.parts.Toggle.Focus()

	ev := h.key(dom.KeySpace, false)
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, ViewDays, h.view())

	// Other keys on the toggle do nothing.
	h.parts.Toggle.Focus()
	h.key(dom.KeyArrowDown, false)
	assert.Equal(t, ViewDays, h.view())

	h.key(dom.KeyEnter, false)
	assert.Equal(t, ViewClosed, h.view())
}

func TestDayGridStructure(t *testing.T) {
	h := newHarness(t, "10/19/2026")
	h.open()

	dates := h.parts.Root.QueryAll(RoleDate)
	assert.Len(t, dates, 35)
	assert.Len(t, h.parts.Root.QueryAll(RoleColumnHeader), 7)
	assert.Equal(t, "October", h.query(RoleMonthSelection).Text())
	assert.Equal(t, "2026", h.query(RoleYearSelection).Text())

	for _, role := range []dom.Role{RolePreviousYear, RolePreviousMonth, RoleNextMonth, RoleNextYear} {
		assert.NotNil(t, h.query(role), role)
	}

	first := dates[0]
	assert.True(t, first.HasRole(RoleDatePreviousMonth))
	assert.Equal(t, "27", first.AttrOr(AttrDay))
	assert.Equal(t, "9", first.AttrOr(AttrMonth))
	assert.Equal(t, "2026", first.AttrOr(AttrYear))
	assert.Equal(t, "09/27/2026", first.AttrOr(AttrValue))
	assert.Equal(t, "-1", first.AttrOr(AttrTabIndex))

	grid := h.query(RoleDateGrid)
	for _, row := range grid.Children() {
		assert.Len(t, row.Children(), 7)
	}
}

func TestPreviousMonthClamps(t *testing.T) {
	h := newHarness(t, "03/31/2024")
	h.open()

	h.click(h.query(RolePreviousMonth))

	assert.Equal(t, "02/29/2024", h.focus())
	assert.Equal(t, "02/29/2024", h.focusedCell().AttrOr(AttrValue))
	assert.Equal(t, "February 2024", h.status())
	assert.Same(t, h.focusedCell(), h.doc.ActiveElement())
}

func TestNavigationButtons(t *testing.T) {
	h := newHarness(t, "01/31/2023")
	h.open()

	h.click(h.query(RoleNextMonth))
	assert.Equal(t, "02/28/2023", h.focus())

	h.click(h.query(RoleNextYear))
	assert.Equal(t, "02/28/2024", h.focus())

	h.click(h.query(RolePreviousYear))
	assert.Equal(t, "02/28/2023", h.focus())

	h.click(h.query(RolePreviousMonth))
	assert.Equal(t, "01/28/2023", h.focus())
}

func TestKeyboardNavigation(t *testing.T) {
	tests := []struct {
		name  string
		start string
		key   dom.Key
		shift bool
		want  string
	}{
		{"left", "06/01/2024", dom.KeyArrowLeft, false, "05/31/2024"},
		{"right", "12/31/2024", dom.KeyArrowRight, false, "01/01/2025"},
		{"up", "06/05/2024", dom.KeyArrowUp, false, "05/29/2024"},
		{"down", "06/28/2024", dom.KeyArrowDown, false, "07/05/2024"},
		{"home", "06/12/2024", dom.KeyHome, false, "06/09/2024"},
		{"end", "06/12/2024", dom.KeyEnd, false, "06/15/2024"},
		{"page up", "03/31/2024", dom.KeyPageUp, false, "02/29/2024"},
		{"page down", "01/31/2023", dom.KeyPageDown, false, "02/28/2023"},
		{"shift page up", "02/29/2024", dom.KeyPageUp, true, "02/28/2023"},
		{"shift page down", "02/29/2024", dom.KeyPageDown, true, "02/28/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.start)
			h.open()

			ev := h.key(tt.key, tt.shift)

			assert.True(t, ev.DefaultPrevented())
			assert.Equal(t, tt.want, h.focus())
			assert.Equal(t, tt.want, h.focusedCell().AttrOr(AttrValue))
			assert.Same(t, h.focusedCell(), h.doc.ActiveElement())
		})
	}
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	h := newHarness(t, "06/12/2024")
	h.open()

	ev := h.key(dom.KeyArrowLeft, true)

	assert.False(t, ev.DefaultPrevented())
	assert.Equal(t, "06/12/2024", h.focus())
}

func TestSelectDate(t *testing.T) {
	h := newHarness(t, "06/12/2024")
	h.open()
	h.key(dom.KeyArrowRight, false)

	cell := h.focusedCell()
	value := cell.AttrOr(AttrValue)
	h.click(cell)

	assert.Equal(t, "06/13/2024", h.parts.Input.Value())
	assert.Equal(t, value, h.parts.Input.Value())
	assert.Equal(t, ViewClosed, h.view())
	assert.Empty(t, h.parts.Input.ValidationMessage())
	assert.NoError(t, caldate.Validate(h.parts.Input.Value()))
	assert.Same(t, h.parts.Input, h.doc.ActiveElement())
}

func TestSelectAdjacentMonthDate(t *testing.T) {
	h := newHarness(t, "10/19/2026")
	h.open()

	h.click(h.parts.Root.QueryAll(RoleDate)[0])

	assert.Equal(t, "09/27/2026", h.parts.Input.Value())
}

func TestSelectClearsOwnValidationMessage(t *testing.T) {
	h := newHarness(t, "02/30/2023")
	h.parts.Input.Focus()
	h.parts.Toggle.Focus()
	require.Equal(t, caldate.ValidationMessage, h.parts.Input.ValidationMessage())

	h.open()
	h.click(h.focusedCell())

	assert.Equal(t, "03/02/2023", h.parts.Input.Value())
	assert.Empty(t, h.parts.Input.ValidationMessage())
}

func TestValidationOnInputBlur(t *testing.T) {
	h := newHarness(t, "")

	blur := func(value string) {
		h.parts.Input.SetValue(value)
		h.parts.Input.Focus()
		h.parts.Toggle.Focus()
	}

	blur("02/29/2023")
	assert.Equal(t, caldate.ValidationMessage, h.parts.Input.ValidationMessage())

	blur("02/28/2023")
	assert.Empty(t, h.parts.Input.ValidationMessage())

	blur("")
	assert.Empty(t, h.parts.Input.ValidationMessage())

	// Messages from other validators are left alone both ways.
	h.parts.Input.SetCustomValidity("Required")
	blur("nope")
	assert.Equal(t, "Required", h.parts.Input.ValidationMessage())
	blur("02/28/2023")
	assert.Equal(t, "Required", h.parts.Input.ValidationMessage())
}

func TestMonthSelection(t *testing.T) {
	h := newHarness(t, "01/31/2023")
	h.open()

	h.click(h.query(RoleMonthSelection))

	assert.Equal(t, ViewMonths, h.view())
	assert.Equal(t, StatusSelectMonth, h.status())
	months := h.parts.Root.QueryAll(RoleMonth)
	require.Len(t, months, 12)
	assert.Equal(t, "January", months[0].Text())
	assert.Equal(t, "11", months[11].AttrOr(AttrValue))
	assert.Len(t, h.query(RoleMonthPicker).Children(), 4)
	assert.Same(t, h.parts.Calendar, h.doc.ActiveElement())

	h.click(months[1])

	assert.Equal(t, ViewDays, h.view())
	assert.Equal(t, "02/28/2023", h.focus())
	assert.Equal(t, "February 2023", h.status())
}

func TestYearSelection(t *testing.T) {
	h := newHarness(t, "02/29/2024")
	h.open()

	h.click(h.query(RoleYearSelection))

	assert.Equal(t, ViewYears, h.view())
	assert.Equal(t, "Showing years 2016 to 2027. Select a year.", h.status())
	years := h.parts.Root.QueryAll(RoleYear)
	require.Len(t, years, caldate.YearChunk)
	assert.Equal(t, "2016", years[0].Text())
	assert.Equal(t, "2027", years[11].Text())
	assert.Len(t, h.query(RoleYearGrid).Children(), 4)

	h.click(h.query(RoleNextYearChunk))
	assert.Equal(t, "Showing years 2028 to 2039. Select a year.", h.status())
	assert.Equal(t, "2028", h.query(RoleYear).Text())

	h.click(h.query(RolePreviousYearChunk))
	h.click(h.query(RolePreviousYearChunk))
	assert.Equal(t, "2004", h.query(RoleYear).Text())

	// The focus date survives chunk paging.
	assert.Equal(t, "02/29/2024", h.focus())

	var target *dom.Element
	for _, y := range h.parts.Root.QueryAll(RoleYear) {
		if y.Text() == strconv.Itoa(2011) {
			target = y
		}
	}
	h.click(target)

	assert.Equal(t, ViewDays, h.view())
	assert.Equal(t, "02/28/2011", h.focus())
}

func TestEscapeClosesFromAnyView(t *testing.T) {
	for _, open := range []dom.Role{"", RoleMonthSelection, RoleYearSelection} {
		t.Run(string(open), func(t *testing.T) {
			h := newHarness(t, "")
			h.open()
			if open != "" {
				h.click(h.query(open))
			}

			ev := h.key(dom.KeyEscape, false)

			assert.True(t, ev.DefaultPrevented())
			assert.Equal(t, ViewClosed, h.view())
			assert.Same(t, h.parts.Input, h.doc.ActiveElement())
		})
	}
}

func TestFocusLeavingWidgetCloses(t *testing.T) {
	h := newHarness(t, "")
	outside := dom.NewElement("button")
	h.doc.Body.Append(outside)

	h.open()
	h.parts.Input.Focus()
	assert.Equal(t, ViewDays, h.view(), "focus inside the widget keeps it open")

	h.focusedCell().Focus()
	outside.Focus()
	assert.Equal(t, ViewClosed, h.view())
}

func TestWidgetsAreIndependent(t *testing.T) {
	doc := dom.NewDocument()
	first := NewMarker("01/15/2020")
	second := NewMarker("07/04/2030")
	doc.Body.Append(first, second)

	p := New(WithNow(func() time.Time { return testNow }))
	require.NoError(t, p.Init(doc.Body))
	doc.Listen(p.Behavior())
	assert.NotEqual(t, first.AttrOr(AttrID), second.AttrOr(AttrID))

	firstParts, err := Locate(first)
	require.NoError(t, err)
	secondParts, err := Locate(second)
	require.NoError(t, err)

	require.NoError(t, doc.Dispatch(&dom.Event{Kind: dom.Click, Target: firstParts.Toggle}))
	require.NoError(t, doc.Dispatch(&dom.Event{Kind: dom.Click, Target: secondParts.Toggle}))

	// Opening the second moved focus out of the first, closing it.
	v, err := CurrentView(first)
	require.NoError(t, err)
	assert.Equal(t, ViewClosed, v)

	d, ok, err := FocusDate(second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "07/04/2030", d.Format())
}

func TestNavigationWithoutStateFallsBackToToday(t *testing.T) {
	h := newHarness(t, "")
	h.open()
	h.parts.Calendar.RemoveAttr(AttrValue)

	h.click(h.query(RoleNextMonth))

	assert.Equal(t, "07/15/2024", h.focus())
}

func TestNavigationPastYearOne(t *testing.T) {
	h := newHarness(t, "01/10/0001")
	h.open()

	h.key(dom.KeyPageUp, false)
	assert.Equal(t, "12/10/0000", h.focus())

	h.key(dom.KeyArrowLeft, false)
	assert.Equal(t, "12/09/0000", h.focus())
	assert.Same(t, h.focusedCell(), h.doc.ActiveElement())

	h.key(dom.KeyPageUp, true)
	assert.Equal(t, "12/09/-001", h.focus())

	h.key(dom.KeyPageDown, true)
	h.key(dom.KeyPageDown, true)
	assert.Equal(t, "12/09/0001", h.focus())
}
