package datepicker

import "github.com/MikeBiancalana/datepicker/internal/dom"

// Roles a widget's elements carry. Hosts use them to locate and draw parts
// of the widget; the dispatch table routes events by them.
const (
	// RoleDatePicker marks a widget root. Markers without RoleInitialized
	// are enhanced by Init.
	RoleDatePicker  dom.Role = "date-picker"
	RoleInitialized dom.Role = "date-picker--initialized"

	// RoleTextInput marks the plain text input a marker must contain.
	RoleTextInput dom.Role = "input"

	RoleInput    dom.Role = "date-picker__input"
	RoleToggle   dom.Role = "date-picker__button"
	RoleCalendar dom.Role = "date-picker__calendar"
	RoleStatus   dom.Role = "date-picker__status"
	RoleFrame    dom.Role = "date-picker__calendar__frame"

	RoleDayPicker   dom.Role = "date-picker__calendar__date-picker"
	RoleMonthPicker dom.Role = "date-picker__calendar__month-picker"
	RoleYearPicker  dom.Role = "date-picker__calendar__year-picker"
	RoleDateGrid    dom.Role = "date-picker__calendar__date-grid"
	RoleYearGrid    dom.Role = "date-picker__calendar__year-grid"

	RoleRow          dom.Role = "calendar__row"
	RoleCell         dom.Role = "calendar__cell"
	RoleColumnHeader dom.Role = "calendar__column-header"

	RoleDate              dom.Role = "date-picker__calendar__date"
	RoleDateFocused       dom.Role = "date-picker__calendar__date--focused"
	RoleDatePreviousMonth dom.Role = "date-picker__calendar__date--previous-month"
	RoleDateNextMonth     dom.Role = "date-picker__calendar__date--next-month"

	RolePreviousYear   dom.Role = "date-picker__calendar__previous-year"
	RolePreviousMonth  dom.Role = "date-picker__calendar__previous-month"
	RoleNextYear       dom.Role = "date-picker__calendar__next-year"
	RoleNextMonth      dom.Role = "date-picker__calendar__next-month"
	RoleMonthSelection dom.Role = "date-picker__calendar__month-selection"
	RoleYearSelection  dom.Role = "date-picker__calendar__year-selection"

	RoleMonth             dom.Role = "date-picker__calendar__month"
	RoleYear              dom.Role = "date-picker__calendar__year"
	RolePreviousYearChunk dom.Role = "date-picker__calendar__previous-year-chunk"
	RoleNextYearChunk     dom.Role = "date-picker__calendar__next-year-chunk"
)

// Attributes written on widget elements.
const (
	AttrID        = "id"
	AttrValue     = "data-value"
	AttrDay       = "data-day"
	AttrMonth     = "data-month"
	AttrYear      = "data-year"
	AttrTabIndex  = "tabindex"
	AttrRole      = "role"
	AttrAriaLabel = "aria-label"
	AttrAriaLive  = "aria-live"
)
