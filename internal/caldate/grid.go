package caldate

import "time"

// Cell is one day in a rendered day grid.
type Cell struct {
	Date Date

	// Value is the formatted MM/DD/YYYY text written to the input on selection.
	Value string

	PreviousMonth bool
	NextMonth     bool
	Focused       bool
}

// Adjacent reports whether the cell belongs to the month before or after the
// focus month.
func (c Cell) Adjacent() bool {
	return c.PreviousMonth || c.NextMonth
}

// DayGrid returns the days shown for focus's month: complete Sunday-first
// weeks covering the whole month, padded with days of the adjacent months.
// The result always has a multiple of seven cells and at least 28.
func DayGrid(focus Date) []Cell {
	focusMonth := focus.Month()
	prevMonth := time.Month(mod(focus.MonthIndex()+11, 12) + 1)
	nextMonth := time.Month(mod(focus.MonthIndex()+1, 12) + 1)

	firstDay := int(New(focus.Year(), focusMonth, 1).Weekday())
	current := New(focus.Year(), focusMonth, 1-firstDay)

	cells := make([]Cell, 0, 42)
	for len(cells) < 28 || current.Month() == focusMonth || len(cells)%7 != 0 {
		cells = append(cells, Cell{
			Date:          current,
			Value:         current.Format(),
			PreviousMonth: current.Month() == prevMonth,
			NextMonth:     current.Month() == nextMonth,
			Focused:       current.Equal(focus),
		})
		current = current.AddDays(1)
	}

	return cells
}

// Weeks splits cells into rows of seven.
func Weeks(cells []Cell) [][]Cell {
	return Rows(cells, 7)
}

// Rows splits items into rows of at most size elements.
func Rows[T any](items []T, size int) [][]T {
	var rows [][]T
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		rows = append(rows, items[i:end])
	}
	return rows
}

// ChunkYears returns the YearChunk consecutive years of the chunk holding year.
func ChunkYears(year int) []int {
	start := ChunkStart(year)
	years := make([]int, YearChunk)
	for i := range years {
		years[i] = start + i
	}
	return years
}
