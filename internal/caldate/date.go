// Package caldate implements naive calendar dates for the date picker: lenient
// and strict parsing of MM/DD/YYYY text, month/year arithmetic that clamps to
// the last valid day of the intended month, and day-grid construction.
package caldate

import (
	"fmt"
	"time"
)

// YearChunk is the number of years shown on one page of the year grid.
const YearChunk = 12

// Date is an immutable calendar date with no time of day and no time zone.
// The zero value is not a valid date; use New or Today.
type Date struct {
	t time.Time
}

// New builds a date from year, month and day, normalizing out-of-range values
// the way time.Date does (month 13 rolls into the next year, day 0 is the last
// day of the previous month).
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime returns the calendar date of t in t's own location.
func FromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns the calendar date of now.
func Today(now time.Time) Date {
	return FromTime(now)
}

// Year returns the year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the month (January = 1).
func (d Date) Month() time.Month { return d.t.Month() }

// MonthIndex returns the zero-based month index (January = 0).
func (d Date) MonthIndex() int { return int(d.t.Month()) - 1 }

// Day returns the day of the month.
func (d Date) Day() int { return d.t.Day() }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month() && d.Day() == other.Day()
}

// Format renders d as zero-padded MM/DD/YYYY.
func (d Date) Format() string {
	return FormatStrict(d.Year(), d.Month(), d.Day())
}

// String implements fmt.Stringer.
func (d Date) String() string {
	return d.Format()
}

// Label returns the accessible description of d, e.g. "19 October 2026 Monday".
func (d Date) Label() string {
	return fmt.Sprintf("%d %s %d %s", d.Day(), d.Month(), d.Year(), d.Weekday())
}

// FormatStrict zero-pads month and day to two digits and year to four,
// joined by slashes.
func FormatStrict(year int, month time.Month, day int) string {
	return fmt.Sprintf("%02d/%02d/%04d", int(month), day, year)
}

// ChunkStart returns the first year of the year chunk containing year.
func ChunkStart(year int) int {
	return year - year%YearChunk
}
