package caldate

import "time"

// ClampToMonth returns d unchanged when it falls in the expected month. When
// a month or year change has overflowed the day of the month (Jan 31 plus one
// month lands on Mar 3), it returns day 0 of d's month, which is the last day
// of the month that was intended.
func ClampToMonth(d Date, expected time.Month) Date {
	if d.Month() == expected {
		return d
	}
	return New(d.Year(), d.Month(), 0)
}

// AddDays moves d by n days. Days never need clamping.
func (d Date) AddDays(n int) Date {
	return New(d.Year(), d.Month(), d.Day()+n)
}

// AddMonths moves d by n months, clamping to the last day of the target month.
func (d Date) AddMonths(n int) Date {
	expected := time.Month(mod(d.MonthIndex()+n, 12) + 1)
	return ClampToMonth(New(d.Year(), d.Month()+time.Month(n), d.Day()), expected)
}

// AddYears moves d by n years, clamping Feb 29 onto Feb 28 in non-leap years.
func (d Date) AddYears(n int) Date {
	return d.WithYear(d.Year() + n)
}

// WithMonth returns d moved to month m of the same year, clamped.
func (d Date) WithMonth(m time.Month) Date {
	return ClampToMonth(New(d.Year(), m, d.Day()), time.Month(mod(int(m)-1, 12)+1))
}

// WithYear returns d moved to the given year, clamped.
func (d Date) WithYear(year int) Date {
	return ClampToMonth(New(year, d.Month(), d.Day()), d.Month())
}

// StartOfWeek returns the Sunday on or before d.
func (d Date) StartOfWeek() Date {
	return d.AddDays(-int(d.Weekday()))
}

// EndOfWeek returns the Saturday on or after d.
func (d Date) EndOfWeek() Date {
	return d.AddDays(6 - int(d.Weekday()))
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return New(year, month+1, 0).Day()
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
