package caldate

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ValidationMessage is the message set on the bound input for malformed text.
const ValidationMessage = "Please enter a valid date"

// ErrInvalidDate reports text that does not name a real MM/DD/YYYY date.
var ErrInvalidDate = errors.New(ValidationMessage)

// ParseLenient reads "M/D/Y" text for navigation. Each slash-separated token
// is read as a leading integer when it has one; a missing or zero component
// means no date. Overflowing values are normalized rather than rejected, so
// "13/1/2020" becomes January 1, 2021.
//
// With adjustTwoDigitYear set, a year token shorter than the current year's
// digit count is placed in the current bucket: for "99" in 2024 that is
// 2024 - 2024%100 + 99 = 2099.
func ParseLenient(text string, adjustTwoDigitYear bool, now time.Time) (Date, bool) {
	if text == "" {
		return Date{}, false
	}

	monthStr, dayStr, yearStr := splitTokens(text)

	month, _ := leadingInt(monthStr)
	day, _ := leadingInt(dayStr)

	year, ok := leadingInt(yearStr)
	if ok && adjustTwoDigitYear {
		currentYear := now.Year()
		currentYearLen := len(strconv.Itoa(currentYear))
		if len(yearStr) < currentYearLen {
			year = currentYear - currentYear%pow10(len(yearStr)) + year
		}
	}

	if day == 0 || month == 0 || year == 0 {
		return Date{}, false
	}

	return New(year, time.Month(month), day), true
}

// ParseState reads text written by Format back into a Date. Unlike
// ParseLenient it accepts year zero and negative years, since navigation can
// page past year one. Anything Format would not produce is rejected.
func ParseState(text string) (Date, bool) {
	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return Date{}, false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return Date{}, false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 {
		return Date{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, false
	}

	d := New(year, time.Month(month), day)
	if d.Format() != text {
		return Date{}, false
	}
	return d, true
}

// Validate checks text strictly. Empty text is valid. Otherwise the month
// must be 1-12, the year exactly four characters, and the day must exist in
// that month and year.
func Validate(text string) error {
	if text == "" {
		return nil
	}

	monthStr, dayStr, yearStr := splitTokens(text)

	month, ok := leadingInt(monthStr)
	if !ok || month < 1 || month > 12 {
		return ErrInvalidDate
	}

	if len(yearStr) != 4 {
		return ErrInvalidDate
	}
	year, ok := leadingInt(yearStr)
	if !ok || year == 0 {
		return ErrInvalidDate
	}

	if dayStr == "" {
		return ErrInvalidDate
	}
	day, ok := leadingInt(dayStr)
	if !ok || day == 0 {
		return ErrInvalidDate
	}
	if New(year, time.Month(month), day).Month() != time.Month(month) {
		return ErrInvalidDate
	}

	return nil
}

// IsValid reports whether Validate accepts text.
func IsValid(text string) bool {
	return Validate(text) == nil
}

// splitTokens returns the first three slash-separated tokens; tokens past
// the end of the text are empty.
func splitTokens(text string) (string, string, string) {
	parts := strings.Split(text, "/")
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return parts[0], parts[1], parts[2]
}

// leadingInt reads an optionally signed base-10 integer from the start of s,
// after leading whitespace, ignoring anything that follows the digits. It
// reports false when no digits are present.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\f\v")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
