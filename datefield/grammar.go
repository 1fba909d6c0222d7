package datefield

import (
	"strconv"
	"sync"

	"github.com/pedrohavay/datefield/pattern"
)

// Supported calendar range, inclusive.
const (
	MinYear = 1900
	MaxYear = 2100
)

// MonthLengths holds days per month in a common year, January first.
var MonthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// Months returns the twelve zero-filled month patterns, January first.
func Months() []pattern.Pattern {
	out := make([]pattern.Pattern, 0, 12)
	for m := 1; m <= 12; m++ {
		out = append(out, pattern.ZeroFill(m))
	}
	return out
}

// Days returns zero-filled day patterns for 1..28, the days every month has.
func Days() []pattern.Pattern {
	out := make([]pattern.Pattern, 0, 28)
	for d := 1; d <= 28; d++ {
		out = append(out, pattern.ZeroFill(d))
	}
	return out
}

// Years matches the four-digit years MinYear..MaxYear.
func Years() pattern.Pattern {
	return pattern.Range(MinYear, MaxYear, false, 4)
}

// Delimiters matches "-", "/" or nothing.
func Delimiters() pattern.Pattern {
	return pattern.Lits("-", "/", "")
}

// AdditionalDays matches month, delimiter, day for days 29 and up in the
// months that have them. February is left to LeapDays.
func AdditionalDays() pattern.Pattern {
	months := Months()
	var alts []pattern.Pattern
	for i, length := range MonthLengths {
		for d := 29; d <= length; d++ {
			alts = append(alts, pattern.SeqAll(months[i], Delimiters(), pattern.ZeroFill(d)))
		}
	}
	return pattern.Alt(alts...)
}

// LeapYears lists the leap years in MinYear..MaxYear.
func LeapYears() []int {
	var out []int
	for y := MinYear; y <= MaxYear; y++ {
		if IsLeapYear(y) {
			out = append(out, y)
		}
	}
	return out
}

// LeapDays matches February 29th followed by a leap year.
func LeapDays() pattern.Pattern {
	years := LeapYears()
	alts := make([]pattern.Pattern, 0, len(years))
	for _, y := range years {
		alts = append(alts, pattern.SeqAll(
			pattern.ZeroFill(2), Delimiters(), pattern.Lit("29"), Delimiters(), pattern.Lit(strconv.Itoa(y)),
		))
	}
	return pattern.Alt(alts...)
}

// BuildDatePattern builds the month-day-year grammar: regular days 1..28,
// the longer-month days 29..31, and leap days. Each delimiter position is
// chosen on its own, so "03-15/2020" is accepted.
func BuildDatePattern() pattern.Pattern {
	return pattern.Alt(
		pattern.SeqAll(pattern.Alt(Months()...), Delimiters(), pattern.Alt(Days()...), Delimiters(), Years()),
		pattern.SeqAll(AdditionalDays(), Delimiters(), Years()),
		LeapDays(),
	)
}

var (
	datePatternOnce sync.Once
	datePattern     pattern.Pattern
)

// DatePattern returns the shared date grammar, building it on first use.
// The tree is never modified and is safe for concurrent matching.
func DatePattern() pattern.Pattern {
	datePatternOnce.Do(func() { datePattern = BuildDatePattern() })
	return datePattern
}
