package datefield

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pedrohavay/datefield/pattern"
)

// Date is one calendar reading of a typed value.
type Date struct {
	Month int `json:"month" msgpack:"month"`
	Day   int `json:"day" msgpack:"day"`
	Year  int `json:"year" msgpack:"year"`
}

// String renders the canonical MM/DD/YYYY form.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Month, d.Day, d.Year)
}

var delimiters = []string{"-", "/", ""}

// Readings lists every month/day/year reading of value that the date grammar
// accepts, longest month first, then longest day. Values that are not
// complete dates have no readings.
func Readings(value string) []Date {
	s, ok := sanitizeText(value)
	if !ok || !pattern.IsComplete(s, DatePattern()) {
		return nil
	}
	var out []Date
	seen := map[Date]bool{}
	for ml := 2; ml >= 1; ml-- {
		month, rest, ok := digitsPrefix(s, ml)
		if !ok {
			continue
		}
		for _, sep1 := range delimiters {
			afterMonth, ok := strings.CutPrefix(rest, sep1)
			if !ok {
				continue
			}
			for dl := 2; dl >= 1; dl-- {
				day, afterDay, ok := digitsPrefix(afterMonth, dl)
				if !ok {
					continue
				}
				for _, sep2 := range delimiters {
					year, ok := strings.CutPrefix(afterDay, sep2)
					if !ok || len(year) != 4 || !allDigits(year) {
						continue
					}
					y, _ := strconv.Atoi(year)
					date := Date{Month: month, Day: day, Year: y}
					// the canonical form only parses when the date is real
					if seen[date] || !pattern.IsComplete(date.String(), DatePattern()) {
						continue
					}
					seen[date] = true
					out = append(out, date)
				}
			}
		}
	}
	return out
}

func digitsPrefix(s string, n int) (int, string, bool) {
	if len(s) < n || !allDigits(s[:n]) {
		return 0, "", false
	}
	v, _ := strconv.Atoi(s[:n])
	return v, s[n:], true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// Format rewrites a complete value as MM/DD/YYYY using its first reading.
func Format(value string) (string, bool) {
	rs := Readings(value)
	if len(rs) == 0 {
		return "", false
	}
	return rs[0].String(), true
}

// StripSlashes removes every "/" so a value can be edited as bare digits.
func StripSlashes(value string) string {
	return strings.ReplaceAll(value, "/", "")
}
