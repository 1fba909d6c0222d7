package datefield

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	levenshtein "github.com/agnivade/levenshtein"
)

// Suggestion is a calendar date near some input.
type Suggestion struct {
	Date     Date `json:"date"`
	Distance int  `json:"distance"`
}

var (
	calendarOnce sync.Once
	calendar     []Date
	calendarKeys []string
)

// Calendar lists every date from MinYear through MaxYear in order. The
// slice is shared and must not be modified.
func Calendar() []Date {
	calendarOnce.Do(func() {
		for y := MinYear; y <= MaxYear; y++ {
			for m, length := range MonthLengths {
				if m == 1 && IsLeapYear(y) {
					length++
				}
				for d := 1; d <= length; d++ {
					date := Date{Month: m + 1, Day: d, Year: y}
					calendar = append(calendar, date)
					calendarKeys = append(calendarKeys, date.digitKey())
				}
			}
		}
	})
	return calendar
}

// digitKey is the MMDDYYYY form used for distance.
func (d Date) digitKey() string {
	return fmt.Sprintf("%02d%02d%04d", d.Month, d.Day, d.Year)
}

// inputKey pads month and day when delimiters mark them, then drops
// everything but digits.
func inputKey(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) == 3 {
		for i := 0; i < 2; i++ {
			if len(parts[i]) == 1 {
				parts[i] = "0" + parts[i]
			}
		}
		s = strings.Join(parts, "")
	}
	b := strings.Builder{}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Suggest returns up to n dates closest to input by edit distance, ties in
// calendar order.
func Suggest(input string, n int) []Suggestion {
	if n <= 0 {
		return nil
	}
	s, ok := sanitizeText(input)
	if !ok {
		return nil
	}
	key := inputKey(s)
	if key == "" {
		return nil
	}
	all := Calendar()
	ranked := make([]Suggestion, 0, len(all))
	for i, d := range all {
		ranked = append(ranked, Suggestion{Date: d, Distance: levenshtein.ComputeDistance(key, calendarKeys[i])})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Distance < ranked[j].Distance })
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
