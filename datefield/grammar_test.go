package datefield

import (
	"reflect"
	"testing"

	"github.com/pedrohavay/datefield/pattern"
)

func TestCompleteDates(t *testing.T) {
	p := DatePattern()
	cases := map[string]bool{
		"03/15/2020": true,
		"3/15/2020":  true,
		"03152020":   true,
		"3-5-1999":   true,
		"02/30/2020": false, // February has no 30th
		"02/29/2020": true,
		"2/29/2000":  true,
		"02/29/2021": false,
		"02/29/1900": false, // divisible by 100, not by 400
		"02/29/2100": false,
		"04/30/2020": true,
		"04/31/2020": false,
		"11/31/2020": false,
		"12/31/2100": true,
		"01/01/1900": true,
		"01/01/1899": false,
		"01/01/2101": false,
		"00/10/2020": false,
		"13/01/2020": false,
		"01/00/2020": false,
		"99/99/9999": false,
	}
	for in, want := range cases {
		if got := pattern.IsComplete(in, p); got != want {
			t.Errorf("IsComplete(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPartialDates(t *testing.T) {
	p := DatePattern()
	for _, in := range []string{"", "1", "0", "02/", "02/2", "02/29/20", "12/31/21", "0315"} {
		if !pattern.IsPartial(in, p) {
			t.Errorf("%q should be partial", in)
		}
	}
	for _, in := range []string{"99/99/9999", "13/13/2020", "13/13", "x", "02/30/"} {
		if v := pattern.Classify(in, p); !v.Rejected() {
			t.Errorf("%q should be rejected, got %v", in, v)
		}
	}
}

func TestLeadingThirteenReadsAsMonthOneDayThree(t *testing.T) {
	p := DatePattern()
	v := pattern.Classify("13", p)
	if v.Complete {
		t.Fatalf("13 cannot be complete")
	}
	// there is no month 13; the only way forward is 1 / 3 / year
	if !v.Partial {
		t.Fatalf("13 should be partial as month 1, day 3")
	}
	if !pattern.IsComplete("132020", p) {
		t.Fatalf("132020 should complete as 1/3/2020")
	}
	if pattern.IsPartial("13/4", p) || pattern.IsComplete("13/4", p) {
		t.Fatalf("13/4 has no continuation")
	}
}

func TestMismatchedDelimitersStillComplete(t *testing.T) {
	// Each delimiter is chosen on its own, so mixed separators pass.
	p := DatePattern()
	for _, in := range []string{"03-15/2020", "03/15-2020", "03-152020", "0315/2020"} {
		if !pattern.IsComplete(in, p) {
			t.Errorf("%q should be complete", in)
		}
	}
}

func TestAmbiguousInputIsCompleteAndPartial(t *testing.T) {
	// 11/20/2xxx and 1/1/202x are both still being typed
	v := pattern.Classify("11202", DatePattern())
	if !v.Partial {
		t.Fatalf("11202 should be partial: %v", v)
	}
	// reads as both 11/1/2020 and 1/11/2020
	v = pattern.Classify("1112020", DatePattern())
	if !v.Complete {
		t.Fatalf("1112020 should be complete")
	}
}

func TestLeapYears(t *testing.T) {
	ys := LeapYears()
	if len(ys) != 49 {
		t.Fatalf("expected 49 leap years, got %d", len(ys))
	}
	if ys[0] != 1904 || ys[len(ys)-1] != 2096 {
		t.Fatalf("unexpected bounds: %d..%d", ys[0], ys[len(ys)-1])
	}
	found2000 := false
	for _, y := range ys {
		if y == 2000 {
			found2000 = true
		}
		if y == 1900 || y == 2100 {
			t.Fatalf("%d is not a leap year", y)
		}
	}
	if !found2000 {
		t.Fatalf("2000 is a leap year")
	}
}

func TestGrammarSize(t *testing.T) {
	monthForms := func(m int) int {
		if m < 10 {
			return 2
		}
		return 1
	}
	const delims = 3
	years := MaxYear - MinYear + 1

	months := 0
	for m := 1; m <= 12; m++ {
		months += monthForms(m)
	}
	days := 0
	for d := 1; d <= 28; d++ {
		days += monthForms(d)
	}
	regular := months * delims * days * delims * years

	extra := 0
	for i, length := range MonthLengths {
		extra += monthForms(i+1) * delims * max(length-28, 0)
	}
	overflow := extra * delims * years

	leap := len(LeapYears()) * monthForms(2) * delims * delims

	want := regular + overflow + leap
	if want != 1496925 {
		t.Fatalf("closed form drifted: %d", want)
	}
	if got := pattern.Alternatives(BuildDatePattern()); got != want {
		t.Fatalf("Alternatives = %d, want %d", got, want)
	}
	if got := pattern.Alternatives(Years()); got != 201 {
		t.Fatalf("years = %d, want 201", got)
	}
	if got := pattern.Alternatives(AdditionalDays()); got != extra {
		t.Fatalf("additional days = %d, want %d", got, extra)
	}
}

func TestDatePatternIsShared(t *testing.T) {
	if DatePattern() != DatePattern() {
		t.Fatalf("DatePattern should build once")
	}
}

func TestDateRunIsIdempotent(t *testing.T) {
	p := DatePattern()
	for _, in := range []string{"", "1", "02/2", "03/15/2020", "99"} {
		if !reflect.DeepEqual(pattern.Run(in, p), pattern.Run(in, p)) {
			t.Fatalf("Run(%q) differs between calls", in)
		}
	}
}
