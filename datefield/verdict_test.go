package datefield

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/pedrohavay/datefield/pattern"
)

func checkAll(t *testing.T, values ...string) []Verdict {
	t.Helper()
	dt := NewDateType()
	out := make([]Verdict, 0, len(values))
	for _, v := range values {
		out = append(out, Check(dt, v))
	}
	return out
}

func TestCheck(t *testing.T) {
	vs := checkAll(t, "3/15/2020", "03/1", "99/99/9999")

	if !vs[0].Complete || !vs[0].Valid || vs[0].Formatted != "03/15/2020" {
		t.Fatalf("complete verdict: %+v", vs[0])
	}
	if vs[1].Complete || !vs[1].Partial || !vs[1].Valid || vs[1].Formatted != "" {
		t.Fatalf("partial verdict: %+v", vs[1])
	}
	if vs[2].Valid {
		t.Fatalf("rejected verdict: %+v", vs[2])
	}
	for _, v := range vs {
		if v.ID == "" || v.ID != MakeVerdictKey("date", v.Value) {
			t.Fatalf("verdict without stable id: %+v", v)
		}
	}
	if vs[0].ID == vs[1].ID {
		t.Fatalf("different values share an id")
	}
}

func TestVerdictStreamsRoundTrip(t *testing.T) {
	vs := checkAll(t, "3/15/2020", "03/1", "99/99/9999", "02/29/2000")

	var back []Verdict
	collect := func(v Verdict) error { back = append(back, v); return nil }

	buf := bytes.Buffer{}
	if err := WriteVerdictsJSONL(&buf, vs); err != nil {
		t.Fatalf("write jsonl: %v", err)
	}
	if err := ReadVerdictsJSONL(&buf, collect); err != nil {
		t.Fatalf("read jsonl: %v", err)
	}
	if !reflect.DeepEqual(back, vs) {
		t.Fatalf("jsonl round-trip mismatch:\n%+v\n%+v", back, vs)
	}

	back = nil
	buf.Reset()
	if err := WriteVerdictsCSV(&buf, vs); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "id,type,value,complete,partial,valid,formatted\n") {
		t.Fatalf("unexpected csv header: %q", buf.String())
	}
	if err := ReadVerdictsCSV(&buf, collect); err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if !reflect.DeepEqual(back, vs) {
		t.Fatalf("csv round-trip mismatch:\n%+v\n%+v", back, vs)
	}

	back = nil
	buf.Reset()
	if err := WriteVerdictsMsgpack(&buf, vs); err != nil {
		t.Fatalf("write msgpack: %v", err)
	}
	if err := ReadVerdictsMsgpack(&buf, collect); err != nil {
		t.Fatalf("read msgpack: %v", err)
	}
	if !reflect.DeepEqual(back, vs) {
		t.Fatalf("msgpack round-trip mismatch:\n%+v\n%+v", back, vs)
	}
}

func TestReadValues(t *testing.T) {
	var got []string
	collect := func(s string) error { got = append(got, s); return nil }

	if err := ReadValues(strings.NewReader("03/15/2020\n\n  1/2  \n"), collect); err != nil {
		t.Fatalf("ReadValues: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"03/15/2020", "1/2"}) {
		t.Fatalf("ReadValues = %q", got)
	}

	got = nil
	src := `{"value":"3/15/2020","source":"form"}` + "\n" + `{"value":""}`
	if err := ReadValuesJSONL(strings.NewReader(src), collect); err != nil {
		t.Fatalf("ReadValuesJSONL: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"3/15/2020", ""}) {
		t.Fatalf("ReadValuesJSONL = %q", got)
	}
}

func TestCheckMatchesNormalizedValue(t *testing.T) {
	dt := NewDateType()
	for _, value := range []string{"  3/15/2020 ", "\uff13/\uff11\uff15/\uff12\uff10\uff12\uff10", "\t03/1"} {
		v := Check(dt, value)
		norm := Normalize(value)
		if v.Value != value {
			t.Fatalf("verdict should keep the raw value, got %q", v.Value)
		}
		if v.Complete != pattern.IsComplete(norm, dt.Pattern()) || v.Partial != pattern.IsPartial(norm, dt.Pattern()) {
			t.Fatalf("Check(%q) = %+v disagrees with matching %q", value, v, norm)
		}
		if len(pattern.Run(norm, dt.Pattern())) == 0 {
			t.Fatalf("no outcomes for %q", norm)
		}
	}
	if Normalize(" \t ") != "" {
		t.Fatalf("blank input normalizes to empty")
	}
	if got := Normalize("\uff13/\uff11\uff15/\uff12\uff10\uff12\uff10"); got != "3/15/2020" {
		t.Fatalf("full-width input normalizes to %q", got)
	}
	if !Check(dt, "  3/15/2020 ").Complete {
		t.Fatalf("padded date should be complete")
	}
}
