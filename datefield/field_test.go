package datefield

import "testing"

func TestFieldTyping(t *testing.T) {
	f := NewField(NewDateType(), "")
	if st := f.Status(); st.Dirty || st.Invalid {
		t.Fatalf("empty field: %+v", st)
	}
	for _, v := range []string{"0", "03", "03/", "03/1", "03/15/20", "03/15/2020"} {
		if st := f.Input(v); !st.Dirty || st.Invalid {
			t.Fatalf("Input(%q) = %+v", v, st)
		}
	}
	if st := f.Input("13/13"); !st.Invalid {
		t.Fatalf("13/13 should be invalid")
	}
}

func TestFieldBlurFormats(t *testing.T) {
	f := NewField(NewDateType(), "")
	f.Focus()
	f.Input("3/15/2020")
	st := f.Blur()
	if st.Invalid || st.Focused {
		t.Fatalf("after blur: %+v", st)
	}
	if f.Value() != "03/15/2020" {
		t.Fatalf("blur should reformat, got %q", f.Value())
	}

	// focusing again strips the slashes for editing
	if st := f.Focus(); !st.Focused || st.Invalid {
		t.Fatalf("after focus: %+v", st)
	}
	if f.Value() != "03152020" {
		t.Fatalf("focus should strip slashes, got %q", f.Value())
	}
	f.Blur()
	if f.Value() != "03/15/2020" {
		t.Fatalf("second blur: %q", f.Value())
	}
}

func TestFieldBlurMarksPartialInvalid(t *testing.T) {
	f := NewField(NewDateType(), "")
	f.Input("03/1")
	st := f.Blur()
	if !st.Invalid {
		t.Fatalf("a partial value is invalid once the field is left")
	}
	if f.Value() != "03/1" {
		t.Fatalf("value should be untouched, got %q", f.Value())
	}
	// typing again re-checks from scratch
	if st := f.Input("03/15"); st.Invalid {
		t.Fatalf("Input after blur: %+v", st)
	}

	empty := NewField(NewDateType(), "")
	if st := empty.Blur(); st.Invalid {
		t.Fatalf("empty field should stay valid on blur")
	}
}

func TestFieldDisableEnable(t *testing.T) {
	f := NewField(NewDateType(), "02/29/2021")
	if !f.Status().Invalid {
		t.Fatalf("02/29/2021 should start invalid")
	}
	if st := f.Disable(); !st.Disabled || !st.Invalid {
		t.Fatalf("Disable: %+v", st)
	}
	if st := f.Enable(); st.Disabled {
		t.Fatalf("Enable: %+v", st)
	}
	if st := f.Change("02/29/2020"); st.Invalid {
		t.Fatalf("Change: %+v", st)
	}
}
