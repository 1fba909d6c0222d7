package datefield

import "github.com/pedrohavay/datefield/pattern"

// Status is the observable state of a Field.
type Status struct {
	Focused  bool `json:"focused"`
	Disabled bool `json:"disabled"`
	Dirty    bool `json:"dirty"`
	Invalid  bool `json:"invalid"`
}

// Field tracks one text input bound to a field type. Every change re-checks
// the whole value, so no parse state is carried between keystrokes.
type Field struct {
	typ    FieldType
	value  string
	status Status
}

// NewField returns a field holding value. A value that is neither complete
// nor partial starts out invalid.
func NewField(t FieldType, value string) *Field {
	f := &Field{typ: t}
	f.set(value)
	return f
}

func (f *Field) Value() string   { return f.value }
func (f *Field) Status() Status  { return f.status }
func (f *Field) Type() FieldType { return f.typ }

// Input replaces the value after a keystroke and re-checks it.
func (f *Field) Input(value string) Status {
	f.set(value)
	return f.status
}

// Change sets the value from outside the editing flow.
func (f *Field) Change(value string) Status { return f.Input(value) }

// Reset re-checks the current value.
func (f *Field) Reset() Status { return f.Input(f.value) }

// Focus strips slashes so the user edits bare digits.
func (f *Field) Focus() Status {
	f.status.Focused = true
	f.set(StripSlashes(f.value))
	return f.status
}

// Blur reformats a complete value. A value that is only partial is marked
// invalid, since the user has left the field.
func (f *Field) Blur() Status {
	f.status.Focused = false
	f.set(f.value)
	if f.status.Invalid || !f.status.Dirty {
		return f.status
	}
	if cleaned, ok := f.typ.Clean(f.value); ok {
		f.set(cleaned)
		return f.status
	}
	f.status.Invalid = true
	return f.status
}

func (f *Field) Disable() Status {
	f.status.Disabled = true
	return f.Reset()
}

func (f *Field) Enable() Status {
	f.status.Disabled = false
	return f.Reset()
}

// classifier lets set match once instead of twice.
type classifier interface {
	Classify(value string) pattern.Verdict
}

func (f *Field) set(value string) {
	f.value = value
	f.status.Dirty = value != ""
	if c, ok := f.typ.(classifier); ok {
		f.status.Invalid = c.Classify(value).Rejected()
		return
	}
	f.status.Invalid = !(f.typ.Validate(value) || f.typ.Partial(value))
}
