package datefield

import "github.com/pedrohavay/datefield/pattern"

// Verdict records the result of checking one value against a field type.
type Verdict struct {
	ID        string `json:"id" msgpack:"id"`
	Type      string `json:"type" msgpack:"type"`
	Value     string `json:"value" msgpack:"value"`
	Complete  bool   `json:"complete" msgpack:"complete"`
	Partial   bool   `json:"partial" msgpack:"partial"`
	Valid     bool   `json:"valid" msgpack:"valid"`
	Formatted string `json:"formatted,omitempty" msgpack:"formatted,omitempty"`
}

// MakeKey computes a deterministic ID from the type and value.
func (v *Verdict) MakeKey() string {
	v.ID = MakeVerdictKey(v.Type, v.Value)
	return v.ID
}

// MakeVerdictKey hashes type and value. Empty inputs have no key.
func MakeVerdictKey(typ, value string) string {
	if typ == "" {
		return ""
	}
	return makeKey(typ, value)
}

// Check classifies value against t.
func Check(t FieldType, value string) Verdict {
	var cls pattern.Verdict
	if c, ok := t.(classifier); ok {
		cls = c.Classify(value)
	} else {
		cls = pattern.Verdict{Complete: t.Validate(value), Partial: t.Partial(value)}
	}
	v := Verdict{
		Type:     t.Name(),
		Value:    value,
		Complete: cls.Complete,
		Partial:  cls.Partial,
		Valid:    cls.Valid(),
	}
	if cls.Complete {
		if cleaned, ok := t.Clean(value); ok {
			v.Formatted = cleaned
		}
	}
	v.MakeKey()
	return v
}

// Clean fills derived fields that a decoded record may lack.
func (v *Verdict) Clean() {
	v.Valid = v.Complete || v.Partial
	if v.ID == "" {
		v.MakeKey()
	}
}
