package datefield

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateType is returned when a type name is registered twice.
	ErrDuplicateType = errors.New("duplicate field type")
	// ErrUnknownType is returned by Lookup for unregistered names.
	ErrUnknownType = errors.New("unknown field type")
)

// Registry holds known field types.
type Registry struct {
	// Date is always present.
	Date *DateType

	types map[string]FieldType
}

// NewRegistry returns a registry holding the built-in date type.
func NewRegistry() *Registry {
	r := &Registry{Date: NewDateType(), types: map[string]FieldType{}}
	r.types[r.Date.Name()] = r.Date
	return r
}

func (r *Registry) Register(t FieldType) error {
	if _, ok := r.types[t.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, t.Name())
	}
	r.types[t.Name()] = t
	return nil
}

func (r *Registry) Get(name string) FieldType { return r.types[name] }

// Lookup is Get with an error for unknown names.
func (r *Registry) Lookup(name string) (FieldType, error) {
	t := r.types[name]
	if t == nil {
		return nil, fmt.Errorf("%w: %s (known: %v)", ErrUnknownType, name, r.Names())
	}
	return t, nil
}

// Names returns registered type names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.types))
	for n := range r.types {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
