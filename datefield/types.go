package datefield

import "github.com/pedrohavay/datefield/pattern"

// FieldType defines how a text field validates and cleans its value.
// Implementations should be stateless and reusable.
type FieldType interface {
	Name() string
	Label() string
	Pattern() pattern.Pattern

	// Validate reports whether value is complete.
	Validate(value string) bool
	// Partial reports whether value could still become complete.
	Partial(value string) bool
	// Clean returns the display form of a complete value.
	Clean(text string) (string, bool)
}

// BaseType offers default implementations over a grammar.
type BaseType struct {
	name  string
	label string
	start pattern.Pattern
}

func (b BaseType) Name() string             { return b.name }
func (b BaseType) Label() string            { return b.label }
func (b BaseType) Pattern() pattern.Pattern { return b.start }

func (b BaseType) Classify(value string) pattern.Verdict {
	return pattern.Classify(Normalize(value), b.start)
}

func (b BaseType) Validate(value string) bool { return b.Classify(value).Complete }
func (b BaseType) Partial(value string) bool  { return b.Classify(value).Partial }

func (b BaseType) Clean(text string) (string, bool) {
	s, ok := sanitizeText(text)
	if !ok || !pattern.IsComplete(s, b.start) {
		return "", false
	}
	return s, true
}

// DateType accepts month-day-year dates between MinYear and MaxYear and
// cleans them to MM/DD/YYYY.
type DateType struct{ BaseType }

func NewDateType() *DateType {
	return &DateType{BaseType{name: "date", label: "Date (MM/DD/YYYY)", start: DatePattern()}}
}

func (t *DateType) Clean(text string) (string, bool) { return Format(text) }

// GrammarType is a field type backed by a grammar file. Clean only
// sanitises, since a grammar carries no display form.
type GrammarType struct {
	BaseType
	Description string
}

func NewGrammarType(g *pattern.Grammar) *GrammarType {
	return &GrammarType{BaseType: BaseType{name: g.Name, label: g.Label, start: g.Start}, Description: g.Description}
}
