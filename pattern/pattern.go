// Package pattern provides a tiny grammar of literal, sequence and choice
// nodes, and a matcher that reports every way a partial input can match one.
package pattern

import "fmt"

// Pattern is a node in an immutable grammar tree. The only implementations
// are *Literal, *Sequence and *Choice.
type Pattern interface {
	pattern()
	String() string
}

// Literal matches exactly Value.
type Literal struct {
	Value string
}

// Sequence matches Left, then Right against whatever Left left over.
type Sequence struct {
	Left  Pattern
	Right Pattern
}

// Choice matches any of its alternatives. Every alternative is explored.
type Choice struct {
	Alternatives []Pattern
}

func (*Literal) pattern()  {}
func (*Sequence) pattern() {}
func (*Choice) pattern()   {}

func (l *Literal) String() string  { return fmt.Sprintf("%q", l.Value) }
func (s *Sequence) String() string { return fmt.Sprintf("(%s %s)", s.Left, s.Right) }
func (c *Choice) String() string {
	if len(c.Alternatives) == 0 {
		return "(|)"
	}
	out := "(" + c.Alternatives[0].String()
	for _, a := range c.Alternatives[1:] {
		out += " | " + a.String()
	}
	return out + ")"
}

func Lit(value string) *Literal { return &Literal{Value: value} }

func Seq(left, right Pattern) *Sequence { return &Sequence{Left: left, Right: right} }

// Alt copies alternatives so later changes to the caller's slice
// cannot reach the tree.
func Alt(alternatives ...Pattern) *Choice {
	xs := make([]Pattern, len(alternatives))
	copy(xs, alternatives)
	return &Choice{Alternatives: xs}
}

// Lits is a choice over literal values, in order.
func Lits(values ...string) *Choice {
	xs := make([]Pattern, 0, len(values))
	for _, v := range values {
		xs = append(xs, Lit(v))
	}
	return &Choice{Alternatives: xs}
}

// SeqAll folds parts from the left: SeqAll(a, b, c) is Seq(Seq(a, b), c).
// It panics when called without parts.
func SeqAll(parts ...Pattern) Pattern {
	if len(parts) == 0 {
		panic("pattern: SeqAll needs at least one part")
	}
	acc := parts[0]
	for _, p := range parts[1:] {
		acc = Seq(acc, p)
	}
	return acc
}
