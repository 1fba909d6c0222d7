package pattern

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	// ErrBadNode is returned for a grammar node that sets zero or several forms.
	ErrBadNode = errors.New("pattern: node must set exactly one of lit, lits, seq, alt, range, ref")
	// ErrUnknownRef is returned when a ref names no definition.
	ErrUnknownRef = errors.New("pattern: unknown ref")
	// ErrRefCycle is returned when definitions refer to themselves.
	ErrRefCycle = errors.New("pattern: ref cycle")
)

// Node is the file form of a pattern. Exactly one field is set.
type Node struct {
	Lit   *string    `yaml:"lit,omitempty" json:"lit,omitempty"`
	Lits  []string   `yaml:"lits,omitempty" json:"lits,omitempty"`
	Seq   []Node     `yaml:"seq,omitempty" json:"seq,omitempty"`
	Alt   []Node     `yaml:"alt,omitempty" json:"alt,omitempty"`
	Range *RangeSpec `yaml:"range,omitempty" json:"range,omitempty"`
	Ref   string     `yaml:"ref,omitempty" json:"ref,omitempty"`
}

// RangeSpec expands to Range(From, To, ZeroFill, Width).
type RangeSpec struct {
	From     int  `yaml:"from" json:"from"`
	To       int  `yaml:"to" json:"to"`
	ZeroFill bool `yaml:"zerofill,omitempty" json:"zerofill,omitempty"`
	Width    int  `yaml:"width,omitempty" json:"width,omitempty"`
}

// grammarSpec mirrors a grammar file.
type grammarSpec struct {
	Name        string          `yaml:"name"`
	Label       string          `yaml:"label"`
	Description string          `yaml:"description"`
	Define      map[string]Node `yaml:"define"`
	Start       Node            `yaml:"start"`
}

// Grammar is a named pattern loaded from a file.
type Grammar struct {
	Name        string
	Label       string
	Description string
	Start       Pattern
}

// ParseGrammar decodes a YAML grammar file. name is used when the file
// does not set one.
func ParseGrammar(name string, r io.Reader) (*Grammar, error) {
	var spec grammarSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return nil, fmt.Errorf("decode grammar %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = name
	}
	c := &compiler{defs: spec.Define, done: map[string]Pattern{}, active: map[string]bool{}}
	// Compile every definition, not just the reachable ones, so a broken
	// definition is reported even when unused.
	names := make([]string, 0, len(spec.Define))
	for n := range spec.Define {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if _, err := c.ref(n); err != nil {
			return nil, fmt.Errorf("grammar %s: %w", spec.Name, err)
		}
	}
	start, err := c.node(spec.Start)
	if err != nil {
		return nil, fmt.Errorf("grammar %s: start: %w", spec.Name, err)
	}
	label := spec.Label
	if label == "" {
		label = spec.Name
	}
	return &Grammar{Name: spec.Name, Label: label, Description: spec.Description, Start: start}, nil
}

type compiler struct {
	defs   map[string]Node
	done   map[string]Pattern
	active map[string]bool
}

func (c *compiler) ref(name string) (Pattern, error) {
	if p, ok := c.done[name]; ok {
		return p, nil
	}
	n, ok := c.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRef, name)
	}
	if c.active[name] {
		return nil, fmt.Errorf("%w: %s", ErrRefCycle, name)
	}
	c.active[name] = true
	p, err := c.node(n)
	delete(c.active, name)
	if err != nil {
		return nil, fmt.Errorf("define %s: %w", name, err)
	}
	c.done[name] = p
	return p, nil
}

func (c *compiler) node(n Node) (Pattern, error) {
	forms := 0
	for _, set := range []bool{n.Lit != nil, n.Lits != nil, n.Seq != nil, n.Alt != nil, n.Range != nil, n.Ref != ""} {
		if set {
			forms++
		}
	}
	if forms != 1 {
		return nil, ErrBadNode
	}
	switch {
	case n.Lit != nil:
		return Lit(*n.Lit), nil
	case n.Lits != nil:
		if len(n.Lits) == 0 {
			return nil, fmt.Errorf("%w: empty lits", ErrBadNode)
		}
		return Lits(n.Lits...), nil
	case n.Range != nil:
		if n.Range.To < n.Range.From {
			return nil, fmt.Errorf("range %d..%d is empty", n.Range.From, n.Range.To)
		}
		return Range(n.Range.From, n.Range.To, n.Range.ZeroFill, n.Range.Width), nil
	case n.Ref != "":
		return c.ref(n.Ref)
	}
	xs, err := c.nodes(n.Seq, n.Alt)
	if err != nil {
		return nil, err
	}
	if n.Seq != nil {
		if len(xs) == 0 {
			return nil, fmt.Errorf("empty seq")
		}
		return SeqAll(xs...), nil
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: empty alt", ErrBadNode)
	}
	return Alt(xs...), nil
}

func (c *compiler) nodes(seq, alt []Node) ([]Pattern, error) {
	src := seq
	if src == nil {
		src = alt
	}
	out := make([]Pattern, 0, len(src))
	for i, n := range src {
		p, err := c.node(n)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Describe converts a tree back into its file form. Nested sequences are
// flattened and choices of literals become lits, so a tree without empty
// choices re-parses to an equivalent pattern. ParseGrammar never builds an
// empty choice.
func Describe(p Pattern) Node {
	switch p := p.(type) {
	case *Literal:
		v := p.Value
		return Node{Lit: &v}
	case *Sequence:
		return Node{Seq: flattenSeq(p, nil)}
	case *Choice:
		if vals, ok := literalValues(p); ok {
			return Node{Lits: vals}
		}
		xs := make([]Node, 0, len(p.Alternatives))
		for _, a := range p.Alternatives {
			xs = append(xs, Describe(a))
		}
		return Node{Alt: xs}
	default:
		panic(&UnknownPatternError{Node: p})
	}
}

// flattenSeq only unrolls the left spine, which is what SeqAll builds.
func flattenSeq(s *Sequence, tail []Node) []Node {
	right := append([]Node{Describe(s.Right)}, tail...)
	if left, ok := s.Left.(*Sequence); ok {
		return flattenSeq(left, right)
	}
	return append([]Node{Describe(s.Left)}, right...)
}

func literalValues(c *Choice) ([]string, bool) {
	vals := make([]string, 0, len(c.Alternatives))
	for _, a := range c.Alternatives {
		l, ok := a.(*Literal)
		if !ok {
			return nil, false
		}
		vals = append(vals, l.Value)
	}
	return vals, len(vals) > 0
}
