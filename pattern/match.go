package pattern

import (
	"fmt"
	"strings"
)

// UnknownPatternError is the panic value raised when Run meets a node that is
// not one of the package's variants, such as a nil Pattern. It marks a broken
// tree, not a failed match.
type UnknownPatternError struct {
	Node Pattern
}

func (e *UnknownPatternError) Error() string {
	return fmt.Sprintf("pattern: unknown node %T", e.Node)
}

// Run matches input against p and returns the outcome of every branch, in
// grammar order. Nothing is pruned: an ambiguous input can be Success on one
// branch and Incomplete on another.
func Run(input string, p Pattern) []Outcome {
	return run(input, p, nil)
}

// run appends to out so a Choice does not allocate a slice per alternative.
func run(input string, p Pattern, out []Outcome) []Outcome {
	switch p := p.(type) {
	case *Literal:
		return append(out, matchLiteral(input, p.Value))
	case *Choice:
		for _, alt := range p.Alternatives {
			out = run(input, alt, out)
		}
		return out
	case *Sequence:
		for _, o := range run(input, p.Left, nil) {
			switch o.Kind {
			case Failure:
			case Success:
				out = run("", p.Right, out)
			case Incomplete:
				out = append(out, o)
			case Continue:
				out = run(o.Remainder, p.Right, out)
			default:
				panic(fmt.Sprintf("pattern: unknown outcome kind %d", o.Kind))
			}
		}
		return out
	default:
		panic(&UnknownPatternError{Node: p})
	}
}

// matchLiteral covers the four mutually exclusive cases of comparing input
// with a literal value.
func matchLiteral(input, value string) Outcome {
	switch {
	case input == value:
		return successOutcome
	case strings.HasPrefix(input, value):
		return continueWith(input[len(value):])
	case strings.HasPrefix(value, input):
		return incompleteOutcome
	default:
		return failureOutcome
	}
}

// IsComplete reports whether some branch consumes all of input.
func IsComplete(input string, p Pattern) bool {
	return Classify(input, p).Complete
}

// IsPartial reports whether input is a strict prefix of something p accepts.
func IsPartial(input string, p Pattern) bool {
	return Classify(input, p).Partial
}

// Classify runs p once and reports both predicates.
func Classify(input string, p Pattern) Verdict {
	var v Verdict
	for _, o := range Run(input, p) {
		switch o.Kind {
		case Success:
			v.Complete = true
		case Incomplete:
			v.Partial = true
		}
		if v.Complete && v.Partial {
			break
		}
	}
	return v
}
