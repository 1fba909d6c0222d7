package pattern

// Stats describes the shape of a pattern tree. Subtrees shared between
// parents are counted once per parent.
type Stats struct {
	Literals  int `json:"literals" yaml:"literals"`
	Sequences int `json:"sequences" yaml:"sequences"`
	Choices   int `json:"choices" yaml:"choices"`
	Depth     int `json:"depth" yaml:"depth"`
}

// Nodes is the total node count.
func (s Stats) Nodes() int { return s.Literals + s.Sequences + s.Choices }

// StatsOf walks p and collects its Stats.
func StatsOf(p Pattern) Stats {
	var s Stats
	s.Depth = collect(p, &s, 1)
	return s
}

func collect(p Pattern, s *Stats, depth int) int {
	switch p := p.(type) {
	case *Literal:
		s.Literals++
		return depth
	case *Sequence:
		s.Sequences++
		return max(collect(p.Left, s, depth+1), collect(p.Right, s, depth+1))
	case *Choice:
		s.Choices++
		deepest := depth
		for _, a := range p.Alternatives {
			deepest = max(deepest, collect(a, s, depth+1))
		}
		return deepest
	default:
		panic(&UnknownPatternError{Node: p})
	}
}

// Alternatives counts derivation paths through p: one per literal, the sum
// over a choice and the product over a sequence.
func Alternatives(p Pattern) int {
	switch p := p.(type) {
	case *Literal:
		return 1
	case *Sequence:
		return Alternatives(p.Left) * Alternatives(p.Right)
	case *Choice:
		n := 0
		for _, a := range p.Alternatives {
			n += Alternatives(a)
		}
		return n
	default:
		panic(&UnknownPatternError{Node: p})
	}
}
