package pattern

// Kind tags one matching branch.
type Kind uint8

const (
	// Failure means the branch cannot match.
	Failure Kind = iota
	// Success means the pattern consumed the whole input.
	Success
	// Continue means a prefix was consumed; see Outcome.Remainder.
	Continue
	// Incomplete means the input is a strict prefix of what the pattern wants.
	Incomplete
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Continue:
		return "continue"
	case Incomplete:
		return "incomplete"
	case Failure:
		return "failure"
	}
	return "unknown"
}

// Outcome is the result of one exploration branch.
type Outcome struct {
	Kind      Kind
	Remainder string // only set for Continue
}

func (o Outcome) String() string {
	if o.Kind == Continue {
		return "continue(" + o.Remainder + ")"
	}
	return o.Kind.String()
}

var (
	successOutcome    = Outcome{Kind: Success}
	incompleteOutcome = Outcome{Kind: Incomplete}
	failureOutcome    = Outcome{Kind: Failure}
)

func continueWith(rest string) Outcome { return Outcome{Kind: Continue, Remainder: rest} }

// Verdict summarises a full outcome set for callers that only need the two
// predicates. Both may be true for ambiguous grammars.
type Verdict struct {
	Complete bool `json:"complete"`
	Partial  bool `json:"partial"`
}

// Valid reports whether the input is complete or could still become complete.
func (v Verdict) Valid() bool { return v.Complete || v.Partial }

// Rejected reports that every branch failed.
func (v Verdict) Rejected() bool { return !v.Valid() }

func (v Verdict) String() string {
	switch {
	case v.Complete && v.Partial:
		return "complete+partial"
	case v.Complete:
		return "complete"
	case v.Partial:
		return "partial"
	}
	return "rejected"
}
