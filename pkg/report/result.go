package report

// Outcome is the terminal state of one property once a campaign completed.
type Outcome int

const (
	// Passing means the engine found no input violating the property
	Passing Outcome = iota
	// Failed means the engine falsified the property
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Passing:
		return "passing"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ParseOutcome reads back what Outcome.String produces.
func ParseOutcome(s string) (o Outcome, ok bool) {
	switch s {
	case "passing":
		return Passing, true
	case "failed":
		return Failed, true
	}
	return
}

// PropertyResult is a fuzzed property and its outcome.
type PropertyResult struct {
	Name    string
	Outcome Outcome
}
