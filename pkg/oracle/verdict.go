package oracle

import (
	"github.com/FuzzyMonkeyCo/verdict/pkg/report"
)

// Judgement compares one property's outcome to what its name promised.
type Judgement struct {
	Result   report.PropertyResult
	Expected report.Outcome
	Correct  bool
	Message  string
}

func judge(result report.PropertyResult, expected report.Outcome) Judgement {
	j := Judgement{
		Result:   result,
		Expected: expected,
		Correct:  result.Outcome == expected,
	}
	switch {
	case expected == report.Failed && j.Correct:
		j.Message = "Correctly failed as expected"
	case expected == report.Failed:
		j.Message = "Expected to fail but passed"
	case j.Correct:
		j.Message = "Correctly passed"
	default:
		j.Message = "Expected to pass but failed"
	}
	return j
}

func (j Judgement) String() string { return j.Result.Name + ": " + j.Message }

// Verdict aggregates the judgements of a whole campaign.
type Verdict struct {
	Judgements []Judgement
	Correct    []string
	Violations []string
}

// SuitePassed holds when no property disagreed with its expectation.
// An empty campaign trivially passes.
func (v *Verdict) SuitePassed() bool { return len(v.Violations) == 0 }

// Counts tallies properties by their actual outcome.
func (v *Verdict) Counts() (passed, failed int) {
	for _, j := range v.Judgements {
		if j.Result.Outcome == report.Passing {
			passed++
		} else {
			failed++
		}
	}
	return
}
