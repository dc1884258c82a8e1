package oracle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/FuzzyMonkeyCo/verdict/pkg/report"
)

// ShouldFailMarker flags properties written to be falsified.
const ShouldFailMarker = "_should_fail"

// Rule expects any property whose name contains Marker to end up as Expect.
type Rule struct {
	Marker string
	Expect report.Outcome
}

// Oracle decides which outcome each property is expected to have
// from its name alone.
type Oracle struct {
	rules    []Rule
	fallback report.Outcome
}

// New validates rules. The first rule whose marker a name contains applies,
// names matching no rule are expected to end up as fallback.
func New(rules []Rule, fallback report.Outcome) (*Oracle, error) {
	seen := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		if rule.Marker == "" {
			return nil, errors.New("marker is empty")
		}
		if _, ok := seen[rule.Marker]; ok {
			return nil, fmt.Errorf("marker %q appears more than once", rule.Marker)
		}
		seen[rule.Marker] = struct{}{}
	}
	return &Oracle{
		rules:    append([]Rule(nil), rules...),
		fallback: fallback,
	}, nil
}

// Default expects properties marked with ShouldFailMarker to fail
// and every other property to pass.
func Default() *Oracle {
	return &Oracle{
		rules:    []Rule{{Marker: ShouldFailMarker, Expect: report.Failed}},
		fallback: report.Passing,
	}
}

// Rules lists the rules in matching order.
func (o *Oracle) Rules() []Rule { return append([]Rule(nil), o.rules...) }

// Fallback is expected of names no rule matches.
func (o *Oracle) Fallback() report.Outcome { return o.fallback }

// Expected returns the outcome a property named name should have.
func (o *Oracle) Expected(name string) report.Outcome {
	for _, rule := range o.rules {
		if strings.Contains(name, rule.Marker) {
			return rule.Expect
		}
	}
	return o.fallback
}

// Evaluate judges each result against its expected outcome.
func (o *Oracle) Evaluate(results []report.PropertyResult) *Verdict {
	v := &Verdict{
		Judgements: make([]Judgement, 0, len(results)),
		Correct:    make([]string, 0, len(results)),
		Violations: make([]string, 0),
	}
	for _, result := range results {
		j := judge(result, o.Expected(result.Name))
		v.Judgements = append(v.Judgements, j)
		if j.Correct {
			v.Correct = append(v.Correct, j.String())
		} else {
			v.Violations = append(v.Violations, j.String())
		}
	}
	return v
}
