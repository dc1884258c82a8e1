package oracle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FuzzyMonkeyCo/verdict/pkg/report"
)

func TestMarkerRule(t *testing.T) {
	o := Default()
	for _, tc := range []struct {
		name    string
		outcome report.Outcome
		correct bool
		message string
	}{
		{"invariant_x_should_fail", report.Failed, true, "invariant_x_should_fail: Correctly failed as expected"},
		{"invariant_x_should_fail", report.Passing, false, "invariant_x_should_fail: Expected to fail but passed"},
		{"invariant_y", report.Passing, true, "invariant_y: Correctly passed"},
		{"invariant_y", report.Failed, false, "invariant_y: Expected to pass but failed"},
	} {
		v := o.Evaluate([]report.PropertyResult{{Name: tc.name, Outcome: tc.outcome}})
		require.Len(t, v.Judgements, 1)
		require.Equal(t, tc.correct, v.Judgements[0].Correct)
		require.Equal(t, tc.correct, v.SuitePassed())
		if tc.correct {
			require.Equal(t, []string{tc.message}, v.Correct)
			require.Empty(t, v.Violations)
		} else {
			require.Empty(t, v.Correct)
			require.Equal(t, []string{tc.message}, v.Violations)
		}
	}
}

func TestEmptyCampaignPasses(t *testing.T) {
	results, _ := report.Parse("")
	v := Default().Evaluate(results)
	require.True(t, v.SuitePassed())
	require.Empty(t, v.Correct)
	require.Empty(t, v.Violations)
	passed, failed := v.Counts()
	require.Zero(t, passed)
	require.Zero(t, failed)
}

func TestEndToEndVerdicts(t *testing.T) {
	const text = `
prop_add_commutative: passing
prop_overflow_should_fail: %s
prop_balance_invariant: passing
Seed: 7
Corpus size: 3
`
	results, _ := report.Parse(fmt.Sprintf(text, "falsified"))
	v := Default().Evaluate(results)
	require.True(t, v.SuitePassed())
	require.Len(t, v.Correct, 3)
	require.Empty(t, v.Violations)
	passed, failed := v.Counts()
	require.Equal(t, 2, passed)
	require.Equal(t, 1, failed)

	results, _ = report.Parse(fmt.Sprintf(text, "passing"))
	v = Default().Evaluate(results)
	require.False(t, v.SuitePassed())
	require.Equal(t, []string{"prop_overflow_should_fail: Expected to fail but passed"}, v.Violations)
	require.Len(t, v.Correct, 2)
}

func TestJudgementsFollowResultsOrder(t *testing.T) {
	v := Default().Evaluate([]report.PropertyResult{
		{Name: "c", Outcome: report.Failed},
		{Name: "a_should_fail", Outcome: report.Failed},
		{Name: "b", Outcome: report.Passing},
	})
	names := make([]string, 0, len(v.Judgements))
	for _, j := range v.Judgements {
		names = append(names, j.Result.Name)
	}
	require.Equal(t, []string{"c", "a_should_fail", "b"}, names)
	require.Equal(t, []string{"c: Expected to pass but failed"}, v.Violations)
}

func TestCustomRules(t *testing.T) {
	o, err := New([]Rule{
		{Marker: "_must_revert", Expect: report.Failed},
		{Marker: "_flaky_pass", Expect: report.Passing},
	}, report.Passing)
	require.NoError(t, err)
	require.Equal(t, report.Failed, o.Expected("transfer_must_revert"))
	require.Equal(t, report.Passing, o.Expected("transfer_should_fail"))
	require.Equal(t, report.Failed, o.Expected("x_flaky_pass_must_revert"))
	require.Len(t, o.Rules(), 2)

	// First declared rule wins when a name carries several markers
	o, err = New([]Rule{
		{Marker: "_flaky_pass", Expect: report.Passing},
		{Marker: "_must_revert", Expect: report.Failed},
	}, report.Failed)
	require.NoError(t, err)
	require.Equal(t, report.Passing, o.Expected("x_flaky_pass_must_revert"))
	require.Equal(t, report.Failed, o.Expected("x_must_revert"))

	o, err = New(nil, report.Failed)
	require.NoError(t, err)
	require.Equal(t, report.Failed, o.Expected("anything"))
	require.Equal(t, report.Failed, o.Fallback())
}

func TestNewRejectsBadRules(t *testing.T) {
	_, err := New([]Rule{{Marker: "", Expect: report.Failed}}, report.Passing)
	require.EqualError(t, err, `marker is empty`)

	_, err = New([]Rule{
		{Marker: "_x", Expect: report.Failed},
		{Marker: "_x", Expect: report.Passing},
	}, report.Passing)
	require.EqualError(t, err, `marker "_x" appears more than once`)
}

func TestDefaultMatchesOriginalConvention(t *testing.T) {
	o := Default()
	require.Equal(t, []Rule{{Marker: ShouldFailMarker, Expect: report.Failed}}, o.Rules())
	require.Equal(t, report.Passing, o.Fallback())
}
