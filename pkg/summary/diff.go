package summary

import (
	"io"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/FuzzyMonkeyCo/verdict/pkg/oracle"
)

// RenderDiff shows expected outcomes against observed ones as a unified diff.
// Nothing is written when every property behaved as expected.
func RenderDiff(w io.Writer, v *oracle.Verdict) error {
	if v.SuitePassed() {
		return nil
	}
	expected := make([]string, 0, len(v.Judgements))
	observed := make([]string, 0, len(v.Judgements))
	for _, j := range v.Judgements {
		expected = append(expected, j.Result.Name+": "+j.Expected.String()+"\n")
		observed = append(observed, j.Result.Name+": "+j.Result.Outcome.String()+"\n")
	}
	return difflib.WriteUnifiedDiff(w, difflib.UnifiedDiff{
		A:        expected,
		B:        observed,
		FromFile: "expected",
		ToFile:   "observed",
		Context:  1,
	})
}
