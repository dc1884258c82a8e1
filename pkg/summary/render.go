package summary

import (
	"io"
	"strconv"
	"strings"

	"github.com/FuzzyMonkeyCo/verdict/pkg/as"
	"github.com/FuzzyMonkeyCo/verdict/pkg/oracle"
	"github.com/FuzzyMonkeyCo/verdict/pkg/report"
)

const (
	tagPassed    = "PASS"
	tagFailed    = "FAIL"
	prefixOK     = "✓"
	prefixBroken = "✗"
)

// Render reports a campaign to the user: outcome counts, each property,
// expected behaviors, violations if any then the statistics that were present.
// It only writes to w.
func Render(w io.Writer, results []report.PropertyResult, stats report.CampaignStats, v *oracle.Verdict) error {
	var b strings.Builder

	passed, failed := 0, 0
	for _, result := range results {
		if result.Outcome == report.Passing {
			passed++
		} else {
			failed++
		}
	}
	as.ColorWRN.Fprintf(&b, "%d passed, %d failed\n", passed, failed)

	for _, result := range results {
		if result.Outcome == report.Passing {
			as.ColorOK.Fprint(&b, tagPassed)
		} else {
			as.ColorERR.Fprint(&b, tagFailed)
		}
		b.WriteString(" ")
		as.ColorNFO.Fprintln(&b, result.Name)
	}

	b.WriteString("\n")
	as.ColorNFO.Fprintln(&b, "Correct behaviors:")
	for _, line := range v.Correct {
		b.WriteString("  ")
		as.ColorOK.Fprint(&b, prefixOK)
		b.WriteString(" " + line + "\n")
	}

	if !v.SuitePassed() {
		b.WriteString("\n")
		as.ColorERR.Fprintln(&b, "Violations:")
		for _, line := range v.Violations {
			b.WriteString("  ")
			as.ColorERR.Fprint(&b, prefixBroken)
			b.WriteString(" " + line + "\n")
		}
	}

	if len(stats) != 0 {
		b.WriteString("\n")
		as.ColorNFO.Fprintln(&b, "Campaign statistics:")
		for _, s := range report.Stats {
			if value, ok := stats.Get(s); ok {
				as.ColorNFO.Fprintf(&b, "  %s:", s)
				b.WriteString(" " + formatInt(value) + "\n")
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Conclusion is the final one-line verdict.
func Conclusion(w io.Writer, v *oracle.Verdict) {
	if v.SuitePassed() {
		as.ColorOK.Fprintln(w, "All properties behaved as expected.")
		return
	}
	as.ColorERR.Fprintf(w, "%d %s behaved unexpectedly.\n",
		len(v.Violations), plural("property", len(v.Violations)))
}

func plural(s string, n int) string {
	if n == 1 {
		return s
	}
	if strings.HasSuffix(s, "y") {
		return s[:len(s)-1] + "ies"
	}
	return s + "s"
}

func formatInt(n int64) string { return strconv.FormatInt(n, 10) }
