package report

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	ansiEscapes   = regexp.MustCompile("\x1b\\[[0-9;?]*[A-Za-z]")
	failureStatus = regexp.MustCompile(`\b(falsified|failed)\b`)
)

// Parse extracts property results and footer statistics from an engine's
// console report. It never fails: unrecognized lines are skipped and
// an empty or garbled report yields empty results and stats.
//
// A result line reads `name: status`. When a status mentions both passing
// and failed (or falsified), passing wins.
func Parse(raw string) (results []PropertyResult, stats CampaignStats) {
	lines := splitLines(raw)
	results = parseResults(lines)
	stats = parseStats(lines)
	return
}

func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		lines[i] = ansiEscapes.ReplaceAllString(line, "")
	}
	return lines
}

func parseResults(lines []string) []PropertyResult {
	results := make([]PropertyResult, 0)
	positions := make(map[string]int)
	for _, line := range lines {
		name, status, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if name = strings.TrimSpace(name); !isPropertyName(name) {
			continue
		}
		outcome, ok := statusOutcome(status)
		if !ok {
			continue
		}

		if i, ok := positions[name]; ok {
			log.Printf("[WRN] property %q reported more than once: %s then %s", name, results[i].Outcome, outcome)
			results[i].Outcome = outcome
			continue
		}
		positions[name] = len(results)
		results = append(results, PropertyResult{Name: name, Outcome: outcome})
	}
	return results
}

// Engine log lines carry timestamps and tags before their first colon.
func isPropertyName(name string) bool {
	return name != "" && strings.IndexFunc(name, unicode.IsSpace) == -1
}

func statusOutcome(status string) (Outcome, bool) {
	status = strings.ToLower(status)
	switch {
	case strings.Contains(status, "passing"):
		return Passing, true
	case failureStatus.MatchString(status):
		return Failed, true
	default:
		return Passing, false
	}
}

func parseStats(lines []string) CampaignStats {
	stats := make(CampaignStats, len(Stats))
	seen := make(map[Stat]struct{}, len(Stats))
	for i := len(lines) - 1; i >= 0 && len(seen) != len(Stats); i-- {
		line := strings.TrimSpace(lines[i])
		for _, s := range Stats {
			if _, ok := seen[s]; ok {
				continue
			}
			if !strings.HasPrefix(line, s.FooterLabel()) {
				continue
			}
			seen[s] = struct{}{}

			value := strings.TrimSpace(line[strings.LastIndex(line, ":")+1:])
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				log.Printf("[DBG] dropping malformed %q: %v", line, err)
				continue
			}
			stats[s] = n
		}
	}
	return stats
}
