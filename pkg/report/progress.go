package report

import (
	"regexp"
	"strconv"
)

var progressStatus = regexp.MustCompile(`fuzzing: (\d+)/(\d+)`)

// ParseProgress recognizes the periodic status line the engine prints
// while a campaign runs, reporting how many calls were made out of the limit.
func ParseProgress(line string) (done, total int64, ok bool) {
	m := progressStatus.FindStringSubmatch(line)
	if m == nil {
		return
	}
	var err error
	if done, err = strconv.ParseInt(m[1], 10, 64); err != nil {
		return
	}
	if total, err = strconv.ParseInt(m[2], 10, 64); err != nil {
		return
	}
	ok = total > 0
	return
}
