package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FuzzyMonkeyCo/verdict/pkg/code"
)

const falsifyingEngine = `
if [ "$1" = "--version" ]; then
  echo "Echidna 2.2.3"
  exit 0
fi
cat <<'EOF'
prop_add_commutative: passing
prop_overflow_should_fail: falsified!
Seed: 7
EOF
exit 1
`

const brokenEngine = `
if [ "$1" = "--version" ]; then
  echo "Echidna 2.2.3"
  exit 0
fi
echo "no such contract" >&2
exit 2
`

// runWith runs a campaign against a fake engine script, in every progress mode.
func runWith(t *testing.T, script string, stream bool) map[string]int {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake engines are shell scripts")
	}
	dir := t.TempDir()
	binary := filepath.Join(dir, "echidna")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"+script), 0755))

	starfile := filepath.Join(dir, "verdict.star")
	cfg := `verdict.engine(binary = ` + strconv.Quote(binary) + `, contract = "TokenTest")`
	require.NoError(t, os.WriteFile(starfile, []byte(cfg), 0644))

	mode := "--buffered"
	if stream {
		mode = "--stream"
	}
	rets := make(map[string]int, 3)
	for _, progress := range []string{progressCI, progressCLI, progressDots} {
		args, ret := usage([]string{"run", mode, "--progress=" + progress, "--starfile=" + starfile})
		require.Equal(t, code.OK, ret)
		rets[progress] = doRun(context.Background(), args)
	}
	return rets
}

func TestRunToleratesEngineExitWithResults(t *testing.T) {
	for _, stream := range []bool{false, true} {
		for progress, ret := range runWith(t, falsifyingEngine, stream) {
			require.Equal(t, code.OK, ret, progress)
		}
	}
}

func TestRunFailsWhenEngineProducesNoResults(t *testing.T) {
	for _, stream := range []bool{false, true} {
		for progress, ret := range runWith(t, brokenEngine, stream) {
			require.Equal(t, code.FailedExec, ret, progress)
		}
	}
}

func TestRunMissingEngine(t *testing.T) {
	starfile := filepath.Join(t.TempDir(), "verdict.star")
	cfg := `verdict.engine(binary = "verdict-surely-missing-echidna")`
	require.NoError(t, os.WriteFile(starfile, []byte(cfg), 0644))

	args, ret := usage([]string{"run", "--starfile=" + starfile})
	require.Equal(t, code.OK, ret)
	require.Equal(t, code.FailedRequire, doRun(context.Background(), args))
}
