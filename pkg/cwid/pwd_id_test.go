package cwid

import (
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func inTempDir(t *testing.T) {
	t.Helper()
	t.Setenv("TMPDIR", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}

func TestPwdID(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on $TMPDIR")
	}
	inTempDir(t)

	const name, starfile = "verdikt", "verdict.star"
	err := os.WriteFile(starfile, nil, 0644)
	require.NoError(t, err)

	err = MakePwdID(name, starfile, 0)
	require.NoError(t, err)
	require.Contains(t, LogFile(), "/.verdikt_")
	require.True(t, strings.HasSuffix(LogFile(), "_00000000000000000001.log"))
	first := LogFile()

	// Slots advance once a run logged

	err = os.WriteFile(first, nil, 0644)
	require.NoError(t, err)

	err = MakePwdID(name, starfile, 0)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(LogFile(), "_00000000000000000002.log"))

	// Offsets look back at previous runs

	err = MakePwdID(name, starfile, 1)
	require.NoError(t, err)
	require.Equal(t, first, LogFile())

	err = MakePwdID(name, starfile, 2)
	require.EqualError(t, err, "no run that far back: only 1 so far")

	// PwdID changes with starfile

	err = MakePwdID(name, "other.star", 0)
	require.NoError(t, err)
	const firstSlot = "_00000000000000000001.log"
	require.True(t, strings.HasSuffix(LogFile(), firstSlot))
	require.NotEqual(t, strings.TrimSuffix(first, firstSlot), strings.TrimSuffix(LogFile(), firstSlot))

	// No symlinks allowed

	err = os.Symlink(starfile, "fm.star")
	require.NoError(t, err)
	err = MakePwdID(name, "fm.star", 0)
	require.EqualError(t, err, `is a symlink: "fm.star"`)
}

func TestPwdIDIgnoresStrayFiles(t *testing.T) {
	inTempDir(t)
	const name, firstSlot = "verdikt", "_00000000000000000001.log"

	err := MakePwdID(name, "verdict.star", 0)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(LogFile(), firstSlot))
	base := strings.TrimSuffix(LogFile(), firstSlot)

	err = os.WriteFile(base+"_"+strings.Repeat("x", slotDigits)+".log", nil, 0644)
	require.NoError(t, err)

	err = MakePwdID(name, "verdict.star", 0)
	require.NoError(t, err)
	require.Equal(t, base+firstSlot, LogFile())
}

func TestPwdIDWithoutStarfile(t *testing.T) {
	inTempDir(t)
	err := MakePwdID("verdikt", "missing.star", 0)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(LogFile(), "_00000000000000000001.log"))
}
