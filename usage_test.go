package main

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/FuzzyMonkeyCo/verdict/pkg/code"
)

func init() { color.NoColor = true }

func TestUsageRun(t *testing.T) {
	args, ret := usage([]string{"run", "--stream", "--summary=out.yml", "--diff"})
	require.Equal(t, code.OK, ret)
	require.NotNil(t, args)
	require.True(t, args.Run)
	require.True(t, args.Stream)
	require.False(t, args.Buffered)
	require.True(t, args.Diff)
	require.Equal(t, "out.yml", args.Summary)
	require.Equal(t, defaultStarfile, args.Starfile)
	require.Zero(t, args.Verbosity)
}

func TestUsageParse(t *testing.T) {
	args, ret := usage([]string{"-vv", "parse", "--starfile=other.star", "report.txt"})
	require.Equal(t, code.OK, ret)
	require.True(t, args.Parse)
	require.Equal(t, uint8(2), args.Verbosity)
	require.Equal(t, "other.star", args.Starfile)
	require.Equal(t, "report.txt", args.File)
}

func TestUsageLogs(t *testing.T) {
	args, ret := usage([]string{"logs", "--previous=2"})
	require.Equal(t, code.OK, ret)
	require.True(t, args.Logs)
	require.Equal(t, uint64(2), args.LogOffset)
}

func TestUsageVersion(t *testing.T) {
	for _, argv := range [][]string{{"version"}, {"--version"}} {
		args, ret := usage(argv)
		require.Equal(t, code.OK, ret)
		require.True(t, args.Version)
	}
}

func TestUsageHelp(t *testing.T) {
	args, ret := usage([]string{"help"})
	require.Nil(t, args)
	require.Equal(t, code.OK, ret)
}

func TestUsageRejectsBadArgs(t *testing.T) {
	for _, argv := range [][]string{
		{"bogus"},
		{"run", "--stream", "--buffered"},
		{"run", "--progress=fancy"},
		{"fmt", "--show"},
		{"parse", "--tag=Job=x"},
		{"run", "--tag=job"},
	} {
		args, ret := usage(argv)
		require.Nil(t, args, argv)
		require.Equal(t, code.Failed, ret, argv)
	}
}
