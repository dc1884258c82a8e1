package runtime

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatIsStable(t *testing.T) {
	starfile := writeStarfile(t, `
# Our campaign
verdict.engine(contract="TokenTest",   stream=True)
verdict.expect(marker = "_should_fail",
     outcome = "failed")
`)

	var printed bytes.Buffer
	require.NoError(t, Format(starfile, false, &printed))
	require.Contains(t, printed.String(), "verdict.engine(")

	require.NoError(t, Format(starfile, true, nil))
	formatted, err := os.ReadFile(starfile)
	require.NoError(t, err)
	require.Equal(t, printed.String(), string(formatted))

	require.NoError(t, Format(starfile, true, nil))
	again, err := os.ReadFile(starfile)
	require.NoError(t, err)
	require.Equal(t, string(formatted), string(again))

	rt, err := New(starfile)
	require.NoError(t, err)
	require.Equal(t, "TokenTest", rt.Engine().Contract)
	require.True(t, rt.Streams())
}

func TestFormatRejectsSyntaxErrors(t *testing.T) {
	starfile := writeStarfile(t, "verdict.engine(\n")
	require.Error(t, Format(starfile, false, &bytes.Buffer{}))
}
