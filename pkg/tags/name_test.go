package tags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalName(t *testing.T) {
	require.NoError(t, LegalName("some_name"))
	require.NoError(t, LegalName("92"))
	require.NoError(t, LegalName("_ah"))
	require.NoError(t, LegalName("ah"))
	require.Error(t, LegalName("Ah"))
	require.Error(t, LegalName("ah ah"))
	require.Error(t, LegalName("ah-ah"))
	require.Error(t, LegalName("!!"))
}

func TestParseLabels(t *testing.T) {
	labels, err := ParseLabels([]string{"job=nightly", "branch=feat/x=y"})
	require.NoError(t, err)
	require.Equal(t, Labels{"job": "nightly", "branch": "feat/x=y"}, labels)

	labels, err = ParseLabels(nil)
	require.NoError(t, err)
	require.Empty(t, labels)

	for kv, msg := range map[string]string{
		"job":      `labels must follow key=value format: "job"`,
		"job=":     `value for label "job" is empty`,
		"Job=x":    `string should only contain characters from ` + Alphabet + `: "Job"`,
		"=nightly": `string is empty`,
	} {
		_, err := ParseLabels([]string{kv})
		require.EqualError(t, err, msg, kv)
	}

	_, err = ParseLabels([]string{"job=a", "job=b"})
	require.EqualError(t, err, `label "job" appears more than once`)
}
