package commands

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	noBus = false
	return out.String(), err
}

func TestRingCommand(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	out, err := run(t, "ring", "--radius", "50", "--gap", "0.3")
	require.NoError(t, err)
	assert.Contains(t, out, "ALL_PASS_RING")
	assert.Contains(t, out, "layer 1/0   5 shapes")
	out, err = run(t, "euler-ring", "--no-bus")
	require.NoError(t, err)
	assert.Contains(t, out, "EULER_RACETRACK")
	assert.Contains(t, out, "4 shapes")
}

func TestGratingCommands(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	out, err := run(t, "grating", "arc", "--radii", "1.5,2.2,2.9")
	require.NoError(t, err)
	assert.Contains(t, out, "GRATING_ARC")
	assert.Contains(t, out, "layer 2/0   3 shapes")
	out, err = run(t, "grating", "fan", "--arcs", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "GRATING_NATURE")
	out, err = run(t, "grating", "periodic", "--pairs", "0")
	assert.Error(t, err)
}

func TestInvalidGapFails(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := run(t, "ring", "--gap", "-1")
	assert.Error(t, err)
}
