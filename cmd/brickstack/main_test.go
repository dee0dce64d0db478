package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brickstack/brickio"
	"github.com/katalvlaran/brickstack/surface"
)

const example = `1,0,1~1,2,1   <- A
0,0,2~2,0,2   <- B
0,2,3~2,2,3   <- C
0,0,4~0,2,4   <- D
2,0,5~2,2,5   <- E
0,1,6~2,1,6   <- F
1,1,8~1,1,9   <- G
`

// run executes the CLI with stdin and returns stdout, stderr and the error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// TestRemovable prints the bare count, by default and via the subcommand.
func TestRemovable(t *testing.T) {
	out, _, err := run(t, example)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, _, err = run(t, example, "removable", "--list")
	require.NoError(t, err)
	assert.Equal(t, "5\nB\nC\nD\nE\nG\n", out)
}

// TestRemovable_JSON emits a structured report.
func TestRemovable_JSON(t *testing.T) {
	out, _, err := run(t, example, "removable", "-o", "json", "--list")
	require.NoError(t, err)

	var rep removableReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 5, rep.Count)
	assert.Equal(t, []string{"B", "C", "D", "E", "G"}, rep.Bricks)
}

// TestSettle prints settled bricks that parse back in input order.
func TestSettle(t *testing.T) {
	out, _, err := run(t, example, "settle")
	require.NoError(t, err)

	bricks, err := brickio.Parse(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, bricks, 7)
	assert.Equal(t, "C", bricks[2].Label)
	assert.Equal(t, 2, bricks[2].Lower.Z)
	assert.Equal(t, "1,1,5~1,1,6 <- G", bricks[6].String())
}

// TestCascade sums chain reactions.
func TestCascade(t *testing.T) {
	out, _, err := run(t, example, "cascade", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	out, _, err = run(t, example, "cascade", "--per-brick")
	require.NoError(t, err)
	assert.Equal(t, "7\nA\t6\nF\t1\n", out)

	_, _, err = run(t, example, "cascade", "--workers", "-1")
	assert.Error(t, err)
}

// TestGraph lists bricks bottom-up with their neighbors.
func TestGraph(t *testing.T) {
	out, _, err := run(t, example, "graph")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "A: on [] holds [B C]", lines[0])
	assert.Equal(t, "D (removable): on [B C] holds [F]", lines[3])
	assert.Equal(t, "G (removable): on [F] holds []", lines[6])
}

// TestEmptyInput reports zero everywhere instead of failing.
func TestEmptyInput(t *testing.T) {
	out, _, err := run(t, "\n\n", "removable")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, _, err = run(t, "", "cascade")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, _, err = run(t, "", "graph")
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestBelowGround settles a brick lifted from z=0 and the one stacked on it.
func TestBelowGround(t *testing.T) {
	out, _, err := run(t, "0,0,0~0,0,0 <- A\n0,0,1~0,0,1 <- B\n", "settle")
	require.NoError(t, err)
	assert.Equal(t, "0,0,1~0,0,1 <- A\n0,0,2~0,0,2 <- B\n", out)
}

// TestConfigFile reads input and output format from YAML; flags override.
func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bricks.txt")
	require.NoError(t, os.WriteFile(input, []byte(example), 0o600))
	cfgPath := filepath.Join(dir, "brickstack.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input: "+input+"\noutput:\n  format: json\n"), 0o600))

	out, _, err := run(t, "", "--config", cfgPath, "cascade")
	require.NoError(t, err)
	assert.JSONEq(t, `{"total": 7}`, out)

	out, _, err = run(t, "", "--config", cfgPath, "-o", "text", "removable")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

// TestErrors: malformed input and overlapping bricks fail with a diagnostic.
func TestErrors(t *testing.T) {
	_, stderr, err := run(t, "1,0,1~1,2,1\n1,0,1 1,2,1\n", "removable")
	require.Error(t, err)
	assert.ErrorIs(t, err, brickio.ErrMissingSeparator)
	assert.Contains(t, stderr, "line 2")

	_, stderr, err = run(t, "0,0,1~0,0,5\n0,0,4~2,0,4\n", "removable")
	require.Error(t, err)
	assert.ErrorIs(t, err, surface.ErrOverlap)
	assert.Contains(t, stderr, "brickstack failed")

	_, _, err = run(t, example, "--log-level", "loud")
	assert.Error(t, err)

	_, _, err = run(t, "", "-i", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
