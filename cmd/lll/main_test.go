package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const classicText = "3\n1 1 1\n-1 0 2\n3 5 6\n0.75\n"

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()

	return out.String(), err
}

// writeFile creates a file under t.TempDir.
func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

// TestReduce_TextStdin reduces the walkthrough basis from stdin.
func TestReduce_TextStdin(t *testing.T) {
	out, err := run(t, classicText, "reduce")
	require.NoError(t, err)
	assert.Equal(t, "0 1 0\n1 0 1\n-1 0 2\n", out)
}

// TestReduce_YAMLFileToYAML covers auto-detection and YAML output.
func TestReduce_YAMLFileToYAML(t *testing.T) {
	p := writeFile(t, "basis.yaml", "delta: 3/4\nbasis: [[201, 37], [1648, 297]]\n")

	out, err := run(t, "", "reduce", p, "--output", "yaml", "--metrics", "--trace")
	require.NoError(t, err)

	var rep struct {
		Delta string    `yaml:"delta"`
		Swaps int       `yaml:"swaps"`
		Basis [][]int64 `yaml:"basis"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "3/4", rep.Delta)
	assert.Equal(t, 2, rep.Swaps)
	assert.Equal(t, [][]int64{{1, 32}, {40, 1}}, rep.Basis)
}

// TestReduce_DeltaOverride checks --delta replaces the input threshold.
func TestReduce_DeltaOverride(t *testing.T) {
	out, err := run(t, "2\n1 2\n3 4\n0.75\n", "reduce", "--delta", "3/10")
	require.NoError(t, err)
	assert.Equal(t, "1 0\n0 2\n", out)
}

// TestReduce_Errors surfaces library and input failures.
func TestReduce_Errors(t *testing.T) {
	_, err := run(t, "2\n1 2\n1 2\n0.75\n", "reduce")
	assert.ErrorContains(t, err, "linearly dependent")

	_, err = run(t, "2\n1 0\n0 1\n2\n", "reduce", "--max-iterations", "10")
	assert.ErrorContains(t, err, "iteration limit")

	_, err = run(t, "x\n", "reduce")
	assert.ErrorContains(t, err, "invalid input")

	_, err = run(t, classicText, "reduce", "--output", "xml")
	assert.Error(t, err)

	_, err = run(t, classicText, "reduce", "--format", "json")
	assert.Error(t, err)

	_, err = run(t, "", "reduce", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

// TestReduce_MaxIterationsFromYAML verifies the document cap is honoured.
func TestReduce_MaxIterationsFromYAML(t *testing.T) {
	p := writeFile(t, "cap.yml", "delta: 0.75\nmax_iterations: 1\nbasis: [[1, 1, 1], [-1, 0, 2], [3, 5, 6]]\n")
	_, err := run(t, "", "reduce", p)
	assert.ErrorContains(t, err, "iteration limit")

	// flag wins over document
	out, err := run(t, "", "reduce", p, "--max-iterations", "100")
	require.NoError(t, err)
	assert.Equal(t, "0 1 0\n1 0 1\n-1 0 2\n", out)
}

// TestVerify reports verdicts for reduced and unreduced bases.
func TestVerify(t *testing.T) {
	out, err := run(t, "3\n0 1 0\n1 0 1\n-1 0 2\n0.75\n", "verify")
	require.NoError(t, err)
	assert.Equal(t, "determinant: 3\nsize-reduced: yes\nlovasz(3/4): yes\n", out)

	out, err = run(t, classicText, "verify")
	assert.ErrorIs(t, err, errNotReduced)
	assert.Contains(t, out, "determinant: 3\n")
	assert.Contains(t, out, "size-reduced: no")
}

// TestRoot_BadLogFlags validates persistent flags.
func TestRoot_BadLogFlags(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"--log-format", "xml", "reduce"})
	root.SetIn(strings.NewReader(classicText))
	root.SetOut(&bytes.Buffer{})
	assert.Error(t, root.Execute())

	root = newRootCmd()
	root.SetArgs([]string{"--log-level", "loud", "reduce"})
	root.SetIn(strings.NewReader(classicText))
	root.SetOut(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}
