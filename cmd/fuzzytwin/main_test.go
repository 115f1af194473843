// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzytwin/twinwidth"
)

// run executes the CLI with args and decodes its JSON output.
func run(t *testing.T, args ...string) (map[string]any, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "absent.env")}, args...))
	if err := root.Execute(); err != nil {
		return nil, err
	}
	var v map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &v), out.String())

	return v, nil
}

func TestTwinWidthExpr(t *testing.T) {
	out, err := run(t, "tw", "--tnorm", "prod", "--expr", "A B C; A-B:0.5 B-C:0.5 A-C:0.5")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, out["tw"], 1e-9)
	assert.Len(t, out["sequence"], 3)

	out, err = run(t, "tw", "--parallel", "3", "-e", "A B C; A-B:0.5 B-C:0.5 A-C:0.5")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, out["tw"], 1e-9)
}

func TestTwinWidthFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "path.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
nodes:
  - {name: A, membership: 1}
  - {name: B}
  - {name: C}
edges:
  - {source: A, target: B, weight: 0.5}
  - {source: B, target: C, weight: 0.5}
`), 0o600))

	out, err := run(t, "tw", p, "--tnorm", "min")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, out["tw"], 1e-9)
	assert.Equal(t, []any{[]any{[]any{"A", "C"}, []any{"B", "{A,C}"}}}, out["sequence"])
}

func TestTwinWidthErrors(t *testing.T) {
	_, err := run(t, "tw", "--max-vertices", "3", "-e", "A B C D; A-B B-C C-D")
	require.ErrorIs(t, err, twinwidth.ErrTooLarge)

	_, err = run(t, "tw", "--tnorm", "max", "-e", "A B")
	require.Error(t, err)

	_, err = run(t, "tw")
	require.Error(t, err)

	_, err = run(t, "tw", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestIsomorphism(t *testing.T) {
	out, err := run(t, "iso", "-e", "A B C; A-B B-C", "x y z; x-y y-z")
	require.NoError(t, err)
	assert.Equal(t, true, out["isomorphic"])
	assert.Equal(t, []any{
		map[string]any{"A": "x", "B": "y", "C": "z"},
		map[string]any{"A": "z", "B": "y", "C": "x"},
	}, out["mappings"])

	out, err = run(t, "iso", "-e", "A B C; A-B B-C", "x y z; x-y y-z x-z")
	require.NoError(t, err)
	assert.Equal(t, false, out["isomorphic"])
}

func TestSimilarity(t *testing.T) {
	out, err := run(t, "sim", "--tnorm", "min", "-e", "A B C; A-B:0.5 B-C:0.5", "A B C; A-B:0.2 B-C:0.2")
	require.NoError(t, err)
	assert.InDelta(t, 0.7, out["similarity"], 1e-9)

	out, err = run(t, "sim", "-e", "A B; A-B", "A B C; A-B")
	require.NoError(t, err)
	assert.Equal(t, "X", out["similarity"])
}

func TestServeRejectsBadOverride(t *testing.T) {
	_, err := run(t, "serve", "--parallel=-2")
	require.Error(t, err)
}

// Both tw and sim fall back to the same t-norm family.
func TestDefaultTNorm(t *testing.T) {
	sim, err := run(t, "sim", "-e", "A B C; A-B:0.5 B-C:0.5", "A B C; A-B:0.2 B-C:0.2")
	require.NoError(t, err)
	assert.InDelta(t, 0.7, sim["similarity"], 1e-9) // prod would give 0.74

	tw, err := run(t, "tw", "-e", "A B C; A-B:0.5 B-C:0.5 A-C:0.5")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, tw["tw"], 1e-9) // prod would give 0.5
}
