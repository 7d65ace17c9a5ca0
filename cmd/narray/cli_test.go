package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
metadata:
  experiment: smoke
datasets:
  - name: ramp
    dtype: int64
    shape: [10]
    ramp: true
  - name: grid
    dtype: float64
    shape: [4, 5]
    fill: 2.5
    attrs:
      unit: kelvin
`

// execute runs the root command with fresh output buffers and default
// flag state, so no test depends on what an earlier run set.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	statsDataset = ""
	verbose = false
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeSampleFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	manifestFile := filepath.Join(dir, "datasets.yaml")
	require.NoError(t, os.WriteFile(manifestFile, []byte(sampleManifest), 0o644))

	out := filepath.Join(dir, "sample.nda")
	output, err := execute(t, "create", "--manifest", manifestFile, out)
	require.NoError(t, err)
	require.Contains(t, output, "wrote")
	return out
}

func TestVersionCommand(t *testing.T) {
	output, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "narray "+version)
}

func TestCreateAndInspect(t *testing.T) {
	path := writeSampleFile(t)

	output, err := execute(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, output, "ramp")
	assert.Contains(t, output, "grid")
	assert.Contains(t, output, "float64")
	assert.Contains(t, output, "(4, 5)")
	assert.Contains(t, output, "@unit = kelvin")
	assert.Contains(t, output, "experiment = smoke")
}

func TestStatsCommand(t *testing.T) {
	path := writeSampleFile(t)

	output, err := execute(t, "stats", path)
	require.NoError(t, err)
	// ramp holds 0..9: sum 45, mean 4 (integer division), min 0, max 9.
	assert.Contains(t, output, "n=10 sum=45 mean=4 min=0 max=9")
	// grid holds 20 elements filled with 2.5.
	assert.Contains(t, output, "n=20 sum=50 mean=2.5 min=2.5 max=2.5")
}

func TestStatsDatasetFilter(t *testing.T) {
	path := writeSampleFile(t)

	output, err := execute(t, "stats", "--dataset", "ramp", path)
	require.NoError(t, err)
	assert.Contains(t, output, "ramp")
	assert.NotContains(t, output, "grid")

	_, err = execute(t, "stats", "--dataset", "missing", path)
	assert.Error(t, err)
}

func TestStatsFilterDoesNotLeak(t *testing.T) {
	path := writeSampleFile(t)

	_, err := execute(t, "stats", "--dataset", "ramp", path)
	require.NoError(t, err)

	// A later unfiltered run must see every dataset again.
	output, err := execute(t, "stats", path)
	require.NoError(t, err)
	assert.Contains(t, output, "ramp")
	assert.Contains(t, output, "grid")
}

func TestVerifyCommand(t *testing.T) {
	path := writeSampleFile(t)

	output, err := execute(t, "verify", path)
	require.NoError(t, err)
	assert.Contains(t, output, "checksum OK")
	assert.Contains(t, output, "2 datasets")
}

func TestVerifyCorruptedFile(t *testing.T) {
	path := writeSampleFile(t)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xFF
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err = execute(t, "verify", path)
	assert.Error(t, err)
}

func TestCreateRejectsBadManifest(t *testing.T) {
	dir := t.TempDir()
	manifestFile := filepath.Join(dir, "bad.yaml")
	bad := "datasets:\n  - name: x\n    dtype: complex128\n    shape: [2]\n"
	require.NoError(t, os.WriteFile(manifestFile, []byte(bad), 0o644))

	_, err := execute(t, "create", "--manifest", manifestFile, filepath.Join(dir, "x.nda"))
	assert.Error(t, err)
}
