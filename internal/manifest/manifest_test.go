package manifest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
metadata:
  experiment: heat-test
datasets:
  - name: grid
    dtype: float64
    shape: [20, 30]
    fill: 1.5
    attrs:
      unit: kelvin
  - name: ramp
    dtype: int64
    shape: [100]
    ramp: true
`

func TestParseValidManifest(t *testing.T) {
	m, err := Parse(strings.NewReader(sampleManifest))
	require.NoError(t, err)

	fill := 1.5
	want := &Manifest{
		Metadata: map[string]string{"experiment": "heat-test"},
		Datasets: []DatasetSpec{
			{Name: "grid", DType: "float64", Shape: []int{20, 30}, Fill: &fill,
				Attrs: map[string]string{"unit": "kelvin"}},
			{Name: "ramp", DType: "int64", Shape: []int{100}, Ramp: true},
		},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader(`
datasets:
  - name: grid
    dtype: float64
    shape: [2]
    filll: 1.0
`))
	assert.Error(t, err)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no datasets", `metadata: {run: "1"}`},
		{"missing name", `
datasets:
  - dtype: float64
    shape: [2]
`},
		{"duplicate name", `
datasets:
  - name: a
    dtype: float64
    shape: [2]
  - name: a
    dtype: int32
    shape: [2]
`},
		{"unknown dtype", `
datasets:
  - name: a
    dtype: complex128
    shape: [2]
`},
		{"missing shape", `
datasets:
  - name: a
    dtype: float64
`},
		{"negative extent", `
datasets:
  - name: a
    dtype: float64
    shape: [2, -3]
`},
		{"fill and ramp together", `
datasets:
  - name: a
    dtype: float64
    shape: [2]
    fill: 1.0
    ramp: true
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestZeroExtentIsAllowed(t *testing.T) {
	m, err := Parse(strings.NewReader(`
datasets:
  - name: empty
    dtype: uint8
    shape: [0]
`))
	require.NoError(t, err)
	assert.Len(t, m.Datasets, 1)
}
