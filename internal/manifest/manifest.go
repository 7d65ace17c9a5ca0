// Package manifest parses YAML dataset manifests for the narray CLI.
//
// A manifest names the datasets to materialize into a .nda file:
//
//	metadata:
//	  experiment: heat-test
//	datasets:
//	  - name: grid
//	    dtype: float64
//	    shape: [20, 30]
//	    fill: 1.5
//	    attrs:
//	      unit: kelvin
//	  - name: ramp
//	    dtype: int64
//	    shape: [100]
//	    ramp: true
package manifest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/narray-ml/narray/internal/narray"
)

// Manifest describes the contents of a .nda file to be created.
type Manifest struct {
	Metadata map[string]string `yaml:"metadata"`
	Datasets []DatasetSpec     `yaml:"datasets"`
}

// DatasetSpec describes one dataset: its identity, extents and initial
// contents. Fill and Ramp are mutually exclusive; with neither set the
// dataset is zero-filled.
type DatasetSpec struct {
	Name  string            `yaml:"name"`
	DType string            `yaml:"dtype"`
	Shape []int             `yaml:"shape"`
	Fill  *float64          `yaml:"fill,omitempty"`
	Ramp  bool              `yaml:"ramp,omitempty"` // sequential values 0..n-1
	Attrs map[string]string `yaml:"attrs,omitempty"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	//nolint:gosec // G304: the path is caller-chosen by design
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a manifest from a reader. Unknown fields are
// rejected so typos surface as errors instead of silently dropped keys.
func Parse(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks every dataset spec for consistency.
func (m *Manifest) Validate() error {
	if len(m.Datasets) == 0 {
		return fmt.Errorf("manifest declares no datasets")
	}

	seen := make(map[string]bool, len(m.Datasets))
	for i, ds := range m.Datasets {
		if ds.Name == "" {
			return fmt.Errorf("dataset %d: missing name", i)
		}
		if seen[ds.Name] {
			return fmt.Errorf("dataset %q: duplicate name", ds.Name)
		}
		seen[ds.Name] = true

		if _, ok := narray.ParseDataType(ds.DType); !ok {
			return fmt.Errorf("dataset %q: unknown dtype %q", ds.Name, ds.DType)
		}
		if len(ds.Shape) == 0 {
			return fmt.Errorf("dataset %q: missing shape", ds.Name)
		}
		if err := narray.Shape(ds.Shape).Validate(); err != nil {
			return fmt.Errorf("dataset %q: %w", ds.Name, err)
		}
		if ds.Fill != nil && ds.Ramp {
			return fmt.Errorf("dataset %q: fill and ramp are mutually exclusive", ds.Name)
		}
	}
	return nil
}
