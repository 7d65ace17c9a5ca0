// Package ndfile provides the public API for reading and writing .nda
// container files: named dense arrays with shapes, dtypes, per-dataset
// attributes and file-level metadata.
//
// Example:
//
//	w, err := ndfile.Create("run.nda")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//	grid := narray.NewDense[float64](20, 30)
//	ndfile.AppendDense(w, "grid", grid, nil)
//	if err := w.Commit(map[string]string{"run": "42"}); err != nil {
//	    log.Fatal(err)
//	}
package ndfile

import (
	"github.com/narray-ml/narray/internal/ndfile"
	"github.com/narray-ml/narray/narray"
)

// Type aliases for the public API

// Writer accumulates datasets and writes them out as one .nda file.
type Writer = ndfile.Writer

// Reader reads datasets from a .nda file.
type Reader = ndfile.Reader

// ReaderOptions configures the behavior of Reader.
type ReaderOptions = ndfile.ReaderOptions

// MmapReader provides memory-mapped zero-copy access to .nda files.
type MmapReader = ndfile.MmapReader

// Header is the JSON index of a .nda file.
type Header = ndfile.Header

// DatasetMeta describes one dataset in the index.
type DatasetMeta = ndfile.DatasetMeta

// Dataset is the writer-side description of a dataset.
type Dataset = ndfile.Dataset

// ValidationError provides detailed information about index validation
// failures.
type ValidationError = ndfile.ValidationError

// Common errors.
var (
	ErrInvalidMagic       = ndfile.ErrInvalidMagic
	ErrUnsupportedVersion = ndfile.ErrUnsupportedVersion
	ErrChecksumMismatch   = ndfile.ErrChecksumMismatch
	ErrDatasetNotFound    = ndfile.ErrDatasetNotFound
	ErrDTypeMismatch      = ndfile.ErrDTypeMismatch
	ErrOutOfBounds        = ndfile.ErrOutOfBounds
)

// Create creates a new .nda file writer at path.
func Create(path string) (*Writer, error) {
	return ndfile.Create(path)
}

// Open opens a .nda file with full validation and checksum verification.
func Open(path string) (*Reader, error) {
	return ndfile.Open(path)
}

// OpenWithOptions opens a .nda file with custom options.
func OpenWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	return ndfile.OpenWithOptions(path, opts)
}

// OpenMmap creates a memory-mapped reader for a .nda file.
func OpenMmap(path string) (*MmapReader, error) {
	return ndfile.OpenMmap(path)
}

// AppendArray queues a flat array as a rank-1 dataset.
func AppendArray[T narray.Number](w *Writer, name string, a *narray.Array[T], attrs map[string]string) error {
	return ndfile.AppendArray(w, name, a, attrs)
}

// AppendDense queues a ranked container as a dataset carrying its extents.
func AppendDense[T narray.Number](w *Writer, name string, d *narray.Dense[T], attrs map[string]string) error {
	return ndfile.AppendDense(w, name, d, attrs)
}

// LoadArray loads a dataset into a freshly allocated flat Array.
func LoadArray[T narray.Number](r *Reader, name string) (*narray.Array[T], error) {
	return ndfile.LoadArray[T](r, name)
}

// LoadDense loads a dataset into a freshly allocated Dense carrying the
// stored extents.
func LoadDense[T narray.Number](r *Reader, name string) (*narray.Dense[T], error) {
	return ndfile.LoadDense[T](r, name)
}

// LoadDenseMmap loads a dataset from the mapped region into a freshly
// allocated Dense.
func LoadDenseMmap[T narray.Number](r *MmapReader, name string) (*narray.Dense[T], error) {
	return ndfile.LoadDenseMmap[T](r, name)
}
