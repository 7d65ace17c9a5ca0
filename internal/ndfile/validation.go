package ndfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/narray-ml/narray/internal/narray"
)

// Validation limits for resource protection against malformed files.
const (
	MaxIndexSize      = 100 * 1024 * 1024 // 100MB - maximum JSON index size
	MaxDatasetCount   = 100_000
	MaxDatasetNameLen = 4096
)

// ValidateDatasetOffsets checks for overlapping dataset regions and
// out-of-bounds access. Malformed indexes must not be able to read outside
// the data section or alias another dataset's bytes.
func ValidateDatasetOffsets(datasets []DatasetMeta, dataSize int64) error {
	if len(datasets) > MaxDatasetCount {
		return &ValidationError{
			Type:    "too_many_datasets",
			Details: fmt.Sprintf("got %d, max %d", len(datasets), MaxDatasetCount),
		}
	}

	sorted := make([]DatasetMeta, len(datasets))
	copy(sorted, datasets)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, ds := range sorted {
		if ds.Offset < 0 || ds.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Dataset: ds.Name,
				Details: fmt.Sprintf("offset=%d, size=%d (negative values not allowed)", ds.Offset, ds.Size),
			}
		}

		if ds.Offset+ds.Size > dataSize {
			return &ValidationError{
				Type:    "out_of_bounds",
				Dataset: ds.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", ds.Offset, ds.Size, dataSize),
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if ds.Offset+ds.Size > next.Offset {
				return &ValidationError{
					Type:     "offset_overlap",
					Dataset:  ds.Name,
					Dataset2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						ds.Offset, ds.Offset+ds.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}

	return nil
}

// ValidateDatasetName checks a dataset name for emptiness, length and
// control characters.
func ValidateDatasetName(name string) error {
	if name == "" {
		return &ValidationError{Type: "invalid_name", Details: "empty dataset name"}
	}
	if len(name) > MaxDatasetNameLen {
		return &ValidationError{
			Type:    "name_too_long",
			Dataset: name[:32] + "...",
			Details: fmt.Sprintf("length %d, max %d", len(name), MaxDatasetNameLen),
		}
	}
	if strings.ContainsAny(name, "\x00\n\r") {
		return &ValidationError{
			Type:    "invalid_name",
			Dataset: name,
			Details: "name contains control characters",
		}
	}
	return nil
}

// ValidateHeader runs the full set of index checks against a parsed
// header: dataset names, dtypes, shape/size consistency and region layout.
func ValidateHeader(h *Header, dataSize int64) error {
	seen := make(map[string]bool, len(h.Datasets))

	for _, ds := range h.Datasets {
		if err := ValidateDatasetName(ds.Name); err != nil {
			return err
		}
		if seen[ds.Name] {
			return &ValidationError{
				Type:    "duplicate_name",
				Dataset: ds.Name,
				Details: "dataset name appears more than once",
			}
		}
		seen[ds.Name] = true

		dtype, ok := narray.ParseDataType(ds.DType)
		if !ok {
			return &ValidationError{
				Type:    "unknown_dtype",
				Dataset: ds.Name,
				Details: fmt.Sprintf("dtype %q", ds.DType),
			}
		}

		shape := narray.Shape(ds.Shape)
		if err := shape.Validate(); err != nil {
			return &ValidationError{
				Type:    "invalid_shape",
				Dataset: ds.Name,
				Details: err.Error(),
			}
		}

		if want := int64(shape.NumElements()) * int64(dtype.Size()); want != ds.Size {
			return &ValidationError{
				Type:    "size_mismatch",
				Dataset: ds.Name,
				Details: fmt.Sprintf("shape %v x %s requires %d bytes, index says %d", ds.Shape, ds.DType, want, ds.Size),
			}
		}
	}

	return ValidateDatasetOffsets(h.Datasets, dataSize)
}
