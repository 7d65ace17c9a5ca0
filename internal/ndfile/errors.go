package ndfile

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrHeaderTooLarge     = errors.New("index exceeds maximum size")
	ErrOffsetOverlap      = errors.New("dataset offsets overlap")
	ErrOutOfBounds        = errors.New("dataset extends beyond data section")
	ErrDatasetNotFound    = errors.New("dataset not found")
	ErrDTypeMismatch      = errors.New("dataset dtype does not match requested element type")
	ErrWriterCommitted    = errors.New("writer already committed")
	ErrClosed             = errors.New("file is closed")
)

// ValidationError provides detailed information about index validation
// failures.
type ValidationError struct {
	Type     string // kind of failure (e.g. "offset_overlap", "out_of_bounds")
	Dataset  string // primary dataset name involved
	Dataset2 string // secondary dataset name (for overlap errors)
	Details  string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Dataset2 != "" {
		return fmt.Sprintf("%s: datasets %q and %q: %s", e.Type, e.Dataset, e.Dataset2, e.Details)
	}
	if e.Dataset != "" {
		return fmt.Sprintf("%s: dataset %q: %s", e.Type, e.Dataset, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}
