package ndfile

import (
	"time"

	"github.com/narray-ml/narray/internal/narray"
)

const libraryVersion = "0.2.1" // Current narray version

// Format constants.
const (
	MagicBytes      = "NDAF"
	FormatVersion   = 1
	FixedHeaderSize = 64 // fixed header is 0x40 bytes
	DataAlignment   = 64 // dataset data is 64-byte aligned
	ChecksumSize    = 32 // SHA-256
	checksumOffset  = 0x20
)

// Flags for the fixed header.
const (
	FlagHasMetadata uint32 = 1 << 0 // bit 0: file-level metadata present
)

// Header is the JSON index of a .nda file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	Library       string            `json:"library"`    // narray version that wrote the file
	CreatedAt     time.Time         `json:"created_at"` // when the file was written
	Datasets      []DatasetMeta     `json:"datasets"`
	Metadata      map[string]string `json:"metadata"` // file-level attributes
}

// DatasetMeta describes one dataset in the index.
type DatasetMeta struct {
	Name   string            `json:"name"`
	DType  string            `json:"dtype"`
	Shape  []int             `json:"shape"`
	Offset int64             `json:"offset"` // bytes from the start of the data section
	Size   int64             `json:"size"`   // bytes
	Attrs  map[string]string `json:"attrs,omitempty"`
}

// Dataset is the writer-side description of a dataset: typed metadata plus
// the raw element bytes to be stored.
type Dataset struct {
	Name  string
	DType narray.DataType
	Shape narray.Shape
	Attrs map[string]string
	Data  []byte
}
