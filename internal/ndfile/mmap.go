package ndfile

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"

	"github.com/narray-ml/narray/internal/narray"
)

// MmapReader provides memory-mapped access to .nda files. Only the index
// is parsed up front; dataset bytes are served straight from the mapped
// region via the OS page cache.
type MmapReader struct {
	file       *os.File
	data       []byte // mapped region, read-only
	size       int64
	header     Header
	flags      uint32
	dataOffset int64
	dataSize   int64
	checksum   [32]byte
	closed     bool
}

// OpenMmap creates a memory-mapped reader for a .nda file.
// Always call Close to unmap the file (use defer).
func OpenMmap(path string) (*MmapReader, error) {
	//nolint:gosec // G304: the path is caller-chosen by design
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	data, err := mmapFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("mmap failed: %w", err)
	}

	r := &MmapReader{
		file: file,
		data: data,
		size: stat.Size(),
	}
	if err := r.parseHeader(); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}
	return r, nil
}

// parseHeader parses the fixed header and JSON index from the mapped
// region and validates the layout.
func (r *MmapReader) parseHeader() error {
	if r.size < FixedHeaderSize {
		return fmt.Errorf("file too small: %d bytes (minimum %d required)", r.size, FixedHeaderSize)
	}

	if string(r.data[0:4]) != MagicBytes {
		return ErrInvalidMagic
	}

	version := binary.LittleEndian.Uint32(r.data[4:8])
	if version != FormatVersion {
		return fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	r.flags = binary.LittleEndian.Uint32(r.data[8:12])
	indexSize := binary.LittleEndian.Uint64(r.data[16:24])
	dataSize := binary.LittleEndian.Uint64(r.data[24:32])
	if dataSize > uint64(1)<<62 {
		return fmt.Errorf("data size too large: %d", dataSize)
	}
	r.dataSize = int64(dataSize)
	copy(r.checksum[:], r.data[checksumOffset:checksumOffset+ChecksumSize])

	if indexSize > MaxIndexSize {
		return ErrHeaderTooLarge
	}

	indexEnd := int64(FixedHeaderSize) + int64(indexSize)
	if indexEnd > r.size {
		return fmt.Errorf("index extends beyond file: index_end=%d, file_size=%d", indexEnd, r.size)
	}
	if err := json.Unmarshal(r.data[FixedHeaderSize:indexEnd], &r.header); err != nil {
		return fmt.Errorf("failed to parse index JSON: %w", err)
	}

	r.dataOffset = ((indexEnd + DataAlignment - 1) / DataAlignment) * DataAlignment
	if r.dataOffset+r.dataSize > r.size {
		return fmt.Errorf("data section extends beyond file: end=%d, file_size=%d", r.dataOffset+r.dataSize, r.size)
	}

	return ValidateHeader(&r.header, r.dataSize)
}

// VerifyChecksum compares the SHA-256 of the mapped data section against
// the stored checksum.
func (r *MmapReader) VerifyChecksum() error {
	if r.closed {
		return ErrClosed
	}
	computed := ComputeChecksum(r.data[r.dataOffset : r.dataOffset+r.dataSize])
	return ValidateChecksum(computed, r.checksum)
}

// Header returns the parsed file index.
func (r *MmapReader) Header() Header {
	return r.header
}

// Datasets returns the metadata of all datasets in index order.
func (r *MmapReader) Datasets() []DatasetMeta {
	return r.header.Datasets
}

// Info returns the metadata of a named dataset.
func (r *MmapReader) Info(name string) (*DatasetMeta, error) {
	for i := range r.header.Datasets {
		if r.header.Datasets[i].Name == name {
			return &r.header.Datasets[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrDatasetNotFound, name)
}

// Data returns a zero-copy slice of a dataset's bytes inside the mapped
// region. The slice is valid only while the reader is open and must be
// treated as read-only.
func (r *MmapReader) Data(name string) ([]byte, error) {
	if r.closed {
		return nil, ErrClosed
	}
	meta, err := r.Info(name)
	if err != nil {
		return nil, err
	}

	start := r.dataOffset + meta.Offset
	end := start + meta.Size
	if end > r.size {
		return nil, fmt.Errorf("%w: dataset %q: offset %d + size %d > file_size %d",
			ErrOutOfBounds, name, start, meta.Size, r.size)
	}
	return r.data[start:end], nil
}

// DataCopy returns a mutable copy of a dataset's bytes.
func (r *MmapReader) DataCopy(name string) ([]byte, error) {
	data, err := r.Data(name)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// LoadDenseMmap loads a dataset from the mapped region into a freshly
// allocated Dense carrying the stored extents.
func LoadDenseMmap[T narray.Number](r *MmapReader, name string) (*narray.Dense[T], error) {
	meta, err := r.Info(name)
	if err != nil {
		return nil, err
	}

	var dummy T
	if want := narray.InferDataType(dummy).String(); meta.DType != want {
		return nil, fmt.Errorf("%w: dataset %q is %s, requested %s",
			ErrDTypeMismatch, name, meta.DType, want)
	}

	data, err := r.Data(name)
	if err != nil {
		return nil, err
	}

	d := narray.NewDense[T](meta.Shape...)
	copyFromBytes(d.Data(), data)
	return d, nil
}

// Close unmaps and closes the file.
func (r *MmapReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	var err error
	if r.data != nil {
		err = munmapFile(r.data)
		r.data = nil
	}
	if closeErr := r.file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
