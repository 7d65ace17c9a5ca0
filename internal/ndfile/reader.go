package ndfile

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/narray-ml/narray/internal/narray"
)

// Reader reads datasets from a .nda file.
type Reader struct {
	file       *os.File
	header     Header
	version    uint32
	flags      uint32
	dataOffset int64
	dataSize   int64
	checksum   [32]byte
	closed     bool
}

// ReaderOptions configures the behavior of Reader.
type ReaderOptions struct {
	SkipChecksum   bool // skip data checksum verification (faster, less safe)
	SkipValidation bool // skip index validation (use only with trusted files)
}

// Open opens a .nda file with full validation and checksum verification.
func Open(path string) (*Reader, error) {
	return OpenWithOptions(path, ReaderOptions{})
}

// OpenWithOptions opens a .nda file with custom options.
func OpenWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	//nolint:gosec // G304: the path is caller-chosen by design
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r := &Reader{file: file}
	if err := r.parseHeader(); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	if !opts.SkipValidation {
		if err := ValidateHeader(&r.header, r.dataSize); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("validation failed: %w", err)
		}
	}

	if !opts.SkipChecksum {
		if err := r.verifyChecksum(); err != nil {
			_ = file.Close()
			return nil, err
		}
	}

	return r, nil
}

// parseHeader reads the fixed header and the JSON index.
func (r *Reader) parseHeader() error {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r.file, fixed); err != nil {
		return fmt.Errorf("failed to read fixed header: %w", err)
	}

	if string(fixed[0:4]) != MagicBytes {
		return ErrInvalidMagic
	}

	r.version = binary.LittleEndian.Uint32(fixed[4:8])
	if r.version != FormatVersion {
		return fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, r.version, FormatVersion)
	}

	r.flags = binary.LittleEndian.Uint32(fixed[8:12])
	indexSize := binary.LittleEndian.Uint64(fixed[16:24])
	dataSize := binary.LittleEndian.Uint64(fixed[24:32])
	copy(r.checksum[:], fixed[checksumOffset:checksumOffset+ChecksumSize])

	if indexSize > MaxIndexSize {
		return ErrHeaderTooLarge
	}
	if dataSize > uint64(1)<<62 {
		return fmt.Errorf("data size too large: %d", dataSize)
	}
	r.dataSize = int64(dataSize)

	indexBytes := make([]byte, indexSize)
	if _, err := io.ReadFull(r.file, indexBytes); err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}
	if err := json.Unmarshal(indexBytes, &r.header); err != nil {
		return fmt.Errorf("failed to parse index JSON: %w", err)
	}

	pos := int64(FixedHeaderSize) + int64(indexSize)
	padding := (DataAlignment - pos%DataAlignment) % DataAlignment
	r.dataOffset = pos + padding

	return nil
}

// verifyChecksum re-reads the data section and compares its SHA-256
// against the stored checksum.
func (r *Reader) verifyChecksum() error {
	if _, err := r.file.Seek(r.dataOffset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to data section: %w", err)
	}
	computed, err := ComputeChecksumReader(io.LimitReader(r.file, r.dataSize))
	if err != nil {
		return fmt.Errorf("failed to read data section for checksum: %w", err)
	}
	return ValidateChecksum(computed, r.checksum)
}

// Header returns the parsed file index.
func (r *Reader) Header() Header {
	return r.header
}

// Metadata returns the file-level metadata map.
func (r *Reader) Metadata() map[string]string {
	return r.header.Metadata
}

// Datasets returns the metadata of all datasets in index order.
func (r *Reader) Datasets() []DatasetMeta {
	return r.header.Datasets
}

// Info returns the metadata of a named dataset.
func (r *Reader) Info(name string) (*DatasetMeta, error) {
	for i := range r.header.Datasets {
		if r.header.Datasets[i].Name == name {
			return &r.header.Datasets[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrDatasetNotFound, name)
}

// ReadData reads the full raw byte content of a named dataset.
func (r *Reader) ReadData(name string) ([]byte, error) {
	meta, err := r.Info(name)
	if err != nil {
		return nil, err
	}
	return r.readRegion(meta, 0, meta.Size)
}

// ReadSlab reads elemCount elements starting at flat element offset
// elemOff, the bulk read contract used when streaming a container region
// into a caller-owned buffer.
func (r *Reader) ReadSlab(name string, elemOff, elemCount int) ([]byte, error) {
	meta, err := r.Info(name)
	if err != nil {
		return nil, err
	}
	dtype, ok := narray.ParseDataType(meta.DType)
	if !ok {
		return nil, fmt.Errorf("unsupported dtype: %s", meta.DType)
	}
	if elemOff < 0 || elemCount < 0 {
		return nil, fmt.Errorf("negative slab bounds: offset %d, count %d", elemOff, elemCount)
	}

	byteOff := int64(elemOff) * int64(dtype.Size())
	byteLen := int64(elemCount) * int64(dtype.Size())
	if byteOff+byteLen > meta.Size {
		return nil, fmt.Errorf("%w: slab [%d, %d) of dataset %q (%d elements)",
			ErrOutOfBounds, elemOff, elemOff+elemCount, name, meta.Size/int64(dtype.Size()))
	}
	return r.readRegion(meta, byteOff, byteLen)
}

// readRegion reads length bytes at the given byte offset inside a dataset.
func (r *Reader) readRegion(meta *DatasetMeta, offset, length int64) ([]byte, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if _, err := r.file.Seek(r.dataOffset+meta.Offset+offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to dataset %q: %w", meta.Name, err)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r.file, data); err != nil {
		return nil, fmt.Errorf("failed to read dataset %q: %w", meta.Name, err)
	}
	return data, nil
}

// LoadArray loads a dataset into a freshly allocated flat Array.
// The stored dtype must match the requested element type.
func LoadArray[T narray.Number](r *Reader, name string) (*narray.Array[T], error) {
	meta, data, err := loadChecked[T](r, name)
	if err != nil {
		return nil, err
	}
	a := narray.New[T](narray.Shape(meta.Shape).NumElements())
	copyFromBytes(a.Data(), data)
	return a, nil
}

// LoadDense loads a dataset into a freshly allocated Dense carrying the
// stored extents.
func LoadDense[T narray.Number](r *Reader, name string) (*narray.Dense[T], error) {
	meta, data, err := loadChecked[T](r, name)
	if err != nil {
		return nil, err
	}
	d := narray.NewDense[T](meta.Shape...)
	copyFromBytes(d.Data(), data)
	return d, nil
}

// loadChecked resolves a dataset, checks its dtype against T and reads its
// full contents.
func loadChecked[T narray.Number](r *Reader, name string) (*DatasetMeta, []byte, error) {
	meta, err := r.Info(name)
	if err != nil {
		return nil, nil, err
	}

	var dummy T
	if want := narray.InferDataType(dummy).String(); meta.DType != want {
		return nil, nil, fmt.Errorf("%w: dataset %q is %s, requested %s",
			ErrDTypeMismatch, name, meta.DType, want)
	}

	data, err := r.ReadData(name)
	if err != nil {
		return nil, nil, err
	}
	return meta, data, nil
}

// Close closes the reader and the underlying file.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}
