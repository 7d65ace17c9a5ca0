package ndfile

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/narray-ml/narray/internal/narray"
)

// Writer accumulates datasets and writes them out as one .nda file.
// Output is staged to a temporary file in the destination directory and
// renamed into place when Commit succeeds, so a half-written or aborted
// file is never observable at the destination path.
type Writer struct {
	file      *os.File
	path      string
	datasets  []Dataset
	names     map[string]bool
	committed bool
	closed    bool
}

// Create creates a new .nda file writer targeting path. Nothing exists at
// path until Commit succeeds; Close before Commit discards the staged file.
func Create(path string) (*Writer, error) {
	file, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging file: %w", err)
	}
	return &Writer{
		file:  file,
		path:  path,
		names: make(map[string]bool),
	}, nil
}

// Append queues a dataset for writing. The dataset's byte size must match
// its shape and dtype exactly.
func (w *Writer) Append(ds Dataset) error {
	if w.closed {
		return ErrClosed
	}
	if w.committed {
		return ErrWriterCommitted
	}
	if err := ValidateDatasetName(ds.Name); err != nil {
		return err
	}
	if w.names[ds.Name] {
		return &ValidationError{
			Type:    "duplicate_name",
			Dataset: ds.Name,
			Details: "dataset name appears more than once",
		}
	}
	if err := ds.Shape.Validate(); err != nil {
		return fmt.Errorf("dataset %q: %w", ds.Name, err)
	}
	if want := ds.Shape.NumElements() * ds.DType.Size(); want != len(ds.Data) {
		return fmt.Errorf("dataset %q: shape %v x %s requires %d bytes, got %d",
			ds.Name, ds.Shape, ds.DType, want, len(ds.Data))
	}

	w.names[ds.Name] = true
	w.datasets = append(w.datasets, ds)
	return nil
}

// AppendArray queues a flat array as a rank-1 dataset.
func AppendArray[T narray.Number](w *Writer, name string, a *narray.Array[T], attrs map[string]string) error {
	var dummy T
	return w.Append(Dataset{
		Name:  name,
		DType: narray.InferDataType(dummy),
		Shape: narray.Shape{a.Len()},
		Attrs: attrs,
		Data:  asBytes(a.Data()),
	})
}

// AppendDense queues a ranked container as a dataset carrying its extents.
func AppendDense[T narray.Number](w *Writer, name string, d *narray.Dense[T], attrs map[string]string) error {
	var dummy T
	return w.Append(Dataset{
		Name:  name,
		DType: narray.InferDataType(dummy),
		Shape: d.Dims(),
		Attrs: attrs,
		Data:  asBytes(d.Data()),
	})
}

// Commit writes the fixed header, JSON index and all queued dataset data
// to the staged file, then renames it to the destination path. Datasets
// are laid out contiguously in append order.
func (w *Writer) Commit(metadata map[string]string) error {
	if w.closed {
		return ErrClosed
	}
	if w.committed {
		return ErrWriterCommitted
	}

	header := Header{
		FormatVersion: FormatVersion,
		Library:       libraryVersion,
		CreatedAt:     time.Now().UTC(),
		Datasets:      make([]DatasetMeta, 0, len(w.datasets)),
		Metadata:      metadata,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	var offset int64
	var dataBuf []byte
	for _, ds := range w.datasets {
		size := int64(len(ds.Data))
		header.Datasets = append(header.Datasets, DatasetMeta{
			Name:   ds.Name,
			DType:  ds.DType.String(),
			Shape:  []int(ds.Shape),
			Offset: offset,
			Size:   size,
			Attrs:  ds.Attrs,
		})
		dataBuf = append(dataBuf, ds.Data...)
		offset += size
	}

	checksum := ComputeChecksum(dataBuf)

	indexJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	if err := writeContainer(w.file, indexJSON, dataBuf, checksum, len(header.Metadata) > 0); err != nil {
		return err
	}

	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close staging file: %w", err)
	}
	if err := os.Rename(w.file.Name(), w.path); err != nil {
		_ = os.Remove(w.file.Name())
		w.closed = true
		return fmt.Errorf("failed to move staging file into place: %w", err)
	}

	w.committed = true
	return nil
}

// writeContainer lays out the fixed header, index, alignment padding and
// data section on the given writer.
func writeContainer(out io.Writer, indexJSON, dataBuf []byte, checksum [32]byte, hasMetadata bool) error {
	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], uint32(FormatVersion))

	flags := uint32(0)
	if hasMetadata {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	// 0x0C-0x0F reserved, zero from make()
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(indexJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(len(dataBuf)))
	copy(fixed[checksumOffset:checksumOffset+ChecksumSize], checksum[:])

	if _, err := out.Write(fixed); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := out.Write(indexJSON); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	pos := int64(FixedHeaderSize) + int64(len(indexJSON))
	if padding := (DataAlignment - pos%DataAlignment) % DataAlignment; padding > 0 {
		if _, err := out.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	if _, err := out.Write(dataBuf); err != nil {
		return fmt.Errorf("failed to write dataset data: %w", err)
	}
	return nil
}

// Close releases the writer. If Commit has not succeeded, the staged file
// is removed and nothing appears at the destination path.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.committed {
		return nil
	}
	err := w.file.Close()
	if rmErr := os.Remove(w.file.Name()); rmErr != nil && err == nil {
		err = rmErr
	}
	return err
}
