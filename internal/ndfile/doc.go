// Package ndfile implements the .nda container format for saving and
// loading named dense arrays.
//
//	Format structure:
//	  [64-byte fixed header]
//	    0x00  magic "NDAF"
//	    0x04  version (uint32 LE)
//	    0x08  flags (uint32 LE)
//	    0x0C  reserved
//	    0x10  index size (uint64 LE)
//	    0x18  data size (uint64 LE)
//	    0x20  SHA-256 checksum of the data section (32 bytes)
//	  [JSON index: dataset names, dtypes, shapes, offsets, attributes]
//	  [padding to 64-byte alignment]
//	  [dataset data: raw little-endian element bytes, contiguous]
//
// The format supports:
//   - Multiple element types (float32, float64, int32, int64, uint8)
//   - Arbitrary shapes, including flat (rank-1) arrays
//   - Per-dataset string attributes and file-level metadata
//   - Whole-dataset and slab (offset + count) reads
//   - Memory-mapped zero-copy access for large files
//
// Example usage:
//
//	w, err := ndfile.Create("run.nda")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	grid := narray.NewMatrix[float64](20, 30)
//	ndfile.AppendDense(w, "grid", &grid.Dense, nil)
//	if err := w.Commit(map[string]string{"run": "42"}); err != nil {
//	    log.Fatal(err)
//	}
//	w.Close()
//
//	r, err := ndfile.Open("run.nda")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	loaded, err := ndfile.LoadDense[float64](r, "grid")
package ndfile
