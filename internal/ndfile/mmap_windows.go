//go:build windows

package ndfile

import (
	"fmt"
	"os"
	"reflect"
	"syscall"
	"unsafe"
)

// mmapFile memory-maps a file for reading (Windows implementation).
// The mapping is read-only (PAGE_READONLY / FILE_MAP_READ).
func mmapFile(f *os.File, size int64) ([]byte, error) {
	handle, err := syscall.CreateFileMapping(
		syscall.Handle(f.Fd()),
		nil,
		syscall.PAGE_READONLY,
		uint32(size>>32), //nolint:gosec // G115: high dword of the mapping size
		uint32(size),     //nolint:gosec // G115: low dword of the mapping size
		nil,
	)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = syscall.CloseHandle(handle)
	}()

	addr, err := syscall.MapViewOfFile(
		handle,
		syscall.FILE_MAP_READ,
		0,
		0,
		uintptr(size), //nolint:gosec // G115: int64-to-uintptr needed for syscall
	)
	if err != nil {
		return nil, err
	}

	// Standard mmap-on-Windows pattern: build the slice over the mapped
	// address returned by MapViewOfFile.
	var slice []byte
	//nolint:staticcheck,gosec // SA1019+G103: SliceHeader over a valid mapped address
	header := (*reflect.SliceHeader)(unsafe.Pointer(&slice))
	header.Data = addr
	header.Len = int(size)
	header.Cap = int(size)

	return slice, nil
}

// munmapFile unmaps a memory-mapped file (Windows implementation).
func munmapFile(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("cannot unmap empty data")
	}
	//nolint:staticcheck,gosec // SA1019+G103: SliceHeader over the mapped slice
	header := (*reflect.SliceHeader)(unsafe.Pointer(&data))
	return syscall.UnmapViewOfFile(header.Data)
}
