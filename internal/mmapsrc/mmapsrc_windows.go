//go:build windows

package mmapsrc

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Open memory-maps f read-only via CreateFileMapping/MapViewOfFile and
// returns a Mapping over its full contents. f may be closed by the caller
// immediately after Open returns.
func Open(f *os.File) (*Mapping, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &Mapping{data: []byte{}, close: func() error { return nil }}, nil
	}

	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("mmapsrc: CreateFileMapping: %w", err)
	}

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(h)
		return nil, fmt.Errorf("mmapsrc: MapViewOfFile: %w", err)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return &Mapping{
		data: data,
		close: func() error {
			if err := windows.UnmapViewOfFile(addr); err != nil {
				return err
			}
			return windows.CloseHandle(h)
		},
	}, nil
}
