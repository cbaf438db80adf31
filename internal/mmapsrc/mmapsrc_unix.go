//go:build unix

package mmapsrc

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Open memory-maps f read-only via mmap(2) and returns a Mapping over its
// full contents. f may be closed by the caller immediately after Open
// returns; the mapping keeps the pages resident independently of the file
// descriptor.
func Open(f *os.File) (*Mapping, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &Mapping{data: []byte{}, close: func() error { return nil }}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmapsrc: file too large to map (%d bytes)", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmapsrc: mmap: %w", err)
	}

	return &Mapping{
		data: data,
		close: func() error {
			if data == nil {
				return nil
			}
			return unix.Munmap(data)
		},
	}, nil
}
