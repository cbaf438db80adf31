//go:build !unix && !windows

package mmapsrc

import "os"

// Open reads the whole file when mmap is not available on this platform.
func Open(f *os.File) (*Mapping, error) {
	data, err := os.ReadFile(f.Name())
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data, close: func() error { return nil }}, nil
}
