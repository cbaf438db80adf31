// Package mmapsrc memory-maps a file read-only and exposes its contents as
// a bytes.Reader-backed io.Reader, for decoding large Fudge streams without
// first copying the whole file into a regular heap-allocated buffer. The
// platform-specific mapping calls live in mmapsrc_unix.go and
// mmapsrc_windows.go; mmapsrc_fallback.go covers everything else with a
// plain read.
package mmapsrc

import (
	"bytes"
	"io"

	"github.com/opengamma/fudge-go/internal/buf"
)

// Mapping is a memory-mapped, read-only view of a file. Close unmaps it.
type Mapping struct {
	data  []byte
	close func() error
}

// Bytes returns the mapping's full contents. The slice is only valid until
// Close is called.
func (m *Mapping) Bytes() []byte { return m.data }

// Reader returns a fresh io.Reader positioned at the start of the mapping.
func (m *Mapping) Reader() io.Reader { return bytes.NewReader(m.data) }

// Slice returns the bounds-checked sub-range [off:off+n] of the mapping
// without copying, for callers that want to hand an already-validated
// envelope body (e.g. a pre-scanned message region) to NewEncodedMessage
// without re-reading it through an io.Reader.
func (m *Mapping) Slice(off, n int) ([]byte, bool) {
	return buf.Slice(m.data, off, n)
}

// Close unmaps the file. Safe to call more than once.
func (m *Mapping) Close() error {
	if m.close == nil {
		return nil
	}
	closeFn := m.close
	m.close = nil
	return closeFn()
}
