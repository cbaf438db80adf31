package fudge

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSink buffers envelope bytes in memory and commits them to a filesystem
// path atomically on Close, via temp file + rename in the same directory.
// A StreamWriter emits an envelope through many Write calls and the bytes
// are only complete once its declared budget is used up, so FileSink does
// not write straight to the destination path the way an os.File sink
// would; it holds the envelope until Close so a failed or partial encode
// never leaves a truncated file at Path.
type FileSink struct {
	Path string
	buf  []byte
}

// NewFileSink constructs a FileSink targeting path.
func NewFileSink(path string) *FileSink {
	return &FileSink{Path: path}
}

// Write implements Sink by appending to the in-memory buffer.
func (s *FileSink) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// Close commits the buffered bytes to Path atomically.
func (s *FileSink) Close() error {
	dir := filepath.Dir(s.Path)
	tmpFile, err := os.CreateTemp(dir, ".fudge-tmp-*")
	if err != nil {
		return fmt.Errorf("fudge: create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(s.buf); err != nil {
		return fmt.Errorf("fudge: write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("fudge: sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("fudge: close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, s.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("fudge: rename temp file: %w", err)
	}
	return nil
}
