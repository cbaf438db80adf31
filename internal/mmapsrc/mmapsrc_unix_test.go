//go:build unix

package mmapsrc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenUnix(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bin")
	want := []byte{0xde, 0xad, 0xbe, 0xef, 0x42}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	m, err := Open(f)
	if err != nil {
		t.Fatalf("mmapsrc.Open: %v", err)
	}
	defer func() {
		if err := m.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}()

	got := m.Bytes()
	if len(got) != len(want) {
		t.Fatalf("len mismatch: got %d want %d", len(got), len(want))
	}
	for i, b := range want {
		if got[i] != b {
			t.Fatalf("byte %d mismatch: got 0x%x want 0x%x", i, got[i], b)
		}
	}

	if sub, ok := m.Slice(1, 3); !ok || len(sub) != 3 || sub[0] != 0xad {
		t.Fatalf("Slice(1,3) = %v,%v, want [0xad 0xbe 0xef],true", sub, ok)
	}
	if _, ok := m.Slice(3, 10); ok {
		t.Fatalf("Slice(3,10) should fail: out of bounds")
	}
}

func TestOpenUnixZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	m, err := Open(f)
	if err != nil {
		t.Fatalf("mmapsrc.Open: %v", err)
	}
	if len(m.Bytes()) != 0 {
		t.Fatalf("expected zero-length mapping, got %d", len(m.Bytes()))
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
