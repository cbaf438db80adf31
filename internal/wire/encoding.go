package wire

import (
	"encoding/binary"
	"math"
)

// Binary encoding utilities for big-endian integers and IEEE-754 floats.
//
// The Fudge wire format is big-endian throughout. Implementation: uses
// encoding/binary.BigEndian, which modern Go compilers inline well; an
// unsafe-pointer implementation was not pursued since it buys nothing over
// the standard library here and would tie the codec to host endianness.

// PutU16 writes a uint16 to b at off, big-endian.
func PutU16(b []byte, off int, v uint16) { binary.BigEndian.PutUint16(b[off:off+2], v) }

// PutI16 writes an int16 to b at off, big-endian.
func PutI16(b []byte, off int, v int16) { binary.BigEndian.PutUint16(b[off:off+2], uint16(v)) }

// PutU32 writes a uint32 to b at off, big-endian.
func PutU32(b []byte, off int, v uint32) { binary.BigEndian.PutUint32(b[off:off+4], v) }

// PutI32 writes an int32 to b at off, big-endian.
func PutI32(b []byte, off int, v int32) { binary.BigEndian.PutUint32(b[off:off+4], uint32(v)) }

// PutU64 writes a uint64 to b at off, big-endian.
func PutU64(b []byte, off int, v uint64) { binary.BigEndian.PutUint64(b[off:off+8], v) }

// PutI64 writes an int64 to b at off, big-endian.
func PutI64(b []byte, off int, v int64) { binary.BigEndian.PutUint64(b[off:off+8], uint64(v)) }

// PutF32 writes a float32 to b at off, IEEE-754 big-endian.
func PutF32(b []byte, off int, v float32) {
	binary.BigEndian.PutUint32(b[off:off+4], math.Float32bits(v))
}

// PutF64 writes a float64 to b at off, IEEE-754 big-endian.
func PutF64(b []byte, off int, v float64) {
	binary.BigEndian.PutUint64(b[off:off+8], math.Float64bits(v))
}

// ReadU16 reads a uint16 from b at off, big-endian.
func ReadU16(b []byte, off int) uint16 { return binary.BigEndian.Uint16(b[off : off+2]) }

// ReadI16 reads an int16 from b at off, big-endian.
func ReadI16(b []byte, off int) int16 { return int16(binary.BigEndian.Uint16(b[off : off+2])) }

// ReadU32 reads a uint32 from b at off, big-endian.
func ReadU32(b []byte, off int) uint32 { return binary.BigEndian.Uint32(b[off : off+4]) }

// ReadI32 reads an int32 from b at off, big-endian.
func ReadI32(b []byte, off int) int32 { return int32(binary.BigEndian.Uint32(b[off : off+4])) }

// ReadU64 reads a uint64 from b at off, big-endian.
func ReadU64(b []byte, off int) uint64 { return binary.BigEndian.Uint64(b[off : off+8]) }

// ReadI64 reads an int64 from b at off, big-endian.
func ReadI64(b []byte, off int) int64 { return int64(binary.BigEndian.Uint64(b[off : off+8])) }

// ReadF32 reads an IEEE-754 float32 from b at off, big-endian.
func ReadF32(b []byte, off int) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(b[off : off+4]))
}

// ReadF64 reads an IEEE-754 float64 from b at off, big-endian.
func ReadF64(b []byte, off int) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(b[off : off+8]))
}
