// Package wire houses low-level decoders and encoders for the Fudge binary
// wire format. The goal is to keep the byte-level layout focused,
// allocation-free where possible, and independent from the public API so
// higher-level packages can orchestrate the data in a more ergonomic form.
package wire

const (
	// EnvelopeHeaderSize is the number of bytes in a Fudge envelope header:
	// processingDirectives(1) + schemaVersion(1) + taxonomyId(2) + totalSize(4).
	EnvelopeHeaderSize = 8

	// FieldPrefixSize is the number of bytes in the field prefix byte.
	FieldPrefixSize = 1

	// TypeIDSize is the number of bytes used to encode a wire type id.
	TypeIDSize = 1

	// OrdinalSize is the number of bytes used to encode a field ordinal.
	OrdinalSize = 2

	// NameLengthPrefixSize is the number of bytes used to encode a field
	// name's length. Names are limited to 255 encoded bytes.
	NameLengthPrefixSize = 1

	// MaxNameLength is the largest UTF-8 byte length a field name may have.
	MaxNameLength = 255

	// MaxEncodedSize is the largest value size the 4-byte variable-width
	// size prefix can represent.
	MaxEncodedSize = 1<<31 - 1
)

// Field-prefix bit layout (MSB -> LSB), per the wire specification:
//
//	bit 7    fixedWidth flag
//	bits 6-5 variableWidthSizeCode: 00=fixed(no size) 01=1-byte 10=2-byte 11=4-byte
//	bit 4    hasOrdinal
//	bit 3    hasName
//	bits 2-0 reserved (0)
const (
	fixedWidthBit = 1 << 7

	sizeCodeShift = 5
	sizeCodeMask  = 0x3

	hasOrdinalBit = 1 << 4
	hasNameBit    = 1 << 3
)

// VariableWidthSizeCode enumerates the width of a field's variable-length
// size prefix, as packed into bits 6-5 of the field prefix byte.
type VariableWidthSizeCode byte

const (
	// SizeCodeFixed marks a fixed-width field; no size prefix is written.
	SizeCodeFixed VariableWidthSizeCode = 0
	// SizeCode1 indicates a 1-byte size prefix (value size <= 255).
	SizeCode1 VariableWidthSizeCode = 1
	// SizeCode2 indicates a 2-byte size prefix (value size <= 32767).
	SizeCode2 VariableWidthSizeCode = 2
	// SizeCode4 indicates a 4-byte size prefix.
	SizeCode4 VariableWidthSizeCode = 3
)

// Built-in wire type ids. Ordering and ids are fixed by the wire
// specification and must remain stable across implementations.
const (
	TypeIndicator   byte = 0
	TypeBoolean     byte = 1
	TypeByte        byte = 2
	TypeShort       byte = 3
	TypeInt         byte = 4
	TypeLong        byte = 5
	TypeFloat       byte = 6
	TypeDouble      byte = 7
	TypeShortArray  byte = 8
	TypeIntArray    byte = 9
	TypeLongArray   byte = 10
	TypeFloatArray  byte = 11
	TypeDoubleArray byte = 12
	TypeByteArray   byte = 13
	TypeByteArray4  byte = 14
	TypeByteArray8  byte = 15
	TypeByteArray16 byte = 16
	TypeByteArray20 byte = 17
	TypeByteArray32 byte = 18
	TypeByteArray64 byte = 19
	TypeByteArray128 byte = 20
	TypeByteArray256 byte = 21
	TypeByteArray512 byte = 22
	TypeString      byte = 23
	TypeSubMessage  byte = 24
	TypeDate        byte = 25
	TypeTime        byte = 26
	TypeDateTime    byte = 27
)

// FixedByteArraySizes lists the canonical fixed byte-array type widths, in
// ascending order. Each width has a dedicated, fixed-width wire type id
// (TypeByteArray4 .. TypeByteArray512) that never carries a length prefix.
var FixedByteArraySizes = [...]int{4, 8, 16, 20, 32, 64, 128, 256, 512}
