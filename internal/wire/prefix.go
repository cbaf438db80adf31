package wire

// FieldPrefix is the decomposed form of a field's one-byte wire prefix.
type FieldPrefix struct {
	FixedWidth  bool
	SizeCode    VariableWidthSizeCode
	HasOrdinal  bool
	HasName     bool
}

// ComposeFieldPrefix builds the one-byte field prefix for a field.
//
// fixedWidth selects bit 7. For variable-width fields, size is the value's
// byte length and the size code (bits 6-5) is chosen as the smallest that
// fits: <=255 -> 1 byte, <=32767 -> 2 bytes, else 4 bytes. For fixed-width
// fields the size code is forced to SizeCodeFixed and size plays no part in
// the result, except that a negative size is rejected for any field.
func ComposeFieldPrefix(fixedWidth bool, size int, hasOrdinal, hasName bool) (byte, error) {
	if size < 0 {
		return 0, ErrSizeOverflow
	}

	var code VariableWidthSizeCode
	if fixedWidth {
		code = SizeCodeFixed
	} else {
		switch {
		case size > MaxEncodedSize:
			return 0, ErrSizeOverflow
		case size <= 0xFF:
			code = SizeCode1
		case size <= 0x7FFF:
			code = SizeCode2
		default:
			code = SizeCode4
		}
	}

	var b byte
	if fixedWidth {
		b |= fixedWidthBit
	}
	b |= byte(code&sizeCodeMask) << sizeCodeShift
	if hasOrdinal {
		b |= hasOrdinalBit
	}
	if hasName {
		b |= hasNameBit
	}
	return b, nil
}

// DecomposeFieldPrefix splits a wire prefix byte into its component flags.
// Reserved bits (2-0) are ignored on read, per the wire specification.
func DecomposeFieldPrefix(b byte) FieldPrefix {
	return FieldPrefix{
		FixedWidth: b&fixedWidthBit != 0,
		SizeCode:   VariableWidthSizeCode((b >> sizeCodeShift) & sizeCodeMask),
		HasOrdinal: b&hasOrdinalBit != 0,
		HasName:    b&hasNameBit != 0,
	}
}

// SizeCodeWidth returns the number of bytes a variable-width size prefix of
// the given code occupies on the wire (0 for SizeCodeFixed).
func SizeCodeWidth(code VariableWidthSizeCode) int {
	switch code {
	case SizeCode1:
		return 1
	case SizeCode2:
		return 2
	case SizeCode4:
		return 4
	default:
		return 0
	}
}
