package wire

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("wire: truncated buffer")

	// ErrSizeOverflow indicates a value, name, or ordinal exceeded its wire limit.
	ErrSizeOverflow = errors.New("wire: value exceeds wire size limit")

	// ErrBadPrefix indicates a field prefix byte encoded an inconsistent state,
	// e.g. a fixed-width flag paired with a non-zero size code.
	ErrBadPrefix = errors.New("wire: inconsistent field prefix")
)
