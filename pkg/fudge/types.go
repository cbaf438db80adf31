package fudge

import "github.com/opengamma/fudge-go/pkg/fudgetypes"

// Re-exported from pkg/fudgetypes so callers of pkg/fudge rarely need a
// second import for the shared vocabulary.

// Core interfaces.
type (
	Message        = fudgetypes.Message
	MutableMessage = fudgetypes.MutableMessage
)

// Field tuple and constructors.
type Field = fudgetypes.Field

var (
	NewField = fudgetypes.NewField
	Str      = fudgetypes.Str
	Ord      = fudgetypes.Ord
)

// Envelope and stream element kind.
type (
	Envelope      = fudgetypes.Envelope
	StreamElement = fudgetypes.StreamElement
)

const (
	MessageEnvelope      = fudgetypes.MessageEnvelope
	SimpleField          = fudgetypes.SimpleField
	SubMessageFieldStart = fudgetypes.SubMessageFieldStart
	SubMessageFieldEnd   = fudgetypes.SubMessageFieldEnd
)

// Error types.
type (
	Error   = fudgetypes.Error
	ErrKind = fudgetypes.ErrKind
)

const (
	ErrKindMalformedFrame    = fudgetypes.ErrKindMalformedFrame
	ErrKindEncodingOverflow  = fudgetypes.ErrKindEncodingOverflow
	ErrKindUnknownType       = fudgetypes.ErrKindUnknownType
	ErrKindConversionFailure = fudgetypes.ErrKindConversionFailure
	ErrKindStateViolation    = fudgetypes.ErrKindStateViolation
	ErrKindIoFailure         = fudgetypes.ErrKindIoFailure
)

// Sentinel errors.
var (
	ErrTruncatedFrame       = fudgetypes.ErrTruncatedFrame
	ErrEnvelopeSizeMismatch = fudgetypes.ErrEnvelopeSizeMismatch
	ErrUnknownFixedType     = fudgetypes.ErrUnknownFixedType
	ErrValueTooLarge        = fudgetypes.ErrValueTooLarge
	ErrNameTooLong          = fudgetypes.ErrNameTooLong
	ErrInvalidName          = fudgetypes.ErrInvalidName
	ErrOrdinalRange         = fudgetypes.ErrOrdinalRange
	ErrUnknownClass         = fudgetypes.ErrUnknownClass
	ErrConversionFailed     = fudgetypes.ErrConversionFailed
	ErrWriterNotInEnvelope  = fudgetypes.ErrWriterNotInEnvelope
	ErrWriterDone           = fudgetypes.ErrWriterDone
	ErrBudgetExceeded       = fudgetypes.ErrBudgetExceeded
	ErrReaderClosed         = fudgetypes.ErrReaderClosed
	ErrImmutableMessage     = fudgetypes.ErrImmutableMessage
	ErrImmutableResolver    = fudgetypes.ErrImmutableResolver
	ErrMaxDepthExceeded     = fudgetypes.ErrMaxDepthExceeded
)
