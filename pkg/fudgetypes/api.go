package fudgetypes

// StreamElement enumerates the events a StreamReader's pull API produces
// (spec.md §4.7).
type StreamElement int

const (
	MessageEnvelope StreamElement = iota
	SimpleField
	SubMessageFieldStart
	SubMessageFieldEnd
)

func (e StreamElement) String() string {
	switch e {
	case MessageEnvelope:
		return "MESSAGE_ENVELOPE"
	case SimpleField:
		return "SIMPLE_FIELD"
	case SubMessageFieldStart:
		return "SUBMESSAGE_FIELD_START"
	case SubMessageFieldEnd:
		return "SUBMESSAGE_FIELD_END"
	default:
		return "UNKNOWN"
	}
}

// Envelope is the framed unit wrapping one message (spec.md §3).
type Envelope struct {
	ProcessingDirectives byte
	SchemaVersion        byte
	TaxonomyID           int16
	// TotalSize includes the 8-byte envelope header.
	TotalSize int32
}

// Message is the read-only view over an ordered field list (spec.md §6).
// Both the eager, list-backed implementation and the lazy, encoded-backed
// implementation satisfy it.
type Message interface {
	// NumFields returns the number of top-level fields.
	NumFields() int
	// IsEmpty reports whether the message has zero fields. For the
	// encoded-backed implementation this decodes at most one field.
	IsEmpty() bool
	// GetByIndex returns the field at position i, decoding up to i for a
	// lazy container.
	GetByIndex(i int) (Field, error)
	// GetByName returns the first field with the given name, or ok=false.
	GetByName(name string) (Field, bool, error)
	// GetByOrdinal returns the first field with the given ordinal, or ok=false.
	GetByOrdinal(ordinal int16) (Field, bool, error)
	// GetAllByName returns every field with the given name, in insertion order.
	GetAllByName(name string) ([]Field, error)
	// Fields materializes (and, for a lazy container, fully decodes) the
	// field sequence.
	Fields() ([]Field, error)
}

// MutableMessage is the builder-facing surface a StreamWriter consumes
// (spec.md §6). Only the interface surface the writer needs is specified
// here; object-to-message reflection/builders are out of scope (spec.md §1).
type MutableMessage interface {
	Message
	// Add appends a field. name and/or ordinal may be nil.
	Add(name *string, ordinal *int16, value any) error
	// AddTyped appends a field with an explicit wire type, bypassing the
	// type dictionary's primary-type inference.
	AddTyped(name *string, ordinal *int16, typeID byte, value any) error
	// AddSubMessage appends a field whose value is a nested MutableMessage.
	AddSubMessage(name *string, ordinal *int16) (MutableMessage, error)
	// EnsureSubMessage returns the first existing sub-message field matching
	// name (if non-nil) and ordinal (if non-nil), creating one via
	// AddSubMessage if none matches.
	EnsureSubMessage(name *string, ordinal *int16) (MutableMessage, error)
	// Remove deletes the first field matching name (if non-nil) and
	// ordinal (if non-nil).
	Remove(name *string, ordinal *int16) error
	// Clear removes every field.
	Clear()
}
