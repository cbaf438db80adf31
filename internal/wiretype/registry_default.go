package wiretype

import "github.com/opengamma/fudge-go/internal/wire"

// DefaultRegistry builds the frozen set of built-in wire types, per the
// type id table fixed by the wire specification (spec.md §4.2, §6).
//
// The sub-message type (wire.TypeSubMessage) is registered for its id and
// (variable) width metadata only: its Read/Write are nil because decoding or
// encoding a sub-message requires recursing through the Message
// abstraction, which lives one layer up in pkg/fudge and would create an
// import cycle if pulled down here. The stream reader special-cases
// wire.TypeSubMessage, and the stream writer special-cases field values
// that are Messages, before consulting a WireType's Read/Write.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(newIndicatorType())
	r.Register(newBooleanType())
	r.Register(newByteType())
	r.Register(newShortType())
	r.Register(newIntType())
	r.Register(newLongType())
	r.Register(newFloatType())
	r.Register(newDoubleType())

	r.Register(newShortArrayType())
	r.Register(newIntArrayType())
	r.Register(newLongArrayType())
	r.Register(newFloatArrayType())
	r.Register(newDoubleArrayType())

	r.Register(newByteArrayType())
	ids := [...]byte{
		wire.TypeByteArray4, wire.TypeByteArray8, wire.TypeByteArray16,
		wire.TypeByteArray20, wire.TypeByteArray32, wire.TypeByteArray64,
		wire.TypeByteArray128, wire.TypeByteArray256, wire.TypeByteArray512,
	}
	for i, id := range ids {
		r.Register(newFixedByteArrayType(id, wire.FixedByteArraySizes[i]))
	}

	r.Register(newStringType())
	r.Register(&WireType{ID: wire.TypeSubMessage, Name: "message", FixedWidth: false, Size: -1})
	r.Register(newDateType())
	r.Register(newTimeType())
	r.Register(newDateTimeType())

	return r
}
