package fudge

import (
	"github.com/opengamma/fudge-go/internal/wire"
	"github.com/opengamma/fudge-go/internal/wiretype"
	"github.com/opengamma/fudge-go/pkg/fudgetypes"
)

// writerState tracks where a StreamWriter sits in the envelope lifecycle
// (spec.md §4.6): idle before a header is written, inside an envelope while
// fields are accepted against a shrinking byte budget, and done once that
// budget is exhausted.
type writerState int

const (
	writerIdle writerState = iota
	writerInEnvelope
	writerDone
)

// Sink is the byte-oriented destination a StreamWriter appends to. *bytes.Buffer
// and any type exposing an equivalent Write satisfy it; os.File does too.
type Sink interface {
	Write(p []byte) (n int, err error)
}

// StreamWriter is the low-level push API for emitting a single Fudge
// envelope (spec.md §4.6): write the header, then write fields until the
// header's declared total size is exactly accounted for. It never buffers a
// whole message; each field is sized, then serialized straight to the sink.
type StreamWriter struct {
	sink      Sink
	dict      *TypeDictionary
	taxonomy  Taxonomy
	size      SizeCalculator
	state     writerState
	remaining int
}

// NewStreamWriter constructs a StreamWriter over sink, using dict for
// wire-type lookups and taxonomy (which may be nil) for name->ordinal
// substitution.
func NewStreamWriter(sink Sink, dict *TypeDictionary, taxonomy Taxonomy) *StreamWriter {
	return &StreamWriter{sink: sink, dict: dict, taxonomy: taxonomy}
}

// WriteEnvelopeHeader writes the 8-byte envelope header and opens the
// envelope for field writes. totalSize must equal the envelope header size
// plus the exact encoded size of every field that will follow — callers
// typically obtain it from SizeCalculator.CalculateEnvelopeSize beforehand.
func (w *StreamWriter) WriteEnvelopeHeader(processingDirectives byte, schemaVersion byte, taxonomyID int16, totalSize int) error {
	if w.state != writerIdle {
		return fudgetypes.ErrWriterNotInEnvelope
	}
	if totalSize < wire.EnvelopeHeaderSize || totalSize > wire.MaxEncodedSize {
		return fudgetypes.ErrValueTooLarge
	}
	hdr := wire.EnvelopeHeader{
		ProcessingDirectives: processingDirectives,
		SchemaVersion:        schemaVersion,
		TaxonomyID:           taxonomyID,
		TotalSize:            int32(totalSize),
	}
	buf := make([]byte, wire.EnvelopeHeaderSize)
	wire.PutEnvelopeHeader(buf, hdr)
	if _, err := w.sink.Write(buf); err != nil {
		return &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: write envelope header", Err: err}
	}
	w.state = writerInEnvelope
	w.remaining = totalSize - wire.EnvelopeHeaderSize
	return nil
}

// WriteField emits one field: name and/or ordinal are optional per spec.md
// §3, typ selects the wire representation, and value must already be in
// typ's native Go shape (run it through TypeDictionary.ToWireValue first if
// it came from a secondary type). The field's exact size is deducted from
// the envelope's remaining budget; if that would go negative the write is
// rejected before anything is emitted and the writer is left in its prior
// state, so a rejected WriteField never corrupts the stream.
func (w *StreamWriter) WriteField(name *string, ordinal *int16, typ *wiretype.WireType, value any) error {
	if w.state == writerDone {
		return fudgetypes.ErrWriterDone
	}
	if w.state != writerInEnvelope {
		return fudgetypes.ErrWriterNotInEnvelope
	}
	if typ == nil {
		return fudgetypes.ErrUnknownClass
	}

	fieldSize, err := w.size.CalculateFieldSize(w.taxonomy, name, ordinal, typ, value)
	if err != nil {
		return err
	}
	if fieldSize > w.remaining {
		return fudgetypes.ErrBudgetExceeded
	}

	effOrdinal, effName := resolveEmission(w.taxonomy, name, ordinal)

	var valueSize int
	if typ.FixedWidth {
		valueSize = typ.Size
	} else {
		valueSize, err = typ.ValueSize(value)
		if err != nil {
			return &fudgetypes.Error{Kind: fudgetypes.ErrKindMalformedFrame, Msg: "fudge: failed to size field value", Err: err}
		}
	}
	prefixByte, err := wire.ComposeFieldPrefix(typ.FixedWidth, valueSize, effOrdinal != nil, effName != nil)
	if err != nil {
		return fudgetypes.ErrValueTooLarge
	}

	head := make([]byte, 0, fieldSize-valueSize)
	head = append(head, prefixByte, typ.ID)
	if effOrdinal != nil {
		ob := make([]byte, wire.OrdinalSize)
		wire.PutU16(ob, 0, uint16(*effOrdinal))
		head = append(head, ob...)
	}
	if effName != nil {
		if len(*effName) > wire.MaxNameLength {
			return fudgetypes.ErrNameTooLong
		}
		head = append(head, byte(len(*effName)))
		head = append(head, []byte(*effName)...)
	}
	if !typ.FixedWidth {
		sizeCode := wire.DecomposeFieldPrefix(prefixByte).SizeCode
		width := wire.SizeCodeWidth(sizeCode)
		switch width {
		case 1:
			head = append(head, byte(valueSize))
		case 2:
			sb := make([]byte, 2)
			wire.PutU16(sb, 0, uint16(valueSize))
			head = append(head, sb...)
		case 4:
			sb := make([]byte, 4)
			wire.PutU32(sb, 0, uint32(valueSize))
			head = append(head, sb...)
		}
	}
	if _, err := w.sink.Write(head); err != nil {
		return &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: write field head", Err: err}
	}

	if err := typ.Write(w.sink, value); err != nil {
		return &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: write field value", Err: err}
	}

	w.remaining -= fieldSize
	if w.remaining == 0 {
		w.state = writerDone
	}
	return nil
}

// WriteMessage walks msg's top-level fields and writes each in order,
// recursing into sub-messages. It is the convenience surface over repeated
// WriteField calls for callers building with a MutableMessage rather than
// driving the stream field-by-field themselves. Inside an envelope, an
// *EncodedMessage is emitted as its original bytes rather than re-encoded.
func (w *StreamWriter) WriteMessage(msg fudgetypes.Message) error {
	if em, ok := msg.(*EncodedMessage); ok && w.state == writerInEnvelope {
		raw := em.GetFudgeEncoded()
		if len(raw) > w.remaining {
			return fudgetypes.ErrBudgetExceeded
		}
		if _, err := w.sink.Write(raw); err != nil {
			return &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: write encoded message", Err: err}
		}
		w.remaining -= len(raw)
		if w.remaining == 0 {
			w.state = writerDone
		}
		return nil
	}
	fields, err := msg.Fields()
	if err != nil {
		return err
	}
	for _, f := range fields {
		if sub, ok := f.Value.(fudgetypes.Message); ok {
			if err := w.writeSubMessageField(f.Name, f.Ordinal, sub); err != nil {
				return err
			}
			continue
		}
		if err := w.WriteField(f.Name, f.Ordinal, f.Type, f.Value); err != nil {
			return err
		}
	}
	return nil
}

// writeSubMessageField writes a nested message as a variable-width
// sub-message field: its header is sized from the child's own field sizes,
// then the child's fields are written immediately after, with no nested
// envelope header (spec.md §3 — sub-messages do not repeat the envelope).
func (w *StreamWriter) writeSubMessageField(name *string, ordinal *int16, sub fudgetypes.Message) error {
	wt := w.dict.Registry().Lookup(wire.TypeSubMessage)
	if wt == nil {
		return fudgetypes.ErrUnknownClass
	}
	childSize, err := w.size.CalculateMessageSize(w.taxonomy, sub)
	if err != nil {
		return err
	}

	effOrdinal, effName := resolveEmission(w.taxonomy, name, ordinal)
	prefixByte, err := wire.ComposeFieldPrefix(false, childSize, effOrdinal != nil, effName != nil)
	if err != nil {
		return fudgetypes.ErrValueTooLarge
	}

	headSize := wire.FieldPrefixSize + wire.TypeIDSize
	if effOrdinal != nil {
		headSize += wire.OrdinalSize
	}
	if effName != nil {
		headSize += wire.NameLengthPrefixSize + len(*effName)
	}
	headSize += wire.SizeCodeWidth(wire.DecomposeFieldPrefix(prefixByte).SizeCode)

	if headSize+childSize > w.remaining {
		return fudgetypes.ErrBudgetExceeded
	}

	head := make([]byte, 0, headSize)
	head = append(head, prefixByte, wt.ID)
	if effOrdinal != nil {
		ob := make([]byte, wire.OrdinalSize)
		wire.PutU16(ob, 0, uint16(*effOrdinal))
		head = append(head, ob...)
	}
	if effName != nil {
		head = append(head, byte(len(*effName)))
		head = append(head, []byte(*effName)...)
	}
	sizeCode := wire.DecomposeFieldPrefix(prefixByte).SizeCode
	switch wire.SizeCodeWidth(sizeCode) {
	case 1:
		head = append(head, byte(childSize))
	case 2:
		sb := make([]byte, 2)
		wire.PutU16(sb, 0, uint16(childSize))
		head = append(head, sb...)
	case 4:
		sb := make([]byte, 4)
		wire.PutU32(sb, 0, uint32(childSize))
		head = append(head, sb...)
	}
	if _, err := w.sink.Write(head); err != nil {
		return &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: write sub-message head", Err: err}
	}

	w.remaining -= headSize + childSize

	sub2 := &StreamWriter{sink: w.sink, dict: w.dict, taxonomy: w.taxonomy, state: writerInEnvelope, remaining: childSize}
	if err := sub2.WriteMessage(sub); err != nil {
		return err
	}

	if w.remaining == 0 {
		w.state = writerDone
	}
	return nil
}

// Done reports whether the writer has completed its envelope.
func (w *StreamWriter) Done() bool { return w.state == writerDone }
