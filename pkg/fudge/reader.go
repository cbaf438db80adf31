package fudge

import (
	"bufio"
	"io"

	"github.com/opengamma/fudge-go/internal/wire"
	"github.com/opengamma/fudge-go/internal/wiretype"
	"github.com/opengamma/fudge-go/pkg/fudgetypes"
)

// readerState mirrors writerState on the pull side (spec.md §4.7): before
// the envelope header has been consumed, while fields remain in the
// envelope's declared budget, and once that budget is exhausted.
type readerState int

const (
	readerIdle readerState = iota
	readerInEnvelope
	readerDone
)

// frame tracks one level of envelope or sub-message nesting: how many bytes
// of that frame remain unconsumed.
type frame struct {
	remaining int
}

// StreamReader is the low-level pull API over a byte stream (spec.md §4.7):
// Next() advances one step at a time, yielding a MessageEnvelope event, then
// a SimpleField/SubMessageFieldStart/SubMessageFieldEnd event per field,
// without ever materializing a whole message. Names and ordinals are
// resolved against taxonomy exactly as resolveEmission's inverse — an
// ordinal-only field is expanded back to a name when the active taxonomy
// knows one.
type StreamReader struct {
	src      io.Reader
	registry *wiretype.Registry
	resolver TaxonomyResolver
	state    readerState
	maxDepth int

	taxonomy Taxonomy
	stack    []frame
}

// NewStreamReader constructs a StreamReader over src. registry resolves a
// field's type id to its codec; resolver (which may be nil) maps the
// envelope's taxonomy id to a Taxonomy for ordinal->name expansion. maxDepth
// caps sub-message nesting (0 means unlimited); see WithMaxMessageDepth.
func NewStreamReader(src io.Reader, registry *wiretype.Registry, resolver TaxonomyResolver, maxDepth int) *StreamReader {
	if resolver == nil {
		resolver = emptyTaxonomyResolver{}
	}
	return &StreamReader{src: bufio.NewReader(src), registry: registry, resolver: resolver, maxDepth: maxDepth}
}

// Element reports the kind of event the most recent Next() call produced.
type Element struct {
	Kind     fudgetypes.StreamElement
	Envelope fudgetypes.Envelope
	Name     *string
	Ordinal  *int16
	Type     *wiretype.WireType
	Value    any
}

// Next advances the reader by one event and returns it. It returns
// io.EOF once the outermost envelope's budget is fully consumed; any other
// error leaves the reader unusable.
func (r *StreamReader) Next() (Element, error) {
	switch r.state {
	case readerIdle:
		return r.readEnvelopeHeader()
	case readerDone:
		return Element{}, io.EOF
	default:
		return r.readNextField()
	}
}

func (r *StreamReader) readEnvelopeHeader() (Element, error) {
	buf := make([]byte, wire.EnvelopeHeaderSize)
	if _, err := io.ReadFull(r.src, buf); err != nil {
		return Element{}, &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: read envelope header", Err: err}
	}
	hdr, err := wire.ReadEnvelopeHeader(buf)
	if err != nil {
		return Element{}, fudgetypes.ErrTruncatedFrame
	}
	if int(hdr.TotalSize) < wire.EnvelopeHeaderSize {
		return Element{}, fudgetypes.ErrEnvelopeSizeMismatch
	}

	if tax, ok := r.resolver.ResolveTaxonomy(hdr.TaxonomyID); ok {
		r.taxonomy = tax
	}
	r.state = readerInEnvelope
	r.stack = []frame{{remaining: int(hdr.TotalSize) - wire.EnvelopeHeaderSize}}

	return Element{
		Kind: fudgetypes.MessageEnvelope,
		Envelope: fudgetypes.Envelope{
			ProcessingDirectives: hdr.ProcessingDirectives,
			SchemaVersion:        hdr.SchemaVersion,
			TaxonomyID:           hdr.TaxonomyID,
			TotalSize:            hdr.TotalSize,
		},
	}, nil
}

// readNextField consumes the top frame's budget by exactly one field (or
// closes it, popping to the parent frame, when its budget reaches zero).
func (r *StreamReader) readNextField() (Element, error) {
	if len(r.stack) == 0 {
		r.state = readerDone
		return Element{}, io.EOF
	}
	top := &r.stack[len(r.stack)-1]
	if top.remaining == 0 {
		r.stack = r.stack[:len(r.stack)-1]
		if len(r.stack) == 0 {
			r.state = readerDone
			return Element{}, io.EOF
		}
		return Element{Kind: fudgetypes.SubMessageFieldEnd}, nil
	}

	consumed, name, ordinal, wt, isSubMessage, subSize, value, err := r.readField()
	if err != nil {
		return Element{}, err
	}
	if consumed > top.remaining {
		return Element{}, fudgetypes.ErrEnvelopeSizeMismatch
	}
	top.remaining -= consumed

	if expanded, ok := r.expandName(name, ordinal); ok {
		name = &expanded
	}

	if isSubMessage {
		if r.maxDepth > 0 && len(r.stack) >= r.maxDepth {
			return Element{}, fudgetypes.ErrMaxDepthExceeded
		}
		r.stack = append(r.stack, frame{remaining: subSize})
		return Element{Kind: fudgetypes.SubMessageFieldStart, Name: name, Ordinal: ordinal, Type: wt}, nil
	}
	return Element{Kind: fudgetypes.SimpleField, Name: name, Ordinal: ordinal, Type: wt, Value: value}, nil
}

// expandName looks up a name for an ordinal-only field under the active
// taxonomy. Per the Open Question resolved in SPEC_FULL.md §9, this never
// fires when the field already carries a name on the wire.
func (r *StreamReader) expandName(name *string, ordinal *int16) (string, bool) {
	if name != nil || ordinal == nil || r.taxonomy == nil {
		return "", false
	}
	return r.taxonomy.GetFieldName(*ordinal)
}

// readField reads one field prefix/header/value and reports how many bytes
// it consumed, the decoded name/ordinal/type, whether it is a sub-message
// (in which case subSize is its nested byte length and value is unset), and
// otherwise the decoded value.
func (r *StreamReader) readField() (consumed int, name *string, ordinal *int16, wt *wiretype.WireType, isSubMessage bool, subSize int, value any, err error) {
	var head [2]byte
	if _, e := io.ReadFull(r.src, head[:]); e != nil {
		err = &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: read field prefix", Err: e}
		return
	}
	consumed += 2
	prefix := wire.DecomposeFieldPrefix(head[0])
	typeID := head[1]

	wt = r.registry.Lookup(typeID)
	if wt == nil && prefix.FixedWidth {
		// A fixed-width type's size isn't recoverable from the wire alone,
		// so an unknown fixed-width id can't even be skipped safely.
		err = fudgetypes.ErrUnknownFixedType
		return
	}

	if prefix.HasOrdinal {
		var ob [2]byte
		if _, e := io.ReadFull(r.src, ob[:]); e != nil {
			err = &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: read field ordinal", Err: e}
			return
		}
		consumed += 2
		o := int16(wire.ReadU16(ob[:], 0))
		ordinal = &o
	}

	if prefix.HasName {
		var lb [1]byte
		if _, e := io.ReadFull(r.src, lb[:]); e != nil {
			err = &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: read field name length", Err: e}
			return
		}
		consumed++
		nameBytes := make([]byte, lb[0])
		if lb[0] > 0 {
			if _, e := io.ReadFull(r.src, nameBytes); e != nil {
				err = &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: read field name", Err: e}
				return
			}
		}
		consumed += int(lb[0])
		n := string(nameBytes)
		name = &n
	}

	var declaredSize int
	if prefix.FixedWidth {
		declaredSize = wt.FixedSize() // wt != nil, guaranteed above
	} else {
		width := wire.SizeCodeWidth(prefix.SizeCode)
		sb := make([]byte, width)
		if _, e := io.ReadFull(r.src, sb); e != nil {
			err = &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: read field size prefix", Err: e}
			return
		}
		consumed += width
		switch width {
		case 1:
			declaredSize = int(sb[0])
		case 2:
			declaredSize = int(wire.ReadU16(sb, 0))
		case 4:
			declaredSize = int(wire.ReadU32(sb, 0))
		}
	}

	if wt != nil && typeID == wire.TypeSubMessage {
		isSubMessage = true
		subSize = declaredSize
		consumed += declaredSize
		return
	}

	if wt == nil {
		// Unknown variable-width type id (spec.md §4.7): materialize the raw
		// bytes as-is and surface the field tagged with the unknown id,
		// rather than failing the whole stream the way an unknown
		// fixed-width id must.
		raw := make([]byte, declaredSize)
		if declaredSize > 0 {
			if _, e := io.ReadFull(r.src, raw); e != nil {
				err = &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: read unknown-type field value", Err: e}
				return
			}
		}
		consumed += declaredSize
		wt = &wiretype.WireType{ID: typeID, FixedWidth: false, Size: -1}
		value = raw
		return
	}

	value, e := wt.Read(r.src, declaredSize)
	if e != nil {
		err = &fudgetypes.Error{Kind: fudgetypes.ErrKindMalformedFrame, Msg: "fudge: read field value", Err: e}
		return
	}
	consumed += declaredSize
	return
}

// SkipMessageField consumes every remaining byte of the sub-message frame
// most recently opened by a SubMessageFieldStart and returns them verbatim,
// without decoding any of its field values. The returned bytes are exactly
// the sub-range NewEncodedMessage expects, so a caller can wrap a
// sub-message as a lazy container instead of parsing it immediately.
func (r *StreamReader) SkipMessageField() ([]byte, error) {
	if len(r.stack) == 0 {
		return nil, fudgetypes.ErrReaderClosed
	}
	top := &r.stack[len(r.stack)-1]
	raw := make([]byte, top.remaining)
	if _, err := io.ReadFull(r.src, raw); err != nil {
		return nil, &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: skip sub-message", Err: err}
	}
	r.stack = r.stack[:len(r.stack)-1]
	return raw, nil
}
