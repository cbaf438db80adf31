package fudge

import (
	"bytes"
	"io"

	"github.com/opengamma/fudge-go/internal/wiretype"
	"github.com/opengamma/fudge-go/pkg/fudgetypes"
)

// EncodedMessage is the lazy, encoded-backed Message implementation (spec.md
// §4.8, §6): it holds the raw field bytes of a single message body (no
// envelope header) and decodes one field at a time, only as far as an
// accessor call requires, the way the teacher's value list resolves each VK
// cell only when asked rather than parsing every value up front. A
// sub-message encountered along the way is never parsed — its byte range is
// skipped and wrapped as a new EncodedMessage, so decoding a top-level field
// never forces a nested message open.
type EncodedMessage struct {
	registry *wiretype.Registry
	taxonomy Taxonomy
	raw      []byte

	sr     *StreamReader
	fields []fudgetypes.Field
	done   bool
}

// NewEncodedMessage wraps raw — the exact bytes of a message body, as they
// appear between an envelope header (or a sub-message field's size prefix)
// and the end of that frame — for lazy decoding.
func NewEncodedMessage(raw []byte, registry *wiretype.Registry, taxonomy Taxonomy) *EncodedMessage {
	return &EncodedMessage{registry: registry, taxonomy: taxonomy, raw: raw}
}

var _ fudgetypes.Message = (*EncodedMessage)(nil)

// GetFudgeEncoded returns the exact bytes this message was constructed
// from, letting SizeCalculator size it and StreamWriter re-emit it verbatim
// instead of re-encoding field by field.
func (m *EncodedMessage) GetFudgeEncoded() []byte { return m.raw }

// ensureReader lazily opens a StreamReader positioned at the start of raw,
// treating it as a single already-open frame (no envelope header to read).
func (m *EncodedMessage) ensureReader() {
	if m.sr != nil || m.done {
		return
	}
	sr := NewStreamReader(bytes.NewReader(m.raw), m.registry, emptyTaxonomyResolver{}, 0)
	sr.state = readerInEnvelope
	sr.stack = []frame{{remaining: len(m.raw)}}
	sr.taxonomy = m.taxonomy
	m.sr = sr
}

// decodeNext advances the reader by exactly one top-level field and appends
// it to m.fields, reporting ok=false once the frame is exhausted. A nested
// sub-message is never recursed into: its bytes are skipped via
// SkipMessageField and wrapped as a new, independently lazy EncodedMessage.
func (m *EncodedMessage) decodeNext() (ok bool, err error) {
	if m.done {
		return false, nil
	}
	m.ensureReader()

	el, err := m.sr.Next()
	if err == io.EOF {
		m.done = true
		m.sr = nil
		return false, nil
	}
	if err != nil {
		return false, err
	}

	switch el.Kind {
	case fudgetypes.SubMessageFieldStart:
		subRaw, err := m.sr.SkipMessageField()
		if err != nil {
			return false, err
		}
		child := NewEncodedMessage(subRaw, m.registry, m.taxonomy)
		m.fields = append(m.fields, fudgetypes.NewField(el.Name, el.Ordinal, el.Type, child))
		return true, nil
	case fudgetypes.SimpleField:
		m.fields = append(m.fields, fudgetypes.NewField(el.Name, el.Ordinal, el.Type, el.Value))
		return true, nil
	default:
		return false, &fudgetypes.Error{Kind: fudgetypes.ErrKindMalformedFrame, Msg: "fudge: unexpected stream event decoding message body"}
	}
}

// ensureFullyDecoded drives decodeNext to exhaustion, for the few accessors
// (NumFields, GetAllByName, Fields) that need every field.
func (m *EncodedMessage) ensureFullyDecoded() error {
	for {
		ok, err := m.decodeNext()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

func (m *EncodedMessage) NumFields() int {
	if err := m.ensureFullyDecoded(); err != nil {
		return 0
	}
	return len(m.fields)
}

// IsEmpty reports whether the message body is empty, without decoding any
// field: an empty raw range can never yield one.
func (m *EncodedMessage) IsEmpty() bool {
	return len(m.raw) == 0
}

func (m *EncodedMessage) GetByIndex(i int) (fudgetypes.Field, error) {
	if i < 0 {
		return fudgetypes.Field{}, fudgetypes.ErrConversionFailed
	}
	for len(m.fields) <= i {
		ok, err := m.decodeNext()
		if err != nil {
			return fudgetypes.Field{}, err
		}
		if !ok {
			return fudgetypes.Field{}, fudgetypes.ErrConversionFailed
		}
	}
	return m.fields[i], nil
}

// GetByName decodes only as far as the first matching field, then stops.
func (m *EncodedMessage) GetByName(name string) (fudgetypes.Field, bool, error) {
	for _, f := range m.fields {
		if f.Name != nil && *f.Name == name {
			return f, true, nil
		}
	}
	for {
		ok, err := m.decodeNext()
		if err != nil {
			return fudgetypes.Field{}, false, err
		}
		if !ok {
			return fudgetypes.Field{}, false, nil
		}
		if f := m.fields[len(m.fields)-1]; f.Name != nil && *f.Name == name {
			return f, true, nil
		}
	}
}

// GetByOrdinal decodes only as far as the first matching field, then stops.
func (m *EncodedMessage) GetByOrdinal(ordinal int16) (fudgetypes.Field, bool, error) {
	for _, f := range m.fields {
		if f.Ordinal != nil && *f.Ordinal == ordinal {
			return f, true, nil
		}
	}
	for {
		ok, err := m.decodeNext()
		if err != nil {
			return fudgetypes.Field{}, false, err
		}
		if !ok {
			return fudgetypes.Field{}, false, nil
		}
		if f := m.fields[len(m.fields)-1]; f.Ordinal != nil && *f.Ordinal == ordinal {
			return f, true, nil
		}
	}
}

func (m *EncodedMessage) GetAllByName(name string) ([]fudgetypes.Field, error) {
	if err := m.ensureFullyDecoded(); err != nil {
		return nil, err
	}
	var out []fudgetypes.Field
	for _, f := range m.fields {
		if f.Name != nil && *f.Name == name {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *EncodedMessage) Fields() ([]fudgetypes.Field, error) {
	if err := m.ensureFullyDecoded(); err != nil {
		return nil, err
	}
	out := make([]fudgetypes.Field, len(m.fields))
	copy(out, m.fields)
	return out, nil
}
