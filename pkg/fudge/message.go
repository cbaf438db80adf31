package fudge

import (
	"github.com/opengamma/fudge-go/internal/wire"
	"github.com/opengamma/fudge-go/internal/wiretype"
	"github.com/opengamma/fudge-go/pkg/fudgetypes"
)

// StandardMessage is the eager, list-backed Message/MutableMessage
// implementation (spec.md §3, §6): an ordered field slice, mutable during
// build and effectively frozen once handed to a writer. Duplicate names or
// ordinals are permitted; insertion order is preserved.
type StandardMessage struct {
	dict   *TypeDictionary
	fields []fudgetypes.Field
}

// NewMessage creates an empty mutable message bound to dict for type
// inference on Add.
func NewMessage(dict *TypeDictionary) *StandardMessage {
	return &StandardMessage{dict: dict}
}

var (
	_ fudgetypes.MutableMessage = (*StandardMessage)(nil)
)

func (m *StandardMessage) NumFields() int { return len(m.fields) }

func (m *StandardMessage) IsEmpty() bool { return len(m.fields) == 0 }

func (m *StandardMessage) GetByIndex(i int) (fudgetypes.Field, error) {
	if i < 0 || i >= len(m.fields) {
		return fudgetypes.Field{}, fudgetypes.ErrConversionFailed
	}
	return m.fields[i], nil
}

func (m *StandardMessage) GetByName(name string) (fudgetypes.Field, bool, error) {
	for _, f := range m.fields {
		if f.Name != nil && *f.Name == name {
			return f, true, nil
		}
	}
	return fudgetypes.Field{}, false, nil
}

func (m *StandardMessage) GetByOrdinal(ordinal int16) (fudgetypes.Field, bool, error) {
	for _, f := range m.fields {
		if f.Ordinal != nil && *f.Ordinal == ordinal {
			return f, true, nil
		}
	}
	return fudgetypes.Field{}, false, nil
}

func (m *StandardMessage) GetAllByName(name string) ([]fudgetypes.Field, error) {
	var out []fudgetypes.Field
	for _, f := range m.fields {
		if f.Name != nil && *f.Name == name {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *StandardMessage) Fields() ([]fudgetypes.Field, error) {
	out := make([]fudgetypes.Field, len(m.fields))
	copy(out, m.fields)
	return out, nil
}

// Add appends a field, inferring its wire type from value's runtime type
// via the bound TypeDictionary (spec.md §6).
func (m *StandardMessage) Add(name *string, ordinal *int16, value any) error {
	wireValue, wt, err := m.dict.ToWireValue(value)
	if err != nil {
		return err
	}
	return m.appendField(name, ordinal, wt.ID, wireValue)
}

// AddTyped appends a field with an explicit wire type id, bypassing type
// inference — useful when a Go value maps to more than one wire type (e.g.
// a 16-byte []byte written as the fixed-width TypeByteArray16) or when
// writing a raw sub-message/indicator value. value is stored as given, so it
// must already have the Go type the chosen wire type's Write expects.
func (m *StandardMessage) AddTyped(name *string, ordinal *int16, typeID byte, value any) error {
	return m.appendField(name, ordinal, typeID, value)
}

func (m *StandardMessage) appendField(name *string, ordinal *int16, typeID byte, value any) error {
	wt := m.dict.Registry().Lookup(typeID)
	if wt == nil {
		return fudgetypes.ErrUnknownClass
	}
	if name != nil {
		if len(*name) > wire.MaxNameLength {
			return fudgetypes.ErrNameTooLong
		}
		if !wiretype.ValidUTF8([]byte(*name)) {
			return fudgetypes.ErrInvalidName
		}
	}
	m.fields = append(m.fields, fudgetypes.NewField(name, ordinal, wt, value))
	return nil
}

// AddSubMessage appends a new, empty child message as a field's value and
// returns it for further population.
func (m *StandardMessage) AddSubMessage(name *string, ordinal *int16) (fudgetypes.MutableMessage, error) {
	child := NewMessage(m.dict)
	if err := m.appendField(name, ordinal, wire.TypeSubMessage, child); err != nil {
		return nil, err
	}
	return child, nil
}

// EnsureSubMessage returns the first existing sub-message field matching
// name (if non-nil) and ordinal (if non-nil); if none matches, it appends a
// new empty one via AddSubMessage. A matching field whose value is not a
// sub-message is a conversion error: the caller asked for a container at a
// slot already occupied by a scalar.
func (m *StandardMessage) EnsureSubMessage(name *string, ordinal *int16) (fudgetypes.MutableMessage, error) {
	for _, f := range m.fields {
		if name != nil && (f.Name == nil || *f.Name != *name) {
			continue
		}
		if ordinal != nil && (f.Ordinal == nil || *f.Ordinal != *ordinal) {
			continue
		}
		child, ok := f.Value.(fudgetypes.MutableMessage)
		if !ok {
			return nil, fudgetypes.ErrConversionFailed
		}
		return child, nil
	}
	return m.AddSubMessage(name, ordinal)
}

// Remove deletes the first field matching the given name (if non-nil) and
// ordinal (if non-nil); both constraints must match when both are given.
func (m *StandardMessage) Remove(name *string, ordinal *int16) error {
	for i, f := range m.fields {
		if name != nil && (f.Name == nil || *f.Name != *name) {
			continue
		}
		if ordinal != nil && (f.Ordinal == nil || *f.Ordinal != *ordinal) {
			continue
		}
		m.fields = append(m.fields[:i], m.fields[i+1:]...)
		return nil
	}
	return nil
}

func (m *StandardMessage) Clear() { m.fields = nil }
