package fudge

import (
	"github.com/opengamma/fudge-go/internal/buf"
	"github.com/opengamma/fudge-go/internal/wire"
	"github.com/opengamma/fudge-go/internal/wiretype"
	"github.com/opengamma/fudge-go/pkg/fudgetypes"
)

// SizeCalculator predicts the exact encoded byte length of a field or
// message without producing bytes (spec.md §4.5). It is stateless; callers
// typically obtain one via Context.SizeCalculator(), but the zero value is
// usable directly since CalculateFieldSize takes the taxonomy explicitly.
type SizeCalculator struct{}

// CalculateFieldSize implements spec.md §4.5's formula exactly:
//
//	start at 2 (prefix byte + type-id byte)
//	+2 if an effective ordinal is present
//	+1+len(name) if an effective name is present
//	+ value size (+1/2/4 size-code bytes) if variable-width, else + fixed size
func (SizeCalculator) CalculateFieldSize(taxonomy Taxonomy, name *string, ordinal *int16, typ *wiretype.WireType, value any) (int, error) {
	if typ == nil {
		return 0, fudgetypes.ErrUnknownClass
	}

	effOrdinal, effName := resolveEmission(taxonomy, name, ordinal)

	size := wire.FieldPrefixSize + wire.TypeIDSize
	if effOrdinal != nil {
		size += wire.OrdinalSize
	}
	if effName != nil {
		if len(*effName) > wire.MaxNameLength {
			return 0, fudgetypes.ErrNameTooLong
		}
		size += wire.NameLengthPrefixSize + len(*effName)
	}

	if typ.FixedWidth {
		size += typ.Size
		return size, nil
	}

	valueSize, err := typ.ValueSize(value)
	if err != nil {
		return 0, &fudgetypes.Error{Kind: fudgetypes.ErrKindMalformedFrame, Msg: "fudge: failed to size field value", Err: err}
	}
	if valueSize > wire.MaxEncodedSize {
		return 0, fudgetypes.ErrValueTooLarge
	}
	prefixByte, err := wire.ComposeFieldPrefix(false, valueSize, effOrdinal != nil, effName != nil)
	if err != nil {
		return 0, fudgetypes.ErrValueTooLarge
	}
	size += wire.SizeCodeWidth(wire.DecomposeFieldPrefix(prefixByte).SizeCode)
	size, ok := buf.AddOverflowSafe(size, valueSize)
	if !ok {
		return 0, fudgetypes.ErrValueTooLarge
	}
	return size, nil
}

// CalculateMessageSize sums CalculateFieldSize over msg's top-level fields
// (spec.md §4.5). If msg exposes a pre-computed encoded form (the
// encoded-backed container), that length is returned verbatim instead of
// re-summing. A field whose value is itself a Message (a sub-message field)
// is sized as its header plus the recursively computed size of its
// contents, since the sub-message wire type has no fixed/value size of its
// own to delegate to.
func (c SizeCalculator) CalculateMessageSize(taxonomy Taxonomy, msg fudgetypes.Message) (int, error) {
	// The encoded-backed container is immutable, so its original byte range
	// is always an exact, cheaper stand-in for re-summing field sizes.
	if em, ok := msg.(*EncodedMessage); ok {
		return len(em.GetFudgeEncoded()), nil
	}

	fields, err := msg.Fields()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, f := range fields {
		var fsz int
		var err error
		if sub, ok := f.Value.(fudgetypes.Message); ok {
			fsz, err = c.calculateSubMessageFieldSize(taxonomy, f.Name, f.Ordinal, sub)
		} else {
			fsz, err = c.CalculateFieldSize(taxonomy, f.Name, f.Ordinal, f.Type, f.Value)
		}
		if err != nil {
			return 0, err
		}
		sum, ok := buf.AddOverflowSafe(total, fsz)
		if !ok {
			return 0, fudgetypes.ErrValueTooLarge
		}
		total = sum
	}
	return total, nil
}

// calculateSubMessageFieldSize sizes a sub-message field: prefix + type id
// + optional ordinal/name + variable-width size code + the child message's
// own encoded size, mirroring StreamWriter.writeSubMessageField exactly so
// the two can never disagree.
func (c SizeCalculator) calculateSubMessageFieldSize(taxonomy Taxonomy, name *string, ordinal *int16, sub fudgetypes.Message) (int, error) {
	childSize, err := c.CalculateMessageSize(taxonomy, sub)
	if err != nil {
		return 0, err
	}
	effOrdinal, effName := resolveEmission(taxonomy, name, ordinal)

	size := wire.FieldPrefixSize + wire.TypeIDSize
	if effOrdinal != nil {
		size += wire.OrdinalSize
	}
	if effName != nil {
		if len(*effName) > wire.MaxNameLength {
			return 0, fudgetypes.ErrNameTooLong
		}
		size += wire.NameLengthPrefixSize + len(*effName)
	}
	if childSize > wire.MaxEncodedSize {
		return 0, fudgetypes.ErrValueTooLarge
	}
	prefixByte, err := wire.ComposeFieldPrefix(false, childSize, effOrdinal != nil, effName != nil)
	if err != nil {
		return 0, fudgetypes.ErrValueTooLarge
	}
	size += wire.SizeCodeWidth(wire.DecomposeFieldPrefix(prefixByte).SizeCode)
	size, ok := buf.AddOverflowSafe(size, childSize)
	if !ok {
		return 0, fudgetypes.ErrValueTooLarge
	}
	return size, nil
}

// CalculateEnvelopeSize adds the 8-byte envelope header to a message's
// encoded size (spec.md §4.5).
func (c SizeCalculator) CalculateEnvelopeSize(taxonomy Taxonomy, msg fudgetypes.Message) (int, error) {
	sz, err := c.CalculateMessageSize(taxonomy, msg)
	if err != nil {
		return 0, err
	}
	return sz + wire.EnvelopeHeaderSize, nil
}
