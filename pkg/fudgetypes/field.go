package fudgetypes

import "github.com/opengamma/fudge-go/internal/wiretype"

// Field is an immutable tuple {type, value, name?, ordinal?} (spec.md §3).
// Name and Ordinal are independently optional; a Field may carry either,
// both, or neither, matching the wire format's independent name/ordinal
// presence bits.
type Field struct {
	Name    *string
	Ordinal *int16
	Type    *wiretype.WireType
	Value   any
}

// NewField builds a Field. name and ordinal may be nil.
func NewField(name *string, ordinal *int16, typ *wiretype.WireType, value any) Field {
	return Field{Name: name, Ordinal: ordinal, Type: typ, Value: value}
}

// Str is a convenience constructor for a non-nil name pointer.
func Str(s string) *string { return &s }

// Ord is a convenience constructor for a non-nil ordinal pointer.
func Ord(o int16) *int16 { return &o }

// Equal compares all four components of two fields. Name/Ordinal are
// compared by value (nil-aware); Value is compared with a type switch over
// the wire's comparable primitive and slice shapes.
func (f Field) Equal(other Field) bool {
	if !equalStringPtr(f.Name, other.Name) {
		return false
	}
	if !equalInt16Ptr(f.Ordinal, other.Ordinal) {
		return false
	}
	if (f.Type == nil) != (other.Type == nil) {
		return false
	}
	if f.Type != nil && f.Type.ID != other.Type.ID {
		return false
	}
	return equalValue(f.Value, other.Value)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalInt16Ptr(a, b *int16) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalValue(a, b any) bool {
	switch av := a.(type) {
	case []byte:
		bv, ok := b.([]byte)
		return ok && bytesEqual(av, bv)
	case []int16:
		bv, ok := b.([]int16)
		return ok && int16sEqual(av, bv)
	case []int32:
		bv, ok := b.([]int32)
		return ok && int32sEqual(av, bv)
	case []int64:
		bv, ok := b.([]int64)
		return ok && int64sEqual(av, bv)
	case []float32:
		bv, ok := b.([]float32)
		return ok && float32sEqual(av, bv)
	case []float64:
		bv, ok := b.([]float64)
		return ok && float64sEqual(av, bv)
	default:
		return a == b
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func int16sEqual(a, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func int32sEqual(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func int64sEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func float32sEqual(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func float64sEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
