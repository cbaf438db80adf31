// Package wiretype defines the built-in Fudge wire types: the fixed set of
// type ids, their on-wire widths, and their read/write pairs. It has no
// knowledge of taxonomies, fields, or messages — those live in pkg/fudge,
// which uses a Registry to look up a WireType by id or to pick a primary
// type for a Go value.
package wiretype

import (
	"io"
	"reflect"
)

// WireType is a registered entry for one built-in type id: its width (fixed
// or variable), its declared Go value class, and its read/write/size
// functions. Analogous to a tagged-variant case rather than a virtual
// method table: construction is additive at registry build time and the
// set of cases is closed.
type WireType struct {
	ID         byte
	Name       string
	FixedWidth bool
	// Size is the fixed width in bytes, or -1 for variable-width types.
	Size int
	// GoType is the type a value of this wire type decodes to by default.
	// May be nil for types with no single canonical Go representation.
	GoType reflect.Type
	// NoAutoInfer excludes this type from a TypeDictionary's automatic
	// GoType->WireType inference. Several WireTypes can share a GoType
	// (every fixed-width byte[N] array decodes to []byte, same as the
	// variable-width byte[] type); exactly one of them should be
	// inferable, so the fixed-width family sets this and must be selected
	// explicitly via AddTyped instead.
	NoAutoInfer bool

	// Read consumes exactly declaredSize bytes from r and returns the
	// decoded value. For fixed-width types declaredSize is always FixedSize.
	Read func(r io.Reader, declaredSize int) (any, error)
	// Write encodes v to w. The caller is responsible for having already
	// written any size prefix (variable-width types only).
	Write func(w io.Writer, v any) error
	// ValueSize returns the number of bytes Write(v) would emit. Only
	// called for variable-width types; fixed-width types use Size directly.
	ValueSize func(v any) (int, error)
}

// FixedSize implements the component described in spec.md §4.2:
// fixedSize() for fixed-width types, -1 otherwise.
func (t *WireType) FixedSize() int {
	if t.FixedWidth {
		return t.Size
	}
	return -1
}

// Registry is a process-wide, additive-then-frozen mapping of type id to
// WireType. Registration happens once, during construction; the returned
// Registry is never mutated afterward, matching the teacher's
// validate-at-open / immutable-after-construction discipline.
type Registry struct {
	byID map[byte]*WireType
}

// NewRegistry builds an empty, mutable registry. Callers add entries with
// Register and then treat the result as read-only; Registry itself has no
// enforcement for that beyond convention, same as the built-in registry
// returned by DefaultRegistry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[byte]*WireType)}
}

// Register adds t to the registry, keyed by t.ID. A later Register call
// with the same id replaces the earlier entry.
func (r *Registry) Register(t *WireType) {
	r.byID[t.ID] = t
}

// Lookup returns the WireType registered for id, or nil if none is.
func (r *Registry) Lookup(id byte) *WireType {
	return r.byID[id]
}

// All returns every registered WireType, in no particular order.
func (r *Registry) All() []*WireType {
	out := make([]*WireType, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out
}
