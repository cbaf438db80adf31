package fudge

// Taxonomy is a partial bijection between field names and ordinals, scoped
// by a 16-bit taxonomy id (spec.md §3, §4.4). Lookups may return ok=false
// in either direction.
type Taxonomy interface {
	GetFieldName(ordinal int16) (name string, ok bool)
	GetFieldOrdinal(name string) (ordinal int16, ok bool)
}

// MapTaxonomy is a Taxonomy backed by two maps built from a single
// name->ordinal source, analogous to the teacher's bidirectional index
// built once at construction and never mutated afterward.
type MapTaxonomy struct {
	byOrdinal map[int16]string
	byName    map[string]int16
}

// NewMapTaxonomy builds a MapTaxonomy from a name->ordinal mapping. Entries
// are expected to be a bijection; if two names share an ordinal, which name
// the reverse (ordinal->name) lookup returns depends on Go's unspecified map
// iteration order.
func NewMapTaxonomy(entries map[string]int16) *MapTaxonomy {
	t := &MapTaxonomy{
		byOrdinal: make(map[int16]string, len(entries)),
		byName:    make(map[string]int16, len(entries)),
	}
	for name, ordinal := range entries {
		t.byName[name] = ordinal
		t.byOrdinal[ordinal] = name
	}
	return t
}

func (t *MapTaxonomy) GetFieldName(ordinal int16) (string, bool) {
	name, ok := t.byOrdinal[ordinal]
	return name, ok
}

func (t *MapTaxonomy) GetFieldOrdinal(name string) (int16, bool) {
	ordinal, ok := t.byName[name]
	return ordinal, ok
}

// TaxonomyResolver maps a 16-bit taxonomy id to a Taxonomy (spec.md §4.4).
type TaxonomyResolver interface {
	ResolveTaxonomy(taxonomyID int16) (Taxonomy, bool)
}

// ImmutableMapTaxonomyResolver is a TaxonomyResolver frozen at construction,
// mirroring the teacher's immutable-after-Open() discipline: mutation is
// rejected at the type boundary rather than via a runtime capability check.
type ImmutableMapTaxonomyResolver struct {
	byID map[int16]Taxonomy
}

// NewTaxonomyResolver builds a resolver from a fixed id->Taxonomy mapping.
func NewTaxonomyResolver(byID map[int16]Taxonomy) *ImmutableMapTaxonomyResolver {
	cp := make(map[int16]Taxonomy, len(byID))
	for k, v := range byID {
		cp[k] = v
	}
	return &ImmutableMapTaxonomyResolver{byID: cp}
}

func (r *ImmutableMapTaxonomyResolver) ResolveTaxonomy(taxonomyID int16) (Taxonomy, bool) {
	t, ok := r.byID[taxonomyID]
	return t, ok
}

// emptyTaxonomyResolver is used by a Context constructed without an
// explicit resolver; every lookup misses, so no ordinal substitution
// happens (a no-op, not an error).
type emptyTaxonomyResolver struct{}

func (emptyTaxonomyResolver) ResolveTaxonomy(int16) (Taxonomy, bool) { return nil, false }

var _ TaxonomyResolver = emptyTaxonomyResolver{}
