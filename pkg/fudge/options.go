package fudge

import "github.com/opengamma/fudge-go/internal/wiretype"

// contextConfig holds a Context's resolved configuration after every
// ContextOption has been applied.
type contextConfig struct {
	registry        *wiretype.Registry
	resolver        TaxonomyResolver
	maxMessageDepth int
	diagnostics     bool
}

// ContextOption configures a Context at construction, following the
// teacher's OpenOptions/OperationOptions convention of a struct mutated by
// small, named functions rather than a long positional constructor.
type ContextOption func(*contextConfig)

// WithRegistry overrides the default built-in wire type registry, e.g. to
// add a vendor extension type. Rarely needed.
func WithRegistry(r *wiretype.Registry) ContextOption {
	return func(c *contextConfig) { c.registry = r }
}

// WithTaxonomyResolver installs the TaxonomyResolver that readers built by
// the Context use to expand ordinal-only fields back to names. Writers do
// not consult it: a StreamWriter substitutes names with ordinals only under
// the taxonomy given by WithWriterTaxonomy.
func WithTaxonomyResolver(r TaxonomyResolver) ContextOption {
	return func(c *contextConfig) { c.resolver = r }
}

// WithMaxMessageDepth caps sub-message nesting a StreamReader will descend
// into before failing with a state-violation error, guarding against a
// maliciously or accidentally deep message exhausting the call stack. Zero
// (the default) means unlimited.
func WithMaxMessageDepth(depth int) ContextOption {
	return func(c *contextConfig) { c.maxMessageDepth = depth }
}

// WithDiagnostics enables the Context's Debug-level log entry when
// NewReader opens a stream reader. The StreamReader itself does not log:
// an unknown variable-width type id is surfaced as raw bytes without a log
// entry, and an unknown fixed-width type id is returned as an error.
func WithDiagnostics(enabled bool) ContextOption {
	return func(c *contextConfig) { c.diagnostics = enabled }
}

// readerConfig holds a StreamReader's per-call configuration, set via
// ReaderOption arguments to Context.NewReader.
type readerConfig struct {
	resolver TaxonomyResolver
}

// ReaderOption configures one StreamReader, overriding the owning Context's
// defaults for that call only.
type ReaderOption func(*readerConfig)

// WithReaderTaxonomyResolver overrides the resolver this one reader uses,
// independent of the Context it was created from.
func WithReaderTaxonomyResolver(r TaxonomyResolver) ReaderOption {
	return func(c *readerConfig) { c.resolver = r }
}

// writerConfig holds a StreamWriter's per-call configuration, set via
// WriterOption arguments to Context.NewWriter.
type writerConfig struct {
	taxonomy Taxonomy
}

// WriterOption configures one StreamWriter.
type WriterOption func(*writerConfig)

// WithWriterTaxonomy selects the taxonomy a StreamWriter substitutes field
// names with before emitting them (spec.md §4.4). Without this option, a
// writer emits every field's name (and ordinal, if the caller also supplied
// one) as given, performing no substitution.
func WithWriterTaxonomy(t Taxonomy) WriterOption {
	return func(c *writerConfig) { c.taxonomy = t }
}
