package fudge

import (
	"io"
	"os"

	"github.com/opengamma/fudge-go/internal/mmapsrc"
	"github.com/opengamma/fudge-go/internal/wiretype"
	"github.com/opengamma/fudge-go/pkg/fudgetypes"
)

// Context is the facade tying together a wire type registry, a type
// dictionary, and a taxonomy resolver (spec.md §4.1), mirroring the
// teacher's top-level hive package: one configured entry point constructing
// readers, writers, and messages consistently rather than threading a
// registry and resolver through every call individually.
type Context struct {
	registry        *wiretype.Registry
	dict            *TypeDictionary
	resolver        TaxonomyResolver
	maxMessageDepth int
	diagnostics     bool
}

// NewContext builds a Context configured by opts. With no options, it uses
// the built-in wire type registry, no taxonomy resolution, and unlimited
// sub-message depth.
func NewContext(opts ...ContextOption) *Context {
	cfg := contextConfig{
		registry: wiretype.DefaultRegistry(),
		resolver: emptyTaxonomyResolver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Context{
		registry:        cfg.registry,
		dict:            NewTypeDictionary(cfg.registry),
		resolver:        cfg.resolver,
		maxMessageDepth: cfg.maxMessageDepth,
		diagnostics:     cfg.diagnostics,
	}
}

// Registry returns the Context's wire type registry.
func (c *Context) Registry() *wiretype.Registry { return c.registry }

// TypeDictionary returns the Context's type dictionary, for registering
// additional secondary types or inspecting primary mappings.
func (c *Context) TypeDictionary() *TypeDictionary { return c.dict }

// SizeCalculator returns a SizeCalculator bound to nothing in particular —
// the zero value is always valid, this is a convenience so callers don't
// need to know that.
func (c *Context) SizeCalculator() SizeCalculator { return SizeCalculator{} }

// NewMessage creates an empty StandardMessage bound to this Context's type
// dictionary.
func (c *Context) NewMessage() *StandardMessage { return NewMessage(c.dict) }

// NewReader builds a StreamReader over src using this Context's registry,
// taxonomy resolver, and configured max message depth, as overridden by
// opts.
func (c *Context) NewReader(src io.Reader, opts ...ReaderOption) *StreamReader {
	cfg := readerConfig{resolver: c.resolver}
	for _, opt := range opts {
		opt(&cfg)
	}
	if c.diagnostics {
		L.Debug("fudge: opening stream reader")
	}
	return NewStreamReader(src, c.registry, cfg.resolver, c.maxMessageDepth)
}

// NewWriter builds a StreamWriter over sink using this Context's type
// dictionary, as overridden by opts.
func (c *Context) NewWriter(sink Sink, opts ...WriterOption) *StreamWriter {
	cfg := writerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewStreamWriter(sink, c.dict, cfg.taxonomy)
}

// NewEncodedMessage wraps raw message-body bytes for lazy decoding using
// this Context's registry.
func (c *Context) NewEncodedMessage(raw []byte, taxonomy Taxonomy) *EncodedMessage {
	return NewEncodedMessage(raw, c.registry, taxonomy)
}

// NewFileWriter returns a StreamWriter over a FileSink targeting path. The
// returned FileSink must be closed after the envelope is fully written so
// its buffered bytes are committed to path atomically.
func (c *Context) NewFileWriter(path string, opts ...WriterOption) (*StreamWriter, *FileSink) {
	sink := NewFileSink(path)
	return c.NewWriter(sink, opts...), sink
}

// NewFileReader memory-maps path read-only and returns a StreamReader over
// its contents, for decoding large Fudge streams without copying the whole
// file into process memory first. The returned io.Closer must be closed
// (unmapping the file) once the reader is no longer needed; the StreamReader
// itself holds no file handle.
func (c *Context) NewFileReader(path string, opts ...ReaderOption) (*StreamReader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: open file for mapping", Err: err}
	}
	defer f.Close()

	m, err := mmapsrc.Open(f)
	if err != nil {
		return nil, nil, &fudgetypes.Error{Kind: fudgetypes.ErrKindIoFailure, Msg: "fudge: memory-map file", Err: err}
	}
	r := c.NewReader(m.Reader(), opts...)
	return r, m, nil
}
