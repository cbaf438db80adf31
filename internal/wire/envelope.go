package wire

// EnvelopeHeader is the decomposed form of a Fudge envelope's 8-byte header.
type EnvelopeHeader struct {
	ProcessingDirectives byte
	SchemaVersion        byte
	TaxonomyID           int16
	TotalSize            int32
}

// PutEnvelopeHeader encodes h into the first EnvelopeHeaderSize bytes of b.
func PutEnvelopeHeader(b []byte, h EnvelopeHeader) {
	b[0] = h.ProcessingDirectives
	b[1] = h.SchemaVersion
	PutI16(b, 2, h.TaxonomyID)
	PutI32(b, 4, h.TotalSize)
}

// ReadEnvelopeHeader decodes the first EnvelopeHeaderSize bytes of b.
func ReadEnvelopeHeader(b []byte) (EnvelopeHeader, error) {
	if len(b) < EnvelopeHeaderSize {
		return EnvelopeHeader{}, ErrTruncated
	}
	return EnvelopeHeader{
		ProcessingDirectives: b[0],
		SchemaVersion:        b[1],
		TaxonomyID:           ReadI16(b, 2),
		TotalSize:            ReadI32(b, 4),
	}, nil
}
