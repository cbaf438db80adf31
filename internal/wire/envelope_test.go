package wire

import "testing"

func TestEnvelopeHeaderRoundTrip(t *testing.T) {
	h := EnvelopeHeader{ProcessingDirectives: 0x01, SchemaVersion: 7, TaxonomyID: -5, TotalSize: 14}
	buf := make([]byte, EnvelopeHeaderSize)
	PutEnvelopeHeader(buf, h)

	got, err := ReadEnvelopeHeader(buf)
	if err != nil {
		t.Fatalf("ReadEnvelopeHeader: %v", err)
	}
	if got != h {
		t.Fatalf("got %+v want %+v", got, h)
	}
}

func TestEnvelopeHeaderTruncated(t *testing.T) {
	if _, err := ReadEnvelopeHeader(make([]byte, 4)); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
