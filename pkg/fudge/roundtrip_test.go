package fudge

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/opengamma/fudge-go/internal/wire"
)

// encodeEnvelope builds an envelope around msg's fields and returns its
// exact bytes, using the SizeCalculator to pre-compute the header's
// totalSize the way a real caller must.
func encodeEnvelope(t *testing.T, ctx *Context, msg *StandardMessage, taxonomy Taxonomy) []byte {
	t.Helper()
	sc := ctx.SizeCalculator()
	totalSize, err := sc.CalculateEnvelopeSize(taxonomy, msg)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := ctx.NewWriter(&buf, WithWriterTaxonomy(taxonomy))
	require.NoError(t, w.WriteEnvelopeHeader(0, 0, 0, totalSize))
	require.NoError(t, w.WriteMessage(msg))
	require.Equal(t, totalSize, buf.Len(), "encoded length must match the pre-computed size exactly")
	return buf.Bytes()
}

func TestRoundTripFlatMessage(t *testing.T) {
	ctx := NewContext()
	msg := ctx.NewMessage()

	require.NoError(t, msg.Add(Str("name"), nil, "hello fudge"))
	require.NoError(t, msg.Add(Str("count"), nil, int32(42)))
	require.NoError(t, msg.Add(nil, Ord(7), true))
	require.NoError(t, msg.Add(Str("ratio"), nil, 3.5))

	encoded := encodeEnvelope(t, ctx, msg, nil)

	r := ctx.NewReader(bytes.NewReader(encoded))
	el, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, MessageEnvelope, el.Kind)

	var got []Field
	for {
		el, err := r.Next()
		if err != nil {
			break
		}
		require.Equal(t, SimpleField, el.Kind)
		got = append(got, NewField(el.Name, el.Ordinal, el.Type, el.Value))
	}

	want, err := msg.Fields()
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		require.True(t, want[i].Equal(got[i]), "field %d mismatch: want %+v got %+v", i, want[i], got[i])
	}
}

func TestRoundTripSubMessage(t *testing.T) {
	ctx := NewContext()
	msg := ctx.NewMessage()
	require.NoError(t, msg.Add(Str("id"), nil, int64(1001)))

	child, err := msg.AddSubMessage(Str("address"), nil)
	require.NoError(t, err)
	require.NoError(t, child.Add(Str("city"), nil, "London"))
	require.NoError(t, child.Add(Str("zip"), nil, int32(10001)))

	encoded := encodeEnvelope(t, ctx, msg, nil)

	r := ctx.NewReader(bytes.NewReader(encoded))
	_, err = r.Next() // envelope
	require.NoError(t, err)

	el, err := r.Next() // id
	require.NoError(t, err)
	require.Equal(t, SimpleField, el.Kind)
	require.Equal(t, int64(1001), el.Value)

	el, err = r.Next() // address (sub-message start)
	require.NoError(t, err)
	require.Equal(t, SubMessageFieldStart, el.Kind)
	require.Equal(t, "address", *el.Name)

	var cityVal, zipVal any
	for {
		el, err = r.Next()
		require.NoError(t, err)
		if el.Kind == SubMessageFieldEnd {
			break
		}
		switch *el.Name {
		case "city":
			cityVal = el.Value
		case "zip":
			zipVal = el.Value
		}
	}
	require.Equal(t, "London", cityVal)
	require.Equal(t, int32(10001), zipVal)
}

func TestRoundTripTaxonomySubstitution(t *testing.T) {
	ctx := NewContext()
	taxonomy := NewMapTaxonomy(map[string]int16{"speed": 5})

	msg := ctx.NewMessage()
	require.NoError(t, msg.Add(Str("speed"), nil, int32(88)))

	encoded := encodeEnvelope(t, ctx, msg, taxonomy)

	resolver := NewTaxonomyResolver(map[int16]Taxonomy{0: taxonomy})
	r := NewStreamReader(bytes.NewReader(encoded), ctx.Registry(), resolver, 0)
	_, err := r.Next()
	require.NoError(t, err)

	el, err := r.Next()
	require.NoError(t, err)
	require.NotNil(t, el.Ordinal)
	require.Equal(t, int16(5), *el.Ordinal)
	require.NotNil(t, el.Name, "reader must expand the ordinal back to a name via the taxonomy")
	require.Equal(t, "speed", *el.Name)
}

func TestEncodedMessageMatchesStandardMessage(t *testing.T) {
	ctx := NewContext()
	msg := ctx.NewMessage()
	require.NoError(t, msg.Add(Str("a"), nil, int32(1)))
	require.NoError(t, msg.Add(Str("b"), nil, []byte{1, 2, 3}))

	sc := ctx.SizeCalculator()
	bodySize, err := sc.CalculateMessageSize(nil, msg)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := ctx.NewWriter(&buf)
	require.NoError(t, w.WriteEnvelopeHeader(0, 0, 0, bodySize+wire.EnvelopeHeaderSize))
	require.NoError(t, w.WriteMessage(msg))

	body := buf.Bytes()[wire.EnvelopeHeaderSize:]
	em := ctx.NewEncodedMessage(body, nil)

	want, err := msg.Fields()
	require.NoError(t, err)
	got, err := em.Fields()
	require.NoError(t, err)

	require.Len(t, got, len(want))
	for i := range want {
		if diff := cmp.Diff(want[i].Value, got[i].Value); diff != "" {
			t.Errorf("field %d value mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestEncodedMessageWrapsSubMessageLazily(t *testing.T) {
	ctx := NewContext()
	msg := ctx.NewMessage()
	require.NoError(t, msg.Add(Str("id"), nil, int64(1001)))

	child, err := msg.AddSubMessage(Str("address"), nil)
	require.NoError(t, err)
	require.NoError(t, child.Add(Str("city"), nil, "London"))

	require.NoError(t, msg.Add(Str("after"), nil, int32(2)))

	body := encodeEnvelope(t, ctx, msg, nil)[wire.EnvelopeHeaderSize:]
	em := ctx.NewEncodedMessage(body, nil)

	// GetByName("id") must stop after the first field, never touching the
	// nested sub-message's bytes.
	f, ok, err := em.GetByName("id")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1001), f.Value)

	addr, ok, err := em.GetByName("address")
	require.NoError(t, err)
	require.True(t, ok)
	sub, ok := addr.Value.(*EncodedMessage)
	require.True(t, ok, "a sub-message field must be wrapped as its own lazy EncodedMessage, not decoded inline")

	cityField, ok, err := sub.GetByName("city")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "London", cityField.Value)
}
