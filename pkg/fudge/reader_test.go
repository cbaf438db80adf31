package fudge

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opengamma/fudge-go/internal/wire"
	"github.com/opengamma/fudge-go/pkg/fudgetypes"
)

func TestReaderTruncatedHeader(t *testing.T) {
	ctx := NewContext()
	r := ctx.NewReader(bytes.NewReader([]byte{1, 2, 3}))
	_, err := r.Next()
	require.Error(t, err)
	var fe *fudgetypes.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fudgetypes.ErrKindIoFailure, fe.Kind)
}

func TestReaderUnknownTypeID(t *testing.T) {
	ctx := NewContext()
	var buf bytes.Buffer

	hdr := wire.EnvelopeHeader{TotalSize: int32(wire.EnvelopeHeaderSize + 2)}
	hb := make([]byte, wire.EnvelopeHeaderSize)
	wire.PutEnvelopeHeader(hb, hdr)
	buf.Write(hb)
	buf.Write([]byte{0x80, 0xFE}) // fixed-width prefix with no ordinal/name, bogus type id 0xFE

	r := ctx.NewReader(&buf)
	_, err := r.Next() // envelope
	require.NoError(t, err)

	_, err = r.Next()
	require.ErrorIs(t, err, fudgetypes.ErrUnknownFixedType)
}

func TestReaderUnknownVariableWidthTypeIDSurfacesRawBytes(t *testing.T) {
	ctx := NewContext()
	var buf bytes.Buffer

	payload := []byte{0x11, 0x22, 0x33}
	prefixByte, err := wire.ComposeFieldPrefix(false, len(payload), false, false)
	require.NoError(t, err)

	hdr := wire.EnvelopeHeader{TotalSize: int32(wire.EnvelopeHeaderSize + 2 + 1 + len(payload))}
	hb := make([]byte, wire.EnvelopeHeaderSize)
	wire.PutEnvelopeHeader(hb, hdr)
	buf.Write(hb)
	buf.Write([]byte{prefixByte, 0xFE}) // bogus variable-width type id 0xFE
	buf.WriteByte(byte(len(payload)))   // 1-byte size code
	buf.Write(payload)

	r := ctx.NewReader(&buf)
	_, err = r.Next() // envelope
	require.NoError(t, err)

	el, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, SimpleField, el.Kind)
	require.Equal(t, byte(0xFE), el.Type.ID)
	require.Equal(t, payload, el.Value)

	_, err = r.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestReaderSkipMessageField(t *testing.T) {
	ctx := NewContext()
	msg := ctx.NewMessage()
	require.NoError(t, msg.Add(Str("keep"), nil, int32(1)))
	child, err := msg.AddSubMessage(Str("skip"), nil)
	require.NoError(t, err)
	require.NoError(t, child.Add(Str("inner"), nil, "irrelevant"))
	require.NoError(t, msg.Add(Str("after"), nil, int32(2)))

	sc := ctx.SizeCalculator()
	bodySize, err := sc.CalculateMessageSize(nil, msg)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := ctx.NewWriter(&buf)
	require.NoError(t, w.WriteEnvelopeHeader(0, 0, 0, bodySize+wire.EnvelopeHeaderSize))
	require.NoError(t, w.WriteMessage(msg))

	r := ctx.NewReader(bytes.NewReader(buf.Bytes()))
	_, err = r.Next() // envelope
	require.NoError(t, err)

	el, err := r.Next() // keep
	require.NoError(t, err)
	require.Equal(t, "keep", *el.Name)

	el, err = r.Next() // skip (sub-message start)
	require.NoError(t, err)
	require.Equal(t, SubMessageFieldStart, el.Kind)
	_, err = r.SkipMessageField()
	require.NoError(t, err)

	el, err = r.Next() // after
	require.NoError(t, err)
	require.Equal(t, "after", *el.Name)
	require.Equal(t, int32(2), el.Value)

	_, err = r.Next()
	require.ErrorIs(t, err, io.EOF)
}
