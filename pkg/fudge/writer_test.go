package fudge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opengamma/fudge-go/internal/wire"
	"github.com/opengamma/fudge-go/pkg/fudgetypes"
)

func TestWriterRejectsFieldBeforeEnvelope(t *testing.T) {
	ctx := NewContext()
	var buf bytes.Buffer
	w := ctx.NewWriter(&buf)

	intType := ctx.Registry().Lookup(wire.TypeInt)
	err := w.WriteField(Str("x"), nil, intType, int32(1))
	require.ErrorIs(t, err, fudgetypes.ErrWriterNotInEnvelope)
}

func TestWriterRejectsFieldExceedingBudget(t *testing.T) {
	ctx := NewContext()
	var buf bytes.Buffer
	w := ctx.NewWriter(&buf)

	require.NoError(t, w.WriteEnvelopeHeader(0, 0, 0, wire.EnvelopeHeaderSize+4))

	intType := ctx.Registry().Lookup(wire.TypeInt)
	err := w.WriteField(Str("toolong"), nil, intType, int32(1))
	require.ErrorIs(t, err, fudgetypes.ErrBudgetExceeded)
}

func TestWriterCompletesAtExactBudget(t *testing.T) {
	ctx := NewContext()
	var buf bytes.Buffer
	w := ctx.NewWriter(&buf)

	intType := ctx.Registry().Lookup(wire.TypeInt)
	sc := ctx.SizeCalculator()
	fieldSize, err := sc.CalculateFieldSize(nil, nil, nil, intType, int32(99))
	require.NoError(t, err)

	require.NoError(t, w.WriteEnvelopeHeader(0, 0, 0, wire.EnvelopeHeaderSize+fieldSize))
	require.NoError(t, w.WriteField(nil, nil, intType, int32(99)))
	require.True(t, w.Done())

	err = w.WriteField(nil, nil, intType, int32(1))
	require.ErrorIs(t, err, fudgetypes.ErrWriterDone)
}
