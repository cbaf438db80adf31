package fudge

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opengamma/fudge-go/internal/wire"
	"github.com/opengamma/fudge-go/pkg/fudgetypes"
)

func TestTypeDictionarySecondaryTimeRoundTrip(t *testing.T) {
	ctx := NewContext()
	dict := ctx.TypeDictionary()

	want := time.Date(2024, time.March, 15, 13, 45, 30, 250_000_000, time.UTC)
	primary, wt, err := dict.ToWireValue(want)
	require.NoError(t, err)
	require.Equal(t, wire.TypeDateTime, wt.ID)

	field := fudgetypes.NewField(nil, nil, wt, primary)
	back, err := dict.Convert(reflect.TypeOf(time.Time{}), field)
	require.NoError(t, err)
	require.True(t, want.Equal(back.(time.Time)))
}

func TestTypeDictionaryUnsignedAliasRejectsNegative(t *testing.T) {
	ctx := NewContext()
	dict := ctx.TypeDictionary()

	primary, wt, err := dict.ToWireValue(uint32(4294967295))
	require.NoError(t, err)
	require.Equal(t, int32(-1), primary, "uint32 max round-trips through int32's bit pattern")
	require.Equal(t, wire.TypeInt, wt.ID)

	negativeField := fudgetypes.NewField(nil, nil, dict.Registry().Lookup(wire.TypeInt), int32(-2))
	_, err = dict.Convert(reflect.TypeOf(uint32(0)), negativeField)
	require.Error(t, err, "a negative int32 has no uint32 representation")
}
