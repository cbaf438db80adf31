package fudge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opengamma/fudge-go/internal/wire"
	"github.com/opengamma/fudge-go/pkg/fudgetypes"
)

func TestMessageAddInfersType(t *testing.T) {
	ctx := NewContext()
	msg := ctx.NewMessage()

	require.NoError(t, msg.Add(Str("a"), nil, int32(5)))
	require.Equal(t, 1, msg.NumFields())

	f, err := msg.GetByIndex(0)
	require.NoError(t, err)
	require.Equal(t, wire.TypeInt, f.Type.ID)
	require.Equal(t, int32(5), f.Value)
}

func TestMessageAddUnsupportedTypeFails(t *testing.T) {
	ctx := NewContext()
	msg := ctx.NewMessage()
	err := msg.Add(Str("bad"), nil, struct{ X int }{1})
	require.ErrorIs(t, err, fudgetypes.ErrUnknownClass)
}

func TestMessageGetByNameAndOrdinal(t *testing.T) {
	ctx := NewContext()
	msg := ctx.NewMessage()
	require.NoError(t, msg.Add(Str("x"), Ord(1), int32(10)))
	require.NoError(t, msg.Add(Str("x"), Ord(2), int32(20)))

	f, ok, err := msg.GetByName("x")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(10), f.Value, "GetByName returns the first match")

	f, ok, err = msg.GetByOrdinal(2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(20), f.Value)

	all, err := msg.GetAllByName("x")
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestMessageNameTooLong(t *testing.T) {
	ctx := NewContext()
	msg := ctx.NewMessage()
	longName := make([]byte, wire.MaxNameLength+1)
	for i := range longName {
		longName[i] = 'a'
	}
	err := msg.Add(Str(string(longName)), nil, int32(1))
	require.ErrorIs(t, err, fudgetypes.ErrNameTooLong)
}

func TestMessageAddSubMessageAndRemove(t *testing.T) {
	ctx := NewContext()
	msg := ctx.NewMessage()
	require.NoError(t, msg.Add(Str("top"), nil, int32(1)))

	child, err := msg.AddSubMessage(Str("nested"), nil)
	require.NoError(t, err)
	require.NoError(t, child.Add(Str("inner"), nil, "value"))
	require.Equal(t, 2, msg.NumFields())

	require.NoError(t, msg.Remove(Str("top"), nil))
	require.Equal(t, 1, msg.NumFields())

	msg.Clear()
	require.True(t, msg.IsEmpty())
}

func TestMessageEnsureSubMessage(t *testing.T) {
	ctx := NewContext()
	msg := ctx.NewMessage()

	child, err := msg.EnsureSubMessage(Str("nested"), nil)
	require.NoError(t, err)
	require.NoError(t, child.Add(Str("inner"), nil, int32(1)))
	require.Equal(t, 1, msg.NumFields())

	again, err := msg.EnsureSubMessage(Str("nested"), nil)
	require.NoError(t, err)
	require.Equal(t, 1, msg.NumFields(), "a second call must reuse the existing sub-message, not create another")
	f, err := again.GetByIndex(0)
	require.NoError(t, err)
	require.Equal(t, int32(1), f.Value, "reused sub-message retains its prior contents")

	require.NoError(t, msg.Add(Str("scalar"), nil, int32(9)))
	_, err = msg.EnsureSubMessage(Str("scalar"), nil)
	require.Error(t, err, "a scalar field can't be treated as a sub-message")
}

func TestMessageAddTypedBypassesInference(t *testing.T) {
	ctx := NewContext()
	msg := ctx.NewMessage()
	require.NoError(t, msg.AddTyped(Str("raw"), nil, wire.TypeIndicator, nil))

	f, err := msg.GetByIndex(0)
	require.NoError(t, err)
	require.Equal(t, wire.TypeIndicator, f.Type.ID)
}
