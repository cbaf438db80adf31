package wiretype

import (
	"bytes"
	"testing"

	"github.com/opengamma/fudge-go/internal/wire"
)

func TestDefaultRegistryRoundTripsPrimitives(t *testing.T) {
	reg := DefaultRegistry()

	cases := []struct {
		id  byte
		val any
	}{
		{wire.TypeBoolean, true},
		{wire.TypeByte, byte(0x42)},
		{wire.TypeShort, int16(-7)},
		{wire.TypeInt, int32(-12345)},
		{wire.TypeLong, int64(-123456789012)},
		{wire.TypeFloat, float32(3.5)},
		{wire.TypeDouble, float64(2.718281828)},
		{wire.TypeShortArray, []int16{1, 2, -3}},
		{wire.TypeIntArray, []int32{1, 2, -3}},
		{wire.TypeLongArray, []int64{1, 2, -3}},
		{wire.TypeFloatArray, []float32{1.5, -2.5}},
		{wire.TypeDoubleArray, []float64{1.5, -2.5}},
		{wire.TypeByteArray, []byte{1, 2, 3}},
		{wire.TypeByteArray4, []byte{1, 2, 3, 4}},
		{wire.TypeString, "hello fudge"},
		{wire.TypeDate, FudgeDate{Year: 2024, Month: 1, Day: 31}},
		{wire.TypeTime, FudgeTime{MillisSinceMidnight: 3_600_000}},
		{wire.TypeDateTime, FudgeDateTime{Date: FudgeDate{2024, 1, 31}, Time: FudgeTime{1000}}},
	}

	for _, tc := range cases {
		wt := reg.Lookup(tc.id)
		if wt == nil {
			t.Fatalf("type id %d not registered", tc.id)
		}
		var buf bytes.Buffer
		if err := wt.Write(&buf, tc.val); err != nil {
			t.Fatalf("%s: Write: %v", wt.Name, err)
		}

		declared := wt.FixedSize()
		if declared < 0 {
			sz, err := wt.ValueSize(tc.val)
			if err != nil {
				t.Fatalf("%s: ValueSize: %v", wt.Name, err)
			}
			declared = sz
		}
		if buf.Len() != declared {
			t.Fatalf("%s: wrote %d bytes, declared size %d", wt.Name, buf.Len(), declared)
		}

		got, err := wt.Read(&buf, declared)
		if err != nil {
			t.Fatalf("%s: Read: %v", wt.Name, err)
		}

		switch want := tc.val.(type) {
		case []int16:
			if g := got.([]int16); !equalInt16(g, want) {
				t.Fatalf("%s: got %v want %v", wt.Name, g, want)
			}
		case []int32:
			if g := got.([]int32); !equalInt32(g, want) {
				t.Fatalf("%s: got %v want %v", wt.Name, g, want)
			}
		case []int64:
			if g := got.([]int64); !equalInt64(g, want) {
				t.Fatalf("%s: got %v want %v", wt.Name, g, want)
			}
		case []float32:
			if g := got.([]float32); !equalFloat32(g, want) {
				t.Fatalf("%s: got %v want %v", wt.Name, g, want)
			}
		case []float64:
			if g := got.([]float64); !equalFloat64(g, want) {
				t.Fatalf("%s: got %v want %v", wt.Name, g, want)
			}
		case []byte:
			if g := got.([]byte); !bytes.Equal(g, want) {
				t.Fatalf("%s: got %v want %v", wt.Name, g, want)
			}
		default:
			if got != tc.val {
				t.Fatalf("%s: got %v want %v", wt.Name, got, tc.val)
			}
		}
	}
}

func TestSubMessageTypeHasNoCodec(t *testing.T) {
	reg := DefaultRegistry()
	wt := reg.Lookup(wire.TypeSubMessage)
	if wt == nil {
		t.Fatalf("sub-message type not registered")
	}
	if wt.Read != nil || wt.Write != nil {
		t.Fatalf("sub-message type must defer codec to the stream layer")
	}
}

func equalInt16(a, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInt32(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInt64(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalFloat32(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalFloat64(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
