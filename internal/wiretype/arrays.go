package wiretype

import (
	"fmt"
	"io"
	"reflect"

	"github.com/opengamma/fudge-go/internal/wire"
)

// Primitive arrays are variable-width: their wire payload is a flat,
// tightly-packed run of fixed-width elements with no per-element framing,
// so ValueSize is simply len(v)*elementWidth.

func newShortArrayType() *WireType {
	const elemSize = 2
	return &WireType{
		ID: wire.TypeShortArray, Name: "short[]", FixedWidth: false, Size: -1,
		GoType: reflect.TypeOf([]int16{}),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, declaredSize)
			if err != nil {
				return nil, err
			}
			n := len(b) / elemSize
			out := make([]int16, n)
			for i := range out {
				out[i] = wire.ReadI16(b, i*elemSize)
			}
			return out, nil
		},
		Write: func(w io.Writer, v any) error {
			arr := v.([]int16)
			b := make([]byte, len(arr)*elemSize)
			for i, x := range arr {
				wire.PutI16(b, i*elemSize, x)
			}
			_, err := w.Write(b)
			return err
		},
		ValueSize: func(v any) (int, error) { return len(v.([]int16)) * elemSize, nil },
	}
}

func newIntArrayType() *WireType {
	const elemSize = 4
	return &WireType{
		ID: wire.TypeIntArray, Name: "int[]", FixedWidth: false, Size: -1,
		GoType: reflect.TypeOf([]int32{}),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, declaredSize)
			if err != nil {
				return nil, err
			}
			n := len(b) / elemSize
			out := make([]int32, n)
			for i := range out {
				out[i] = wire.ReadI32(b, i*elemSize)
			}
			return out, nil
		},
		Write: func(w io.Writer, v any) error {
			arr := v.([]int32)
			b := make([]byte, len(arr)*elemSize)
			for i, x := range arr {
				wire.PutI32(b, i*elemSize, x)
			}
			_, err := w.Write(b)
			return err
		},
		ValueSize: func(v any) (int, error) { return len(v.([]int32)) * elemSize, nil },
	}
}

func newLongArrayType() *WireType {
	const elemSize = 8
	return &WireType{
		ID: wire.TypeLongArray, Name: "long[]", FixedWidth: false, Size: -1,
		GoType: reflect.TypeOf([]int64{}),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, declaredSize)
			if err != nil {
				return nil, err
			}
			n := len(b) / elemSize
			out := make([]int64, n)
			for i := range out {
				out[i] = wire.ReadI64(b, i*elemSize)
			}
			return out, nil
		},
		Write: func(w io.Writer, v any) error {
			arr := v.([]int64)
			b := make([]byte, len(arr)*elemSize)
			for i, x := range arr {
				wire.PutI64(b, i*elemSize, x)
			}
			_, err := w.Write(b)
			return err
		},
		ValueSize: func(v any) (int, error) { return len(v.([]int64)) * elemSize, nil },
	}
}

func newFloatArrayType() *WireType {
	const elemSize = 4
	return &WireType{
		ID: wire.TypeFloatArray, Name: "float[]", FixedWidth: false, Size: -1,
		GoType: reflect.TypeOf([]float32{}),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, declaredSize)
			if err != nil {
				return nil, err
			}
			n := len(b) / elemSize
			out := make([]float32, n)
			for i := range out {
				out[i] = wire.ReadF32(b, i*elemSize)
			}
			return out, nil
		},
		Write: func(w io.Writer, v any) error {
			arr := v.([]float32)
			b := make([]byte, len(arr)*elemSize)
			for i, x := range arr {
				wire.PutF32(b, i*elemSize, x)
			}
			_, err := w.Write(b)
			return err
		},
		ValueSize: func(v any) (int, error) { return len(v.([]float32)) * elemSize, nil },
	}
}

func newDoubleArrayType() *WireType {
	const elemSize = 8
	return &WireType{
		ID: wire.TypeDoubleArray, Name: "double[]", FixedWidth: false, Size: -1,
		GoType: reflect.TypeOf([]float64{}),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, declaredSize)
			if err != nil {
				return nil, err
			}
			n := len(b) / elemSize
			out := make([]float64, n)
			for i := range out {
				out[i] = wire.ReadF64(b, i*elemSize)
			}
			return out, nil
		},
		Write: func(w io.Writer, v any) error {
			arr := v.([]float64)
			b := make([]byte, len(arr)*elemSize)
			for i, x := range arr {
				wire.PutF64(b, i*elemSize, x)
			}
			_, err := w.Write(b)
			return err
		},
		ValueSize: func(v any) (int, error) { return len(v.([]float64)) * elemSize, nil },
	}
}

func newByteArrayType() *WireType {
	return &WireType{
		ID: wire.TypeByteArray, Name: "byte[]", FixedWidth: false, Size: -1,
		GoType: reflect.TypeOf([]byte{}),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, declaredSize)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
		Write: func(w io.Writer, v any) error {
			_, err := w.Write(v.([]byte))
			return err
		},
		ValueSize: func(v any) (int, error) { return len(v.([]byte)), nil },
	}
}

// newFixedByteArrayType builds one of the canonical fixed-width byte array
// types (ids 14-22, widths 4/8/16/20/32/64/128/256/512). These never carry
// a length prefix on the wire.
func newFixedByteArrayType(id byte, size int) *WireType {
	return &WireType{
		ID: id, Name: fmt.Sprintf("byte[%d]", size), FixedWidth: true, Size: size,
		GoType: reflect.TypeOf([]byte{}), NoAutoInfer: true,
		Read: func(r io.Reader, declaredSize int) (any, error) {
			return readExact(r, size)
		},
		Write: func(w io.Writer, v any) error {
			b := v.([]byte)
			if len(b) != size {
				return fmt.Errorf("wiretype: byte[%d] value has length %d", size, len(b))
			}
			_, err := w.Write(b)
			return err
		},
	}
}
