package wiretype

import (
	"io"
	"reflect"

	"github.com/opengamma/fudge-go/internal/wire"
)

// indicatorValue is the zero-sized tagged variant for the indicator type:
// its presence, not any payload, is the datum (spec.md §3, §4.8).
type indicatorValue struct{}

// Indicator is the single value every indicator-typed field carries.
var Indicator = indicatorValue{}

func readExact(r io.Reader, n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, wire.ErrTruncated
	}
	return buf, nil
}

func newIndicatorType() *WireType {
	return &WireType{
		ID: wire.TypeIndicator, Name: "indicator", FixedWidth: true, Size: 0,
		GoType: reflect.TypeOf(indicatorValue{}),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			return Indicator, nil
		},
		Write: func(w io.Writer, v any) error { return nil },
	}
}

func newBooleanType() *WireType {
	return &WireType{
		ID: wire.TypeBoolean, Name: "boolean", FixedWidth: true, Size: 1,
		GoType: reflect.TypeOf(false),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, 1)
			if err != nil {
				return nil, err
			}
			return b[0] != 0, nil
		},
		Write: func(w io.Writer, v any) error {
			b := byte(0)
			if v.(bool) {
				b = 1
			}
			_, err := w.Write([]byte{b})
			return err
		},
	}
}

func newByteType() *WireType {
	return &WireType{
		ID: wire.TypeByte, Name: "byte", FixedWidth: true, Size: 1,
		GoType: reflect.TypeOf(byte(0)),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, 1)
			if err != nil {
				return nil, err
			}
			return b[0], nil
		},
		Write: func(w io.Writer, v any) error {
			_, err := w.Write([]byte{v.(byte)})
			return err
		},
	}
}

func newShortType() *WireType {
	return &WireType{
		ID: wire.TypeShort, Name: "short", FixedWidth: true, Size: 2,
		GoType: reflect.TypeOf(int16(0)),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, 2)
			if err != nil {
				return nil, err
			}
			return wire.ReadI16(b, 0), nil
		},
		Write: func(w io.Writer, v any) error {
			b := make([]byte, 2)
			wire.PutI16(b, 0, v.(int16))
			_, err := w.Write(b)
			return err
		},
	}
}

func newIntType() *WireType {
	return &WireType{
		ID: wire.TypeInt, Name: "int", FixedWidth: true, Size: 4,
		GoType: reflect.TypeOf(int32(0)),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, 4)
			if err != nil {
				return nil, err
			}
			return wire.ReadI32(b, 0), nil
		},
		Write: func(w io.Writer, v any) error {
			b := make([]byte, 4)
			wire.PutI32(b, 0, v.(int32))
			_, err := w.Write(b)
			return err
		},
	}
}

func newLongType() *WireType {
	return &WireType{
		ID: wire.TypeLong, Name: "long", FixedWidth: true, Size: 8,
		GoType: reflect.TypeOf(int64(0)),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, 8)
			if err != nil {
				return nil, err
			}
			return wire.ReadI64(b, 0), nil
		},
		Write: func(w io.Writer, v any) error {
			b := make([]byte, 8)
			wire.PutI64(b, 0, v.(int64))
			_, err := w.Write(b)
			return err
		},
	}
}

func newFloatType() *WireType {
	return &WireType{
		ID: wire.TypeFloat, Name: "float", FixedWidth: true, Size: 4,
		GoType: reflect.TypeOf(float32(0)),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, 4)
			if err != nil {
				return nil, err
			}
			return wire.ReadF32(b, 0), nil
		},
		Write: func(w io.Writer, v any) error {
			b := make([]byte, 4)
			wire.PutF32(b, 0, v.(float32))
			_, err := w.Write(b)
			return err
		},
	}
}

func newDoubleType() *WireType {
	return &WireType{
		ID: wire.TypeDouble, Name: "double", FixedWidth: true, Size: 8,
		GoType: reflect.TypeOf(float64(0)),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, 8)
			if err != nil {
				return nil, err
			}
			return wire.ReadF64(b, 0), nil
		},
		Write: func(w io.Writer, v any) error {
			b := make([]byte, 8)
			wire.PutF64(b, 0, v.(float64))
			_, err := w.Write(b)
			return err
		},
	}
}
