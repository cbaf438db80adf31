package wiretype

import (
	"io"
	"reflect"
	"unicode/utf8"

	"github.com/opengamma/fudge-go/internal/wire"
)

func newStringType() *WireType {
	return &WireType{
		ID: wire.TypeString, Name: "string", FixedWidth: false, Size: -1,
		GoType: reflect.TypeOf(""),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, declaredSize)
			if err != nil {
				return nil, err
			}
			return string(b), nil
		},
		Write: func(w io.Writer, v any) error {
			_, err := io.WriteString(w, v.(string))
			return err
		},
		ValueSize: func(v any) (int, error) { return len(v.(string)), nil },
	}
}

// FudgeDate is the primary value class for the date wire type: a plain
// calendar date with no timezone, packed into 4 bytes as YYYYMMDD.
type FudgeDate struct {
	Year  int32
	Month int32
	Day   int32
}

func dateToInt32(d FudgeDate) int32 { return d.Year*10000 + d.Month*100 + d.Day }

func int32ToDate(v int32) FudgeDate {
	day := v % 100
	v /= 100
	month := v % 100
	year := v / 100
	return FudgeDate{Year: year, Month: month, Day: day}
}

func newDateType() *WireType {
	return &WireType{
		ID: wire.TypeDate, Name: "date", FixedWidth: true, Size: 4,
		GoType: reflect.TypeOf(FudgeDate{}),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, 4)
			if err != nil {
				return nil, err
			}
			return int32ToDate(wire.ReadI32(b, 0)), nil
		},
		Write: func(w io.Writer, v any) error {
			b := make([]byte, 4)
			wire.PutI32(b, 0, dateToInt32(v.(FudgeDate)))
			_, err := w.Write(b)
			return err
		},
	}
}

// FudgeTime is the primary value class for the time wire type: a
// timezone-free time of day, packed into 4 bytes as milliseconds since
// midnight (0..86399999).
type FudgeTime struct {
	MillisSinceMidnight int32
}

func newTimeType() *WireType {
	return &WireType{
		ID: wire.TypeTime, Name: "time", FixedWidth: true, Size: 4,
		GoType: reflect.TypeOf(FudgeTime{}),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, 4)
			if err != nil {
				return nil, err
			}
			return FudgeTime{MillisSinceMidnight: wire.ReadI32(b, 0)}, nil
		},
		Write: func(w io.Writer, v any) error {
			b := make([]byte, 4)
			wire.PutI32(b, 0, v.(FudgeTime).MillisSinceMidnight)
			_, err := w.Write(b)
			return err
		},
	}
}

// FudgeDateTime is the primary value class for the datetime wire type: a
// FudgeDate followed by a FudgeTime, 8 bytes total.
type FudgeDateTime struct {
	Date FudgeDate
	Time FudgeTime
}

func newDateTimeType() *WireType {
	return &WireType{
		ID: wire.TypeDateTime, Name: "datetime", FixedWidth: true, Size: 8,
		GoType: reflect.TypeOf(FudgeDateTime{}),
		Read: func(r io.Reader, declaredSize int) (any, error) {
			b, err := readExact(r, 8)
			if err != nil {
				return nil, err
			}
			return FudgeDateTime{
				Date: int32ToDate(wire.ReadI32(b, 0)),
				Time: FudgeTime{MillisSinceMidnight: wire.ReadI32(b, 4)},
			}, nil
		},
		Write: func(w io.Writer, v any) error {
			dt := v.(FudgeDateTime)
			b := make([]byte, 8)
			wire.PutI32(b, 0, dateToInt32(dt.Date))
			wire.PutI32(b, 4, dt.Time.MillisSinceMidnight)
			_, err := w.Write(b)
			return err
		},
	}
}

// ValidUTF8 reports whether b decodes as valid UTF-8; used to validate field
// names before they are added to a message.
func ValidUTF8(b []byte) bool { return utf8.Valid(b) }
