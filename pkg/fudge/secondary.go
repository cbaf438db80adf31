package fudge

import (
	"fmt"
	"reflect"
	"time"

	"github.com/opengamma/fudge-go/internal/wire"
	"github.com/opengamma/fudge-go/internal/wiretype"
)

// registerBuiltinSecondaryTypes wires the standard secondary-type adapters
// described in SPEC_FULL.md §4.3: a time.Time <-> FudgeDateTime bridge, and
// an unsigned/signed int aliasing pair, grounded on the teacher's
// FiletimeToTime conversion and its REG_DWORD/REG_DWORD_LE aliasing.
func registerBuiltinSecondaryTypes(d *TypeDictionary) {
	dateTimeType := d.registry.Lookup(wire.TypeDateTime)
	intType := d.registry.Lookup(wire.TypeInt)
	longType := d.registry.Lookup(wire.TypeLong)

	d.RegisterSecondary(&SecondaryType{
		GoType:  reflect.TypeOf(time.Time{}),
		Primary: dateTimeType,
		ToPrimary: func(v any) (any, error) {
			t := v.(time.Time).UTC()
			return wiretype.FudgeDateTime{
				Date: wiretype.FudgeDate{Year: int32(t.Year()), Month: int32(t.Month()), Day: int32(t.Day())},
				Time: wiretype.FudgeTime{MillisSinceMidnight: int32(t.Hour())*3600000 + int32(t.Minute())*60000 + int32(t.Second())*1000 + int32(t.Nanosecond()/1e6)},
			}, nil
		},
		FromPrimary: func(v any) (any, error) {
			dt := v.(wiretype.FudgeDateTime)
			ms := dt.Time.MillisSinceMidnight
			h := ms / 3600000
			ms %= 3600000
			m := ms / 60000
			ms %= 60000
			s := ms / 1000
			nsec := (ms % 1000) * 1_000_000
			return time.Date(int(dt.Date.Year), time.Month(dt.Date.Month), int(dt.Date.Day), int(h), int(m), int(s), int(nsec), time.UTC), nil
		},
	})

	d.RegisterSecondary(&SecondaryType{
		GoType:  reflect.TypeOf(uint32(0)),
		Primary: intType,
		ToPrimary: func(v any) (any, error) {
			return int32(v.(uint32)), nil
		},
		FromPrimary: func(v any) (any, error) {
			i := v.(int32)
			if i < 0 {
				return nil, fmt.Errorf("fudge: negative int %d has no unsigned representation", i)
			}
			return uint32(i), nil
		},
	})

	d.RegisterSecondary(&SecondaryType{
		GoType:  reflect.TypeOf(uint64(0)),
		Primary: longType,
		ToPrimary: func(v any) (any, error) {
			return int64(v.(uint64)), nil
		},
		FromPrimary: func(v any) (any, error) {
			i := v.(int64)
			if i < 0 {
				return nil, fmt.Errorf("fudge: negative long %d has no unsigned representation", i)
			}
			return uint64(i), nil
		},
	})
}
