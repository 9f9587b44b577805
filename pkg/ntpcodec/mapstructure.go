package ntpcodec

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/malbeclabs/ntptimestamp/pkg/ntp"
	"github.com/mitchellh/mapstructure"
)

var timestampType = reflect.TypeOf(ntp.Timestamp{})

// DecodeHook converts packed integers into ntp.Timestamp fields when decoding
// maps with mapstructure (and therefore viper). Strings may be decimal or
// 0x-prefixed hex.
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if to != timestampType || from == timestampType {
			return data, nil
		}
		raw, err := rawFromAny(data)
		if err != nil {
			return nil, err
		}
		return ntp.FromRaw(raw), nil
	}
}

func rawFromAny(data any) (uint64, error) {
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() < 0 {
			return 0, fmt.Errorf("negative timestamp %d: %w", v.Int(), ntp.ErrInvalidEncoding)
		}
		return uint64(v.Int()), nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f < 0 || f >= math.MaxUint64 || f != math.Trunc(f) {
			return 0, fmt.Errorf("timestamp %v is not an unsigned integer: %w", f, ntp.ErrInvalidEncoding)
		}
		return uint64(f), nil
	case reflect.String:
		raw, err := strconv.ParseUint(v.String(), 0, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse timestamp %q: %w", v.String(), ntp.ErrInvalidEncoding)
		}
		return raw, nil
	default:
		return 0, fmt.Errorf("unsupported timestamp type %T: %w", data, ntp.ErrInvalidEncoding)
	}
}
