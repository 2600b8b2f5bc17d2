package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// strictDecoding turns off mapstructure's weak typing, so a negative value no
// longer wraps into an unsigned field and a number no longer becomes a string.
// Env values still arrive as strings; scalarHook parses them into the target
// type with range checks.
func strictDecoding() viper.DecoderConfigOption {
	return func(c *mapstructure.DecoderConfig) {
		c.WeaklyTypedInput = false
		c.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.DecodeHookFuncType(scalarHook),
		)
	}
}

// scalarHook converts numeric and string inputs to integer, float and bool
// targets. It fails when the value does not fit the target type.
func scalarHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok, err := toInt64(data)
		if !ok || err != nil {
			return data, err
		}
		if reflect.Zero(to).OverflowInt(n) {
			return nil, fmt.Errorf("%d overflows %s", n, to)
		}
		return n, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok, err := toUint64(data)
		if !ok || err != nil {
			return data, err
		}
		if reflect.Zero(to).OverflowUint(n) {
			return nil, fmt.Errorf("%d overflows %s", n, to)
		}
		return n, nil

	case reflect.Float32, reflect.Float64:
		rv := reflect.ValueOf(data)
		if rv.Kind() != reflect.String {
			return data, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), to.Bits())
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as %s: %w", rv.String(), to, err)
		}
		return f, nil

	case reflect.Bool:
		rv := reflect.ValueOf(data)
		if rv.Kind() != reflect.String {
			return data, nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(rv.String()))
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as bool: %w", rv.String(), err)
		}
		return b, nil
	}

	return data, nil
}

// toInt64 reports ok=false for inputs that are not numbers or numeric strings,
// leaving them for mapstructure to reject.
func toInt64(data any) (int64, bool, error) {
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, true, fmt.Errorf("%d overflows int64", u)
		}
		return int64(u), true, nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, true, fmt.Errorf("%v is not an integer", f)
		}
		return int64(f), true, nil
	case reflect.String:
		// Covers env values and json.Number.
		n, err := strconv.ParseInt(strings.TrimSpace(rv.String()), 10, 64)
		if err != nil {
			return 0, true, fmt.Errorf("cannot parse %q as integer: %w", rv.String(), err)
		}
		return n, true, nil
	default:
		return 0, false, nil
	}
}

func toUint64(data any) (uint64, bool, error) {
	rv := reflect.ValueOf(data)
	if k := rv.Kind(); k >= reflect.Uint && k <= reflect.Uint64 {
		return rv.Uint(), true, nil
	}

	n, ok, err := toInt64(data)
	if !ok || err != nil {
		return 0, ok, err
	}
	if n < 0 {
		return 0, true, fmt.Errorf("%d is negative", n)
	}
	return uint64(n), true, nil
}

// readJSON loads a JSON source into v keeping numbers as json.Number, so
// 64-bit ids above 2^53 survive decoding.
func readJSON(v *viper.Viper, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return fmt.Errorf("failed to parse json: %w", err)
	}
	return v.MergeConfigMap(data)
}
