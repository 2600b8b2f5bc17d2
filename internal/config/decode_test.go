package config

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScalarHook checks range and type enforcement for each target kind.
func TestScalarHook(t *testing.T) {
	t.Parallel()

	int32T := reflect.TypeOf(int32(0))
	int64T := reflect.TypeOf(int64(0))
	uint64T := reflect.TypeOf(uint64(0))
	float32T := reflect.TypeOf(float32(0))
	boolT := reflect.TypeOf(false)
	stringT := reflect.TypeOf("")

	tests := []struct {
		name    string
		to      reflect.Type
		data    any
		want    any
		wantErr bool
	}{
		{name: "int fits int32", to: int32T, data: int64(12345), want: int64(12345)},
		{name: "int overflows int32", to: int32T, data: int64(4294967297), wantErr: true},
		{name: "negative int32 lower bound", to: int32T, data: int64(-2147483648), want: int64(-2147483648)},
		{name: "below int32", to: int32T, data: int64(-2147483649), wantErr: true},
		{name: "string int", to: int64T, data: "42", want: int64(42)},
		{name: "string not a number", to: int64T, data: "abc", wantErr: true},
		{name: "json number beyond float precision", to: int64T, data: json.Number("9007199254740993"), want: int64(9007199254740993)},
		{name: "integral float", to: int64T, data: float64(7), want: int64(7)},
		{name: "fractional float", to: int64T, data: 7.5, wantErr: true},
		{name: "uint from int", to: uint64T, data: int64(25), want: uint64(25)},
		{name: "negative to uint", to: uint64T, data: int64(-1), wantErr: true},
		{name: "negative string to uint", to: uint64T, data: "-5", wantErr: true},
		{name: "float from string", to: float32T, data: "0.5", want: 0.5},
		{name: "float from json number", to: float32T, data: json.Number("1.5"), want: 1.5},
		{name: "float passthrough", to: float32T, data: 1.5, want: 1.5},
		{name: "bool from string", to: boolT, data: "true", want: true},
		{name: "bool from bad string", to: boolT, data: "maybe", wantErr: true},
		{name: "string target untouched", to: stringT, data: int64(1), want: int64(1)},
		{name: "non numeric input left alone", to: int64T, data: []any{1}, want: []any{1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := scalarHook(reflect.TypeOf(tt.data), tt.to, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
