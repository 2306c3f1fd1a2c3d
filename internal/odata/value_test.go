package odata

import (
	"testing"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{name: "single quoted string", raw: "'John'", want: "John"},
		{name: "double quoted string", raw: `"John"`, want: "John"},
		{name: "quoted number stays string", raw: "'42'", want: "42"},
		{name: "inner quotes kept", raw: `'O''Brien'`, want: "O''Brien"},
		{name: "true", raw: "true", want: true},
		{name: "false", raw: "false", want: false},
		{name: "case sensitive booleans", raw: "True", want: "True"},
		{name: "null", raw: "null", want: nil},
		{name: "integer", raw: "42", want: int64(42)},
		{name: "negative integer", raw: "-7", want: int64(-7)},
		{name: "decimal", raw: "3.14", want: 3.14},
		{name: "negative decimal", raw: "-0.5", want: -0.5},
		{name: "not a number", raw: "42abc", want: "42abc"},
		{name: "exponent is not a plain literal", raw: "1e3", want: "1e3"},
		{name: "infinity is not a number", raw: "Inf", want: "Inf"},
		{name: "bare word", raw: "John", want: "John"},
		{name: "empty", raw: "", want: ""},
		{name: "lone quote", raw: "'", want: "'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coerce(tt.raw)
			if got != tt.want {
				t.Errorf("Coerce(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}
