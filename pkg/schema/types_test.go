package schema

import (
	"testing"
)

func TestStringType(t *testing.T) {
	typ := String()

	if typ.Name() != "string" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "string")
	}

	tests := []struct {
		value   any
		wantErr bool
	}{
		{"hello", false},
		{"", false},
		{float64(42), true},
		{true, true},
		{nil, true},
		{map[string]any{}, true},
	}

	for _, tt := range tests {
		err := typ.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestObjectType(t *testing.T) {
	typ := Object()

	if err := typ.Validate(map[string]any{"id": "x"}); err != nil {
		t.Errorf("Validate(object) error = %v", err)
	}
	if err := typ.Validate([]any{}); err == nil {
		t.Error("Validate(array) should fail")
	}
	if err := typ.Validate("x"); err == nil {
		t.Error("Validate(string) should fail")
	}
}

func TestSliceType(t *testing.T) {
	typ := Slice(Object())

	if typ.Name() != "[object]" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "[object]")
	}

	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"Empty", []any{}, false},
		{"Objects", []any{map[string]any{}, map[string]any{"a": "b"}}, false},
		{"Mixed", []any{map[string]any{}, "oops"}, true},
		{"Not Array", map[string]any{}, true},
		{"Null", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := typ.Validate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionalType(t *testing.T) {
	typ := Optional(String())

	if typ.Name() != "string?" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "string?")
	}
	if err := typ.Validate(nil); err != nil {
		t.Errorf("null should be accepted, got %v", err)
	}
	if err := typ.Validate("x"); err != nil {
		t.Errorf("string should be accepted, got %v", err)
	}
	if err := typ.Validate(float64(1)); err == nil {
		t.Error("number should be rejected")
	}
	if !IsOptional(typ) || IsOptional(String()) {
		t.Error("IsOptional misreports")
	}
}
