// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is a type tag a Field accepts. JSON decoding produces a small set of
// Go types; kinds describe them in validation-error terms rather than Go terms.
type Kind string

const (
	String Kind = "string"
	Int    Kind = "int"
	Float  Kind = "float"
	Map    Kind = "map"
	List   Kind = "list"
)

var (
	ErrNoKinds     = errors.New("field must accept at least one kind")
	ErrRequired    = errors.New("field is required")
	ErrNotNullable = errors.New("null is not allowed")
)

// missing is the absent-sentinel: it marks "key not supplied", as opposed
// to "key supplied as null". The type is unexported so no decoded JSON value
// can ever collide with it.
type missing struct{}

// Missing is assigned by Schema.Instantiate when a declared field has no
// supplied value.
var Missing any = missing{}

// CheckFunc validates a value that already passed the kind and null checks.
type CheckFunc func(v any) error

// Field is an immutable validation template for one named slot in a schema.
// It holds no per-request state; Set returns the value to store instead of
// mutating the field.
type Field struct {
	kinds    []Kind
	required bool
	nullable bool
	check    CheckFunc
}

// NewField builds a field template. At least one kind must be given.
func NewField(kinds []Kind, required, nullable bool, check CheckFunc) (*Field, error) {
	if len(kinds) == 0 {
		return nil, ErrNoKinds
	}
	return &Field{
		kinds:    kinds,
		required: required,
		nullable: nullable,
		check:    check,
	}, nil
}

// Set validates a supplied value against the field's rules and returns the
// value to store. An absent value on an optional field is stored as nil.
func (f *Field) Set(v any) (any, error) {
	if _, absent := v.(missing); absent {
		if f.required {
			return nil, ErrRequired
		}
		return nil, nil
	}
	if v == nil {
		if !f.nullable {
			return nil, ErrNotNullable
		}
		return nil, nil
	}
	if !f.accepts(v) {
		return nil, fmt.Errorf("expected %s, got %s (%v)", kindList(f.kinds), describe(v), v)
	}
	if f.check != nil {
		if err := f.check(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (f *Field) accepts(v any) bool {
	for _, k := range f.kinds {
		if k.matches(v) {
			return true
		}
	}
	return false
}

func (k Kind) matches(v any) bool {
	switch k {
	case String:
		_, ok := v.(string)
		return ok
	case Int:
		_, ok := IntValue(v)
		return ok
	case Float:
		switch v.(type) {
		case float64, int, int64:
			return true
		}
		return false
	case Map:
		_, ok := v.(map[string]any)
		return ok
	case List:
		_, ok := v.([]any)
		return ok
	}
	return false
}

// IntValue reports whether v carries an integer value and returns it.
// JSON numbers decode as float64, so integral floats count.
func IntValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int(n), true
		}
	}
	return 0, false
}

// DecimalString renders a string or number value as its decimal string form.
func DecimalString(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int64, float64:
		return true
	}
	return false
}

func describe(v any) string {
	switch n := v.(type) {
	case string:
		return "string"
	case float64:
		if n == math.Trunc(n) {
			return "int"
		}
		return "float"
	case int, int64:
		return "int"
	case map[string]any:
		return "map"
	case []any:
		return "list"
	case bool:
		return "bool"
	}
	return fmt.Sprintf("%T", v)
}

func kindList(kinds []Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return "one of [" + strings.Join(parts, ", ") + "]"
}
