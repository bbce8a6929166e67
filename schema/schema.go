// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFields rejects schema definitions without any declared field.
var ErrNoFields = errors.New("schema must declare at least one field")

// NamedField pairs a field name with its validation template.
type NamedField struct {
	Name  string
	Field *Field
}

// CrossCheck validates relationships between already-validated field values.
// It runs only when every individual field passed.
type CrossCheck func(values Values) error

// Schema is a fixed, ordered table of named fields plus an optional
// cross-field rule. Schemas are defined once at startup and never mutated;
// each request gets its own Values via Instantiate.
type Schema struct {
	name   string
	fields []NamedField
	cross  CrossCheck
}

// New defines a schema. The field table must be non-empty.
func New(name string, fields []NamedField, cross CrossCheck) (*Schema, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	return &Schema{name: name, fields: fields, cross: cross}, nil
}

// MustNew is New for package-level schema definitions.
func MustNew(name string, fields []NamedField, cross CrossCheck) *Schema {
	s, err := New(name, fields, cross)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema's declared name.
func (s *Schema) Name() string { return s.name }

// Values holds the validated field values of one schema instance.
// Absent and null fields are present with a nil value.
type Values map[string]any

// StringOr returns the named value if it is a non-null string, else fallback.
func (v Values) StringOr(name, fallback string) string {
	if s, ok := v[name].(string); ok {
		return s
	}
	return fallback
}

// FieldError reports one invalid field by name.
type FieldError struct {
	Name    string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("Invalid '%s' field: %s", e.Name, e.Message)
}

// SchemaError aggregates every invalid field of one instantiation. Callers
// can recover all failures from a single error, not just the first.
type SchemaError struct {
	Fields []*FieldError
}

func (e *SchemaError) Error() string {
	lines := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		lines[i] = fe.Error()
	}
	return strings.Join(lines, "\n")
}

// Instantiate validates the supplied values against the schema, walking the
// field table in declared order. Per-field failures are collected rather than
// short-circuited; the cross-field rule runs only on a fully valid instance.
func (s *Schema) Instantiate(supplied map[string]any) (Values, error) {
	values := make(Values, len(s.fields))
	var invalid []*FieldError
	for _, nf := range s.fields {
		v, ok := supplied[nf.Name]
		if !ok {
			v = Missing
		}
		stored, err := nf.Field.Set(v)
		if err != nil {
			invalid = append(invalid, &FieldError{Name: nf.Name, Message: err.Error()})
			continue
		}
		values[nf.Name] = stored
	}
	if len(invalid) > 0 {
		return nil, &SchemaError{Fields: invalid}
	}
	if s.cross != nil {
		if err := s.cross(values); err != nil {
			return nil, err
		}
	}
	return values, nil
}
