package dsl

import (
	kata "github.com/katakit/kata"
	js "github.com/katakit/kata/jsonschema"
)

// String returns the schema for plain strings.
func String() kata.Schema[string, string] { return stringSchema{} }

// Number returns the schema for float64 numbers, the shape a generic JSON
// decode produces for any numeric literal.
func Number() kata.Schema[float64, float64] { return numberSchema{} }

// Bool returns the schema for booleans.
func Bool() kata.Schema[bool, bool] { return boolSchema{} }

// Null returns the schema accepting exactly nil (JSON null).
func Null() kata.Schema[any, any] { return nullSchema{} }

// Absence returns the schema accepting exactly the kata.Absent sentinel. It
// exists to build Optional fields and is not a serializable value by itself.
func Absence() kata.Schema[any, any] { return absenceSchema{} }

// Anything returns the schema that accepts every input unconditionally. It is
// the identity element for unions and the wildcard for passthrough values.
func Anything() kata.Schema[any, any] { return anythingSchema{} }

// Literal returns the schema accepting only inputs identical to v. Equality
// is strict: the dynamic type must match exactly, no coercion. Literal fields
// are the usual way to pin a discriminant.
func Literal[T comparable](v T) kata.Schema[T, T] { return literalSchema[T]{value: v} }

type stringSchema struct{}

func (stringSchema) Encode(t string) string { return t }
func (stringSchema) Decode(s string) string { return s }
func (stringSchema) Validate(v any) bool {
	_, ok := v.(string)
	return ok
}
func (stringSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "string"}, nil }

type numberSchema struct{}

func (numberSchema) Encode(t float64) float64 { return t }
func (numberSchema) Decode(s float64) float64 { return s }
func (numberSchema) Validate(v any) bool {
	_, ok := v.(float64)
	return ok
}
func (numberSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "number"}, nil }

type boolSchema struct{}

func (boolSchema) Encode(t bool) bool { return t }
func (boolSchema) Decode(s bool) bool { return s }
func (boolSchema) Validate(v any) bool {
	_, ok := v.(bool)
	return ok
}
func (boolSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

type nullSchema struct{}

func (nullSchema) Encode(t any) any                { return t }
func (nullSchema) Decode(s any) any                { return s }
func (nullSchema) Validate(v any) bool             { return v == nil }
func (nullSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "null"}, nil }

type absenceSchema struct{}

func (absenceSchema) Encode(t any) any                { return t }
func (absenceSchema) Decode(s any) any                { return s }
func (absenceSchema) Validate(v any) bool             { return kata.IsAbsent(v) }
func (absenceSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{}, nil }

type anythingSchema struct{}

func (anythingSchema) Encode(t any) any                { return t }
func (anythingSchema) Decode(s any) any                { return s }
func (anythingSchema) Validate(v any) bool             { return true }
func (anythingSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{}, nil }

type literalSchema[T comparable] struct{ value T }

func (l literalSchema[T]) Encode(t T) T { return t }
func (l literalSchema[T]) Decode(s T) T { return s }
func (l literalSchema[T]) Validate(v any) bool {
	tv, ok := v.(T)
	return ok && tv == l.value
}
func (l literalSchema[T]) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Const: l.value}, nil
}
