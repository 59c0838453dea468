package dsl

import (
	"fmt"

	kata "github.com/katakit/kata"
	js "github.com/katakit/kata/jsonschema"
)

// Field adapts a typed schema to an any-typed wrapper so that heterogeneous
// aggregates (records, tuples, unions) can hold sub-schemas of differing
// domain and representation types behind one value.
//
// Field itself satisfies kata.Schema[any, any]. Encode and Decode panic when
// handed a value of the wrong dynamic type, consistent with the contract that
// calling them outside their precondition is a caller bug; Validate never
// panics.
type Field struct {
	encode     func(any) any
	decode     func(any) any
	validate   func(any) bool
	jsonSchema func() (*js.Schema, error)
}

var _ kata.Schema[any, any] = Field{}

// Of wraps a strongly typed schema as a Field for use in aggregate builders.
func Of[T, S any](s kata.Schema[T, S]) Field {
	return Field{
		encode: func(v any) any {
			// A nil assertion fails even for an interface target; the zero
			// value is the right T there.
			t, ok := v.(T)
			if !ok && v != nil {
				panic(fmt.Sprintf("kata: encode: expected %T, got %T", *new(T), v))
			}
			return any(s.Encode(t))
		},
		decode: func(v any) any {
			sv, ok := v.(S)
			if !ok && v != nil {
				panic(fmt.Sprintf("kata: decode: expected %T, got %T", *new(S), v))
			}
			return any(s.Decode(sv))
		},
		validate:   s.Validate,
		jsonSchema: s.JSONSchema,
	}
}

// LazyOf wraps a Field thunk, re-invoking it on every operation. It is the
// field-level counterpart of Lazy and the building block of the lazy
// aggregate variants: the thunk body may reference a schema variable that is
// assigned only after the enclosing definition completes.
//
// The JSON Schema projection of a lazy edge is empty; exporting through the
// thunk would never terminate for a self-referential definition.
func LazyOf(thunk func() Field) Field {
	return Field{
		encode:     func(v any) any { return thunk().Encode(v) },
		decode:     func(v any) any { return thunk().Decode(v) },
		validate:   func(v any) bool { return thunk().Validate(v) },
		jsonSchema: func() (*js.Schema, error) { return &js.Schema{}, nil },
	}
}

// Encode converts a domain value, panicking on a wrong dynamic type.
func (f Field) Encode(v any) any { return f.encode(v) }

// Decode reconstructs a domain value from a representation already accepted
// by Validate, panicking on a wrong dynamic type.
func (f Field) Decode(v any) any { return f.decode(v) }

// Validate reports whether v has the shape of the underlying representation.
func (f Field) Validate(v any) bool { return f.validate(v) }

// JSONSchema delegates to the underlying schema's projection.
func (f Field) JSONSchema() (*js.Schema, error) { return f.jsonSchema() }
