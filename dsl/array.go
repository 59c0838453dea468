package dsl

import (
	"fmt"

	kata "github.com/katakit/kata"
	js "github.com/katakit/kata/jsonschema"
)

// ArrayOf builds a variable-length homogeneous sequence schema. Encode and
// decode map the element transformation over the sequence, preserving order.
func ArrayOf[T, S any](elem kata.Schema[T, S]) kata.Schema[[]T, []any] {
	return arraySchema[T, S]{elem: elem}
}

// NonEmptyArrayOf is ArrayOf with validation additionally requiring at least
// one element.
func NonEmptyArrayOf[T, S any](elem kata.Schema[T, S]) kata.Schema[[]T, []any] {
	return Constrain(ArrayOf(elem), func(s []any) bool { return len(s) >= 1 })
}

type arraySchema[T, S any] struct {
	elem kata.Schema[T, S]
}

func (a arraySchema[T, S]) Encode(t []T) []any {
	out := make([]any, len(t))
	for i := range t {
		out[i] = any(a.elem.Encode(t[i]))
	}
	return out
}

func (a arraySchema[T, S]) Decode(s []any) []T {
	out := make([]T, len(s))
	for i := range s {
		// A nil assertion fails even for an interface target; the zero
		// value is the right S there.
		ev, ok := s[i].(S)
		if !ok && s[i] != nil {
			panic(fmt.Sprintf("kata: array decode: element %d: expected %T, got %T", i, *new(S), s[i]))
		}
		out[i] = a.elem.Decode(ev)
	}
	return out
}

func (a arraySchema[T, S]) Validate(v any) bool {
	arr, ok := v.([]any)
	if !ok {
		return false
	}
	for i := range arr {
		if !a.elem.Validate(arr[i]) {
			return false
		}
	}
	return true
}

func (a arraySchema[T, S]) JSONSchema() (*js.Schema, error) {
	es, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: es}, nil
}
