package dsl

import (
	"fmt"

	kata "github.com/katakit/kata"
	js "github.com/katakit/kata/jsonschema"
)

// TupleOf builds the fixed-length, positionally addressed counterpart to
// RecordOf. Validation requires an exact length match against the declared
// arity: too few and too many elements both invalidate.
func TupleOf(elems ...Field) kata.Schema[[]any, []any] {
	return tupleSchema{elems: elems}
}

// EmptyTuple is the zero-arity tuple schema: it validates only the empty
// sequence. Like EmptyRecord, it is a stateless process-wide constant.
var EmptyTuple = TupleOf()

type tupleSchema struct {
	elems []Field
}

func (t tupleSchema) Encode(v []any) []any {
	if len(v) != len(t.elems) {
		panic(fmt.Sprintf("kata: tuple encode: want %d elements, got %d", len(t.elems), len(v)))
	}
	out := make([]any, len(t.elems))
	for i, f := range t.elems {
		out[i] = f.Encode(v[i])
	}
	return out
}

func (t tupleSchema) Decode(s []any) []any {
	if len(s) != len(t.elems) {
		panic(fmt.Sprintf("kata: tuple decode: want %d elements, got %d", len(t.elems), len(s)))
	}
	out := make([]any, len(t.elems))
	for i, f := range t.elems {
		out[i] = f.Decode(s[i])
	}
	return out
}

func (t tupleSchema) Validate(v any) bool {
	arr, ok := v.([]any)
	if !ok || len(arr) != len(t.elems) {
		return false
	}
	for i, f := range t.elems {
		if !f.Validate(arr[i]) {
			return false
		}
	}
	return true
}

func (t tupleSchema) JSONSchema() (*js.Schema, error) {
	n := len(t.elems)
	out := &js.Schema{Type: "array", MinItems: &n, MaxItems: &n}
	out.PrefixItems = make([]*js.Schema, 0, n)
	for _, f := range t.elems {
		fs, err := f.JSONSchema()
		if err != nil {
			return nil, err
		}
		out.PrefixItems = append(out.PrefixItems, fs)
	}
	return out, nil
}
