package dsl

import (
	"fmt"

	kata "github.com/katakit/kata"
	js "github.com/katakit/kata/jsonschema"
)

// MapOf builds a schema whose domain is a key-unique associative container
// and whose representation is a sequence of two-element key/value pairs. A
// pair sequence, not a keyed structure, because the domain container may have
// non-string keys or key identities a keyed structure cannot distinguish
// (numeric 0 vs "0"). Decoding with duplicate keys keeps the value of the
// last occurrence; validation defers to the pair-sequence schema.
func MapOf[K comparable, KS, V, VS any](key kata.Schema[K, KS], val kata.Schema[V, VS]) kata.Schema[map[K]V, []any] {
	return mapSchema[K, KS, V, VS]{
		key:   key,
		val:   val,
		pairs: ArrayOf(TupleOf(Of(key), Of(val))),
	}
}

type mapSchema[K comparable, KS, V, VS any] struct {
	key   kata.Schema[K, KS]
	val   kata.Schema[V, VS]
	pairs kata.Schema[[][]any, []any]
}

func (m mapSchema[K, KS, V, VS]) Encode(t map[K]V) []any {
	out := make([]any, 0, len(t))
	for k, v := range t {
		out = append(out, any([]any{any(m.key.Encode(k)), any(m.val.Encode(v))}))
	}
	return out
}

func (m mapSchema[K, KS, V, VS]) Decode(s []any) map[K]V {
	out := make(map[K]V, len(s))
	for i := range s {
		pair, ok := s[i].([]any)
		if !ok || len(pair) != 2 {
			panic(fmt.Sprintf("kata: map decode: element %d is not a key/value pair", i))
		}
		// Nil assertions fail even for an interface target; the zero value
		// is the right KS/VS there.
		ks, ok := pair[0].(KS)
		if !ok && pair[0] != nil {
			panic(fmt.Sprintf("kata: map decode: key %d: expected %T, got %T", i, *new(KS), pair[0]))
		}
		vs, ok := pair[1].(VS)
		if !ok && pair[1] != nil {
			panic(fmt.Sprintf("kata: map decode: value %d: expected %T, got %T", i, *new(VS), pair[1]))
		}
		out[m.key.Decode(ks)] = m.val.Decode(vs)
	}
	return out
}

func (m mapSchema[K, KS, V, VS]) Validate(v any) bool { return m.pairs.Validate(v) }

func (m mapSchema[K, KS, V, VS]) JSONSchema() (*js.Schema, error) { return m.pairs.JSONSchema() }

// SetOf builds a schema whose domain is a value-unique container and whose
// representation is a plain sequence. Decoding de-duplicates by domain-level
// equality; order in the representation is not preserved.
func SetOf[T comparable, S any](elem kata.Schema[T, S]) kata.Schema[map[T]struct{}, []any] {
	return setSchema[T, S]{elem: elem}
}

type setSchema[T comparable, S any] struct {
	elem kata.Schema[T, S]
}

func (s setSchema[T, S]) Encode(t map[T]struct{}) []any {
	out := make([]any, 0, len(t))
	for e := range t {
		out = append(out, any(s.elem.Encode(e)))
	}
	return out
}

func (s setSchema[T, S]) Decode(rep []any) map[T]struct{} {
	out := make(map[T]struct{}, len(rep))
	for i := range rep {
		// Same nil tolerance as array decode.
		ev, ok := rep[i].(S)
		if !ok && rep[i] != nil {
			panic(fmt.Sprintf("kata: set decode: element %d: expected %T, got %T", i, *new(S), rep[i]))
		}
		out[s.elem.Decode(ev)] = struct{}{}
	}
	return out
}

func (s setSchema[T, S]) Validate(v any) bool {
	arr, ok := v.([]any)
	if !ok {
		return false
	}
	for i := range arr {
		if !s.elem.Validate(arr[i]) {
			return false
		}
	}
	return true
}

func (s setSchema[T, S]) JSONSchema() (*js.Schema, error) {
	es, err := s.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: es, UniqueItems: true}, nil
}
