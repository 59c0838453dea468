package dsl

import (
	kata "github.com/katakit/kata"
)

// Lazy aggregate variants: parallel versions of the aggregate combinators
// that accept sub-schema thunks instead of sub-schemas, re-invoking each
// thunk on every operation. This is strictly necessary whenever a schema must
// reference itself or a mutually recursive peer, since eager construction
// would recurse forever before any value is processed. The cost is repeated
// reconstruction of unchanging sub-schemas per call; for non-recursive shapes
// prefer the eager combinators, or wrap only the recursive edge with Lazy or
// LazyOf.

// LazyRecordOf is RecordOf over deferred fields.
func LazyRecordOf(fields map[string]func() Field) kata.Schema[map[string]any, map[string]any] {
	fs := make(map[string]Field, len(fields))
	for name, thunk := range fields {
		fs[name] = LazyOf(thunk)
	}
	return RecordOf(fs)
}

// LazyClassOf is ClassOf over deferred fields.
func LazyClassOf[T any](fields map[string]func() Field, construct func(map[string]any) T, deconstruct func(T) map[string]any) kata.Schema[T, map[string]any] {
	return Contra(LazyRecordOf(fields), deconstruct, construct)
}

// LazyTupleOf is TupleOf over deferred elements.
func LazyTupleOf(elems ...func() Field) kata.Schema[[]any, []any] {
	fs := make([]Field, len(elems))
	for i, thunk := range elems {
		fs[i] = LazyOf(thunk)
	}
	return TupleOf(fs...)
}

// LazyArrayOf is ArrayOf over a deferred element schema.
func LazyArrayOf[T, S any](elem func() kata.Schema[T, S]) kata.Schema[[]T, []any] {
	return ArrayOf(Lazy(elem))
}

// LazyNonEmptyArrayOf is NonEmptyArrayOf over a deferred element schema.
func LazyNonEmptyArrayOf[T, S any](elem func() kata.Schema[T, S]) kata.Schema[[]T, []any] {
	return NonEmptyArrayOf(Lazy(elem))
}
