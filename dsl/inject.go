package dsl

import (
	kata "github.com/katakit/kata"
	js "github.com/katakit/kata/jsonschema"
)

// Injecting extends a schema over the base domain type B with a project and
// inject operation pair, for true domain types T that need external context D
// to reconstruct. Encode, Decode and Validate delegate to the base schema
// entirely; Project and Inject are invoked separately by the caller,
// typically from a composite built with Contra, to bridge between T and B.
// No invariant connecting the pair to the triple is enforced: correctness is
// a composition-time responsibility of the schema author.
func Injecting[T, D, B, S any](base kata.Schema[B, S], project func(T) B, inject func(D) func(B) T) kata.InjectSchema[T, D, B, S] {
	return injectSchema[T, D, B, S]{base: base, project: project, inject: inject}
}

type injectSchema[T, D, B, S any] struct {
	base    kata.Schema[B, S]
	project func(T) B
	inject  func(D) func(B) T
}

func (s injectSchema[T, D, B, S]) Encode(b B) S                    { return s.base.Encode(b) }
func (s injectSchema[T, D, B, S]) Decode(rep S) B                  { return s.base.Decode(rep) }
func (s injectSchema[T, D, B, S]) Validate(v any) bool             { return s.base.Validate(v) }
func (s injectSchema[T, D, B, S]) JSONSchema() (*js.Schema, error) { return s.base.JSONSchema() }
func (s injectSchema[T, D, B, S]) Project(t T) B                   { return s.project(t) }
func (s injectSchema[T, D, B, S]) Inject(d D) func(B) T            { return s.inject(d) }
