package dsl

import (
	kata "github.com/katakit/kata"
	js "github.com/katakit/kata/jsonschema"
)

// Contra adapts the domain side of a schema: given functions mapping a new
// domain type T2 to and from the old one, it produces a schema over T2 with
// the same representation type and the same validator.
func Contra[T2, T, S any](s kata.Schema[T, S], enc func(T2) T, dec func(T) T2) kata.Schema[T2, S] {
	return contraSchema[T2, T, S]{base: s, enc: enc, dec: dec}
}

type contraSchema[T2, T, S any] struct {
	base kata.Schema[T, S]
	enc  func(T2) T
	dec  func(T) T2
}

func (c contraSchema[T2, T, S]) Encode(t T2) S                   { return c.base.Encode(c.enc(t)) }
func (c contraSchema[T2, T, S]) Decode(s S) T2                   { return c.dec(c.base.Decode(s)) }
func (c contraSchema[T2, T, S]) Validate(v any) bool             { return c.base.Validate(v) }
func (c contraSchema[T2, T, S]) JSONSchema() (*js.Schema, error) { return c.base.JSONSchema() }

// Co is the mirror of Contra on the representation side. Because the base
// validator speaks the old representation type, a new validator for S2 must
// be supplied explicitly.
func Co[T, S, S2 any](s kata.Schema[T, S], enc func(S) S2, dec func(S2) S, validate func(any) bool) kata.Schema[T, S2] {
	return coSchema[T, S, S2]{base: s, enc: enc, dec: dec, valid: validate}
}

type coSchema[T, S, S2 any] struct {
	base  kata.Schema[T, S]
	enc   func(S) S2
	dec   func(S2) S
	valid func(any) bool
}

func (c coSchema[T, S, S2]) Encode(t T) S2       { return c.enc(c.base.Encode(t)) }
func (c coSchema[T, S, S2]) Decode(s S2) T       { return c.base.Decode(c.dec(s)) }
func (c coSchema[T, S, S2]) Validate(v any) bool { return c.valid(v) }

// The representation was transformed opaquely, so no structural projection is
// available.
func (c coSchema[T, S, S2]) JSONSchema() (*js.Schema, error) { return &js.Schema{}, nil }

// Compose chains two schemas end to end, treating the first schema's
// representation type as the second one's domain type. The composite
// validator is the second schema's validator only: the first validator speaks
// type B, which is not reachable from the end-to-end representation C.
func Compose[A, B, C any](ab kata.Schema[A, B], bc kata.Schema[B, C]) kata.Schema[A, C] {
	return composeSchema[A, B, C]{ab: ab, bc: bc}
}

type composeSchema[A, B, C any] struct {
	ab kata.Schema[A, B]
	bc kata.Schema[B, C]
}

func (c composeSchema[A, B, C]) Encode(a A) C                    { return c.bc.Encode(c.ab.Encode(a)) }
func (c composeSchema[A, B, C]) Decode(s C) A                    { return c.ab.Decode(c.bc.Decode(s)) }
func (c composeSchema[A, B, C]) Validate(v any) bool             { return c.bc.Validate(v) }
func (c composeSchema[A, B, C]) JSONSchema() (*js.Schema, error) { return c.bc.JSONSchema() }

// Constrain narrows validation by ANDing a predicate with the base
// validator; encode and decode are unchanged. The predicate receives the
// typed representation, which is safe because it only runs after the base
// validator has accepted the input.
func Constrain[T, S any](s kata.Schema[T, S], pred func(S) bool) kata.Schema[T, S] {
	return constrainSchema[T, S]{base: s, pred: pred}
}

type constrainSchema[T, S any] struct {
	base kata.Schema[T, S]
	pred func(S) bool
}

func (c constrainSchema[T, S]) Encode(t T) S { return c.base.Encode(t) }
func (c constrainSchema[T, S]) Decode(s S) T { return c.base.Decode(s) }
func (c constrainSchema[T, S]) Validate(v any) bool {
	if !c.base.Validate(v) {
		return false
	}
	sv, ok := v.(S)
	return ok && c.pred(sv)
}
func (c constrainSchema[T, S]) JSONSchema() (*js.Schema, error) { return c.base.JSONSchema() }

// Asserting is the runtime equivalent of Constrain with a predicate over the
// raw input. The original distinction (a predicate that also narrows the
// representation type for the caller) has no Go counterpart, so the two
// differ only in predicate signature.
func Asserting[T, S any](s kata.Schema[T, S], pred func(any) bool) kata.Schema[T, S] {
	return assertingSchema[T, S]{base: s, pred: pred}
}

type assertingSchema[T, S any] struct {
	base kata.Schema[T, S]
	pred func(any) bool
}

func (a assertingSchema[T, S]) Encode(t T) S                    { return a.base.Encode(t) }
func (a assertingSchema[T, S]) Decode(s S) T                    { return a.base.Decode(s) }
func (a assertingSchema[T, S]) Validate(v any) bool             { return a.base.Validate(v) && a.pred(v) }
func (a assertingSchema[T, S]) JSONSchema() (*js.Schema, error) { return a.base.JSONSchema() }

// Lazy defers evaluation of a schema-producing thunk until an operation is
// invoked, re-invoking the thunk on every call. A schema variable may this
// way appear inside its own definition, as long as the reference sits inside
// the thunk body and is never evaluated eagerly.
func Lazy[T, S any](thunk func() kata.Schema[T, S]) kata.Schema[T, S] {
	return lazySchema[T, S]{thunk: thunk}
}

type lazySchema[T, S any] struct {
	thunk func() kata.Schema[T, S]
}

func (l lazySchema[T, S]) Encode(t T) S        { return l.thunk().Encode(t) }
func (l lazySchema[T, S]) Decode(s S) T        { return l.thunk().Decode(s) }
func (l lazySchema[T, S]) Validate(v any) bool { return l.thunk().Validate(v) }

// Exporting through the thunk would not terminate for a self-referential
// definition.
func (l lazySchema[T, S]) JSONSchema() (*js.Schema, error) { return &js.Schema{}, nil }
