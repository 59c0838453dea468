package kata

import (
	js "github.com/katakit/kata/jsonschema"
)

// Schema is the contract every combinator consumes and produces: a triple of
// encode, decode and validate over a (domain, representation) type pair.
//
// T is the domain type; S is the representation type. Representation types
// produced by the built-in combinators are restricted to the shapes a generic
// JSON decode yields (string, float64, bool, nil, map[string]any, []any), so
// that an input accepted by Validate can be handed to Decode after a plain
// type assertion.
//
// Encode and Decode are total under their preconditions: Encode assumes its
// argument is a valid domain value and Decode assumes its argument already
// satisfies Validate. Calling either outside its precondition is a caller
// contract violation and panics; the library does not re-validate on every
// call. Validate is total in the strong sense: it returns false rather than
// panicking for any input whatsoever.
type Schema[T, S any] interface {
	// Encode converts a domain value into its representation.
	Encode(t T) S
	// Decode reconstructs a domain value from a representation that has
	// already been accepted by Validate.
	Decode(s S) T
	// Validate reports whether v has the shape of the representation type.
	Validate(v any) bool
	// JSONSchema projects the schema into a JSON Schema representation.
	// The projection is best-effort: combinators whose representation is
	// opaque export an empty schema.
	JSONSchema() (*js.Schema, error)
}

// InjectSchema extends Schema for domain types that need external context to
// reconstruct. The embedded Schema operates on the base domain type B that is
// actually serialized; Project discards the context from the true domain type
// T, and Inject, given context D, returns a reconstructor from base values
// back to T.
//
// No invariant connecting Project/Inject to Encode/Decode is enforced here;
// recovering t from Inject(d)(Project(t)) is the schema author's
// responsibility and holds only when d is the context originally associated
// with t.
type InjectSchema[T, D, B, S any] interface {
	Schema[B, S]
	Project(t T) B
	Inject(d D) func(B) T
}

// absent is the unexported type of the absence sentinel.
type absent struct{}

// Absent marks the absence of a value, distinct from nil (which represents an
// explicit null). Record combinators substitute Absent for missing keys, and
// a field schema accepts absence only when composed with dsl.Optional.
var Absent any = absent{}

// IsAbsent reports whether v is the absence sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absent)
	return ok
}
