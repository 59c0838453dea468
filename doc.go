// Package kata builds reusable data-shape descriptors ("schemas") that
// simultaneously encode a domain value into a serializable representation,
// decode a representation back into a domain value, and verify at runtime
// that an arbitrary input has the shape of that representation.
//
// Design policy:
//   - Keep only the public contract in the root package: Schema, InjectSchema,
//     the absence sentinel, and the Issue/Issues error model.
//   - Place combinators under dsl/, wire codecs under codec/, and the CLI
//     under cmd/kata.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := dsl.RecordOf(map[string]dsl.Field{
//		"name": dsl.Of(dsl.String()),
//		"age":  dsl.Of(dsl.Number()),
//	})
//
//	wire, err := codec.Encode(codec.JSON{}, user, map[string]any{"name": "Ann", "age": 30.0})
//	back, err := codec.Decode(codec.JSON{}, user, wire)
//
// Every schema operation is pure and synchronous: schemas carry no mutable
// state, so a single schema value may be shared freely across goroutines.
package kata
