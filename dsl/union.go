package dsl

import (
	js "github.com/katakit/kata/jsonschema"
)

// UnionOf builds a general left-biased sum over two branches. Encoding
// dispatches via the isLeft/isRight predicates and panics when neither holds:
// a domain value outside both branches is a caller contract violation, not a
// recoverable condition. Decoding and validation try the left branch first,
// so when both branches would accept the same representation the left one
// always wins.
func UnionOf(isLeft, isRight func(any) bool, left, right Field) Field {
	return Field{
		encode: func(v any) any {
			switch {
			case isLeft(v):
				return left.Encode(v)
			case isRight(v):
				return right.Encode(v)
			default:
				panic("kata: union encode: value matches neither branch")
			}
		},
		decode: func(v any) any {
			if left.Validate(v) {
				return left.Decode(v)
			}
			return right.Decode(v)
		},
		validate: func(v any) bool {
			return left.Validate(v) || right.Validate(v)
		},
		jsonSchema: func() (*js.Schema, error) {
			ls, err := left.JSONSchema()
			if err != nil {
				return nil, err
			}
			rs, err := right.JSONSchema()
			if err != nil {
				return nil, err
			}
			return &js.Schema{OneOf: []*js.Schema{ls, rs}}, nil
		},
	}
}

// Union is the convenience specialization of UnionOf for a left branch whose
// domain and representation types coincide: the discriminating predicates are
// inferred from the left validator.
func Union(left, right Field) Field {
	return UnionOf(left.Validate, func(any) bool { return true }, left, right)
}

// Optional makes a field acceptably absent: a union of the absence primitive
// with the given field. Use it only as a record field value; absence is not
// serializable as a top-level or array element in most representation
// targets, a constraint documented here but not enforced.
func Optional(f Field) Field {
	return Union(Of(Absence()), f)
}
