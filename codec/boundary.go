package codec

import (
	"fmt"

	kata "github.com/katakit/kata"
)

// Encode runs schema.Encode and hands the representation to the codec. A
// marshal failure surfaces as kata.Issues with kata.CodeEncodeError; an
// invalid domain value is a caller contract violation and propagates as a
// panic from the schema, per the library's error policy.
func Encode[T, S any](c Codec, s kata.Schema[T, S], v T) ([]byte, error) {
	data, err := c.Marshal(any(s.Encode(v)))
	if err != nil {
		return nil, kata.Issues{{Path: "/", Code: kata.CodeEncodeError, Message: "marshal failed", Cause: err}}
	}
	return data, nil
}

// Decode unmarshals untrusted bytes, validates the result against the schema
// and decodes it into the domain type. It never panics on malformed input:
// the three outcomes are a nil error, a parse_error issue for malformed text,
// and an invalid_structure issue when parsing succeeds but validation
// rejects the result.
func Decode[T, S any](c Codec, s kata.Schema[T, S], data []byte) (T, error) {
	var zero T
	raw, err := c.Unmarshal(data)
	if err != nil {
		return zero, kata.Issues{{Path: "/", Code: kata.CodeParseError, Message: "malformed input", Cause: err}}
	}
	if !s.Validate(raw) {
		return zero, kata.Issues{{Path: "/", Code: kata.CodeInvalidStructure, Message: "input does not match schema"}}
	}
	rep, ok := raw.(S)
	if !ok && raw != nil {
		// Validate accepted the shape but the schema's representation type is
		// not wire-natural (e.g. built with Co); still an invalid-structure
		// outcome from the caller's point of view.
		return zero, kata.Issues{{Path: "/", Code: kata.CodeInvalidStructure, Message: fmt.Sprintf("unexpected representation %T", raw)}}
	}
	// A nil raw value only reaches here when the schema accepted null, which
	// implies a nilable representation type; the zero rep is that nil.
	return s.Decode(rep), nil
}

// IsParseError reports whether err is the malformed-text outcome.
func IsParseError(err error) bool { return kata.HasCode(err, kata.CodeParseError) }

// IsInvalidStructure reports whether err is the validation-rejected outcome.
func IsInvalidStructure(err error) bool { return kata.HasCode(err, kata.CodeInvalidStructure) }
