// Package codec implements the serialization boundary around kata schemas: a
// thin adapter that pairs a schema with a generic marshal/unmarshal primitive
// and turns failures into a structured result instead of raising.
//
// Decoding has exactly three outcomes:
//
//   - success: a nil error and the decoded domain value;
//   - parse error (kata.CodeParseError): the serialized text was malformed;
//   - invalid structure (kata.CodeInvalidStructure): the text parsed cleanly
//     but the schema's validator rejected the result.
//
// Usage:
//
//	data, err := codec.Encode(codec.JSON{}, schema, value)
//	v, err := codec.Decode(codec.JSON{}, schema, data)
//	if codec.IsParseError(err) { ... }
package codec

import (
	"sync"
)

// Codec marshals and unmarshals one wire format. Unmarshal decodes into the
// wire-natural Go shapes schema validators expect: string, float64, bool,
// nil, map[string]any and []any. Implementations must be safe for concurrent
// use.
type Codec interface {
	// Marshal serializes a representation value to bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal deserializes bytes into a canonical representation value.
	Unmarshal(data []byte) (any, error)

	// ContentType returns the MIME type (e.g., "application/json").
	ContentType() string
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Codec{}
)

// Register makes a codec available for lookup by its content type. Later
// registrations replace earlier ones.
func Register(c Codec) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[c.ContentType()] = c
}

// Lookup returns the codec registered for the given content type.
func Lookup(contentType string) (Codec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[contentType]
	return c, ok
}

// Default returns the default codec (JSON).
func Default() Codec {
	return JSON{}
}
