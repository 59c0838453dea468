package codec

import (
	json "github.com/goccy/go-json"
)

// JSON implements Codec using JSON serialization. This is the default codec.
type JSON struct{}

// Marshal serializes the representation to JSON bytes.
func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal deserializes JSON bytes. A generic decode already yields the
// canonical shapes (float64 numbers, map[string]any objects), so no
// normalization pass is needed.
func (JSON) Unmarshal(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ContentType returns the MIME type for JSON.
func (JSON) ContentType() string {
	return "application/json"
}

// Compile-time check.
var _ Codec = JSON{}

func init() {
	Register(JSON{})
}
