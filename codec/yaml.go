package codec

import (
	"gopkg.in/yaml.v3"
)

// YAML implements Codec using YAML serialization.
type YAML struct{}

// Marshal serializes the representation to YAML bytes.
func (YAML) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal deserializes YAML bytes and canonicalizes the result: the YAML
// decoder produces int for integer scalars where schema validators expect
// float64.
func (YAML) Unmarshal(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return canonicalize(v), nil
}

// ContentType returns the MIME type for YAML.
func (YAML) ContentType() string {
	return "application/yaml"
}

// Compile-time check.
var _ Codec = YAML{}

func init() {
	Register(YAML{})
}
