package codec

import (
	"github.com/vmihailenco/msgpack/v5"
)

// MsgPack implements Codec using MessagePack serialization, a binary format
// more compact than JSON while keeping schema-less flexibility.
type MsgPack struct{}

// Marshal serializes the representation to MessagePack bytes.
func (MsgPack) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal deserializes MessagePack bytes and canonicalizes the result:
// the decoder produces sized integer types and float32 where schema
// validators expect float64.
func (MsgPack) Unmarshal(data []byte) (any, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return canonicalize(v), nil
}

// ContentType returns the MIME type for MessagePack.
func (MsgPack) ContentType() string {
	return "application/msgpack"
}

// Compile-time check.
var _ Codec = MsgPack{}

func init() {
	Register(MsgPack{})
}
