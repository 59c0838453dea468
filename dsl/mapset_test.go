package dsl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katakit/kata/dsl"
)

func TestMapOf_RoundTrip(t *testing.T) {
	s := dsl.MapOf(dsl.String(), dsl.Number())

	in := map[string]float64{"a": 1, "b": 2}
	enc := s.Encode(in)
	require.True(t, s.Validate(any(enc)))
	if diff := cmp.Diff(in, s.Decode(enc)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.ElementsMatch(t, []any{[]any{"a", 1.0}, []any{"b", 2.0}}, enc)
}

func TestMapOf_NonStringKeys(t *testing.T) {
	s := dsl.MapOf(dsl.Number(), dsl.String())

	in := map[float64]string{0: "zero", 1: "one"}
	enc := s.Encode(in)
	require.True(t, s.Validate(any(enc)))
	if diff := cmp.Diff(in, s.Decode(enc)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMapOf_DuplicateKeysLastWins(t *testing.T) {
	s := dsl.MapOf(dsl.String(), dsl.Number())

	dec := s.Decode([]any{[]any{"a", 1.0}, []any{"a", 2.0}})
	assert.Equal(t, map[string]float64{"a": 2}, dec)
}

func TestMapOf_Validate(t *testing.T) {
	s := dsl.MapOf(dsl.String(), dsl.Number())

	assert.True(t, s.Validate([]any{}))
	assert.True(t, s.Validate([]any{[]any{"a", 1.0}}))
	assert.False(t, s.Validate([]any{[]any{"a"}}), "pair must have two elements")
	assert.False(t, s.Validate([]any{[]any{1.0, 1.0}}), "key must match key schema")
	assert.False(t, s.Validate(map[string]any{"a": 1.0}), "keyed structure is not the pair sequence form")
	assert.False(t, s.Validate(nil))
}

func TestMapOf_NullValues(t *testing.T) {
	s := dsl.MapOf(dsl.String(), dsl.Null())

	rep := []any{[]any{"a", nil}}
	require.True(t, s.Validate(any(rep)))
	require.NotPanics(t, func() { s.Decode(rep) })
	assert.Equal(t, map[string]any{"a": nil}, s.Decode(rep))
}

func TestSetOf_RoundTrip(t *testing.T) {
	s := dsl.SetOf(dsl.String())

	in := map[string]struct{}{"a": {}, "b": {}}
	enc := s.Encode(in)
	require.True(t, s.Validate(any(enc)))
	assert.ElementsMatch(t, []any{"a", "b"}, enc)
	assert.Equal(t, in, s.Decode(enc))
}

func TestSetOf_DecodeDeduplicates(t *testing.T) {
	s := dsl.SetOf(dsl.Number())

	dec := s.Decode([]any{1.0, 2.0, 1.0})
	assert.Equal(t, map[float64]struct{}{1: {}, 2: {}}, dec)
}

func TestSetOf_NilElements(t *testing.T) {
	s := dsl.SetOf(dsl.Anything())

	rep := []any{nil, "x", nil}
	require.True(t, s.Validate(any(rep)))
	require.NotPanics(t, func() { s.Decode(rep) })
	assert.Equal(t, map[any]struct{}{nil: {}, "x": {}}, s.Decode(rep))
}

func TestSetOf_JSONSchema(t *testing.T) {
	s := dsl.SetOf(dsl.String())

	js, err := s.JSONSchema()
	require.NoError(t, err)
	assert.Equal(t, "array", js.Type)
	assert.True(t, js.UniqueItems)
	require.NotNil(t, js.Items)
	assert.Equal(t, "string", js.Items.Type)
}
