package dsl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katakit/kata/dsl"
)

func personFields() map[string]dsl.Field {
	return map[string]dsl.Field{
		"name": dsl.Of(dsl.String()),
		"age":  dsl.Of(dsl.Number()),
	}
}

func TestRecordOf_RoundTrip(t *testing.T) {
	s := dsl.RecordOf(personFields())

	in := map[string]any{"name": "ada", "age": 36.0}
	enc := s.Encode(in)
	require.True(t, s.Validate(any(enc)))
	assert.Equal(t, in, s.Decode(enc))
}

func TestRecordOf_IgnoresUndeclaredKeys(t *testing.T) {
	s := dsl.RecordOf(personFields())

	dec := s.Decode(map[string]any{"name": "ada", "age": 36.0, "extra": true})
	assert.Equal(t, map[string]any{"name": "ada", "age": 36.0}, dec)
	assert.True(t, s.Validate(any(map[string]any{"name": "ada", "age": 36.0, "extra": true})))
}

func TestRecordOf_Validate(t *testing.T) {
	s := dsl.RecordOf(personFields())

	assert.True(t, s.Validate(map[string]any{"name": "ada", "age": 36.0}))
	assert.False(t, s.Validate(map[string]any{"name": "ada"}), "missing required field")
	assert.False(t, s.Validate(map[string]any{"name": "ada", "age": "36"}), "wrong field type")
	assert.False(t, s.Validate([]any{"name", "ada"}))
	assert.False(t, s.Validate(nil))
	assert.False(t, s.Validate(map[string]any(nil)))
}

func TestRecordOf_OptionalField(t *testing.T) {
	s := dsl.RecordOf(map[string]dsl.Field{
		"name": dsl.Of(dsl.String()),
		"nick": dsl.Optional(dsl.Of(dsl.String())),
	})

	assert.True(t, s.Validate(map[string]any{"name": "ada"}))
	assert.True(t, s.Validate(map[string]any{"name": "ada", "nick": "al"}))
	assert.False(t, s.Validate(map[string]any{"name": "ada", "nick": 1.0}))

	// absent stays absent through both directions, never surfacing as a key
	enc := s.Encode(map[string]any{"name": "ada"})
	_, present := enc["nick"]
	assert.False(t, present)
	dec := s.Decode(map[string]any{"name": "ada"})
	_, present = dec["nick"]
	assert.False(t, present)

	dec = s.Decode(map[string]any{"name": "ada", "nick": "al"})
	assert.Equal(t, "al", dec["nick"])
}

func TestEmptyRecord(t *testing.T) {
	assert.True(t, dsl.EmptyRecord.Validate(map[string]any{}))
	assert.True(t, dsl.EmptyRecord.Validate(map[string]any{"anything": 1.0}))
	assert.False(t, dsl.EmptyRecord.Validate("not a record"))
	assert.Equal(t, map[string]any{}, dsl.EmptyRecord.Encode(map[string]any{"dropped": true}))
}

type person struct {
	Name string
	Age  float64
}

func TestClassOf_RoundTrip(t *testing.T) {
	s := dsl.ClassOf(personFields(),
		func(m map[string]any) person {
			return person{Name: m["name"].(string), Age: m["age"].(float64)}
		},
		func(p person) map[string]any {
			return map[string]any{"name": p.Name, "age": p.Age}
		},
	)

	p := person{Name: "ada", Age: 36}
	enc := s.Encode(p)
	assert.Equal(t, map[string]any{"name": "ada", "age": 36.0}, enc)
	assert.Equal(t, p, s.Decode(enc))
	assert.True(t, s.Validate(any(enc)))
	assert.False(t, s.Validate(map[string]any{"name": "ada"}))
}

func TestRecordOf_JSONSchema(t *testing.T) {
	s := dsl.RecordOf(map[string]dsl.Field{
		"name": dsl.Of(dsl.String()),
		"nick": dsl.Optional(dsl.Of(dsl.String())),
	})

	js, err := s.JSONSchema()
	require.NoError(t, err)
	assert.Equal(t, "object", js.Type)
	assert.Equal(t, []string{"name"}, js.Required)
	require.Contains(t, js.Properties, "name")
	require.Contains(t, js.Properties, "nick")
	assert.Equal(t, "string", js.Properties["name"].Type)
}

func TestRecordOf_FieldWrongDomainTypePanics(t *testing.T) {
	s := dsl.RecordOf(personFields())
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.True(t, strings.HasPrefix(r.(string), "kata: encode:"))
	}()
	s.Encode(map[string]any{"name": 1, "age": 36.0})
}
