package dsl

import (
	"sort"

	kata "github.com/katakit/kata"
	js "github.com/katakit/kata/jsonschema"
)

// RecordOf builds a schema over plain keyed structures from a named mapping
// of field name to sub-schema. Encoding and decoding transform each declared
// field independently under the same name; keys not declared in the mapping
// are ignored and not copied. A field whose value is absent encodes to an
// omitted key, and an omitted key decodes through the field schema as the
// kata.Absent sentinel, so absence is accepted exactly when the field schema
// was composed with Optional.
func RecordOf(fields map[string]Field) kata.Schema[map[string]any, map[string]any] {
	return recordSchema{fields: fields}
}

// EmptyRecord is the zero-field record schema: it validates any keyed
// structure and maps everything to the empty structure. It serves as the
// neutral element when unioning record types.
var EmptyRecord = RecordOf(nil)

type recordSchema struct {
	fields map[string]Field
}

func (r recordSchema) Encode(t map[string]any) map[string]any {
	out := make(map[string]any, len(r.fields))
	for name, f := range r.fields {
		dv, ok := t[name]
		if !ok {
			dv = kata.Absent
		}
		ev := f.Encode(dv)
		if !kata.IsAbsent(ev) {
			out[name] = ev
		}
	}
	return out
}

func (r recordSchema) Decode(s map[string]any) map[string]any {
	out := make(map[string]any, len(r.fields))
	for name, f := range r.fields {
		sv, ok := s[name]
		if !ok {
			sv = kata.Absent
		}
		dv := f.Decode(sv)
		if !kata.IsAbsent(dv) {
			out[name] = dv
		}
	}
	return out
}

func (r recordSchema) Validate(v any) bool {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return false
	}
	for name, f := range r.fields {
		fv, ok := m[name]
		if !ok {
			fv = kata.Absent
		}
		if !f.Validate(fv) {
			return false
		}
	}
	return true
}

func (r recordSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "object", Properties: make(map[string]*js.Schema, len(r.fields))}
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f := r.fields[name]
		fs, err := f.JSONSchema()
		if err != nil {
			return nil, err
		}
		out.Properties[name] = fs
		// A field that rejects the absence sentinel is required.
		if !f.Validate(kata.Absent) {
			out.Required = append(out.Required, name)
		}
	}
	return out, nil
}

// ClassOf layers a richer domain type over RecordOf via Contra: decoding
// first decodes the plain structure and then applies construct; encoding
// first applies deconstruct to recover the plain structure. The deconstruct
// function is explicit here where a structurally typed host would read the
// fields straight off the value.
func ClassOf[T any](fields map[string]Field, construct func(map[string]any) T, deconstruct func(T) map[string]any) kata.Schema[T, map[string]any] {
	return Contra(RecordOf(fields), deconstruct, construct)
}
