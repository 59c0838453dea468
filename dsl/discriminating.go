package dsl

import (
	"fmt"
	"sort"

	kata "github.com/katakit/kata"
	js "github.com/katakit/kata/jsonschema"
)

// Discriminating builds a discriminated union over keyed structures: a named
// mapping from discriminant value to per-variant record schema. Each variant
// is expected to itself pin the discriminant field to the matching literal.
// All three operations read the discriminant first, treated as an opaque
// string key, and delegate to the selected variant entirely; an unrecognized
// discriminant fails validation rather than falling through to another
// variant. An unrecognized discriminant during encode is a caller bug and
// panics.
func Discriminating(field string, variants map[string]kata.Schema[map[string]any, map[string]any]) kata.Schema[map[string]any, map[string]any] {
	return discriminatedSchema{field: field, variants: variants}
}

type discriminatedSchema struct {
	field    string
	variants map[string]kata.Schema[map[string]any, map[string]any]
}

func (d discriminatedSchema) pick(m map[string]any) (kata.Schema[map[string]any, map[string]any], string, bool) {
	tag, ok := m[d.field].(string)
	if !ok {
		return nil, "", false
	}
	v, ok := d.variants[tag]
	return v, tag, ok
}

func (d discriminatedSchema) Encode(t map[string]any) map[string]any {
	v, tag, ok := d.pick(t)
	if !ok {
		panic(fmt.Sprintf("kata: discriminating encode: unknown variant %q for field %q", tag, d.field))
	}
	return v.Encode(t)
}

func (d discriminatedSchema) Decode(s map[string]any) map[string]any {
	v, tag, ok := d.pick(s)
	if !ok {
		panic(fmt.Sprintf("kata: discriminating decode: unknown variant %q for field %q", tag, d.field))
	}
	return v.Decode(s)
}

func (d discriminatedSchema) Validate(v any) bool {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return false
	}
	sub, _, ok := d.pick(m)
	if !ok {
		return false
	}
	return sub.Validate(m)
}

func (d discriminatedSchema) JSONSchema() (*js.Schema, error) {
	tags := make([]string, 0, len(d.variants))
	for tag := range d.variants {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	out := &js.Schema{OneOf: make([]*js.Schema, 0, len(tags))}
	for _, tag := range tags {
		vs, err := d.variants[tag].JSONSchema()
		if err != nil {
			return nil, err
		}
		out.OneOf = append(out.OneOf, vs)
	}
	return out, nil
}
