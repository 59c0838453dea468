package dsl

import (
	"fmt"
	"math"
	"sort"

	kata "github.com/katakit/kata"
	js "github.com/katakit/kata/jsonschema"
)

// Indexing encodes domain values by their position in a fixed lookup table;
// the representation is the index. Encoding a value absent from the table is
// a fatal data-integrity error, since the function is declared total, and
// panics; validation rejects indices outside table bounds. The encoding is
// fragile under reordering of the table and intended only for stable small
// enumerations.
func Indexing[T comparable](values []T) kata.Schema[T, float64] {
	return indexingSchema[T]{values: values}
}

type indexingSchema[T comparable] struct {
	values []T
}

func (s indexingSchema[T]) Encode(t T) float64 {
	for i, c := range s.values {
		if c == t {
			return float64(i)
		}
	}
	panic(fmt.Sprintf("kata: indexing encode: value %v not in table", t))
}

func (s indexingSchema[T]) Decode(rep float64) T { return s.values[int(rep)] }

func (s indexingSchema[T]) Validate(v any) bool {
	f, ok := v.(float64)
	if !ok {
		return false
	}
	// Bounds before truncation: conversion of an out-of-range float to int is
	// implementation-defined.
	return f >= 0 && f < float64(len(s.values)) && f == math.Trunc(f)
}

func (s indexingSchema[T]) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "integer"}, nil
}

// Mapping encodes domain values by their key in a fixed lookup table; the
// representation is the key. Table values must be pairwise distinct or the
// key chosen for a duplicated value is unspecified. Encode panics on a value
// absent from the table; validation rejects unknown keys. Like Indexing,
// intended only for stable small enumerations.
func Mapping[T comparable](table map[string]T) kata.Schema[T, string] {
	return mappingSchema[T]{table: table}
}

type mappingSchema[T comparable] struct {
	table map[string]T
}

func (s mappingSchema[T]) Encode(t T) string {
	for k, c := range s.table {
		if c == t {
			return k
		}
	}
	panic(fmt.Sprintf("kata: mapping encode: value %v not in table", t))
}

func (s mappingSchema[T]) Decode(rep string) T { return s.table[rep] }

func (s mappingSchema[T]) Validate(v any) bool {
	k, ok := v.(string)
	if !ok {
		return false
	}
	_, hit := s.table[k]
	return hit
}

func (s mappingSchema[T]) JSONSchema() (*js.Schema, error) {
	keys := make([]string, 0, len(s.table))
	for k := range s.table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	enum := make([]any, 0, len(keys))
	for _, k := range keys {
		enum = append(enum, k)
	}
	return &js.Schema{Type: "string", Enum: enum}, nil
}
