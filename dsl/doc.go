// Package dsl provides the combinators that build kata schemas: primitive
// schemas for atomic values, transformation combinators that adapt a schema's
// domain or representation side, aggregate combinators for records, tuples,
// arrays, maps, sets and unions, lookup-table combinators for small stable
// enumerations, the injection combinator for context-dependent
// reconstruction, and lazy variants of the aggregates for self-referential
// shapes.
//
// Heterogeneous aggregates (records, tuples, unions) operate through the
// any-typed Field adapter; Of wraps a typed schema into a Field. Application
// code assembles a schema value once and then calls Encode, Decode or
// Validate on it repeatedly; schemas are immutable and safe to share.
package dsl
