// Package enum maps closed sets of string tokens onto typed values.
//
// Each enumeration is backed by exactly one Table. Raw attribute decoding,
// JSON, YAML and text unmarshalling all go through that table so the
// accepted tokens cannot drift between entry points. Matching is exact and
// case-sensitive.
package enum
