// Package riv implements the write side of the Rive .riv binary format:
// a registry mapping object and property identifiers to their wire
// encoding, a scene builder that turns a declarative JSON scene
// description into an ordered object graph, and a binary encoder/parser
// that emits and reads back the resulting file.
//
// The package is single-threaded and synchronous. Compile, Parse, and
// Validate are pure functions over in-memory data: given identical input
// and an identical FileID configuration, Compile produces bit-identical
// output across runs.
package riv
