// Package jsonshape provides structural operations over loosely-typed,
// JSON-shaped values: deep equality, merge-style diffing and patching,
// path-aware change enumeration, deep merging, and path-based navigation.
//
// Values are represented by the ir package's Node type and addressed by
// the dpath package's Path type.  All operations here are pure functions:
// inputs are never modified, results may share unchanged subtrees with
// their inputs, and nothing blocks or performs I/O.
//
// Diff and Patch follow merge-patch semantics: a patch is itself a
// JSON-shaped value where a null object entry deletes the corresponding
// key, any other entry is applied recursively, and non-object patches
// replace wholesale.  Arrays are always treated atomically; no operation
// in this package compares array elements pairwise.
package jsonshape
