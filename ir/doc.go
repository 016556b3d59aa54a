// Package ir defines the canonical in-memory representation of a
// loosely-typed, JSON-shaped value: the Node tagged union and its
// structural equality, ordering and hashing rules.
//
// Nodes are immutable by convention.  No operation in this module ever
// modifies a Node after construction; transformations build new Nodes and
// freely share unchanged subtrees, so concurrent readers of the same value
// graph never need locks.
//
// Objects preserve insertion order.  Object keys are unique under
// case-insensitive comparison and keep the case of their first insertion;
// two objects are equal when they have the same case-insensitive key set
// and recursively equal values, regardless of order.
package ir
