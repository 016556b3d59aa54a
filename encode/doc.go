// Package encode converts between JSON (and YAML) text and the canonical
// ir.Node representation.
//
// Decoding preserves what encoding/json's map-based decoding loses: object
// key order, integer vs floating vs exact-decimal number variants, and
// RFC 3339 timestamp strings.  Encoding is the inverse and emits
// exact-decimal literals verbatim.
package encode
