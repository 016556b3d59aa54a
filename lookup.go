package jsonshape

import (
	"errors"
	"fmt"

	"github.com/jsonshape/jsonshape/debug"
	"github.com/jsonshape/jsonshape/ir"
	"github.com/jsonshape/jsonshape/ir/dpath"
)

// ErrNotFound reports a well-formed path that fails to resolve.
var ErrNotFound = errors.New("path not found")

// Lookup resolves path against root, read-only.  A property segment
// requires the current node to be an object holding that key
// (case-insensitively); an index segment requires an array with the index
// in range.  Any failed step reports false; Lookup never fails.
func Lookup(root *ir.Node, path dpath.Path) (*ir.Node, bool) {
	cur := norm(root)
	for i := 0; i < path.Len(); i++ {
		seg := path.At(i)
		if seg.IsField() {
			v, ok := cur.Get(*seg.Field)
			if !ok {
				if debug.Lookup() {
					debug.Logf("lookup: no field %q at step %d\n", *seg.Field, i)
				}
				return nil, false
			}
			cur = norm(v)
			continue
		}
		if cur.Type != ir.ArrayType || *seg.Index >= len(cur.Values) {
			if debug.Lookup() {
				debug.Logf("lookup: index %d unresolvable at step %d\n", *seg.Index, i)
			}
			return nil, false
		}
		cur = norm(cur.Values[*seg.Index])
	}
	return cur, true
}

// Get is the failing counterpart of Lookup, wrapping ErrNotFound.
func Get(root *ir.Node, path dpath.Path) (*ir.Node, error) {
	v, ok := Lookup(root, path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return v, nil
}

// LookupString parses s and resolves it.  A malformed path surfaces as a
// dpath.ErrInvalidPath error before any resolution is attempted; a
// well-formed path that fails to resolve reports found == false with a
// nil error.
func LookupString(root *ir.Node, s string) (*ir.Node, bool, error) {
	p, err := dpath.Parse(s)
	if err != nil {
		return nil, false, err
	}
	v, ok := Lookup(root, p)
	return v, ok, nil
}

// GetString parses s and resolves it, failing with dpath.ErrInvalidPath
// or ErrNotFound.
func GetString(root *ir.Node, s string) (*ir.Node, error) {
	p, err := dpath.Parse(s)
	if err != nil {
		return nil, err
	}
	return Get(root, p)
}

// Valid reports whether path resolves against root.
func Valid(root *ir.Node, path dpath.Path) bool {
	_, ok := Lookup(root, path)
	return ok
}

// ValidString reports whether s parses and resolves against root.  It is
// meant for untrusted path strings: any parse or resolution failure is
// false, never an error.
func ValidString(root *ir.Node, s string) bool {
	_, ok, err := LookupString(root, s)
	return err == nil && ok
}
