package jsonshape

import (
	"github.com/jsonshape/jsonshape/debug"
	"github.com/jsonshape/jsonshape/ir"
)

// Diff computes the minimal merge-style patch turning original into
// updated, or nil when the two are structurally equal.  Applying the
// result with Patch reproduces updated exactly.
//
// Object fields recurse over the case-insensitive union of keys: a key
// missing from updated becomes a null delete marker, a key missing from
// original contributes updated's value verbatim, and a key in both
// contributes its sub-diff when there is one.  Any other combination of
// shapes, arrays included, is taken wholesale from updated.
//
// A null patch entry cannot distinguish "delete key" from "set key to
// null"; that ambiguity is inherent to merge-patch semantics.
func Diff(original, updated *ir.Node) *ir.Node {
	original, updated = norm(original), norm(updated)
	if debug.Diff() {
		debug.Logf("diff %s against %s\n", original.Type, updated.Type)
	}
	if ir.Equal(original, updated) {
		return nil
	}
	if original.Type != ir.ObjectType || updated.Type != ir.ObjectType {
		return updated
	}
	return diffObjects(original, updated)
}

func diffObjects(original, updated *ir.Node) *ir.Node {
	kvs := make([]ir.KeyVal, 0, len(original.Fields)+len(updated.Fields))
	// deletions keep original's key spelling
	for i := range original.Fields {
		key := original.Fields[i].String
		if _, ok := updated.Get(key); !ok {
			kvs = append(kvs, ir.KeyVal{Key: key, Val: ir.Null()})
		}
	}
	// additions and modifications keep updated's spelling and order
	for i := range updated.Fields {
		key := updated.Fields[i].String
		ov, ok := original.Get(key)
		if !ok {
			kvs = append(kvs, ir.KeyVal{Key: key, Val: updated.Values[i]})
			continue
		}
		if sub := Diff(ov, updated.Values[i]); sub != nil {
			kvs = append(kvs, ir.KeyVal{Key: key, Val: sub})
		}
	}
	// equal nested subtrees can leave nothing behind; no patch then
	if len(kvs) == 0 {
		return nil
	}
	return ir.FromKeyVals(kvs)
}

func norm(n *ir.Node) *ir.Node {
	if n == nil {
		return ir.Null()
	}
	return n
}
