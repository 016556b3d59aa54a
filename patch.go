package jsonshape

import (
	"github.com/jsonshape/jsonshape/debug"
	"github.com/jsonshape/jsonshape/ir"
)

// Patch applies a merge-style patch to original and returns the result.
// It never fails: every shape mismatch has a defined fallback.
//
// A null patch is a literal replacement, not a no-op — callers must treat
// a nil Diff result, not a null patch, as "nothing to apply".  An object
// patch is applied copy-on-write: starting from original when it is an
// object (an empty object otherwise), null entries delete their key and
// every other entry is applied recursively against the existing value for
// that key, or against null when the key is new.  Any non-object patch
// replaces original wholesale.
func Patch(original, patch *ir.Node) *ir.Node {
	original, patch = norm(original), norm(patch)
	if debug.Patch() {
		debug.Logf("patch %s with %s\n", original.Type, patch.Type)
	}
	if patch.Type != ir.ObjectType {
		return patch
	}
	res := original
	if res.Type != ir.ObjectType {
		res = ir.FromKeyVals(nil)
	}
	for i := range patch.Fields {
		key := patch.Fields[i].String
		pv := patch.Values[i]
		if pv.Type == ir.NullType {
			res = res.Without(key)
			continue
		}
		cur, ok := res.Get(key)
		if !ok {
			cur = ir.Null()
		}
		res = res.With(key, Patch(cur, pv))
	}
	return res
}
