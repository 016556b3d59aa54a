package jsonshape

import (
	"github.com/jsonshape/jsonshape/debug"
	"github.com/jsonshape/jsonshape/ir"
)

type mergeConfig struct {
	concatArrays bool
}

type MergeOpt func(*mergeConfig)

// ConcatArrays makes Merge concatenate array pairs (left's elements then
// right's, no deduplication) instead of letting right replace left.
func ConcatArrays(v bool) MergeOpt {
	return func(c *mergeConfig) { c.concatArrays = v }
}

// Merge deeply unions two values.  A null right never overwrites — left
// is returned unchanged (contrast with Patch, where null deletes).  Two
// objects merge key by key over the case-insensitive union, recursing on
// shared keys; left's key order and spelling come first, right-only keys
// follow in right's order.  Two arrays follow the ConcatArrays option.
// Anything else resolves to right.
//
// Merge is neither commutative nor, under ConcatArrays, idempotent:
// merging a value with itself doubles its arrays.
func Merge(left, right *ir.Node, opts ...MergeOpt) *ir.Node {
	cfg := &mergeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return doMerge(norm(left), norm(right), cfg)
}

func doMerge(left, right *ir.Node, cfg *mergeConfig) *ir.Node {
	left, right = norm(left), norm(right)
	if debug.Merge() {
		debug.Logf("merge %s with %s\n", left.Type, right.Type)
	}
	if right.Type == ir.NullType {
		return left
	}
	if left.Type == ir.ObjectType && right.Type == ir.ObjectType {
		return mergeObjects(left, right, cfg)
	}
	if left.Type == ir.ArrayType && right.Type == ir.ArrayType && cfg.concatArrays {
		elems := make([]*ir.Node, 0, len(left.Values)+len(right.Values))
		elems = append(elems, left.Values...)
		elems = append(elems, right.Values...)
		return ir.FromSlice(elems)
	}
	return right
}

func mergeObjects(left, right *ir.Node, cfg *mergeConfig) *ir.Node {
	kvs := make([]ir.KeyVal, 0, len(left.Fields)+len(right.Fields))
	for i := range left.Fields {
		key := left.Fields[i].String
		rv, ok := right.Get(key)
		if !ok {
			kvs = append(kvs, ir.KeyVal{Key: key, Val: left.Values[i]})
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: doMerge(left.Values[i], rv, cfg)})
	}
	for i := range right.Fields {
		key := right.Fields[i].String
		if _, ok := left.Get(key); ok {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: right.Values[i]})
	}
	return ir.FromKeyVals(kvs)
}
