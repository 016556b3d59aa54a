package ir

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// Node is a tagged union over the JSON-shaped value kinds.  Exactly one
// family of fields is meaningful for a given Type:
//
//   - NullType: nothing
//   - BoolType: Bool
//   - NumberType: one of Int64, Float64 or Decimal (exact decimal text)
//   - TimeType: Time
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields (StringType key nodes) parallel to Values
//   - OpaqueType: Opaque, an unrecognized native leaf equal only to itself
//
// A nil *Node is treated as null by every operation in this module.
type Node struct {
	Type Type

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
	Decimal string
	Time    time.Time
	Opaque  any

	Fields []*Node
	Values []*Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

// FromDecimal builds an exact-decimal number from its literal text, for
// precision-sensitive fields that neither int64 nor float64 can hold
// faithfully.  The text is kept verbatim.
func FromDecimal(text string) *Node {
	return &Node{Type: NumberType, Decimal: text}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromTime(t time.Time) *Node {
	return &Node{Type: TimeType, Time: t}
}

// FromOpaque wraps a native value the model has no representation for.
// The resulting leaf is equal only to a leaf wrapping the same value.
func FromOpaque(v any) *Node {
	return &Node{Type: OpaqueType, Opaque: v}
}

func FromSlice(elems []*Node) *Node {
	vs := make([]*Node, len(elems))
	for i, e := range elems {
		vs[i] = orNull(e)
	}
	return &Node{Type: ArrayType, Values: vs}
}

// FromMap builds an object from a Go map, ordering keys with slices.Sorted
// so construction is deterministic.
func FromMap(m map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(m))
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: k, Val: m[k]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object preserving encounter order.  Keys that
// collide under case-insensitive comparison are collapsed: the first
// occurrence fixes the key's case, the last occurrence wins the value.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if at := res.fieldIndex(kv.Key); at >= 0 {
			res.Values[at] = orNull(kv.Val)
			continue
		}
		res.Fields = append(res.Fields, FromString(kv.Key))
		res.Values = append(res.Values, orNull(kv.Val))
	}
	return res
}

// Get looks a field up by name, case-insensitively.  It reports false when
// the node is not an object or the field is absent.
func (n *Node) Get(name string) (*Node, bool) {
	if n == nil || n.Type != ObjectType {
		return nil, false
	}
	at := n.fieldIndex(name)
	if at < 0 {
		return nil, false
	}
	return n.Values[at], true
}

// With returns a copy of the object with name bound to v.  An existing
// field (matched case-insensitively) keeps its original spelling and has
// its value replaced; otherwise the field is appended.  Non-object
// receivers yield a fresh single-field object.
func (n *Node) With(name string, v *Node) *Node {
	if n == nil || n.Type != ObjectType {
		return FromKeyVals([]KeyVal{{Key: name, Val: v}})
	}
	if at := n.fieldIndex(name); at >= 0 {
		res := &Node{Type: ObjectType, Fields: n.Fields, Values: slices.Clone(n.Values)}
		res.Values[at] = orNull(v)
		return res
	}
	res := &Node{Type: ObjectType}
	res.Fields = append(slices.Clip(slices.Clone(n.Fields)), FromString(name))
	res.Values = append(slices.Clip(slices.Clone(n.Values)), orNull(v))
	return res
}

// Without returns a copy of the object with the named field removed.  The
// receiver is returned unchanged when the field is absent.
func (n *Node) Without(name string) *Node {
	if n == nil || n.Type != ObjectType {
		return n
	}
	at := n.fieldIndex(name)
	if at < 0 {
		return n
	}
	res := &Node{Type: ObjectType}
	res.Fields = append(res.Fields, n.Fields[:at]...)
	res.Fields = append(res.Fields, n.Fields[at+1:]...)
	res.Values = append(res.Values, n.Values[:at]...)
	res.Values = append(res.Values, n.Values[at+1:]...)
	return res
}

func (n *Node) fieldIndex(name string) int {
	for i := range n.Fields {
		if strings.EqualFold(n.Fields[i].String, name) {
			return i
		}
	}
	return -1
}

// Clone deep-copies the node.  Most callers do not need it: nodes are
// immutable and may be shared directly.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{}
	*res = *n
	if n.Int64 != nil {
		i := *n.Int64
		res.Int64 = &i
	}
	if n.Float64 != nil {
		f := *n.Float64
		res.Float64 = &f
	}
	if n.Fields != nil {
		res.Fields = make([]*Node, len(n.Fields))
		for i, f := range n.Fields {
			res.Fields[i] = f.Clone()
		}
	}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

func orNull(n *Node) *Node {
	if n == nil {
		return Null()
	}
	return n
}
