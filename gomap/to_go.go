package gomap

import (
	"encoding/json"

	"github.com/jsonshape/jsonshape/ir"
)

// ToGo materializes a Node as plain Go data: nil, bool, int64, float64,
// json.Number (for exact decimals), string, time.Time,
// []any and map[string]any.  Opaque nodes unwrap to their held value.
// Object key order is not representable in a Go map and is lost.
func ToGo(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return n.Bool
	case ir.NumberType:
		switch {
		case n.Int64 != nil:
			return *n.Int64
		case n.Float64 != nil:
			return *n.Float64
		default:
			return json.Number(n.Decimal)
		}
	case ir.TimeType:
		return n.Time
	case ir.StringType:
		return n.String
	case ir.ArrayType:
		out := make([]any, len(n.Values))
		for i, v := range n.Values {
			out[i] = ToGo(v)
		}
		return out
	case ir.ObjectType:
		out := make(map[string]any, len(n.Fields))
		for i := range n.Fields {
			out[n.Fields[i].String] = ToGo(n.Values[i])
		}
		return out
	case ir.OpaqueType:
		return n.Opaque
	}
	return nil
}
