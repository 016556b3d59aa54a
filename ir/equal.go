package ir

import (
	"cmp"
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Equal reports deep structural equality.  Objects are equal when their
// case-insensitive key sets match and every shared key's values are
// recursively equal; key order is irrelevant.  Arrays are equal when they
// have the same length and positionally equal elements.  Numbers compare
// numerically across the integral, floating and exact-decimal variants.
// Null is equal only to null, and an opaque leaf only to a leaf wrapping
// the same native value.
func Equal(a, b *Node) bool {
	a, b = orNull(a), orNull(b)
	if a == b {
		return true
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return numCompare(a, b) == 0
	case TimeType:
		return a.Time.Equal(b.Time)
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			bv, ok := b.Get(a.Fields[i].String)
			if !ok || !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	case OpaqueType:
		return opaqueEqual(a.Opaque, b.Opaque)
	}
	return false
}

// Compare returns an integer ordering two nodes: 0 if a == b, -1 if a < b
// and +1 if a > b.  The order ranks by type first, then content; object
// entries are ordered by folded key.  Compare is consistent with Equal
// except for opaque leaves, which it orders by their printed form.
func Compare(a, b *Node) int {
	a, b = orNull(a), orNull(b)
	if a == b {
		return 0
	}
	if c := cmp.Compare(rank(a.Type), rank(b.Type)); c != 0 {
		return c
	}
	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return numCompare(a, b)
	case TimeType:
		return a.Time.Compare(b.Time)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case OpaqueType:
		if opaqueEqual(a.Opaque, b.Opaque) {
			return 0
		}
		return strings.Compare(fmt.Sprint(a.Opaque), fmt.Sprint(b.Opaque))
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < Time < String < Array < Object < Opaque
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case TimeType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	case OpaqueType:
		return 7
	}
	return 100
}

func compareArrays(a, b *Node) int {
	n := min(len(a.Values), len(b.Values))
	for i := 0; i < n; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func compareObjects(a, b *Node) int {
	ka := sortedFieldOrder(a)
	kb := sortedFieldOrder(b)
	n := min(len(ka), len(kb))
	for i := 0; i < n; i++ {
		fa := strings.ToLower(a.Fields[ka[i]].String)
		fb := strings.ToLower(b.Fields[kb[i]].String)
		if c := strings.Compare(fa, fb); c != 0 {
			return c
		}
		if c := Compare(a.Values[ka[i]], b.Values[kb[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ka), len(kb))
}

func sortedFieldOrder(n *Node) []int {
	order := make([]int, len(n.Fields))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(i, j int) int {
		return strings.Compare(
			strings.ToLower(n.Fields[i].String),
			strings.ToLower(n.Fields[j].String))
	})
	return order
}

// numCompare orders two number nodes numerically, regardless of variant.
// Variant-homogeneous pairs take the fast path; mixed pairs go through
// exact rational comparison so 1, 1.0 and decimal "1.00" coincide.
func numCompare(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil && b.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	ra, rb := a.rat(), b.rat()
	if ra != nil && rb != nil {
		return ra.Cmp(rb)
	}
	return strings.Compare(a.NumberText(), b.NumberText())
}

// rat returns the exact rational value of a number node, or nil when the
// node holds NaN, an infinity, or unparseable decimal text.
func (n *Node) rat() *big.Rat {
	switch {
	case n.Int64 != nil:
		return new(big.Rat).SetInt64(*n.Int64)
	case n.Float64 != nil:
		return new(big.Rat).SetFloat64(*n.Float64)
	default:
		r, ok := new(big.Rat).SetString(n.Decimal)
		if !ok {
			return nil
		}
		return r
	}
}

// NumberText returns the canonical literal text of a number node.
func (n *Node) NumberText() string {
	switch {
	case n.Int64 != nil:
		return strconv.FormatInt(*n.Int64, 10)
	case n.Float64 != nil:
		return strconv.FormatFloat(*n.Float64, 'g', -1, 64)
	default:
		return n.Decimal
	}
}

func opaqueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
