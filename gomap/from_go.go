package gomap

import (
	"encoding/json"
	"math"
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/jsonshape/jsonshape/ir"
)

// FromGo normalizes an arbitrary Go value into a Node.  It is total:
// values with no canonical representation become opaque nodes rather
// than an error.
//
// nil, booleans, strings, all integer and float kinds, time.Time and
// json.Number map to their leaf nodes.  Slices and arrays map
// element-wise with nil elements as null.  Maps with string keys map to
// objects with keys in sorted order.  Structs map to objects honoring
// encoding/json field tags, in field declaration order.  Pointers and
// interfaces are dereferenced, nil ones becoming null.  A *ir.Node is
// passed through as-is (nil as null).
func FromGo(v any) *ir.Node {
	if v == nil {
		return ir.Null()
	}
	switch t := v.(type) {
	case *ir.Node:
		if t == nil {
			return ir.Null()
		}
		return t
	case ir.Node:
		return &t
	case time.Time:
		return ir.FromTime(t)
	case json.Number:
		return numberFromLiteral(t.String())
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) *ir.Node {
	switch rv.Kind() {
	case reflect.Bool:
		return ir.FromBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return ir.FromDecimal(strconv.FormatUint(u, 10))
		}
		return ir.FromInt(int64(u))
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(rv.Float())
	case reflect.String:
		return ir.FromString(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ir.Null()
		}
		return FromGo(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return ir.Null()
		}
		fallthrough
	case reflect.Array:
		elems := make([]*ir.Node, rv.Len())
		for i := range elems {
			elems[i] = fromReflect(rv.Index(i))
		}
		return ir.FromSlice(elems)
	case reflect.Map:
		return fromMap(rv)
	case reflect.Struct:
		return fromStruct(rv)
	}
	return ir.FromOpaque(rv.Interface())
}

func fromMap(rv reflect.Value) *ir.Node {
	if rv.IsNil() {
		return ir.Null()
	}
	if rv.Type().Key().Kind() != reflect.String {
		return ir.FromOpaque(rv.Interface())
	}
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)
	kvs := make([]ir.KeyVal, 0, len(keys))
	for _, k := range keys {
		kvs = append(kvs, ir.KeyVal{
			Key: k,
			Val: fromReflect(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))),
		})
	}
	return ir.FromKeyVals(kvs)
}

func fromStruct(rv reflect.Value) *ir.Node {
	if rv.Type() == reflect.TypeOf(time.Time{}) {
		return ir.FromTime(rv.Interface().(time.Time))
	}
	var kvs []ir.KeyVal
	for _, f := range fieldsOf(rv.Type()) {
		fv := rv.Field(f.index)
		if f.omitEmpty && fv.IsZero() {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: f.name, Val: fromReflect(fv)})
	}
	return ir.FromKeyVals(kvs)
}

func numberFromLiteral(s string) *ir.Node {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromInt(i)
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return ir.FromDecimal(s)
	}
	return ir.FromString(s)
}
