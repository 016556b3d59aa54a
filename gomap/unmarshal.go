package gomap

import (
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/jsonshape/jsonshape/ir"
)

// FromIR populates out, which must be a non-nil pointer, from n.  Object
// keys bind to struct fields by json tag, exact field name, or sanitized
// name, case-insensitively; unmatched keys are ignored.  A value that
// cannot be coerced to its target type fails with an *UnmarshalError
// naming the field path.
func FromIR(n *ir.Node, out any) error {
	return fromIR(n, out, false)
}

// FromIRSafe is FromIR except that coercion failures skip the field,
// leaving its current value, instead of failing.  Structural errors (out
// not a pointer) still fail.
func FromIRSafe(n *ir.Node, out any) error {
	return fromIR(n, out, true)
}

func fromIR(n *ir.Node, out any, safe bool) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return unmarshalErrf("", "target must be a non-nil pointer, got %T", out)
	}
	if n == nil {
		n = ir.Null()
	}
	return setValue(rv.Elem(), n, "", safe)
}

func setValue(rv reflect.Value, n *ir.Node, path string, safe bool) error {
	// node-typed targets take the node itself
	if rv.Type() == reflect.TypeOf((*ir.Node)(nil)) {
		rv.Set(reflect.ValueOf(n))
		return nil
	}
	if n.Type == ir.NullType {
		rv.SetZero()
		return nil
	}
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return setValue(rv.Elem(), n, path, safe)
	case reflect.Interface:
		if rv.NumMethod() == 0 {
			rv.Set(reflect.ValueOf(ToGo(n)))
			return nil
		}
		return coerceErr(rv, n, path, safe)
	case reflect.Bool:
		if n.Type != ir.BoolType {
			return coerceErr(rv, n, path, safe)
		}
		rv.SetBool(n.Bool)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := intValue(n)
		if !ok || rv.OverflowInt(i) {
			return coerceErr(rv, n, path, safe)
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, ok := intValue(n)
		if !ok || i < 0 || rv.OverflowUint(uint64(i)) {
			return coerceErr(rv, n, path, safe)
		}
		rv.SetUint(uint64(i))
		return nil
	case reflect.Float32, reflect.Float64:
		f, ok := floatValue(n)
		if !ok || rv.OverflowFloat(f) {
			return coerceErr(rv, n, path, safe)
		}
		rv.SetFloat(f)
		return nil
	case reflect.String:
		switch n.Type {
		case ir.StringType:
			rv.SetString(n.String)
		case ir.TimeType:
			rv.SetString(n.Time.Format(time.RFC3339Nano))
		default:
			return coerceErr(rv, n, path, safe)
		}
		return nil
	case reflect.Slice:
		if n.Type != ir.ArrayType {
			return coerceErr(rv, n, path, safe)
		}
		out := reflect.MakeSlice(rv.Type(), len(n.Values), len(n.Values))
		for i, v := range n.Values {
			if err := setValue(out.Index(i), v, childPath(path, strconv.Itoa(i)), safe); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil
	case reflect.Array:
		if n.Type != ir.ArrayType || len(n.Values) != rv.Len() {
			return coerceErr(rv, n, path, safe)
		}
		for i, v := range n.Values {
			if err := setValue(rv.Index(i), v, childPath(path, strconv.Itoa(i)), safe); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		return setMap(rv, n, path, safe)
	case reflect.Struct:
		return setStruct(rv, n, path, safe)
	}
	return coerceErr(rv, n, path, safe)
}

func setMap(rv reflect.Value, n *ir.Node, path string, safe bool) error {
	if n.Type != ir.ObjectType || rv.Type().Key().Kind() != reflect.String {
		return coerceErr(rv, n, path, safe)
	}
	out := reflect.MakeMapWithSize(rv.Type(), len(n.Fields))
	elemType := rv.Type().Elem()
	for i := range n.Fields {
		key := n.Fields[i].String
		elem := reflect.New(elemType).Elem()
		if err := setValue(elem, n.Values[i], childPath(path, key), safe); err != nil {
			return err
		}
		out.SetMapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()), elem)
	}
	rv.Set(out)
	return nil
}

func setStruct(rv reflect.Value, n *ir.Node, path string, safe bool) error {
	if rv.Type() == reflect.TypeOf(time.Time{}) {
		switch n.Type {
		case ir.TimeType:
			rv.Set(reflect.ValueOf(n.Time))
			return nil
		case ir.StringType:
			ts, err := time.Parse(time.RFC3339Nano, n.String)
			if err != nil {
				return coerceErr(rv, n, path, safe)
			}
			rv.Set(reflect.ValueOf(ts))
			return nil
		}
		return coerceErr(rv, n, path, safe)
	}
	if n.Type != ir.ObjectType {
		return coerceErr(rv, n, path, safe)
	}
	fields := fieldsOf(rv.Type())
	for i := range n.Fields {
		key := n.Fields[i].String
		f, ok := matchField(fields, key)
		if !ok {
			continue
		}
		if err := setValue(rv.Field(f.index), n.Values[i], childPath(path, f.goName), safe); err != nil {
			return err
		}
	}
	return nil
}

func intValue(n *ir.Node) (int64, bool) {
	if n.Type != ir.NumberType {
		return 0, false
	}
	switch {
	case n.Int64 != nil:
		return *n.Int64, true
	case n.Float64 != nil:
		f := *n.Float64
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	default:
		i, err := strconv.ParseInt(n.Decimal, 10, 64)
		return i, err == nil
	}
}

func floatValue(n *ir.Node) (float64, bool) {
	if n.Type != ir.NumberType {
		return 0, false
	}
	switch {
	case n.Int64 != nil:
		return float64(*n.Int64), true
	case n.Float64 != nil:
		return *n.Float64, true
	default:
		f, err := strconv.ParseFloat(n.Decimal, 64)
		return f, err == nil
	}
}

func coerceErr(rv reflect.Value, n *ir.Node, path string, safe bool) error {
	if safe {
		return nil
	}
	return unmarshalErrf(path, "cannot assign %s value to %s", n.Type, rv.Type())
}

func childPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
