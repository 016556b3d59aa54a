package ir

import (
	"testing"
	"time"
)

func obj(kvs ...KeyVal) *Node { return FromKeyVals(kvs) }
func kv(k string, v *Node) KeyVal {
	return KeyVal{Key: k, Val: v}
}

type equalTest struct {
	name string
	a, b *Node
	eq   bool
}

func equalTests() []equalTest {
	t0 := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	fn := func() {}
	return []equalTest{
		{"null null", Null(), Null(), true},
		{"null nil", Null(), nil, true},
		{"null string", Null(), FromString(""), false},
		{"bool", FromBool(true), FromBool(true), true},
		{"bool ne", FromBool(true), FromBool(false), false},
		{"int int", FromInt(30), FromInt(30), true},
		{"int float", FromInt(1), FromFloat(1.0), true},
		{"int decimal", FromInt(1), FromDecimal("1.00"), true},
		{"float decimal", FromFloat(0.5), FromDecimal("0.5"), true},
		{"decimal precision", FromDecimal("0.1000000000000000001"), FromFloat(0.1), false},
		{"int ne", FromInt(1), FromInt(2), false},
		{"string", FromString("x"), FromString("x"), true},
		{"string case", FromString("x"), FromString("X"), false},
		{"time", FromTime(t0), FromTime(t0.In(time.FixedZone("z", 3600))), true},
		{"time ne", FromTime(t0), FromTime(t0.Add(time.Second)), false},
		{"time vs string", FromTime(t0), FromString(t0.Format(time.RFC3339)), false},
		{
			"object order independent",
			obj(kv("a", FromInt(1)), kv("b", FromInt(2))),
			obj(kv("b", FromInt(2)), kv("a", FromInt(1))),
			true,
		},
		{
			"object key case insensitive",
			obj(kv("Name", FromString("v"))),
			obj(kv("name", FromString("v"))),
			true,
		},
		{
			"object extra key",
			obj(kv("a", FromInt(1))),
			obj(kv("a", FromInt(1)), kv("b", FromInt(2))),
			false,
		},
		{
			"array positional",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(2), FromInt(1)}),
			false,
		},
		{
			"array equal",
			FromSlice([]*Node{FromInt(1), FromString("x")}),
			FromSlice([]*Node{FromInt(1), FromString("x")}),
			true,
		},
		{"opaque identity", FromOpaque(fn), FromOpaque(fn), false},
		{"opaque comparable", FromOpaque(complex(1, 2)), FromOpaque(complex(1, 2)), true},
		{"opaque vs null", FromOpaque(nil), Null(), false},
	}
}

func TestEqual(t *testing.T) {
	for _, tt := range equalTests() {
		if got := Equal(tt.a, tt.b); got != tt.eq {
			t.Errorf("%s: Equal = %v, want %v", tt.name, got, tt.eq)
		}
		if got := Equal(tt.b, tt.a); got != tt.eq {
			t.Errorf("%s: Equal not symmetric", tt.name)
		}
	}
}

func TestEqualSelf(t *testing.T) {
	for _, tt := range equalTests() {
		if !Equal(tt.a, tt.a) {
			t.Errorf("%s: Equal(x, x) = false", tt.name)
		}
	}
}

func TestCompareTotalOrder(t *testing.T) {
	ordered := []*Node{
		Null(),
		FromBool(false),
		FromBool(true),
		FromInt(-1),
		FromFloat(0.5),
		FromDecimal("2"),
		FromTime(time.Unix(0, 0)),
		FromString("a"),
		FromString("b"),
		FromSlice(nil),
		FromSlice([]*Node{FromInt(1)}),
		obj(),
		obj(kv("a", FromInt(1))),
	}
	for i := range ordered {
		for j := range ordered {
			c := Compare(ordered[i], ordered[j])
			switch {
			case i == j && c != 0:
				t.Errorf("Compare(%d,%d) = %d, want 0", i, j, c)
			case i < j && c >= 0:
				t.Errorf("Compare(%d,%d) = %d, want < 0", i, j, c)
			case i > j && c <= 0:
				t.Errorf("Compare(%d,%d) = %d, want > 0", i, j, c)
			}
		}
	}
}

func TestCompareObjectsByFoldedKey(t *testing.T) {
	a := obj(kv("B", FromInt(1)), kv("a", FromInt(1)))
	b := obj(kv("a", FromInt(1)), kv("b", FromInt(1)))
	if c := Compare(a, b); c != 0 {
		t.Errorf("Compare = %d, want 0", c)
	}
}
