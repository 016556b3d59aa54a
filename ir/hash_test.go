package ir

import "testing"

func TestHashAgreesWithEqual(t *testing.T) {
	tests := equalTests()
	for _, tt := range tests {
		if !tt.eq {
			continue
		}
		if tt.a.Hash() != tt.b.Hash() {
			t.Errorf("%s: equal nodes hash differently", tt.name)
		}
	}
}

func TestHashObjectOrderIndependent(t *testing.T) {
	a := obj(kv("x", FromInt(1)), kv("y", obj(kv("z", FromString("v")))))
	b := obj(kv("Y", obj(kv("Z", FromString("v")))), kv("X", FromInt(1)))
	// same case-insensitive content, different order and case
	if !Equal(a, b) {
		t.Fatal("fixtures should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("hash depends on key order or case")
	}
}

func TestHashSeparates(t *testing.T) {
	// not guaranteed in principle, but collisions across these trivial
	// fixtures would indicate a broken combine step
	hs := map[uint64]string{}
	for _, tt := range []struct {
		name string
		n    *Node
	}{
		{"null", Null()},
		{"false", FromBool(false)},
		{"zero", FromInt(0)},
		{"empty string", FromString("")},
		{"empty array", FromSlice(nil)},
		{"empty object", obj()},
	} {
		h := tt.n.Hash()
		if prev, ok := hs[h]; ok {
			t.Errorf("%s collides with %s", tt.name, prev)
		}
		hs[h] = tt.name
	}
}
