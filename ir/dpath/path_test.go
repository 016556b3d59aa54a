package dpath

import (
	"errors"
	"testing"
)

func build(t *testing.T, steps ...any) Path {
	t.Helper()
	p := Root()
	var err error
	for _, st := range steps {
		switch v := st.(type) {
		case string:
			p, err = p.Property(v)
		case int:
			p, err = p.Index(v)
		default:
			t.Fatalf("bad step %v", st)
		}
		if err != nil {
			t.Fatalf("building with %v: %v", st, err)
		}
	}
	return p
}

func TestString(t *testing.T) {
	tests := []struct {
		steps []any
		want  string
	}{
		{nil, "/"},
		{[]any{"user"}, "/user"},
		{[]any{"user", "orders", 0, "id"}, "/user/orders[0]/id"},
		{[]any{"a", 0, 1, "b"}, "/a[0][1]/b"},
	}
	for _, tt := range tests {
		p := build(t, tt.steps...)
		if got := p.String(); got != tt.want {
			t.Errorf("steps %v: got %q, want %q", tt.steps, got, tt.want)
		}
	}
}

func TestBuildersAreImmutable(t *testing.T) {
	base := build(t, "a")
	left, err := base.Property("b")
	if err != nil {
		t.Fatal(err)
	}
	right, err := base.Index(7)
	if err != nil {
		t.Fatal(err)
	}
	if base.String() != "/a" {
		t.Errorf("receiver changed: %q", base.String())
	}
	if left.String() != "/a/b" || right.String() != "/a[7]" {
		t.Errorf("got %q and %q", left.String(), right.String())
	}
}

func TestInvalidBuilders(t *testing.T) {
	if _, err := Root().Property(""); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("empty property: %v", err)
	}
	if _, err := Root().Property("a/b"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("slash in property: %v", err)
	}
	if _, err := Root().Property("a[0]"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("bracket in property: %v", err)
	}
	if _, err := Root().Index(-1); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("negative index: %v", err)
	}
}

func TestEqualAndHash(t *testing.T) {
	a := build(t, "user", "orders", 0, "id")
	b := MustParse("/user/orders[0]/id")
	c := build(t, "user", "orders", 1, "id")

	if !a.Equal(b) {
		t.Error("built and parsed paths should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal paths should hash equally")
	}
	if a.Equal(c) {
		t.Error("distinct indexes should differ")
	}
	if a.Equal(build(t, "user", "orders")) {
		t.Error("prefix should not equal the longer path")
	}

	// usable as map keys via Hash
	m := map[uint64]Path{a.Hash(): a}
	if _, ok := m[b.Hash()]; !ok {
		t.Error("hash lookup of an equal path failed")
	}
}

func TestSegmentsCopy(t *testing.T) {
	p := build(t, "a", 0)
	segs := p.Segments()
	if len(segs) != 2 || !segs[0].IsField() || !segs[1].IsIndex() {
		t.Fatalf("segments: %v", segs)
	}
	name := "z"
	segs[0] = Segment{Field: &name}
	if p.String() != "/a[0]" {
		t.Error("Segments aliases internal storage")
	}
}
