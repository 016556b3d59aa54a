package jsonshape

import (
	"errors"
	"testing"

	"github.com/jsonshape/jsonshape/ir"
	"github.com/jsonshape/jsonshape/ir/dpath"
)

func TestLookup(t *testing.T) {
	root := mustDecode(t, `{"a":[1,2,3],"b":{"C":{"d":"deep"}},"":"unreachable"}`)
	tests := []struct {
		path      string
		found     bool
		wantInt   int64
		wantStr   string
		wantArray bool
	}{
		{path: "/", found: true},
		{path: "", found: true},
		{path: "/a", found: true, wantArray: true},
		{path: "/a[0]", found: true, wantInt: 1},
		{path: "/a[2]", found: true, wantInt: 3},
		{path: "/a[3]", found: false},
		{path: "/a[5]", found: false},
		{path: "/b/c/d", found: true, wantStr: "deep"},
		{path: "/B/C/D", found: true, wantStr: "deep"},
		{path: "/b/x", found: false},
		{path: "/missing", found: false},
		{path: "/a/b", found: false},
		{path: "[0]", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v, ok, err := LookupString(root, tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if !ok {
				return
			}
			switch {
			case tt.wantArray:
				if v.Type != ir.ArrayType {
					t.Errorf("type = %s", v.Type)
				}
			case tt.wantStr != "":
				if v.Type != ir.StringType || v.String != tt.wantStr {
					t.Errorf("got %v", v)
				}
			case tt.wantInt != 0:
				if v.Int64 == nil || *v.Int64 != tt.wantInt {
					t.Errorf("got %v", v)
				}
			}
		})
	}
}

func TestLookupStringMalformed(t *testing.T) {
	root := mustDecode(t, `{"a":1}`)
	_, _, err := LookupString(root, "/a[")
	if !errors.Is(err, dpath.ErrInvalidPath) {
		t.Errorf("err = %v, want ErrInvalidPath", err)
	}
}

func TestGet(t *testing.T) {
	root := mustDecode(t, `{"a":[1]}`)
	v, err := Get(root, dpath.MustParse("/a[0]"))
	if err != nil || v.Int64 == nil || *v.Int64 != 1 {
		t.Fatalf("got %v, %v", v, err)
	}
	_, err = Get(root, dpath.MustParse("/nope"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	_, err = GetString(root, "/a[")
	if !errors.Is(err, dpath.ErrInvalidPath) {
		t.Errorf("err = %v, want ErrInvalidPath", err)
	}
}

func TestValidString(t *testing.T) {
	root := mustDecode(t, `{"a":[1,2,3]}`)
	tests := []struct {
		path string
		want bool
	}{
		{"/a[1]", true},
		{"/a[5]", false},
		{"/a[", false}, // malformed is false, not an error
		{"/", true},
	}
	for _, tt := range tests {
		if got := ValidString(root, tt.path); got != tt.want {
			t.Errorf("ValidString(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLookupNilChildValues(t *testing.T) {
	holey := holeyObject("a")
	v, ok := Lookup(holey, dpath.MustParse("/a"))
	if !ok || v == nil || v.Type != ir.NullType {
		t.Errorf("nil value resolves as null: %v, %v", v, ok)
	}
	if _, ok := Lookup(holey, dpath.MustParse("/a/b")); ok {
		t.Error("null has no children")
	}

	holeyArr := &ir.Node{Type: ir.ArrayType, Values: []*ir.Node{nil}}
	v, ok = Lookup(holeyArr, dpath.MustParse("[0]"))
	if !ok || v == nil || v.Type != ir.NullType {
		t.Errorf("nil element resolves as null: %v, %v", v, ok)
	}
	if _, ok := Lookup(holeyArr, dpath.MustParse("[0]/x")); ok {
		t.Error("null element has no children")
	}
}

func TestLookupNilRoot(t *testing.T) {
	v, ok := Lookup(nil, dpath.Root())
	if !ok || v.Type != ir.NullType {
		t.Errorf("nil root resolves to null at the root path, got %v, %v", v, ok)
	}
	if _, ok := Lookup(nil, dpath.MustParse("/a")); ok {
		t.Error("nil root has no children")
	}
}
