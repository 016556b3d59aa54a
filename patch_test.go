package jsonshape

import (
	"testing"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/jsonshape/jsonshape/encode"
	"github.com/jsonshape/jsonshape/ir"
)

func TestPatch(t *testing.T) {
	tests := []struct {
		name     string
		original string
		patch    string
		want     string
	}{
		{
			name:     "set and add",
			original: `{"a":1,"b":2}`,
			patch:    `{"b":3,"c":4}`,
			want:     `{"a":1,"b":3,"c":4}`,
		},
		{
			name:     "null deletes",
			original: `{"a":1,"b":2}`,
			patch:    `{"a":null}`,
			want:     `{"b":2}`,
		},
		{
			name:     "delete absent key is a no-op",
			original: `{"a":1}`,
			patch:    `{"zzz":null}`,
			want:     `{"a":1}`,
		},
		{
			name:     "nested recursion",
			original: `{"a":{"x":1,"y":2}}`,
			patch:    `{"a":{"y":9}}`,
			want:     `{"a":{"x":1,"y":9}}`,
		},
		{
			name:     "object patch against scalar starts empty",
			original: `5`,
			patch:    `{"a":1}`,
			want:     `{"a":1}`,
		},
		{
			name:     "non-object patch replaces wholesale",
			original: `{"a":1}`,
			patch:    `[1,2]`,
			want:     `[1,2]`,
		},
		{
			name:     "null patch is a literal replacement",
			original: `{"a":1}`,
			patch:    `null`,
			want:     `null`,
		},
		{
			name:     "case-insensitive key application",
			original: `{"Name":"Alice"}`,
			patch:    `{"name":"Bob"}`,
			want:     `{"Name":"Bob"}`,
		},
		{
			name:     "empty object patch changes nothing",
			original: `{"a":1}`,
			patch:    `{}`,
			want:     `{"a":1}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Patch(mustDecode(t, tt.original), mustDecode(t, tt.patch))
			if want := mustDecode(t, tt.want); !ir.Equal(got, want) {
				t.Errorf("got %s, want %s", encode.MustString(got), tt.want)
			}
		})
	}
}

func TestPatchDoesNotMutateOriginal(t *testing.T) {
	original := mustDecode(t, `{"a":{"b":1},"c":2}`)
	before := encode.MustString(original)
	Patch(original, mustDecode(t, `{"a":{"b":9},"c":null}`))
	if after := encode.MustString(original); after != before {
		t.Errorf("original mutated: %s -> %s", before, after)
	}
}

// Diff then Patch must reproduce updated exactly.
func TestDiffPatchRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{`{"a":1,"b":{"c":2,"d":3}}`, `{"a":1,"b":{"c":9},"e":[1,2]}`},
		{`{"Name":"Alice","Age":30,"City":"Boston"}`, `{"Name":"Alicia","Age":31}`},
		{`{"tags":["a","b"]}`, `{"tags":["b","a"]}`},
		{`{}`, `{"a":{"b":{"c":null}}}`},
		{`{"x":[1,2,3]}`, `{"x":"scalar now"}`},
		{`1`, `{"a":1}`},
	}
	for _, pair := range pairs {
		original, updated := mustDecode(t, pair[0]), mustDecode(t, pair[1])
		patch := Diff(original, updated)
		got := Patch(original, patch)
		if patch == nil {
			got = original
		}
		if !ir.Equal(got, updated) {
			t.Errorf("round trip %s -> %s produced %s",
				pair[0], pair[1], encode.MustString(got))
		}
	}
}

// Cross-check merge-patch semantics against the RFC 7386 implementation
// on fixtures without case folding or numeric variant concerns.
func TestPatchAgreesWithRFC7386(t *testing.T) {
	pairs := [][2]string{
		{`{"a":1,"b":2}`, `{"b":3,"c":4}`},
		{`{"a":{"x":1,"y":2},"b":[1,2]}`, `{"a":{"x":1},"b":[2,1],"c":"s"}`},
		{`{"a":1}`, `{}`},
		{`{}`, `{"a":{"b":"c"}}`},
	}
	for _, pair := range pairs {
		refPatch, err := jsonpatch.CreateMergePatch([]byte(pair[0]), []byte(pair[1]))
		if err != nil {
			t.Fatal(err)
		}
		refResult, err := jsonpatch.MergePatch([]byte(pair[0]), refPatch)
		if err != nil {
			t.Fatal(err)
		}

		original, updated := mustDecode(t, pair[0]), mustDecode(t, pair[1])
		patch := Diff(original, updated)
		got := Patch(original, patch)
		if patch == nil {
			got = original
		}
		want := mustDecode(t, string(refResult))
		if !ir.Equal(got, want) {
			t.Errorf("%s -> %s: got %s, reference %s",
				pair[0], pair[1], encode.MustString(got), refResult)
		}
		// our patch applied by the reference implementation must agree too
		ours, err := encode.Marshal(patch)
		if err != nil {
			t.Fatal(err)
		}
		crossResult, err := jsonpatch.MergePatch([]byte(pair[0]), ours)
		if err != nil {
			t.Fatal(err)
		}
		if cross := mustDecode(t, string(crossResult)); !ir.Equal(cross, updated) {
			t.Errorf("%s -> %s: reference applied our patch %s giving %s",
				pair[0], pair[1], ours, crossResult)
		}
	}
}
