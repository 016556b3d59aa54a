package jsonshape

import (
	"encoding/json"
	"fmt"

	"github.com/jsonshape/jsonshape/encode"
	"github.com/jsonshape/jsonshape/ir"
	"github.com/jsonshape/jsonshape/ir/dpath"
)

type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Modified
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "Added"
	case Removed:
		return "Removed"
	case Modified:
		return "Modified"
	}
	return "<unknown kind>"
}

func (k ChangeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ChangeKind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "Added":
		*k = Added
	case "Removed":
		*k = Removed
	case "Modified":
		*k = Modified
	default:
		return fmt.Errorf("unrecognized change kind %q", d)
	}
	return nil
}

// Change is one reported difference at a specific path.  Old is nil for
// Added entries and New is nil for Removed ones.
type Change struct {
	Path dpath.Path
	Old  *ir.Node
	New  *ir.Node
	Kind ChangeKind
}

// MarshalJSON renders the wire shape
// {"path": ..., "oldValue": ..., "newValue": ..., "kind": ...}
// with absent sides omitted.
func (c Change) MarshalJSON() ([]byte, error) {
	out := struct {
		Path     string          `json:"path"`
		OldValue json.RawMessage `json:"oldValue,omitempty"`
		NewValue json.RawMessage `json:"newValue,omitempty"`
		Kind     ChangeKind      `json:"kind"`
	}{Path: c.Path.String(), Kind: c.Kind}
	var err error
	if c.Old != nil {
		if out.OldValue, err = encode.Marshal(c.Old); err != nil {
			return nil, err
		}
	}
	if c.New != nil {
		if out.NewValue, err = encode.Marshal(c.New); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

// Changes enumerates every difference between original and updated as an
// explicit (path, old, new, kind) record, independent of the merge-patch
// format — deletions are reported as Removed entries rather than nulls.
//
// Equal subtrees contribute nothing.  When exactly one side is null, the
// non-null value is reported as one Added (old side null) or Removed (new
// side null) entry.  Two objects recurse per key over the
// case-insensitive union of keys.  Arrays are never compared element-wise:
// any array on either side yields a single Modified entry holding full
// old/new snapshots, so index segments never occur in reported paths.
// Element alignment under reordering is ambiguous, which is why that
// asymmetry with the Path type is deliberate.
//
// Entries are grouped by shared path prefix; the relative order of
// sibling keys is not part of the contract.
func Changes(original, updated *ir.Node) []Change {
	var out []Change
	walkChanges(dpath.Root(), norm(original), norm(updated), &out)
	return out
}

func walkChanges(p dpath.Path, a, b *ir.Node, out *[]Change) {
	a, b = norm(a), norm(b)
	if ir.Equal(a, b) {
		return
	}
	aNull := a.Type == ir.NullType
	bNull := b.Type == ir.NullType
	switch {
	case aNull && !bNull:
		*out = append(*out, Change{Path: p, New: b, Kind: Added})
	case bNull && !aNull:
		*out = append(*out, Change{Path: p, Old: a, Kind: Removed})
	case a.Type == ir.ObjectType && b.Type == ir.ObjectType:
		walkObjectChanges(p, a, b, out)
	default:
		// arrays (on either side), primitives, and type changes are
		// all atomic
		*out = append(*out, Change{Path: p, Old: a, New: b, Kind: Modified})
	}
}

func walkObjectChanges(p dpath.Path, a, b *ir.Node, out *[]Change) {
	for i := range a.Fields {
		key := a.Fields[i].String
		child, err := p.Property(key)
		if err != nil {
			// empty keys are representable but not addressable
			continue
		}
		bv, ok := b.Get(key)
		if !ok {
			bv = ir.Null()
		}
		// an absent key is null, so a null value dropped from b is no change
		walkChanges(child, a.Values[i], bv, out)
	}
	for i := range b.Fields {
		key := b.Fields[i].String
		if _, ok := a.Get(key); ok {
			continue
		}
		child, err := p.Property(key)
		if err != nil {
			continue
		}
		walkChanges(child, ir.Null(), b.Values[i], out)
	}
}
