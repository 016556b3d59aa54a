package dpath

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/maphash"
	"strconv"
	"strings"
)

// ErrInvalidPath reports a malformed path string, an empty property name,
// or a negative index.
var ErrInvalidPath = errors.New("invalid path")

// Segment is one step of a Path: exactly one of Field or Index is set.
type Segment struct {
	Field *string
	Index *int
}

func (s Segment) IsField() bool { return s.Field != nil }
func (s Segment) IsIndex() bool { return s.Index != nil }

// String returns the segment's contribution to the path string: "/name"
// for a property, "[i]" for an index.
func (s Segment) String() string {
	if s.Field != nil {
		return "/" + *s.Field
	}
	if s.Index != nil {
		return "[" + strconv.Itoa(*s.Index) + "]"
	}
	return ""
}

// Path is an immutable sequence of segments.  The zero value is the root.
type Path struct {
	segs []Segment
}

// Root returns the empty path, rendered as "/".
func Root() Path {
	return Path{}
}

// Property returns a new path with a property segment appended.  The
// receiver is unchanged.  Empty names and names containing '/' or '['
// cannot round-trip through the string form and are rejected with
// ErrInvalidPath.
func (p Path) Property(name string) (Path, error) {
	if name == "" {
		return Path{}, fmt.Errorf("%w: empty property name", ErrInvalidPath)
	}
	if strings.ContainsAny(name, "/[") {
		return Path{}, fmt.Errorf("%w: property name %q contains a path delimiter", ErrInvalidPath, name)
	}
	return p.grow(Segment{Field: &name}), nil
}

// Index returns a new path with an index segment appended.  The receiver
// is unchanged.  Negative indexes are rejected with ErrInvalidPath.
func (p Path) Index(i int) (Path, error) {
	if i < 0 {
		return Path{}, fmt.Errorf("%w: negative index %d", ErrInvalidPath, i)
	}
	return p.grow(Segment{Index: &i}), nil
}

// grow copies, never aliases: two paths built from the same prefix must
// not see each other's appends.
func (p Path) grow(s Segment) Path {
	segs := make([]Segment, len(p.segs)+1)
	copy(segs, p.segs)
	segs[len(p.segs)] = s
	return Path{segs: segs}
}

func (p Path) IsRoot() bool { return len(p.segs) == 0 }
func (p Path) Len() int     { return len(p.segs) }

// At returns the i-th segment.
func (p Path) At(i int) Segment { return p.segs[i] }

// Segments returns a copy of the segment sequence.
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.segs))
	copy(out, p.segs)
	return out
}

// String renders the canonical form: "/" for the root, otherwise the
// concatenation of every segment's string with no extra separators.
func (p Path) String() string {
	if len(p.segs) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range p.segs {
		b.WriteString(s.String())
	}
	return b.String()
}

// Equal reports whether two paths have the same segment sequence.
func (p Path) Equal(o Path) bool {
	if len(p.segs) != len(o.segs) {
		return false
	}
	for i := range p.segs {
		a, b := p.segs[i], o.segs[i]
		if (a.Field == nil) != (b.Field == nil) {
			return false
		}
		if a.Field != nil {
			if *a.Field != *b.Field {
				return false
			}
			continue
		}
		if *a.Index != *b.Index {
			return false
		}
	}
	return true
}

var pathSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the segment sequence, stable within a
// process, so independently built or parsed paths denoting the same
// address collide deliberately.
func (p Path) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(pathSeed)
	var b [8]byte
	for _, s := range p.segs {
		if s.Field != nil {
			h.WriteByte(0)
			h.WriteString(*s.Field)
			continue
		}
		h.WriteByte(1)
		binary.LittleEndian.PutUint64(b[:], uint64(*s.Index))
		h.Write(b[:])
	}
	return h.Sum64()
}
