package ir

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"strings"
)

// hashSeed is shared so hashes are stable within a process, which is all
// map-key usage needs.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash consistent with Equal: equal nodes hash
// equally.  Object entries are combined order-independently over folded
// keys, and numbers hash their exact rational value so equal numbers of
// different variants coincide.
func (n *Node) Hash() uint64 {
	n = orNull(n)
	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type))
	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		if r := n.rat(); r != nil {
			h.WriteString(r.RatString())
		} else {
			h.WriteString(n.NumberText())
		}
	case TimeType:
		var b [12]byte
		binary.LittleEndian.PutUint64(b[:8], uint64(n.Time.Unix()))
		binary.LittleEndian.PutUint32(b[8:], uint32(n.Time.Nanosecond()))
		h.Write(b[:])
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		var b [8]byte
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		// key order must not affect the hash, so entry hashes are
		// xor-combined rather than streamed.
		var sum uint64
		for i, field := range n.Fields {
			var eh maphash.Hash
			eh.SetSeed(hashSeed)
			eh.WriteString(strings.ToLower(field.String))
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			eh.Write(b[:])
			sum ^= eh.Sum64()
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	case OpaqueType:
		h.WriteString(fmt.Sprint(n.Opaque))
	}
	return h.Sum64()
}
