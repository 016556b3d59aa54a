// Package dpath implements immutable, structurally comparable addresses
// into a value graph.
//
// A Path is an ordered sequence of segments, each a property name or a
// non-negative array index.  Paths render to and parse from a compact
// string form:
//
//	/                    root
//	/user/orders[0]/id   property "user", property "orders", index 0,
//	                     property "id"
//
// Property names exclude '/' and '['; indexes are decimal digits.  Paths
// carry no reference to any value and are safe to share and to use as map
// keys via Hash or String.
package dpath
