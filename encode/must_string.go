package encode

import "github.com/jsonshape/jsonshape/ir"

// MustString renders n as compact JSON, panicking on failure.  Handy for
// debugging and tests.
func MustString(n *ir.Node) string {
	d, err := Marshal(n)
	if err != nil {
		panic(err)
	}
	return string(d)
}
