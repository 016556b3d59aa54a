package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff   bool
	Patch  bool
	Merge  bool
	Lookup bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("JSHAPE_DEBUG_DIFF")
	d.Patch = boolEnv("JSHAPE_DEBUG_PATCH")
	d.Merge = boolEnv("JSHAPE_DEBUG_MERGE")
	d.Lookup = boolEnv("JSHAPE_DEBUG_LOOKUP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Merge() bool {
	return d.Merge
}
func Lookup() bool {
	return d.Lookup
}
