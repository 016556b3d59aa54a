package encode

import (
	"strconv"
	"strings"

	"github.com/jsonshape/jsonshape/gomap"
	"github.com/jsonshape/jsonshape/ir"
)

// sanitizeKeyVals maps each key through gomap.SanitizeName and resolves
// collisions (case-insensitive) with numeric suffixes in encounter order.
// An empty sanitized result becomes "Field".
func sanitizeKeyVals(kvs []ir.KeyVal) []ir.KeyVal {
	used := map[string]bool{}
	out := make([]ir.KeyVal, 0, len(kvs))
	for _, kv := range kvs {
		name := gomap.SanitizeName(kv.Key)
		if name == "" {
			name = "Field"
		}
		folded := strings.ToLower(name)
		if used[folded] {
			for i := 2; ; i++ {
				cand := name + strconv.Itoa(i)
				if !used[strings.ToLower(cand)] {
					name, folded = cand, strings.ToLower(cand)
					break
				}
			}
		}
		used[folded] = true
		out = append(out, ir.KeyVal{Key: name, Val: kv.Val})
	}
	return out
}
