package encode

import (
	"github.com/goccy/go-yaml"

	"github.com/jsonshape/jsonshape/gomap"
	"github.com/jsonshape/jsonshape/ir"
)

// DecodeYAML parses YAML text into a Node by way of the generic Go value
// bridge.  Key order within mappings is not preserved; use Decode for
// JSON input when order matters.
func DecodeYAML(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return gomap.FromGo(v), nil
}

// MarshalYAML renders n as YAML text.
func MarshalYAML(n *ir.Node) ([]byte, error) {
	return yaml.Marshal(gomap.ToGo(n))
}
