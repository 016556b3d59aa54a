package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jsonshape/jsonshape/ir"
)

// Encode writes n as JSON text.  Insertion order of object keys is kept
// unless SortKeys is set; exact-decimal numbers are written verbatim.
func Encode(n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	cfg := &encodeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	e := &encoder{w: w, cfg: cfg}
	if n == nil {
		n = ir.Null()
	}
	return e.encode(n, 0)
}

// Marshal is Encode into a byte slice.
func Marshal(n *ir.Node, opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(n, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type encoder struct {
	w   io.Writer
	cfg *encodeConfig
}

func (e *encoder) encode(n *ir.Node, depth int) error {
	if n == nil {
		n = ir.Null()
	}
	switch n.Type {
	case ir.NullType:
		return e.writeString("null")
	case ir.BoolType:
		return e.writeString(strconv.FormatBool(n.Bool))
	case ir.NumberType:
		return e.writeString(numberText(n))
	case ir.TimeType:
		return e.writeString(strconv.Quote(n.Time.Format(time.RFC3339Nano)))
	case ir.StringType:
		return e.writeQuoted(n.String)
	case ir.ArrayType:
		return e.encodeArray(n, depth)
	case ir.ObjectType:
		return e.encodeObject(n, depth)
	case ir.OpaqueType:
		d, err := json.Marshal(n.Opaque)
		if err != nil {
			return fmt.Errorf("opaque value: %w", err)
		}
		_, err = e.w.Write(d)
		return err
	}
	return fmt.Errorf("cannot encode node of type %s", n.Type)
}

func (e *encoder) encodeArray(n *ir.Node, depth int) error {
	if len(n.Values) == 0 {
		return e.writeString("[]")
	}
	if err := e.writeString("["); err != nil {
		return err
	}
	for i, v := range n.Values {
		if i > 0 {
			if err := e.writeString(","); err != nil {
				return err
			}
		}
		if err := e.newlineIndent(depth + 1); err != nil {
			return err
		}
		if err := e.encode(v, depth+1); err != nil {
			return err
		}
	}
	if err := e.newlineIndent(depth); err != nil {
		return err
	}
	return e.writeString("]")
}

func (e *encoder) encodeObject(n *ir.Node, depth int) error {
	if len(n.Fields) == 0 {
		return e.writeString("{}")
	}
	order := make([]int, len(n.Fields))
	for i := range order {
		order[i] = i
	}
	if e.cfg.sortKeys {
		sortKeyOrder(n, order)
	}
	if err := e.writeString("{"); err != nil {
		return err
	}
	for pos, i := range order {
		if pos > 0 {
			if err := e.writeString(","); err != nil {
				return err
			}
		}
		if err := e.newlineIndent(depth + 1); err != nil {
			return err
		}
		if err := e.writeQuoted(n.Fields[i].String); err != nil {
			return err
		}
		sep := ":"
		if e.cfg.indent != "" {
			sep = ": "
		}
		if err := e.writeString(sep); err != nil {
			return err
		}
		if err := e.encode(n.Values[i], depth+1); err != nil {
			return err
		}
	}
	if err := e.newlineIndent(depth); err != nil {
		return err
	}
	return e.writeString("}")
}

func (e *encoder) newlineIndent(depth int) error {
	if e.cfg.indent == "" {
		return nil
	}
	return e.writeString("\n" + strings.Repeat(e.cfg.indent, depth))
}

func (e *encoder) writeString(s string) error {
	_, err := io.WriteString(e.w, s)
	return err
}

func (e *encoder) writeQuoted(s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = e.w.Write(d)
	return err
}

func numberText(n *ir.Node) string {
	switch {
	case n.Int64 != nil:
		return strconv.FormatInt(*n.Int64, 10)
	case n.Float64 != nil:
		return strconv.FormatFloat(*n.Float64, 'g', -1, 64)
	default:
		return n.Decimal
	}
}

func sortKeyOrder(n *ir.Node, order []int) {
	slices.SortStableFunc(order, func(a, b int) int {
		return strings.Compare(
			strings.ToLower(n.Fields[a].String),
			strings.ToLower(n.Fields[b].String))
	})
}
