package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"time"

	"github.com/jsonshape/jsonshape/ir"
)

// Decode parses JSON text into a Node, preserving object key order.
// Duplicate keys within an object (case-insensitive) collapse: the first
// occurrence fixes the key's case, the last value wins.
func Decode(data []byte, opts ...DecodeOption) (*ir.Node, error) {
	cfg := &decodeConfig{timestamps: true}
	for _, opt := range opts {
		opt(cfg)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := decodeValue(dec, cfg)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after top-level value")
	}
	return n, nil
}

func decodeValue(dec *json.Decoder, cfg *decodeConfig) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFrom(dec, tok, cfg)
}

func decodeFrom(dec *json.Decoder, tok json.Token, cfg *decodeConfig) (*ir.Node, error) {
	switch t := tok.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case json.Number:
		return numberNode(t), nil
	case string:
		if cfg.timestamps && looksLikeTimestamp(t) {
			if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
				return ir.FromTime(ts), nil
			}
		}
		return ir.FromString(t), nil
	case json.Delim:
		switch t {
		case '[':
			var elems []*ir.Node
			for dec.More() {
				e, err := decodeValue(dec, cfg)
				if err != nil {
					return nil, err
				}
				elems = append(elems, e)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return ir.FromSlice(elems), nil
		case '{':
			var kvs []ir.KeyVal
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %v, not a string", keyTok)
				}
				v, err := decodeValue(dec, cfg)
				if err != nil {
					return nil, err
				}
				kvs = append(kvs, ir.KeyVal{Key: key, Val: v})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			if cfg.sanitizeKeys {
				kvs = sanitizeKeyVals(kvs)
			}
			return ir.FromKeyVals(kvs), nil
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// numberNode classifies a literal: int64 when it fits, float64 when the
// float round-trips exactly, exact-decimal text otherwise.
func numberNode(num json.Number) *ir.Node {
	s := num.String()
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromInt(i)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ir.FromDecimal(s)
	}
	if lit, ok := new(big.Rat).SetString(s); ok {
		if asFloat := new(big.Rat).SetFloat64(f); asFloat == nil || lit.Cmp(asFloat) != 0 {
			return ir.FromDecimal(s)
		}
	}
	return ir.FromFloat(f)
}

// cheap shape check before paying for time.Parse
func looksLikeTimestamp(s string) bool {
	return len(s) >= 20 && s[4] == '-' && s[7] == '-' && s[10] == 'T'
}
