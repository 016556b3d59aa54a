package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsonshape/jsonshape/encode"
	"github.com/jsonshape/jsonshape/ir"
)

// readArg loads a document from a file path or stdin ("-").  YAML input
// is selected by -y or a .yaml/.yml extension, JSON otherwise.
func readArg(cfg *MainConfig, arg string) (*ir.Node, error) {
	var rd io.Reader
	if arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rd = f
	}
	d, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	n, err := decodeArg(cfg, arg, d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return n, nil
}

func decodeArg(cfg *MainConfig, arg string, d []byte) (*ir.Node, error) {
	if yamlIn(cfg, arg) {
		return encode.DecodeYAML(d)
	}
	return encode.Decode(d)
}

func yamlIn(cfg *MainConfig, arg string) bool {
	if cfg.Y {
		return true
	}
	if cfg.J {
		return false
	}
	return strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml")
}

func writeNode(cfg *MainConfig, w io.Writer, n *ir.Node) error {
	if cfg.Y {
		d, err := encode.MarshalYAML(n)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err = w.Write(d)
		return err
	}
	if err := encode.Encode(n, w, cfg.encOpts()...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
