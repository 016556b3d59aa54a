package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/jsonshape/jsonshape/encode"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Wire  bool `cli:"name=wire desc='output in compact format'"`
	Sort  bool `cli:"name=sort desc='sort object keys in output'"`
	Color bool `cli:"name=color desc='colorize output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	var res []encode.EncodeOption
	if !cfg.Wire {
		res = append(res, encode.Indent("  "))
	}
	if cfg.Sort {
		res = append(res, encode.SortKeys(true))
	}
	return res
}

// colorOn reports whether human-facing output to w should be colored:
// forced by -color, otherwise only when w is a terminal.
func (cfg *MainConfig) colorOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Concat bool `cli:"name=concat desc='concatenate arrays instead of replacing'"`

	Merge *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ChangesConfig struct {
	*MainConfig
	JSON bool `cli:"name=a aliases=array desc='emit changes as a json array'"`

	Changes *cli.Command
}
