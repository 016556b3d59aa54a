package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/jsonshape/jsonshape"
	"github.com/jsonshape/jsonshape/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	if cfg.String && cfg.File {
		return fmt.Errorf("%w: at most one of -s -f", cli.ErrUsage)
	}
	p, err := patchArg(cfg, args[0])
	if err != nil {
		return err
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res := jsonshape.Patch(doc, p)
		if err := writeNode(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

// patchArg resolves the patch argument: a literal with -s, a file with
// -f, and otherwise a file when one exists at that path, a literal when
// not.
func patchArg(cfg *PatchConfig, arg string) (*ir.Node, error) {
	if cfg.String {
		return decodeArg(cfg.MainConfig, "", []byte(arg))
	}
	if cfg.File {
		return readArg(cfg.MainConfig, arg)
	}
	if fileExists(arg) {
		return readArg(cfg.MainConfig, arg)
	}
	return decodeArg(cfg.MainConfig, "", []byte(arg))
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
