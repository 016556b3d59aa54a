package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jsonshape/jsonshape"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	original, err := readArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	updated, err := readArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		original, updated = updated, original
	}
	patch := jsonshape.Diff(original, updated)
	if patch == nil {
		// equal documents, nothing to say
		return nil
	}
	return writeNode(cfg.MainConfig, cc.Out, patch)
}
