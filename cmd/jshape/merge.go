package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jsonshape/jsonshape"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires at least two arguments", cli.ErrUsage)
	}
	res, err := readArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		right, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res = jsonshape.Merge(res, right, jsonshape.ConcatArrays(cfg.Concat))
	}
	return writeNode(cfg.MainConfig, cc.Out, res)
}
