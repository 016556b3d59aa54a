package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jsonshape/jsonshape"
	"github.com/jsonshape/jsonshape/ir/dpath"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a document path", cli.ErrUsage)
	}
	path, err := dpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
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
		res, err := jsonshape.Get(doc, path)
		if err != nil {
			return fmt.Errorf("error resolving %s in %s: %w", path, arg, err)
		}
		if err := writeNode(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
