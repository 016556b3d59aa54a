package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/jsonshape/jsonshape"
	"github.com/jsonshape/jsonshape/encode"
)

func changes(cfg *ChangesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Changes.Parse(cc, args)
	if err != nil {
		cfg.Changes.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: changes requires two arguments", cli.ErrUsage)
	}
	original, err := readArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	updated, err := readArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	cs := jsonshape.Changes(original, updated)
	if cfg.JSON {
		d, err := json.MarshalIndent(cs, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", d)
		return err
	}
	return writeChangeList(cfg, cc.Out, cs)
}

var changeColors = map[jsonshape.ChangeKind]*color.Color{
	jsonshape.Added:    color.New(color.FgGreen),
	jsonshape.Removed:  color.New(color.FgRed),
	jsonshape.Modified: color.New(color.FgYellow),
}

func writeChangeList(cfg *ChangesConfig, w io.Writer, cs []jsonshape.Change) error {
	useColor := cfg.colorOn(w)
	for _, c := range cs {
		line := changeLine(c)
		if useColor {
			if _, err := changeColors[c.Kind].Fprintln(w, line); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func changeLine(c jsonshape.Change) string {
	switch c.Kind {
	case jsonshape.Added:
		return fmt.Sprintf("A %s %s", c.Path, encode.MustString(c.New))
	case jsonshape.Removed:
		return fmt.Sprintf("R %s %s", c.Path, encode.MustString(c.Old))
	default:
		return fmt.Sprintf("M %s %s -> %s", c.Path,
			encode.MustString(c.Old), encode.MustString(c.New))
	}
}
