package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/recordkit/encode"
	"github.com/signadot/recordkit/patch"
)

func recPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runPatch(cfg, cc.Out, args)
}

func runPatch(cfg *PatchConfig, w io.Writer, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: patch requires a type, a patch and at most one data document, got %v", cli.ErrUsage, args)
	}
	reg, err := loadRegistry(cfg.Schema)
	if err != nil {
		return err
	}
	p, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	file := ""
	if len(args) == 3 {
		file = args[2]
	}
	rec, err := loadRecord(reg, args[0], file)
	if err != nil {
		return err
	}
	apply := patch.JSON
	if cfg.Merge {
		apply = patch.Merge
	}
	if err := apply(rec, p, patch.WithElem(reg.Elem)); err != nil {
		return fmt.Errorf("error applying %s: %w", args[1], err)
	}
	return encode.Encode(rec, w, cfg.encOpts(w)...)
}
