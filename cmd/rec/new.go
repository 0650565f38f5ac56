package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/recordkit/encode"
)

func newRecord(cfg *NewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.New.Parse(cc, args)
	if err != nil {
		cfg.New.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runNew(cfg, cc.Out, args)
}

func runNew(cfg *NewConfig, w io.Writer, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: new requires a type and at most one data document, got %v", cli.ErrUsage, args)
	}
	reg, err := loadRegistry(cfg.Schema)
	if err != nil {
		return err
	}
	file := ""
	if len(args) == 2 {
		file = args[1]
	}
	rec, err := loadRecord(reg, args[0], file)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(w)
	if xOpts := cfg.exportOpts(); xOpts != nil {
		opts = append(opts, encode.EncodeExport(xOpts...))
	}
	if err := encode.Encode(rec, w, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", args[0], err)
	}
	return nil
}
