package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/recordkit/encode"
	"github.com/signadot/recordkit/eval"
)

func recEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runEval(cfg, cc.Out, args)
}

func runEval(cfg *EvalConfig, w io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: eval requires a type and an expression, got %v", cli.ErrUsage, args)
	}
	reg, err := loadRegistry(cfg.Schema)
	if err != nil {
		return err
	}
	prg, err := eval.Compile(args[1])
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", args[1], err)
	}
	files := args[2:]
	if len(files) == 0 {
		files = []string{""}
	}
	for i, file := range files {
		rec, err := loadRecord(reg, args[0], file)
		if err != nil {
			return err
		}
		res, err := prg.Run(rec)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
		if err := encode.Encode(res, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}
