package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/recordkit/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	differs, err := runDiff(cfg, cc.Out, args)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// runDiff writes the differences between two data documents of one type
// and reports whether there were any.
func runDiff(cfg *DiffConfig, w io.Writer, args []string) (bool, error) {
	if len(args) != 3 {
		return false, fmt.Errorf("%w: diff requires a type and 2 data documents, got %v", cli.ErrUsage, args)
	}
	reg, err := loadRegistry(cfg.Schema)
	if err != nil {
		return false, err
	}
	a, err := loadRecord(reg, args[0], args[1])
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	b, err := loadRecord(reg, args[0], args[2])
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", args[2], err)
	}
	if cfg.Text {
		d := libdiff.Text(a, b)
		_, err := io.WriteString(w, d)
		return d != "", err
	}
	changes, err := libdiff.Diff(a, b)
	if err != nil {
		return false, err
	}
	for _, c := range changes {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return false, err
		}
	}
	if len(changes) > 0 {
		theLog.Info("records differ", "changes", len(changes))
	}
	return len(changes) > 0, nil
}
