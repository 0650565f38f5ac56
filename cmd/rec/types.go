package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/recordkit/container"
	"github.com/signadot/recordkit/schema"
)

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Types.Parse(cc, args)
	if err != nil {
		cfg.Types.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	reg, err := loadRegistry(cfg.Schema)
	if err != nil {
		return err
	}
	return listTypes(cc.Out, reg, args)
}

// listTypes writes the named types, or all types, with their fields.
func listTypes(w io.Writer, reg *schema.Registry, names []string) error {
	if len(names) == 0 {
		names = reg.Names()
	}
	for _, name := range names {
		t, err := reg.Type(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s:\n", t.Name()); err != nil {
			return err
		}
		for _, f := range t.Fields() {
			line := fmt.Sprintf("  %s: %s", f.Name, describeDefault(reg, t, f))
			if f.Unit != "" {
				line += " [" + f.Unit + "]"
			}
			if f.Description != "" {
				line += "  # " + f.Description
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func describeDefault(reg *schema.Registry, t *container.Type, f container.Field) string {
	switch d := f.Default.(type) {
	case *container.Record:
		return d.Type().Name()
	case *container.Map:
		if elem, ok := reg.Elem(t.Name(), f.Name); ok {
			return "map of " + elem.Name()
		}
		return "map"
	}
	return container.FormatValue(f.Default)
}
