package main

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/recordkit/container"
	"github.com/signadot/recordkit/encode"
	"github.com/signadot/recordkit/schema"
)

//go:embed notebook.yaml
var notebookDoc []byte

func demo(cfg *DemoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Demo.Parse(cc, args)
	if err != nil {
		cfg.Demo.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: demo takes no arguments, got %v", cli.ErrUsage, args)
	}
	return runDemo(cfg.MainConfig, cc.Out)
}

func runDemo(cfg *MainConfig, w io.Writer) error {
	reg, err := schema.Parse(notebookDoc)
	if err != nil {
		return err
	}
	evType, err := reg.Type("EventContainer")
	if err != nil {
		return err
	}
	telType, ok := reg.Elem("EventContainer", "tel")
	if !ok {
		return fmt.Errorf("EventContainer.tel has no element type")
	}
	step := func(title string, v any, opts ...encode.EncodeOption) error {
		if _, err := fmt.Fprintf(w, "# %s\n", title); err != nil {
			return err
		}
		return encode.Encode(v, w, append(cfg.encOpts(w), opts...)...)
	}

	if err := listTypes(w, reg, nil); err != nil {
		return err
	}
	ev := evType.New()
	if err := step("defaults", ev); err != nil {
		return err
	}
	if err := ev.Set("event_id", int64(100)); err != nil {
		return err
	}
	tels, err := ev.Map("tel")
	if err != nil {
		return err
	}
	for _, id := range []int64{10, 5, 42} {
		tel := telType.New()
		if err := tel.Set("tel_id", id); err != nil {
			return err
		}
		tels.Set(id, tel)
	}
	if err := ev.Set("tels_with_data", tels.Keys()); err != nil {
		return err
	}
	tel5, err := tels.Get(int64(5))
	if err != nil {
		return err
	}
	nines := make([]float64, 10)
	for i := range nines {
		nines[i] = 9
	}
	if err := tel5.(*container.Record).Set("image", nines); err != nil {
		return err
	}
	if err := step("filled", ev); err != nil {
		return err
	}
	if err := step("leaf export", ev, encode.EncodeExport()); err != nil {
		return err
	}
	flat := encode.EncodeExport(container.Recursive(true), container.Flatten(true))
	if err := step("flattened export", ev, flat); err != nil {
		return err
	}
	ev.Reset()
	return step("after reset", ev)
}
