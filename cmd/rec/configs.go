package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/recordkit/container"
	"github.com/signadot/recordkit/encode"
	"github.com/signadot/recordkit/format"
	"github.com/signadot/recordkit/schema"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	T bool `cli:"name=t aliases=text desc='output text'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	var f format.Format
	switch {
	case cfg.T:
		f = format.TextFormat
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return res
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func loadRegistry(path string) (*schema.Registry, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: -s schema is required", cli.ErrUsage)
	}
	return schema.ParseFile(path)
}

// loadRecord decodes the named type from file, or instantiates its
// defaults when file is "".
func loadRecord(reg *schema.Registry, typeName, file string) (*container.Record, error) {
	if file == "" {
		t, err := reg.Type(typeName)
		if err != nil {
			return nil, err
		}
		return t.New(), nil
	}
	if file == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return reg.Decode(typeName, d)
	}
	return reg.DecodeFile(typeName, file)
}

type TypesConfig struct {
	*MainConfig
	Schema string `cli:"name=s aliases=schema desc='type document (yaml)'"`

	Types *cli.Command
}

type NewConfig struct {
	*MainConfig
	Schema string `cli:"name=s aliases=schema desc='type document (yaml)'"`

	Recursive bool   `cli:"name=r desc='export nested records and maps'"`
	Flatten   bool   `cli:"name=f desc='flatten the export (implies -r)'"`
	Sep       string `cli:"name=sep desc='separator of flattened keys'"`

	New *cli.Command
}

func (cfg *NewConfig) exportOpts() []container.ExportOption {
	if !cfg.Recursive && !cfg.Flatten {
		return nil
	}
	opts := []container.ExportOption{container.Recursive(true), container.Flatten(cfg.Flatten)}
	if cfg.Sep != "" {
		opts = append(opts, container.Separator(cfg.Sep))
	}
	return opts
}

type EvalConfig struct {
	*MainConfig
	Schema string `cli:"name=s aliases=schema desc='type document (yaml)'"`

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Schema string `cli:"name=s aliases=schema desc='type document (yaml)'"`

	Merge bool `cli:"name=merge desc='the patch is a json merge patch'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Schema string `cli:"name=s aliases=schema desc='type document (yaml)'"`

	Text bool `cli:"name=text desc='line diff of the rendered records'"`

	Diff *cli.Command
}

type DemoConfig struct {
	*MainConfig

	Demo *cli.Command
}
