package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/format"
	"github.com/toon-format/go-toon/parse"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Marker bool `cli:"name=marker desc='prefix array lengths with #'"`

	J bool `cli:"name=j aliases=json desc='read input as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	Indent int
	Delim  string

	InFormat *format.Format

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

func (cfg *MainConfig) delimOpt(_ *cli.Context, a string) (any, error) {
	switch a {
	case "comma", ",":
		cfg.Delim = ","
	case "tab":
		cfg.Delim = "\t"
	case "pipe", "|":
		cfg.Delim = "|"
	default:
		return nil, fmt.Errorf("%w: delimiter must be comma, tab or pipe, got %q", cli.ErrUsage, a)
	}
	return cfg.Delim, nil
}

func (cfg *MainConfig) indentOpt(_ *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: indent must be a positive integer, got %q", cli.ErrUsage, a)
	}
	cfg.Indent = n
	return n, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	fmat := format.JSONFormat
	switch {
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{
		parse.ParseFormat(fmat),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.LengthMarker(cfg.Marker),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Delim != "" {
		res = append(res, encode.Delimiter(cfg.Delim))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
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

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type StatsConfig struct {
	*MainConfig
	Stats *cli.Command
}
