package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/ir"
	"github.com/toon-format/go-toon/libdiff"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b *ir.Node) (bool, error) {
	from, err := plainEncode(cfg.MainConfig, a)
	if err != nil {
		return false, err
	}
	to, err := plainEncode(cfg.MainConfig, b)
	if err != nil {
		return false, err
	}
	text, differs := libdiff.DiffText(from, to, colorize(cfg.MainConfig, cc.Out))
	if !differs {
		return false, nil
	}
	_, err = io.WriteString(cc.Out, text)
	return true, err
}

func plainEncode(cfg *MainConfig, y *ir.Node) (string, error) {
	opts := []encode.EncodeOption{
		encode.LengthMarker(cfg.Marker),
	}
	if cfg.Indent > 0 {
		opts = append(opts, encode.Indent(cfg.Indent))
	}
	if cfg.Delim != "" {
		opts = append(opts, encode.Delimiter(cfg.Delim))
	}
	var buf bytes.Buffer
	if err := encode.Encode(y, &buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func colorize(cfg *MainConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
