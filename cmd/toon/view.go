package main

import (
	"fmt"
	"io"
	"os"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg, cc.Out, cc.In)
	}
	return viewFiles(cfg, cc.Out, args)
}

func viewFiles(cfg *ViewConfig, w io.Writer, files []string) error {
	for i, file := range files {
		if err := viewFile(cfg, w, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := w.Write([]byte("\n---\n")); err != nil {
				return fmt.Errorf("error writing separator: %w", err)
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := viewReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	y, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}
	if err := encode.Encode(y, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}
