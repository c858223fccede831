package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/format"
	"github.com/toon-format/go-toon/gomap"
	"github.com/toon-format/go-toon/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and at most one target file, got %v", cli.ErrUsage, args)
	}
	pd, err := readObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", args[0], err)
	}
	target := "-"
	if len(args) == 2 {
		target = args[1]
	}
	doc, err := getObjFile(cc, target, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", target, err)
	}
	jDoc, err := json.Marshal(gomap.FromIR(doc))
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", target, err)
	}
	jOut, err := applyPatch(jDoc, pd)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", target, err)
	}
	y, err := parse.Parse(jOut, parse.ParseFormat(format.JSONFormat))
	if err != nil {
		return fmt.Errorf("error decoding patch result: %w", err)
	}
	if err := encode.Encode(y, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}

// A patch document that is a JSON array is an RFC 6902 patch,
// anything else is an RFC 7396 merge patch.
func applyPatch(doc, pd []byte) ([]byte, error) {
	if bytes.HasPrefix(bytes.TrimSpace(pd), []byte("[")) {
		ops, err := jsonpatch.DecodePatch(pd)
		if err != nil {
			return nil, err
		}
		return ops.Apply(doc)
	}
	return jsonpatch.MergePatch(doc, pd)
}
