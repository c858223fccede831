package main

import (
	"fmt"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/gomap"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: get requires an expression and at most one file, got %v", cli.ErrUsage, args)
	}
	program, err := expr.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid expression %q: %w", cli.ErrUsage, args[0], err)
	}
	target := "-"
	if len(args) == 2 {
		target = args[1]
	}
	doc, err := getObjFile(cc, target, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", target, err)
	}
	env := map[string]any{
		"doc": gomap.FromIR(doc),
	}
	if m, ok := env["doc"].(map[string]any); ok {
		for k, v := range m {
			if _, clash := env[k]; !clash {
				env[k] = v
			}
		}
	}
	res, err := vm.Run(program, env)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", args[0], err)
	}
	y, err := gomap.ToIR(res)
	if err != nil {
		return fmt.Errorf("error converting result: %w", err)
	}
	if err := encode.Encode(y, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
