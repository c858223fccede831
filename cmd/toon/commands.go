package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "d",
			Aliases:     []string{"delim"},
			Description: "value delimiter: comma, tab or pipe",
			Type:        cli.NamedFuncOpt(cfg.delimOpt, "(delimiter)"),
		},
		&cli.Opt{
			Name:        "indent",
			Description: "spaces per indent level (default 2)",
			Type:        cli.NamedFuncOpt(cfg.indentOpt, "(n)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "toon").
		WithSynopsis("toon [opts] command [opts]").
		WithDescription("toon converts JSON-shaped data to token-oriented object notation.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toonMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			GetCommand(cfg),
			StatsCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("encode JSON or YAML documents as TOON").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff the TOON encodings of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch <patchfile> [file]").
		WithDescription("apply a JSON patch (RFC 6902) or merge patch (RFC 7396) before encoding").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <expr> [file]").
		WithDescription("select part of a document with an expression, encode the result").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("stats").
		WithAliases("s", "st").
		WithSynopsis("stats [files]").
		WithDescription("report size and estimated token savings of TOON vs the input").
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
	cfg.Stats = cmd
	return cmd
}
