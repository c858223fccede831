package main

import (
	"fmt"

	"github.com/toon-format/go-toon/parse"

	"github.com/scott-cotton/cli"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		cfg.Stats.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := statsFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func statsFile(cfg *StatsConfig, cc *cli.Context, file string) error {
	in, err := readObjFile(cc, file)
	if err != nil {
		return err
	}
	y, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	out, err := plainEncode(cfg.MainConfig, y)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	inBytes, outBytes := len(in), len(out)
	saved := 0.0
	if inBytes > 0 {
		saved = 100 * float64(inBytes-outBytes) / float64(inBytes)
	}
	_, err = fmt.Fprintf(cc.Out,
		"%s: input %d bytes (~%d tokens), toon %d bytes (~%d tokens), saved %.1f%%\n",
		file, inBytes, approxTokens(in), outBytes, approxTokens([]byte(out)), saved)
	return err
}

// approxTokens estimates LLM token counts at 4 bytes per token.
func approxTokens(d []byte) int {
	return (len(d) + 3) / 4
}
