package parse

import "github.com/toon-format/go-toon/format"

type ParseOption func(*parseOpts)

type parseOpts struct {
	format format.Format
}

// ParseFormat selects the input format. The default is JSON, which is
// validated strictly; YAML mode accepts the full goccy superset.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
