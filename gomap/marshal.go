package gomap

import (
	"bytes"

	"github.com/toon-format/go-toon/encode"
)

// Marshal converts a Go value to TOON-formatted bytes. It first
// normalizes the value to an IR node, then encodes the IR.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
