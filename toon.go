// Package toon converts JSON-shaped data into TOON (Token-Oriented
// Object Notation), a compact indentation-based text form aimed at
// minimal token counts in language-model prompts.
package toon

import (
	"bytes"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/gomap"
	"github.com/toon-format/go-toon/parse"
)

// FromJSON parses JSON text and encodes it as TOON. Parse failures
// wrap parse.ErrInvalidInput and are returned unmodified.
func FromJSON(d []byte, opts ...encode.EncodeOption) (string, error) {
	node, err := parse.Parse(d)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MarshalString converts any Go value to TOON text, normalizing it
// through gomap first.
func MarshalString(v any, opts ...encode.EncodeOption) (string, error) {
	d, err := gomap.Marshal(v, opts...)
	if err != nil {
		return "", err
	}
	return string(d), nil
}
