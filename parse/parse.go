package parse

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/toon-format/go-toon/format"
	"github.com/toon-format/go-toon/ir"
)

// Parse turns JSON (default) or YAML text into an IR tree. Mapping key
// order follows source order. Numbers are normalized here to their
// final decimal text; non-finite values become Null so the encoder
// never sees them as numbers.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if strings.TrimSpace(string(d)) == "" {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidInput)
	}
	if pOpts.format.IsJSON() && !json.Valid(d) {
		// goccy reads a YAML superset; reject non-JSON here so lenient
		// YAML forms don't slip through in JSON mode.
		return nil, fmt.Errorf("%w: malformed JSON document", ErrInvalidInput)
	}
	file, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidInput)
	}
	return fromAST(file.Docs[0].Body)
}

func ParseString(v string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(v), opts...)
}

func fromAST(n ast.Node) (*ir.Node, error) {
	switch v := n.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(v.Value), nil
	case *ast.IntegerNode:
		return numberNode(v.GetToken().Value), nil
	case *ast.FloatNode:
		return numberNode(v.GetToken().Value), nil
	case *ast.InfinityNode:
		return ir.Null(), nil
	case *ast.NanNode:
		return ir.Null(), nil
	case *ast.StringNode:
		return ir.FromString(v.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(v.Value.Value), nil
	case *ast.SequenceNode:
		vals := make([]*ir.Node, 0, len(v.Values))
		for _, e := range v.Values {
			c, err := fromAST(e)
			if err != nil {
				return nil, err
			}
			vals = append(vals, c)
		}
		return ir.FromSlice(vals), nil
	case *ast.MappingNode:
		obj := ir.Object()
		for _, mv := range v.Values {
			if err := appendPair(obj, mv); err != nil {
				return nil, err
			}
		}
		return obj, nil
	case *ast.MappingValueNode:
		// single-pair mappings surface without a wrapping MappingNode
		obj := ir.Object()
		if err := appendPair(obj, v); err != nil {
			return nil, err
		}
		return obj, nil
	case *ast.TagNode:
		return fromAST(v.Value)
	case *ast.AnchorNode:
		return fromAST(v.Value)
	default:
		return nil, fmt.Errorf("%w: unsupported node %T", ErrInvalidInput, n)
	}
}

func appendPair(obj *ir.Node, mv *ast.MappingValueNode) error {
	val, err := fromAST(mv.Value)
	if err != nil {
		return err
	}
	obj.Append(keyText(mv.Key), val)
	return nil
}

func keyText(k ast.Node) string {
	if s, ok := k.(*ast.StringNode); ok {
		return s.Value
	}
	if tok := k.GetToken(); tok != nil {
		return tok.Value
	}
	return k.String()
}

// numberNode normalizes a number literal to decimal text. Decimal
// integer text is kept verbatim; YAML hex, octal and binary forms
// reparse under base detection; everything else reformats through
// float64, matching what upstream JSON producers emit.
func numberNode(text string) *ir.Node {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ir.FromInt(i)
	}
	if i, err := strconv.ParseInt(text, 0, 64); err == nil {
		return ir.FromInt(i)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return ir.Null()
	}
	return ir.FromFloat(f)
}
