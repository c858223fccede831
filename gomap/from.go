package gomap

import (
	"strconv"

	"github.com/toon-format/go-toon/ir"
)

// FromIR converts an IR node back to plain Go values: nil, bool,
// int64/float64, string, []any and map[string]any. Object key order is
// not representable in a Go map; callers needing order keep the node.
func FromIR(node *ir.Node) any {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		f, err := strconv.ParseFloat(node.NumberText(), 64)
		if err != nil {
			return node.NumberText()
		}
		return f
	case ir.StringType:
		return node.String
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = FromIR(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f.String] = FromIR(node.Values[i])
		}
		return res
	default:
		panic("type")
	}
}
