package encode

import (
	"io"
	"strconv"

	"github.com/toon-format/go-toon/ir"
	"github.com/toon-format/go-toon/token"
)

type EncState struct {
	indent int
	delim  string
	marker bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders a value tree as TOON text on w. A scalar root is
// written as its bare scalar form; anything else becomes newline-joined
// lines with no trailing newline. One EncState and one line accumulator
// serve exactly one call.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		delim:  ",",
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent <= 0 {
		es.indent = 2
	}
	if es.delim == "" {
		es.delim = ","
	}
	if node == nil {
		node = ir.Null()
	}
	if node.Type.IsScalar() {
		return writeString(w, es.scalar(node))
	}
	ls := newLines(es.indent)
	switch node.Type {
	case ir.ArrayType:
		es.encodeArray(ls, 0, "", node, false)
	case ir.ObjectType:
		es.encodeObject(ls, 0, node)
	default:
		panic("type")
	}
	return writeString(w, ls.render())
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// encodeObject renders the key/value pairs of an object at the given
// depth, in stored order.
func (es *EncState) encodeObject(ls *lines, depth int, node *ir.Node) {
	for i, yField := range node.Fields {
		es.encodeEntry(ls, depth, yField.String, node.Values[i])
	}
}

// encodeEntry renders one key/value pair.
func (es *EncState) encodeEntry(ls *lines, depth int, key string, val *ir.Node) {
	switch val.Type {
	case ir.ArrayType:
		es.encodeArray(ls, depth, key, val, false)
	case ir.ObjectType:
		ls.push(depth, es.key(key)+es.sep(":"))
		if len(val.Fields) > 0 {
			es.encodeObject(ls, depth+1, val)
		}
	default:
		ls.push(depth, es.key(key)+es.sep(":")+" "+es.scalar(val))
	}
}

// scalar renders a leaf value. Bool and Null have fixed spellings,
// numbers carry their decimal text, strings pass through the safety
// rules against the active delimiter.
func (es *EncState) scalar(v *ir.Node) string {
	switch v.Type {
	case ir.BoolType:
		return es.color(ir.BoolType, ValueColor, strconv.FormatBool(v.Bool))
	case ir.NumberType:
		return es.color(ir.NumberType, ValueColor, v.NumberText())
	case ir.StringType:
		s := v.String
		if token.NeedsQuote(s, es.delim) {
			s = token.Quote(s)
		}
		return es.color(ir.StringType, ValueColor, s)
	default:
		return es.color(ir.NullType, ValueColor, "null")
	}
}

func (es *EncState) key(k string) string {
	return es.color(ir.ObjectType, FieldColor, token.QuoteKey(k))
}

func (es *EncState) sep(s string) string {
	return es.color(ir.ObjectType, SepColor, s)
}

func (es *EncState) color(t ir.Type, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, attr, s)
}
