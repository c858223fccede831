package encode

import (
	"strings"

	"github.com/toon-format/go-toon/ir"
)

// encodeArray is the layout selector. It decides, in priority order,
// between the empty, inline-primitive, array-of-arrays, tabular and
// itemized layouts. Uniformity is exact; a single divergent element
// forces the itemized fallback for the whole array.
//
// When dash is set the array is itself a list item (or the first field
// of one): its header line gains a "- " prefix and nested lines sit one
// level deeper than in a normal keyed encoding, the dash standing in
// for the missing indent.
func (es *EncState) encodeArray(ls *lines, depth int, key string, node *ir.Node, dash bool) {
	var (
		items      = node.Values
		n          = len(items)
		prefix     = ""
		childDepth = depth + 1
	)
	if dash {
		prefix = es.dash() + " "
		childDepth = depth + 2
	}

	if n == 0 {
		ls.push(depth, prefix+es.header(key, 0, nil))
		return
	}
	if allScalar(items) {
		ls.push(depth, prefix+es.header(key, n, nil)+" "+es.joinScalars(items))
		return
	}
	if allInlineArrays(items) {
		ls.push(depth, prefix+es.header(key, n, nil))
		for _, v := range items {
			ls.push(childDepth, es.dash()+" "+es.inlineArray(v))
		}
		return
	}
	if fields := detectHeader(items); len(fields) > 0 {
		ls.push(depth, prefix+es.header(key, n, fields))
		for _, row := range items {
			ls.push(childDepth, es.joinRow(row, fields))
		}
		return
	}
	ls.push(depth, prefix+es.header(key, n, nil))
	for _, v := range items {
		es.encodeListElem(ls, childDepth, v)
	}
}

// encodeListElem renders one element of an itemized list.
func (es *EncState) encodeListElem(ls *lines, depth int, v *ir.Node) {
	switch v.Type {
	case ir.ObjectType:
		es.encodeListItem(ls, depth, v)
	case ir.ArrayType:
		if allScalar(v.Values) {
			ls.push(depth, es.dash()+" "+es.inlineArray(v))
			return
		}
		es.encodeArray(ls, depth, "", v, true)
	default:
		ls.push(depth, es.dash()+" "+es.scalar(v))
	}
}

// encodeListItem renders an object as a dash-led block. The first
// key/value pair shares the dash line; the rest encode normally one
// level deeper. Nested structure under the first field indents two
// levels past the dash line, the dash occupying the first.
func (es *EncState) encodeListItem(ls *lines, depth int, obj *ir.Node) {
	if len(obj.Fields) == 0 {
		ls.push(depth, es.dash())
		return
	}
	key0 := obj.Fields[0].String
	val0 := obj.Values[0]
	switch val0.Type {
	case ir.ObjectType:
		ls.push(depth, es.dash()+" "+es.key(key0)+es.sep(":"))
		if len(val0.Fields) > 0 {
			es.encodeObject(ls, depth+2, val0)
		}
	case ir.ArrayType:
		es.encodeArray(ls, depth, key0, val0, true)
	default:
		ls.push(depth, es.dash()+" "+es.key(key0)+es.sep(":")+" "+es.scalar(val0))
	}
	for i := 1; i < len(obj.Fields); i++ {
		es.encodeEntry(ls, depth+1, obj.Fields[i].String, obj.Values[i])
	}
}

// detectHeader returns the tabular field list for a uniform array of
// flat objects, or nil. The first element fixes the candidate header;
// every row must be an object with exactly that many keys, every header
// key present, and every addressed value a scalar.
func detectHeader(rows []*ir.Node) []string {
	if len(rows) == 0 {
		return nil
	}
	first := rows[0]
	if first.Type != ir.ObjectType {
		return nil
	}
	fields := make([]string, len(first.Fields))
	for i, f := range first.Fields {
		fields[i] = f.String
	}
	for _, row := range rows {
		if row.Type != ir.ObjectType {
			return nil
		}
		if len(row.Fields) != len(fields) {
			return nil
		}
		for _, f := range fields {
			v := ir.Get(row, f)
			if v == nil || !v.Type.IsScalar() {
				return nil
			}
		}
	}
	return fields
}

func allScalar(items []*ir.Node) bool {
	for _, v := range items {
		if !v.Type.IsScalar() {
			return false
		}
	}
	return true
}

func allInlineArrays(items []*ir.Node) bool {
	for _, v := range items {
		if v.Type != ir.ArrayType {
			return false
		}
		if !allScalar(v.Values) {
			return false
		}
	}
	return true
}

// inlineArray renders a keyless all-scalar array on one line.
func (es *EncState) inlineArray(v *ir.Node) string {
	h := es.header("", len(v.Values), nil)
	if len(v.Values) == 0 {
		return h
	}
	return h + " " + es.joinScalars(v.Values)
}

func (es *EncState) joinScalars(items []*ir.Node) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = es.scalar(v)
	}
	return strings.Join(parts, es.delim)
}

// joinRow projects a tabular row in header-key order.
func (es *EncState) joinRow(row *ir.Node, fields []string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = es.scalar(ir.Get(row, f))
	}
	return strings.Join(parts, es.delim)
}

func (es *EncState) dash() string {
	return es.color(ir.ArrayType, MarkerColor, "-")
}
