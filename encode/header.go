package encode

import (
	"strconv"
	"strings"

	"github.com/toon-format/go-toon/ir"
	"github.com/toon-format/go-toon/token"
)

// header renders the `key[length]{fields}:` fragment shared by all
// array layouts. The length marker '#' appears when configured, and a
// non-comma delimiter is echoed raw inside the brackets. The caller
// appends a single space before any same-line payload.
func (es *EncState) header(key string, length int, fields []string) string {
	var b strings.Builder
	if key != "" {
		b.WriteString(es.key(key))
	}
	var h strings.Builder
	h.WriteByte('[')
	if es.marker {
		h.WriteByte('#')
	}
	h.WriteString(strconv.Itoa(length))
	if es.delim != "," {
		h.WriteString(es.delim)
	}
	h.WriteByte(']')
	b.WriteString(es.color(ir.ArrayType, HeaderColor, h.String()))
	if len(fields) > 0 {
		b.WriteString(es.color(ir.ArrayType, HeaderColor, "{"))
		for i, f := range fields {
			if i > 0 {
				b.WriteString(es.delim)
			}
			b.WriteString(es.color(ir.ObjectType, FieldColor, token.QuoteKey(f)))
		}
		b.WriteString(es.color(ir.ArrayType, HeaderColor, "}"))
	}
	b.WriteString(es.sep(":"))
	return b.String()
}
