package encode

import (
	"bytes"

	"github.com/toon-format/go-toon/ir"
)

func MustString(y *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(y, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
