package encode

import "strings"

// lines accumulates indentation-prefixed output lines for one encode
// call. Depth is caller-computed; no monotonicity is enforced.
type lines struct {
	unit string
	buf  []string
}

func newLines(indent int) *lines {
	return &lines{unit: strings.Repeat(" ", indent)}
}

func (l *lines) push(depth int, content string) {
	l.buf = append(l.buf, strings.Repeat(l.unit, depth)+content)
}

// render joins all lines with newlines. No trailing newline.
func (l *lines) render() string {
	return strings.Join(l.buf, "\n")
}
