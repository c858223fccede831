// Package libdiff renders line-oriented diffs of encoded documents.
package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText compares two encoded documents line by line and returns a
// +/- prefixed rendering plus whether they differ at all.
func DiffText(from, to string, colorize bool) (string, bool) {
	diffCfg := diffpatch.New()
	a, b, lineArray := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lineArray)

	var (
		b2      strings.Builder
		changed = false
	)
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		paint := func(v string) string { return v }
		switch diff.Type {
		case diffpatch.DiffInsert:
			changed = true
			prefix = "+ "
			if colorize {
				paint = func(v string) string { return color.GreenString("%s", v) }
			}
		case diffpatch.DiffDelete:
			changed = true
			prefix = "- "
			if colorize {
				paint = func(v string) string { return color.RedString("%s", v) }
			}
		}
		for _, ln := range splitLines(diff.Text) {
			b2.WriteString(paint(prefix + ln))
			b2.WriteByte('\n')
		}
	}
	return b2.String(), changed
}

func splitLines(v string) []string {
	v = strings.TrimSuffix(v, "\n")
	if v == "" {
		return nil
	}
	return strings.Split(v, "\n")
}
