package libdiff

import (
	"strings"
	"testing"
)

func TestDiffTextEqual(t *testing.T) {
	doc := "a: 1\nb: 2\n"
	text, changed := DiffText(doc, doc, false)
	if changed {
		t.Errorf("identical inputs reported as changed:\n%s", text)
	}
}

func TestDiffTextChanged(t *testing.T) {
	from := "a: 1\nb: 2\nc: 3\n"
	to := "a: 1\nb: 9\nc: 3\n"
	text, changed := DiffText(from, to, false)
	if !changed {
		t.Fatal("differing inputs reported as equal")
	}
	for _, want := range []string{"- b: 2", "+ b: 9", "  a: 1", "  c: 3"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in:\n%s", want, text)
		}
	}
}

func TestDiffTextInsertOnly(t *testing.T) {
	text, changed := DiffText("a: 1\n", "a: 1\nb: 2\n", false)
	if !changed {
		t.Fatal("insertion not detected")
	}
	if !strings.Contains(text, "+ b: 2") {
		t.Errorf("missing insertion in:\n%s", text)
	}
	if strings.Contains(text, "- ") {
		t.Errorf("unexpected deletion in:\n%s", text)
	}
}
