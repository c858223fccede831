package token

import "testing"

type quoteTest struct {
	in    string
	delim string
	needs bool
}

func TestNeedsQuote(t *testing.T) {
	qts := []quoteTest{
		{in: "hello", delim: ",", needs: false},
		{in: "hello world", delim: ",", needs: false},
		{in: "", delim: ",", needs: true},
		{in: " padded", delim: ",", needs: true},
		{in: "padded ", delim: ",", needs: true},
		{in: "true", delim: ",", needs: true},
		{in: "false", delim: ",", needs: true},
		{in: "null", delim: ",", needs: true},
		{in: "True", delim: ",", needs: false},
		{in: "42", delim: ",", needs: true},
		{in: "-3.5", delim: ",", needs: true},
		{in: "1e9", delim: ",", needs: true},
		{in: "2E-4", delim: ",", needs: true},
		{in: "007", delim: ",", needs: true},
		{in: "0", delim: ",", needs: true},
		{in: "1.2.3", delim: ",", needs: false},
		{in: "a:b", delim: ",", needs: true},
		{in: `say "hi"`, delim: ",", needs: true},
		{in: `back\slash`, delim: ",", needs: true},
		{in: "a[0]", delim: ",", needs: true},
		{in: "{x}", delim: ",", needs: true},
		{in: "line\nbreak", delim: ",", needs: true},
		{in: "tab\there", delim: ",", needs: true},
		{in: "a,b", delim: ",", needs: true},
		{in: "a,b", delim: "|", needs: false},
		{in: "a|b", delim: "|", needs: true},
		{in: "a|b", delim: ",", needs: false},
		{in: "-lead", delim: ",", needs: true},
		{in: "mid-dash", delim: ",", needs: false},
	}
	for _, qt := range qts {
		if got := NeedsQuote(qt.in, qt.delim); got != qt.needs {
			t.Errorf("NeedsQuote(%q, %q) = %v, want %v", qt.in, qt.delim, got, qt.needs)
		}
	}
}

func TestQuote(t *testing.T) {
	qts := []struct {
		in, out string
	}{
		{in: "hello", out: `"hello"`},
		{in: `a"b`, out: `"a\"b"`},
		{in: `a\b`, out: `"a\\b"`},
		{in: "a\nb", out: `"a\nb"`},
		{in: "a\rb", out: `"a\rb"`},
		{in: "a\tb", out: `"a\tb"`},
		{in: `\"`, out: `"\\\""`},
	}
	for _, qt := range qts {
		if got := Quote(qt.in); got != qt.out {
			t.Errorf("Quote(%q) = %s, want %s", qt.in, got, qt.out)
		}
	}
}

func TestQuoteKey(t *testing.T) {
	qts := []struct {
		in, out string
	}{
		{in: "name", out: "name"},
		{in: "_private", out: "_private"},
		{in: "a.b.c", out: "a.b.c"},
		{in: "v2", out: "v2"},
		{in: "full name", out: `"full name"`},
		{in: "2fast", out: `"2fast"`},
		{in: "", out: `""`},
		{in: "a-b", out: `"a-b"`},
	}
	for _, qt := range qts {
		if got := QuoteKey(qt.in); got != qt.out {
			t.Errorf("QuoteKey(%q) = %s, want %s", qt.in, got, qt.out)
		}
	}
}
