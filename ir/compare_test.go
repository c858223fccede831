package ir

import "testing"

func TestCompare(t *testing.T) {
	cts := []struct {
		name string
		a, b *Node
		want int
	}{
		{name: "null equal", a: Null(), b: Null(), want: 0},
		{name: "null before bool", a: Null(), b: FromBool(false), want: -1},
		{name: "bool before number", a: FromBool(true), b: FromInt(0), want: -1},
		{name: "number before string", a: FromInt(9), b: FromString("a"), want: -1},
		{name: "string order", a: FromString("a"), b: FromString("b"), want: -1},
		{name: "bool order", a: FromBool(false), b: FromBool(true), want: -1},
		{
			name: "array by length",
			a:    FromSlice([]*Node{FromInt(1)}),
			b:    FromSlice([]*Node{FromInt(1), FromInt(2)}),
			want: -1,
		},
		{
			name: "object key order matters",
			a:    Object().Append("a", FromInt(1)).Append("b", FromInt(2)),
			b:    Object().Append("b", FromInt(2)).Append("a", FromInt(1)),
			want: -1,
		},
	}
	for _, ct := range cts {
		if got := Compare(ct.a, ct.b); got != ct.want {
			t.Errorf("%s: Compare = %d, want %d", ct.name, got, ct.want)
		}
		if ct.want != 0 {
			if got := Compare(ct.b, ct.a); got != -ct.want {
				t.Errorf("%s: reversed Compare = %d, want %d", ct.name, got, -ct.want)
			}
		}
	}
}

func TestEqualClone(t *testing.T) {
	doc := Object().
		Append("tags", FromSlice([]*Node{FromString("a"), FromString("b")})).
		Append("n", FromFloat(2.5))
	if !Equal(doc, doc.Clone()) {
		t.Error("clone not equal to original")
	}
}
