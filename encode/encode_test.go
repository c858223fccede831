package encode

import (
	"testing"

	"github.com/toon-format/go-toon/ir"
)

func obj(kvs ...ir.KeyVal) *ir.Node {
	return ir.FromKeyVals(kvs)
}

func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: k, Val: v}
}

func arr(vs ...*ir.Node) *ir.Node {
	return ir.FromSlice(vs)
}

type encodeTest struct {
	name string
	in   *ir.Node
	opts []EncodeOption
	out  string
}

func TestEncode(t *testing.T) {
	ets := []encodeTest{
		{
			name: "flat object",
			in: obj(
				kv("id", ir.FromInt(123)),
				kv("name", ir.FromString("Ada")),
				kv("active", ir.FromBool(true))),
			out: "id: 123\nname: Ada\nactive: true",
		},
		{
			name: "inline scalar array",
			in: obj(kv("tags", arr(
				ir.FromString("admin"),
				ir.FromString("ops"),
				ir.FromString("dev")))),
			out: "tags[3]: admin,ops,dev",
		},
		{
			name: "tabular",
			in: obj(kv("items", arr(
				obj(kv("sku", ir.FromString("A1")), kv("qty", ir.FromInt(2)), kv("price", ir.FromFloat(9.99))),
				obj(kv("sku", ir.FromString("B2")), kv("qty", ir.FromInt(1)), kv("price", ir.FromFloat(14.5)))))),
			out: "items[2]{sku,qty,price}:\n  A1,2,9.99\n  B2,1,14.5",
		},
		{
			name: "empty collections",
			in: obj(
				kv("items", arr()),
				kv("config", ir.Object())),
			out: "items[0]:\nconfig:",
		},
		{
			name: "length marker",
			in: obj(kv("tags", arr(
				ir.FromString("reading"),
				ir.FromString("gaming"),
				ir.FromString("coding")))),
			opts: []EncodeOption{LengthMarker(true)},
			out:  "tags[#3]: reading,gaming,coding",
		},
		{
			name: "scalar root quoted",
			in:   ir.FromString("[3]: x,y"),
			out:  `"[3]: x,y"`,
		},
		{
			name: "scalar root bare",
			in:   ir.FromString("hello"),
			out:  "hello",
		},
		{
			name: "scalar root null",
			in:   ir.Null(),
			out:  "null",
		},
		{
			name: "nil root",
			in:   nil,
			out:  "null",
		},
		{
			name: "root array inline",
			in:   arr(ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)),
			out:  "[3]: 1,2,3",
		},
		{
			name: "root empty array",
			in:   arr(),
			out:  "[0]:",
		},
		{
			name: "root empty object",
			in:   ir.Object(),
			out:  "",
		},
		{
			name: "nested object",
			in: obj(kv("server", obj(
				kv("host", ir.FromString("localhost")),
				kv("port", ir.FromInt(8080))))),
			out: "server:\n  host: localhost\n  port: 8080",
		},
		{
			name: "array of arrays",
			in: obj(kv("m", arr(
				arr(ir.FromInt(1), ir.FromInt(2)),
				arr(ir.FromInt(3), ir.FromInt(4))))),
			out: "m[2]:\n  - [2]: 1,2\n  - [2]: 3,4",
		},
		{
			name: "itemized divergent keys",
			in: obj(kv("deploys", arr(
				obj(kv("env", ir.FromString("prod")), kv("replicas", ir.FromInt(3))),
				obj(kv("env", ir.FromString("dev")))))),
			out: "deploys[2]:\n  - env: prod\n    replicas: 3\n  - env: dev",
		},
		{
			name: "itemized nested value",
			in: obj(kv("rows", arr(
				obj(kv("id", ir.FromInt(1)), kv("meta", obj(kv("a", ir.FromInt(2))))),
				obj(kv("id", ir.FromInt(2)), kv("meta", obj(kv("a", ir.FromInt(3)))))))),
			out: "rows[2]:\n  - id: 1\n    meta:\n      a: 2\n  - id: 2\n    meta:\n      a: 3",
		},
		{
			name: "first field object shares dash",
			in: arr(
				obj(kv("meta", obj(kv("a", ir.FromInt(1)))), kv("id", ir.FromInt(2)))),
			out: "[1]:\n  - meta:\n      a: 1\n    id: 2",
		},
		{
			name: "first field array shares dash",
			in: arr(
				obj(kv("tags", arr(ir.FromString("a"), ir.FromString("b"))), kv("id", ir.FromInt(1)))),
			out: "[1]:\n  - tags[2]: a,b\n    id: 1",
		},
		{
			name: "empty object list item",
			in:   arr(ir.Object(), ir.Object()),
			out:  "[2]:\n  -\n  -",
		},
		{
			name: "mixed scalar and object items",
			in: arr(
				ir.FromInt(1),
				obj(kv("a", ir.FromInt(2))),
				ir.FromString("three")),
			out: "[3]:\n  - 1\n  - a: 2\n  - three",
		},
		{
			name: "quoted values",
			in: obj(
				kv("note", ir.FromString("a,b")),
				kv("flag", ir.FromString("true")),
				kv("zip", ir.FromString("007"))),
			out: "note: \"a,b\"\nflag: \"true\"\nzip: \"007\"",
		},
		{
			name: "quoted keys",
			in: obj(
				kv("full name", ir.FromString("Ada")),
				kv("a-b", ir.FromInt(1))),
			out: "\"full name\": Ada\n\"a-b\": 1",
		},
		{
			name: "null and bool values",
			in: obj(
				kv("gone", ir.Null()),
				kv("on", ir.FromBool(true)),
				kv("off", ir.FromBool(false))),
			out: "gone: null\non: true\noff: false",
		},
	}
	for _, et := range ets {
		var got string
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("%s: panic: %v", et.name, r)
				}
			}()
			got = MustString(et.in, et.opts...)
		}()
		if got != et.out {
			t.Errorf("%s:\ngot:\n%s\nwant:\n%s", et.name, got, et.out)
		}
	}
}

func TestEncodeDelimiters(t *testing.T) {
	doc := obj(
		kv("tags", arr(ir.FromString("x"), ir.FromString("y"))),
		kv("items", arr(
			obj(kv("a", ir.FromInt(1)), kv("b", ir.FromInt(2))),
			obj(kv("a", ir.FromInt(3)), kv("b", ir.FromInt(4))))))

	ets := []encodeTest{
		{
			name: "comma default",
			out:  "tags[2]: x,y\nitems[2]{a,b}:\n  1,2\n  3,4",
		},
		{
			name: "pipe",
			opts: []EncodeOption{Delimiter("|")},
			out:  "tags[2|]: x|y\nitems[2|]{a|b}:\n  1|2\n  3|4",
		},
		{
			name: "tab",
			opts: []EncodeOption{Delimiter("\t")},
			out:  "tags[2\t]: x\ty\nitems[2\t]{a\tb}:\n  1\t2\n  3\t4",
		},
	}
	for _, et := range ets {
		if got := MustString(doc, et.opts...); got != et.out {
			t.Errorf("%s:\ngot:\n%s\nwant:\n%s", et.name, got, et.out)
		}
	}
}

func TestEncodeDelimiterQuoting(t *testing.T) {
	doc := obj(kv("vals", arr(ir.FromString("a,b"), ir.FromString("c"))))
	if got := MustString(doc); got != "vals[2]: \"a,b\",c" {
		t.Errorf("comma delim: got %q", got)
	}
	if got := MustString(doc, Delimiter("|")); got != "vals[2|]: a,b|c" {
		t.Errorf("pipe delim: got %q", got)
	}
}

func TestEncodeIndentWidth(t *testing.T) {
	doc := obj(kv("a", obj(kv("b", obj(kv("c", ir.FromInt(1)))))))
	if got := MustString(doc, Indent(4)); got != "a:\n    b:\n        c: 1" {
		t.Errorf("indent 4: got %q", got)
	}
}

func TestTabularFallback(t *testing.T) {
	ets := []encodeTest{
		{
			name: "nested value breaks table",
			in: obj(kv("items", arr(
				obj(kv("a", ir.FromInt(1)), kv("b", ir.FromInt(2))),
				obj(kv("a", ir.FromInt(3)), kv("b", arr(ir.FromInt(4))))))),
			out: "items[2]:\n  - a: 1\n    b: 2\n  - a: 3\n    b[1]: 4",
		},
		{
			name: "renamed key breaks table",
			in: obj(kv("items", arr(
				obj(kv("a", ir.FromInt(1)), kv("b", ir.FromInt(2))),
				obj(kv("a", ir.FromInt(3)), kv("c", ir.FromInt(4)))))),
			out: "items[2]:\n  - a: 1\n    b: 2\n  - a: 3\n    c: 4",
		},
		{
			name: "reordered keys still tabular",
			in: obj(kv("items", arr(
				obj(kv("a", ir.FromInt(1)), kv("b", ir.FromInt(2))),
				obj(kv("b", ir.FromInt(4)), kv("a", ir.FromInt(3)))))),
			out: "items[2]{a,b}:\n  1,2\n  3,4",
		},
		{
			name: "non-object row breaks table",
			in: obj(kv("items", arr(
				obj(kv("a", ir.FromInt(1))),
				ir.FromInt(7)))),
			out: "items[2]:\n  - a: 1\n  - 7",
		},
		{
			name: "null cells allowed",
			in: obj(kv("items", arr(
				obj(kv("a", ir.Null()), kv("b", ir.FromInt(2))),
				obj(kv("a", ir.FromInt(3)), kv("b", ir.Null()))))),
			out: "items[2]{a,b}:\n  null,2\n  3,null",
		},
	}
	for _, et := range ets {
		if got := MustString(et.in, et.opts...); got != et.out {
			t.Errorf("%s:\ngot:\n%s\nwant:\n%s", et.name, got, et.out)
		}
	}
}

func TestEncodeDeterminism(t *testing.T) {
	doc := obj(
		kv("tags", arr(ir.FromString("a"), ir.FromString("b"))),
		kv("items", arr(
			obj(kv("x", ir.FromInt(1)), kv("y", ir.FromInt(2))))),
		kv("nested", obj(kv("deep", obj(kv("val", ir.FromString("v")))))))
	first := MustString(doc)
	for i := 0; i < 10; i++ {
		if got := MustString(doc); got != first {
			t.Fatalf("run %d differs:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestEncodeKeyOrder(t *testing.T) {
	doc := ir.Object().
		Append("zulu", ir.FromInt(1)).
		Append("alpha", ir.FromInt(2)).
		Append("mike", ir.FromInt(3))
	if got := MustString(doc); got != "zulu: 1\nalpha: 2\nmike: 3" {
		t.Errorf("key order not preserved: %q", got)
	}
}
