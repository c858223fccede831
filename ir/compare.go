package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Objects compare by insertion-ordered key/value pairs.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch a.Type {
	case NumberType:
		return strings.Compare(a.NumberText(), b.NumberText())
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareValues(a, b)
	case ObjectType:
		if c := compareFields(a, b); c != 0 {
			return c
		}
		return compareValues(a, b)
	case NullType:
		return 0
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank orders types: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareValues(a, b *Node) int {
	if c := cmp.Compare(len(a.Values), len(b.Values)); c != 0 {
		return c
	}
	for i := range a.Values {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareFields(a, b *Node) int {
	if c := cmp.Compare(len(a.Fields), len(b.Fields)); c != 0 {
		return c
	}
	for i := range a.Fields {
		if c := strings.Compare(a.Fields[i].String, b.Fields[i].String); c != 0 {
			return c
		}
	}
	return 0
}
