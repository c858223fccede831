package gomap

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/toon-format/go-toon/ir"
)

// toonMarshaler lets a type supply its own IR form.
type toonMarshaler interface {
	ToToonIR() (*ir.Node, error)
}

// handler is one predicate/transform pair. Handlers run in fixed
// priority order before the generic reflection fallback.
type handler struct {
	match func(v any) bool
	conv  func(v any) (*ir.Node, error)
}

var handlers = []handler{
	{
		match: func(v any) bool { return v == nil },
		conv:  func(any) (*ir.Node, error) { return ir.Null(), nil },
	},
	{
		match: func(v any) bool { _, ok := v.(*ir.Node); return ok },
		conv:  func(v any) (*ir.Node, error) { return v.(*ir.Node), nil },
	},
	{
		match: func(v any) bool { _, ok := v.(toonMarshaler); return ok },
		conv:  func(v any) (*ir.Node, error) { return v.(toonMarshaler).ToToonIR() },
	},
	{
		match: func(v any) bool { _, ok := v.(json.Number); return ok },
		conv: func(v any) (*ir.Node, error) {
			return numberFromText(string(v.(json.Number))), nil
		},
	},
	{
		match: func(v any) bool { _, ok := v.(encoding.TextMarshaler); return ok },
		conv: func(v any) (*ir.Node, error) {
			text, err := v.(encoding.TextMarshaler).MarshalText()
			if err != nil {
				return nil, err
			}
			return ir.FromString(string(text)), nil
		},
	},
}

// ToIR converts a Go value to an IR node. Type handlers run first;
// everything else goes through reflection. Non-finite floats become
// Null, never numbers.
func ToIR(v any) (*ir.Node, error) {
	for _, h := range handlers {
		if h.match(v) {
			return h.conv(v)
		}
	}
	visited := make(map[uintptr]string)
	return toIRValue(reflect.ValueOf(v), "", visited)
}

func toIRValue(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	if val.CanInterface() {
		for _, h := range handlers {
			if h.match(val.Interface()) {
				return h.conv(val.Interface())
			}
		}
	}
	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if val.IsNil() {
			return ir.Null(), nil
		}
		ptrAddr := val.Pointer()
		if prevPath, seen := visited[ptrAddr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[ptrAddr] = fieldPath
		node, err := toIRValue(val.Elem(), fieldPath, visited)
		delete(visited, ptrAddr)
		return node, err
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := val.Uint()
		if u <= math.MaxInt64 {
			return ir.FromInt(int64(u)), nil
		}
		return ir.FromNumber(strconv.FormatUint(u, 10)), nil

	case reflect.Float32, reflect.Float64:
		f := val.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ir.Null(), nil
		}
		return ir.FromFloat(f), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return toIRSlice(val, fieldPath, visited)

	case reflect.Map:
		return toIRMap(val, fieldPath, visited)

	case reflect.Struct:
		return toIRStruct(val, fieldPath, visited)

	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return toIRValue(val.Elem(), fieldPath, visited)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

func toIRSlice(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.Kind() == reflect.Slice && !val.IsNil() {
		slicePtr := val.Pointer()
		if prevPath, seen := visited[slicePtr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[slicePtr] = fieldPath
		defer delete(visited, slicePtr)
	}
	length := val.Len()
	elements := make([]*ir.Node, 0, length)
	for i := 0; i < length; i++ {
		elemNode, err := toIRValue(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i), visited)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elemNode)
	}
	return ir.FromSlice(elements), nil
}

// toIRMap converts a string-keyed map to an object node. Map iteration
// order is unstable in Go, so keys are sorted to keep encoding
// deterministic.
func toIRMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}
	mapPtr := val.Pointer()
	if prevPath, seen := visited[mapPtr]; seen {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
		}
	}
	visited[mapPtr] = fieldPath
	defer delete(visited, mapPtr)

	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}
	keys := make([]string, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	sort.Strings(keys)

	obj := ir.Object()
	for _, key := range keys {
		valuePath := key
		if fieldPath != "" {
			valuePath = fieldPath + "." + key
		}
		valueNode, err := toIRValue(val.MapIndex(reflect.ValueOf(key)), valuePath, visited)
		if err != nil {
			return nil, err
		}
		obj.Append(key, valueNode)
	}
	return obj, nil
}

// toIRStruct converts a struct to an object node. Field order is
// declaration order; embedded structs, including non-nil embedded
// struct pointers, are flattened. A nil embedded pointer contributes
// nothing.
func toIRStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	typ := val.Type()
	obj := ir.Object()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldVal := val.Field(i)
		embedVal := fieldVal
		if field.Anonymous && embedVal.Kind() == reflect.Ptr &&
			embedVal.Type().Elem().Kind() == reflect.Struct {
			if embedVal.IsNil() {
				continue
			}
			embedVal = embedVal.Elem()
		}
		if field.Anonymous && embedVal.Kind() == reflect.Struct {
			embedded, err := toIRValue(embedVal, fieldPath, visited)
			if err != nil {
				return nil, err
			}
			if embedded.Type == ir.ObjectType {
				for j, f := range embedded.Fields {
					if ir.Get(obj, f.String) != nil {
						return nil, &MarshalError{
							FieldPath: fieldPath,
							Message:   fmt.Sprintf("field name conflict: embedded struct field %q", f.String),
						}
					}
					obj.Append(f.String, embedded.Values[j])
				}
			}
			continue
		}
		name, omitEmpty, skip := fieldName(field)
		if skip {
			continue
		}
		if omitEmpty && fieldVal.IsZero() {
			continue
		}
		nextPath := name
		if fieldPath != "" {
			nextPath = fieldPath + "." + name
		}
		fieldNode, err := toIRValue(fieldVal, nextPath, visited)
		if err != nil {
			return nil, err
		}
		obj.Append(name, fieldNode)
	}
	return obj, nil
}

// fieldName resolves the encoded name of a struct field from `toon`
// then `json` tags, falling back to the Go field name.
func fieldName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	name = field.Name
	tag := field.Tag.Get("toon")
	if tag == "" {
		tag = field.Tag.Get("json")
	}
	if tag == "" {
		return name, false, false
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" {
		return "", false, true
	}
	if parts[0] != "" {
		name = parts[0]
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

func numberFromText(text string) *ir.Node {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ir.FromInt(i)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return ir.Null()
	}
	return ir.FromFloat(f)
}
