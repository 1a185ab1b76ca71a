package yaml

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

var jsonNumberType = reflect.TypeOf(json.Number(""))

// FromGoValue converts an arbitrary Go value into a Node tree. Slices and
// arrays become Sequences, maps become Mappings with keys in sorted order,
// and structs become Mappings of their exported fields, honoring `yaml`
// field tags (a tag name, "omitempty", and "-" to skip). Values with no
// structured form are wrapped as opaque Scalars and left for the dump call
// to accept or reject.
func FromGoValue(v any) Node {
	return fromValue(reflect.ValueOf(v))
}

func fromValue(v reflect.Value) Node {
	if !v.IsValid() {
		return Scalar{}
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Scalar{}
		}
		v = v.Elem()
	}

	if v.Type() == jsonNumberType {
		return numberScalar(v.Interface().(json.Number))
	}

	switch v.Kind() {
	case reflect.Bool:
		return Scalar{Value: v.Bool()}
	case reflect.String:
		return Scalar{Value: v.String()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Scalar{Value: v.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Scalar{Value: v.Uint()}
	case reflect.Float32, reflect.Float64:
		return Scalar{Value: v.Float()}
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return Scalar{}
		}
		seq := make(Sequence, v.Len())
		for i := range seq {
			seq[i] = fromValue(v.Index(i))
		}
		return seq
	case reflect.Map:
		if v.IsNil() {
			return Scalar{}
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
		m := make(Mapping, 0, len(keys))
		for _, key := range keys {
			m = append(m, Pair{
				Key:   key.Interface(),
				Value: fromValue(v.MapIndex(key)),
			})
		}
		return m
	case reflect.Struct:
		return fromStruct(v)
	}

	// Opaque: keep the concrete value; the flow encoder decides whether it
	// is representable under the call's options.
	return Scalar{Value: v.Interface()}
}

func fromStruct(v reflect.Value) Node {
	t := v.Type()
	m := make(Mapping, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, opts := parseTag(field.Tag.Get("yaml"))
		if name == "-" {
			continue
		}

		fieldValue := v.Field(i)
		if opts["omitempty"] && isEmptyValue(fieldValue) {
			continue
		}

		if name == "" {
			name = field.Name
		}
		m = append(m, Pair{Key: name, Value: fromValue(fieldValue)})
	}
	return m
}

func numberScalar(n json.Number) Node {
	if i, err := n.Int64(); err == nil {
		return Scalar{Value: i}
	}
	if f, err := n.Float64(); err == nil {
		return Scalar{Value: f}
	}
	return Scalar{Value: n.String()}
}

// keyLess orders map keys deterministically: numerically when both keys are
// of the same numeric family, lexically for strings, and by printed form
// otherwise.
func keyLess(a, b reflect.Value) bool {
	for a.Kind() == reflect.Interface && !a.IsNil() {
		a = a.Elem()
	}
	for b.Kind() == reflect.Interface && !b.IsNil() {
		b = b.Elem()
	}
	switch {
	case isIntKind(a) && isIntKind(b):
		return a.Int() < b.Int()
	case isUintKind(a) && isUintKind(b):
		return a.Uint() < b.Uint()
	case a.Kind() == reflect.String && b.Kind() == reflect.String:
		return a.String() < b.String()
	}
	return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
}

func isIntKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUintKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// parseTag splits a yaml struct tag into its name and options.
func parseTag(tag string) (string, map[string]bool) {
	parts := strings.Split(tag, ",")
	name := parts[0]
	options := make(map[string]bool)
	for _, part := range parts[1:] {
		options[strings.TrimSpace(part)] = true
	}
	return name, options
}

// isEmptyValue reports whether the value v is empty.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
