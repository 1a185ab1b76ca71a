package yaml

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// encodeInline renders node as a single line of flow-style YAML. The dumper
// treats the result as opaque text; it is never inspected or re-parsed.
func encodeInline(node Node, o *dumpOptions) (string, error) {
	switch n := node.(type) {
	case Scalar:
		return encodeScalar(n.Value, o)
	case Sequence:
		return encodeFlowSequence(n, o)
	case Mapping:
		return encodeFlowMapping(n, o)
	}
	// A nil Node reads as a null scalar.
	return "null", nil
}

func encodeFlowSequence(seq Sequence, o *dumpOptions) (string, error) {
	if len(seq) == 0 {
		return "[]", nil
	}
	parts := make([]string, len(seq))
	for i, elem := range seq {
		s, err := encodeInline(elem, o)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

func encodeFlowMapping(m Mapping, o *dumpOptions) (string, error) {
	if len(m) == 0 {
		return "{ }", nil
	}
	parts := make([]string, len(m))
	for i, pair := range m {
		key, err := encodeScalar(pair.Key, o)
		if err != nil {
			return "", err
		}
		value, err := encodeInline(pair.Value, o)
		if err != nil {
			return "", err
		}
		parts[i] = key + ": " + value
	}
	return "{ " + strings.Join(parts, ", ") + " }", nil
}

// encodeScalar renders a single scalar value, including mapping keys.
func encodeScalar(v any, o *dumpOptions) (string, error) {
	switch s := v.(type) {
	case nil:
		return "null", nil
	case bool:
		if s {
			return "true", nil
		}
		return "false", nil
	case string:
		return encodeString(s), nil
	case int:
		return strconv.Itoa(s), nil
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10), nil
	case float32:
		return formatFloat(float64(s), 32), nil
	case float64:
		return formatFloat(s, 64), nil
	}
	return encodeOpaque(v, o)
}

// formatFloat keeps dumped floats re-parseable as floats: integral values
// get a trailing ".0", non-finite values use the YAML core-schema
// spellings.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return ".NaN"
	case math.IsInf(f, 1):
		return ".Inf"
	case math.IsInf(f, -1):
		return "-.Inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// encodeOpaque handles values outside the scalar domain. Live handles have
// no textual form at all; everything else renders as its quoted fmt form
// when objects are allowed. Otherwise the value degrades to null, or to an
// UnsupportedTypeError under StrictTypes.
func encodeOpaque(v any, o *dumpOptions) (string, error) {
	switch reflect.TypeOf(v).Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if o.strictTypes {
			return "", &UnsupportedTypeError{Type: reflect.TypeOf(v)}
		}
		return "null", nil
	}
	if o.allowObjects {
		s := fmt.Sprint(v)
		if requiresDoubleQuoting(s) {
			return escapeWithDoubleQuotes(s), nil
		}
		return escapeWithSingleQuotes(s), nil
	}
	if o.strictTypes {
		return "", &UnsupportedTypeError{Type: reflect.TypeOf(v)}
	}
	return "null", nil
}
