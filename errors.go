package yaml

import "reflect"

// An UnsupportedTypeError is returned when dumping a value of a type the
// format has no representation for.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return "yaml: unsupported type: " + e.Type.String()
}
