package yaml

import "fmt"

// dumpOptions holds the per-call rendering options.
type dumpOptions struct {
	inline       int
	offset       int
	strictTypes  bool
	allowObjects bool
}

// DumpOption configures a single Dump or DumpCommented call.
type DumpOption func(*dumpOptions) error

// Inline returns a DumpOption that sets how many nesting levels are rendered
// in block style before the dumper switches to flow style. A level of 0, the
// default, renders the whole value on a single flow-style line.
//
// The level must not be negative.
func Inline(level int) DumpOption {
	return func(o *dumpOptions) error {
		if level < 0 {
			return fmt.Errorf("yaml: inline level must not be negative")
		}
		o.inline = level
		return nil
	}
}

// Offset returns a DumpOption that indents every top-level line by the given
// number of columns. Nested blocks indent further from there.
//
// The column count must not be negative.
func Offset(columns int) DumpOption {
	return func(o *dumpOptions) error {
		if columns < 0 {
			return fmt.Errorf("yaml: offset must not be negative")
		}
		o.offset = columns
		return nil
	}
}

// StrictTypes returns a DumpOption that makes the dump fail with an
// UnsupportedTypeError when it meets a value the format has no
// representation for, instead of degrading the value to null.
func StrictTypes() DumpOption {
	return func(o *dumpOptions) error {
		o.strictTypes = true
		return nil
	}
}

// AllowObjects returns a DumpOption that renders opaque values (structs,
// pointers and other non-scalar Go values stored in a Scalar) as their
// quoted string form instead of treating them as unsupported. Live handles
// such as channels and functions stay unsupported regardless.
func AllowObjects() DumpOption {
	return func(o *dumpOptions) error {
		o.allowObjects = true
		return nil
	}
}
