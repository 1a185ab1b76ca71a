package yaml

import "strings"

const defaultIndentation = 4

// Dumper renders Node trees as block-style YAML. The zero value is not
// usable; create instances with NewDumper.
//
// A Dumper is safe for concurrent Dump calls as long as SetIndentation is
// not called while a dump is in flight.
type Dumper struct {
	indentation int
}

// NewDumper returns a Dumper with the default indentation of four spaces
// per nesting level.
func NewDumper() *Dumper {
	return &Dumper{indentation: defaultIndentation}
}

// SetIndentation sets the number of spaces added per nesting level for all
// subsequent dumps. It panics if n is less than one.
func (d *Dumper) SetIndentation(n int) {
	if n < 1 {
		panic("yaml: indentation must be greater than zero")
	}
	d.indentation = n
}

// Dump renders node as YAML text. It is equivalent to DumpCommented with an
// empty comment tree.
func (d *Dumper) Dump(node Node, opts ...DumpOption) (string, error) {
	return d.DumpCommented(node, nil, opts...)
}

// DumpCommented renders node as YAML text, attaching comments from the
// overlay tree to the nodes they annotate.
//
// Flow-style output (see Inline) carries no trailing line break; block-style
// output ends every line, including the last, with one.
func (d *Dumper) DumpCommented(node Node, comments CommentTree, opts ...DumpOption) (string, error) {
	o := dumpOptions{}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	if self, ok := comments.selfComment(); ok {
		b.WriteString(formatComment(self, o.offset))
	}
	if err := d.dump(&b, node, comments, o.inline, o.offset, &o); err != nil {
		return "", err
	}
	return b.String(), nil
}

// dump writes node below any already-emitted self-comment. Self-comments
// are always emitted by the caller, so the overlay tree is never mutated:
// the root's by DumpCommented, a child's by its parent just before the
// child's head.
func (d *Dumper) dump(b *strings.Builder, node Node, comments CommentTree, inline, indent int, o *dumpOptions) error {
	if isFlow(node, inline) {
		writeIndent(b, indent)
		s, err := encodeInline(node, o)
		if err != nil {
			return err
		}
		b.WriteString(s)
		return nil
	}

	switch n := node.(type) {
	case Mapping:
		for _, pair := range n {
			child := comments.childComments(pair.Key)
			if self, ok := child.selfComment(); ok {
				b.WriteString(formatComment(self, indent))
			}
			key, err := encodeScalar(pair.Key, o)
			if err != nil {
				return err
			}
			if err := d.dumpChild(b, pair.Value, child, key+":", inline, indent, o); err != nil {
				return err
			}
		}
	case Sequence:
		for i, elem := range n {
			child := comments.childComments(i)
			if self, ok := child.selfComment(); ok {
				b.WriteString(formatComment(self, indent))
			}
			if err := d.dumpChild(b, elem, child, "-", inline, indent, o); err != nil {
				return err
			}
		}
	}
	return nil
}

// dumpChild emits one head line for a container entry and the entry's value
// under it. Flow children share the head's line and end it; block children
// start on the next line, one indentation step deeper.
func (d *Dumper) dumpChild(b *strings.Builder, child Node, comments CommentTree, head string, inline, indent int, o *dumpOptions) error {
	writeIndent(b, indent)
	b.WriteString(head)
	if isFlow(child, inline-1) {
		b.WriteByte(' ')
		if err := d.dump(b, child, comments, inline-1, 0, o); err != nil {
			return err
		}
		b.WriteByte('\n')
		return nil
	}
	b.WriteByte('\n')
	return d.dump(b, child, comments, inline-1, indent+d.indentation, o)
}

// isFlow reports whether node renders in flow style given the remaining
// inline budget: the budget is exhausted, the node is a scalar, or the
// container has no children. Empty containers render in flow style at any
// budget.
func isFlow(node Node, inline int) bool {
	if inline <= 0 {
		return true
	}
	switch n := node.(type) {
	case Sequence:
		return len(n) == 0
	case Mapping:
		return len(n) == 0
	}
	return true
}

func writeIndent(b *strings.Builder, columns int) {
	for i := 0; i < columns; i++ {
		b.WriteByte(' ')
	}
}
