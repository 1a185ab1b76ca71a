package yaml

import "strings"

// SelfComment is the reserved CommentTree key holding the comment of the
// annotated node itself, as opposed to a comment on one of its children.
// A mapping that uses "#" as a data key shadows this shorthand.
const SelfComment = "#"

// CommentTree annotates a Node tree with human-readable comments. It mirrors
// the value's shape: each entry is keyed by a mapping key or sequence index
// of the corresponding container, and holds either a comment string for that
// child or a nested CommentTree describing the child's own subtree.
//
// The tree is a best-effort overlay. It need not cover every key of the
// value, and keys without a counterpart in the value are ignored. The dumper
// never mutates or retains it.
type CommentTree map[any]any

// selfComment returns the comment attached to the annotated node itself.
func (c CommentTree) selfComment() (string, bool) {
	s, ok := c[SelfComment].(string)
	return s, ok
}

// childComments returns the comment subtree for the child stored under key,
// or nil when the key is absent. A bare string entry is normalized into a
// subtree holding only a self-comment, so callers can write a shorthand
// comment at any key.
func (c CommentTree) childComments(key any) CommentTree {
	switch v := c[key].(type) {
	case CommentTree:
		return v
	case string:
		return CommentTree{SelfComment: v}
	}
	return nil
}

// formatComment renders text as "# "-prefixed lines at the given indent,
// one output line per input line. Empty text produces nothing. Lines are
// emitted as-is, without wrapping or re-flowing.
func formatComment(text string, indent int) string {
	if text == "" {
		return ""
	}
	prefix := strings.Repeat(" ", indent)
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(prefix)
		b.WriteString("# ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
