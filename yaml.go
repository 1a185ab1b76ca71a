package yaml

// defaultDumper backs the package-level helpers. Its indentation is never
// changed, so it is safe for concurrent use.
var defaultDumper = NewDumper()

// Dump renders node as YAML text using a dumper with the default
// indentation of four spaces.
func Dump(node Node, opts ...DumpOption) (string, error) {
	return defaultDumper.Dump(node, opts...)
}

// DumpCommented renders node as YAML text with comments from the overlay
// tree, using a dumper with the default indentation of four spaces.
func DumpCommented(node Node, comments CommentTree, opts ...DumpOption) (string, error) {
	return defaultDumper.DumpCommented(node, comments, opts...)
}
