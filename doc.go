/*
Package yaml renders in-memory value trees as block-style YAML text, with
optional human-readable comments carried in a side-channel tree that mirrors
the value's shape.

Values are built from an explicit tagged union: Scalar, Sequence, and
Mapping. FromGoValue converts arbitrary Go values (slices, maps, structs
with `yaml` field tags) into that union.

The Inline option controls how many nesting levels are rendered in block
style before the dumper switches to single-line flow style:

	node := yaml.Mapping{
		{Key: "name", Value: yaml.Scalar{Value: "demo"}},
		{Key: "ports", Value: yaml.Sequence{
			yaml.Scalar{Value: 80},
			yaml.Scalar{Value: 443},
		}},
	}

	out, err := yaml.Dump(node, yaml.Inline(2))
	if err != nil {
		// handle error
	}
	// name: demo
	// ports:
	//     - 80
	//     - 443

Comments are attached through a CommentTree keyed the same way as the value.
A bare string entry is shorthand for a comment on the child at that key; a
nested CommentTree may carry its own comment under the SelfComment key:

	comments := yaml.CommentTree{
		yaml.SelfComment: "generated, do not edit",
		"ports":          "listen ports",
	}

	out, err := yaml.DumpCommented(node, comments, yaml.Inline(2))
	// # generated, do not edit
	// name: demo
	// # listen ports
	// ports:
	//     - 80
	//     - 443

The comment tree is a best-effort overlay: keys it holds that do not exist
in the value are silently ignored, and value keys it does not cover simply
receive no comment.

Rendering is pure: a call either returns the complete text or an error from
the flow-style encoder (UnsupportedTypeError under StrictTypes). Parsing
YAML back into values is out of scope for this package.
*/
package yaml
