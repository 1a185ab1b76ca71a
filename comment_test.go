package yaml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommentTree_ChildComments(t *testing.T) {
	c := CommentTree{
		"a": "note",
		"b": CommentTree{SelfComment: "own", "x": "inner"},
		"c": 42,
	}

	t.Run("string entry is normalized to a self-comment", func(t *testing.T) {
		require.Equal(t, CommentTree{SelfComment: "note"}, c.childComments("a"))
	})

	t.Run("tree entry is returned unchanged", func(t *testing.T) {
		require.Equal(t, CommentTree{SelfComment: "own", "x": "inner"}, c.childComments("b"))
	})

	t.Run("absent key", func(t *testing.T) {
		require.Nil(t, c.childComments("missing"))
	})

	t.Run("entry of unexpected type is ignored", func(t *testing.T) {
		require.Nil(t, c.childComments("c"))
	})

	t.Run("nil tree", func(t *testing.T) {
		var nilTree CommentTree
		require.Nil(t, nilTree.childComments("a"))

		_, ok := nilTree.selfComment()
		require.False(t, ok)
	})
}

func TestFormatComment(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		indent   int
		expected string
	}{
		{"empty text", "", 4, ""},
		{"single line", "note", 0, "# note\n"},
		{"indented", "note", 4, "    # note\n"},
		{"multi-line", "one\ntwo", 2, "  # one\n  # two\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, formatComment(tc.text, tc.indent))
		})
	}
}
