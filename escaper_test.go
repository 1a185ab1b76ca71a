package yaml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hello", "hello"},
		{"plain with spaces", "hello world", "hello world"},
		{"plain with inner colon", "a:b", "a:b"},
		{"plain with inner dash", "a-b", "a-b"},
		{"plain with backslash", `a\b`, `a\b`},
		{"plain unicode", "café", "café"},

		{"empty", "", "''"},
		{"leading space", " x", "' x'"},
		{"trailing space", "x ", "'x '"},
		{"colon followed by space", "a: b", "'a: b'"},
		{"trailing colon", "a:", "'a:'"},
		{"leading dash", "-x", "'-x'"},
		{"leading question mark", "?x", "'?x'"},
		{"hash", "a#b", "'a#b'"},
		{"brackets", "[x]", "'[x]'"},
		{"comma", "a,b", "'a,b'"},
		{"at sign", "@x", "'@x'"},
		{"double quote inside", `say "hi"`, `'say "hi"'`},
		{"single quote doubled", "it's", "'it''s'"},

		{"looks like bool", "true", "'true'"},
		{"looks like legacy bool", "Yes", "'Yes'"},
		{"looks like null", "null", "'null'"},
		{"tilde", "~", "'~'"},
		{"looks like int", "123", "'123'"},
		{"looks like hex int", "0x1F", "'0x1F'"},
		{"looks like float", "12.5", "'12.5'"},
		{"looks like exponent", "1e3", "'1e3'"},

		{"newline", "line\nbreak", `"line\nbreak"`},
		{"tab", "a\tb", `"a\tb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"escape character", "\x1b[0m", `"\e[0m"`},
		{"null byte", "a\x00b", `"a\0b"`},
		{"delete", "a\x7fb", `"a\x7Fb"`},
		{"invalid utf8", "a\xffb", `"a\xFFb"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, encodeString(tc.input))
		})
	}
}
