package yaml

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Flow-scalar string quoting. Strings render plain when unambiguous,
// single-quoted when a plain rendering could be read back as another scalar
// or trip over indicator characters, and double-quoted when they contain
// control characters or bytes that are not valid UTF-8.

// flowIndicators are characters that make a plain scalar ambiguous wherever
// they appear.
const flowIndicators = ",[]{}#&*!|>'\"%@`"

func encodeString(s string) string {
	switch {
	case requiresDoubleQuoting(s):
		return escapeWithDoubleQuotes(s)
	case requiresSingleQuoting(s):
		return escapeWithSingleQuotes(s)
	default:
		return s
	}
}

func requiresDoubleQuoting(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}

func requiresSingleQuoting(s string) bool {
	if s == "" {
		return true
	}
	if strings.TrimSpace(s) != s {
		return true
	}
	if strings.ContainsAny(s, flowIndicators) {
		return true
	}
	if strings.Contains(s, ": ") || strings.HasSuffix(s, ":") {
		return true
	}
	switch s[0] {
	case '-', '?', ':':
		return true
	}
	return looksLikeOtherScalar(s)
}

// looksLikeOtherScalar reports whether a plain rendering of s would be read
// back as a non-string scalar.
func looksLikeOtherScalar(s string) bool {
	switch strings.ToLower(s) {
	case "null", "~", "true", "false", "yes", "no", "on", "off", ".inf", "-.inf", ".nan":
		return true
	}
	if _, err := strconv.ParseInt(s, 0, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	return false
}

func escapeWithSingleQuotes(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func escapeWithDoubleQuotes(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&b, `\x%02X`, s[i])
			i++
			continue
		}
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case 0x00:
			b.WriteString(`\0`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case 0x1b:
			b.WriteString(`\e`)
		default:
			switch {
			case r < 0x20 || r == 0x7f:
				fmt.Fprintf(&b, `\x%02X`, r)
			default:
				b.WriteRune(r)
			}
		}
		i += size
	}
	b.WriteByte('"')
	return b.String()
}
