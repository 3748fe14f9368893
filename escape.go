package cssselect

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Unescape decodes every CSS escape in s. An escape is a backslash followed
// either by 1 to 6 hex digits and an optional single whitespace character,
// or by any other single character, which is taken literally. A trailing lone
// backslash is kept.
func Unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' || i+1 >= len(s) {
			sb.WriteByte(s[i])
			i++
			continue
		}
		start := i + 1
		if !isHexDigit(s[start]) {
			_, size := utf8.DecodeRuneInString(s[start:])
			sb.WriteString(s[start : start+size])
			i = start + size
			continue
		}
		end := start
		for end < len(s) && end-start < 6 && isHexDigit(s[end]) {
			end++
		}
		next := end
		if next < len(s) && isWhitespace(s[next]) {
			next++
		}
		var r rune
		for _, h := range []byte(s[start:end]) {
			r = r<<4 | rune(hexValue(h))
		}
		if r == 0 || !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		sb.WriteRune(r)
		i = next
	}
	return sb.String()
}

func hexValue(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	}
	return c - '0'
}

// isEscapedAt reports whether s[pos] is preceded by an odd run of
// backslashes.
func isEscapedAt(s string, pos int) bool {
	n := 0
	for i := pos - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n&1 == 1
}

// escapeName escapes every rune of s that is not part of the identifier
// alphabet, so that the result reads back as a single name. Control
// characters use the numeric form.
func escapeName(s string) string {
	clean := true
	for _, r := range s {
		if !isNameRune(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case isNameRune(r):
			sb.WriteString(s[i : i+size])
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&sb, "\\%x ", r)
		default:
			sb.WriteByte('\\')
			sb.WriteString(s[i : i+size])
		}
		i += size
	}
	return sb.String()
}

const (
	attributeValueChars = `\"`
	pseudoValueChars    = `\"'()`
)

// escapeString backslash-escapes the bytes of s found in chars.
func escapeString(s, chars string) string {
	if !strings.ContainsAny(s, chars) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(chars, s[i]) >= 0 {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
