package cssselect

import "unicode/utf8"

// cursor is a position in a selector string. The parser owns exactly one
// and hands it down into nested selector lists.
type cursor struct {
	s string
	i int
}

func (c *cursor) eof() bool {
	return c.i >= len(c.s)
}

// peek returns the byte at the cursor, or 0 at the end of input.
func (c *cursor) peek() byte {
	return c.peekAt(0)
}

func (c *cursor) peekAt(n int) byte {
	if c.i+n < len(c.s) {
		return c.s[c.i+n]
	}
	return 0
}

func (c *cursor) hasPrefix(prefix string) bool {
	return len(c.s)-c.i >= len(prefix) && c.s[c.i:c.i+len(prefix)] == prefix
}

func (c *cursor) skipWhitespace() {
	for c.i < len(c.s) && isWhitespace(c.s[c.i]) {
		c.i++
	}
}

// readName skips offset bytes and reads an identifier, returning it
// unescaped.
func (c *cursor) readName(offset int) (string, error) {
	n := nameLength(c.s, c.i+offset)
	if n == 0 {
		c.i += offset
		return "", ErrExpectedName
	}
	start := c.i + offset
	c.i = start + n
	return Unescape(c.s[start:c.i]), nil
}

// readShorthandName is readName for `#` and `.`, whose value may begin with
// one character that is otherwise not part of a name (`#.identifier`).
func (c *cursor) readShorthandName(offset int) (string, error) {
	start := c.i + offset
	n := 0
	if start < len(c.s) {
		r, size := utf8.DecodeRuneInString(c.s[start:])
		if !isNameRune(r) && r != '\\' && !isShorthandExcluded(r) {
			if units := nameLength(c.s, start+size); units > 0 {
				n = size + units
			}
		}
	}
	if n == 0 {
		return c.readName(offset)
	}
	c.i = start + n
	return Unescape(c.s[start:c.i]), nil
}

// readBalancedParens expects the cursor just past an opening parenthesis and
// returns the raw text up to its matching closing parenthesis, leaving the
// cursor after it. Escaped parentheses do not count.
func (c *cursor) readBalancedParens() (string, error) {
	start := c.i
	depth := 1
	for i := start; i < len(c.s); i++ {
		switch c.s[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				c.i = i + 1
				return c.s[start:i], nil
			}
		}
	}
	return "", ErrParenthesisNotMatched
}

// nameLength returns the byte length of the identifier starting at pos, or 0
// if there is none.
func nameLength(s string, pos int) int {
	i := pos
	for i < len(s) {
		if s[i] == '\\' {
			n := escapeLength(s, i)
			if n == 0 {
				break
			}
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isNameRune(r) {
			break
		}
		i += size
	}
	return i - pos
}

// escapeLength returns the byte length of the escape sequence starting with
// the backslash at s[pos], or 0 if the backslash does not start one.
func escapeLength(s string, pos int) int {
	i := pos + 1
	if i >= len(s) {
		return 0
	}
	switch c := s[i]; {
	case isHexDigit(c):
		j := i
		for j < len(s) && j-i < 6 && isHexDigit(s[j]) {
			j++
		}
		if j < len(s) && isWhitespace(s[j]) {
			j++
		}
		return j - pos
	case c == '\n' || c == '\r' || c == '\f':
		return 0
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return 1 + size
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// isNameRune reports whether r may appear unescaped in an identifier.
func isNameRune(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' ||
		r == '-' || r == '_' || r >= 0xb0
}

func isShorthandExcluded(r rune) bool {
	switch r {
	case '#', ' ', '\t', '\n', '\f', '\r', ')', ',':
		return true
	}
	return false
}
