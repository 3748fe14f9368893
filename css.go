package cssselect

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// we don't descend into at-rules

// Rule is one qualified rule of a stylesheet.
type Rule struct {
	// Prelude is the selector text as written, comments removed.
	Prelude      string
	Selectors    SelectorList
	Declarations map[string]string
	// Properties lists the keys of Declarations in the order they first
	// appeared.
	Properties []string
}

type Stylesheet struct {
	Rules []Rule
}

// Merge appends the rules of s2 after those of s.
func (s Stylesheet) Merge(s2 Stylesheet) Stylesheet {
	s.Rules = append(s.Rules, s2.Rules...)
	return s
}

// Selectors flattens the groups of every rule, in source order.
func (s Stylesheet) Selectors() SelectorList {
	var out SelectorList
	for _, r := range s.Rules {
		out = append(out, r.Selectors...)
	}
	return out
}

// ParseStylesheet splits css into rules and parses each rule's prelude.
// Rules whose prelude does not parse are left out, and their errors are
// combined into the returned error; the remaining rules are returned either
// way.
func ParseStylesheet(css string, opts ...ParseOption) (Stylesheet, error) {
	var (
		sheet Stylesheet
		errs  error
	)
	s := stripComments(css)
	for index := 0; ; {
		s = strings.TrimLeft(s, " \n\t\r\f")
		if s == "" {
			break
		}
		if s[0] == '@' {
			s = skipAtRule(s)
			continue
		}
		open := indexOutsideStrings(s, "{")
		if open == -1 {
			// trailing text with no block
			break
		}
		prelude := strings.TrimSpace(s[:open])
		var block string
		if end := blockEnd(s, open); end == -1 {
			block, s = s[open+1:], ""
		} else {
			block, s = s[open+1:end], s[end+1:]
		}

		i := index
		index++
		if prelude == "" {
			errs = multierr.Append(errs, fmt.Errorf("rule %d: %w", i, ErrEmptySubSelector))
			continue
		}
		sel, err := Parse(prelude, opts...)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rule %d %q: %w", i, prelude, err))
			continue
		}
		props, decls := parseSemiSeparatedMapWithOrder(block)
		sheet.Rules = append(sheet.Rules, Rule{
			Prelude:      prelude,
			Selectors:    sel,
			Declarations: decls,
			Properties:   props,
		})
	}
	return sheet, errs
}

// stripComments removes every /* */ comment that is not inside a string. An
// unterminated comment runs to the end of the input.
func stripComments(s string) string {
	if !strings.Contains(s, "/*") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s):
			sb.WriteString(s[i : i+2])
			i += 2
		case isQuote(c):
			end := stringEnd(s, i)
			sb.WriteString(s[i:end])
			i = end
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			j := strings.Index(s[i+2:], "*/")
			if j == -1 {
				return sb.String()
			}
			i += 2 + j + 2
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// stringEnd returns the index just past the string opened by the quote at
// s[start], or len(s) if it never closes.
func stringEnd(s string, start int) int {
	quote := s[start]
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}
	return len(s)
}

// indexOutsideStrings is strings.IndexAny that ignores quoted and escaped
// bytes.
func indexOutsideStrings(s, chars string) int {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\':
			i++
		case isQuote(c):
			i = stringEnd(s, i) - 1
		case strings.IndexByte(chars, c) >= 0:
			return i
		}
	}
	return -1
}

// blockEnd returns the index of the `}` matching the `{` at s[open], or -1.
func blockEnd(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\':
			i++
		case isQuote(c):
			i = stringEnd(s, i) - 1
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// skipAtRule drops the at-rule at the start of s, including its block if it
// has one.
func skipAtRule(s string) string {
	i := indexOutsideStrings(s, ";{")
	switch {
	case i == -1:
		return ""
	case s[i] == ';':
		return s[i+1:]
	}
	end := blockEnd(s, i)
	if end == -1 {
		return ""
	}
	return s[end+1:]
}

// parseSemiSeparatedMapWithOrder reads `key: value; ...` declarations. Later
// duplicates win; the order slice holds each key once, where it first
// appeared.
func parseSemiSeparatedMapWithOrder(data string) ([]string, map[string]string) {
	vals := strings.Split(data, ";")
	out := make(map[string]string, len(vals))
	outOrder := make([]string, 0, len(vals))
	for _, v := range vals {
		k, val, ok := strings.Cut(v, ":")
		if !ok {
			// ignore bad formatted thing
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, seen := out[k]; !seen {
			outOrder = append(outOrder, k)
		}
		out[k] = strings.TrimSpace(val)
	}
	return outOrder, out
}
