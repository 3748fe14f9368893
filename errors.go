package cssselect

import (
	"fmt"
	"strings"
)

var (
	ErrUnmatchedTrailingInput          = fmt.Errorf("unexpected trailing input")
	ErrEmptySubSelector                = fmt.Errorf("empty sub-selector")
	ErrSuccessiveTraversals            = fmt.Errorf("did not expect successive traversals")
	ErrUnterminatedComment             = fmt.Errorf("comment was not terminated")
	ErrExpectedName                    = fmt.Errorf("expected name")
	ErrMalformedAttributeSelector      = fmt.Errorf("malformed attribute selector")
	ErrAttributeValueDidntEnd          = fmt.Errorf("attribute value didn't end")
	ErrAttributeSelectorDidntTerminate = fmt.Errorf("attribute selector didn't terminate")
	ErrExpectedEquals                  = fmt.Errorf("expected `=`")
	ErrParenthesisNotMatched           = fmt.Errorf("parenthesis not matched")
	ErrMissingClosingParenthesis       = fmt.Errorf("missing closing parenthesis")
	ErrPseudoCannotBeQuoted            = fmt.Errorf("pseudo-selector cannot be quoted")
)

// SyntaxError is returned by Parse. Err is one of the Err* values above,
// possibly wrapped with more detail.
type SyntaxError struct {
	Err      error
	Offset   int // byte offset into Selector
	Selector string
}

func (e *SyntaxError) Error() string {
	rest := ""
	if e.Offset >= 0 && e.Offset <= len(e.Selector) {
		rest = e.Selector[e.Offset:]
	}
	var sb strings.Builder
	sb.WriteString(e.Err.Error())
	fmt.Fprintf(&sb, " at offset %d", e.Offset)
	if rest != "" {
		fmt.Fprintf(&sb, ", found %q", rest)
	} else {
		sb.WriteString(", found end of input")
	}
	return sb.String()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
