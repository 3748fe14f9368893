package cssselect

import (
	"fmt"
	"strings"
)

type ParseOptions struct {
	// XMLMode keeps tag and attribute names as written.
	XMLMode bool
	// LowerCaseTags and LowerCaseAttributeNames override the XMLMode
	// default when set.
	LowerCaseTags           *bool
	LowerCaseAttributeNames *bool
}

type ParseOption func(ParseOptions) ParseOptions

func WithXMLMode(xml bool) ParseOption {
	return func(po ParseOptions) ParseOptions {
		po.XMLMode = xml
		return po
	}
}

func WithLowerCaseTags(lower bool) ParseOption {
	return func(po ParseOptions) ParseOptions {
		po.LowerCaseTags = &lower
		return po
	}
}

func WithLowerCaseAttributeNames(lower bool) ParseOption {
	return func(po ParseOptions) ParseOptions {
		po.LowerCaseAttributeNames = &lower
		return po
	}
}

func (po ParseOptions) lowerCaseTags() bool {
	if po.LowerCaseTags != nil {
		return *po.LowerCaseTags
	}
	return !po.XMLMode
}

func (po ParseOptions) lowerCaseAttributeNames() bool {
	if po.LowerCaseAttributeNames != nil {
		return *po.LowerCaseAttributeNames
	}
	return !po.XMLMode
}

var traversals = map[byte]SelectorType{
	'>': SelectorTypeChild,
	'<': SelectorTypeParent,
	'~': SelectorTypeSibling,
	'+': SelectorTypeAdjacent,
}

var attributeActions = map[byte]AttributeAction{
	'~': AttributeElement,
	'^': AttributeStart,
	'$': AttributeEnd,
	'*': AttributeAny,
	'!': AttributeNot,
	'|': AttributeHyphen,
}

// Pseudo-classes whose argument is itself a selector list.
var unpackPseudos = map[string]struct{}{
	"has":          {},
	"not":          {},
	"matches":      {},
	"is":           {},
	"where":        {},
	"host":         {},
	"host-context": {},
}

var stripQuotesFromPseudos = map[string]struct{}{
	"contains":  {},
	"icontains": {},
}

// Legacy single colon pseudo-elements.
var pseudosToPseudoElements = map[string]struct{}{
	"before":       {},
	"after":        {},
	"first-line":   {},
	"first-letter": {},
}

// Parse parses a selector list. An empty (or all whitespace) selector yields
// a list holding a single empty group.
func Parse(selector string, opts ...ParseOption) (SelectorList, error) {
	cfg := ParseOptions{}
	for _, o := range opts {
		cfg = o(cfg)
	}
	p := &parser{
		cursor: cursor{s: selector},
		opts:   cfg,
	}
	var list SelectorList
	if err := p.parseSelectorList(&list); err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.fail(ErrUnmatchedTrailingInput)
	}
	if len(list) == 0 {
		return SelectorList{SelectorGroup{}}, nil
	}
	return list, nil
}

type parser struct {
	cursor
	opts ParseOptions
}

func (p *parser) fail(err error) error {
	return &SyntaxError{
		Err:      err,
		Offset:   p.i,
		Selector: p.s,
	}
}

// parseSelectorList appends groups to list until the input ends or a
// character that cannot start a token (`)` in a nested list) is reached.
// The cursor is left on that character.
func (p *parser) parseSelectorList(list *SelectorList) error {
	var b groupBuilder

	p.skipWhitespace()
	if p.eof() {
		return nil
	}

loop:
	for !p.eof() {
		c := p.peek()
		switch {
		case isWhitespace(c):
			b.addDescendant()
			p.skipWhitespace()
		case traversals[c] != 0:
			if err := b.addTraversal(traversals[c]); err != nil {
				return p.fail(err)
			}
			p.i++
			p.skipWhitespace()
		case c == '.' || c == '#':
			name, action := "class", AttributeElement
			if c == '#' {
				name, action = "id", AttributeEquals
			}
			value, err := p.readShorthandName(1)
			if err != nil {
				return p.fail(err)
			}
			b.push(AttributeSelector{
				Name:       name,
				Action:     action,
				Value:      value,
				IgnoreCase: IgnoreCaseQuirks,
			})
		case c == '[':
			attr, err := p.parseAttribute()
			if err != nil {
				return err
			}
			b.push(attr)
		case c == ':':
			tok, err := p.parsePseudo()
			if err != nil {
				return err
			}
			b.push(tok)
		case c == ',':
			group, err := b.finalize()
			if err != nil {
				return p.fail(err)
			}
			*list = append(*list, group)
			p.i++
			p.skipWhitespace()
		case p.hasPrefix("/*"):
			end := strings.Index(p.s[p.i+2:], "*/")
			if end < 0 {
				return p.fail(ErrUnterminatedComment)
			}
			p.i += 2 + end + 2
		default:
			ok, err := p.parseTag(&b)
			if err != nil {
				return err
			}
			if !ok {
				break loop
			}
		}
	}

	group, err := b.finalize()
	if err != nil {
		return p.fail(err)
	}
	*list = append(*list, group)
	return nil
}

// parseTag reads a tag name, `*`, a namespace prefix or the `||` column
// combinator. It returns false when nothing at the cursor starts one.
func (p *parser) parseTag(b *groupBuilder) (bool, error) {
	var name string
	universal := false
	switch c := p.peek(); {
	case c == '*':
		// only a literal star; an escaped `\*` is read as a name below
		p.i++
		name, universal = "*", true
	case c == '|':
		if p.peekAt(1) == '|' {
			if err := b.addTraversal(SelectorTypeColumnCombinator); err != nil {
				return false, p.fail(err)
			}
			p.i += 2
			p.skipWhitespace()
			return true, nil
		}
	case nameLength(p.s, p.i) > 0:
		var err error
		if name, err = p.readName(0); err != nil {
			return false, p.fail(err)
		}
	default:
		return false, nil
	}

	var ns Namespace
	if p.peek() == '|' && p.peekAt(1) != '|' {
		ns = NamespacePrefix(name)
		if p.peekAt(1) == '*' {
			universal = true
			p.i += 2
		} else {
			var err error
			if name, err = p.readName(1); err != nil {
				return false, p.fail(err)
			}
			universal = false
		}
	}

	if universal {
		b.push(UniversalSelector{Namespace: ns})
		return true, nil
	}
	if p.opts.lowerCaseTags() {
		name = strings.ToLower(name)
	}
	b.push(TagSelector{Name: name, Namespace: ns})
	return true, nil
}

func (p *parser) parseAttribute() (AttributeSelector, error) {
	attr := AttributeSelector{}
	p.i++
	p.skipWhitespace()

	var err error
	switch {
	case p.peek() == '|' && p.peekAt(1) != '=':
		attr.Namespace = NoNamespace
		attr.Name, err = p.readName(1)
	case p.hasPrefix("*|") && p.peekAt(2) != '=':
		attr.Namespace = AnyNamespace
		attr.Name, err = p.readName(2)
	default:
		attr.Name, err = p.readName(0)
		if err == nil && p.peek() == '|' && p.peekAt(1) != '=' {
			attr.Namespace = NamespacePrefix(attr.Name)
			attr.Name, err = p.readName(1)
		}
	}
	if err != nil {
		return attr, p.fail(fmt.Errorf("%w: %w", ErrMalformedAttributeSelector, err))
	}
	if p.opts.lowerCaseAttributeNames() {
		attr.Name = strings.ToLower(attr.Name)
	}

	p.skipWhitespace()

	if action, ok := attributeActions[p.peek()]; ok {
		if p.peekAt(1) != '=' {
			p.i++
			return attr, p.fail(ErrExpectedEquals)
		}
		attr.Action = action
		p.i += 2
		p.skipWhitespace()
	} else if p.peek() == '=' {
		attr.Action = AttributeEquals
		p.i++
		p.skipWhitespace()
	}

	if attr.Action != AttributeExists {
		if quote := p.peek(); isQuote(quote) {
			end := p.i + 1
			for end < len(p.s) && (p.s[end] != quote || isEscapedAt(p.s, end)) {
				end++
			}
			if end >= len(p.s) {
				return attr, p.fail(ErrAttributeValueDidntEnd)
			}
			attr.Value = Unescape(p.s[p.i+1 : end])
			p.i = end + 1
		} else {
			start := p.i
			for p.i < len(p.s) && ((!isWhitespace(p.s[p.i]) && p.s[p.i] != ']') || isEscapedAt(p.s, p.i)) {
				p.i++
			}
			attr.Value = Unescape(p.s[start:p.i])
		}

		p.skipWhitespace()

		switch p.peek() | 0x20 {
		case 'i':
			attr.IgnoreCase = IgnoreCaseTrue
			p.i++
			p.skipWhitespace()
		case 's':
			attr.IgnoreCase = IgnoreCaseFalse
			p.i++
			p.skipWhitespace()
		}
	}

	if p.eof() || p.peek() != ']' {
		return attr, p.fail(ErrAttributeSelectorDidntTerminate)
	}
	p.i++
	return attr, nil
}

func (p *parser) parsePseudo() (Token, error) {
	if p.peekAt(1) == ':' {
		name, err := p.readName(2)
		if err != nil {
			return nil, p.fail(err)
		}
		elem := PseudoElement{Name: strings.ToLower(name)}
		if p.peek() == '(' {
			p.i++
			raw, err := p.readBalancedParens()
			if err != nil {
				return nil, p.fail(err)
			}
			elem.Data = PseudoString(Unescape(raw))
		}
		return elem, nil
	}

	name, err := p.readName(1)
	if err != nil {
		return nil, p.fail(err)
	}
	name = strings.ToLower(name)

	if _, ok := pseudosToPseudoElements[name]; ok {
		return PseudoElement{Name: name}, nil
	}

	pseudo := PseudoSelector{Name: name}
	if p.peek() != '(' {
		return pseudo, nil
	}

	if _, ok := unpackPseudos[name]; ok {
		if isQuote(p.peekAt(1)) {
			p.i++
			return nil, p.fail(fmt.Errorf("%w: :%s", ErrPseudoCannotBeQuoted, name))
		}
		p.i++
		var data SelectorList
		if err := p.parseSelectorList(&data); err != nil {
			return nil, err
		}
		if p.eof() || p.peek() != ')' {
			return nil, p.fail(fmt.Errorf("%w in :%s", ErrMissingClosingParenthesis, name))
		}
		p.i++
		pseudo.Data = data
		return pseudo, nil
	}

	p.i++
	raw, err := p.readBalancedParens()
	if err != nil {
		return nil, p.fail(err)
	}
	if _, ok := stripQuotesFromPseudos[name]; ok && len(raw) >= 2 {
		if q := raw[0]; isQuote(q) && raw[len(raw)-1] == q {
			raw = raw[1 : len(raw)-1]
		}
	}
	pseudo.Data = PseudoString(Unescape(raw))
	return pseudo, nil
}

// groupBuilder accumulates the tokens of one group.
type groupBuilder struct {
	tokens SelectorGroup
}

func (b *groupBuilder) push(t Token) {
	b.tokens = append(b.tokens, t)
}

func (b *groupBuilder) last() Token {
	if len(b.tokens) == 0 {
		return nil
	}
	return b.tokens[len(b.tokens)-1]
}

func (b *groupBuilder) lastIsDescendant() bool {
	t, ok := b.last().(Traversal)
	return ok && t.Kind == SelectorTypeDescendant
}

// addDescendant records whitespace. It is a no-op at the start of a group
// and after another traversal; a trailing one is dropped by finalize.
func (b *groupBuilder) addDescendant() {
	if len(b.tokens) == 0 || IsTraversal(b.last()) {
		return
	}
	b.push(Traversal{Kind: SelectorTypeDescendant})
}

// addTraversal adds an explicit combinator. A descendant left by the
// whitespace before it is upgraded in place.
func (b *groupBuilder) addTraversal(kind SelectorType) error {
	if b.lastIsDescendant() {
		b.upgradeLastTraversal(kind)
		return nil
	}
	if IsTraversal(b.last()) {
		return ErrSuccessiveTraversals
	}
	b.push(Traversal{Kind: kind})
	return nil
}

func (b *groupBuilder) upgradeLastTraversal(kind SelectorType) {
	b.tokens[len(b.tokens)-1] = Traversal{Kind: kind}
}

// finalize trims a trailing descendant and hands the group over, resetting
// the builder.
func (b *groupBuilder) finalize() (SelectorGroup, error) {
	if b.lastIsDescendant() {
		b.tokens = b.tokens[:len(b.tokens)-1]
	}
	if len(b.tokens) == 0 {
		return nil, ErrEmptySubSelector
	}
	group := b.tokens
	b.tokens = nil
	return group, nil
}
