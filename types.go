package cssselect

import "fmt"

// SelectorList is the result of parsing a selector: one SelectorGroup per
// top level comma separated alternative, in source order.
type SelectorList []SelectorGroup

// SelectorGroup is a single selector chain, e.g. `div > .foo`.
type SelectorGroup []Token

// String returns the canonical selector text of the list.
func (sl SelectorList) String() string {
	return Stringify(sl)
}

// Token is a simple selector or a traversal between two runs of simple
// selectors. The set of implementations is closed:
// TagSelector, UniversalSelector, AttributeSelector, PseudoSelector,
// PseudoElement and Traversal.
type Token interface {
	Type() SelectorType
	token()
}

type SelectorType uint8

const (
	SelectorTypeTag SelectorType = iota
	SelectorTypeUniversal
	SelectorTypeAttribute
	SelectorTypePseudo
	SelectorTypePseudoElement

	// Traversals
	SelectorTypeDescendant
	SelectorTypeChild
	SelectorTypeParent
	SelectorTypeSibling
	SelectorTypeAdjacent
	SelectorTypeColumnCombinator
)

var selectorTypeNames = [...]string{
	SelectorTypeTag:              "tag",
	SelectorTypeUniversal:        "universal",
	SelectorTypeAttribute:        "attribute",
	SelectorTypePseudo:           "pseudo",
	SelectorTypePseudoElement:    "pseudo-element",
	SelectorTypeDescendant:       "descendant",
	SelectorTypeChild:            "child",
	SelectorTypeParent:           "parent",
	SelectorTypeSibling:          "sibling",
	SelectorTypeAdjacent:         "adjacent",
	SelectorTypeColumnCombinator: "column-combinator",
}

func (st SelectorType) String() string {
	if int(st) < len(selectorTypeNames) {
		return selectorTypeNames[st]
	}
	return fmt.Sprintf("SelectorType(%d)", uint8(st))
}

// IsTraversal reports whether st is one of the combinator kinds.
func (st SelectorType) IsTraversal() bool {
	return st >= SelectorTypeDescendant && st <= SelectorTypeColumnCombinator
}

// IsTraversal reports whether t is a combinator token.
func IsTraversal(t Token) bool {
	return t != nil && t.Type().IsTraversal()
}

type AttributeAction uint8

const (
	AttributeExists AttributeAction = iota
	AttributeEquals
	AttributeElement
	AttributeStart
	AttributeEnd
	AttributeAny
	AttributeNot
	AttributeHyphen
)

var attributeActionNames = [...]string{
	AttributeExists:  "exists",
	AttributeEquals:  "equals",
	AttributeElement: "element",
	AttributeStart:   "start",
	AttributeEnd:     "end",
	AttributeAny:     "any",
	AttributeNot:     "not",
	AttributeHyphen:  "hyphen",
}

func (aa AttributeAction) String() string {
	if int(aa) < len(attributeActionNames) {
		return attributeActionNames[aa]
	}
	return fmt.Sprintf("AttributeAction(%d)", uint8(aa))
}

// Operator returns the source text of the action, e.g. "^=" for
// AttributeStart. AttributeExists has no operator.
func (aa AttributeAction) Operator() string {
	switch aa {
	case AttributeEquals:
		return "="
	case AttributeElement:
		return "~="
	case AttributeStart:
		return "^="
	case AttributeEnd:
		return "$="
	case AttributeAny:
		return "*="
	case AttributeNot:
		return "!="
	case AttributeHyphen:
		return "|="
	}
	return ""
}

// IgnoreCase records how an attribute value comparison treats case. Only
// IgnoreCaseTrue and IgnoreCaseFalse come from an explicit flag in the source;
// the other two states are left for the consumer to resolve.
type IgnoreCase uint8

const (
	// IgnoreCaseUnknown means no flag was given.
	IgnoreCaseUnknown IgnoreCase = iota
	// IgnoreCaseQuirks marks the `#id` and `.class` shorthands, whose case
	// sensitivity depends on the document's quirks mode.
	IgnoreCaseQuirks
	IgnoreCaseTrue
	IgnoreCaseFalse
)

func (ic IgnoreCase) String() string {
	switch ic {
	case IgnoreCaseUnknown:
		return "unknown"
	case IgnoreCaseQuirks:
		return "quirks"
	case IgnoreCaseTrue:
		return "true"
	case IgnoreCaseFalse:
		return "false"
	}
	return fmt.Sprintf("IgnoreCase(%d)", uint8(ic))
}

// Resolve turns ic into an effective flag. quirksMode is the document mode,
// fallback is used when no flag was given.
func (ic IgnoreCase) Resolve(quirksMode, fallback bool) bool {
	switch ic {
	case IgnoreCaseTrue:
		return true
	case IgnoreCaseFalse:
		return false
	case IgnoreCaseQuirks:
		return quirksMode
	}
	return fallback
}

// Namespace is a namespace constraint. The zero value means no constraint was
// given; a valid empty prefix means "no namespace" (`|name`), and the prefix
// "*" means any namespace.
type Namespace struct {
	Prefix string
	Valid  bool
}

var (
	NoNamespace  = Namespace{Valid: true}
	AnyNamespace = Namespace{Prefix: "*", Valid: true}
)

func NamespacePrefix(prefix string) Namespace {
	return Namespace{Prefix: prefix, Valid: true}
}

func (ns Namespace) IsAny() bool {
	return ns.Valid && ns.Prefix == "*"
}

func (ns Namespace) String() string {
	if !ns.Valid {
		return "<nil>"
	}
	return ns.Prefix
}

// PseudoData is the argument of a pseudo-class or pseudo-element. It is
// either a PseudoString or a SelectorList; a nil PseudoData means the
// selector had no parentheses at all.
type PseudoData interface {
	pseudoData()
}

// PseudoString is an opaque, already unescaped pseudo argument.
type PseudoString string

func (PseudoString) pseudoData() {}
func (SelectorList) pseudoData() {}

type TagSelector struct {
	Name      string
	Namespace Namespace
}

type UniversalSelector struct {
	Namespace Namespace
}

// AttributeSelector is `[name op value flag]`, and also the desugared form of
// `.class` and `#id`.
type AttributeSelector struct {
	Name       string
	Action     AttributeAction
	Value      string
	IgnoreCase IgnoreCase
	Namespace  Namespace
}

type PseudoSelector struct {
	Name string
	Data PseudoData
}

// PseudoElement is `::name` or `::name(data)`. Data is never a SelectorList.
type PseudoElement struct {
	Name string
	Data PseudoData
}

// Traversal is a combinator. Kind is one of the traversal SelectorTypes.
type Traversal struct {
	Kind SelectorType
}

func (TagSelector) Type() SelectorType       { return SelectorTypeTag }
func (UniversalSelector) Type() SelectorType { return SelectorTypeUniversal }
func (AttributeSelector) Type() SelectorType { return SelectorTypeAttribute }
func (PseudoSelector) Type() SelectorType    { return SelectorTypePseudo }
func (PseudoElement) Type() SelectorType     { return SelectorTypePseudoElement }
func (t Traversal) Type() SelectorType       { return t.Kind }

func (TagSelector) token()       {}
func (UniversalSelector) token() {}
func (AttributeSelector) token() {}
func (PseudoSelector) token()    {}
func (PseudoElement) token()     {}
func (Traversal) token()         {}
