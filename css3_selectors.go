package cssselect

// CSS3SelectorInfo as pulled from https://www.w3.org/TR/2018/REC-selectors-3-20181106/#selectors
type CSS3SelectorInfo struct {
	Pattern, Meaning, Described, Origin string
}

// CSS3Selector indexes CSS3SelectorInfoLookup.
type CSS3Selector int

const (
	CSS3Universal CSS3Selector = iota
	CSS3Type
	CSS3AttributeExists
	CSS3AttributeEquals
	CSS3AttributeElement
	CSS3AttributeStart
	CSS3AttributeEnd
	CSS3AttributeAny
	CSS3AttributeHyphen
	CSS3Root
	CSS3NthChild
	CSS3NthLastChild
	CSS3NthOfType
	CSS3NthLastOfType
	CSS3FirstChild
	CSS3LastChild
	CSS3FirstOfType
	CSS3LastOfType
	CSS3OnlyChild
	CSS3OnlyOfType
	CSS3Empty
	CSS3Link
	CSS3UserAction
	CSS3Target
	CSS3Lang
	CSS3EnabledDisabled
	CSS3CheckedIndeterminate
	CSS3FirstLine
	CSS3FirstLetter
	CSS3Before
	CSS3After
	CSS3Class
	CSS3ID
	CSS3Not
	CSS3Descendant
	CSS3Child
	CSS3NextSibling
	CSS3SubsequentSibling
)

func (cs CSS3Selector) Info() CSS3SelectorInfo {
	return CSS3SelectorInfoLookup[cs]
}

var (
	CSS3SelectorInfoLookup = []CSS3SelectorInfo{
		CSS3Universal: {
			Pattern:   "*",
			Meaning:   "any element",
			Described: "Universal selector",
			Origin:    "2",
		},
		CSS3Type: {
			Pattern:   "E",
			Meaning:   "an element of type E",
			Described: "Type selector",
			Origin:    "1",
		},
		CSS3AttributeExists: {
			Pattern:   "E[foo]",
			Meaning:   `an E element with a "foo" attribute`,
			Described: "Attribute selectors",
			Origin:    "2",
		},
		CSS3AttributeEquals: {
			Pattern:   `E[foo="bar"]`,
			Meaning:   `an E element whose "foo" attribute value is exactly equal to "bar"`,
			Described: "Attribute selectors",
			Origin:    "2",
		},
		CSS3AttributeElement: {
			Pattern:   `E[foo~="bar"]`,
			Meaning:   `an E element whose "foo" attribute value is a list of whitespace-separated values, one of which is exactly equal to "bar"`,
			Described: "Attribute selectors",
			Origin:    "2",
		},
		CSS3AttributeStart: {
			Pattern:   `E[foo^="bar"]`,
			Meaning:   `an E element whose "foo" attribute value begins exactly with the string "bar"`,
			Described: "Attribute selectors",
			Origin:    "3",
		},
		CSS3AttributeEnd: {
			Pattern:   `E[foo$="bar"]`,
			Meaning:   `an E element whose "foo" attribute value ends exactly with the string "bar"`,
			Described: "Attribute selectors",
			Origin:    "3",
		},
		CSS3AttributeAny: {
			Pattern:   `E[foo*="bar"]`,
			Meaning:   `an E element whose "foo" attribute value contains the substring "bar"`,
			Described: "Attribute selectors",
			Origin:    "3",
		},
		CSS3AttributeHyphen: {
			Pattern:   `E[foo|="en"]`,
			Meaning:   `an E element whose "foo" attribute has a hyphen-separated list of values beginning (from the left) with "en"`,
			Described: "Attribute selectors",
			Origin:    "2",
		},
		CSS3Root: {
			Pattern:   "E:root",
			Meaning:   "an E element, root of the document",
			Described: "Structural pseudo-classes",
			Origin:    "3",
		},
		CSS3NthChild: {
			Pattern:   "E:nth-child(n)",
			Meaning:   "an E element, the n-th child of its parent",
			Described: "Structural pseudo-classes",
			Origin:    "3",
		},
		CSS3NthLastChild: {
			Pattern:   "E:nth-last-child(n)",
			Meaning:   "an E element, the n-th child of its parent, counting from the last one",
			Described: "Structural pseudo-classes",
			Origin:    "3",
		},
		CSS3NthOfType: {
			Pattern:   "E:nth-of-type(n)",
			Meaning:   "an E element, the n-th sibling of its type",
			Described: "Structural pseudo-classes",
			Origin:    "3",
		},
		CSS3NthLastOfType: {
			Pattern:   "E:nth-last-of-type(n)",
			Meaning:   "an E element, the n-th sibling of its type, counting from the last one",
			Described: "Structural pseudo-classes",
			Origin:    "3",
		},
		CSS3FirstChild: {
			Pattern:   "E:first-child",
			Meaning:   "an E element, first child of its parent",
			Described: "Structural pseudo-classes",
			Origin:    "2",
		},
		CSS3LastChild: {
			Pattern:   "E:last-child",
			Meaning:   "an E element, last child of its parent",
			Described: "Structural pseudo-classes",
			Origin:    "3",
		},
		CSS3FirstOfType: {
			Pattern:   "E:first-of-type",
			Meaning:   "an E element, first sibling of its type",
			Described: "Structural pseudo-classes",
			Origin:    "3",
		},
		CSS3LastOfType: {
			Pattern:   "E:last-of-type",
			Meaning:   "an E element, last sibling of its type",
			Described: "Structural pseudo-classes",
			Origin:    "3",
		},
		CSS3OnlyChild: {
			Pattern:   "E:only-child",
			Meaning:   "an E element, only child of its parent",
			Described: "Structural pseudo-classes",
			Origin:    "3",
		},
		CSS3OnlyOfType: {
			Pattern:   "E:only-of-type",
			Meaning:   "an E element, only sibling of its type",
			Described: "Structural pseudo-classes",
			Origin:    "3",
		},
		CSS3Empty: {
			Pattern:   "E:empty",
			Meaning:   "an E element that has no children (including text nodes)",
			Described: "Structural pseudo-classes",
			Origin:    "3",
		},
		CSS3Link: {
			Pattern:   "E:link, E:visited",
			Meaning:   "an E element being the source anchor of a hyperlink of which the target is not yet visited (:link) or already visited (:visited)",
			Described: "The link pseudo-classes",
			Origin:    "1",
		},
		CSS3UserAction: {
			Pattern:   "E:active, E:hover, E:focus",
			Meaning:   "an E element during certain user actions",
			Described: "The user action pseudo-classes",
			Origin:    "1 and 2",
		},
		CSS3Target: {
			Pattern:   "E:target",
			Meaning:   "an E element being the target of the referring URI",
			Described: "The target pseudo-class",
			Origin:    "3",
		},
		CSS3Lang: {
			Pattern:   "E:lang(fr)",
			Meaning:   `an element of type E in language "fr" (the document language specifies how language is determined)`,
			Described: "The :lang() pseudo-class",
			Origin:    "2",
		},
		CSS3EnabledDisabled: {
			Pattern:   "E:enabled, E:disabled",
			Meaning:   "a user interface element E which is enabled or disabled",
			Described: "The UI element states pseudo-classes",
			Origin:    "3",
		},
		CSS3CheckedIndeterminate: {
			Pattern:   "E:checked, E:indeterminate",
			Meaning:   "a user interface element E which is checked or in an indeterminate state (for instance a radio-button or checkbox)",
			Described: "The UI element states pseudo-classes",
			Origin:    "3",
		},
		CSS3FirstLine: {
			Pattern:   "E::first-line",
			Meaning:   "the first formatted line of an E element",
			Described: "The ::first-line pseudo-element",
			Origin:    "1",
		},
		CSS3FirstLetter: {
			Pattern:   "E::first-letter",
			Meaning:   "the first formatted letter of an E element",
			Described: "The ::first-letter pseudo-element",
			Origin:    "1",
		},
		CSS3Before: {
			Pattern:   "E::before",
			Meaning:   "generated content before an E element",
			Described: "The ::before pseudo-element",
			Origin:    "2",
		},
		CSS3After: {
			Pattern:   "E::after",
			Meaning:   "generated content after an E element",
			Described: "The ::after pseudo-element",
			Origin:    "2",
		},
		CSS3Class: {
			Pattern:   "E.warning",
			Meaning:   `an E element whose class is "warning" (the document language specifies how class is determined).`,
			Described: "Class selectors",
			Origin:    "1",
		},
		CSS3ID: {
			Pattern:   "E#myid",
			Meaning:   `an E element with ID equal to "myid".`,
			Described: "ID selectors",
			Origin:    "1",
		},
		CSS3Not: {
			Pattern:   "E:not(s)",
			Meaning:   "an E element that does not match simple selector s",
			Described: "Negation pseudo-class",
			Origin:    "3",
		},
		CSS3Descendant: {
			Pattern:   "E F",
			Meaning:   "an F element descendant of an E element",
			Described: "Descendant combinator",
			Origin:    "1",
		},
		CSS3Child: {
			Pattern:   "E > F",
			Meaning:   "an F element child of an E element",
			Described: "Child combinator",
			Origin:    "2",
		},
		CSS3NextSibling: {
			Pattern:   "E + F",
			Meaning:   "an F element immediately preceded by an E element",
			Described: "Next-sibling combinator",
			Origin:    "2",
		},
		CSS3SubsequentSibling: {
			Pattern:   "E ~ F",
			Meaning:   "an F element preceded by an E element",
			Described: "Subsequent-sibling combinator",
			Origin:    "3",
		},
	}
)

var css3Pseudos = map[string]CSS3Selector{
	"root":             CSS3Root,
	"nth-child":        CSS3NthChild,
	"nth-last-child":   CSS3NthLastChild,
	"nth-of-type":      CSS3NthOfType,
	"nth-last-of-type": CSS3NthLastOfType,
	"first-child":      CSS3FirstChild,
	"last-child":       CSS3LastChild,
	"first-of-type":    CSS3FirstOfType,
	"last-of-type":     CSS3LastOfType,
	"only-child":       CSS3OnlyChild,
	"only-of-type":     CSS3OnlyOfType,
	"empty":            CSS3Empty,
	"link":             CSS3Link,
	"visited":          CSS3Link,
	"active":           CSS3UserAction,
	"hover":            CSS3UserAction,
	"focus":            CSS3UserAction,
	"target":           CSS3Target,
	"lang":             CSS3Lang,
	"enabled":          CSS3EnabledDisabled,
	"disabled":         CSS3EnabledDisabled,
	"checked":          CSS3CheckedIndeterminate,
	"indeterminate":    CSS3CheckedIndeterminate,
	"not":              CSS3Not,
}

var css3PseudoElements = map[string]CSS3Selector{
	"first-line":   CSS3FirstLine,
	"first-letter": CSS3FirstLetter,
	"before":       CSS3Before,
	"after":        CSS3After,
}

var css3Attributes = map[AttributeAction]CSS3Selector{
	AttributeExists:  CSS3AttributeExists,
	AttributeEquals:  CSS3AttributeEquals,
	AttributeElement: CSS3AttributeElement,
	AttributeStart:   CSS3AttributeStart,
	AttributeEnd:     CSS3AttributeEnd,
	AttributeAny:     CSS3AttributeAny,
	AttributeHyphen:  CSS3AttributeHyphen,
}

var css3Traversals = map[SelectorType]CSS3Selector{
	SelectorTypeDescendant: CSS3Descendant,
	SelectorTypeChild:      CSS3Child,
	SelectorTypeAdjacent:   CSS3NextSibling,
	SelectorTypeSibling:    CSS3SubsequentSibling,
}

// Describe finds the Selectors Level 3 construct t represents. Tokens with
// no Level 3 counterpart (`!=`, `:has`, `||`, ...) report false.
func Describe(t Token) (CSS3SelectorInfo, bool) {
	cs, ok := css3SelectorOf(t)
	if !ok {
		return CSS3SelectorInfo{}, false
	}
	return cs.Info(), true
}

func css3SelectorOf(t Token) (CSS3Selector, bool) {
	var cs CSS3Selector
	var ok bool
	switch t := t.(type) {
	case UniversalSelector:
		cs, ok = CSS3Universal, true
	case TagSelector:
		cs, ok = CSS3Type, true
	case AttributeSelector:
		if t.IgnoreCase == IgnoreCaseQuirks && !t.Namespace.Valid {
			if t.Name == "class" && t.Action == AttributeElement {
				return CSS3Class, true
			}
			if t.Name == "id" && t.Action == AttributeEquals {
				return CSS3ID, true
			}
		}
		cs, ok = css3Attributes[t.Action]
	case PseudoSelector:
		cs, ok = css3Pseudos[t.Name]
	case PseudoElement:
		cs, ok = css3PseudoElements[t.Name]
	case Traversal:
		cs, ok = css3Traversals[t.Kind]
	}
	return cs, ok
}
