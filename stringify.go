package cssselect

import "strings"

var traversalText = map[SelectorType]string{
	SelectorTypeChild:            ">",
	SelectorTypeParent:           "<",
	SelectorTypeSibling:          "~",
	SelectorTypeAdjacent:         "+",
	SelectorTypeColumnCombinator: "||",
}

// Stringify renders list as selector text. Parsing the result yields list
// again for any list produced by Parse.
func Stringify(list SelectorList) string {
	var sb strings.Builder
	writeList(&sb, list)
	return sb.String()
}

func writeList(sb *strings.Builder, list SelectorList) {
	for i, group := range list {
		if i > 0 {
			sb.WriteString(", ")
		}
		for j, tok := range group {
			if j > 0 && needsSeparator(group[j-1], tok) {
				sb.WriteString("/**/")
			}
			writeToken(sb, tok, j == 0)
		}
	}
}

// needsSeparator reports whether next, written right after prev, would be
// read back as part of prev. A comment keeps the two apart.
func needsSeparator(prev, next Token) bool {
	var ns Namespace
	switch t := next.(type) {
	case TagSelector:
		ns = t.Namespace
	case UniversalSelector:
		if !t.Namespace.Valid {
			return false
		}
		ns = t.Namespace
	default:
		return false
	}

	switch t := prev.(type) {
	case TagSelector:
		return true
	case UniversalSelector:
		// `*` followed by `|x` reads as `*|x`
		return ns.Valid && !ns.IsAny() && ns.Prefix == ""
	case AttributeSelector:
		return isShorthand(t)
	case PseudoSelector:
		return t.Data == nil
	case PseudoElement:
		return t.Data == nil
	}
	return false
}

func isShorthand(attr AttributeSelector) bool {
	if attr.IgnoreCase != IgnoreCaseQuirks || attr.Namespace.Valid {
		return false
	}
	return attr.Name == "id" && attr.Action == AttributeEquals ||
		attr.Name == "class" && attr.Action == AttributeElement
}

func writeToken(sb *strings.Builder, tok Token, first bool) {
	switch t := tok.(type) {
	case Traversal:
		if t.Kind == SelectorTypeDescendant {
			sb.WriteByte(' ')
			return
		}
		if !first {
			sb.WriteByte(' ')
		}
		sb.WriteString(traversalText[t.Kind])
		sb.WriteByte(' ')
	case UniversalSelector:
		writeNamespace(sb, t.Namespace)
		sb.WriteByte('*')
	case TagSelector:
		writeNamespace(sb, t.Namespace)
		sb.WriteString(escapeName(t.Name))
	case AttributeSelector:
		writeAttribute(sb, t)
	case PseudoSelector:
		sb.WriteByte(':')
		sb.WriteString(escapeName(t.Name))
		writePseudoData(sb, t.Data)
	case PseudoElement:
		sb.WriteString("::")
		sb.WriteString(escapeName(t.Name))
		writePseudoData(sb, t.Data)
	}
}

func writeNamespace(sb *strings.Builder, ns Namespace) {
	if !ns.Valid {
		return
	}
	if ns.IsAny() {
		sb.WriteByte('*')
	} else {
		sb.WriteString(escapeName(ns.Prefix))
	}
	sb.WriteByte('|')
}

func writeAttribute(sb *strings.Builder, attr AttributeSelector) {
	if isShorthand(attr) {
		if attr.Name == "id" {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
		sb.WriteString(escapeName(attr.Value))
		return
	}

	sb.WriteByte('[')
	writeNamespace(sb, attr.Namespace)
	sb.WriteString(escapeName(attr.Name))
	if attr.Action != AttributeExists {
		sb.WriteString(attr.Action.Operator())
		sb.WriteByte('"')
		sb.WriteString(escapeString(attr.Value, attributeValueChars))
		sb.WriteByte('"')
		switch attr.IgnoreCase {
		case IgnoreCaseTrue:
			sb.WriteString(" i")
		case IgnoreCaseFalse:
			sb.WriteString(" s")
		}
	}
	sb.WriteByte(']')
}

func writePseudoData(sb *strings.Builder, data PseudoData) {
	switch d := data.(type) {
	case nil:
		return
	case SelectorList:
		sb.WriteByte('(')
		writeList(sb, d)
		sb.WriteByte(')')
	case PseudoString:
		sb.WriteByte('(')
		sb.WriteString(escapeString(string(d), pseudoValueChars))
		sb.WriteByte(')')
	}
}
