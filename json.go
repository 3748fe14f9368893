package cssselect

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var selectorTypesByName = func() map[string]SelectorType {
	m := make(map[string]SelectorType, len(selectorTypeNames))
	for st, name := range selectorTypeNames {
		m[name] = SelectorType(st)
	}
	return m
}()

var attributeActionsByName = func() map[string]AttributeAction {
	m := make(map[string]AttributeAction, len(attributeActionNames))
	for aa, name := range attributeActionNames {
		m[name] = AttributeAction(aa)
	}
	return m
}()

func (st SelectorType) MarshalText() ([]byte, error) {
	if int(st) >= len(selectorTypeNames) {
		return nil, fmt.Errorf("unknown selector type %d", uint8(st))
	}
	return []byte(st.String()), nil
}

func (st *SelectorType) UnmarshalText(text []byte) error {
	v, ok := selectorTypesByName[string(text)]
	if !ok {
		return fmt.Errorf("unknown selector type %q", text)
	}
	*st = v
	return nil
}

func (aa AttributeAction) MarshalText() ([]byte, error) {
	if int(aa) >= len(attributeActionNames) {
		return nil, fmt.Errorf("unknown attribute action %d", uint8(aa))
	}
	return []byte(aa.String()), nil
}

func (aa *AttributeAction) UnmarshalText(text []byte) error {
	v, ok := attributeActionsByName[string(text)]
	if !ok {
		return fmt.Errorf("unknown attribute action %q", text)
	}
	*aa = v
	return nil
}

// MarshalJSON encodes ic as null, "quirks", true or false.
func (ic IgnoreCase) MarshalJSON() ([]byte, error) {
	switch ic {
	case IgnoreCaseUnknown:
		return []byte("null"), nil
	case IgnoreCaseQuirks:
		return []byte(`"quirks"`), nil
	case IgnoreCaseTrue:
		return []byte("true"), nil
	case IgnoreCaseFalse:
		return []byte("false"), nil
	}
	return nil, fmt.Errorf("unknown ignore case mode %d", uint8(ic))
}

func (ic *IgnoreCase) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "null":
		*ic = IgnoreCaseUnknown
	case `"quirks"`:
		*ic = IgnoreCaseQuirks
	case "true":
		*ic = IgnoreCaseTrue
	case "false":
		*ic = IgnoreCaseFalse
	default:
		return fmt.Errorf("invalid ignoreCase %s", data)
	}
	return nil
}

func (ns Namespace) MarshalJSON() ([]byte, error) {
	if !ns.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ns.Prefix)
}

func (ns *Namespace) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*ns = Namespace{}
		return nil
	}
	var prefix string
	if err := json.Unmarshal(data, &prefix); err != nil {
		return fmt.Errorf("invalid namespace: %w", err)
	}
	*ns = NamespacePrefix(prefix)
	return nil
}

func (t TagSelector) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      SelectorType `json:"type"`
		Name      string       `json:"name"`
		Namespace Namespace    `json:"namespace"`
	}{t.Type(), t.Name, t.Namespace})
}

func (t UniversalSelector) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      SelectorType `json:"type"`
		Namespace Namespace    `json:"namespace"`
	}{t.Type(), t.Namespace})
}

func (t AttributeSelector) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       SelectorType    `json:"type"`
		Name       string          `json:"name"`
		Action     AttributeAction `json:"action"`
		Value      string          `json:"value"`
		IgnoreCase IgnoreCase      `json:"ignoreCase"`
		Namespace  Namespace       `json:"namespace"`
	}{t.Type(), t.Name, t.Action, t.Value, t.IgnoreCase, t.Namespace})
}

func (t PseudoSelector) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type SelectorType `json:"type"`
		Name string       `json:"name"`
		Data PseudoData   `json:"data"`
	}{t.Type(), t.Name, t.Data})
}

func (t PseudoElement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type SelectorType `json:"type"`
		Name string       `json:"name"`
		Data PseudoData   `json:"data"`
	}{t.Type(), t.Name, t.Data})
}

func (t Traversal) MarshalJSON() ([]byte, error) {
	if !t.Kind.IsTraversal() {
		return nil, fmt.Errorf("%s is not a traversal", t.Kind)
	}
	return json.Marshal(struct {
		Type SelectorType `json:"type"`
	}{t.Kind})
}

// wireToken is the union of every token's fields.
type wireToken struct {
	Type       *SelectorType   `json:"type"`
	Name       string          `json:"name"`
	Action     AttributeAction `json:"action"`
	Value      string          `json:"value"`
	IgnoreCase IgnoreCase      `json:"ignoreCase"`
	Namespace  Namespace       `json:"namespace"`
	Data       json.RawMessage `json:"data"`
}

// UnmarshalToken decodes a single token from its wire form.
func UnmarshalToken(data []byte) (Token, error) {
	var w wireToken
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	if w.Type == nil {
		return nil, fmt.Errorf("token without type: %s", data)
	}
	switch st := *w.Type; st {
	case SelectorTypeTag:
		return TagSelector{Name: w.Name, Namespace: w.Namespace}, nil
	case SelectorTypeUniversal:
		return UniversalSelector{Namespace: w.Namespace}, nil
	case SelectorTypeAttribute:
		return AttributeSelector{
			Name:       w.Name,
			Action:     w.Action,
			Value:      w.Value,
			IgnoreCase: w.IgnoreCase,
			Namespace:  w.Namespace,
		}, nil
	case SelectorTypePseudo:
		pd, err := unmarshalPseudoData(w.Data, true)
		if err != nil {
			return nil, fmt.Errorf("pseudo %q: %w", w.Name, err)
		}
		return PseudoSelector{Name: w.Name, Data: pd}, nil
	case SelectorTypePseudoElement:
		pd, err := unmarshalPseudoData(w.Data, false)
		if err != nil {
			return nil, fmt.Errorf("pseudo-element %q: %w", w.Name, err)
		}
		return PseudoElement{Name: w.Name, Data: pd}, nil
	default:
		return Traversal{Kind: st}, nil
	}
}

func unmarshalPseudoData(data json.RawMessage, allowList bool) (PseudoData, error) {
	if isJSONNull(data) {
		return nil, nil
	}
	switch bytes.TrimSpace(data)[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return PseudoString(s), nil
	case '[':
		if !allowList {
			return nil, fmt.Errorf("data must be a string or null")
		}
		var sl SelectorList
		if err := json.Unmarshal(data, &sl); err != nil {
			return nil, err
		}
		return sl, nil
	}
	return nil, fmt.Errorf("invalid data %s", data)
}

// MarshalJSON always encodes a group as an array, even when empty.
func (g SelectorGroup) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Token(g))
}

func (g *SelectorGroup) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	group := make(SelectorGroup, 0, len(raw))
	for i, r := range raw {
		tok, err := UnmarshalToken(r)
		if err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
		group = append(group, tok)
	}
	*g = group
	return nil
}

func isJSONNull(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || string(data) == "null"
}
