package cssselect

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCSS3SelectorInfoLookup(t *testing.T) {
	t.Parallel()
	if len(CSS3SelectorInfoLookup) != int(CSS3SubsequentSibling)+1 {
		t.Fatalf("lookup has %d rows, expected %d", len(CSS3SelectorInfoLookup), CSS3SubsequentSibling+1)
	}
	for cs, info := range CSS3SelectorInfoLookup {
		cs, info := CSS3Selector(cs), info
		t.Run(info.Pattern, func(t *testing.T) {
			t.Parallel()
			if info.Pattern == "" || info.Meaning == "" || info.Described == "" || info.Origin == "" {
				t.Fatalf("incomplete row %d: %+v", cs, info)
			}
			list, err := Parse(info.Pattern)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", info.Pattern, err)
			}
			again, err := Parse(Stringify(list))
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", Stringify(list), err)
			}
			if diff := cmp.Diff(list, again); diff != "" {
				t.Fatalf("%q did not read back (-want +got):\n%s", info.Pattern, diff)
			}

			found := false
			for _, tok := range list[0] {
				if got, ok := Describe(tok); ok && got == info {
					found = true
				}
			}
			if !found {
				t.Fatalf("no token of %q is described as row %d", info.Pattern, cs)
			}
			if cs.Info() != info {
				t.Fatalf("Info() = %+v, expected %+v", cs.Info(), info)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	type testCase struct {
		token    Token
		expected CSS3Selector
	}
	tcs := []testCase{
		{UniversalSelector{Namespace: AnyNamespace}, CSS3Universal},
		{tag("p"), CSS3Type},
		{class("x"), CSS3Class},
		{id("x"), CSS3ID},
		{attr("class", AttributeElement, "x"), CSS3AttributeElement},
		{attr("id", AttributeEquals, "x"), CSS3AttributeEquals},
		{AttributeSelector{Name: "id", Action: AttributeEquals, Value: "x", IgnoreCase: IgnoreCaseQuirks, Namespace: NoNamespace}, CSS3AttributeEquals},
		{attr("a", AttributeHyphen, "en"), CSS3AttributeHyphen},
		{pseudo("visited", nil), CSS3Link},
		{pseudo("focus", nil), CSS3UserAction},
		{pseudo("indeterminate", nil), CSS3CheckedIndeterminate},
		{pseudo("nth-last-of-type", PseudoString("2")), CSS3NthLastOfType},
		{PseudoElement{Name: "first-line"}, CSS3FirstLine},
		{sibling, CSS3SubsequentSibling},
		{adjacent, CSS3NextSibling},
		{descendant, CSS3Descendant},
	}
	for _, tc := range tcs {
		info, ok := Describe(tc.token)
		if !ok {
			t.Fatalf("Describe(%#v) found nothing", tc.token)
		}
		if info != tc.expected.Info() {
			t.Fatalf("Describe(%#v) = %q, expected %q", tc.token, info.Pattern, tc.expected.Info().Pattern)
		}
	}

	for _, tok := range []Token{
		attr("a", AttributeNot, "b"),
		pseudo("has", SelectorList{{tag("a")}}),
		PseudoElement{Name: "marker"},
		parent,
		column,
	} {
		if info, ok := Describe(tok); ok {
			t.Fatalf("Describe(%#v) = %q, expected nothing", tok, info.Pattern)
		}
	}
}
