package cssselect

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStringifyRoundTrip(t *testing.T) {
	t.Parallel()
	for i, tc := range parseTests {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			text := Stringify(tc.expected)
			got, err := Parse(text, tc.opts...)
			if err != nil {
				t.Fatalf("%s: Parse(Stringify(...)) = Parse(%q) failed: %v", tc.message, text, err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Fatalf("%s: %q did not read back (-want +got):\n%s", tc.message, text, diff)
			}
		})
	}
}

// Selectors assembled from a fixed set of fragments must read back the same
// after a trip through Stringify, whatever order the fragments land in.
func TestStringifyRoundTripGenerated(t *testing.T) {
	t.Parallel()
	fragments := []string{
		"a", "div", "*", "ns|b", "|c", "*|*", "*|d", "ns|*", "|*",
		".x", "#y", `#\31 `, `\31 `, `\*`, "[z]", "[|z]", "[q=v i]", "[ns|q^='w']",
		":hover", ":not(a, .b)", ":has(> p)", "::before", "::part(x)", ":nth-child(2n+1)",
		"/**/", " ", " > ", "+", "~", "||", ",",
	}
	rng := rand.New(rand.NewSource(1))
	checked := 0
	for i := 0; i < 20000; i++ {
		var sb strings.Builder
		for n := 1 + rng.Intn(6); n > 0; n-- {
			sb.WriteString(fragments[rng.Intn(len(fragments))])
		}
		input := sb.String()
		list, err := Parse(input)
		if err != nil {
			continue
		}
		checked++
		text := Stringify(list)
		again, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) failed for Stringify(Parse(%q)): %v", text, input, err)
		}
		if diff := cmp.Diff(list, again); diff != "" {
			t.Fatalf("%q printed as %q did not read back (-want +got):\n%s", input, text, diff)
		}
	}
	if checked == 0 {
		t.Fatal("no generated selector parsed")
	}
}

func FuzzStringifyRoundTrip(f *testing.F) {
	for _, tc := range parseTests {
		f.Add(tc.input)
	}
	f.Fuzz(func(t *testing.T, input string) {
		list, err := Parse(input)
		if err != nil {
			return
		}
		text := Stringify(list)
		again, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) failed for Stringify(Parse(%q)): %v", text, input, err)
		}
		if diff := cmp.Diff(list, again); diff != "" {
			t.Fatalf("%q printed as %q did not read back (-want +got):\n%s", input, text, diff)
		}
	})
}

func TestStringifySerialization(t *testing.T) {
	t.Parallel()
	type testCase struct {
		input    string
		expected string
	}
	tcs := []testCase{
		// Attribute selectors
		{"[att]", "[att]"},
		{"[att=val]", `[att="val"]`},
		{"[att~=val]", `[att~="val"]`},
		{"[att|=val]", `[att|="val"]`},
		{"h1[title]", "h1[title]"},
		{"span[class='example']", `span[class="example"]`},
		{"a[hreflang=fr]", `a[hreflang="fr"]`},
		{"a[hreflang|='en']", `a[hreflang|="en"]`},
		{"[att^=val]", `[att^="val"]`},
		{"[att$=val]", `[att$="val"]`},
		{"[att*=val]", `[att*="val"]`},
		{`object[type^="image/"]`, `object[type^="image/"]`},
		{`a[href$=".html"]`, `a[href$=".html"]`},
		{`p[title*="hello"]`, `p[title*="hello"]`},
		{"[*|att]", "[*|att]"},
		{"[|att]", "[|att]"},
		{`[a="b" I]`, `[a="b" i]`},
		{`[a='"' s]`, `[a="\"" s]`},
		{`[class=foo]`, `[class="foo"]`},

		// Combinators
		{"body > p", "body > p"},
		{"div ol>li p", "div ol > li p"},
		{"math + p", "math + p"},
		{"h1.opener + h2", "h1.opener + h2"},
		{"h1 ~ pre", "h1 ~ pre"},
		{"a<b", "a < b"},
		{"col||td", "col || td"},
		{"h1 em", "h1 em"},
		{"div * p", "div * p"},
		{"div p *[href]", "div p *[href]"},

		// Class, ID and universal
		{"*.pastoral", "*.pastoral"},
		{".pastoral", ".pastoral"},
		{"h1.pastoral", "h1.pastoral"},
		{"p.pastoral.marine", "p.pastoral.marine"},
		{"h1#chapter1", "h1#chapter1"},
		{"#chapter1", "#chapter1"},
		{"*#z98y", "*#z98y"},
		{"*", "*"},
		{"div :first-child", "div :first-child"},
		{"div *:first-child", "div *:first-child"},
		{"*|*", "*|*"},
		{"svg|*", "svg|*"},
		{"|a", "|a"},

		// Pseudo-classes
		{":focus-visible", ":focus-visible"},
		{"a:focus-visible", "a:focus-visible"},
		{":focus:not(:focus-visible)", ":focus:not(:focus-visible)"},
		{":has(a)", ":has(a)"},
		{":has(#a)", ":has(#a)"},
		{":has(.a)", ":has(.a)"},
		{":has([a])", ":has([a])"},
		{`:has([a="b"])`, `:has([a="b"])`},
		{`:has([a|="b"])`, `:has([a|="b"])`},
		{":has(:hover)", ":has(:hover)"},
		{"*:has(.a)", "*:has(.a)"},
		{".a:has(.b)", ".a:has(.b)"},
		{".a:has(> .b)", ".a:has(> .b)"},
		{".a:has(~ .b)", ".a:has(~ .b)"},
		{".a:has(+ .b)", ".a:has(+ .b)"},
		{".a:has(.b) .c", ".a:has(.b) .c"},
		{".a .b:has(.c .d) .e", ".a .b:has(.c .d) .e"},
		{".a:has(.b:is(.c:has(.d) .e))", ".a:has(.b:is(.c:has(.d) .e))"},
		{".a:has(.b):has(.c)", ".a:has(.b):has(.c)"},
		{"*|*:has(*)", "*|*:has(*)"},
		{":has(*|*)", ":has(*|*)"},
		{":is(ul,ol,.list) > [hidden]", ":is(ul, ol, .list) > [hidden]"},
		{":is(:hover,:focus)", ":is(:hover, :focus)"},
		{"a:is(:not(:hover))", "a:is(:not(:hover))"},
		{".a.b ~ .c.d:is(span.e + .f, .g.h > .i.j .k)", ".a.b ~ .c.d:is(span.e + .f, .g.h > .i.j .k)"},
		{":where(ul,ol,.list) > [hidden]", ":where(ul, ol, .list) > [hidden]"},
		{":where(:hover,:focus)", ":where(:hover, :focus)"},
		{"button:not([disabled])", "button:not([disabled])"},
		{":not(:link):not(:visited)", ":not(:link):not(:visited)"},
		{"*|*:not(*)", "*|*:not(*)"},
		{":not(:not(foo))", ":not(:not(foo))"},
		{":not(.a .b ~ c, .d .e)", ":not(.a .b ~ c, .d .e)"},
		{":not(:host(:not(.a)))", ":not(:host(:not(.a)))"},
		{":not([disabled][selected])", ":not([disabled][selected])"},
		{":not([disabled],[selected])", ":not([disabled], [selected])"},
		{":nth-child( 2n + 1 )", ":nth-child( 2n + 1 )"},
		{`:contains('a(b)')`, `:contains(a\(b\))`},
		{`:lang("en")`, `:lang(\"en\")`},

		// Pseudo-elements
		{"p::first-line", "p::first-line"},
		{"p:before", "p::before"},
		{"::slotted(span)", "::slotted(span)"},
		{"::part()", "::part()"},

		// Escaping
		{`#\31 23`, "#123"},
		{`.a\:b`, `.a\:b`},
		{`.\#x`, `.\#x`},
		{`\*`, `\*`},
		{`[a\~b]`, `[a\~b]`},
		{`.a\ b`, `.a\ b`},
		{`ns\|x|y`, `ns\|x|y`},

		// Groups and whitespace
		{"a,b , c", "a, b, c"},
		{"  a  >  b  ", "a > b"},
		{"a /* c */ b", "a b"},
		{"", ""},
	}
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			list, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.input, err)
			}
			got := Stringify(list)
			if got != tc.expected {
				t.Fatalf("Stringify(Parse(%q)) = %q, expected %q", tc.input, got, tc.expected)
			}
			if s := list.String(); s != got {
				t.Fatalf("String() = %q, Stringify = %q", s, got)
			}
		})
	}
}

func TestStringifyTokens(t *testing.T) {
	t.Parallel()
	type testCase struct {
		input    SelectorList
		expected string
	}
	tcs := []testCase{
		{SelectorList{{tag("a b")}}, `a\ b`},
		{SelectorList{{tag("a\nb")}}, `a\a b`},
		{SelectorList{{tag("1a")}}, "1a"},
		{SelectorList{{class("a.b")}}, `.a\.b`},
		{SelectorList{{AttributeSelector{Name: "id", Action: AttributeEquals, Value: "x"}}}, `[id="x"]`},
		{SelectorList{{AttributeSelector{Name: "class", Action: AttributeElement, Value: "x", IgnoreCase: IgnoreCaseQuirks, Namespace: NoNamespace}}}, `[|class~="x"]`},
		{SelectorList{{attr("a", AttributeEquals, `x"y\z`)}}, `[a="x\"y\\z"]`},
		{SelectorList{{pseudo("p", PseudoString(`a"b'c(d)e\f`))}}, `:p(a\"b\'c\(d\)e\\f)`},
		{SelectorList{{sibling, tag("a")}}, "~ a"},
		{SelectorList{{tag("a"), descendant, adjacent, tag("b")}}, "a  + b"},
		{SelectorList{{tag("a"), tag("b")}}, "a/**/b"},
		{SelectorList{{tag("a"), TagSelector{Name: "b", Namespace: NoNamespace}}}, "a/**/|b"},
		{SelectorList{{class("a"), UniversalSelector{Namespace: NamespacePrefix("ns")}}}, ".a/**/ns|*"},
		{SelectorList{{PseudoElement{Name: "x"}, tag("b")}}, "::x/**/b"},
		{SelectorList{{UniversalSelector{}, TagSelector{Name: "b", Namespace: NoNamespace}}}, "*/**/|b"},
		{SelectorList{{UniversalSelector{}, tag("b")}}, "*b"},
		{SelectorList{{tag("a"), UniversalSelector{}}}, "a*"},
		{SelectorList{{attr("x", AttributeExists, ""), tag("b")}}, "[x]b"},
		{SelectorList{{pseudo("not", SelectorList{{tag("a")}}), tag("b")}}, ":not(a)b"},
		{SelectorList{{}}, ""},
		{SelectorList{{tag("a")}, {}}, "a, "},
	}
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			if got := Stringify(tc.input); got != tc.expected {
				t.Fatalf("got %q, expected %q", got, tc.expected)
			}
		})
	}
}
