package cssselect

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"
)

func TestParseStylesheet(t *testing.T) {
	t.Parallel()
	type testCase struct {
		input    string
		expected Stylesheet
	}
	tcs := []testCase{
		{
			input:    "",
			expected: Stylesheet{},
		}, {
			input: "p { color: red; margin: 0 }",
			expected: Stylesheet{Rules: []Rule{{
				Prelude:      "p",
				Selectors:    SelectorList{{tag("p")}},
				Declarations: map[string]string{"color": "red", "margin": "0"},
				Properties:   []string{"color", "margin"},
			}}},
		}, {
			input: "h1,\n h2 > a { }\n.note{font-weight:bold}",
			expected: Stylesheet{Rules: []Rule{{
				Prelude:      "h1,\n h2 > a",
				Selectors:    SelectorList{{tag("h1")}, {tag("h2"), child, tag("a")}},
				Declarations: map[string]string{},
				Properties:   []string{},
			}, {
				Prelude:      ".note",
				Selectors:    SelectorList{{class("note")}},
				Declarations: map[string]string{"font-weight": "bold"},
				Properties:   []string{"font-weight"},
			}}},
		}, {
			input: "/* header */ a /* link */ { background: url(http://x/y.png); color: blue; color: green; junk }",
			expected: Stylesheet{Rules: []Rule{{
				Prelude:      "a",
				Selectors:    SelectorList{{tag("a")}},
				Declarations: map[string]string{"background": "url(http://x/y.png)", "color": "green"},
				Properties:   []string{"background", "color"},
			}}},
		}, {
			input: `@import "x.css"; @media screen { a { color: red } } @font-face { font-family: x } b { }`,
			expected: Stylesheet{Rules: []Rule{{
				Prelude:      "b",
				Selectors:    SelectorList{{tag("b")}},
				Declarations: map[string]string{},
				Properties:   []string{},
			}}},
		}, {
			input: `a[title="{not a block}"] { content: "/* kept */" }`,
			expected: Stylesheet{Rules: []Rule{{
				Prelude:      `a[title="{not a block}"]`,
				Selectors:    SelectorList{{tag("a"), attr("title", AttributeEquals, "{not a block}")}},
				Declarations: map[string]string{"content": `"/* kept */"`},
				Properties:   []string{"content"},
			}}},
		}, {
			input: "i { color: red } trailing",
			expected: Stylesheet{Rules: []Rule{{
				Prelude:      "i",
				Selectors:    SelectorList{{tag("i")}},
				Declarations: map[string]string{"color": "red"},
				Properties:   []string{"color"},
			}}},
		}, {
			input: "u { color: red",
			expected: Stylesheet{Rules: []Rule{{
				Prelude:      "u",
				Selectors:    SelectorList{{tag("u")}},
				Declarations: map[string]string{"color": "red"},
				Properties:   []string{"color"},
			}}},
		},
	}
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			got, err := ParseStylesheet(tc.input)
			if err != nil {
				t.Fatalf("ParseStylesheet failed: %v", err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseStylesheetErrors(t *testing.T) {
	t.Parallel()
	sheet, err := ParseStylesheet("a { x: 1 } b >> c { } { y: 2 } [d { } e { z: 3 }")
	if err == nil {
		t.Fatal("expected error")
	}

	errs := multierr.Errors(err)
	if len(errs) != 3 {
		t.Fatalf("got %d errors, expected 3: %v", len(errs), err)
	}
	if !errors.Is(errs[0], ErrSuccessiveTraversals) {
		t.Fatalf("first error %v", errs[0])
	}
	if !errors.Is(errs[1], ErrEmptySubSelector) {
		t.Fatalf("second error %v", errs[1])
	}
	if !errors.Is(errs[2], ErrAttributeSelectorDidntTerminate) {
		t.Fatalf("third error %v", errs[2])
	}

	if diff := cmp.Diff(SelectorList{{tag("a")}, {tag("e")}}, sheet.Selectors()); diff != "" {
		t.Fatalf("valid rules were not kept (-want +got):\n%s", diff)
	}
}

func TestParseStylesheetOptions(t *testing.T) {
	t.Parallel()
	sheet, err := ParseStylesheet("svg|Rect[viewBox] { }", WithXMLMode(true))
	if err != nil {
		t.Fatal(err)
	}
	expected := SelectorList{{
		TagSelector{Name: "Rect", Namespace: NamespacePrefix("svg")},
		attr("viewBox", AttributeExists, ""),
	}}
	if diff := cmp.Diff(expected, sheet.Selectors()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStylesheetMerge(t *testing.T) {
	t.Parallel()
	a, err := ParseStylesheet("a {}")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseStylesheet("b {} c {}")
	if err != nil {
		t.Fatal(err)
	}
	merged := a.Merge(b)
	if got := Stringify(merged.Selectors()); got != "a, b, c" {
		t.Fatalf("got %q", got)
	}
}
