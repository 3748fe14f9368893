package cssselect

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTMLStylesheets reads an HTML document and scans the contents of every
// <style> element, in document order, into one Stylesheet. As with
// ParseStylesheet, selector errors do not stop the scan.
func ParseHTMLStylesheets(htmlReader io.Reader, opts ...ParseOption) (Stylesheet, error) {
	rootNode, err := html.Parse(htmlReader)
	if err != nil {
		return Stylesheet{}, fmt.Errorf("failed to parse html: %w", err)
	}

	var (
		sheet Stylesheet
		errs  error
	)
	for i, styleNode := range findHTMLNodes(rootNode, atom.Style) {
		ss, err := ParseStylesheet(nodeText(styleNode), opts...)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("style element %d: %w", i, err))
		}
		sheet = sheet.Merge(ss)
	}
	return sheet, errs
}

// findHTMLNodes returns every element of the given type below root, in
// document order.
func findHTMLNodes(root *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node
	stack := []*html.Node{root}
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if next.Type == html.ElementNode && next.DataAtom == a {
			found = append(found, next)
		}
		if next.NextSibling != nil {
			stack = append(stack, next.NextSibling)
		}
		if next.FirstChild != nil {
			stack = append(stack, next.FirstChild)
		}
	}
	return found
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
