package goquery

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// VisibleText returns the text nodes under the given roots, each trimmed,
// empty ones dropped, joined by newlines.
func VisibleText(roots ...*html.Node) string {
	var parts []string
	walkVisible(roots, func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	})
	return strings.Join(parts, "\n")
}

// InlineText concatenates the visible text under the given roots as it
// reads in the flow of a sentence, trimmed at both ends.
func InlineText(roots ...*html.Node) string {
	var b strings.Builder
	walkVisible(roots, func(s string) {
		b.WriteString(s)
	})
	return strings.TrimSpace(b.String())
}

// walkVisible calls emit for every visible text node in document order.
// Comments, doctypes, script and style are not visible. The raw content
// of noscript is parsed as markup and walked like any other subtree.
func walkVisible(roots []*html.Node, emit func(string)) {
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			emit(n.Data)
			return
		case html.CommentNode, html.DoctypeNode:
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style:
				return
			case atom.Noscript:
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if c.Type != html.TextNode {
						walk(c)
						continue
					}
					for _, f := range noscriptFragment(c.Data) {
						walk(f)
					}
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range roots {
		walk(root)
	}
}

// noscriptFragment parses noscript raw text as body content. Unparseable
// input is returned as a single text node.
func noscriptFragment(raw string) []*html.Node {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(raw), body)
	if err != nil {
		return []*html.Node{{Type: html.TextNode, Data: raw}}
	}
	return nodes
}
