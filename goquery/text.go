package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// textContent returns the concatenation of every text node under n in
// document order, with no separator.
func textContent(n *html.Node) string {
	var b strings.Builder
	writeText(&b, n)
	return b.String()
}

func writeText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
}

// concatText concatenates the text of all nodes with no separator.
func concatText(nodes []*html.Node) string {
	return joinText(nodes, "")
}

// joinText joins the text of each node with sep.
func joinText(nodes []*html.Node, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = textContent(n)
	}
	return strings.Join(parts, sep)
}

// firstText returns the text of the first node, or nil when there is none.
func firstText(nodes []*html.Node) *string {
	if len(nodes) == 0 {
		return nil
	}
	s := textContent(nodes[0])
	return &s
}

// leadingText joins the trimmed text of the first limit children of n that
// carry any non-blank text.
func leadingText(n *html.Node, limit int) string {
	var parts []string
	for c := n.FirstChild; c != nil && len(parts) < limit; c = c.NextSibling {
		if c.Type != html.TextNode && c.Type != html.ElementNode {
			continue
		}
		if s := strings.TrimSpace(textContent(c)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
