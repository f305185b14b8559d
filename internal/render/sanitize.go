package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// summaryTags are the elements kept from catalog summaries. Their attributes are dropped.
var summaryTags = map[atom.Atom]bool{
	atom.P:      true,
	atom.B:      true,
	atom.Strong: true,
	atom.I:      true,
	atom.Em:     true,
	atom.U:      true,
	atom.Br:     true,
}

// SanitizeSummary reduces catalog summary markup to simple formatting tags.
// Unknown elements are replaced by their text; script and style content is removed.
func SanitizeSummary(raw string) string {
	if raw == "" {
		return ""
	}

	parent := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(raw), parent)
	if err != nil {
		return html.EscapeString(raw)
	}

	var sb strings.Builder
	for _, n := range nodes {
		writeSanitized(&sb, n)
	}
	return sb.String()
}

func writeSanitized(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(html.EscapeString(n.Data))
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Iframe, atom.Object, atom.Template, atom.Noscript:
			return
		}
		keep := summaryTags[n.DataAtom]
		if keep {
			sb.WriteString("<" + n.Data + ">")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeSanitized(sb, c)
		}
		if keep && n.DataAtom != atom.Br {
			sb.WriteString("</" + n.Data + ">")
		}
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeSanitized(sb, c)
		}
	}
}
