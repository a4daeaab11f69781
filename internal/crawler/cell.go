package crawler

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements start and end a line inside a cell.
var blockElements = map[atom.Atom]bool{
	atom.P:   true,
	atom.Div: true,
	atom.Li:  true,
	atom.Ul:  true,
	atom.Ol:  true,
	atom.Dl:  true,
	atom.Dd:  true,
	atom.Dt:  true,
}

// cellLine is one visual line of a table cell with the footnote targets
// cited on it.
type cellLine struct {
	text string
	refs []string
}

// lineWalker splits a cell's node tree into lines.
type lineWalker struct {
	lines []cellLine
	text  strings.Builder
	refs  []string
	inSup int
}

// cellLines splits the content of cell at <br> and block elements.
func cellLines(cell *html.Node) []cellLine {
	w := &lineWalker{}

	for c := cell.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}

	w.flush()

	return w.lines
}

func (w *lineWalker) flush() {
	if text := strings.Join(strings.Fields(w.text.String()), " "); text != "" {
		w.lines = append(w.lines, cellLine{text: text, refs: w.refs})
	}

	w.text.Reset()
	w.refs = nil
}

func (w *lineWalker) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text.WriteString(n.Data)

		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Br:
		w.flush()

		return
	case atom.Script, atom.Style:
		return
	case atom.Sup:
		w.inSup++
		defer func() { w.inSup-- }()
	case atom.A:
		if href := attr(n, "href"); w.inSup > 0 && strings.HasPrefix(href, "#") {
			w.refs = append(w.refs, strings.TrimPrefix(href, "#"))
		}
	}

	block := blockElements[n.DataAtom]
	if block {
		w.flush()
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}

	if block {
		w.flush()
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}
