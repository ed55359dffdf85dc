package source

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DetailSelector selects the notice body on a saved detail page.
const DetailSelector = ".gongo_detail"

// blockElements start and end on their own line when rendered as text.
var blockElements = map[atom.Atom]bool{
	atom.Address:    true,
	atom.Article:    true,
	atom.Blockquote: true,
	atom.Caption:    true,
	atom.Dd:         true,
	atom.Div:        true,
	atom.Dl:         true,
	atom.Dt:         true,
	atom.Footer:     true,
	atom.Form:       true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Header:     true,
	atom.Hr:         true,
	atom.Li:         true,
	atom.Main:       true,
	atom.Ol:         true,
	atom.P:          true,
	atom.Pre:        true,
	atom.Section:    true,
	atom.Table:      true,
	atom.Tr:         true,
	atom.Ul:         true,
}

// hiddenElements never contribute text.
var hiddenElements = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Noscript: true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
}

// LoadHTML extracts the notice text from a saved detail page. Every element
// matching DetailSelector is rendered as text with line breaks at block
// elements and <br>; non-empty results are joined with newlines. Pages
// without a detail element fall back to the whole <body>.
func LoadHTML(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	sel := doc.Find(DetailSelector)
	if sel.Length() == 0 {
		sel = doc.Find("body")
	}

	texts := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			if t := InnerText(n); t != "" {
				texts = append(texts, t)
			}
		}
	})

	return strings.Join(texts, "\n"), nil
}

// InnerText renders n roughly the way a browser's innerText does: runs of
// whitespace collapse to one space, block elements and <br> break lines,
// table cells are separated by a space. Lines are trimmed.
func InnerText(n *html.Node) string {
	w := &textWriter{}
	w.walk(n)

	lines := strings.Split(w.b.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

type textWriter struct {
	b       strings.Builder
	space   bool
	newline bool
}

func (w *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
		if hiddenElements[n.DataAtom] {
			return
		}
		switch {
		case n.DataAtom == atom.Br:
			w.breakLine()
			return
		case n.DataAtom == atom.Td || n.DataAtom == atom.Th:
			w.space = true
		case blockElements[n.DataAtom]:
			w.endLine()
		}
	case html.CommentNode, html.DoctypeNode:
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}

	if n.Type == html.ElementNode && blockElements[n.DataAtom] {
		w.endLine()
	}
}

func (w *textWriter) text(s string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			w.space = true
		}
		return
	}

	if r, _ := utf8.DecodeRuneInString(s); unicode.IsSpace(r) {
		w.space = true
	}
	for i, f := range fields {
		if i > 0 || w.space {
			w.writeSpace()
		}
		w.b.WriteString(f)
		w.newline = false
	}
	if r, _ := utf8.DecodeLastRuneInString(s); unicode.IsSpace(r) {
		w.space = true
	}
}

func (w *textWriter) writeSpace() {
	if w.b.Len() > 0 && !w.newline {
		w.b.WriteByte(' ')
	}
	w.space = false
}

// endLine starts a new line unless the output already sits at one.
func (w *textWriter) endLine() {
	w.space = false
	if w.b.Len() > 0 && !w.newline {
		w.b.WriteByte('\n')
		w.newline = true
	}
}

// breakLine always emits a line break, so consecutive <br> give blank lines.
func (w *textWriter) breakLine() {
	w.space = false
	w.b.WriteByte('\n')
	w.newline = true
}
