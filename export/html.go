package export

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/pdfoutline/model"
)

// WriteHTML writes a standalone page listing the outline as nested lists.
// Each heading nests under the closest preceding heading of a higher level.
func WriteHTML(w io.Writer, result *model.AnalysisResult) error {
	result = record(result)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	root.AppendChild(head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	title := element(atom.Title)
	title.AppendChild(textNode(result.Title))
	head.AppendChild(title)

	body := element(atom.Body)
	root.AppendChild(body)
	h1 := element(atom.H1)
	h1.AppendChild(textNode(result.Title))
	body.AppendChild(h1)

	nav := element(atom.Nav)
	nav.Attr = []html.Attribute{{Key: "class", Val: "outline"}}
	body.AppendChild(nav)
	nav.AppendChild(outlineList(result.Outline))

	if err := html.Render(w, doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// outlineList builds the nested <ul> tree for the outline
func outlineList(outline []model.Heading) *html.Node {
	top := element(atom.Ul)

	type frame struct {
		level model.HeadingLevel
		item  *html.Node
		list  *html.Node
	}
	var stack []frame

	for _, h := range outline {
		for len(stack) > 0 && stack[len(stack)-1].level >= h.Level {
			stack = stack[:len(stack)-1]
		}

		parent := top
		if len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.list == nil {
				f.list = element(atom.Ul)
				f.item.AppendChild(f.list)
			}
			parent = f.list
		}

		item := headingItem(h)
		parent.AppendChild(item)
		stack = append(stack, frame{level: h.Level, item: item})
	}

	return top
}

func headingItem(h model.Heading) *html.Node {
	li := element(atom.Li)
	li.Attr = []html.Attribute{{Key: "class", Val: h.Level.String()}}

	a := element(atom.A)
	a.Attr = []html.Attribute{{Key: "href", Val: fmt.Sprintf("#page=%d", h.Page)}}
	a.AppendChild(textNode(h.Text))
	li.AppendChild(a)

	page := element(atom.Span)
	page.Attr = []html.Attribute{{Key: "class", Val: "page"}}
	page.AppendChild(textNode(fmt.Sprintf("%d", h.Page)))
	li.AppendChild(textNode(" "))
	li.AppendChild(page)

	return li
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
