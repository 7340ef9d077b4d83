package htmlreport

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/IgorBayerl/wordcount/internal/counter"
	"github.com/IgorBayerl/wordcount/internal/reporter"
)

const (
	formatName  = "html"
	reportTitle = "Word Count Report"
)

func init() {
	reporter.RegisterReporter(NewHtmlReportBuilder())
}

// HtmlReportBuilder renders word counts as a standalone HTML document.
type HtmlReportBuilder struct {
	Title string
}

func NewHtmlReportBuilder() *HtmlReportBuilder {
	return &HtmlReportBuilder{Title: reportTitle}
}

func (b *HtmlReportBuilder) Name() string { return formatName }

// Format builds the document as a node tree and renders it, so words are
// always escaped by the html package rather than by hand.
func (b *HtmlReportBuilder) Format(entries []counter.Entry) (string, error) {
	rows, summary := buildViewModels(entries)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(withText(element(atom.Title), b.Title))
	root.AppendChild(head)

	body := element(atom.Body)
	body.AppendChild(withText(element(atom.H1), b.Title))
	body.AppendChild(withText(element(atom.P, html.Attribute{Key: "class", Val: "summary"}),
		fmt.Sprintf("%d distinct words, %d words in total", summary.DistinctWords, summary.TotalWords)))
	body.AppendChild(buildTable(rows))
	root.AppendChild(body)

	var sb strings.Builder
	if err := html.Render(&sb, doc); err != nil {
		return "", fmt.Errorf("failed to render html report: %w", err)
	}
	sb.WriteByte('\n')
	return sb.String(), nil
}

func buildTable(rows []wordRowViewModel) *html.Node {
	table := element(atom.Table)

	thead := element(atom.Thead)
	headerRow := element(atom.Tr)
	headerRow.AppendChild(withText(element(atom.Th), "Count"))
	headerRow.AppendChild(withText(element(atom.Th), "Word"))
	thead.AppendChild(headerRow)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, row := range rows {
		tr := element(atom.Tr)
		tr.AppendChild(withText(element(atom.Td, html.Attribute{Key: "class", Val: "count"}), row.Count))
		tr.AppendChild(withText(element(atom.Td, html.Attribute{Key: "class", Val: "word"}), row.Word))
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)
	return table
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
