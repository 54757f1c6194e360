package extract

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"saberes_rag/internal/chunker"
)

// Markdown renders a markdown document as the plain text the chunker
// understands: headings become standalone lines, paragraphs become single
// lines, both separated by blank lines. The whole document is one page.
func Markdown(content []byte) []chunker.PageText {
	md := goldmark.New()
	reader := text.NewReader(content)
	doc := md.Parser().Parse(reader)

	var buf strings.Builder
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if heading, ok := n.(*ast.Heading); ok {
				buf.WriteString("\n")
				buf.WriteString(extractText(heading, content))
				buf.WriteString("\n\n")
				return ast.WalkSkipChildren, nil
			}
			if textNode, ok := n.(*ast.Text); ok {
				buf.Write(textNode.Segment.Value(content))
				if textNode.SoftLineBreak() || textNode.HardLineBreak() {
					buf.WriteString(" ")
				}
			}
		} else if _, ok := n.(*ast.Paragraph); ok {
			buf.WriteString("\n\n")
		}
		return ast.WalkContinue, nil
	})

	out := strings.TrimSpace(buf.String())
	if out == "" {
		return nil
	}
	return []chunker.PageText{{Page: 1, Text: out}}
}

// extractText collects the literal text of a node's direct children.
func extractText(node ast.Node, source []byte) string {
	var buf strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}
