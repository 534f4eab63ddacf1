package extract

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// extractMarkdown strips Markdown formatting by walking the goldmark AST and
// collecting text segments, with one line per block element.
func extractMarkdown(data []byte) (string, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(data))

	var builder strings.Builder

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			switch n := node.(type) {
			case *ast.Text:
				builder.Write(n.Segment.Value(data))
				if n.SoftLineBreak() || n.HardLineBreak() {
					builder.WriteByte('\n')
				}
			case *ast.AutoLink:
				builder.Write(n.URL(data))
			case *ast.FencedCodeBlock, *ast.CodeBlock:
				lines := node.Lines()
				for i := range lines.Len() {
					seg := lines.At(i)
					builder.Write(seg.Value(data))
				}
			}
			return ast.WalkContinue, nil
		}

		// Terminate each block-level element with a newline so headings,
		// paragraphs, and list items stay separated.
		if node.Type() == ast.TypeBlock && builder.Len() > 0 {
			builder.WriteByte('\n')
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("walk markdown: %w", err)
	}

	return strings.TrimRight(builder.String(), "\n"), nil
}
