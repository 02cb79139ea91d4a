package report

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ValidateDocumentation parses Markdown content produced by a
// Documentation-capability agent and rejects output with no headings
// at all — the minimal structural bar for something that claims to be
// documentation rather than a bare paragraph.
func ValidateDocumentation(content []byte) error {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(content))

	headingCount := 0
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*ast.Heading); ok {
			headingCount++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return fmt.Errorf("walk documentation markdown: %w", err)
	}

	if headingCount == 0 {
		return fmt.Errorf("documentation output has no headings")
	}
	return nil
}
