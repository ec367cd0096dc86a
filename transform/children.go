package transform

import (
	"strings"

	"github.com/vexlang/vex/ast"
)

// loweredChildren is the normalized child list: empty means absent, one
// entry means a single flattened child. keyed is the "possibly keyed"
// signal and is only meaningful for two or more children.
type loweredChildren struct {
	nodes []ast.Expr
	keyed bool
}

// lowerChildren transforms each child node in order. Elements recurse into
// the assembler, text runs go through the normalizer, containers yield
// their inner expression. Unrecognized child kinds contribute nothing;
// unknown inputs silently drop rather than fail.
func (s *session) lowerChildren(children []ast.Node) loweredChildren {
	var lc loweredChildren

	for _, child := range children {
		switch c := child.(type) {
		case *ast.JSXElement:
			if hasKeyAttr(c) {
				lc.keyed = true
			}
			lc.nodes = append(lc.nodes, s.lowerElement(c))
		case *ast.JSXText:
			if text, ok := normalizeText(c.Value); ok {
				lc.nodes = append(lc.nodes, ast.NewString(text))
			}
		case *ast.JSXExprContainer:
			// The explicitly-empty variant (comment-only braces) is
			// dropped.
			if c.X != nil {
				lc.nodes = append(lc.nodes, s.rewriteEmbedded(c.X))
			}
		}
	}

	// A single child cannot be meaningfully keyed.
	if len(lc.nodes) < 2 {
		lc.keyed = false
	}
	return lc
}

// hasKeyAttr reports whether the element carries a literal `key` attribute
// name. Only the name matters; the value is irrelevant to the signal.
func hasKeyAttr(el *ast.JSXElement) bool {
	for _, a := range el.Attrs {
		if at, ok := a.(*ast.Attribute); ok && at.Space == "" && at.Name == "key" {
			return true
		}
	}
	return false
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeText collapses source indentation out of a text run: tabs
// become single spaces, every line but the first loses its leading spaces,
// every line but the last loses its trailing spaces, emptied lines drop,
// and the survivors concatenate with no separator. The rendered text is
// the same however the markup was indented, while intentional inline
// spacing on a single line survives. Returns false when nothing remains.
func normalizeText(raw string) (string, bool) {
	lines := strings.Split(newlines.Replace(raw), "\n")
	last := len(lines) - 1

	var b strings.Builder
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", " ")
		if i > 0 {
			line = strings.TrimLeft(line, " ")
		}
		if i < last {
			line = strings.TrimRight(line, " ")
		}
		b.WriteString(line)
	}

	out := b.String()
	return out, out != ""
}
