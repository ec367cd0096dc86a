package transform

import (
	"github.com/vexlang/vex/ast"
	"github.com/vexlang/vex/parser"
	"github.com/vexlang/vex/printer"
)

// rewriteEmbedded handles JSX nested inside opaque expression text, e.g.
// {cond && <Spinner/>}. The text is re-parsed, each element is lowered
// against the same session (so helper imports land in the enclosing file,
// deduplicated as usual), and the result is printed back into expression
// text. Expressions without JSX pass through untouched.
func (s *session) rewriteEmbedded(e ast.Expr) ast.Expr {
	raw, ok := e.(*ast.RawExpr)
	if !ok || !containsJSX(raw.Code) {
		return e
	}

	sub, err := parser.Parse(s.prog.SourcePath, []byte(raw.Code))
	if err != nil {
		// Leave what we cannot parse alone.
		return e
	}

	changed := false
	for _, st := range sub.Body {
		chunk, ok := st.(*ast.Chunk)
		if !ok {
			continue
		}
		for i, part := range chunk.Parts {
			if el, ok := part.(*ast.JSXElement); ok {
				chunk.ReplacePart(i, s.lowerElement(el))
				changed = true
			}
		}
	}
	if !changed {
		return e
	}

	out := ast.NewRaw(printer.Fragment(sub))
	out.Span = raw.Span
	return out
}

// containsJSX is a cheap pre-check: a '<' immediately followed by an
// identifier character, outside string and comment contexts the parser
// will sort out anyway.
func containsJSX(code string) bool {
	for i := 0; i+1 < len(code); i++ {
		if code[i] != '<' {
			continue
		}
		c := code[i+1]
		if c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}
