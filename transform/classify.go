package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vexlang/vex/ast"
)

// classification is the result of deciding what kind of element a tag
// denotes.
type classification struct {
	component bool
	name      string   // host tag name; empty for components
	typ       ast.Expr // resolved type: string literal or tag expression
	flags     Flags
}

// classify decides between host element and component. The only static
// signal is the case convention: a plain identifier whose first character
// is not uppercase names a host element. Namespaced and member-expression
// tags are always components; the run time resolves what they refer to.
func (s *session) classify(tag ast.TagName) classification {
	if id, ok := tag.(*ast.TagIdent); ok && !startsUpper(id.Name) {
		c := classification{name: id.Name, flags: FlagHTML}
		switch id.Name {
		case "svg":
			c.flags |= FlagSVG
		case "input":
			c.flags |= FlagInput
		case "textarea":
			c.flags |= FlagTextArea
		}
		if s.opts.Templates[id.Name] {
			c.flags |= FlagTemplate
		}
		c.typ = ast.NewString(id.Name)
		return c
	}

	c := classification{component: true}
	switch t := tag.(type) {
	case *ast.TagIdent:
		c.typ = ast.NewIdent(t.Name)
	case *ast.TagMember:
		c.typ = ast.NewRaw(strings.Join(t.Parts, "."))
	case *ast.TagNamespaced:
		c.typ = ast.NewRaw(t.Space + ":" + t.Name)
	}
	return c
}

func startsUpper(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
