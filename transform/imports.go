package transform

import (
	"github.com/vexlang/vex/ast"
)

// ensure makes the named helper callable at the point of use and returns
// the identifier to call. The display name comes from the pragma map; the
// module path from Import or FactoryImport. With no configured path the
// bare name is used as-is, for hosts where the helper is ambient.
//
// Each module path gets at most one import statement per file, inserted at
// the current position of the top-level statement containing the
// triggering element; each symbol gets at most one specifier however often
// it is requested.
func (s *session) ensure(from ast.Node, symbol string, factory bool) *ast.Ident {
	name := symbol
	if display := s.opts.Pragma[symbol]; display != "" {
		name = display
	}

	path := s.opts.Import
	if factory && s.opts.FactoryImport != "" {
		path = s.opts.FactoryImport
	}
	if path == "" {
		return ast.NewIdent(name)
	}

	pi := s.imports[path]
	if pi == nil {
		decl := ast.NewImport(path)
		// The index must be recomputed here: a previous import insertion
		// has shifted everything after it.
		idx := s.prog.IndexOf(s.topLevelAnchor(from))
		if idx < 0 {
			idx = 0
		}
		s.prog.Insert(idx, decl)
		pi = &pendingImport{decl: decl, symbols: make(map[string]bool)}
		s.imports[path] = pi
	}

	if !pi.symbols[name] {
		pi.decl.AddSpecifier(name)
		pi.symbols[name] = true
	}
	return ast.NewIdent(name)
}

// topLevelAnchor walks parent links from n upward, tracking the last
// ancestor that is a direct child of the program root. Elements inside a
// re-parsed embedded expression are detached from the main tree; for those
// the statement currently being transformed is the anchor.
func (s *session) topLevelAnchor(n ast.Node) ast.Stmt {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Parent() == ast.Node(s.prog) {
			if st, ok := cur.(ast.Stmt); ok {
				return st
			}
		}
	}
	return s.anchor
}
