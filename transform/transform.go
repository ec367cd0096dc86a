// Package transform rewrites JSX elements into virtual-DOM constructor
// calls: classifying tags, partitioning attributes, normalizing children,
// assembling the shortest call shape, and injecting the helper imports the
// generated calls need.
package transform

import (
	"github.com/vexlang/vex/ast"
)

// Default helper names; Options.Pragma can remap any of them.
const (
	helperHTML      = "newHtml"
	helperComponent = "newComponent"
)

// Options configures one transform invocation.
type Options struct {
	// Pragma remaps helper names (newHtml, newComponent, or a factory
	// helper name) to a different caller identifier.
	Pragma map[string]string

	// Import is the module path the newHtml/newComponent helpers are
	// imported from. Empty means no import is injected and the bare name
	// is used, for environments where the helpers are ambient.
	Import string

	// FactoryImport is the module path for per-tag factory helpers. When
	// empty, factories fall back to Import.
	FactoryImport string

	// Templates marks host tag names eligible for the template flag.
	Templates map[string]bool

	// Factory registers per-tag direct constructor helpers. An entry
	// switches the host call shape from the generic builder to the named
	// factory.
	Factory map[string]string
}

// session holds the per-file transform state. It is created for one
// Program, lives for that pass, and is discarded: nothing leaks across
// files, so independent files can be transformed concurrently.
type session struct {
	prog    *ast.Program
	opts    *Options
	null    *ast.NullLit // shared omitted-argument placeholder
	imports map[string]*pendingImport
	anchor  ast.Stmt // top-level statement currently being transformed
}

// pendingImport tracks the single import statement inserted for one module
// path and the symbol names already bound on it.
type pendingImport struct {
	decl    *ast.ImportDecl
	symbols map[string]bool
}

// Transform rewrites every JSX element in prog, in document order, into a
// constructor call, mutating the program in place.
func Transform(prog *ast.Program, opts *Options) {
	if opts == nil {
		opts = &Options{}
	}
	s := &session{
		prog:    prog,
		opts:    opts,
		null:    ast.NewNull(),
		imports: make(map[string]*pendingImport),
	}
	s.run()
}

func (s *session) run() {
	// Snapshot the body: import injection inserts statements while we
	// iterate.
	stmts := make([]ast.Stmt, len(s.prog.Body))
	copy(stmts, s.prog.Body)

	for _, st := range stmts {
		chunk, ok := st.(*ast.Chunk)
		if !ok {
			continue
		}
		s.anchor = chunk
		for i, part := range chunk.Parts {
			if el, ok := part.(*ast.JSXElement); ok {
				chunk.ReplacePart(i, s.lowerElement(el))
			}
		}
	}
}

// orNull substitutes the shared placeholder for an absent argument.
func (s *session) orNull(e ast.Expr) ast.Expr {
	if e == nil {
		return s.null
	}
	return e
}
