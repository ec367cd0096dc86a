// Package printer renders a transformed program back to JavaScript text,
// recording a source map as it goes. Raw chunks are reproduced verbatim;
// only generated nodes are formatted.
package printer

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/vexlang/vex/ast"
)

// Printer accumulates output text and position mappings.
type Printer struct {
	buf bytes.Buffer
	sm  *SourceMap

	// Position tracking for source maps
	outLine uint32 // current output line (0-indexed)
	outCol  uint32 // current output column (0-indexed)
}

// Print renders the program and returns the JS text plus its source map.
func Print(prog *ast.Program) (string, *SourceMap) {
	p := &Printer{sm: NewSourceMap()}
	p.sm.SourceFile = prog.SourcePath
	p.printProgram(prog)
	return p.buf.String(), p.sm
}

// Fragment renders a detached subtree, with no source map. The transform
// uses it to splice rewritten embedded expressions back into raw text.
func Fragment(prog *ast.Program) string {
	p := &Printer{}
	p.printProgram(prog)
	return p.buf.String()
}

func (p *Printer) printProgram(prog *ast.Program) {
	for _, st := range prog.Body {
		switch s := st.(type) {
		case *ast.ImportDecl:
			p.printImport(s)
		case *ast.Chunk:
			for _, part := range s.Parts {
				switch n := part.(type) {
				case *ast.RawCode:
					p.writeMapped(n.Code, n.Span.Start)
				case ast.Expr:
					p.printExpr(n)
				}
			}
		}
	}
}

func (p *Printer) printImport(d *ast.ImportDecl) {
	p.write("import { ")
	for i, s := range d.Specifiers {
		if i > 0 {
			p.write(", ")
		}
		if s.Local == s.Imported {
			p.write(s.Imported)
		} else {
			p.write(s.Imported + " as " + s.Local)
		}
	}
	p.write(" } from ")
	p.write(strconv.Quote(d.Source))
	p.write(";\n")
}

func (p *Printer) printExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Ident:
		p.write(n.Name)

	case *ast.StringLit:
		p.write(strconv.Quote(n.Value))

	case *ast.NumberLit:
		p.write(strconv.Itoa(n.Value))

	case *ast.BoolLit:
		if n.Value {
			p.write("true")
		} else {
			p.write("false")
		}

	case *ast.NullLit:
		p.write("null")

	case *ast.ArrayLit:
		p.write("[")
		for i, el := range n.Elems {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(el)
		}
		p.write("]")

	case *ast.ObjectLit:
		p.write("{ ")
		for i, m := range n.Members {
			if i > 0 {
				p.write(", ")
			}
			p.printMember(m)
		}
		p.write(" }")

	case *ast.CallExpr:
		p.printExpr(n.Fun)
		p.write("(")
		for i, a := range n.Args {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(a)
		}
		p.write(")")

	case *ast.RawExpr:
		p.writeMapped(n.Code, n.Span.Start)

	case *ast.JSXExprContainer:
		if n.X != nil {
			p.printExpr(n.X)
		} else {
			p.write("null")
		}

	default:
		// An untransformed JSX node or unknown kind has no JS rendering;
		// it contributes a hole.
		p.write("null")
	}
}

func (p *Printer) printMember(m ast.ObjectMember) {
	switch n := m.(type) {
	case *ast.Property:
		if id, ok := n.Key.(*ast.Ident); ok {
			p.write(id.Name)
		} else {
			p.printExpr(n.Key)
		}
		p.write(": ")
		p.printExpr(n.Value)

	case *ast.SpreadProperty:
		p.write("...")
		p.printExpr(n.X)
	}
}

// write appends s, updating output position tracking.
func (p *Printer) write(s string) {
	p.buf.WriteString(s)
	for _, r := range s {
		if r == '\n' {
			p.outLine++
			p.outCol = 0
		} else {
			p.outCol++
		}
	}
}

// writeMapped writes source-derived text and records a mapping for the
// start of each of its lines. Positions from the AST are 1-indexed.
func (p *Printer) writeMapped(s string, src ast.Position) {
	if p.sm != nil && src.Line > 0 {
		line := uint32(src.Line - 1)
		col := uint32(src.Column - 1)
		out := p.outCol
		rest := s
		for i := 0; ; i++ {
			p.sm.AddMapping(line+uint32(i), col, p.outLine+uint32(i), out)
			col, out = 0, 0
			next := strings.IndexByte(rest, '\n')
			if next < 0 || next == len(rest)-1 {
				break
			}
			rest = rest[next+1:]
		}
	}
	p.write(s)
}
