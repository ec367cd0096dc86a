package printer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vexlang/vex/ast"
)

func TestPrintImport(t *testing.T) {
	d := ast.NewImport("vdom")
	d.AddSpecifier("newHtml")
	d.AddSpecifier("newComponent")

	prog := &ast.Program{Body: []ast.Stmt{d}}

	out, _ := Print(prog)
	want := "import { newHtml, newComponent } from \"vdom\";\n"
	if out != want {
		t.Errorf("Print() = %q, want %q", out, want)
	}
}

func TestPrintImportAlias(t *testing.T) {
	d := ast.NewImport("vdom")
	d.Specifiers = append(d.Specifiers, &ast.ImportSpecifier{Imported: "newHtml", Local: "h"})

	prog := &ast.Program{Body: []ast.Stmt{d}}

	out, _ := Print(prog)
	want := "import { newHtml as h } from \"vdom\";\n"
	if out != want {
		t.Errorf("Print() = %q, want %q", out, want)
	}
}

func TestPrintCallExpression(t *testing.T) {
	call := ast.NewCall(ast.NewIdent("newHtml"),
		ast.NewString("div"),
		ast.NewArray(ast.NewString("a"), ast.NewRaw("x + 1")),
		ast.NewNull(),
		ast.NewNumber(2),
	)

	prog := &ast.Program{Body: []ast.Stmt{ast.NewChunk(call)}}

	out, _ := Print(prog)
	want := `newHtml("div", ["a", x + 1], null, 2)`
	if out != want {
		t.Errorf("Print() = %q, want %q", out, want)
	}
}

func TestPrintObjectLiteral(t *testing.T) {
	obj := ast.NewObject(
		ast.NewProperty(ast.NewString("title"), ast.NewString("hi")),
		ast.NewSpreadProperty(ast.NewRaw("rest")),
		ast.NewProperty(ast.NewIdent("--accent"), ast.NewRaw("color")),
		ast.NewProperty(ast.NewString("on"), ast.NewBool(true)),
	)

	prog := &ast.Program{Body: []ast.Stmt{ast.NewChunk(obj)}}

	out, _ := Print(prog)
	want := `{ "title": "hi", ...rest, --accent: color, "on": true }`
	if out != want {
		t.Errorf("Print() = %q, want %q", out, want)
	}
}

func TestFragmentHasNoSourceMap(t *testing.T) {
	raw := &ast.RawCode{Code: "cond && "}
	call := ast.NewCall(ast.NewIdent("newComponent"), ast.NewIdent("Spinner"))

	prog := &ast.Program{Body: []ast.Stmt{ast.NewChunk(raw, call)}}

	out := Fragment(prog)
	want := "cond && newComponent(Spinner)"
	if out != want {
		t.Errorf("Fragment() = %q, want %q", out, want)
	}
}

func TestPrintRecordsLineMappings(t *testing.T) {
	raw := &ast.RawCode{Code: "const a = 1;\nconst b = 2;\n"}
	raw.Span.Start = ast.Position{Line: 1, Column: 1}

	imp := ast.NewImport("vdom")
	imp.AddSpecifier("newHtml")

	prog := &ast.Program{
		SourcePath: "app.jsx",
		Body:       []ast.Stmt{imp, ast.NewChunk(raw)},
	}

	out, sm := Print(prog)
	want := "import { newHtml } from \"vdom\";\nconst a = 1;\nconst b = 2;\n"
	if out != want {
		t.Fatalf("Print() = %q, want %q", out, want)
	}

	if sm.SourceFile != "app.jsx" {
		t.Errorf("SourceFile = %q, want app.jsx", sm.SourceFile)
	}

	// The import shifts the raw lines down by one in the output.
	wantMappings := map[uint32]map[uint32]MapPos{
		1: {0: {Line: 0, Column: 0}},
		2: {0: {Line: 1, Column: 0}},
	}
	if diff := cmp.Diff(wantMappings, sm.TargetToSource); diff != "" {
		t.Errorf("TargetToSource mismatch (-want +got):\n%s", diff)
	}
}
