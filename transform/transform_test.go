package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexlang/vex/parser"
	"github.com/vexlang/vex/printer"
)

// lower parses src, transforms it and prints the result.
func lower(t *testing.T, src string, opts *Options) string {
	t.Helper()
	prog, err := parser.Parse("test.jsx", []byte(src))
	require.NoError(t, err)
	Transform(prog, opts)
	out, _ := printer.Print(prog)
	return out
}

func TestHostElement(t *testing.T) {
	out := lower(t, "const App = () => <div/>;\n", nil)

	require.Equal(t, "const App = () => newHtml(\"div\", null, null, 2);\n", out)
}

func TestHostElementImport(t *testing.T) {
	out := lower(t, "const App = () => <div/>;\n", &Options{Import: "vdom"})

	require.Equal(t,
		"import { newHtml } from \"vdom\";\n"+
			"const App = () => newHtml(\"div\", null, null, 2);\n",
		out)
}

func TestComponentElement(t *testing.T) {
	out := lower(t, "const x = <Card title=\"hi\"/>;\n", nil)

	require.Equal(t, "const x = newComponent(Card, { \"title\": \"hi\" });\n", out)
}

func TestMemberExpressionTagIsComponent(t *testing.T) {
	out := lower(t, "const x = <Foo.Bar/>;\n", nil)

	// Member-expression tags are components regardless of casing rules.
	require.Equal(t, "const x = newComponent(Foo.Bar);\n", out)
}

func TestNamespacedTagIsComponent(t *testing.T) {
	out := lower(t, "const x = <app:widget/>;\n", nil)

	require.Contains(t, out, "newComponent(app:widget)")
}

func TestSpecialHostFlags(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"svg", "<svg/>;\n", "newHtml(\"svg\", null, null, 6)"},
		{"input", "<input/>;\n", "newHtml(\"input\", null, null, 34)"},
		{"textarea", "<textarea/>;\n", "newHtml(\"textarea\", null, null, 66)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := lower(t, tt.src, nil)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestTemplateFlag(t *testing.T) {
	opts := &Options{Templates: map[string]bool{"card": true}}
	out := lower(t, "<card/>;\n", opts)

	require.Contains(t, out, "newHtml(\"card\", null, null, 130)")
}

func TestClassNameAndKey(t *testing.T) {
	out := lower(t, "const App = () => <div className=\"a\" key={1}><span/>text</div>;\n", nil)

	require.Equal(t,
		"const App = () => newHtml(\"div\", [newHtml(\"span\", null, null, 2), \"text\"], \"a\", 2, null, 1);\n",
		out)
}

func TestClassAliasLastWins(t *testing.T) {
	out := lower(t, "<div class=\"a\" className=\"b\"/>;\n", nil)

	require.Contains(t, out, "newHtml(\"div\", null, \"b\", 2)")

	out = lower(t, "<div className=\"b\" class=\"a\"/>;\n", nil)

	require.Contains(t, out, "newHtml(\"div\", null, \"a\", 2)")
}

func TestReservedNamesNeverReachProps(t *testing.T) {
	out := lower(t, "<div className=\"a\" key={k} ref={r} keyedChildren unkeyedChildren id=\"x\"/>;\n", nil)

	// Only id survives as a generic property.
	require.Contains(t, out, "{ \"id\": \"x\" }")
	require.NotContains(t, out, "className\":")
	require.NotContains(t, out, "\"key\"")
	require.NotContains(t, out, "\"ref\"")
	require.NotContains(t, out, "keyedChildren")
}

func TestBareAttributeIsTrue(t *testing.T) {
	out := lower(t, "<input required/>;\n", nil)

	require.Contains(t, out, "newHtml(\"input\", null, null, 34, { \"required\": true })")
}

func TestCustomPropertyKeyUnquoted(t *testing.T) {
	out := lower(t, "<div --accent={color}/>;\n", nil)

	require.Contains(t, out, "{ --accent: color }")
}

func TestSpreadAttributesInterleave(t *testing.T) {
	out := lower(t, "<div a=\"1\" {...rest} b=\"2\"/>;\n", nil)

	require.Contains(t, out, "{ \"a\": \"1\", ...rest, \"b\": \"2\" }")
}

func TestSingleChildFlattens(t *testing.T) {
	out := lower(t, "<div><span/></div>;\n", nil)

	// One child is passed directly, not wrapped in an array.
	require.Contains(t, out, "newHtml(\"div\", newHtml(\"span\", null, null, 2), null, 2)")
	require.NotContains(t, out, "[")
}

func TestEmptyTextContributesNothing(t *testing.T) {
	out := lower(t, "<div>\n\t\n</div>;\n", nil)

	require.Contains(t, out, "newHtml(\"div\", null, null, 2)")
}

func TestCommentOnlyContainerDropped(t *testing.T) {
	out := lower(t, "<div>{/* todo */}<span/></div>;\n", nil)

	require.Contains(t, out, "newHtml(\"div\", newHtml(\"span\", null, null, 2), null, 2)")
}

func TestInferredKeyedChildren(t *testing.T) {
	out := lower(t, "<ul><li key=\"a\"/><li key=\"b\"/></ul>;\n", nil)

	// Html | KeyedChildren = 2 | 256
	require.Contains(t, out, ", 258)")

	items := strings.Count(out, "newHtml(\"li\"")
	require.Equal(t, 2, items)
}

func TestSingleKeyedChildNotInferred(t *testing.T) {
	out := lower(t, "<ul><li key=\"a\"/></ul>;\n", nil)

	// A single child cannot be meaningfully keyed.
	require.NotContains(t, out, "258")
	require.Contains(t, out, "newHtml(\"ul\", newHtml(\"li\", null, null, 2, null, \"a\"), null, 2)")
}

func TestUnkeyedChildrenSuppressesInference(t *testing.T) {
	out := lower(t, "<ul unkeyedChildren><li key=\"a\"/><li key=\"b\"/></ul>;\n", nil)

	// Html | UnkeyedChildren = 2 | 512; the inferred keyed signal is
	// overridden.
	require.Contains(t, out, ", 514)")
	require.NotContains(t, out, "770")
}

func TestExplicitMarkersAreIndependent(t *testing.T) {
	out := lower(t, "<ul keyedChildren unkeyedChildren/>;\n", nil)

	// Html | KeyedChildren | UnkeyedChildren = 2 | 256 | 512
	require.Contains(t, out, "newHtml(\"ul\", null, null, 770)")
}

func TestKeyedChildrenWithInput(t *testing.T) {
	out := lower(t, "<input value={v} keyedChildren/>;\n", nil)

	// Html | Input | KeyedChildren = 2 | 32 | 256
	require.Contains(t, out, "newHtml(\"input\", null, null, 290, { \"value\": v })")
}

func TestTrailingArgumentsTrimmed(t *testing.T) {
	// No className, key or ref: the call stops after the flags argument.
	out := lower(t, "<div>hi</div>;\n", nil)
	require.Contains(t, out, "newHtml(\"div\", \"hi\", null, 2)")

	// A component with no extras trims everything after the type.
	out = lower(t, "<Card/>;\n", nil)
	require.Contains(t, out, "newComponent(Card)")
	require.NotContains(t, out, "Card,")
}

func TestZeroFlagsMaterializeWhenLaterArgumentPresent(t *testing.T) {
	out := lower(t, "<Card key={k}/>;\n", nil)

	// Component flags are zero, but the key argument after them forces a
	// literal 0 in the flags slot.
	require.Contains(t, out, "newComponent(Card, null, null, 0, null, k)")
}

func TestFactoryCallShape(t *testing.T) {
	opts := &Options{
		Factory:       map[string]string{"box": "newBox"},
		Import:        "vdom",
		FactoryImport: "vdom/factories",
	}
	out := lower(t, "const x = <box gap={g}>hi</box>;\n", opts)

	// The factory implies the element kind, so the Html flag is cleared;
	// zero flags still materialize because the props argument follows.
	require.Contains(t, out, "newBox(\"hi\", null, 0, { \"gap\": g })")
	require.Contains(t, out, "import { newBox } from \"vdom/factories\";")
}

func TestFactoryFallsBackToImport(t *testing.T) {
	opts := &Options{
		Factory: map[string]string{"box": "newBox"},
		Import:  "vdom",
	}
	out := lower(t, "<box/>;\n", opts)

	require.Contains(t, out, "import { newBox } from \"vdom\";")
}

func TestPragmaRemapsHelperName(t *testing.T) {
	opts := &Options{
		Pragma: map[string]string{"newHtml": "h"},
		Import: "vdom",
	}
	out := lower(t, "<div/>;\n", opts)

	require.Contains(t, out, "h(\"div\", null, null, 2)")
	require.Contains(t, out, "import { h } from \"vdom\";")
	require.NotContains(t, out, "newHtml")
}

func TestNoImportConfiguredUsesBareName(t *testing.T) {
	out := lower(t, "<div/>;\n", nil)

	require.NotContains(t, out, "import")
}

func TestImportInjectedOncePerPath(t *testing.T) {
	src := "const A = () => <div/>;\nconst B = () => <Card/>;\n"
	out := lower(t, src, &Options{Import: "vdom"})

	require.Equal(t, 1, strings.Count(out, "import"))
	require.Contains(t, out, "import { newHtml, newComponent } from \"vdom\";")
}

func TestImportInsertedBeforeFirstUse(t *testing.T) {
	src := "const before = 1;\nconst A = () => <div/>;\n"
	out := lower(t, src, &Options{Import: "vdom"})

	// The import lands at the statement that triggered it, leaving
	// unrelated leading code untouched.
	require.Equal(t,
		"const before = 1;\n"+
			"import { newHtml } from \"vdom\";\n"+
			"const A = () => newHtml(\"div\", null, null, 2);\n",
		out)
}

func TestSeparateFactoryImportStatements(t *testing.T) {
	opts := &Options{
		Factory:       map[string]string{"box": "newBox"},
		Import:        "vdom",
		FactoryImport: "vdom/factories",
	}
	src := "const x = <box><div/></box>;\n"
	out := lower(t, src, opts)

	// Two module paths, two import statements.
	require.Contains(t, out, "import { newHtml } from \"vdom\";")
	require.Contains(t, out, "import { newBox } from \"vdom/factories\";")
	require.Equal(t, 2, strings.Count(out, "import"))
}

func TestEmbeddedJSXInExpression(t *testing.T) {
	src := "const App = () => <div>{cond && <Spinner/>}</div>;\n"
	out := lower(t, src, &Options{Import: "vdom"})

	require.Equal(t,
		"import { newComponent, newHtml } from \"vdom\";\n"+
			"const App = () => newHtml(\"div\", cond && newComponent(Spinner), null, 2);\n",
		out)
}

func TestEmbeddedJSXInAttributeValue(t *testing.T) {
	src := "const x = <Card icon={<svg/>}/>;\n"
	out := lower(t, src, nil)

	require.Contains(t, out, "newComponent(Card, { \"icon\": newHtml(\"svg\", null, null, 6) })")
}

func TestEmbeddedJSXInSpread(t *testing.T) {
	src := "const x = <div {...{icon: <span/>}}/>;\n"
	out := lower(t, src, nil)

	require.Contains(t, out, "...{icon: newHtml(\"span\", null, null, 2)}")
}

func TestExpressionWithoutJSXUntouched(t *testing.T) {
	src := "const x = <div data={a < b ? a : b}/>;\n"
	out := lower(t, src, nil)

	require.Contains(t, out, "{ \"data\": a < b ? a : b }")
}

func TestDeeplyNestedElements(t *testing.T) {
	src := "<div><section><p>deep</p></section></div>;\n"
	out := lower(t, src, nil)

	require.Contains(t, out,
		"newHtml(\"div\", newHtml(\"section\", newHtml(\"p\", \"deep\", null, 2), null, 2), null, 2)")
}

func TestImportStaysOutsideMultilineTemplate(t *testing.T) {
	src := "function f() {\n\tconst s = `\n}\n`;\n\treturn <div/>;\n}\n"
	out := lower(t, src, &Options{Import: "vdom"})

	// The brace at line start inside the template must not end the
	// function's statement unit; the import lands before the function,
	// never inside it.
	require.True(t, strings.HasPrefix(out, "import { newHtml } from \"vdom\";\n"),
		"import should be the first statement, got:\n%s", out)
	require.Equal(t, 1, strings.Count(out, "import"))
	require.Contains(t, out, "\tconst s = `\n}\n`;\n\treturn newHtml(\"div\", null, null, 2);")
}

func TestEscapedQuoteAttributeRoundTrips(t *testing.T) {
	out := lower(t, `<div title="a\"b"/>;`+"\n", nil)

	require.Contains(t, out, `{ "title": "a\"b" }`)
}

func TestSurroundingCodePreserved(t *testing.T) {
	src := "import { useState } from \"react\";\n\nfunction App() {\n\tconst [n, setN] = useState(0);\n\treturn <div/>;\n}\n"
	out := lower(t, src, nil)

	require.Contains(t, out, "import { useState } from \"react\";")
	require.Contains(t, out, "const [n, setN] = useState(0);")
	require.Contains(t, out, "return newHtml(\"div\", null, null, 2);")
}

func TestSessionsDoNotLeakAcrossFiles(t *testing.T) {
	// Transform two files with the same options; each gets its own
	// import statement.
	opts := &Options{Import: "vdom"}

	first := lower(t, "<div/>;\n", opts)
	second := lower(t, "<span/>;\n", opts)

	require.Contains(t, first, "import { newHtml } from \"vdom\";")
	require.Contains(t, second, "import { newHtml } from \"vdom\";")
}
