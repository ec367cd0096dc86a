// Package ast defines the syntax tree for .jsx files: opaque JavaScript
// runs mixed with structurally parsed JSX elements, plus the JS expression
// and import nodes the transform emits in their place.
package ast

// Node is the interface for all nodes in a .jsx file.
type Node interface {
	node()
	Parent() Node
	setParent(Node)
}

type mark struct {
	parent Node
}

func (*mark) node() {}

// Parent returns the enclosing node, or nil at the root.
func (m *mark) Parent() Node { return m.parent }

func (m *mark) setParent(p Node) { m.parent = p }

// SetParent attaches child to parent. Constructors call it for the nodes
// they receive; callers splicing nodes in by hand use it directly.
func SetParent(child, parent Node) {
	if child != nil {
		child.setParent(parent)
	}
}

// Stmt is a top-level statement of a Program.
type Stmt interface {
	Node
	stmt()
}

// Expr is any JS expression node, original or generated.
type Expr interface {
	Node
	expr()
}

// Program represents a complete .jsx file.
type Program struct {
	mark
	SourcePath string
	Body       []Stmt
}

// IndexOf returns the current position of s in the program body, or -1.
// Import injection relies on this being live: earlier insertions shift
// later lookups.
func (p *Program) IndexOf(s Stmt) int {
	for i, st := range p.Body {
		if st == s {
			return i
		}
	}
	return -1
}

// Insert places s at position i, shifting later statements down.
func (p *Program) Insert(i int, s Stmt) {
	if i < 0 || i > len(p.Body) {
		i = len(p.Body)
	}
	p.Body = append(p.Body, nil)
	copy(p.Body[i+1:], p.Body[i:])
	p.Body[i] = s
	SetParent(s, p)
}

// Chunk is one top-level statement unit: a run of raw JS text with any
// embedded top-level JSX elements interleaved at their source positions.
// Parts hold *RawCode and Expr nodes.
type Chunk struct {
	mark
	Parts []Node
}

func (*Chunk) stmt() {}

// ReplacePart swaps the part at index i for e, fixing the parent link.
func (c *Chunk) ReplacePart(i int, e Expr) {
	c.Parts[i] = e
	SetParent(e, c)
}

// RawCode is pass-through JavaScript text.
type RawCode struct {
	mark
	Code string
	Span Range
}

// ImportDecl is a named-specifier import statement, created by the
// transform when generated calls need helper bindings.
type ImportDecl struct {
	mark
	Source     string
	Specifiers []*ImportSpecifier
}

func (*ImportDecl) stmt() {}

// ImportSpecifier binds one imported name.
type ImportSpecifier struct {
	mark
	Imported string
	Local    string
}

// AddSpecifier appends a specifier binding name to itself.
func (d *ImportDecl) AddSpecifier(name string) {
	s := &ImportSpecifier{Imported: name, Local: name}
	SetParent(s, d)
	d.Specifiers = append(d.Specifiers, s)
}

// HasSpecifier reports whether name is already bound by this import.
func (d *ImportDecl) HasSpecifier(name string) bool {
	for _, s := range d.Specifiers {
		if s.Imported == name {
			return true
		}
	}
	return false
}

// JSXElement represents <tag ...>...</tag> or <tag ... />.
type JSXElement struct {
	mark
	Name        TagName
	Attrs       []Attr
	Children    []Node // *JSXElement, *JSXText, *JSXExprContainer
	SelfClosing bool
	Span        Range
}

func (*JSXElement) expr() {}

// TagName is the tag of a JSX element.
type TagName interface {
	Node
	tagName()
}

// TagIdent is a plain tag name: div, svg, Foo.
type TagIdent struct {
	mark
	Name string
}

func (*TagIdent) tagName() {}

// TagNamespaced is a namespaced tag name: svg:rect.
type TagNamespaced struct {
	mark
	Space string
	Name  string
}

func (*TagNamespaced) tagName() {}

// TagMember is a member-expression tag: Foo.Bar.Baz.
type TagMember struct {
	mark
	Parts []string
}

func (*TagMember) tagName() {}

// Attr is an entry of a JSX attribute list.
type Attr interface {
	Node
	attr()
}

// Attribute is a named attribute. A nil Value means the bare-name boolean
// form. Space is empty for non-namespaced names.
type Attribute struct {
	mark
	Space string
	Name  string
	Value Expr // *StringLit, *JSXExprContainer, or nil
	Span  Range
}

func (*Attribute) attr() {}

// Key returns the property key the attribute resolves to.
func (a *Attribute) Key() string {
	if a.Space != "" {
		return a.Space + ":" + a.Name
	}
	return a.Name
}

// SpreadAttribute represents {...expr} in an attribute list.
type SpreadAttribute struct {
	mark
	X    Expr
	Span Range
}

func (*SpreadAttribute) attr() {}

// JSXText is text content between tags.
type JSXText struct {
	mark
	Value string
	Span  Range
}

// JSXExprContainer represents {expression} as a child or attribute value.
// A nil X is the explicitly-empty variant (comment-only braces).
type JSXExprContainer struct {
	mark
	X    Expr
	Span Range
}

func (*JSXExprContainer) expr() {}

// Generated JS expression nodes.

// Ident is an identifier reference.
type Ident struct {
	mark
	Name string
}

func (*Ident) expr() {}

// StringLit is a string literal.
type StringLit struct {
	mark
	Value string
}

func (*StringLit) expr() {}

// NumberLit is an integer literal.
type NumberLit struct {
	mark
	Value int
}

func (*NumberLit) expr() {}

// BoolLit is true or false.
type BoolLit struct {
	mark
	Value bool
}

func (*BoolLit) expr() {}

// NullLit is the null literal. The transform shares a single instance per
// file as its omitted-argument placeholder and compares by identity.
type NullLit struct {
	mark
}

func (*NullLit) expr() {}

// ArrayLit is [a, b, ...].
type ArrayLit struct {
	mark
	Elems []Expr
}

func (*ArrayLit) expr() {}

// ObjectLit is {k: v, ...s}.
type ObjectLit struct {
	mark
	Members []ObjectMember
}

func (*ObjectLit) expr() {}

// ObjectMember is an entry of an ObjectLit.
type ObjectMember interface {
	Node
	objectMember()
}

// Property is a key/value object entry. Key is an *Ident (printed bare)
// or a *StringLit (printed quoted).
type Property struct {
	mark
	Key   Expr
	Value Expr
}

func (*Property) objectMember() {}

// SpreadProperty is an object spread entry.
type SpreadProperty struct {
	mark
	X Expr
}

func (*SpreadProperty) objectMember() {}

// CallExpr is fun(args...).
type CallExpr struct {
	mark
	Fun  Expr
	Args []Expr
}

func (*CallExpr) expr() {}

// RawExpr is opaque JS expression text carried through unparsed.
type RawExpr struct {
	mark
	Code string
	Span Range
}

func (*RawExpr) expr() {}
