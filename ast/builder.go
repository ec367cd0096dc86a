package ast

// Constructor functions for the nodes the transform emits. Each wires the
// parent links of the children it is given.

// NewIdent creates an identifier reference.
func NewIdent(name string) *Ident {
	return &Ident{Name: name}
}

// NewString creates a string literal.
func NewString(value string) *StringLit {
	return &StringLit{Value: value}
}

// NewNumber creates an integer literal.
func NewNumber(value int) *NumberLit {
	return &NumberLit{Value: value}
}

// NewBool creates a boolean literal.
func NewBool(value bool) *BoolLit {
	return &BoolLit{Value: value}
}

// NewNull creates a null literal.
func NewNull() *NullLit {
	return &NullLit{}
}

// NewArray creates an array literal.
func NewArray(elems ...Expr) *ArrayLit {
	a := &ArrayLit{Elems: elems}
	for _, e := range elems {
		SetParent(e, a)
	}
	return a
}

// NewObject creates an object literal.
func NewObject(members ...ObjectMember) *ObjectLit {
	o := &ObjectLit{Members: members}
	for _, m := range members {
		SetParent(m, o)
	}
	return o
}

// NewProperty creates a key/value object entry.
func NewProperty(key, value Expr) *Property {
	p := &Property{Key: key, Value: value}
	SetParent(key, p)
	SetParent(value, p)
	return p
}

// NewSpreadProperty creates an object spread entry.
func NewSpreadProperty(x Expr) *SpreadProperty {
	s := &SpreadProperty{X: x}
	SetParent(x, s)
	return s
}

// NewCall creates a call expression.
func NewCall(fun Expr, args ...Expr) *CallExpr {
	c := &CallExpr{Fun: fun, Args: args}
	SetParent(fun, c)
	for _, a := range args {
		SetParent(a, c)
	}
	return c
}

// NewRaw creates an opaque expression from JS source text.
func NewRaw(code string) *RawExpr {
	return &RawExpr{Code: code}
}

// NewImport creates an empty import declaration for the given module path.
func NewImport(source string) *ImportDecl {
	return &ImportDecl{Source: source}
}

// NewChunk creates a statement unit from parts.
func NewChunk(parts ...Node) *Chunk {
	c := &Chunk{Parts: parts}
	for _, p := range parts {
		SetParent(p, c)
	}
	return c
}
