package transform

import (
	"github.com/vexlang/vex/ast"
)

// lowerElement assembles one element into a constructor call. Host
// elements go through a registered per-tag factory when one exists, or the
// generic host builder with the tag name prepended; anything else goes
// through the component builder. The full fixed-length argument tuple is
// built first, then trailing placeholders are trimmed so most calls emit
// only a short prefix of the positional schema.
func (s *session) lowerElement(el *ast.JSXElement) ast.Expr {
	cls := s.classify(el.Name)
	pp := s.partitionAttrs(el.Attrs)
	ch := s.lowerChildren(el.Children)

	flags := cls.flags
	if pp.keyed || (ch.keyed && !pp.unkeyed) {
		flags |= FlagKeyedChildren
	}
	if pp.unkeyed {
		flags |= FlagUnkeyedChildren
	}

	var childArg ast.Expr
	switch len(ch.nodes) {
	case 0:
		childArg = s.null
	case 1:
		childArg = ch.nodes[0]
	default:
		childArg = ast.NewArray(ch.nodes...)
	}

	var callee *ast.Ident
	var args []ast.Expr
	var flagsAt int

	switch {
	case cls.component:
		callee = s.ensure(el, helperComponent, false)
		args = []ast.Expr{cls.typ, s.orNull(pp.propsExpr()), childArg, nil, s.orNull(pp.className), s.orNull(pp.key), s.orNull(pp.ref)}
		flagsAt = 3

	case s.opts.Factory[cls.name] != "":
		callee = s.ensure(el, s.opts.Factory[cls.name], true)
		// The factory already encodes the element kind.
		flags &^= FlagHTML
		args = []ast.Expr{childArg, s.orNull(pp.className), nil, s.orNull(pp.propsExpr()), s.orNull(pp.key), s.orNull(pp.ref)}
		flagsAt = 2

	default:
		callee = s.ensure(el, helperHTML, false)
		args = []ast.Expr{cls.typ, childArg, s.orNull(pp.className), nil, s.orNull(pp.propsExpr()), s.orNull(pp.key), s.orNull(pp.ref)}
		flagsAt = 3
	}

	if flags != 0 {
		args[flagsAt] = ast.NewNumber(int(flags))
	} else {
		args[flagsAt] = s.null
	}

	args = s.trimTrailing(args)
	if flagsAt < len(args) && args[flagsAt] == ast.Expr(s.null) {
		// Zero flags survive trimming only when a later argument is
		// present; materialize them as a number.
		args[flagsAt] = ast.NewNumber(0)
	}

	return ast.NewCall(callee, args...)
}

// trimTrailing drops contiguous trailing placeholder arguments, one at a
// time, until a real argument is found.
func (s *session) trimTrailing(args []ast.Expr) []ast.Expr {
	for len(args) > 0 && args[len(args)-1] == ast.Expr(s.null) {
		args = args[:len(args)-1]
	}
	return args
}
