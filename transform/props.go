package transform

import (
	"strings"

	"github.com/vexlang/vex/ast"
)

// partitionedProps splits an attribute list into the generic properties
// object and the five reserved properties. The reserved names never reach
// the properties object.
type partitionedProps struct {
	props     *ast.ObjectLit // nil when no generic entries
	key       ast.Expr
	ref       ast.Expr
	className ast.Expr
	keyed     bool // keyedChildren marker present
	unkeyed   bool // unkeyedChildren marker present
}

func (pp partitionedProps) propsExpr() ast.Expr {
	if pp.props == nil {
		return nil
	}
	return pp.props
}

// partitionAttrs walks the attribute list in document order. Spreads stay
// interleaved in the properties object at their original position; for the
// class slot the last write wins.
func (s *session) partitionAttrs(attrs []ast.Attr) partitionedProps {
	var pp partitionedProps
	var members []ast.ObjectMember

	for _, a := range attrs {
		switch at := a.(type) {
		case *ast.SpreadAttribute:
			members = append(members, ast.NewSpreadProperty(s.rewriteEmbedded(at.X)))

		case *ast.Attribute:
			switch at.Key() {
			case "className", "class":
				pp.className = s.attrValue(at.Value)
			case "key":
				pp.key = s.attrValue(at.Value)
			case "ref":
				pp.ref = s.attrValue(at.Value)
			case "keyedChildren":
				pp.keyed = true
			case "unkeyedChildren":
				pp.unkeyed = true
			default:
				members = append(members, ast.NewProperty(propKey(at.Key()), s.attrValue(at.Value)))
			}
		}
	}

	if len(members) > 0 {
		pp.props = ast.NewObject(members...)
	}
	return pp
}

// propKey quotes the attribute name unless it is custom-property-style.
func propKey(name string) ast.Expr {
	if strings.HasPrefix(name, "-") {
		return ast.NewIdent(name)
	}
	return ast.NewString(name)
}

// attrValue resolves an attribute value node: a missing value is the
// boolean true shorthand, an expression container yields its inner
// expression, and anything else passes through unchanged.
func (s *session) attrValue(v ast.Expr) ast.Expr {
	switch val := v.(type) {
	case nil:
		return ast.NewBool(true)
	case *ast.JSXExprContainer:
		if val.X == nil {
			return ast.NewBool(true)
		}
		return s.rewriteEmbedded(val.X)
	default:
		return v
	}
}
