// Package parser parses .jsx files into an AST.
package parser

import (
	"fmt"
	"strings"

	"github.com/vexlang/vex/ast"
	"github.com/vexlang/vex/lexer"
)

// Parser parses .jsx source files.
type Parser struct {
	lex      *lexer.Lexer
	tok      lexer.Token
	errors   []error
	filename string
}

// New creates a new Parser.
func New(filename string, src []byte) *Parser {
	return &Parser{
		lex:      lexer.New(string(src)),
		filename: filename,
	}
}

// Parse parses a .jsx file and returns the AST.
func Parse(filename string, src []byte) (*ast.Program, error) {
	p := New(filename, src)
	return p.Parse()
}

// Parse parses the source and returns a Program.
func (p *Parser) Parse() (*ast.Program, error) {
	p.advance() // load first token

	prog := &ast.Program{SourcePath: p.filename}

	var parts []ast.Node
	var sc rawScanner // lexical state of the surrounding JS

	flush := func() {
		if len(parts) == 0 {
			return
		}
		chunk := ast.NewChunk(parts...)
		prog.Body = append(prog.Body, chunk)
		ast.SetParent(chunk, prog)
		parts = nil
	}

	for p.tok.Type != lexer.TOKEN_EOF {
		switch p.tok.Type {
		case lexer.TOKEN_JS_CODE:
			// Split the raw run at newlines so statement units end at a
			// line break, but only while the JS is at nesting depth zero
			// with no string, template or comment open: a break inside a
			// function body or a multi-line template must not end the
			// unit, or imports would later be injected into it.
			line := p.tok.Line
			col := p.tok.Column
			for _, seg := range splitAfterNewlines(p.tok.Value) {
				sc.scan(seg)
				raw := &ast.RawCode{Code: seg}
				raw.Span.Start = ast.Position{Line: line, Column: col}
				parts = append(parts, raw)
				line += strings.Count(seg, "\n")
				col = 1
				if sc.ready() && strings.HasSuffix(seg, "\n") {
					flush()
				}
			}
			p.advance()

		case lexer.TOKEN_JSX_OPEN:
			el := p.parseElement()
			if el != nil {
				parts = append(parts, el)
			}

		default:
			p.error("unexpected token: %v", p.tok)
			p.advance()
		}
	}
	flush()

	if len(p.errors) > 0 {
		return prog, p.errors[0]
	}
	return prog, nil
}

// parseElement parses a JSX element.
func (p *Parser) parseElement() *ast.JSXElement {
	start := p.tokenPos()

	if p.tok.Type != lexer.TOKEN_JSX_OPEN {
		p.error("expected '<', got %v", p.tok)
		return nil
	}
	p.advance() // consume <

	if p.tok.Type != lexer.TOKEN_JSX_TAG {
		p.error("expected tag name, got %v", p.tok)
		return nil
	}
	tagName := p.tok.Value
	p.advance()

	el := &ast.JSXElement{Name: parseTagName(tagName)}
	ast.SetParent(el.Name, el)
	el.Span.Start = start

	el.Attrs = p.parseAttributes(el)

	if p.tok.Type == lexer.TOKEN_JSX_SLASH {
		// Self-closing: />
		el.SelfClosing = true
		p.advance() // consume /
		if p.tok.Type != lexer.TOKEN_JSX_CLOSE {
			p.error("expected '>' after '/', got %v", p.tok)
		} else {
			p.advance() // consume >
		}
		el.Span.End = p.tokenPos()
		return el
	}

	if p.tok.Type != lexer.TOKEN_JSX_CLOSE {
		p.error("expected '>' or '/>', got %v", p.tok)
		return el
	}
	p.advance() // consume >

	el.Children = p.parseChildren(el, tagName)

	// Closing tag: </tagname>
	if p.tok.Type == lexer.TOKEN_JSX_OPEN {
		p.advance() // consume </
		if p.tok.Type == lexer.TOKEN_JSX_TAG {
			if p.tok.Value != tagName {
				p.error("mismatched closing tag: expected </%s>, got </%s>", tagName, p.tok.Value)
			}
			p.advance()
		}
		if p.tok.Type == lexer.TOKEN_JSX_CLOSE {
			p.advance() // consume >
		}
	}

	el.Span.End = p.tokenPos()
	return el
}

// parseTagName resolves the tag token into its identifier form.
func parseTagName(name string) ast.TagName {
	if strings.Contains(name, ".") {
		return &ast.TagMember{Parts: strings.Split(name, ".")}
	}
	if space, local, ok := strings.Cut(name, ":"); ok {
		return &ast.TagNamespaced{Space: space, Name: local}
	}
	return &ast.TagIdent{Name: name}
}

// parseAttributes parses attributes until > or />.
func (p *Parser) parseAttributes(el *ast.JSXElement) []ast.Attr {
	var attrs []ast.Attr

	for {
		switch p.tok.Type {
		case lexer.TOKEN_JSX_CLOSE, lexer.TOKEN_JSX_SLASH, lexer.TOKEN_EOF:
			return attrs

		case lexer.TOKEN_JSX_ATTR_NAME:
			if attr := p.parseAttribute(); attr != nil {
				ast.SetParent(attr, el)
				attrs = append(attrs, attr)
			}

		case lexer.TOKEN_JSX_EXPR:
			// Spread attribute: {...expr}
			if rest, ok := strings.CutPrefix(strings.TrimSpace(p.tok.Value), "..."); ok {
				sp := &ast.SpreadAttribute{X: ast.NewRaw(strings.TrimSpace(rest))}
				sp.Span = p.tokenRange()
				ast.SetParent(sp.X, sp)
				ast.SetParent(sp, el)
				attrs = append(attrs, sp)
			}
			p.advance()

		default:
			p.error("unexpected token in attributes: %v", p.tok)
			p.advance()
		}
	}
}

// parseAttribute parses a single named attribute.
func (p *Parser) parseAttribute() *ast.Attribute {
	name := p.tok.Value
	attr := &ast.Attribute{Span: p.tokenRange()}
	if space, local, ok := strings.Cut(name, ":"); ok {
		attr.Space, attr.Name = space, local
	} else {
		attr.Name = name
	}
	p.advance()

	if p.tok.Type != lexer.TOKEN_JSX_EQUALS {
		// Bare attribute: no value
		return attr
	}
	p.advance() // consume =

	switch p.tok.Type {
	case lexer.TOKEN_JSX_STRING:
		attr.Value = ast.NewString(p.tok.Value)

	case lexer.TOKEN_JSX_EXPR:
		attr.Value = p.container(p.tok.Value)

	default:
		p.error("expected string or expression for attribute value, got %v", p.tok)
		return attr
	}
	ast.SetParent(attr.Value, attr)
	attr.Span.End = p.tokenRange().End
	p.advance()
	return attr
}

// parseChildren parses children until the closing tag.
func (p *Parser) parseChildren(el *ast.JSXElement, parentTag string) []ast.Node {
	var children []ast.Node

	add := func(n ast.Node) {
		ast.SetParent(n, el)
		children = append(children, n)
	}

	for {
		switch p.tok.Type {
		case lexer.TOKEN_EOF:
			return children

		case lexer.TOKEN_JSX_OPEN:
			if p.tok.Value == "</" {
				return children
			}
			if child := p.parseElement(); child != nil {
				add(child)
			}

		case lexer.TOKEN_JSX_TEXT:
			text := &ast.JSXText{Value: p.tok.Value, Span: p.tokenRange()}
			add(text)
			p.advance()

		case lexer.TOKEN_JSX_EXPR:
			c := p.container(p.tok.Value)
			c.Span = p.tokenRange()
			add(c)
			p.advance()

		default:
			p.error("unexpected token in children: %v", p.tok)
			p.advance()
		}
	}
}

// container wraps braced expression text. Empty braces and braces holding
// only comments become the explicitly-empty variant.
func (p *Parser) container(text string) *ast.JSXExprContainer {
	c := &ast.JSXExprContainer{}
	trimmed := strings.TrimSpace(text)
	if !isCommentOnly(trimmed) {
		c.X = ast.NewRaw(trimmed)
		ast.SetParent(c.X, c)
	}
	return c
}

// isCommentOnly checks if a string is empty or contains only JS comments.
func isCommentOnly(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}

	if strings.HasPrefix(s, "/*") && strings.HasSuffix(s, "*/") {
		inner := strings.TrimPrefix(s, "/*")
		inner = strings.TrimSuffix(inner, "*/")
		return strings.TrimSpace(inner) == "" || !strings.Contains(inner, "*/")
	}

	if strings.HasPrefix(s, "//") && !strings.Contains(s, "\n") {
		return true
	}

	return false
}

// splitAfterNewlines splits s into segments, each ending with a newline
// except possibly the last.
func splitAfterNewlines(s string) []string {
	var out []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			out = append(out, s)
			break
		}
		out = append(out, s[:i+1])
		s = s[i+1:]
	}
	return out
}

// rawScanner tracks the lexical state of the raw JS surrounding elements,
// carried across line segments and across the elements themselves:
// brace/paren/bracket depth plus any open string, template literal,
// comment or template interpolation. A statement unit may only end where
// the code is back at depth zero with nothing open, so a later import
// insertion cannot land inside a function body or a multi-line template.
type rawScanner struct {
	depth int
	open  []byte // '"' '\'' '`' literals, '/' '*' comments, '$' interpolations
}

// ready reports whether the run is at a statement boundary.
func (sc *rawScanner) ready() bool {
	return sc.depth <= 0 && len(sc.open) == 0
}

func (sc *rawScanner) top() byte {
	if len(sc.open) == 0 {
		return 0
	}
	return sc.open[len(sc.open)-1]
}

func (sc *rawScanner) push(c byte) { sc.open = append(sc.open, c) }

func (sc *rawScanner) pop() { sc.open = sc.open[:len(sc.open)-1] }

// scan consumes one raw code segment, updating the state.
func (sc *rawScanner) scan(s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch top := sc.top(); top {
		case '"', '\'':
			if c == '\\' {
				i++
			} else if c == top || c == '\n' {
				// A newline closes an unterminated string.
				sc.pop()
			}

		case '`':
			if c == '\\' {
				i++
			} else if c == '`' {
				sc.pop()
			} else if c == '$' && i+1 < len(s) && s[i+1] == '{' {
				sc.push('$')
				i++
			}

		case '/':
			if c == '\n' {
				sc.pop()
			}

		case '*':
			if c == '*' && i+1 < len(s) && s[i+1] == '/' {
				sc.pop()
				i++
			}

		default:
			// Plain code, or code inside a ${} interpolation.
			switch c {
			case '"', '\'', '`':
				sc.push(c)
			case '/':
				if i+1 < len(s) {
					switch s[i+1] {
					case '/':
						sc.push('/')
						i++
					case '*':
						sc.push('*')
						i++
					}
				}
			case '{':
				if top == '$' {
					sc.push('$')
				} else {
					sc.depth++
				}
			case '}':
				if top == '$' {
					sc.pop()
				} else {
					sc.depth--
				}
			case '(', '[':
				if top == 0 {
					sc.depth++
				}
			case ')', ']':
				if top == 0 {
					sc.depth--
				}
			}
		}
	}
}

// Helper methods

func (p *Parser) advance() {
	p.tok = p.lex.NextToken()
}

func (p *Parser) error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	err := fmt.Errorf("%s:%d:%d: %s", p.filename, p.tok.Line, p.tok.Column, msg)
	p.errors = append(p.errors, err)
}

func (p *Parser) tokenPos() ast.Position {
	return ast.Position{
		Offset: p.tok.Offset,
		Line:   p.tok.Line,
		Column: p.tok.Column,
	}
}

func (p *Parser) tokenRange() ast.Range {
	return ast.Range{
		Start: p.tokenPos(),
		End: ast.Position{
			Offset: p.tok.Offset + len(p.tok.Value),
			Line:   p.tok.Line,
			Column: p.tok.Column + len(p.tok.Value),
		},
	}
}
