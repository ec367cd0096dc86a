// Package lexer tokenizes .jsx source: JavaScript passed through opaquely,
// JSX regions broken into structural tokens.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes a .jsx source file.
type Lexer struct {
	input  string
	pos    int // current position in input
	line   int // current line number (1-indexed)
	column int // current column number (1-indexed)

	// Mode tracking
	inJSX        bool // are we inside a JSX element?
	jsxDepth     int  // nesting depth of JSX elements
	inTag        bool // are we inside an opening tag (before >)?
	inClosingTag bool // are we inside a closing tag (</tag>)?
	sawSlash     bool // did we just see a / (for self-closing)?
	needTagName  bool // is the next identifier a tag name?
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	if l.pos >= len(l.input) {
		return l.makeToken(TOKEN_EOF, "")
	}

	if l.inJSX {
		return l.lexJSX()
	}

	return l.lexJSCode()
}

// lexJSCode lexes JavaScript until a JSX element starts.
func (l *Lexer) lexJSCode() Token {
	start := l.pos
	startLine := l.line
	startColumn := l.column

	for l.pos < len(l.input) {
		if l.isJSXStart() {
			// Found JSX, return accumulated JS first
			if l.pos > start {
				return Token{
					Type:   TOKEN_JS_CODE,
					Value:  l.input[start:l.pos],
					Offset: start,
					Line:   startLine,
					Column: startColumn,
				}
			}
			l.inJSX = true
			return l.lexJSXOpen()
		}

		// Skip strings, template literals and comments so their contents
		// cannot look like a JSX start.
		ch := l.peek()
		if ch == '"' {
			l.lexJSString('"')
		} else if ch == '\'' {
			l.lexJSString('\'')
		} else if ch == '`' {
			l.lexJSTemplate()
		} else if ch == '/' && l.peekNext() == '/' {
			l.lexJSLineComment()
		} else if ch == '/' && l.peekNext() == '*' {
			l.lexJSBlockComment()
		} else {
			l.advance()
		}
	}

	if l.pos > start {
		return Token{
			Type:   TOKEN_JS_CODE,
			Value:  l.input[start:l.pos],
			Offset: start,
			Line:   startLine,
			Column: startColumn,
		}
	}

	return l.makeToken(TOKEN_EOF, "")
}

// isJSXStart checks if we're at the start of a JSX element: a '<'
// immediately followed by an identifier character. A '<' used as the
// less-than operator is conventionally followed by a space, which this
// heuristic relies on (same trade-off the comparison operator forces on
// every JSX dialect).
func (l *Lexer) isJSXStart() bool {
	if l.peek() != '<' {
		return false
	}
	nextPos := l.pos + 1
	if nextPos >= len(l.input) {
		return false
	}
	return isIdentStart(rune(l.input[nextPos]))
}

// lexJSX handles lexing within JSX context.
func (l *Lexer) lexJSX() Token {
	l.skipWhitespaceInTag()

	if l.pos >= len(l.input) {
		return l.makeToken(TOKEN_EOF, "")
	}

	ch := l.peek()

	if ch == '{' {
		return l.lexJSXExpression()
	}

	if ch == '<' {
		return l.lexJSXOpen()
	}

	if ch == '>' {
		l.advance()
		wasClosingTag := l.inClosingTag
		wasSelfClosing := l.sawSlash
		l.inTag = false
		l.inClosingTag = false
		l.sawSlash = false
		if wasClosingTag || wasSelfClosing {
			l.jsxDepth--
			if l.jsxDepth == 0 {
				l.inJSX = false
			}
		}
		return l.makeToken(TOKEN_JSX_CLOSE, ">")
	}

	if ch == '/' && l.inTag {
		l.advance()
		l.sawSlash = true
		return l.makeToken(TOKEN_JSX_SLASH, "/")
	}

	if l.inTag {
		if ch == '=' {
			l.advance()
			return l.makeToken(TOKEN_JSX_EQUALS, "=")
		}

		if ch == '"' || ch == '\'' {
			return l.lexJSXString(ch)
		}

		if isIdentStart(ch) || (ch == '-' && !l.needTagName) {
			// Attribute names may start with '-' (custom-property style).
			if l.needTagName {
				l.needTagName = false
				return l.lexJSXIdentifier(TOKEN_JSX_TAG)
			}
			return l.lexJSXIdentifier(TOKEN_JSX_ATTR_NAME)
		}
	}

	return l.lexJSXText()
}

// lexJSXOpen handles < at the start of an opening or closing tag.
func (l *Lexer) lexJSXOpen() Token {
	start := l.pos
	l.advance() // consume <

	if l.peek() == '/' {
		// Closing tag: </tag>
		l.advance()
		l.inTag = true
		l.inClosingTag = true
		l.needTagName = true
		return Token{
			Type:   TOKEN_JSX_OPEN,
			Value:  "</",
			Offset: start,
			Line:   l.line,
			Column: l.column - 2,
		}
	}

	// Opening tag: <tag
	l.inTag = true
	l.needTagName = true
	l.jsxDepth++
	return Token{
		Type:   TOKEN_JSX_OPEN,
		Value:  "<",
		Offset: start,
		Line:   l.line,
		Column: l.column - 1,
	}
}

// lexJSXIdentifier lexes a tag or attribute name. Tag names may contain
// '.' (member-expression components) and ':' (namespaced); attribute names
// may contain '-' and ':'.
func (l *Lexer) lexJSXIdentifier(typ TokenType) Token {
	start := l.pos
	startLine := l.line
	startColumn := l.column

	for l.pos < len(l.input) {
		ch := l.peek()
		if isIdentChar(ch) || ch == '-' || ch == ':' {
			l.advance()
			continue
		}
		if ch == '.' && typ == TOKEN_JSX_TAG {
			l.advance()
			continue
		}
		break
	}

	return Token{
		Type:   typ,
		Value:  l.input[start:l.pos],
		Offset: start,
		Line:   startLine,
		Column: startColumn,
	}
}

// lexJSXString lexes a quoted string attribute value. Escaped quotes and
// backslashes are unescaped; the token value is the string's content.
func (l *Lexer) lexJSXString(quote rune) Token {
	start := l.pos
	startLine := l.line
	startColumn := l.column

	l.advance() // consume opening quote

	var b strings.Builder
	for l.pos < len(l.input) && l.peek() != quote {
		if l.peek() == '\\' {
			if next := l.peekNext(); next == quote || next == '\\' {
				l.advance() // drop the backslash
			}
		}
		b.WriteRune(l.peek())
		l.advance()
	}

	l.advance() // consume closing quote

	return Token{
		Type:   TOKEN_JSX_STRING,
		Value:  b.String(),
		Offset: start,
		Line:   startLine,
		Column: startColumn,
	}
}

// lexJSXExpression lexes a braced expression {expr}. Spread attributes
// arrive as expression text with the leading ... intact; the parser
// strips it.
func (l *Lexer) lexJSXExpression() Token {
	start := l.pos
	startLine := l.line
	startColumn := l.column

	l.advance() // consume {
	depth := 1

	exprStart := l.pos
	for l.pos < len(l.input) && depth > 0 {
		ch := l.peek()

		if ch == '{' {
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 {
				break
			}
		} else if ch == '"' {
			l.lexJSString('"')
			continue
		} else if ch == '\'' {
			l.lexJSString('\'')
			continue
		} else if ch == '`' {
			l.lexJSTemplate()
			continue
		} else if ch == '/' && l.peekNext() == '/' {
			l.lexJSLineComment()
			continue
		} else if ch == '/' && l.peekNext() == '*' {
			l.lexJSBlockComment()
			continue
		} else if ch == '<' && l.isJSXStart() {
			// Nested JSX stays verbatim inside the expression text; the
			// transform re-parses it later.
			l.lexNestedJSX()
			continue
		}

		l.advance()
	}

	expr := l.input[exprStart:l.pos]
	l.advance() // consume closing }

	return Token{
		Type:   TOKEN_JSX_EXPR,
		Value:  expr,
		Offset: start,
		Line:   startLine,
		Column: startColumn,
	}
}

// lexNestedJSX consumes a nested JSX element within an expression.
func (l *Lexer) lexNestedJSX() {
	depth := 0

	for l.pos < len(l.input) {
		ch := l.peek()

		if ch == '<' {
			if l.peekNext() == '/' {
				// Closing tag
				l.advance()
				l.advance()
				for l.pos < len(l.input) && l.peek() != '>' {
					l.advance()
				}
				if l.peek() == '>' {
					l.advance()
				}
				depth--
			} else if isIdentStart(l.peekNext()) {
				// Opening tag: scan to its > or />
				l.advance()
				depth++
				for l.pos < len(l.input) {
					if l.peek() == '>' {
						l.advance()
						break
					}
					if l.peek() == '/' && l.peekNext() == '>' {
						l.advance()
						l.advance()
						depth--
						break
					}
					l.advance()
				}
			} else {
				l.advance()
			}
		} else {
			l.advance()
		}

		if depth == 0 {
			break
		}
	}
}

// lexJSXText lexes text content between JSX tags.
func (l *Lexer) lexJSXText() Token {
	start := l.pos
	startLine := l.line
	startColumn := l.column

	for l.pos < len(l.input) {
		ch := l.peek()
		if ch == '<' || ch == '{' {
			break
		}
		l.advance()
	}

	return Token{
		Type:   TOKEN_JSX_TEXT,
		Value:  l.input[start:l.pos],
		Offset: start,
		Line:   startLine,
		Column: startColumn,
	}
}

// Helper functions

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *Lexer) peekNext() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	r, _ := utf8.DecodeRuneInString(l.input[l.pos+size:])
	return r
}

func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}

	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos += size
}

func (l *Lexer) makeToken(typ TokenType, value string) Token {
	return Token{
		Type:   typ,
		Value:  value,
		Offset: l.pos - len(value),
		Line:   l.line,
		Column: l.column - len(value),
	}
}

func (l *Lexer) skipWhitespaceInTag() {
	if !l.inTag {
		return
	}
	for l.pos < len(l.input) {
		ch := l.peek()
		if ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r' {
			break
		}
		l.advance()
	}
}

// lexJSString skips over a quoted JS string literal.
func (l *Lexer) lexJSString(quote rune) {
	l.advance() // consume opening quote
	for l.pos < len(l.input) {
		ch := l.peek()
		if ch == quote {
			l.advance()
			break
		}
		if ch == '\\' {
			l.advance()
		}
		l.advance()
	}
}

// lexJSTemplate skips over a template literal. Interpolations are skipped
// as balanced braces; nested templates inside them are handled.
func (l *Lexer) lexJSTemplate() {
	l.advance() // consume opening `
	for l.pos < len(l.input) {
		ch := l.peek()
		if ch == '`' {
			l.advance()
			break
		}
		if ch == '\\' {
			l.advance()
			l.advance()
			continue
		}
		if ch == '$' && l.peekNext() == '{' {
			l.advance()
			l.advance()
			depth := 1
			for l.pos < len(l.input) && depth > 0 {
				switch l.peek() {
				case '{':
					depth++
				case '}':
					depth--
				case '`':
					l.lexJSTemplate()
					continue
				}
				l.advance()
			}
			continue
		}
		l.advance()
	}
}

// lexJSLineComment skips over a // comment.
func (l *Lexer) lexJSLineComment() {
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
}

// lexJSBlockComment skips over a /* */ comment.
func (l *Lexer) lexJSBlockComment() {
	l.advance() // consume /
	l.advance() // consume *
	for l.pos < len(l.input) {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			break
		}
		l.advance()
	}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}
