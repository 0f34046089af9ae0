// Package lexer turns Adamite source text into a flat token stream.
package lexer

import (
	"strings"
	"unicode"

	"github.com/akashmaji946/adamite/token"
)

// maxLiteralBytes bounds string and char literal bodies; anything longer
// is truncated, matching the fixed-size char buffers the original
// interpreter reads text into.
const maxLiteralBytes = 99

// Lexer scans Adamite source one byte at a time, tracking line/column
// for error reporting.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// New creates a Lexer positioned at the first byte of src.
func New(src string) *Lexer {
	var current byte
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		Src:       src,
		Current:   current,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
}

// Peek returns the byte after Current without consuming it.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance consumes Current and moves to the next byte.
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

func isWhitespace(c byte) bool { return unicode.IsSpace(rune(c)) }
func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool      { return unicode.IsLetter(rune(c)) }
func isAlnum(c byte) bool      { return isAlpha(c) || isDigit(c) }

// IgnoreWhitespaceAndComments skips runs of whitespace, "//" line
// comments, and "/* */" block comments. Block comments are scanned flat
// to the next "*/" regardless of nested "/*" markers inside them — the
// same non-nesting behavior the original lexer has.
func (lex *Lexer) IgnoreWhitespaceAndComments() {
	for {
		switch {
		case isWhitespace(lex.Current):
			if lex.Current == '\n' {
				lex.Line++
				lex.Column = 1
			}
			lex.Advance()
		case lex.Current == '/' && lex.Peek() == '/':
			lex.skipLineComment()
		case lex.Current == '/' && lex.Peek() == '*':
			lex.skipBlockComment()
		default:
			return
		}
	}
}

func (lex *Lexer) skipLineComment() {
	lex.Advance()
	lex.Advance()
	for lex.Current != '\n' && lex.Current != 0 {
		lex.Advance()
	}
}

func (lex *Lexer) skipBlockComment() {
	lex.Advance()
	lex.Advance()
	for lex.Current != 0 {
		if lex.Current == '*' && lex.Peek() == '/' {
			lex.Advance()
			lex.Advance()
			return
		}
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 1
		}
		lex.Advance()
	}
}

// NextToken returns the next token in the stream, or an EOF token once
// the source is exhausted.
func (lex *Lexer) NextToken() token.Token {
	lex.IgnoreWhitespaceAndComments()

	line, col := lex.Line, lex.Column
	var tok token.Token

	switch lex.Current {
	case 0:
		return token.NewAt(token.EOF, "EOF", line, col)
	case '"':
		return lex.readString()
	case '\'':
		return lex.readChar()
	case '=':
		if lex.Peek() == '=' {
			lex.Advance()
			tok = token.NewAt(token.EQ, "==", line, col)
		} else {
			tok = token.NewAt(token.ASSIGN, "=", line, col)
		}
	case '!':
		if lex.Peek() == '=' {
			lex.Advance()
			tok = token.NewAt(token.NEQ, "!=", line, col)
		} else {
			// a lone '!' is lexer noise: emit it and let the caller drop it
			tok = token.NewAt(token.BANG, "!", line, col)
		}
	case '<':
		tok = token.NewAt(token.LT, "<", line, col)
	case '>':
		tok = token.NewAt(token.GT, ">", line, col)
	case '+':
		tok = token.NewAt(token.PLUS, "+", line, col)
	case '-':
		if lex.Peek() == '>' {
			lex.Advance()
			tok = token.NewAt(token.ARROW, "->", line, col)
		} else {
			tok = token.NewAt(token.MINUS, "-", line, col)
		}
	case '*':
		tok = token.NewAt(token.STAR, "*", line, col)
	case '/':
		tok = token.NewAt(token.SLASH, "/", line, col)
	case '%':
		tok = token.NewAt(token.PERCENT, "%", line, col)
	case '^':
		tok = token.NewAt(token.CARET, "^", line, col)
	case '$':
		tok = token.NewAt(token.DOLLAR, "$", line, col)
	case '(':
		tok = token.NewAt(token.LPAREN, "(", line, col)
	case ')':
		tok = token.NewAt(token.RPAREN, ")", line, col)
	case '{':
		tok = token.NewAt(token.LBRACE, "{", line, col)
	case '}':
		tok = token.NewAt(token.RBRACE, "}", line, col)
	case '[':
		tok = token.NewAt(token.LBRACKET, "[", line, col)
	case ']':
		tok = token.NewAt(token.RBRACKET, "]", line, col)
	case ':':
		tok = token.NewAt(token.COLON, ":", line, col)
	case ',':
		tok = token.NewAt(token.COMMA, ",", line, col)
	case ';':
		tok = token.NewAt(token.SEMI, ";", line, col)
	default:
		if isDigit(lex.Current) {
			return lex.readNumber()
		}
		if isAlpha(lex.Current) || lex.Current == '_' {
			return lex.readIdent()
		}
		// unrecognized byte: end the stream with an EOF token carrying the
		// byte as its text, which the parser reports as a syntax error
		tok = token.NewAt(token.EOF, string(lex.Current), line, col)
	}

	lex.Advance()
	return tok
}

func (lex *Lexer) readString() token.Token {
	line, col := lex.Line, lex.Column
	lex.Advance() // opening quote
	var b strings.Builder
	for lex.Current != '"' && lex.Current != 0 {
		b.WriteByte(lex.Current)
		lex.Advance()
	}
	lex.Advance() // closing quote
	text := b.String()
	if len(text) > maxLiteralBytes {
		text = text[:maxLiteralBytes]
	}
	return token.NewAt(token.STRING_LIT, text, line, col)
}

// readChar reads a single-quoted literal the same way readString reads
// a double-quoted one — both delimiters bound the same kind of
// run-of-bytes literal, capped at maxLiteralBytes — so a multi-byte
// payload like 'hi' is fully consumed instead of leaving trailing bytes
// to corrupt the rest of the scan.
func (lex *Lexer) readChar() token.Token {
	line, col := lex.Line, lex.Column
	lex.Advance() // opening quote
	var b strings.Builder
	for lex.Current != '\'' && lex.Current != 0 {
		b.WriteByte(lex.Current)
		lex.Advance()
	}
	lex.Advance() // closing quote
	text := b.String()
	if len(text) > maxLiteralBytes {
		text = text[:maxLiteralBytes]
	}
	return token.NewAt(token.CHAR_LIT, text, line, col)
}

func (lex *Lexer) readNumber() token.Token {
	line, col := lex.Line, lex.Column
	start := lex.Position
	for isDigit(lex.Current) {
		lex.Advance()
	}
	return token.NewAt(token.INT_LIT, lex.Src[start:lex.Position], line, col)
}

func (lex *Lexer) readIdent() token.Token {
	line, col := lex.Line, lex.Column
	start := lex.Position
	for isAlnum(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}
	text := lex.Src[start:lex.Position]
	return token.NewAt(token.LookupIdent(text), text, line, col)
}

// Tokens tokenizes the entire source, excluding BANG noise tokens and the
// trailing EOF.
func (lex *Lexer) Tokens() []token.Token {
	toks := make([]token.Token, 0)
	for {
		tok := lex.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.BANG {
			continue
		}
		toks = append(toks, tok)
	}
	return toks
}
