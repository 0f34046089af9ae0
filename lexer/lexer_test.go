package lexer

import (
	"testing"

	"github.com/akashmaji946/adamite/token"
	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []token.Token
}

func TestLexer_Tokens(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `int x = 5 + 3;`,
			Expected: []token.Token{
				token.New(token.TYPE_INT, "int"),
				token.New(token.IDENT, "x"),
				token.New(token.ASSIGN, "="),
				token.New(token.INT_LIT, "5"),
				token.New(token.PLUS, "+"),
				token.New(token.INT_LIT, "3"),
				token.New(token.SEMI, ";"),
			},
		},
		{
			Input: `if (a < b) { puts "lt"; } end`,
			Expected: []token.Token{
				token.New(token.IF, "if"),
				token.New(token.LPAREN, "("),
				token.New(token.IDENT, "a"),
				token.New(token.LT, "<"),
				token.New(token.IDENT, "b"),
				token.New(token.RPAREN, ")"),
				token.New(token.LBRACE, "{"),
				token.New(token.PUTS, "puts"),
				token.New(token.STRING_LIT, "lt"),
				token.New(token.SEMI, ";"),
				token.New(token.RBRACE, "}"),
				token.New(token.END, "end"),
			},
		},
		{
			Input: `x -> y $z == != struct fn`,
			Expected: []token.Token{
				token.New(token.IDENT, "x"),
				token.New(token.ARROW, "->"),
				token.New(token.IDENT, "y"),
				token.New(token.DOLLAR, "$"),
				token.New(token.IDENT, "z"),
				token.New(token.EQ, "=="),
				token.New(token.NEQ, "!="),
				token.New(token.STRUCT, "struct"),
				token.New(token.FN, "fn"),
			},
		},
		{
			Input: `'a' "hello" new int[3]`,
			Expected: []token.Token{
				token.New(token.CHAR_LIT, "a"),
				token.New(token.STRING_LIT, "hello"),
				token.New(token.NEW, "new"),
				token.New(token.TYPE_INT, "int"),
				token.New(token.LBRACKET, "["),
				token.New(token.INT_LIT, "3"),
				token.New(token.RBRACKET, "]"),
			},
		},
		{
			Input: "// a comment\nint x; /* block\ncomment */ int y;",
			Expected: []token.Token{
				token.New(token.TYPE_INT, "int"),
				token.New(token.IDENT, "x"),
				token.New(token.SEMI, ";"),
				token.New(token.TYPE_INT, "int"),
				token.New(token.IDENT, "y"),
				token.New(token.SEMI, ";"),
			},
		},
		{
			// a lone '!' is lexer noise and must be dropped
			Input: `a ! = b`,
			Expected: []token.Token{
				token.New(token.IDENT, "a"),
				token.New(token.ASSIGN, "="),
				token.New(token.IDENT, "b"),
			},
		},
	}

	for _, test := range tests {
		lex := New(test.Input)
		got := lex.Tokens()
		assert.Equal(t, len(test.Expected), len(got), test.Input)
		for i, want := range test.Expected {
			assert.Equal(t, want.Kind, got[i].Kind, test.Input)
			assert.Equal(t, want.Text, got[i].Text, test.Input)
		}
	}
}

func TestLexer_SingleQuotedMultiByteLiteral(t *testing.T) {
	lex := New(`'hi' + 1`)
	toks := lex.Tokens()
	assert.Equal(t, token.CHAR_LIT, toks[0].Kind)
	assert.Equal(t, "hi", toks[0].Text)
	assert.Equal(t, token.PLUS, toks[1].Kind)
	assert.Equal(t, token.INT_LIT, toks[2].Kind)
	assert.Equal(t, "1", toks[2].Text)
}

func TestLexer_BlockCommentDoesNotNest(t *testing.T) {
	lex := New(`/* outer /* inner */ int x; */`)
	toks := lex.Tokens()
	// the scan ends at the first "*/", so "int x;" is real code and the
	// trailing " */" becomes ordinary STAR and SLASH tokens
	assert.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, token.TYPE_INT, toks[0].Kind)
}

func TestLexer_StringLiteralTruncatesAt99Bytes(t *testing.T) {
	long := ""
	for i := 0; i < 150; i++ {
		long += "a"
	}
	lex := New(`"` + long + `"`)
	tok := lex.NextToken()
	assert.Equal(t, token.STRING_LIT, tok.Kind)
	assert.Equal(t, 99, len(tok.Text))
}
