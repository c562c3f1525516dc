package risp

import "testing"

func mustTokenize(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", src, err)
	}
	return tokens
}

func wantTokenTypes(t *testing.T, tokens []Token, types ...TokenType) {
	t.Helper()
	if len(tokens) != len(types) {
		t.Fatalf("want %d tokens, got %d: %v", len(types), len(tokens), tokens)
	}
	for i, typ := range types {
		if tokens[i].Type != typ {
			t.Fatalf("token %d: want type %d, got %d (%q)", i, typ, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestTokenizeAdd(t *testing.T) {
	tokens := mustTokenize(t, "(+ 1 2)")
	wantTokenTypes(t, tokens, LPAREN, BINOP, INTEGER, INTEGER, RPAREN)
	if tokens[1].Lexeme != "+" {
		t.Fatalf("want +, got %q", tokens[1].Lexeme)
	}
	if tokens[2].Literal.(int64) != 1 || tokens[3].Literal.(int64) != 2 {
		t.Fatalf("bad integer literals: %v", tokens)
	}
}

func TestTokenizeProgram(t *testing.T) {
	program := `
		(
			(define r 10)
			(define pi 314)
			(* pi (* r r))
		)
	`
	tokens := mustTokenize(t, program)
	wantTokenTypes(t, tokens,
		LPAREN,
		LPAREN, KEYWORD, SYMBOL, INTEGER, RPAREN,
		LPAREN, KEYWORD, SYMBOL, INTEGER, RPAREN,
		LPAREN, BINOP, SYMBOL, LPAREN, BINOP, SYMBOL, SYMBOL, RPAREN, RPAREN,
		RPAREN,
	)
}

func TestTokenizeClassification(t *testing.T) {
	cases := []struct {
		word string
		typ  TokenType
	}{
		{"-1", INTEGER},
		{"2.5", FLOAT},
		{"-0.5", FLOAT},
		{"define", KEYWORD},
		{"lambda", KEYWORD},
		{"reduce", KEYWORD},
		{"if", IF},
		{"!=", BINOP},
		{"%", BINOP},
		{"sum-n", SYMBOL},
		{"pi", SYMBOL},
		{"exit", SYMBOL},
	}
	for _, c := range cases {
		tokens := mustTokenize(t, c.word)
		if len(tokens) != 1 || tokens[0].Type != c.typ {
			t.Errorf("%q: want single token of type %d, got %v", c.word, c.typ, tokens)
		}
	}
}

func TestTokenizeString(t *testing.T) {
	tokens := mustTokenize(t, `(print "hello world")`)
	wantTokenTypes(t, tokens, LPAREN, KEYWORD, STRING, RPAREN)
	if tokens[2].Literal.(string) != "hello world" {
		t.Fatalf("want literal %q, got %v", "hello world", tokens[2].Literal)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize("(print \"oops)")
	le, ok := err.(*LexError)
	if !ok {
		t.Fatalf("want *LexError, got %T: %v", err, err)
	}
	if le.Line != 1 || le.Col != 8 {
		t.Fatalf("want error at 1:8, got %d:%d", le.Line, le.Col)
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens := mustTokenize(t, "(+\n  1 2)")
	if tokens[0].Line != 1 || tokens[0].Col != 1 {
		t.Fatalf("bad ( position: %+v", tokens[0])
	}
	if tokens[2].Line != 2 || tokens[2].Col != 3 {
		t.Fatalf("bad 1 position: %+v", tokens[2])
	}
}

func TestWordsBreakOnParens(t *testing.T) {
	tokens := mustTokenize(t, "(fact(- n 1))")
	wantTokenTypes(t, tokens, LPAREN, SYMBOL, LPAREN, BINOP, SYMBOL, INTEGER, RPAREN, RPAREN)
}
