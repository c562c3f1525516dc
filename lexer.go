// lexer.go: raw text -> token stream.
//
// Tokens already carry the distinguished classification (keyword, if,
// binary operator, symbol) so the evaluator's dispatch is a closed switch
// over node kinds instead of repeated string comparisons.
package risp

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// TokenType represents the kind of token.
type TokenType int

const (
	LPAREN TokenType = iota
	RPAREN
	STRING
	INTEGER
	FLOAT
	KEYWORD
	IF
	BINOP
	SYMBOL
)

// Token is a lexical token with an optional parsed literal value.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text
	Literal interface{} // int64 for INTEGER, float64 for FLOAT, string for STRING
	Line    int
	Col     int
}

// LexError reports a tokenization failure at a 1-based position.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEX ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

var keywords = map[string]bool{
	"define": true,
	"list":   true,
	"print":  true,
	"lambda": true,
	"map":    true,
	"filter": true,
	"reduce": true,
}

var operators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"<": true, ">": true, "=": true, "!=": true, "&": true, "|": true,
}

// Tokenize splits src into tokens. Strings are double-quoted with no escape
// processing; an unterminated string is an error. Words break on whitespace
// and parentheses.
func Tokenize(src string) ([]Token, error) {
	var tokens []Token
	rs := []rune(src)
	line, col := 1, 1
	i := 0

	advance := func() rune {
		ch := rs[i]
		i++
		if ch == '\n' {
			line, col = line+1, 1
		} else {
			col++
		}
		return ch
	}

	for i < len(rs) {
		startLine, startCol := line, col
		ch := advance()

		switch {
		case ch == '(':
			tokens = append(tokens, Token{Type: LPAREN, Lexeme: "(", Line: startLine, Col: startCol})
		case ch == ')':
			tokens = append(tokens, Token{Type: RPAREN, Lexeme: ")", Line: startLine, Col: startCol})
		case ch == '"':
			var b strings.Builder
			terminated := false
			for i < len(rs) {
				c := advance()
				if c == '"' {
					terminated = true
					break
				}
				b.WriteRune(c)
			}
			if !terminated {
				return nil, &LexError{Line: startLine, Col: startCol, Msg: fmt.Sprintf("unterminated string: %s", b.String())}
			}
			s := b.String()
			tokens = append(tokens, Token{Type: STRING, Lexeme: "\"" + s + "\"", Literal: s, Line: startLine, Col: startCol})
		case unicode.IsSpace(ch):
			// skip
		default:
			var b strings.Builder
			b.WriteRune(ch)
			for i < len(rs) && !unicode.IsSpace(rs[i]) && rs[i] != '(' && rs[i] != ')' {
				b.WriteRune(advance())
			}
			tokens = append(tokens, classifyWord(b.String(), startLine, startCol))
		}
	}
	return tokens, nil
}

func classifyWord(word string, line, col int) Token {
	if n, err := strconv.ParseInt(word, 10, 64); err == nil {
		return Token{Type: INTEGER, Lexeme: word, Literal: n, Line: line, Col: col}
	}
	if f, err := strconv.ParseFloat(word, 64); err == nil {
		return Token{Type: FLOAT, Lexeme: word, Literal: f, Line: line, Col: col}
	}
	switch {
	case keywords[word]:
		return Token{Type: KEYWORD, Lexeme: word, Line: line, Col: col}
	case word == "if":
		return Token{Type: IF, Lexeme: word, Line: line, Col: col}
	case operators[word]:
		return Token{Type: BINOP, Lexeme: word, Line: line, Col: col}
	default:
		return Token{Type: SYMBOL, Lexeme: word, Line: line, Col: col}
	}
}
