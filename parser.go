// parser.go: token stream -> a single nested list-of-forms AST.
package risp

import "fmt"

// ParseError reports a syntax failure at a 1-based position.
type ParseError struct {
	Line int
	Col  int
	Msg  string

	incomplete bool // input ended inside an open form
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// IsIncomplete reports whether err means the input is a syntactically valid
// prefix that ended before the form was closed. Interactive callers use it
// to keep accumulating lines instead of reporting an error.
func IsIncomplete(err error) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.incomplete
}

// Parse tokenizes src and reduces it to exactly one root form. Trailing
// tokens after the first complete form are an error.
func Parse(src string) (Object, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return Void, err
	}
	if len(tokens) == 0 {
		return Void, &ParseError{Line: 1, Col: 1, Msg: "empty input", incomplete: true}
	}
	p := &parser{tokens: tokens}
	form, err := p.parseForm()
	if err != nil {
		return Void, err
	}
	if p.pos != len(tokens) {
		t := p.tokens[p.pos]
		return Void, &ParseError{Line: t.Line, Col: t.Col, Msg: fmt.Sprintf("unexpected trailing token %q", t.Lexeme)}
	}
	return form, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) parseForm() (Object, error) {
	t := p.tokens[p.pos]
	p.pos++
	switch t.Type {
	case LPAREN:
		return p.parseList(t)
	case RPAREN:
		return Void, &ParseError{Line: t.Line, Col: t.Col, Msg: "unexpected token \")\""}
	case INTEGER:
		return Int(t.Literal.(int64)), nil
	case FLOAT:
		return Float(t.Literal.(float64)), nil
	case STRING:
		return Str(t.Literal.(string)), nil
	case KEYWORD:
		return Kw(t.Lexeme), nil
	case IF:
		return If, nil
	case BINOP:
		return Op(t.Lexeme), nil
	default:
		return Sym(t.Lexeme), nil
	}
}

// parseList consumes forms until the matching ")". open is the "(" token,
// kept for the unclosed-list diagnostic.
func (p *parser) parseList(open Token) (Object, error) {
	items := []Object{}
	for {
		if p.pos >= len(p.tokens) {
			return Void, &ParseError{Line: open.Line, Col: open.Col, Msg: "unclosed \"(\"", incomplete: true}
		}
		if p.tokens[p.pos].Type == RPAREN {
			p.pos++
			return Object{Tag: TList, Data: items}, nil
		}
		form, err := p.parseForm()
		if err != nil {
			return Void, err
		}
		items = append(items, form)
	}
}
