package reader

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lispkit/lisp/internal/value"
)

// ErrNoForm signals that the input tokenized to nothing (spec §4.1:
// "Empty input ... yields a sentinel 'no form' condition that the
// REPL silently drops").
var ErrNoForm = errors.New("no form")

// Read tokenizes and parses src, returning the first form. Reader
// errors ("unbalanced", "odd number of forms", bad hash-map key, ...)
// are returned as *Error, which callers wrap into a language
// exception Value (spec §7).
func Read(src string) (value.Value, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrNoForm
	}
	p := &parser{tokens: tokens}
	v, err := p.readForm()
	if err != nil {
		return nil, err
	}
	return v, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) lastPos() Position {
	if len(p.tokens) == 0 {
		return Position{1, 1}
	}
	return p.tokens[len(p.tokens)-1].Pos
}

// readForm parses exactly one form starting at the current token.
func (p *parser) readForm() (value.Value, error) {
	tok, ok := p.next()
	if !ok {
		return nil, newError(p.lastPos(), "unbalanced form: unexpected end of input")
	}

	switch tok.Kind {
	case TokenString:
		return p.readString(tok)
	case TokenAtom:
		return p.readAtom(tok)
	case TokenSpecial:
		switch tok.Literal {
		case "(":
			return p.readSeq(")", func(items []value.Value) value.Value { return value.NewList(items...) })
		case "[":
			return p.readSeq("]", func(items []value.Value) value.Value { return value.NewVector(items...) })
		case "{":
			return p.readHashMap()
		case ")", "]", "}":
			return nil, newError(tok.Pos, "unbalanced %q", tok.Literal)
		case "'":
			return p.readWrapped(tok.Pos, "quote")
		case "`":
			return p.readWrapped(tok.Pos, "quasiquote")
		case "~":
			return p.readWrapped(tok.Pos, "unquote")
		case "~@":
			return p.readWrapped(tok.Pos, "splice-unquote")
		case "@":
			return p.readWrapped(tok.Pos, "deref")
		case "^":
			meta, err := p.readForm()
			if err != nil {
				return nil, err
			}
			target, err := p.readForm()
			if err != nil {
				return nil, err
			}
			return value.NewList(value.Symbol("with-meta"), target, meta), nil
		default:
			return nil, newError(tok.Pos, "unexpected token %q", tok.Literal)
		}
	default:
		return nil, newError(tok.Pos, "unexpected token %q", tok.Literal)
	}
}

// readWrapped implements the quote-family shorthands: `'x` -> (quote
// x), and so on (spec §4.1).
func (p *parser) readWrapped(pos Position, sym string) (value.Value, error) {
	inner, err := p.readForm()
	if err != nil {
		return nil, err
	}
	return value.NewList(value.Symbol(sym), inner), nil
}

func (p *parser) readSeq(closer string, build func([]value.Value) value.Value) (value.Value, error) {
	var items []value.Value
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, newError(p.lastPos(), "unbalanced %q", closer)
		}
		if tok.Kind == TokenSpecial && tok.Literal == closer {
			p.pos++
			return build(items), nil
		}
		v, err := p.readForm()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func (p *parser) readHashMap() (value.Value, error) {
	m := value.NewHashMap()
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, newError(p.lastPos(), "unbalanced %q", "}")
		}
		if tok.Kind == TokenSpecial && tok.Literal == "}" {
			p.pos++
			return m, nil
		}
		k, err := p.readForm()
		if err != nil {
			return nil, err
		}
		switch k.(type) {
		case value.String, value.Keyword:
		default:
			return nil, newError(tok.Pos, "hash-map key must be a string or keyword")
		}
		vTok, ok := p.peek()
		if !ok || (vTok.Kind == TokenSpecial && vTok.Literal == "}") {
			return nil, newError(p.lastPos(), "hash-map literal has an odd number of forms")
		}
		v, err := p.readForm()
		if err != nil {
			return nil, err
		}
		var assocErr error
		m, assocErr = m.Assoc(k, v)
		if assocErr != nil {
			return nil, newError(tok.Pos, "%s", assocErr.Error())
		}
	}
}

func (p *parser) readString(tok Token) (value.Value, error) {
	raw := tok.Literal
	// raw includes the surrounding quotes; body is raw[1 : len(raw)-1].
	body := raw[1 : len(raw)-1]
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			break
		}
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(body[i])
		}
	}
	return value.String(sb.String()), nil
}

func (p *parser) readAtom(tok Token) (value.Value, error) {
	lit := tok.Literal

	switch lit {
	case "nil":
		return value.NilValue, nil
	case "true":
		return value.True, nil
	case "false":
		return value.False, nil
	}

	if strings.HasPrefix(lit, ":") {
		return value.Keyword(lit[1:]), nil
	}

	if isIntLiteral(lit) {
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return nil, newError(tok.Pos, "malformed integer literal %q", lit)
		}
		return value.Int(n), nil
	}

	return value.Symbol(lit), nil
}

// isIntLiteral matches spec §4.1: a token whose first character is a
// digit, or '-' followed by a digit, is an Int.
func isIntLiteral(lit string) bool {
	if lit == "" {
		return false
	}
	if lit[0] >= '0' && lit[0] <= '9' {
		return true
	}
	return lit[0] == '-' && len(lit) > 1 && lit[1] >= '0' && lit[1] <= '9'
}
