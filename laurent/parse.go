// SPDX-License-Identifier: MIT

package laurent

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Parse reads a Laurent polynomial in r's variable.
//
// Grammar:
//
//	expr   := term (('+' | '-') term)*
//	term   := unary (('*' | '/')? unary)*     juxtaposition multiplies: 5z^2
//	unary  := ('+' | '-') unary | power
//	power  := atom (('^' | '**') exponent)?
//	exponent := ['+' | '-'] integer | '(' ['+' | '-'] integer ')'
//	atom   := number | variable | 'i' | 'I' | '(' expr ')'
//
// '/' is exact division in F[z, z^-1]; 'i' is accepted only when the field
// has an imaginary unit. Exponents beyond MaxExponent, in the input or in any
// intermediate product, yield ErrTooLarge.
func (r *Ring) Parse(s string) (*Poly, error) {
	p := &parser{ring: r, lex: lexer{input: s}}
	p.next()
	v, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected %q", p.tok.text)
	}

	return v, nil
}

// MustParse is Parse for literals known to be valid; it panics on error.
func (r *Ring) MustParse(s string) *Poly {
	v, err := r.Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokNumber
	tokIdent
	tokOp // one of + - * / ^ ( )
	tokError
)

type token struct {
	kind tokKind
	text string
	pos  int
}

// lexer is a single-pass rune scanner over the input string.
type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() token {
	for l.pos < len(l.input) {
		r, w := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += w
	}
	if l.pos >= len(l.input) {
		return token{kind: tokEOF, pos: l.pos}
	}
	start := l.pos
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	switch {
	case unicode.IsDigit(r) || r == '.':
		for l.pos < len(l.input) {
			r, w = utf8.DecodeRuneInString(l.input[l.pos:])
			if !unicode.IsDigit(r) && r != '.' {
				break
			}
			l.pos += w
		}
		return token{kind: tokNumber, text: l.input[start:l.pos], pos: start}
	case unicode.IsLetter(r) || r == '_':
		for l.pos < len(l.input) {
			r, w = utf8.DecodeRuneInString(l.input[l.pos:])
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				break
			}
			l.pos += w
		}
		return token{kind: tokIdent, text: l.input[start:l.pos], pos: start}
	case r == '*' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '*':
		l.pos += 2
		return token{kind: tokOp, text: "^", pos: start}
	case r == '+' || r == '-' || r == '*' || r == '/' || r == '^' || r == '(' || r == ')':
		l.pos += w
		return token{kind: tokOp, text: string(r), pos: start}
	}
	l.pos += w

	return token{kind: tokError, text: string(r), pos: start}
}

type parser struct {
	ring *Ring
	lex  lexer
	tok  token
}

func (p *parser) next() { p.tok = p.lex.next() }

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("Parse %q at %d: %s: %w", p.lex.input, p.tok.pos, fmt.Sprintf(format, args...), ErrSyntax)
}

func (p *parser) isOp(op string) bool { return p.tok.kind == tokOp && p.tok.text == op }

func (p *parser) expr() (*Poly, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.isOp("+") || p.isOp("-") {
		op := p.tok.text
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == "+" {
			left = left.Add(right)
		} else {
			left = left.Sub(right)
		}
	}

	return left, nil
}

// startsAtom reports whether the current token can begin an implicit factor.
func (p *parser) startsAtom() bool {
	return p.tok.kind == tokNumber || p.tok.kind == tokIdent || p.isOp("(")
}

func (p *parser) term() (*Poly, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.isOp("*"):
			p.next()
		case p.isOp("/"):
			p.next()
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			if left, err = Quo(left, right); err != nil {
				return nil, fmt.Errorf("Parse %q: %w", p.lex.input, err)
			}
			if err = p.checkBounded(left); err != nil {
				return nil, err
			}
			continue
		case p.startsAtom():
		default:
			return left, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = left.Mul(right)
		if err = p.checkBounded(left); err != nil {
			return nil, err
		}
	}
}

// checkBounded rejects intermediate results whose exponents leave
// [-MaxExponent, MaxExponent].
func (p *parser) checkBounded(v *Poly) error {
	if v.Bounded() {
		return nil
	}

	return fmt.Errorf("Parse %q: degree %d, order %d: %w", p.lex.input, v.Degree(), v.Order(), ErrTooLarge)
}

func (p *parser) unary() (*Poly, error) {
	switch {
	case p.isOp("-"):
		p.next()
		v, err := p.unary()
		if err != nil {
			return nil, err
		}
		return v.Neg(), nil
	case p.isOp("+"):
		p.next()
		return p.unary()
	}

	return p.power()
}

func (p *parser) power() (*Poly, error) {
	base, err := p.atom()
	if err != nil {
		return nil, err
	}
	if !p.isOp("^") {
		return base, nil
	}
	p.next()
	n, err := p.exponent()
	if err != nil {
		return nil, err
	}
	v, err := base.Pow(n)
	if err != nil {
		return nil, fmt.Errorf("Parse %q: %w", p.lex.input, err)
	}

	return v, nil
}

func (p *parser) exponent() (int, error) {
	paren := p.isOp("(")
	if paren {
		p.next()
	}
	sign := 1
	if p.isOp("-") || p.isOp("+") {
		if p.tok.text == "-" {
			sign = -1
		}
		p.next()
	}
	if p.tok.kind != tokNumber {
		return 0, p.errorf("expected integer exponent")
	}
	n, err := strconv.Atoi(p.tok.text)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("Parse %q: exponent %s: %w", p.lex.input, p.tok.text, ErrTooLarge)
	}
	if err != nil {
		return 0, p.errorf("bad exponent %q", p.tok.text)
	}
	p.next()
	if paren {
		if !p.isOp(")") {
			return 0, p.errorf("missing ')'")
		}
		p.next()
	}

	return sign * n, nil
}

func (p *parser) atom() (*Poly, error) {
	switch p.tok.kind {
	case tokNumber:
		v, ok := new(big.Rat).SetString(p.tok.text)
		if !ok {
			return nil, p.errorf("bad number %q", p.tok.text)
		}
		p.next()
		return p.ring.Const(p.ring.f.FromRat(v)), nil
	case tokIdent:
		name := p.tok.text
		if name == p.ring.v {
			p.next()
			return p.ring.Gen(), nil
		}
		if name == "i" || name == "I" {
			if i, ok := p.ring.f.ImaginaryUnit(); ok {
				p.next()
				return p.ring.Const(i), nil
			}
		}
		return nil, p.errorf("unknown identifier %q", name)
	case tokOp:
		if p.tok.text == "(" {
			p.next()
			v, err := p.expr()
			if err != nil {
				return nil, err
			}
			if !p.isOp(")") {
				return nil, p.errorf("missing ')'")
			}
			p.next()
			return v, nil
		}
	case tokEOF:
		return nil, p.errorf("unexpected end of input")
	}

	return nil, p.errorf("unexpected %q", p.tok.text)
}
