package parser

import (
	"errors"
	"fmt"
	"unicode"
)

var ErrNotACall = errors.New("expression is not a call or property access")

type PositionError struct {
	Pos int
	Err error
}

func (e PositionError) Error() string {
	return fmt.Sprintf("%d: %v", e.Pos, e.Err)
}

func (e PositionError) Unwrap() error {
	return e.Err
}

// ParseCall parses a call site of the form [receiver.]name[(args)].
func ParseCall(src string) (*CallExpr, error) {
	p := &callParser{src: []rune(src)}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos])
	}

	switch expr := expr.(type) {
	case *CallExpr:
		return expr, nil
	case *DotExpr:
		return &CallExpr{
			Receiver: expr.Receiver,
			Callee:   &ReferenceExpr{Name: expr.Name},
		}, nil
	case *ReferenceExpr:
		return &CallExpr{
			Callee: expr,
		}, nil
	default:
		return nil, PositionError{Pos: 0, Err: ErrNotACall}
	}
}

type callParser struct {
	src []rune
	pos int
}

func (p *callParser) errorf(format string, args ...any) error {
	return PositionError{
		Pos: p.pos,
		Err: fmt.Errorf(format, args...),
	}
}

func (p *callParser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *callParser) peek(r rune) bool {
	p.skipSpace()
	return p.pos < len(p.src) && p.src[p.pos] == r
}

func (p *callParser) accept(r rune) bool {
	if !p.peek(r) {
		return false
	}

	p.pos++

	return true
}

func (p *callParser) parseIdentifier() (Identifier, error) {
	p.skipSpace()

	start := p.pos
	for p.pos < len(p.src) {
		r := p.src[p.pos]
		if r == '_' || unicode.IsLetter(r) || (p.pos > start && unicode.IsDigit(r)) {
			p.pos++
			continue
		}

		break
	}

	if start == p.pos {
		if p.pos >= len(p.src) {
			return "", p.errorf("expected identifier, found end of input")
		}

		return "", p.errorf("expected identifier, found %q", p.src[p.pos])
	}

	return Identifier(p.src[start:p.pos]), nil
}

func (p *callParser) parseLabel() (Identifier, error) {
	if !p.accept('@') {
		return "", nil
	}

	return p.parseIdentifier()
}

func (p *callParser) parsePrimary() (Expr, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	switch Keyword(name) {
	case KeywordThis:
		label, err := p.parseLabel()
		if err != nil {
			return nil, err
		}

		return &ThisExpr{Label: label}, nil
	case KeywordSuper:
		label, err := p.parseLabel()
		if err != nil {
			return nil, err
		}

		return &SuperExpr{Label: label}, nil
	}

	if p.peek('(') {
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}

		return &CallExpr{
			Callee:  &ReferenceExpr{Name: name},
			Args:    args,
			Invoked: true,
		}, nil
	}

	return &ReferenceExpr{Name: name}, nil
}

func (p *callParser) parseExpr() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.accept('.') {
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}

		if !p.peek('(') {
			expr = &DotExpr{
				Receiver: expr,
				Name:     name,
			}
			continue
		}

		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}

		expr = &CallExpr{
			Receiver: expr,
			Callee:   &ReferenceExpr{Name: name},
			Args:     args,
			Invoked:  true,
		}
	}

	return expr, nil
}

func (p *callParser) parseArgs() ([]Expr, error) {
	if !p.accept('(') {
		return nil, p.errorf("expected '('")
	}

	var args []Expr
	if p.accept(')') {
		return args, nil
	}

	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		if p.accept(')') {
			return args, nil
		}

		if !p.accept(',') {
			return nil, p.errorf("expected ',' or ')'")
		}
	}
}
