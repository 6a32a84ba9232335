package parser

import (
	"fmt"
	"strings"
)

type Keyword string

const (
	KeywordThis  Keyword = "this"
	KeywordSuper Keyword = "super"
)

type Identifier string

type Expr interface {
	expr()
	String() string
}

type ReferenceExpr struct {
	Name Identifier
}

func (*ReferenceExpr) expr() {}

func (e *ReferenceExpr) String() string {
	return string(e.Name)
}

type ThisExpr struct {
	Label Identifier
}

func (*ThisExpr) expr() {}

func (e *ThisExpr) String() string {
	return labeled(KeywordThis, e.Label)
}

type SuperExpr struct {
	Label Identifier
}

func (*SuperExpr) expr() {}

func (e *SuperExpr) String() string {
	return labeled(KeywordSuper, e.Label)
}

type DotExpr struct {
	Receiver Expr
	Name     Identifier
}

func (*DotExpr) expr() {}

func (e *DotExpr) String() string {
	return fmt.Sprintf("%s.%s", e.Receiver, e.Name)
}

// CallExpr is a call site. Invoked is false for a property access, which
// resolves through the same machinery with no arguments.
type CallExpr struct {
	Receiver Expr
	Callee   *ReferenceExpr
	Args     []Expr
	Invoked  bool
}

func (*CallExpr) expr() {}

func (e *CallExpr) String() string {
	var b strings.Builder
	if e.Receiver != nil {
		b.WriteString(e.Receiver.String())
		b.WriteString(".")
	}

	b.WriteString(e.Callee.String())

	if e.Invoked {
		args := make([]string, 0, len(e.Args))
		for _, arg := range e.Args {
			args = append(args, arg.String())
		}

		fmt.Fprintf(&b, "(%s)", strings.Join(args, ", "))
	}

	return b.String()
}

func labeled(kw Keyword, label Identifier) string {
	if label == "" {
		return string(kw)
	}

	return fmt.Sprintf("%s@%s", kw, label)
}
