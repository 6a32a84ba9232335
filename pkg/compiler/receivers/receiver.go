package receivers

import (
	"fmt"

	"github.com/rhino1998/calls/pkg/compiler/descriptors"
	"github.com/rhino1998/calls/pkg/compiler/types"
	"github.com/rhino1998/calls/pkg/parser"
)

// Receiver is the value a call is dispatched on. The set of implementations
// is closed: None, *Expression, *Class and *Extension.
type Receiver interface {
	Exists() bool
	Type() types.Type
	String() string

	receiver()
}

var None Receiver = none{}

type none struct{}

func (none) receiver()        {}
func (none) Exists() bool     { return false }
func (none) Type() types.Type { return nil }
func (none) String() string   { return "<none>" }

// Expression is a receiver written at the call site.
type Expression struct {
	expr parser.Expr
	typ  types.Type
}

func NewExpression(expr parser.Expr, typ types.Type) *Expression {
	return &Expression{
		expr: expr,
		typ:  typ,
	}
}

func (*Expression) receiver() {}

func (r *Expression) Exists() bool {
	return true
}

func (r *Expression) Expression() parser.Expr {
	return r.expr
}

func (r *Expression) Type() types.Type {
	return r.typ
}

func (r *Expression) String() string {
	return fmt.Sprintf("%s: %s", r.expr, r.typ)
}

// Class is the implicit this of a class body, or a reference to a singleton
// object that the programmer did not write.
type Class struct {
	class *descriptors.Class
}

func NewClass(class *descriptors.Class) *Class {
	return &Class{
		class: class,
	}
}

func (*Class) receiver() {}

func (r *Class) Exists() bool {
	return true
}

func (r *Class) Class() *descriptors.Class {
	return r.class
}

func (r *Class) Type() types.Type {
	return r.class.DefaultType()
}

func (r *Class) String() string {
	return fmt.Sprintf("this@%s", r.class.Name())
}

// Extension is the implicit this inside the body of an extension callable.
type Extension struct {
	callable descriptors.Callable
}

func NewExtension(callable descriptors.Callable) *Extension {
	return &Extension{
		callable: callable,
	}
}

func (*Extension) receiver() {}

func (r *Extension) Exists() bool {
	return true
}

func (r *Extension) Callable() descriptors.Callable {
	return r.callable
}

func (r *Extension) Type() types.Type {
	return r.callable.ReceiverParameter()
}

func (r *Extension) String() string {
	return fmt.Sprintf("this@%s", r.callable.Name())
}

// Super returns the super reference r wraps, if any.
func Super(r Receiver) (*parser.SuperExpr, bool) {
	switch r := r.(type) {
	case *Expression:
		super, ok := r.expr.(*parser.SuperExpr)
		return super, ok
	default:
		return nil, false
	}
}
