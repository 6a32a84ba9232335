package descriptors

import (
	"github.com/rhino1998/calls/pkg/compiler/kinds"
	"github.com/rhino1998/calls/pkg/compiler/types"
)

type callable struct {
	name       string
	container  Declaration
	receiver   types.Type
	visibility Visibility
}

func (c *callable) Name() string {
	return c.name
}

func (c *callable) Container() Declaration {
	return c.container
}

func (c *callable) ExpectedThis() types.Type {
	return expectedThisOf(c.container)
}

func (c *callable) ReceiverParameter() types.Type {
	return c.receiver
}

func (c *callable) Visibility() Visibility {
	return c.visibility
}

type Function struct {
	callable
}

// NewFunction declares a function in container. A non-nil receiver makes it
// an extension of that type.
func NewFunction(name string, container Declaration, receiver types.Type, visibility Visibility) *Function {
	return &Function{
		callable: callable{
			name:       name,
			container:  container,
			receiver:   receiver,
			visibility: visibility,
		},
	}
}

func (f *Function) Kind() kinds.Kind {
	return kinds.Function
}

type Property struct {
	callable
}

func NewProperty(name string, container Declaration, receiver types.Type, visibility Visibility) *Property {
	return &Property{
		callable: callable{
			name:       name,
			container:  container,
			receiver:   receiver,
			visibility: visibility,
		},
	}
}

func (p *Property) Kind() kinds.Kind {
	return kinds.Property
}

const ConstructorName = "<init>"

type Constructor struct {
	class      *Class
	visibility Visibility
}

func (c *Constructor) Name() string {
	return ConstructorName
}

func (c *Constructor) Kind() kinds.Kind {
	return kinds.Constructor
}

func (c *Constructor) Class() *Class {
	return c.class
}

func (c *Constructor) Container() Declaration {
	if c.class == nil {
		return nil
	}

	return c.class
}

// ExpectedThis of a constructor is the instance enclosing the class it
// constructs, so nested classes need their outer this.
func (c *Constructor) ExpectedThis() types.Type {
	if c.class == nil {
		return nil
	}

	return expectedThisOf(c.class.container)
}

func (c *Constructor) ReceiverParameter() types.Type {
	return nil
}

func (c *Constructor) Visibility() Visibility {
	return c.visibility
}

// ErrorCallable stands in for a declaration that failed to resolve upstream.
type ErrorCallable struct {
	name string
}

func NewError(name string) *ErrorCallable {
	return &ErrorCallable{
		name: name,
	}
}

func (e *ErrorCallable) Name() string                  { return e.name }
func (e *ErrorCallable) Kind() kinds.Kind              { return kinds.Error }
func (e *ErrorCallable) Container() Declaration        { return nil }
func (e *ErrorCallable) ExpectedThis() types.Type      { return nil }
func (e *ErrorCallable) ReceiverParameter() types.Type { return nil }
func (e *ErrorCallable) Visibility() Visibility        { return Public }
