package descriptors

import (
	"github.com/rhino1998/calls/pkg/compiler/kinds"
	"github.com/rhino1998/calls/pkg/compiler/types"
)

type Class struct {
	name       string
	kind       kinds.Kind
	container  Declaration
	visibility Visibility

	supertypes   []types.Type
	members      []Declaration
	constructors []*Constructor

	typ *types.Class
}

func NewClass(name string, kind kinds.Kind, container Declaration, visibility Visibility) *Class {
	c := &Class{
		name:       name,
		kind:       kind,
		container:  container,
		visibility: visibility,
	}
	c.typ = types.NewClass(c)

	return c
}

func (c *Class) Name() string {
	return c.name
}

func (c *Class) Kind() kinds.Kind {
	return c.kind
}

func (c *Class) Container() Declaration {
	return c.container
}

func (c *Class) Visibility() Visibility {
	return c.visibility
}

// DefaultType is the type of this inside the class body.
func (c *Class) DefaultType() *types.Class {
	return c.typ
}

func (c *Class) Supertypes() []types.Type {
	return c.supertypes
}

func (c *Class) SetSupertypes(supertypes ...types.Type) {
	c.supertypes = supertypes
}

func (c *Class) Add(decl Declaration) {
	c.members = append(c.members, decl)
}

func (c *Class) Members(name string) []Declaration {
	return byName(c.members, name)
}

func (c *Class) Constructors() []*Constructor {
	return c.constructors
}

func (c *Class) AddConstructor(visibility Visibility) *Constructor {
	ctor := &Constructor{
		class:      c,
		visibility: visibility,
	}
	c.constructors = append(c.constructors, ctor)

	return ctor
}
