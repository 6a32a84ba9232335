package descriptors

import (
	"github.com/rhino1998/calls/pkg/compiler/kinds"
	"github.com/rhino1998/calls/pkg/compiler/types"
)

type Namespace struct {
	name    string
	parent  *Namespace
	members []Declaration

	typ *types.Namespace
}

func NewNamespace(name string, parent *Namespace) *Namespace {
	ns := &Namespace{
		name:   name,
		parent: parent,
	}
	ns.typ = types.NewNamespace(ns)

	return ns
}

func (n *Namespace) Name() string {
	return n.name
}

func (n *Namespace) Kind() kinds.Kind {
	return kinds.Namespace
}

func (n *Namespace) Container() Declaration {
	if n.parent == nil {
		return nil
	}

	return n.parent
}

func (n *Namespace) Type() *types.Namespace {
	return n.typ
}

func (n *Namespace) Add(decl Declaration) {
	n.members = append(n.members, decl)
}

func (n *Namespace) Members(name string) []Declaration {
	return byName(n.members, name)
}

func byName(decls []Declaration, name string) []Declaration {
	var matches []Declaration
	for _, decl := range decls {
		if decl.Name() == name {
			matches = append(matches, decl)
		}
	}

	return matches
}
