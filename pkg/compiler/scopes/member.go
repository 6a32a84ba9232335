package scopes

import (
	"github.com/rhino1998/calls/pkg/compiler/descriptors"
	"github.com/rhino1998/calls/pkg/compiler/receivers"
	"github.com/rhino1998/calls/pkg/compiler/types"
)

// MemberScopeOf returns the scope of declarations reachable through a value
// of type t: class members including inherited ones, or namespace members.
func MemberScopeOf(t types.Type) Scope {
	switch t := t.(type) {
	case *types.Class:
		class, ok := t.Classifier().(*descriptors.Class)
		if ok {
			return classScope{class: class}
		}
	case *types.Namespace:
		ns, ok := t.Owner().(*descriptors.Namespace)
		if ok {
			return namespaceScope{ns: ns}
		}
	}

	return Empty
}

var Empty Scope = emptyScope{}

type emptyScope struct{}

func (emptyScope) ContainingDeclaration() descriptors.Declaration { return nil }
func (emptyScope) ImplicitReceivers() []receivers.Receiver        { return nil }
func (emptyScope) Lookup(string) []descriptors.Declaration         { return nil }

type namespaceScope struct {
	ns *descriptors.Namespace
}

func (s namespaceScope) ContainingDeclaration() descriptors.Declaration {
	return s.ns
}

func (s namespaceScope) ImplicitReceivers() []receivers.Receiver {
	return nil
}

func (s namespaceScope) Lookup(name string) []descriptors.Declaration {
	return s.ns.Members(name)
}

type classScope struct {
	class *descriptors.Class
}

func (s classScope) ContainingDeclaration() descriptors.Declaration {
	return s.class
}

func (s classScope) ImplicitReceivers() []receivers.Receiver {
	return nil
}

// Lookup walks the class and then its supertypes depth first, visiting each
// class once.
func (s classScope) Lookup(name string) []descriptors.Declaration {
	var decls []descriptors.Declaration
	seen := make(map[*descriptors.Class]struct{})

	var walk func(class *descriptors.Class)
	walk = func(class *descriptors.Class) {
		if _, ok := seen[class]; ok {
			return
		}
		seen[class] = struct{}{}

		decls = append(decls, class.Members(name)...)

		for _, super := range class.Supertypes() {
			super, ok := super.(*types.Class)
			if !ok {
				continue
			}

			superClass, ok := super.Classifier().(*descriptors.Class)
			if ok {
				walk(superClass)
			}
		}
	}

	walk(s.class)

	return decls
}
