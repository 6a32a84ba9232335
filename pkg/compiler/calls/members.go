package calls

import (
	"github.com/rhino1998/calls/pkg/compiler/descriptors"
	"github.com/rhino1998/calls/pkg/compiler/kinds"
	"github.com/rhino1998/calls/pkg/compiler/scopes"
	"github.com/rhino1998/calls/pkg/compiler/types"
)

// MemberPrioritizer finds the declarations of one callable kind that a call
// by name can refer to.
type MemberPrioritizer interface {
	// MembersByName returns the non-extension members of t.
	MembersByName(t types.Type, name string) []descriptors.Callable

	ExtensionsByName(scope scopes.Scope, name string) []descriptors.Callable

	NonExtensionsByName(scope scopes.Scope, name string) []descriptors.Callable
}

var (
	Functions    MemberPrioritizer = callablePrioritizer{kind: kinds.Function}
	Properties   MemberPrioritizer = callablePrioritizer{kind: kinds.Property}
	Constructors MemberPrioritizer = constructorPrioritizer{}
)

type callablePrioritizer struct {
	kind kinds.Kind
}

func (p callablePrioritizer) MembersByName(t types.Type, name string) []descriptors.Callable {
	return p.filter(scopes.MemberScopeOf(t).Lookup(name), false)
}

func (p callablePrioritizer) ExtensionsByName(scope scopes.Scope, name string) []descriptors.Callable {
	return p.filter(scope.Lookup(name), true)
}

func (p callablePrioritizer) NonExtensionsByName(scope scopes.Scope, name string) []descriptors.Callable {
	return p.filter(scope.Lookup(name), false)
}

// filter keeps callables of the prioritizer's kind. Error placeholders are
// kept as non-extensions so broken declarations still resolve.
func (p callablePrioritizer) filter(decls []descriptors.Declaration, extensions bool) []descriptors.Callable {
	var result []descriptors.Callable
	for _, decl := range decls {
		callable, ok := decl.(descriptors.Callable)
		if !ok {
			continue
		}

		switch callable.Kind() {
		case p.kind:
			if descriptors.IsExtension(callable) == extensions {
				result = append(result, callable)
			}
		case kinds.Error:
			if !extensions {
				result = append(result, callable)
			}
		}
	}

	return result
}

// constructorPrioritizer resolves a call to a class name to the class's
// constructors. Constructors have no extension form.
type constructorPrioritizer struct{}

func (constructorPrioritizer) MembersByName(t types.Type, name string) []descriptors.Callable {
	return constructorsOf(scopes.MemberScopeOf(t).Lookup(name))
}

func (constructorPrioritizer) ExtensionsByName(scope scopes.Scope, name string) []descriptors.Callable {
	return nil
}

func (constructorPrioritizer) NonExtensionsByName(scope scopes.Scope, name string) []descriptors.Callable {
	return constructorsOf(scope.Lookup(name))
}

func constructorsOf(decls []descriptors.Declaration) []descriptors.Callable {
	var result []descriptors.Callable
	for _, decl := range decls {
		switch decl := decl.(type) {
		case *descriptors.Class:
			for _, ctor := range decl.Constructors() {
				result = append(result, ctor)
			}
		case *descriptors.ErrorCallable:
			result = append(result, decl)
		}
	}

	return result
}
