package descriptors

import (
	"slices"
	"strings"

	"github.com/rhino1998/calls/pkg/compiler/kinds"
	"github.com/rhino1998/calls/pkg/compiler/types"
)

type Declaration interface {
	Name() string
	Kind() kinds.Kind
	Container() Declaration
}

// Callable is a function, property or constructor declaration that a call
// expression can resolve to.
type Callable interface {
	Declaration

	// ExpectedThis is the type of the instance the callable is a member of,
	// or nil when it needs none.
	ExpectedThis() types.Type

	// ReceiverParameter is the receiver type of an extension, or nil.
	ReceiverParameter() types.Type

	Visibility() Visibility
}

func IsExtension(d Callable) bool {
	return d.ReceiverParameter() != nil
}

func IsError(d Declaration) bool {
	return d != nil && d.Kind() == kinds.Error
}

func QualifiedName(d Declaration) string {
	var parts []string
	for cur := d; cur != nil; cur = cur.Container() {
		if cur.Name() != "" {
			parts = append(parts, cur.Name())
		}
	}

	slices.Reverse(parts)

	return strings.Join(parts, ".")
}

// IsAncestor reports whether d is declared inside ancestor. Unless strict is
// set, a declaration counts as its own ancestor.
func IsAncestor(ancestor, d Declaration, strict bool) bool {
	if ancestor == nil || d == nil {
		return false
	}

	if strict {
		d = d.Container()
	}

	for cur := d; cur != nil; cur = cur.Container() {
		if cur == ancestor {
			return true
		}
	}

	return false
}

func expectedThisOf(container Declaration) types.Type {
	switch container := container.(type) {
	case *Class:
		return container.DefaultType()
	default:
		return nil
	}
}
