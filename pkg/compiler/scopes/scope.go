package scopes

import (
	"fmt"

	"github.com/rhino1998/calls/pkg/compiler/descriptors"
	"github.com/rhino1998/calls/pkg/compiler/receivers"
)

type Scope interface {
	// ContainingDeclaration is the innermost declaration the scope belongs to.
	ContainingDeclaration() descriptors.Declaration

	// ImplicitReceivers returns the implicit receivers available in the
	// scope, innermost first.
	ImplicitReceivers() []receivers.Receiver

	// Lookup returns every declaration called name visible from the scope,
	// innermost first.
	Lookup(name string) []descriptors.Declaration
}

// Lexical is one level of a lexical scope chain: a namespace file, class
// body, function body or block.
type Lexical struct {
	parent Scope
	name   string
	scope  map[string][]descriptors.Declaration

	imports   []Scope
	container descriptors.Declaration
	receiver  receivers.Receiver
}

func NewLexical(parent Scope, name string, container descriptors.Declaration) *Lexical {
	return &Lexical{
		parent:    parent,
		name:      name,
		scope:     make(map[string][]descriptors.Declaration),
		container: container,
		receiver:  receivers.None,
	}
}

func (s *Lexical) Name() string {
	return s.name
}

func (s *Lexical) Parent() Scope {
	return s.parent
}

// SetReceiver makes r the implicit receiver introduced by this level.
func (s *Lexical) SetReceiver(r receivers.Receiver) {
	s.receiver = r
}

// Import makes the declarations of other visible at this level, after the
// level's own declarations.
func (s *Lexical) Import(other Scope) {
	s.imports = append(s.imports, other)
}

func (s *Lexical) Put(decl descriptors.Declaration) error {
	name := decl.Name()
	for _, existing := range s.scope[name] {
		if existing == decl {
			return fmt.Errorf("%s is already declared in scope %q", name, s.name)
		}
	}

	s.scope[name] = append(s.scope[name], decl)

	return nil
}

func (s *Lexical) ContainingDeclaration() descriptors.Declaration {
	if s.container != nil {
		return s.container
	} else if s.parent == nil {
		return nil
	}

	return s.parent.ContainingDeclaration()
}

func (s *Lexical) ImplicitReceivers() []receivers.Receiver {
	var recvs []receivers.Receiver
	if s.receiver.Exists() {
		recvs = append(recvs, s.receiver)
	}

	if s.parent != nil {
		recvs = append(recvs, s.parent.ImplicitReceivers()...)
	}

	return recvs
}

func (s *Lexical) Lookup(name string) []descriptors.Declaration {
	decls := append([]descriptors.Declaration(nil), s.scope[name]...)

	for _, imported := range s.imports {
		decls = append(decls, imported.Lookup(name)...)
	}

	if s.parent != nil {
		decls = append(decls, s.parent.Lookup(name)...)
	}

	return decls
}
