package types

import "fmt"

type Type interface {
	String() string
	IsNullable() bool
}

// Classifier is the declaration a class type is an instance of.
type Classifier interface {
	Name() string
	Supertypes() []Type
}

type Named interface {
	Name() string
}

var Error Type = errorType{}

type errorType struct{}

func (errorType) String() string   { return "<error>" }
func (errorType) IsNullable() bool { return false }

func IsError(t Type) bool {
	_, ok := t.(errorType)
	return ok
}

type Class struct {
	classifier Classifier
	nullable   bool
}

func NewClass(classifier Classifier) *Class {
	return &Class{
		classifier: classifier,
	}
}

func (t *Class) Classifier() Classifier {
	return t.classifier
}

func (t *Class) IsNullable() bool {
	return t.nullable
}

func (t *Class) String() string {
	if t.nullable {
		return t.classifier.Name() + "?"
	}

	return t.classifier.Name()
}

// Namespace is the type of an expression that names a namespace rather than
// a value. Calls through it are qualified lookups.
type Namespace struct {
	owner Named
}

func NewNamespace(owner Named) *Namespace {
	return &Namespace{
		owner: owner,
	}
}

func (t *Namespace) Owner() Named {
	return t.owner
}

func (t *Namespace) IsNullable() bool {
	return false
}

func (t *Namespace) String() string {
	return fmt.Sprintf("namespace %s", t.owner.Name())
}

func MakeNullable(t Type) Type {
	switch t := t.(type) {
	case *Class:
		if t.nullable {
			return t
		}

		return &Class{
			classifier: t.classifier,
			nullable:   true,
		}
	default:
		return t
	}
}

func MakeNotNull(t Type) Type {
	switch t := t.(type) {
	case *Class:
		if !t.nullable {
			return t
		}

		return &Class{
			classifier: t.classifier,
		}
	default:
		return t
	}
}

func Equal(t1, t2 Type) bool {
	switch t1 := t1.(type) {
	case *Class:
		t2, ok := t2.(*Class)
		return ok && t1.classifier == t2.classifier && t1.nullable == t2.nullable
	case *Namespace:
		t2, ok := t2.(*Namespace)
		return ok && t1.owner == t2.owner
	case errorType:
		return IsError(t2)
	default:
		return false
	}
}
