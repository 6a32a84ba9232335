package kinds

type Kind int

const (
	Unknown Kind = iota
	Namespace
	Class
	Trait
	Object
	Function
	Property
	Constructor
	Error
)

func (k Kind) IsClassifier() bool {
	return k == Class || k == Trait || k == Object
}

func (k Kind) IsCallable() bool {
	return k == Function || k == Property || k == Constructor || k == Error
}

// IsSingleton reports whether declarations of this kind have exactly one
// instance reachable without an explicit receiver.
func (k Kind) IsSingleton() bool {
	return k == Object
}

func (k Kind) String() string {
	switch k {
	case Namespace:
		return "namespace"
	case Class:
		return "class"
	case Trait:
		return "trait"
	case Object:
		return "object"
	case Function:
		return "fun"
	case Property:
		return "property"
	case Constructor:
		return "constructor"
	case Error:
		return "<error>"
	default:
		return "<unknown>"
	}
}
