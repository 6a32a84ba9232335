package descriptors

// Locality is the default lexical locality check.
type Locality struct{}

func (Locality) IsLocal(container, d Declaration) bool {
	return IsLocal(container, d)
}

// IsLocal reports whether d is declared inside a function, property or
// constructor body that encloses container. Members of classes and objects
// are never local.
func IsLocal(container, d Declaration) bool {
	parent := d.Container()
	if parent == nil || !parent.Kind().IsCallable() {
		return false
	}

	return IsAncestor(parent, container, false)
}
