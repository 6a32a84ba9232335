package types

// Checker is the default subtyping oracle.
type Checker struct{}

func (Checker) IsSubtypeOf(sub, super Type) bool {
	return IsSubtypeOf(sub, super)
}

// IsSubtypeOf reports whether a value of type sub can be used where super is
// expected. Error types are compatible with everything.
func IsSubtypeOf(sub, super Type) bool {
	if IsError(sub) || IsError(super) {
		return true
	}

	if sub.IsNullable() && !super.IsNullable() {
		return false
	}

	switch super := super.(type) {
	case *Namespace:
		sub, ok := sub.(*Namespace)
		return ok && sub.owner == super.owner
	case *Class:
		sub, ok := sub.(*Class)
		if !ok {
			return false
		}

		return derives(sub.classifier, super.classifier, make(map[Classifier]struct{}))
	default:
		return false
	}
}

func derives(c, target Classifier, seen map[Classifier]struct{}) bool {
	if c == target {
		return true
	}

	if _, ok := seen[c]; ok {
		return false
	}
	seen[c] = struct{}{}

	for _, super := range c.Supertypes() {
		super, ok := super.(*Class)
		if ok && derives(super.classifier, target, seen) {
			return true
		}
	}

	return false
}
