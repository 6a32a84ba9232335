package descriptors

import (
	"fmt"

	"github.com/rhino1998/calls/pkg/compiler/types"
)

type Visibility int

const (
	Public Visibility = iota
	Protected
	Private
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

func ParseVisibility(s string) (Visibility, error) {
	switch s {
	case "", "public":
		return Public, nil
	case "protected":
		return Protected, nil
	case "private":
		return Private, nil
	default:
		return Public, fmt.Errorf("unknown visibility %q", s)
	}
}

// Visibilities is the default visibility check.
type Visibilities struct{}

func (Visibilities) IsVisible(d Callable, from Declaration) bool {
	return IsVisible(d, from)
}

func IsVisible(d Callable, from Declaration) bool {
	owner := d.Container()
	if owner == nil {
		return true
	}

	switch d.Visibility() {
	case Public:
		return true
	case Protected:
		class, ok := owner.(*Class)
		if !ok {
			return IsAncestor(owner, from, false)
		}

		for cur := from; cur != nil; cur = cur.Container() {
			sub, ok := cur.(*Class)
			if ok && types.IsSubtypeOf(sub.DefaultType(), class.DefaultType()) {
				return true
			}
		}

		return false
	default:
		return IsAncestor(owner, from, false)
	}
}
