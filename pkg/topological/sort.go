package topological

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

var ErrCycleDetected = fmt.Errorf("cycle detected")

// CycleError lists the keys that could not be ordered.
type CycleError[K constraints.Ordered] struct {
	Keys []K
}

func (e CycleError[K]) Error() string {
	keys := make([]string, 0, len(e.Keys))
	for _, key := range e.Keys {
		keys = append(keys, fmt.Sprint(key))
	}

	return fmt.Sprintf("%v between %s", ErrCycleDetected, strings.Join(keys, ", "))
}

func (e CycleError[K]) Unwrap() error {
	return ErrCycleDetected
}

func sorted[T constraints.Ordered](set map[T]struct{}) []T {
	s := slices.Collect(maps.Keys(set))
	slices.Sort(s)
	return s
}

func Sort[T constraints.Ordered](values []T, depFunc func(T) []T) ([]T, error) {
	return SortFunc(values, func(val T) T { return val }, depFunc)
}

// SortFunc orders values so that each value comes after the values whose keys
// depFunc returns for it. Keys that name no value are ignored. Ties are broken
// by key order, so the result is deterministic.
func SortFunc[T any, K constraints.Ordered](values []T, keyFunc func(T) K, depFunc func(T) []K) ([]T, error) {
	byKey := make(map[K]T, len(values))
	for _, val := range values {
		byKey[keyFunc(val)] = val
	}

	pending := make(map[K]map[K]struct{})
	dependents := make(map[K]map[K]struct{})
	ready := make(map[K]struct{})

	for key, val := range byKey {
		deps := make(map[K]struct{})
		for _, dep := range depFunc(val) {
			if _, ok := byKey[dep]; !ok {
				continue
			}

			deps[dep] = struct{}{}

			if dependents[dep] == nil {
				dependents[dep] = make(map[K]struct{})
			}
			dependents[dep][key] = struct{}{}
		}

		if len(deps) == 0 {
			ready[key] = struct{}{}
		} else {
			pending[key] = deps
		}
	}

	queue := sorted(ready)
	list := make([]T, 0, len(byKey))

	for len(queue) > 0 {
		var key K
		key, queue = queue[0], queue[1:]
		list = append(list, byKey[key])

		for _, dependent := range sorted(dependents[key]) {
			delete(pending[dependent], key)
			if len(pending[dependent]) == 0 {
				delete(pending, dependent)
				queue = append(queue, dependent)
			}
		}
	}

	if len(pending) > 0 {
		keys := make(map[K]struct{}, len(pending))
		for key := range pending {
			keys[key] = struct{}{}
		}

		return nil, CycleError[K]{Keys: sorted(keys)}
	}

	return list, nil
}
