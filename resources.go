package entitycs

import (
	"fmt"
	"reflect"
)

// Resources holds one value per type for state shared between systems, such
// as a clock, a random source or a spatial index. Resources is not safe for
// concurrent mutation.
type Resources struct {
	items map[reflect.Type]any
}

// AddResource stores res under its type T. Pointer types are the usual choice
// so systems can mutate the shared value in place.
//
// Parameters:
//   - r: The Resources store.
//   - res: The value to store. Its static type T is the lookup key.
//
// It panics if a T is already stored.
func AddResource[T any](r *Resources, res T) {
	t := reflect.TypeFor[T]()
	if r.items == nil {
		r.items = make(map[reflect.Type]any)
	}
	if _, ok := r.items[t]; ok {
		panic(fmt.Sprintf("ecs: resource %s already exists", t))
	}
	r.items[t] = res
}

// GetResource looks up the resource of type T.
//
// Returns:
//   - The stored T, or the zero value of T if there is none.
//   - Whether a T was found.
func GetResource[T any](r *Resources) (T, bool) {
	v, ok := r.items[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// MustGetResource returns the stored T. It panics if there is none.
func MustGetResource[T any](r *Resources) T {
	v, ok := GetResource[T](r)
	if !ok {
		panic(fmt.Sprintf("ecs: resource %s not found", reflect.TypeFor[T]()))
	}
	return v
}

// RemoveResource deletes the stored T, if any.
func RemoveResource[T any](r *Resources) {
	delete(r.items, reflect.TypeFor[T]())
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.items)
}

// Clear removes every resource.
func (r *Resources) Clear() {
	clear(r.items)
}
