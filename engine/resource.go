package engine

import (
	"reflect"
	"sort"
)

// Resources holds one value per type, shared by every system of a
// scheduler. Pointers handed out stay valid for the life of the Resources.
type Resources struct {
	entries map[reflect.Type]any
}

func NewResources() *Resources {
	return &Resources{entries: make(map[reflect.Type]any)}
}

// AddResource stores value and returns a pointer to the stored copy. Adding
// a type that already exists overwrites it in place.
func AddResource[T any](r *Resources, value T) *T {
	typ := reflect.TypeFor[T]()
	if existing, ok := r.entries[typ]; ok {
		ptr := existing.(*T)
		*ptr = value
		return ptr
	}
	ptr := new(T)
	*ptr = value
	r.entries[typ] = ptr
	return ptr
}

// GetResource returns the stored value of type T, or nil.
func GetResource[T any](r *Resources) *T {
	existing, ok := r.entries[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return existing.(*T)
}

// ReadResource sets *out to the stored value of the pointed-to type.
// out must be a **T. It reports whether the resource exists.
func (r *Resources) ReadResource(out any) bool {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Pointer {
		return false
	}
	existing, ok := r.entries[v.Elem().Type().Elem()]
	if !ok {
		return false
	}
	v.Elem().Set(reflect.ValueOf(existing))
	return true
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.entries)
}

// TypeNames returns the sorted type names of every stored resource.
func (r *Resources) TypeNames() []string {
	names := make([]string, 0, len(r.entries))
	for typ := range r.entries {
		names = append(names, typ.String())
	}
	sort.Strings(names)
	return names
}

// Resource gives a system typed access to one shared value. Fields of this
// type on a registered system are initialized by the Scheduler.
type Resource[T any] struct {
	resources *Resources
	ptr       *T
}

// NewResource returns an accessor for T, storing initializer (or the zero
// value) first when T is not present yet.
func NewResource[T any](r *Resources, initializer ...T) *Resource[T] {
	ptr := GetResource[T](r)
	if ptr == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		ptr = AddResource(r, value)
	}
	return &Resource[T]{resources: r, ptr: ptr}
}

// Init binds the accessor to a Resources. Called by Scheduler.Register.
func (s *Resource[T]) Init(r *Resources) {
	s.resources = r
	s.ptr = nil
}

// Get returns the shared value, or nil if it has not been added.
func (s *Resource[T]) Get() *T {
	if s.ptr == nil && s.resources != nil {
		s.ptr = GetResource[T](s.resources)
	}
	return s.ptr
}

// Exists reports whether the shared value has been added.
func (s *Resource[T]) Exists() bool {
	return s.Get() != nil
}
