package entitycs

import (
	"fmt"
	"reflect"
	"unsafe"
)

// ComponentID is the index a Registry assigns to a declared component type.
type ComponentID uint8

// MaxComponentTypes is the number of component types a Registry accepts. Bit 0
// of a Mask belongs to ScriptBit, which leaves 63 bits for components.
const MaxComponentTypes = 63

// Registry assigns every declared component type a stable index in
// declaration order. A Registry is sealed as soon as a Manager is built from
// it; the index of a type never changes afterwards.
type Registry struct {
	typeToID map[reflect.Type]ComponentID
	idToType []reflect.Type
	sealed   bool
}

// NewRegistry creates an empty component registry.
func NewRegistry() *Registry {
	return &Registry{
		typeToID: make(map[reflect.Type]ComponentID, 16),
		idToType: make([]reflect.Type, 0, 16),
	}
}

// Len returns the number of declared component types.
func (r *Registry) Len() int {
	return len(r.idToType)
}

// TypeOf returns the type declared at id.
func (r *Registry) TypeOf(id ComponentID) reflect.Type {
	return r.idToType[id]
}

// Component is a resolved handle for component type T. It carries the index
// so accessors skip the type lookup entirely, and the registry it was resolved
// against so it cannot be used on entities of another manager's registry.
type Component[T any] struct {
	reg *Registry
	id  ComponentID
}

// Register declares T and returns its handle. Registering the same type again
// returns the existing handle.
//
// It panics if the registry is already sealed or if MaxComponentTypes would be
// exceeded.
func Register[T any](r *Registry) Component[T] {
	t := reflect.TypeFor[T]()
	if id, ok := r.typeToID[t]; ok {
		return Component[T]{reg: r, id: id}
	}
	if r.sealed {
		panic(fmt.Sprintf("ecs: cannot register component %s: registry is sealed", t))
	}
	if len(r.idToType) >= MaxComponentTypes {
		panic("ecs: too many component types")
	}
	id := ComponentID(len(r.idToType))
	r.typeToID[t] = id
	r.idToType = append(r.idToType, t)
	return Component[T]{reg: r, id: id}
}

// IDOf returns the index of T. It panics if T was never registered.
func IDOf[T any](r *Registry) ComponentID {
	return r.lookup(reflect.TypeFor[T]())
}

// Of returns the handle for an already registered T.
func Of[T any](r *Registry) Component[T] {
	return Component[T]{reg: r, id: IDOf[T](r)}
}

func (r *Registry) lookup(t reflect.Type) ComponentID {
	id, ok := r.typeToID[t]
	if !ok {
		panic(fmt.Sprintf("ecs: component type %s not registered", t))
	}
	return id
}

func (r *Registry) seal() {
	r.sealed = true
}

// ID returns the component index.
func (c Component[T]) ID() ComponentID {
	return c.id
}

// Mask returns the single-component query mask for T.
func (c Component[T]) Mask() Mask {
	return bitFor(c.id)
}

// Add marks T as present on e and returns its storage cell. The cell is zero
// valued the first time; adding T again returns the same cell.
//
// It panics if e has already been finalized, or if e belongs to a manager
// built from a different registry.
func (c Component[T]) Add(e *Entity) *T {
	c.check(e)
	if e.finalized {
		panic("ecs: cannot add component to finalized entity")
	}
	p := e.bank[c.id]
	if p == nil {
		p = unsafe.Pointer(new(T))
		e.bank[c.id] = p
	}
	e.mask |= bitFor(c.id)
	return (*T)(p)
}

// Get returns the T cell of e. It panics if e does not have T.
func (c Component[T]) Get(e *Entity) *T {
	c.check(e)
	if e.mask&bitFor(c.id) == 0 {
		panic(fmt.Sprintf("ecs: entity %d has no component %s", e.id, reflect.TypeFor[T]()))
	}
	return (*T)(e.bank[c.id])
}

// Has reports whether e has T.
func (c Component[T]) Has(e *Entity) bool {
	c.check(e)
	return e.mask&bitFor(c.id) != 0
}

// check panics unless e's manager was built from the registry c came from.
func (c Component[T]) check(e *Entity) {
	if c.reg != e.manager.registry {
		panic(fmt.Sprintf("ecs: component %s belongs to another registry", reflect.TypeFor[T]()))
	}
}

// AddComponent adds a component of type T to e and returns a pointer to it.
// See Component.Add.
func AddComponent[T any](e *Entity) *T {
	return Of[T](e.manager.registry).Add(e)
}

// GetComponent returns a pointer to the T component of e. It panics if e does
// not have T.
func GetComponent[T any](e *Entity) *T {
	return Of[T](e.manager.registry).Get(e)
}

// HasComponent reports whether e has a component of type T.
func HasComponent[T any](e *Entity) bool {
	return Of[T](e.manager.registry).Has(e)
}

// Require1 returns the query mask for entities having A.
func Require1[A any](r *Registry) Mask {
	return bitFor(IDOf[A](r))
}

// Require2 returns the query mask for entities having A and B.
func Require2[A, B any](r *Registry) Mask {
	return bitFor(IDOf[A](r)) | bitFor(IDOf[B](r))
}

// Require3 returns the query mask for entities having A, B and C.
func Require3[A, B, C any](r *Registry) Mask {
	return bitFor(IDOf[A](r)) | bitFor(IDOf[B](r)) | bitFor(IDOf[C](r))
}

// Require4 returns the query mask for entities having A, B, C and D.
func Require4[A, B, C, D any](r *Registry) Mask {
	return bitFor(IDOf[A](r)) | bitFor(IDOf[B](r)) | bitFor(IDOf[C](r)) | bitFor(IDOf[D](r))
}
