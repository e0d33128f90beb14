package component

import (
	"errors"
	"reflect"
	"sync/atomic"
)

// Errors returned by the ecs package when adding components.
var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component store inside a World. Zero is unassigned.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind names one store of T values. Every call to NewComponentKind
// yields a fresh store, even for a type that already has one, so two kinds
// of the same Go type never share data.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{
		id:   ComponentID(lastComponentID.Add(1)),
		name: reflect.TypeFor[T]().String(),
	}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Name is the Go type name of T, for logs.
func (k ComponentKind[T]) Name() string { return k.name }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

func (k ComponentKind[T]) String() string {
	if !k.Valid() {
		return "<unassigned>"
	}
	return k.name
}

// ComponentHandle is the package-level declaration form, one per component
// type (var StaminaComponent = NewComponent[Stamina]()).
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
