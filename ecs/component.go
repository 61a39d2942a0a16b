package ecs

import (
	"reflect"
	"sync"
)

// MaxComponentTypes is the number of distinct component types a process may
// use. It equals the bit capacity of a Signature.
const MaxComponentTypes = 64

// ComponentID is the small integer identity assigned to each component type
// the first time it is seen. It indexes both the registry's pool vector and
// the signature bits.
type ComponentID uint8

// typeTable hands out stable ComponentIDs in first-use order. The package
// holds a single process-wide instance so the same component type maps to
// the same id in every registry for the life of the process.
type typeTable struct {
	mu    sync.Mutex
	ids   map[reflect.Type]ComponentID
	types []reflect.Type
}

func newTypeTable() *typeTable {
	return &typeTable{ids: make(map[reflect.Type]ComponentID)}
}

// id returns the assigned ComponentID for t, assigning the next free id on
// first use. Ids are never reclaimed.
func (tt *typeTable) id(t reflect.Type) (ComponentID, error) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if id, ok := tt.ids[t]; ok {
		return id, nil
	}
	if len(tt.ids) >= MaxComponentTypes {
		return 0, ErrCapacityExceeded
	}
	id := ComponentID(len(tt.ids))
	tt.ids[t] = id
	tt.types = append(tt.types, t)
	return id, nil
}

// typeOf returns the component type assigned to id, or nil if id has not
// been assigned yet.
func (tt *typeTable) typeOf(id ComponentID) reflect.Type {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	if int(id) >= len(tt.types) {
		return nil
	}
	return tt.types[id]
}

func (tt *typeTable) registered() []reflect.Type {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	out := make([]reflect.Type, len(tt.types))
	copy(out, tt.types)
	return out
}

var componentIDs = newTypeTable()

// TypeID returns the process-wide ComponentID for T, assigning one on first
// use. It returns ErrCapacityExceeded once MaxComponentTypes distinct types
// have been assigned; the id space is never reset.
func TypeID[T any]() (ComponentID, error) {
	return componentIDs.id(reflect.TypeFor[T]())
}

// ComponentTypeOf returns the component type assigned to id, or nil if the
// id is unassigned. Intended for tooling such as inspectors and reports.
func ComponentTypeOf(id ComponentID) reflect.Type {
	return componentIDs.typeOf(id)
}

// RegisteredTypes returns all component types assigned so far, indexed by
// their ComponentID.
func RegisteredTypes() []reflect.Type {
	return componentIDs.registered()
}
