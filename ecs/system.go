package ecs

import "github.com/kamstrup/intmap"

// System is the embeddable base for behavior units. It holds the required
// component signature, declared once during construction via
// RequireComponent, and the list of entities currently matching it. The
// registry maintains the list incrementally from Update.
//
// User systems embed System and are registered with AddSystem:
//
//	type MovementSystem struct {
//		ecs.System
//	}
type System struct {
	signature Signature
	entities  []Entity
	// byID maps entity id to its position in entities for O(1) removal.
	byID *intmap.Map[EntityID, int]
}

// EntitySystem is satisfied by any struct embedding System. It is the
// constraint used by the registry's system operations.
type EntitySystem interface {
	base() *System
}

func (s *System) base() *System { return s }

// RequireComponent sets the bit for component type T in the system's
// required signature. Call during system construction, before the system is
// attached to a registry.
func RequireComponent[T any](s EntitySystem) error {
	id, err := TypeID[T]()
	if err != nil {
		return err
	}
	s.base().signature.Set(id)
	return nil
}

// Signature returns the system's required component signature.
func (s *System) Signature() Signature {
	return s.signature
}

// AddEntityToSystem inserts e into the system's tracked entity list. Adding
// an entity that is already tracked is a no-op.
func (s *System) AddEntityToSystem(e Entity) {
	if s.byID == nil {
		s.byID = intmap.New[EntityID, int](64)
	}
	if _, ok := s.byID.Get(e.id); ok {
		return
	}
	s.byID.Put(e.id, len(s.entities))
	s.entities = append(s.entities, e)
}

// RemoveEntityFromSystem removes e from the tracked entity list. It is a
// no-op if e is not present.
func (s *System) RemoveEntityFromSystem(e Entity) {
	if s.byID == nil {
		return
	}
	pos, ok := s.byID.Get(e.id)
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if pos != last {
		moved := s.entities[last]
		s.entities[pos] = moved
		s.byID.Put(moved.id, pos)
	}
	s.entities = s.entities[:last]
	s.byID.Del(e.id)
}

// GetSystemEntities returns a snapshot of the entities currently tracked by
// the system. Mutations staged with the registry during the same frame do
// not appear until the next Update.
func (s *System) GetSystemEntities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// NumEntities returns the number of entities currently tracked.
func (s *System) NumEntities() int {
	return len(s.entities)
}
