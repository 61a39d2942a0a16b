package ecs

// EntityID is the numeric identity of an entity. Ids are allocated
// monotonically by a registry and are never reused; all component data for
// an entity lives in the registry's pools at this index.
type EntityID uint32

// Entity is a cheap handle: an id plus a non-owning reference back to the
// registry that allocated it. It carries no component data and no cleanup
// obligation.
type Entity struct {
	id       EntityID
	registry *Registry
}

// ID returns the entity's numeric identity.
func (e Entity) ID() EntityID {
	return e.id
}

// Kill stages the entity for destruction at the registry's next Update.
func (e Entity) Kill() error {
	return e.registry.KillEntity(e)
}

// Alive reports whether the entity has not been destroyed.
func (e Entity) Alive() bool {
	return e.registry.IsAlive(e)
}

// AddComponent attaches (or overwrites) a component of type T on the
// entity. See Registry for the deferred system-membership semantics.
func AddComponent[T any](e Entity, component T) error {
	return registryAddComponent(e.registry, e, component)
}

// RemoveComponent marks component type T absent on the entity.
func RemoveComponent[T any](e Entity) error {
	id, err := TypeID[T]()
	if err != nil {
		return err
	}
	return e.registry.removeComponent(e, id)
}

// HasComponent reports whether the entity currently owns a component of
// type T. It is false for destroyed entities.
func HasComponent[T any](e Entity) bool {
	id, err := TypeID[T]()
	if err != nil {
		return false
	}
	return e.registry.hasComponent(e, id)
}

// GetComponent returns a pointer to the entity's component of type T for
// in-place reads and mutation. It returns ErrComponentNotPresent if the
// entity's signature does not carry T.
func GetComponent[T any](e Entity) (*T, error) {
	return registryGetComponent[T](e.registry, e)
}

// MustGetComponent is like GetComponent but panics on error. Intended for
// system update loops where presence is guaranteed by the system's required
// signature.
func MustGetComponent[T any](e Entity) *T {
	c, err := registryGetComponent[T](e.registry, e)
	if err != nil {
		panic(err)
	}
	return c
}
